package precondition

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireArgumentError(t *testing.T, err error, kind Kind, param string) *ArgumentError {
	t.Helper()
	require.Error(t, err)
	var argErr *ArgumentError
	require.True(t, errors.As(err, &argErr), "expected *ArgumentError, got %T", err)
	assert.Equal(t, kind, argErr.Kind)
	assert.Equal(t, param, argErr.Param)
	return argErr
}

func TestNotNil(t *testing.T) {
	type preset struct{}
	var nilPreset *preset
	var nilMap map[string]string

	requireArgumentError(t, NotNil(nil, "preset"), NullArgument, "preset")
	requireArgumentError(t, NotNil(nilPreset, "preset"), NullArgument, "preset")
	requireArgumentError(t, NotNil(nilMap, "m"), NullArgument, "m")
	assert.NoError(t, NotNil(&preset{}, "preset"))
	assert.NoError(t, NotNil(0, "n"))
}

func TestNotBlank(t *testing.T) {
	tests := []struct {
		name  string
		value string
		ok    bool
	}{
		{"empty", "", false},
		{"spaces", "   ", false},
		{"tabs and newlines", "\t\n", false},
		{"value", "uuid", true},
		{"padded value", "  uuid ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NotBlank(tt.value, "presetUuid")
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			requireArgumentError(t, err, InvalidArgument, "presetUuid")
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.NotErrorIs(t, err, ErrNullArgument)
		})
	}
}

func TestNotNilOrBlank(t *testing.T) {
	requireArgumentError(t, NotNilOrBlank(nil, "uuid"), NullArgument, "uuid")
	blank := " "
	requireArgumentError(t, NotNilOrBlank(&blank, "uuid"), InvalidArgument, "uuid")
	value := "abc"
	assert.NoError(t, NotNilOrBlank(&value, "uuid"))
}

func TestRangeChecks(t *testing.T) {
	err := NotNegative(-1, "limit")
	requireArgumentError(t, err, OutOfRange, "limit")
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.NoError(t, NotNegative(0, "limit"))

	requireArgumentError(t, Between(11, 0, 10, "n"), OutOfRange, "n")
	requireArgumentError(t, Between(-0.5, 0.0, 1.0, "f"), OutOfRange, "f")
	assert.NoError(t, Between(10, 0, 10, "n"))
}

func TestNotEmpty(t *testing.T) {
	requireArgumentError(t, NotEmpty[string](nil, "keywords"), NullArgument, "keywords")
	requireArgumentError(t, NotEmpty([]string{}, "keywords"), InvalidArgument, "keywords")
	assert.NoError(t, NotEmpty([]string{"a"}, "keywords"))
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "audio.wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFF"), 0o600))

	assert.NoError(t, FileExists(path, "filePath"))
	requireArgumentError(t, FileExists("", "filePath"), InvalidArgument, "filePath")
	requireArgumentError(t, FileExists("  ", "filePath"), InvalidArgument, "filePath")

	err := FileExists(filepath.Join(dir, "missing.wav"), "filePath")
	requireArgumentError(t, err, FileNotFound, "filePath")
	assert.ErrorIs(t, err, ErrFileNotFound)

	requireArgumentError(t, FileExists(dir, "filePath"), FileNotFound, "filePath")
}

func TestValid(t *testing.T) {
	err := Valid(func() bool { return true }, "Preset UUID cannot be null or empty.", "preset")
	argErr := requireArgumentError(t, err, InvalidArgument, "preset")
	assert.Contains(t, argErr.Error(), "UUID cannot be null or empty")

	assert.NoError(t, Valid(func() bool { return false }, "unused", "preset"))
}

func TestFirst(t *testing.T) {
	first := errors.New("first")
	assert.NoError(t, First(nil, nil))
	assert.Equal(t, first, First(nil, first, errors.New("second")))
}
