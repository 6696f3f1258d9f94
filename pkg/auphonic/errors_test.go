package auphonic

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/akordowski/auphonic-go/pkg/precondition"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"nil", nil, KindNone},
		{"argument", precondition.NotBlank("", "name"), KindArgument},
		{"wrapped argument", fmt.Errorf("ctx: %w", precondition.NotBlank("", "name")), KindArgument},
		{"authentication", &AuthenticationError{Message: "nope"}, KindAuthentication},
		{"api", &APIError{ErrorCode: strPtr("x"), StatusCode: 400}, KindAPI},
		{"production failed", &ProductionFailedError{UUID: "x"}, KindAPI},
		{"transport", errors.New("connection refused"), KindTransport},
		{"canceled", context.Canceled, KindTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "none", KindNone.String())
	assert.Equal(t, "argument", KindArgument.String())
	assert.Equal(t, "authentication", KindAuthentication.String())
	assert.Equal(t, "api", KindAPI.String())
	assert.Equal(t, "transport", KindTransport.String())
	assert.Equal(t, "unknown", ErrorKind(42).String())
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "Token doesn't exist", (&AuthenticationError{Message: "Token doesn't exist"}).Error())

	apiErr := &APIError{ErrorCode: strPtr("invalid_data"), ErrorMessage: "Preset name is required", StatusCode: 400}
	assert.Equal(t, "auphonic: api error (status 400, code invalid_data): Preset name is required", apiErr.Error())
	assert.Equal(t, "invalid_data", apiErr.Code())

	undecoded := &APIError{ErrorMessage: "invalid character", StatusCode: 502}
	assert.Equal(t, "auphonic: api error (status 502, code <nil>): invalid character", undecoded.Error())
	assert.Empty(t, undecoded.Code())

	assert.Equal(t, "production x failed", (&ProductionFailedError{UUID: "x"}).Error())
	assert.Equal(t, "production x failed: bad input", (&ProductionFailedError{UUID: "x", Message: "bad input"}).Error())
}

func TestErrorSentinels(t *testing.T) {
	cause := errors.New("decode")
	authErr := &AuthenticationError{Message: "m", Err: cause}
	assert.ErrorIs(t, authErr, ErrAuthentication)
	assert.ErrorIs(t, authErr, cause)
	assert.NotErrorIs(t, authErr, ErrAPI)

	apiErr := fmt.Errorf("wrapped: %w", &APIError{Err: cause})
	assert.ErrorIs(t, apiErr, ErrAPI)
	assert.ErrorIs(t, apiErr, cause)

	assert.ErrorIs(t, &ProductionFailedError{}, ErrProduction)
	assert.True(t, IsCanceled(fmt.Errorf("x: %w", context.DeadlineExceeded)))
	assert.False(t, IsCanceled(cause))
}
