// Package precondition provides argument checks that run before any network
// call is made. Every failed check returns an *ArgumentError naming the
// offending parameter.
package precondition

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
)

// Sentinel errors matched by *ArgumentError through errors.Is.
var (
	ErrNullArgument    = errors.New("argument is nil")
	ErrInvalidArgument = errors.New("argument is invalid")
	ErrOutOfRange      = errors.New("argument is out of range")
	ErrFileNotFound    = errors.New("file not found")
)

// Kind categorizes an argument failure.
type Kind int

const (
	NullArgument Kind = iota
	InvalidArgument
	OutOfRange
	FileNotFound
)

func (k Kind) String() string {
	switch k {
	case NullArgument:
		return "null argument"
	case InvalidArgument:
		return "invalid argument"
	case OutOfRange:
		return "out of range"
	case FileNotFound:
		return "file not found"
	default:
		return "unknown"
	}
}

// ArgumentError reports a rejected argument.
type ArgumentError struct {
	Kind    Kind
	Param   string
	Message string
}

func (e *ArgumentError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Param == "" {
		return msg
	}
	return fmt.Sprintf("%s (parameter %q)", msg, e.Param)
}

// Is implements errors.Is for sentinel matching.
func (e *ArgumentError) Is(target error) bool {
	switch e.Kind {
	case NullArgument:
		return target == ErrNullArgument
	case InvalidArgument:
		return target == ErrInvalidArgument
	case OutOfRange:
		return target == ErrOutOfRange
	case FileNotFound:
		return target == ErrFileNotFound
	}
	return false
}

// NotNil fails with NullArgument when value is nil or a nil pointer, map,
// slice or interface.
func NotNil(value any, param string) error {
	if isNil(value) {
		return &ArgumentError{Kind: NullArgument, Param: param, Message: "value cannot be nil"}
	}
	return nil
}

// NotBlank fails when value is empty or consists only of white-space.
func NotBlank(value, param string) error {
	if value == "" {
		return &ArgumentError{Kind: InvalidArgument, Param: param, Message: "value cannot be empty"}
	}
	if strings.TrimSpace(value) == "" {
		return &ArgumentError{Kind: InvalidArgument, Param: param, Message: "value cannot consist only of white-space characters"}
	}
	return nil
}

// NotNilOrBlank is NotBlank for optional string pointers: nil is a NullArgument.
func NotNilOrBlank(value *string, param string) error {
	if value == nil {
		return &ArgumentError{Kind: NullArgument, Param: param, Message: "value cannot be nil"}
	}
	return NotBlank(*value, param)
}

// NotNegative fails with OutOfRange when value < 0.
func NotNegative(value int, param string) error {
	return GreaterOrEqual(value, 0, param)
}

// GreaterOrEqual fails with OutOfRange when value < min.
func GreaterOrEqual[T int | int64 | float64](value, min T, param string) error {
	if value < min {
		return &ArgumentError{
			Kind:    OutOfRange,
			Param:   param,
			Message: fmt.Sprintf("value %v must be greater than or equal to %v", value, min),
		}
	}
	return nil
}

// Between fails with OutOfRange unless min <= value <= max.
func Between[T int | int64 | float64](value, min, max T, param string) error {
	if value < min || value > max {
		return &ArgumentError{
			Kind:    OutOfRange,
			Param:   param,
			Message: fmt.Sprintf("value %v must be between %v and %v", value, min, max),
		}
	}
	return nil
}

// NotEmpty fails with NullArgument for a nil slice and InvalidArgument for an
// empty one.
func NotEmpty[T any](values []T, param string) error {
	if values == nil {
		return &ArgumentError{Kind: NullArgument, Param: param, Message: "collection cannot be nil"}
	}
	if len(values) == 0 {
		return &ArgumentError{Kind: InvalidArgument, Param: param, Message: "collection cannot be empty"}
	}
	return nil
}

// FileExists fails when path is blank or does not name a regular file.
func FileExists(path, param string) error {
	if path == "" {
		return &ArgumentError{Kind: InvalidArgument, Param: param, Message: "path cannot be empty"}
	}
	if strings.TrimSpace(path) == "" {
		return &ArgumentError{Kind: InvalidArgument, Param: param, Message: "path cannot consist only of white-space characters"}
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return &ArgumentError{Kind: FileNotFound, Param: param, Message: fmt.Sprintf("file %q does not exist", path)}
	}
	return nil
}

// Valid fails with InvalidArgument when invalid reports true.
func Valid(invalid func() bool, message, param string) error {
	if invalid() {
		return &ArgumentError{Kind: InvalidArgument, Param: param, Message: message}
	}
	return nil
}

// First returns the first non-nil error, so call sites can chain checks.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
