package auphonic

import (
	"context"
	"errors"
	"fmt"

	"github.com/akordowski/auphonic-go/pkg/precondition"
)

// Sentinel errors for use with errors.Is.
var (
	ErrAuthentication = errors.New("auphonic: authentication failed")
	ErrAPI            = errors.New("auphonic: api error")
	ErrProduction     = errors.New("auphonic: production failed")
)

const msgNoCredentials = "No authentication credentials provided."

// AuthenticationError is returned when credentials are missing, rejected or
// the session token is no longer valid.
type AuthenticationError struct {
	Message string
	// Err is the decode failure that led to the error, if any.
	Err error
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

func (e *AuthenticationError) Is(target error) bool {
	return target == ErrAuthentication
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// APIError is returned for any other failed API call.
type APIError struct {
	// ErrorCode is nil when the response could not be decoded.
	ErrorCode    *string
	ErrorMessage string
	StatusCode   int
	// Content is the raw response body.
	Content string
	Err     error
}

func (e *APIError) Error() string {
	code := "<nil>"
	if e.ErrorCode != nil {
		code = *e.ErrorCode
	}
	return fmt.Sprintf("auphonic: api error (status %d, code %s): %s", e.StatusCode, code, e.ErrorMessage)
}

func (e *APIError) Is(target error) bool {
	return target == ErrAPI
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Code returns the error code or "" when there is none.
func (e *APIError) Code() string {
	if e.ErrorCode == nil {
		return ""
	}
	return *e.ErrorCode
}

// ProductionFailedError is returned by WaitForProduction when the production
// ends in the Error state.
type ProductionFailedError struct {
	UUID        string
	Message     string
	ErrorStatus string
}

func (e *ProductionFailedError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("production %s failed", e.UUID)
	}
	return fmt.Sprintf("production %s failed: %s", e.UUID, e.Message)
}

func (e *ProductionFailedError) Is(target error) bool {
	return target == ErrProduction
}

// ErrorKind tags the category of an error returned by the client.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindArgument
	KindAuthentication
	KindAPI
	KindTransport
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindArgument:
		return "argument"
	case KindAuthentication:
		return "authentication"
	case KindAPI:
		return "api"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// Classify returns the category of err. A failed production counts as an
// API error. Anything else that is not an argument, authentication or API
// error is reported as a transport error.
func Classify(err error) ErrorKind {
	var argErr *precondition.ArgumentError
	var authErr *AuthenticationError
	var apiErr *APIError
	var prodErr *ProductionFailedError

	switch {
	case err == nil:
		return KindNone
	case errors.As(err, &argErr):
		return KindArgument
	case errors.As(err, &authErr):
		return KindAuthentication
	case errors.As(err, &apiErr), errors.As(err, &prodErr):
		return KindAPI
	default:
		return KindTransport
	}
}

// IsCanceled reports whether err was caused by context cancellation or deadline.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func strPtr(s string) *string {
	return &s
}
