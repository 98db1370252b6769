package app

import (
	"errors"
)

// InvalidRequestError is special error type returned when any request params are invalid
type InvalidRequestError string

// Error implements error interface
func (e InvalidRequestError) Error() string {
	return string(e)
}

// IsInvalidRequest tells that this error is 'invalid request'.
// Returns always true.
func (InvalidRequestError) IsInvalidRequest() bool {
	return true
}

// UserNotFoundError is returned when github doesn't respond with user data for given login.
type UserNotFoundError struct {
	Login      string
	StatusCode int
}

// Error implements error interface
func (e UserNotFoundError) Error() string {
	return e.Login + " is not a user"
}

// TransportError wraps failures of the http request/response cycle.
type TransportError struct {
	Err error
}

// Error implements error interface
func (e TransportError) Error() string {
	return "transport error: " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e TransportError) Unwrap() error {
	return e.Err
}

// DecodeError wraps failures of interpreting successful response body.
type DecodeError struct {
	Err error
}

// Error implements error interface
func (e DecodeError) Error() string {
	return "decode error: " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e DecodeError) Unwrap() error {
	return e.Err
}

// IsInvalidRequestError checks if given error is caused by invalid request
func IsInvalidRequestError(err error) bool {
	type invalidReqErr interface {
		IsInvalidRequest() bool
	}

	var ire invalidReqErr
	if errors.As(err, &ire) {
		return ire.IsInvalidRequest()
	}

	return false
}

// IsUserNotFoundError checks if given error reports missing user.
func IsUserNotFoundError(err error) bool {
	var e UserNotFoundError
	return errors.As(err, &e)
}

// IsTransportError checks if given error is caused by failed http call.
func IsTransportError(err error) bool {
	var e TransportError
	return errors.As(err, &e)
}

// IsDecodeError checks if given error is caused by invalid response body.
func IsDecodeError(err error) bool {
	var e DecodeError
	return errors.As(err, &e)
}
