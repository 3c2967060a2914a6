package service

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateUsername = errors.New("username already registered")

	// ErrInvalidCredentials covers both unknown username and wrong password;
	// callers must not be able to tell which one failed.
	ErrInvalidCredentials = errors.New("incorrect username or password")

	ErrUnauthenticated = errors.New("could not validate credentials")

	ErrEmptyText = errors.New("no text provided")
)

// UpstreamError wraps a failure of the external LLM call, keeping the
// provider's diagnostic for operability.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream AI service error: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
