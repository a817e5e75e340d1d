package registry

import (
	"errors"
	"fmt"
)

// Common errors returned by the client.
var (
	// ErrRetryExhausted is returned when all retry attempts are exhausted.
	ErrRetryExhausted = errors.New("retry attempts exhausted")

	// ErrContextCancelled is returned when the context is cancelled during retry.
	ErrContextCancelled = errors.New("context cancelled")
)

// ErrorClass classifies a failed page fetch.
type ErrorClass string

const (
	// ErrorClassClient represents 4xx responses from the registry.
	ErrorClassClient ErrorClass = "client"

	// ErrorClassServer represents 5xx responses from the registry.
	ErrorClassServer ErrorClass = "server"

	// ErrorClassNetwork represents transport failures, including timeouts.
	ErrorClassNetwork ErrorClass = "network"

	// ErrorClassDecode represents responses that are not parseable as
	// the expected search payload.
	ErrorClassDecode ErrorClass = "decode"
)

// PageError is the tagged failure value for a single page fetch. It
// always carries the page number so the collector can attribute the
// failure without extra bookkeeping.
type PageError struct {
	Page       int
	StatusCode int
	Class      ErrorClass
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *PageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("page %d: %s error: %s: %v", e.Page, e.Class, e.Message, e.Err)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("page %d: %s error (status %d): %s", e.Page, e.Class, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("page %d: %s error: %s", e.Page, e.Class, e.Message)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *PageError) Unwrap() error {
	return e.Err
}

// shouldRetry reports whether a failure class is worth retrying.
func shouldRetry(class ErrorClass) bool {
	switch class {
	case ErrorClassServer, ErrorClassNetwork:
		// Transient upstream or transport problems.
		return true
	case ErrorClassClient, ErrorClassDecode:
		// Repeating the identical request cannot change the outcome.
		return false
	default:
		return false
	}
}
