package client

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrRedirectLoop is returned by the HTTP client when a request exceeds the
// redirect limit.
var ErrRedirectLoop = errors.New("redirect loop detected")

// ErrorClass represents a classification of request errors.
type ErrorClass string

const (
	// ErrorClassNetwork represents network/timeout errors.
	ErrorClassNetwork ErrorClass = "network"

	// ErrorClassRedirectLoop represents requests aborted after too many redirects.
	ErrorClassRedirectLoop ErrorClass = "redirect_loop"

	// ErrorClassClient represents 4xx client errors.
	ErrorClassClient ErrorClass = "client"

	// ErrorClassServer represents 5xx server errors.
	ErrorClassServer ErrorClass = "server"
)

// RequestError carries the classification of a failed or non-success request.
type RequestError struct {
	StatusCode int
	Class      ErrorClass
	URI        string
	Err        error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s error for %s: %v", e.Class, e.URI, e.Err)
	}
	return fmt.Sprintf("%s error for %s (status %d)", e.Class, e.URI, e.StatusCode)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// classify categorizes a request outcome for logging and metrics.
func classify(resp *http.Response, err error) ErrorClass {
	if err != nil {
		if errors.Is(err, ErrRedirectLoop) {
			return ErrorClassRedirectLoop
		}
		return ErrorClassNetwork
	}

	switch {
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return ErrorClassClient
	case resp.StatusCode >= 500:
		return ErrorClassServer
	default:
		return ""
	}
}
