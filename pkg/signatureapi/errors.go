/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package signatureapi

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrMissingBaseURL     = errors.New("base URL is required")
	ErrMissingCredentials = errors.New("credentials are required")
	ErrEmptyHash          = errors.New("data hash value is empty")
	ErrEmptySignature     = errors.New("signature is empty")
	ErrEmptyID            = errors.New("signature id is empty")
	// ErrUnauthorized matches an HTTPError with status 401 or 403.
	ErrUnauthorized = errors.New("unauthorized")
)

// NetworkError is returned when the request could not be completed: connection, TLS,
// timeout or context cancellation. URL never contains credentials.
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// HTTPError is returned when the service responds with a non-2xx status. The body is
// kept as is and never decoded.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected status code %d with body %s", e.StatusCode, string(e.Body))
}

// Is reports whether target is ErrUnauthorized and the status is 401 or 403.
func (e *HTTPError) Is(target error) bool {
	return target == ErrUnauthorized && //nolint:errorlint
		(e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden)
}

// DecodeError is returned when a 2xx response body is not valid JSON.
type DecodeError struct {
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
