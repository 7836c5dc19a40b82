package apiclient

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failed request so callers can branch without inspecting
// raw status codes.
type Kind string

const (
	KindNetwork      Kind = "network"
	KindBadRequest   Kind = "bad_request"
	KindUnauthorized Kind = "unauthorized"
	KindNotFound     Kind = "not_found"
	KindServer       Kind = "server"
)

// RequestError is returned for every failed request issued by a Client.
type RequestError struct {
	Kind       Kind
	StatusCode int // zero when the request never reached the server
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("api request failed (%s, status %d): %v", e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("api request failed (%s): %v", e.Kind, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// classify maps an HTTP status to an error kind.
func classify(status int) Kind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindUnauthorized
	case status == http.StatusNotFound:
		return KindNotFound
	case status >= 500:
		return KindServer
	default:
		return KindBadRequest
	}
}

// IsUnauthorized reports whether err carries an unauthorized classification,
// meaning the bearer token was rejected by the API.
func IsUnauthorized(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.Kind == KindUnauthorized
}
