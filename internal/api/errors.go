package api

import (
	"errors"
	"fmt"
)

// ErrRequestFailed matches every error returned by the client, so callers
// that only care whether a request worked can use errors.Is.
var ErrRequestFailed = errors.New("request failed")

// Kind tells transport failures apart from upstream rejections
type Kind int

const (
	KindTransport Kind = iota + 1 // network, timeout, undecodable payload
	KindStatus                    // upstream answered with a non-2xx status
)

// Error is the single error type produced by Client.
type Error struct {
	Kind    Kind
	Method  string
	Path    string
	Status  int    // set for KindStatus
	Message string // upstream "message"/"error" field when present
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindStatus && e.Message != "":
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Status, e.Message)
	case e.Kind == KindStatus:
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
	}
	return fmt.Sprintf("%s %s: %s", e.Method, e.Path, ErrRequestFailed)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool { return target == ErrRequestFailed }

// StatusCode returns the upstream status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// MessageOr returns the upstream message carried by err, or fallback when the
// upstream did not supply one.
func MessageOr(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
