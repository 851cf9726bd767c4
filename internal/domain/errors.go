package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Player tag errors. A 404 from the Clash Royale API means different
	// things depending on the flow: during linking the tag the user typed
	// does not exist (ErrInvalidTag), during stats viewing a tag we expected
	// to resolve did not (ErrPlayerNotFound).
	ErrInvalidTag     = errors.New("invalid player tag")
	ErrPlayerNotFound = errors.New("player tag not found")
	ErrTagTaken       = errors.New("player tag is already in use")

	ErrAPIKeyMissing = errors.New("clash royale api key is not configured")
	ErrUpstreamAuth  = errors.New("invalid api key or unauthorized access")
)

// UpstreamError covers Clash Royale API failures that are neither 404 nor
// 403: unexpected statuses carry the status code, network errors and 5xx
// carry none.
type UpstreamError struct {
	Status int
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("clash royale api request failed with status %d", e.Status)
	}
	if e.Err != nil {
		return "clash royale api request failed: " + e.Err.Error()
	}
	return "clash royale api request failed"
}

func (e *UpstreamError) Unwrap() error { return e.Err }
