package errors

import "errors"

var (
	// ErrUnauthorized is a generic sentinel for auth failures.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrRateLimited is returned when a client exceeds the request window.
	ErrRateLimited = errors.New("rate limited")
	// ErrUpstream is returned when the completion provider fails or returns
	// an unusable reply.
	ErrUpstream = errors.New("upstream failure")
)
