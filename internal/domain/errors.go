package domain

import "errors"

// Error taxonomy. Services wrap these sentinels with context; the HTTP
// layer maps them to status codes via errors.Is.
var (
	// ErrValidation marks malformed or missing required input. Never retried.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a referenced session or collection that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden marks an attempted mutation of a protected resource,
	// e.g. deleting a demo collection.
	ErrForbidden = errors.New("forbidden")

	// ErrUpstreamUnavailable marks an unreachable or misconfigured external
	// dependency. Image search degrades to an empty result list instead;
	// the idea generator fails the whole operation.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrMalformedResponse marks an upstream response that could not be
	// decoded into the expected shape. Hard failure, never coerced.
	ErrMalformedResponse = errors.New("malformed upstream response")
)
