// Package common contains shared constants and sentinel errors used across
// B.R.A.M. client components. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Read-path errors (fetching the report collection).
	ErrFetch = errors.New("fetch failed")

	// Write-path errors (create/update/delete of a report).
	ErrSubmission = errors.New("submission failed")

	// Media upload failed or the backend returned no usable URL.
	ErrUpload = errors.New("media upload failed")

	// Required form fields missing, or password confirmation mismatch.
	ErrValidation = errors.New("validation error")

	// Auth errors.
	ErrUnauthorized = errors.New("unauthorized")

	// Server unreachable, timed out, or responded with a 5xx.
	ErrUnavailable = errors.New("server unavailable")

	ErrNotFound = errors.New("not found")
)
