package domain

import (
	"errors"
	"fmt"
)

// GenerationErrorKind classifies generation failures for retry decisions
type GenerationErrorKind string

// generation failure classes
const (
	// GenerationNoProvider means no content-generation backend was reachable
	GenerationNoProvider GenerationErrorKind = "no_provider"
	// GenerationEmpty means the backend answered but produced zero items
	GenerationEmpty GenerationErrorKind = "empty"
	// GenerationOther covers everything else (auth, malformed response)
	GenerationOther GenerationErrorKind = "other"
)

// GenerationError is returned by the content generator; Kind drives
// the scheduler's retry decision instead of message matching
type GenerationError struct {
	Kind  GenerationErrorKind
	Cause error
}

func (e *GenerationError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("generation failed: %s", e.Kind)
	}
	return fmt.Sprintf("generation failed (%s): %v", e.Kind, e.Cause)
}

func (e *GenerationError) Unwrap() error { return e.Cause }

// Retryable reports whether the failure class gets the single automatic retry
func (e *GenerationError) Retryable() bool {
	return e.Kind == GenerationNoProvider || e.Kind == GenerationEmpty
}

// AsGenerationError extracts a GenerationError from an error chain
func AsGenerationError(err error) (*GenerationError, bool) {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr, true
	}
	return nil, false
}

// ErrNotConnected signals a publish attempt against a disconnected platform.
// It is counted as a delivery failure but never reaches an external call.
var ErrNotConnected = errors.New("platform not connected")

// PlatformError is a failed delivery attempt for one platform
type PlatformError struct {
	Platform Platform
	Cause    error
}

func (e *PlatformError) Error() string {
	return fmt.Sprintf("%s: %v", e.Platform, e.Cause)
}

func (e *PlatformError) Unwrap() error { return e.Cause }
