package services

import (
	"errors"
	"fmt"
)

var ErrInvalidURL = errors.New("invalid YouTube URL")

// FetchError wraps a failure talking to the comment provider.
type FetchError struct {
	VideoID string
	Err     error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch comments for %s: %v", e.VideoID, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// AnalysisError is any failure inside the analysis stage, including recovered panics.
// Its message is the one shown to the user.
type AnalysisError struct {
	Err error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("Something went wrong: %v", e.Err)
}

func (e *AnalysisError) Unwrap() error { return e.Err }
