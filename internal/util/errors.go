package util

import (
	"errors"
	"fmt"
)

var (
	ErrProjectNotFound      = errors.New("project not found or not owned by user")
	ErrStudyPlanNotFound    = errors.New("study plan not found")
	ErrArtifactNotFound     = errors.New("content not found for this project")
	ErrContentInputRequired = errors.New("content input is required for AI generation")
	ErrTitleRequired        = errors.New("project title is required")
	ErrEmailRegistered      = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidItemIndex     = errors.New("invalid study plan item index")
	ErrInvalidItemStatus    = errors.New("invalid status provided")
	ErrNoFileUploaded       = errors.New("no file uploaded")
)

// ExtractionError wraps a failure to pull text out of an uploaded document
// so handlers can surface the underlying message instead of a generic 500.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return e.Err.Error()
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// ContentFormatError reports that the LLM returned content that could not be
// coerced into the expected shape. Raw holds the unmodified model output.
type ContentFormatError struct {
	Reason string
	Raw    string
}

func (e *ContentFormatError) Error() string {
	return fmt.Sprintf("unexpected AI content format: %s", e.Reason)
}
