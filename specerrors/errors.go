// Package specerrors provides structured error types for specdiff.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of normalization failures and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - InvalidSpecError: structural validation failures
//   - UnsupportedVersionError: no recognizable dialect marker
//   - ExtractionError: an unexpected failure during canonical extraction
//   - ReferenceError: internal $ref resolution failures
//
// # Usage with errors.Is
//
//	api, err := normalizer.New().Normalize(doc)
//	if err != nil {
//	    var specErr *specerrors.InvalidSpecError
//	    if errors.As(err, &specErr) {
//	        for _, issue := range specErr.Issues {
//	            fmt.Println(issue)
//	        }
//	    }
//	}
package specerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrInvalidSpec indicates a document failed structural validation.
	ErrInvalidSpec = errors.New("invalid spec")

	// ErrUnsupportedVersion indicates no recognized dialect marker was found.
	ErrUnsupportedVersion = errors.New("unsupported version")

	// ErrExtraction indicates an unexpected failure during extraction.
	ErrExtraction = errors.New("extraction error")

	// ErrReference indicates a reference resolution failure.
	ErrReference = errors.New("reference error")
)

// Issue describes a single validation problem found in a document.
type Issue struct {
	// Path is the JSON path to the problematic field (e.g., "paths./pets.get")
	Path string
	// Message describes the validation failure
	Message string
	// Ref is the unresolved reference string, set only for reference issues
	Ref string
}

// IsReference reports whether this issue is an unresolved-reference issue.
func (i Issue) IsReference() bool {
	return i.Ref != ""
}

// String returns a human-readable form of the issue.
func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// InvalidSpecError represents a document that failed structural validation.
// It aggregates every issue found so callers can report them all at once,
// and so the normalizer can detect the unresolved-reference-only case that
// permits a reference-tolerant retry.
type InvalidSpecError struct {
	// Issues contains all validation problems found
	Issues []Issue
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *InvalidSpecError) Error() string {
	msg := "invalid spec"
	switch len(e.Issues) {
	case 0:
	case 1:
		msg += ": " + e.Issues[0].String()
	default:
		msg += fmt.Sprintf(": %d issues, first: %s", len(e.Issues), e.Issues[0].String())
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *InvalidSpecError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *InvalidSpecError) Is(target error) bool {
	return target == ErrInvalidSpec
}

// OnlyReferenceIssues reports whether every recorded issue is an
// unresolved-reference issue. The normalizer uses this to decide whether a
// strict validation failure may be retried in reference-tolerant mode.
func (e *InvalidSpecError) OnlyReferenceIssues() bool {
	if len(e.Issues) == 0 {
		return false
	}
	for _, issue := range e.Issues {
		if !issue.IsReference() {
			return false
		}
	}
	return true
}

// Details returns every issue as a string slice, suitable for attaching to
// results that carry error detail lists.
func (e *InvalidSpecError) Details() []string {
	details := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		details = append(details, issue.String())
	}
	return details
}

// UnsupportedVersionError represents a document with no recognizable dialect
// marker (neither "openapi: 3.x" nor "swagger: 2.0").
type UnsupportedVersionError struct {
	// Marker is the declared version value, if any was present
	Marker string
}

// Error returns a human-readable error message.
func (e *UnsupportedVersionError) Error() string {
	if e.Marker == "" {
		return "unsupported version: no openapi or swagger version marker found"
	}
	return fmt.Sprintf("unsupported version: %q", e.Marker)
}

// Is reports whether target matches this error type.
func (e *UnsupportedVersionError) Is(target error) bool {
	return target == ErrUnsupportedVersion
}

// ExtractionError represents an unexpected failure while extracting the
// canonical model from a validated document. Operation-level failures are
// downgraded to warnings before reaching this type; an ExtractionError means
// the document as a whole could not be processed.
type ExtractionError struct {
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ExtractionError) Error() string {
	msg := "extraction error"
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ExtractionError) Is(target error) bool {
	return target == ErrExtraction
}

// ReferenceError represents a failure to resolve an internal $ref.
type ReferenceError struct {
	// Ref is the reference string that failed to resolve
	Ref string
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ReferenceError) Error() string {
	msg := "reference error"
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ReferenceError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ReferenceError) Is(target error) bool {
	return target == ErrReference
}
