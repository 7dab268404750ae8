package normalizer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/erraggy/specdiff/specerrors"
	"github.com/erraggy/specdiff/validator"
)

// DocumentValidator is the narrow contract the normalizer consumes for
// structural validation and internal reference resolution. The validator
// package provides the default implementation; any compliant implementation
// can be substituted without touching the normalizer.
type DocumentValidator interface {
	// Validate checks the document in strict mode and resolves internal
	// references, returning the resolved document or a
	// *specerrors.InvalidSpecError aggregating every issue found.
	Validate(doc map[string]any) (map[string]any, error)

	// Parse is the reference-tolerant fallback: unresolvable references are
	// left in place and reported as warnings instead of failing.
	Parse(doc map[string]any) (map[string]any, []string, error)
}

// Normalizer converts deserialized API description documents into the
// canonical model. The zero value is usable; New applies the defaults.
type Normalizer struct {
	// Validator is the validation capability consulted before extraction.
	// If nil, the validator package's default implementation is used.
	Validator DocumentValidator
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled (default).
	Logger Logger
}

// New creates a new Normalizer instance with default settings
func New() *Normalizer {
	return &Normalizer{}
}

// log returns the configured logger, or a no-op logger if none is set.
func (n *Normalizer) log() Logger {
	if n.Logger != nil {
		return n.Logger
	}
	return NopLogger{}
}

func (n *Normalizer) documentValidator() DocumentValidator {
	if n.Validator != nil {
		return n.Validator
	}
	return validator.New()
}

// Normalize converts one deserialized document into the canonical model.
//
// The document is first validated in strict mode. If validation fails only
// because of unresolved references, normalization retries in
// reference-tolerant mode and records a warning; any other validation
// failure is terminal. The dialect is then detected from the document's
// version marker and the matching extractor assembles the model.
//
// Failures surface as typed errors: *specerrors.InvalidSpecError,
// *specerrors.UnsupportedVersionError, or *specerrors.ExtractionError.
// No partial canonical model is ever returned alongside an error.
func (n *Normalizer) Normalize(doc map[string]any) (api *CanonicalAPI, err error) {
	sink := &WarningSink{}

	resolved, err := n.validate(doc, sink)
	if err != nil {
		return nil, err
	}

	ex, dialect, err := detectDialect(resolved)
	if err != nil {
		return nil, err
	}
	n.log().Debug("detected dialect", "dialect", dialect)

	// Extraction must never leak a panic across the package boundary.
	defer func() {
		if r := recover(); r != nil {
			n.log().Error("extraction panicked", "panic", r)
			api = nil
			err = &specerrors.ExtractionError{Message: fmt.Sprint(r)}
		}
	}()

	api, err = ex.extract(resolved, sink)
	if err != nil {
		return nil, &specerrors.ExtractionError{Message: "extraction failed", Cause: err}
	}
	api.Warnings = sink.Warnings()
	n.log().Debug("normalized document",
		"actions", len(api.Actions), "warnings", len(api.Warnings))
	return api, nil
}

// validate runs strict validation with the unresolved-reference fallback.
func (n *Normalizer) validate(doc map[string]any, sink *WarningSink) (map[string]any, error) {
	v := n.documentValidator()

	resolved, err := v.Validate(doc)
	if err == nil {
		return resolved, nil
	}

	var invalid *specerrors.InvalidSpecError
	if !errors.As(err, &invalid) {
		return nil, &specerrors.InvalidSpecError{Cause: err}
	}
	if !invalid.OnlyReferenceIssues() {
		return nil, invalid
	}

	// Only unresolved references: retry tolerantly and downgrade to warnings.
	n.log().Warn("strict validation reported unresolved references; retrying in tolerant mode",
		"issues", len(invalid.Issues))
	resolved, warnings, err := v.Parse(doc)
	if err != nil {
		return nil, &specerrors.InvalidSpecError{Cause: err}
	}
	sink.Add("document contains unresolved references; continued in reference-tolerant mode")
	for _, w := range warnings {
		sink.Add(w)
	}
	return resolved, nil
}

// detectDialect selects the extractor from the document's structural marker:
// "openapi: 3.x" or "swagger: 2.0". Anything else is unsupported.
func detectDialect(doc map[string]any) (extractor, string, error) {
	if v := getString(doc, "openapi"); v != "" {
		if strings.HasPrefix(v, "3.") {
			return oas3Extractor{}, "openapi " + v, nil
		}
		return nil, "", &specerrors.UnsupportedVersionError{Marker: v}
	}
	if v, present := doc["swagger"]; present {
		s, _ := v.(string)
		if s == "2.0" {
			return oas2Extractor{}, "swagger 2.0", nil
		}
		return nil, "", &specerrors.UnsupportedVersionError{Marker: fmt.Sprint(v)}
	}
	return nil, "", &specerrors.UnsupportedVersionError{}
}
