package validator

import (
	"fmt"

	"github.com/erraggy/specdiff/specerrors"
)

// defaultMaxRefDepth is the maximum depth for following nested $ref pointers.
// Exceeding it reports a reference issue, which also cuts reference cycles.
const defaultMaxRefDepth = 100

// Validator checks document structure and resolves internal references.
type Validator struct {
	// MaxRefDepth is the maximum depth for resolving nested $ref pointers.
	// Default: 100
	MaxRefDepth int
}

// New creates a new Validator instance with default settings
func New() *Validator {
	return &Validator{}
}

func (v *Validator) maxRefDepth() int {
	if v.MaxRefDepth > 0 {
		return v.MaxRefDepth
	}
	return defaultMaxRefDepth
}

// Validate checks the document in strict mode and resolves internal
// references. Any structural issue or unresolvable reference fails the call
// with a *specerrors.InvalidSpecError aggregating every issue found.
func (v *Validator) Validate(doc map[string]any) (map[string]any, error) {
	issues := v.checkStructure(doc)

	resolved, refIssues := v.resolveRefs(doc)
	issues = append(issues, refIssues...)

	if len(issues) > 0 {
		return nil, &specerrors.InvalidSpecError{Issues: issues}
	}
	return resolved, nil
}

// Parse checks the document in reference-tolerant mode: structural issues
// still fail, but unresolvable references are left in place and returned as
// warnings.
func (v *Validator) Parse(doc map[string]any) (map[string]any, []string, error) {
	if issues := v.checkStructure(doc); len(issues) > 0 {
		return nil, nil, &specerrors.InvalidSpecError{Issues: issues}
	}

	resolved, refIssues := v.resolveRefs(doc)
	warnings := make([]string, 0, len(refIssues))
	for _, issue := range refIssues {
		warnings = append(warnings, issue.String())
	}
	return resolved, warnings, nil
}

// checkStructure performs basic structural validation of the document shape.
// The checks are deliberately narrow: dialect-specific semantics belong to
// the extractors, and full JSON-Schema validation is out of scope.
func (v *Validator) checkStructure(doc map[string]any) []specerrors.Issue {
	var issues []specerrors.Issue

	if doc == nil {
		return append(issues, specerrors.Issue{Message: "document is empty"})
	}

	if raw, present := doc["info"]; present {
		if _, ok := raw.(map[string]any); !ok {
			issues = append(issues, specerrors.Issue{Path: "info", Message: "must be an object"})
		}
	}

	raw, present := doc["paths"]
	if !present {
		return issues
	}
	paths, ok := raw.(map[string]any)
	if !ok {
		return append(issues, specerrors.Issue{Path: "paths", Message: "must be an object"})
	}

	for path, rawItem := range paths {
		item, ok := rawItem.(map[string]any)
		if !ok {
			issues = append(issues, specerrors.Issue{
				Path:    "paths." + path,
				Message: "path item must be an object",
			})
			continue
		}
		issues = append(issues, v.checkPathItem(path, item)...)
	}
	return issues
}

var operationMethods = map[string]bool{
	"get": true, "put": true, "post": true, "delete": true,
	"options": true, "head": true, "patch": true, "trace": true,
}

func (v *Validator) checkPathItem(path string, item map[string]any) []specerrors.Issue {
	var issues []specerrors.Issue
	for method, rawOp := range item {
		if !operationMethods[method] {
			continue
		}
		opPath := fmt.Sprintf("paths.%s.%s", path, method)
		op, ok := rawOp.(map[string]any)
		if !ok {
			issues = append(issues, specerrors.Issue{Path: opPath, Message: "operation must be an object"})
			continue
		}
		if rawParams, present := op["parameters"]; present {
			if _, ok := rawParams.([]any); !ok {
				issues = append(issues, specerrors.Issue{
					Path:    opPath + ".parameters",
					Message: "parameters must be an array",
				})
			}
		}
	}
	return issues
}
