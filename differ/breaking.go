package differ

import (
	"fmt"

	"github.com/erraggy/specdiff/normalizer"
)

// diffAction compares one endpoint across the two models, emitting changes
// in the fixed sub-order: required parameter additions, optional parameter
// additions, parameter removals, parameter type changes, required body-field
// additions, response-field removals, description changes.
func diffAction(oldAction, newAction normalizer.Action, result *Result) {
	oldParams := oldAction.Parameters()
	newParams := newAction.Parameters()

	oldKeys := make(map[string]normalizer.Field, len(oldParams))
	oldRequired := make(map[string]bool, len(oldParams))
	for _, p := range oldParams {
		oldKeys[p.Key] = p
		if p.Required {
			oldRequired[p.Key] = true
		}
	}
	newKeys := make(map[string]normalizer.Field, len(newParams))
	for _, p := range newParams {
		newKeys[p.Key] = p
	}

	// a. Parameters required in new that were not required in old. This fires
	// identically for a brand-new required parameter and for one that merely
	// transitioned from optional to required.
	for _, p := range newParams {
		if p.Required && !oldRequired[p.Key] {
			result.add(Change{
				Type:     ChangeTypeBreaking,
				Category: CategoryRequiredParamAdded,
				Message:  fmt.Sprintf("Required parameter added to %s %s: %s", newAction.Method, newAction.Path, p.Key),
				Method:   newAction.Method,
				Path:     newAction.Path,
			})
		}
	}

	// b. Brand-new optional parameters.
	for _, p := range newParams {
		if _, existed := oldKeys[p.Key]; !existed && !p.Required {
			result.add(Change{
				Type:     ChangeTypeNonBreaking,
				Category: CategoryOptionalParamAdded,
				Message:  fmt.Sprintf("Optional parameter added to %s %s: %s", newAction.Method, newAction.Path, p.Key),
				Method:   newAction.Method,
				Path:     newAction.Path,
			})
		}
	}

	// c. Removed parameters.
	for _, p := range oldParams {
		if _, survives := newKeys[p.Key]; !survives {
			result.add(Change{
				Type:     ChangeTypeBreaking,
				Category: CategoryParamRemoved,
				Message:  fmt.Sprintf("Parameter removed from %s %s: %s", oldAction.Method, oldAction.Path, p.Key),
				Method:   oldAction.Method,
				Path:     oldAction.Path,
			})
		}
	}

	// d. Type changes on surviving parameters.
	for _, p := range newParams {
		old, existed := oldKeys[p.Key]
		if existed && old.Type != p.Type {
			result.add(Change{
				Type:     ChangeTypeBreaking,
				Category: CategoryParamTypeChanged,
				Message: fmt.Sprintf("Parameter type changed on %s %s: %s (%s -> %s)",
					newAction.Method, newAction.Path, p.Key, old.Type, p.Type),
				Method: newAction.Method,
				Path:   newAction.Path,
			})
		}
	}

	// e. New required top-level body fields. Nested and non-required body
	// changes are not compared.
	oldBodyKeys := fieldKeySet(oldAction.Body)
	for _, f := range newAction.Body {
		if f.Required && !oldBodyKeys[f.Key] {
			result.add(Change{
				Type:     ChangeTypeBreaking,
				Category: CategoryRequiredBodyFieldAdded,
				Message:  fmt.Sprintf("Required body field added to %s %s: %s", newAction.Method, newAction.Path, f.Key),
				Method:   newAction.Method,
				Path:     newAction.Path,
			})
		}
	}

	// f. Removed top-level response fields.
	newResponseKeys := fieldKeySet(newAction.Response)
	for _, f := range oldAction.Response {
		if !newResponseKeys[f.Key] {
			result.add(Change{
				Type:     ChangeTypeBreaking,
				Category: CategoryResponseFieldRemoved,
				Message:  fmt.Sprintf("Response field removed from %s %s: %s", oldAction.Method, oldAction.Path, f.Key),
				Method:   oldAction.Method,
				Path:     oldAction.Path,
			})
		}
	}

	// g. Description drift, only when both sides have one.
	if oldAction.Description != "" && newAction.Description != "" &&
		oldAction.Description != newAction.Description {
		result.add(Change{
			Type:     ChangeTypeNonBreaking,
			Category: CategoryDescriptionChanged,
			Message:  fmt.Sprintf("Description changed for %s %s", newAction.Method, newAction.Path),
			Method:   newAction.Method,
			Path:     newAction.Path,
		})
	}
}

// fieldKeySet collects the top-level keys of a field list.
func fieldKeySet(fields []normalizer.Field) map[string]bool {
	keys := make(map[string]bool, len(fields))
	for _, f := range fields {
		keys[f.Key] = true
	}
	return keys
}
