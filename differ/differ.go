package differ

import (
	"fmt"

	"github.com/erraggy/specdiff/normalizer"
)

// ChangeType classifies a change's compatibility impact.
type ChangeType string

const (
	// ChangeTypeBreaking indicates a change expected to break existing consumers
	ChangeTypeBreaking ChangeType = "breaking"
	// ChangeTypeNonBreaking indicates a backward-compatible change
	ChangeTypeNonBreaking ChangeType = "non-breaking"
)

// ChangeCategory indicates what kind of difference was detected.
type ChangeCategory string

const (
	// CategoryEndpointRemoved indicates an endpoint present in old is absent in new
	CategoryEndpointRemoved ChangeCategory = "endpoint-removed"
	// CategoryEndpointAdded indicates an endpoint present in new is absent in old
	CategoryEndpointAdded ChangeCategory = "endpoint-added"
	// CategoryRequiredParamAdded indicates a parameter is required in new but was
	// not required in old (whether newly added or newly required)
	CategoryRequiredParamAdded ChangeCategory = "required-param-added"
	// CategoryOptionalParamAdded indicates a new optional parameter
	CategoryOptionalParamAdded ChangeCategory = "optional-param-added"
	// CategoryParamRemoved indicates a parameter was removed
	CategoryParamRemoved ChangeCategory = "param-removed"
	// CategoryParamTypeChanged indicates a parameter's declared type changed
	CategoryParamTypeChanged ChangeCategory = "param-type-changed"
	// CategoryRequiredBodyFieldAdded indicates a new required top-level body field
	CategoryRequiredBodyFieldAdded ChangeCategory = "required-body-field-added"
	// CategoryResponseFieldRemoved indicates a top-level response field was removed
	CategoryResponseFieldRemoved ChangeCategory = "response-field-removed"
	// CategoryDescriptionChanged indicates the operation description changed
	CategoryDescriptionChanged ChangeCategory = "description-changed"
)

// Change represents a single classified difference between two canonical
// models.
type Change struct {
	// Type classifies the change as breaking or non-breaking
	Type ChangeType `json:"type"`
	// Category indicates what kind of difference was detected
	Category ChangeCategory `json:"category"`
	// Message is a human-readable description of the change
	Message string `json:"message"`
	// Method is the affected endpoint's HTTP method, for correlation
	Method string `json:"method,omitempty"`
	// Path is the affected endpoint's path template, for correlation
	Path string `json:"path,omitempty"`
}

// String returns a formatted string representation of the change
func (c Change) String() string {
	symbol := "+"
	if c.Type == ChangeTypeBreaking {
		symbol = "✗"
	}
	return fmt.Sprintf("%s [%s] %s", symbol, c.Category, c.Message)
}

// Result contains the classified changes between two canonical models.
type Result struct {
	// Changes contains all detected changes in emission order
	Changes []Change `json:"changes"`
	// BreakingCount is the number of breaking changes
	BreakingCount int `json:"breakingCount"`
	// NonBreakingCount is the number of non-breaking changes
	NonBreakingCount int `json:"nonBreakingCount"`
}

// HasBreakingChanges reports whether any breaking change was detected.
func (r *Result) HasBreakingChanges() bool {
	return r.BreakingCount > 0
}

// Diff compares two canonical action lists and returns the classified
// change set. Order of emission is fixed: endpoint removals, endpoint
// additions, then per-endpoint comparisons in old-list order.
//
// Lookup maps are keyed "METHOD path"; when a list carries duplicate keys
// the last-seen action is authoritative.
func Diff(oldActions, newActions []normalizer.Action) *Result {
	result := &Result{Changes: []Change{}}

	oldByKey := actionMap(oldActions)
	newByKey := actionMap(newActions)

	// Removed endpoints, in old-list order.
	for _, action := range dedupe(oldActions) {
		if _, present := newByKey[action.Key()]; !present {
			result.add(Change{
				Type:     ChangeTypeBreaking,
				Category: CategoryEndpointRemoved,
				Message:  fmt.Sprintf("Endpoint removed: %s %s", action.Method, action.Path),
				Method:   action.Method,
				Path:     action.Path,
			})
		}
	}

	// Added endpoints, in new-list order.
	for _, action := range dedupe(newActions) {
		if _, present := oldByKey[action.Key()]; !present {
			result.add(Change{
				Type:     ChangeTypeNonBreaking,
				Category: CategoryEndpointAdded,
				Message:  fmt.Sprintf("Endpoint added: %s %s", action.Method, action.Path),
				Method:   action.Method,
				Path:     action.Path,
			})
		}
	}

	// Surviving endpoints, in old-list order.
	for _, oldAction := range dedupe(oldActions) {
		newAction, present := newByKey[oldAction.Key()]
		if !present {
			continue
		}
		diffAction(oldByKey[oldAction.Key()], newAction, result)
	}

	return result
}

// add appends a change and updates the running tallies.
func (r *Result) add(change Change) {
	r.Changes = append(r.Changes, change)
	if change.Type == ChangeTypeBreaking {
		r.BreakingCount++
	} else {
		r.NonBreakingCount++
	}
}

// actionMap builds the "METHOD path" lookup map; last-seen entries win.
func actionMap(actions []normalizer.Action) map[string]normalizer.Action {
	m := make(map[string]normalizer.Action, len(actions))
	for _, action := range actions {
		m[action.Key()] = action
	}
	return m
}

// dedupe returns the actions with duplicate keys dropped, keeping first-seen
// positions so emission order follows the source list.
func dedupe(actions []normalizer.Action) []normalizer.Action {
	seen := make(map[string]bool, len(actions))
	out := make([]normalizer.Action, 0, len(actions))
	for _, action := range actions {
		if seen[action.Key()] {
			continue
		}
		seen[action.Key()] = true
		out = append(out, action)
	}
	return out
}
