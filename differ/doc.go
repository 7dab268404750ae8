/*
Package differ compares two canonical action lists and classifies every
difference as breaking or non-breaking.

The engine is deliberately simple and deterministic: changes are emitted in a
fixed order (endpoint removals, endpoint additions, then per-endpoint
parameter, body, response, and description comparisons), and the order is
part of the observable contract. CI pipelines gate on Result.BreakingCount.

# Usage

	result := differ.Diff(oldAPI.Actions, newAPI.Actions)
	for _, change := range result.Changes {
		fmt.Println(change)
	}
	if result.BreakingCount > 0 {
		os.Exit(1)
	}

# Classification semantics

Endpoint identity is the (method, path) pair. Removing an endpoint, removing
a parameter, changing a parameter's type, adding a required parameter or
required body field, and removing a response field are breaking. Adding an
endpoint or an optional parameter, and changing a description, are
non-breaking.

Body and response comparison is intentionally shallow: only top-level field
keys and required flags participate. A parameter that transitions from
optional to required classifies the same as a newly added required parameter.

The engine performs no I/O and has no failure mode: missing or empty
collections are treated as the empty case, never an error.
*/
package differ
