/*
Package validator provides the default structural validation and internal
reference resolution for specdiff.

It implements the normalizer's two-method validation contract:

  - Validate checks a document in strict mode: structural issues and
    unresolvable internal references both fail, aggregated into one
    *specerrors.InvalidSpecError.
  - Parse is reference-tolerant: unresolvable references are left in place
    and returned as warnings, while structural issues still fail.

Reference resolution is internal-only: only "#/" JSON-pointer references are
followed, with a configurable depth limit that also cuts reference cycles.
External file and HTTP references are reported as unresolved.

# Usage

	v := validator.New()
	resolved, err := v.Validate(doc)
	if err != nil {
		var invalid *specerrors.InvalidSpecError
		if errors.As(err, &invalid) && invalid.OnlyReferenceIssues() {
			resolved, warnings, err = v.Parse(doc)
		}
	}

The package performs structural validation only; full JSON-Schema validation
of payloads is out of scope.
*/
package validator
