/*
Package normalizer converts API description documents into one canonical,
dialect-independent model.

Two dialects are supported: OpenAPI 3.x and Swagger 2.0. Each is handled by a
dedicated extractor behind a common interface, selected by dialect detection
on the document's version marker. Both extractors share the field flattener
and its type-mapping rule, so a given schema shape always produces the same
canonical fields regardless of dialect.

# Usage

	n := normalizer.New()
	api, err := n.Normalize(doc.Root)
	if err != nil {
		log.Fatal(err)
	}
	for _, action := range api.Actions {
		fmt.Printf("%s %s (%s)\n", action.Method, action.Path, action.Slug)
	}

# Validation

Normalize first validates the document through a narrow two-method interface
(see DocumentValidator). The default implementation is the validator package;
any compliant implementation can be substituted:

	n := normalizer.New()
	n.Validator = myValidator

When strict validation fails only because of unresolved references, the
normalizer retries in reference-tolerant mode and records a warning instead
of failing.

# Degradation guarantees

One malformed operation or schema fragment degrades that fragment only:
operation-level failures are downgraded to warnings and the operation is
omitted; schema-level failures yield an empty field list for that subtree.
Document-level failures (invalid structure, unrecognized dialect) are
terminal and surface as typed errors from the specerrors package.

# Concurrency

A Normalizer is stateless between calls; warnings accumulate in a per-call
sink. Independent Normalize calls may run concurrently.
*/
package normalizer
