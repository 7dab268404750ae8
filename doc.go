// Package specdiff provides tools for normalizing heterogeneous API
// description documents into one canonical model and for comparing two
// canonical models to classify differences as breaking or non-breaking.
//
// specdiff understands both major API description dialects — OpenAPI 3.x and
// Swagger 2.0 — and reduces them to a single dialect-independent model that
// downstream consumers (renderers, publishers, CI gates) can rely on.
//
// # Overview
//
// The library consists of five primary packages:
//
//   - loader: Acquire a document from a file or URL and deserialize it
//   - validator: Structural validation and internal reference resolution
//   - normalizer: Convert a validated document into the canonical model
//   - differ: Compare two canonical models and classify every change
//   - summary: Aggregate one canonical model into display-ready counts
//
// # Quick Start
//
// Normalize a document:
//
//	import (
//		"github.com/erraggy/specdiff/loader"
//		"github.com/erraggy/specdiff/normalizer"
//	)
//
//	doc, err := loader.Load("openapi.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	api, err := normalizer.New().Normalize(doc.Root)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%s %s: %d endpoints\n", api.Name, api.Version, len(api.Actions))
//
// Diff two normalized documents:
//
//	import "github.com/erraggy/specdiff/differ"
//
//	result := differ.Diff(oldAPI.Actions, newAPI.Actions)
//	if result.BreakingCount > 0 {
//		for _, c := range result.Changes {
//			fmt.Println(c)
//		}
//	}
//
// # Command-Line Interface
//
// The specdiff CLI wraps the library packages:
//
//	# Normalize and inspect a spec
//	specdiff parse openapi.yaml
//
//	# Compare two spec versions
//	specdiff diff api-v1.yaml api-v2.yaml
//
//	# Summarize a spec
//	specdiff summary openapi.yaml
//
//	# Run the MCP server over stdio
//	specdiff mcp
//
// Install the CLI:
//
//	go install github.com/erraggy/specdiff/cmd/specdiff@latest
//
// # Error Handling
//
// Document-level failures surface as typed errors from the specerrors
// package, usable with errors.Is and errors.As. Operation- and schema-level
// failures never abort normalization: they are downgraded to warnings on the
// canonical model, and the malformed fragment is omitted.
//
// # Concurrency
//
// Normalization and diffing are synchronous and share no state across calls.
// Separate invocations may run concurrently; each produces an independent,
// immutable canonical model.
package specdiff
