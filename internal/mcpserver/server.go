// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes specdiff capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/specdiff"
)

const serverInstructions = `specdiff MCP server — normalizes OpenAPI 3.x and Swagger 2.0 documents into a canonical model, summarizes them, and detects breaking changes between versions.

Configuration: All defaults are configurable via SPECDIFF_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- SPECDIFF_CACHE_FILE_TTL (default: 15m) — cache TTL for local file specs
- SPECDIFF_CACHE_URL_TTL (default: 5m) — cache TTL for URL-fetched specs
- SPECDIFF_CACHE_ENABLED (default: true) — disable model caching entirely
- SPECDIFF_MAX_INLINE_SIZE (default: 1MB) — maximum inline content size
- SPECDIFF_HTTP_TIMEOUT (default: 30s) — timeout for URL fetches

Caching: Normalized models are cached per session. File entries use path+mtime as key (auto-invalidated on change). URL entries are cached with a shorter TTL. A background sweeper removes expired entries every 60s.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		modelCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "specdiff", Version: specdiff.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse",
		Description: "Parse an OpenAPI 3.x or Swagger 2.0 document into the canonical model. Returns the API title, version, base URL, resolved auth scheme, and the full endpoint list with parameters, body fields, and response fields. Warnings report parts of the document that were skipped or degraded.",
	}, handleParse)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "diff",
		Description: "Compare two versions of an API description and report classified changes. Breaking: removed endpoints, new required parameters, removed parameters, parameter type changes, new required body fields, removed response fields. Non-breaking: added endpoints, new optional parameters, description changes. Use breaking_only=true to focus on breaking changes. Both base and revision must be provided.",
	}, handleDiff)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "summary",
		Description: "Summarize an API description: endpoint counts per HTTP method, tag union, deprecation count, auth scheme, and normalization warnings. Cheaper than parse for a quick overview of a large document.",
	}, handleSummary)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
