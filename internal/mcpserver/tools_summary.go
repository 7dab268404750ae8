package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/specdiff/summary"
)

type summaryInput struct {
	Spec specInput `json:"spec" jsonschema:"The API description document to summarize"`
}

func handleSummary(_ context.Context, _ *mcp.CallToolRequest, input summaryInput) (*mcp.CallToolResult, summary.Summary, error) {
	api, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), summary.Summary{}, nil
	}
	return nil, *summary.Build(api), nil
}
