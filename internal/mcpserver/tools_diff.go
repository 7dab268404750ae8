package mcpserver

import (
	"context"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/specdiff/differ"
)

type diffInput struct {
	Base         specInput `json:"base"                    jsonschema:"The base/original API description"`
	Revision     specInput `json:"revision"                jsonschema:"The revised API description to compare against the base"`
	BreakingOnly bool      `json:"breaking_only,omitempty" jsonschema:"Only show breaking changes"`
}

type diffChange struct {
	Type     string `json:"type"`
	Category string `json:"category"`
	Message  string `json:"message"`
	Method   string `json:"method,omitempty"`
	Path     string `json:"path,omitempty"`
}

type diffOutput struct {
	TotalChanges     int          `json:"total_changes"`
	BreakingCount    int          `json:"breaking_count"`
	NonBreakingCount int          `json:"non_breaking_count"`
	Changes          []diffChange `json:"changes,omitempty"`
	Summary          string       `json:"summary"`
}

func handleDiff(_ context.Context, _ *mcp.CallToolRequest, input diffInput) (*mcp.CallToolResult, diffOutput, error) {
	baseAPI, err := input.Base.resolve()
	if err != nil {
		return errResult(err), diffOutput{}, nil
	}

	revisionAPI, err := input.Revision.resolve()
	if err != nil {
		return errResult(err), diffOutput{}, nil
	}

	result := differ.Diff(actionsOf(baseAPI), actionsOf(revisionAPI))

	output := diffOutput{
		BreakingCount:    result.BreakingCount,
		NonBreakingCount: result.NonBreakingCount,
		Changes:          makeSlice[diffChange](len(result.Changes)),
	}
	for _, c := range result.Changes {
		if input.BreakingOnly && c.Type != differ.ChangeTypeBreaking {
			continue
		}
		output.Changes = append(output.Changes, diffChange{
			Type:     string(c.Type),
			Category: string(c.Category),
			Message:  c.Message,
			Method:   c.Method,
			Path:     c.Path,
		})
	}
	output.TotalChanges = len(result.Changes)
	output.Summary = buildDiffSummary(output)

	return nil, output, nil
}

func buildDiffSummary(output diffOutput) string {
	if output.TotalChanges == 0 {
		return "No changes detected."
	}

	summary := ""
	if output.BreakingCount > 0 {
		summary = "Breaking changes detected. "
	}

	summary += formatCount(output.TotalChanges, "change") + " found"
	if output.BreakingCount > 0 {
		summary += " (" + formatCount(output.BreakingCount, "breaking change") + ")."
	} else {
		summary += "."
	}

	return summary
}

func formatCount(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
