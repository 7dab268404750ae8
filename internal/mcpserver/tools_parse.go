package mcpserver

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/specdiff/normalizer"
)

type parseInput struct {
	Spec specInput `json:"spec"           jsonschema:"The API description document to parse"`
	Full bool      `json:"full,omitempty" jsonschema:"Return the full canonical model instead of the endpoint listing"`
}

type parseEndpoint struct {
	Method     string `json:"method"`
	Path       string `json:"path"`
	Slug       string `json:"slug"`
	Label      string `json:"label"`
	ParamCount int    `json:"param_count"`
	BodyFields int    `json:"body_fields"`
	Deprecated bool   `json:"deprecated,omitempty"`
}

type parseOutput struct {
	Title         string          `json:"title"`
	Version       string          `json:"version"`
	BaseURL       string          `json:"base_url"`
	AuthType      string          `json:"auth_type"`
	EndpointCount int             `json:"endpoint_count"`
	Endpoints     []parseEndpoint `json:"endpoints,omitempty"`
	Warnings      []string        `json:"warnings,omitempty"`
	FullModel     string          `json:"full_model,omitempty"`
}

func handleParse(_ context.Context, _ *mcp.CallToolRequest, input parseInput) (*mcp.CallToolResult, parseOutput, error) {
	api, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), parseOutput{}, nil
	}

	output := parseOutput{
		Title:         api.Name,
		Version:       api.Version,
		BaseURL:       api.BaseURL,
		AuthType:      string(api.Auth.Type),
		EndpointCount: len(api.Actions),
		Endpoints:     makeSlice[parseEndpoint](len(api.Actions)),
		Warnings:      api.Warnings,
	}
	for _, action := range api.Actions {
		output.Endpoints = append(output.Endpoints, parseEndpoint{
			Method:     action.Method,
			Path:       action.Path,
			Slug:       action.Slug,
			Label:      action.Label,
			ParamCount: len(action.PathParams) + len(action.QueryParams),
			BodyFields: len(action.Body),
			Deprecated: action.Deprecated,
		})
	}

	if input.Full {
		data, err := json.MarshalIndent(api, "", "  ")
		if err != nil {
			return errResult(err), parseOutput{}, nil
		}
		output.FullModel = string(data)
	}

	return nil, output, nil
}

// actionsOf is a nil-safe accessor for a model's action list.
func actionsOf(api *normalizer.CanonicalAPI) []normalizer.Action {
	if api == nil {
		return nil
	}
	return api.Actions
}
