// Package summary aggregates one canonical model into display-ready counts.
//
// The output shape is a stable contract consumed by terminal renderers and
// the MCP surface: endpoint counts per method, the sorted union of tags,
// deprecation counts, and any warnings accumulated during normalization.
package summary

import (
	"sort"

	"github.com/erraggy/specdiff/normalizer"
)

// Summary is the display-ready aggregation of one canonical model.
type Summary struct {
	// Title is the API name
	Title string `json:"title"`
	// Version is the declared API version
	Version string `json:"version"`
	// BaseURL is the resolved base URL
	BaseURL string `json:"baseUrl"`
	// AuthType is the resolved authentication scheme kind
	AuthType string `json:"authType"`
	// EndpointCount is the total number of actions
	EndpointCount int `json:"endpointCount"`
	// EndpointsByMethod counts actions per HTTP method
	EndpointsByMethod map[string]int `json:"endpointsByMethod"`
	// Tags is the sorted union of all action tags
	Tags []string `json:"tags"`
	// Errors lists fatal issues; empty for a successfully normalized model
	Errors []string `json:"errors"`
	// Warnings lists non-fatal issues accumulated during normalization
	Warnings []string `json:"warnings"`
	// Deprecated counts actions marked deprecated
	Deprecated int `json:"deprecated"`
}

// Build aggregates one canonical model into a Summary.
func Build(api *normalizer.CanonicalAPI) *Summary {
	s := &Summary{
		EndpointsByMethod: make(map[string]int),
		Tags:              []string{},
		Errors:            []string{},
		Warnings:          []string{},
	}
	if api == nil {
		return s
	}

	s.Title = api.Name
	s.Version = api.Version
	s.BaseURL = api.BaseURL
	s.AuthType = string(api.Auth.Type)
	s.EndpointCount = len(api.Actions)
	s.Warnings = append(s.Warnings, api.Warnings...)

	tagSet := make(map[string]bool)
	for _, action := range api.Actions {
		s.EndpointsByMethod[action.Method]++
		if action.Deprecated {
			s.Deprecated++
		}
		for _, tag := range action.Tags {
			tagSet[tag] = true
		}
	}

	for tag := range tagSet {
		s.Tags = append(s.Tags, tag)
	}
	sort.Strings(s.Tags)

	return s
}
