package differ

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/specdiff/normalizer"
)

func action(method, path string) normalizer.Action {
	return normalizer.Action{Method: method, Path: path}
}

func petstoreActions() []normalizer.Action {
	return []normalizer.Action{
		{
			Method:      "GET",
			Path:        "/pets",
			Description: "List all pets",
			QueryParams: []normalizer.Field{
				{Key: "limit", Type: normalizer.FieldTypeNumber},
			},
			Response: []normalizer.Field{
				{Key: "id", Type: normalizer.FieldTypeNumber},
				{Key: "name", Type: normalizer.FieldTypeString},
			},
		},
		{
			Method: "POST",
			Path:   "/pets",
			Body: []normalizer.Field{
				{Key: "name", Type: normalizer.FieldTypeString, Required: true},
				{Key: "tag", Type: normalizer.FieldTypeString},
			},
		},
		{
			Method: "GET",
			Path:   "/pets/{petId}",
			PathParams: []normalizer.Field{
				{Key: "petId", Type: normalizer.FieldTypeString, Required: true},
			},
		},
		{
			Method: "DELETE",
			Path:   "/pets/{petId}",
			PathParams: []normalizer.Field{
				{Key: "petId", Type: normalizer.FieldTypeString, Required: true},
			},
		},
	}
}

func TestDiffIdenticalModels(t *testing.T) {
	result := Diff(petstoreActions(), petstoreActions())
	assert.Empty(t, result.Changes)
	assert.Zero(t, result.BreakingCount)
	assert.Zero(t, result.NonBreakingCount)
	assert.False(t, result.HasBreakingChanges())
}

func TestDiffEndpointRemovalAndAdditionAreSymmetric(t *testing.T) {
	base := petstoreActions()
	trimmed := base[:3]

	forward := Diff(base, trimmed)
	require.Len(t, forward.Changes, 1)
	assert.Equal(t, CategoryEndpointRemoved, forward.Changes[0].Category)
	assert.Equal(t, ChangeTypeBreaking, forward.Changes[0].Type)
	assert.Equal(t, "Endpoint removed: DELETE /pets/{petId}", forward.Changes[0].Message)
	assert.Equal(t, "DELETE", forward.Changes[0].Method)
	assert.Equal(t, "/pets/{petId}", forward.Changes[0].Path)

	reverse := Diff(trimmed, base)
	require.Len(t, reverse.Changes, 1)
	assert.Equal(t, CategoryEndpointAdded, reverse.Changes[0].Category)
	assert.Equal(t, ChangeTypeNonBreaking, reverse.Changes[0].Type)
	assert.Equal(t, "Endpoint added: DELETE /pets/{petId}", reverse.Changes[0].Message)
}

func TestDiffEmissionOrder(t *testing.T) {
	oldActions := []normalizer.Action{
		action("GET", "/a"),
		{
			Method:      "GET",
			Path:        "/b",
			QueryParams: []normalizer.Field{{Key: "gone", Type: normalizer.FieldTypeString}},
		},
	}
	newActions := []normalizer.Action{
		{
			Method: "GET",
			Path:   "/b",
			QueryParams: []normalizer.Field{
				{Key: "token", Type: normalizer.FieldTypeString, Required: true},
			},
		},
		action("GET", "/c"),
	}

	result := Diff(oldActions, newActions)
	require.Len(t, result.Changes, 4)
	assert.Equal(t, CategoryEndpointRemoved, result.Changes[0].Category)
	assert.Equal(t, CategoryEndpointAdded, result.Changes[1].Category)
	assert.Equal(t, CategoryRequiredParamAdded, result.Changes[2].Category)
	assert.Equal(t, CategoryParamRemoved, result.Changes[3].Category)
	assert.Equal(t, 3, result.BreakingCount)
	assert.Equal(t, 1, result.NonBreakingCount)
}

func TestDiffDuplicateKeysLastSeenWins(t *testing.T) {
	oldActions := []normalizer.Action{
		{Method: "GET", Path: "/a", Description: "stale"},
		{Method: "GET", Path: "/a", Description: "current"},
	}
	newActions := []normalizer.Action{
		{Method: "GET", Path: "/a", Description: "current"},
	}

	result := Diff(oldActions, newActions)
	assert.Empty(t, result.Changes)
}

func TestChangeString(t *testing.T) {
	breaking := Change{
		Type:     ChangeTypeBreaking,
		Category: CategoryEndpointRemoved,
		Message:  "Endpoint removed: GET /pets",
	}
	assert.Equal(t, "✗ [endpoint-removed] Endpoint removed: GET /pets", breaking.String())

	added := Change{
		Type:     ChangeTypeNonBreaking,
		Category: CategoryEndpointAdded,
		Message:  "Endpoint added: GET /pets",
	}
	assert.Equal(t, "+ [endpoint-added] Endpoint added: GET /pets", added.String())
}

func TestResultJSONContract(t *testing.T) {
	result := Diff(petstoreActions(), petstoreActions()[:3])
	data, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "changes")
	assert.Equal(t, float64(1), decoded["breakingCount"])
	assert.Equal(t, float64(0), decoded["nonBreakingCount"])

	change := decoded["changes"].([]any)[0].(map[string]any)
	assert.Equal(t, "breaking", change["type"])
	assert.Equal(t, "endpoint-removed", change["category"])
	assert.Equal(t, "DELETE", change["method"])
	assert.Equal(t, "/pets/{petId}", change["path"])
}

func TestResultJSONEmptyChangesIsArray(t *testing.T) {
	data, err := json.Marshal(Diff(nil, nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"changes":[],"breakingCount":0,"nonBreakingCount":0}`, string(data))
}
