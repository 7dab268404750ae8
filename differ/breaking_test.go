package differ

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/specdiff/normalizer"
)

func byCategory(result *Result, category ChangeCategory) []Change {
	var out []Change
	for _, c := range result.Changes {
		if c.Category == category {
			out = append(out, c)
		}
	}
	return out
}

func TestDiffRequiredParamAdded(t *testing.T) {
	oldAction := normalizer.Action{Method: "GET", Path: "/pets"}
	newAction := normalizer.Action{
		Method: "GET",
		Path:   "/pets",
		QueryParams: []normalizer.Field{
			{Key: "status", Type: normalizer.FieldTypeString, Required: true},
		},
	}

	result := Diff([]normalizer.Action{oldAction}, []normalizer.Action{newAction})
	require.Len(t, result.Changes, 1)
	c := result.Changes[0]
	assert.Equal(t, ChangeTypeBreaking, c.Type)
	assert.Equal(t, CategoryRequiredParamAdded, c.Category)
	assert.Equal(t, "Required parameter added to GET /pets: status", c.Message)
}

func TestDiffOptionalToRequiredIsBreaking(t *testing.T) {
	oldAction := normalizer.Action{
		Method:      "GET",
		Path:        "/pets",
		QueryParams: []normalizer.Field{{Key: "status", Type: normalizer.FieldTypeString}},
	}
	newAction := normalizer.Action{
		Method: "GET",
		Path:   "/pets",
		QueryParams: []normalizer.Field{
			{Key: "status", Type: normalizer.FieldTypeString, Required: true},
		},
	}

	result := Diff([]normalizer.Action{oldAction}, []normalizer.Action{newAction})
	require.Len(t, result.Changes, 1)
	assert.Equal(t, CategoryRequiredParamAdded, result.Changes[0].Category)
}

func TestDiffOptionalParamAdded(t *testing.T) {
	oldAction := normalizer.Action{Method: "GET", Path: "/pets"}
	newAction := normalizer.Action{
		Method:      "GET",
		Path:        "/pets",
		QueryParams: []normalizer.Field{{Key: "species", Type: normalizer.FieldTypeString}},
	}

	result := Diff([]normalizer.Action{oldAction}, []normalizer.Action{newAction})
	require.Len(t, result.Changes, 1)
	c := result.Changes[0]
	assert.Equal(t, ChangeTypeNonBreaking, c.Type)
	assert.Equal(t, CategoryOptionalParamAdded, c.Category)
	assert.Equal(t, "Optional parameter added to GET /pets: species", c.Message)
}

func TestDiffParamRemoved(t *testing.T) {
	oldAction := normalizer.Action{
		Method:      "GET",
		Path:        "/pets",
		QueryParams: []normalizer.Field{{Key: "limit", Type: normalizer.FieldTypeNumber}},
	}
	newAction := normalizer.Action{Method: "GET", Path: "/pets"}

	result := Diff([]normalizer.Action{oldAction}, []normalizer.Action{newAction})
	require.Len(t, result.Changes, 1)
	c := result.Changes[0]
	assert.Equal(t, ChangeTypeBreaking, c.Type)
	assert.Equal(t, CategoryParamRemoved, c.Category)
	assert.Equal(t, "Parameter removed from GET /pets: limit", c.Message)
}

func TestDiffParamTypeChanged(t *testing.T) {
	oldAction := normalizer.Action{
		Method:      "GET",
		Path:        "/pets",
		QueryParams: []normalizer.Field{{Key: "limit", Type: normalizer.FieldTypeString}},
	}
	newAction := normalizer.Action{
		Method:      "GET",
		Path:        "/pets",
		QueryParams: []normalizer.Field{{Key: "limit", Type: normalizer.FieldTypeNumber}},
	}

	result := Diff([]normalizer.Action{oldAction}, []normalizer.Action{newAction})
	require.Len(t, result.Changes, 1)
	c := result.Changes[0]
	assert.Equal(t, ChangeTypeBreaking, c.Type)
	assert.Equal(t, CategoryParamTypeChanged, c.Category)
	assert.Equal(t, "Parameter type changed on GET /pets: limit (string -> number)", c.Message)
}

func TestDiffPathAndQueryParamsCompareTogether(t *testing.T) {
	// A parameter moving between path and query compares by key, not by
	// location: same key and type means no change.
	oldAction := normalizer.Action{
		Method:     "GET",
		Path:       "/pets/{petId}",
		PathParams: []normalizer.Field{{Key: "petId", Type: normalizer.FieldTypeString, Required: true}},
	}
	newAction := normalizer.Action{
		Method: "GET",
		Path:   "/pets/{petId}",
		PathParams: []normalizer.Field{
			{Key: "petId", Type: normalizer.FieldTypeString, Required: true},
		},
		QueryParams: []normalizer.Field{{Key: "verbose", Type: normalizer.FieldTypeBoolean}},
	}

	result := Diff([]normalizer.Action{oldAction}, []normalizer.Action{newAction})
	require.Len(t, result.Changes, 1)
	assert.Equal(t, CategoryOptionalParamAdded, result.Changes[0].Category)
}

func TestDiffRequiredBodyFieldAdded(t *testing.T) {
	oldAction := normalizer.Action{
		Method: "POST",
		Path:   "/pets",
		Body:   []normalizer.Field{{Key: "name", Type: normalizer.FieldTypeString, Required: true}},
	}
	newAction := normalizer.Action{
		Method: "POST",
		Path:   "/pets",
		Body: []normalizer.Field{
			{Key: "name", Type: normalizer.FieldTypeString, Required: true},
			{Key: "ownerId", Type: normalizer.FieldTypeNumber, Required: true},
			{Key: "nickname", Type: normalizer.FieldTypeString},
		},
	}

	result := Diff([]normalizer.Action{oldAction}, []normalizer.Action{newAction})
	require.Len(t, result.Changes, 1)
	c := result.Changes[0]
	assert.Equal(t, CategoryRequiredBodyFieldAdded, c.Category)
	assert.Equal(t, "Required body field added to POST /pets: ownerId", c.Message)
}

func TestDiffExistingFieldBecomingRequiredIsNotReported(t *testing.T) {
	oldAction := normalizer.Action{
		Method: "POST",
		Path:   "/pets",
		Body:   []normalizer.Field{{Key: "tag", Type: normalizer.FieldTypeString}},
	}
	newAction := normalizer.Action{
		Method: "POST",
		Path:   "/pets",
		Body:   []normalizer.Field{{Key: "tag", Type: normalizer.FieldTypeString, Required: true}},
	}

	result := Diff([]normalizer.Action{oldAction}, []normalizer.Action{newAction})
	assert.Empty(t, result.Changes)
}

func TestDiffResponseFieldRemoved(t *testing.T) {
	oldAction := normalizer.Action{
		Method: "GET",
		Path:   "/pets",
		Response: []normalizer.Field{
			{Key: "id", Type: normalizer.FieldTypeNumber},
			{Key: "legacyCode", Type: normalizer.FieldTypeString},
		},
	}
	newAction := normalizer.Action{
		Method:   "GET",
		Path:     "/pets",
		Response: []normalizer.Field{{Key: "id", Type: normalizer.FieldTypeNumber}},
	}

	result := Diff([]normalizer.Action{oldAction}, []normalizer.Action{newAction})
	require.Len(t, result.Changes, 1)
	c := result.Changes[0]
	assert.Equal(t, ChangeTypeBreaking, c.Type)
	assert.Equal(t, CategoryResponseFieldRemoved, c.Category)
	assert.Equal(t, "Response field removed from GET /pets: legacyCode", c.Message)
}

func TestDiffDescriptionChanged(t *testing.T) {
	oldAction := normalizer.Action{Method: "GET", Path: "/pets", Description: "List pets"}
	newAction := normalizer.Action{Method: "GET", Path: "/pets", Description: "List all pets"}

	result := Diff([]normalizer.Action{oldAction}, []normalizer.Action{newAction})
	require.Len(t, result.Changes, 1)
	c := result.Changes[0]
	assert.Equal(t, ChangeTypeNonBreaking, c.Type)
	assert.Equal(t, CategoryDescriptionChanged, c.Category)
	assert.Equal(t, "Description changed for GET /pets", c.Message)
}

func TestDiffDescriptionAddedOrClearedIsSilent(t *testing.T) {
	withDesc := normalizer.Action{Method: "GET", Path: "/pets", Description: "List pets"}
	without := normalizer.Action{Method: "GET", Path: "/pets"}

	assert.Empty(t, Diff([]normalizer.Action{without}, []normalizer.Action{withDesc}).Changes)
	assert.Empty(t, Diff([]normalizer.Action{withDesc}, []normalizer.Action{without}).Changes)
}

func TestDiffBreakingRelease(t *testing.T) {
	oldActions := petstoreActions()
	newActions := []normalizer.Action{
		{
			Method:      "GET",
			Path:        "/pets",
			Description: "List all pets",
			QueryParams: []normalizer.Field{
				{Key: "limit", Type: normalizer.FieldTypeNumber},
				{Key: "status", Type: normalizer.FieldTypeString, Required: true},
			},
			Response: []normalizer.Field{
				{Key: "id", Type: normalizer.FieldTypeNumber},
				{Key: "name", Type: normalizer.FieldTypeString},
			},
		},
		oldActions[1],
		oldActions[2],
	}

	result := Diff(oldActions, newActions)
	assert.True(t, result.HasBreakingChanges())
	assert.GreaterOrEqual(t, result.BreakingCount, 2)

	removed := byCategory(result, CategoryEndpointRemoved)
	require.Len(t, removed, 1)
	assert.Equal(t, "Endpoint removed: DELETE /pets/{petId}", removed[0].Message)

	required := byCategory(result, CategoryRequiredParamAdded)
	require.Len(t, required, 1)
	assert.Equal(t, "Required parameter added to GET /pets: status", required[0].Message)
}

func TestDiffCompatibleRelease(t *testing.T) {
	oldActions := petstoreActions()
	newActions := append([]normalizer.Action{}, oldActions...)
	newActions[0].QueryParams = append(newActions[0].QueryParams,
		normalizer.Field{Key: "species", Type: normalizer.FieldTypeString})
	newActions = append(newActions, normalizer.Action{
		Method: "POST",
		Path:   "/pets/{petId}/adopt",
		PathParams: []normalizer.Field{
			{Key: "petId", Type: normalizer.FieldTypeString, Required: true},
		},
	})

	result := Diff(oldActions, newActions)
	assert.False(t, result.HasBreakingChanges())
	assert.Equal(t, 2, result.NonBreakingCount)

	added := byCategory(result, CategoryEndpointAdded)
	require.Len(t, added, 1)
	assert.Equal(t, "Endpoint added: POST /pets/{petId}/adopt", added[0].Message)

	optional := byCategory(result, CategoryOptionalParamAdded)
	require.Len(t, optional, 1)
	assert.Equal(t, "Optional parameter added to GET /pets: species", optional[0].Message)
}
