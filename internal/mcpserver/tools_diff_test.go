package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const diffBaseSpec = `openapi: "3.0.0"
info:
  title: Pet Store
  version: "1.0.0"
paths:
  /pets:
    get:
      operationId: listPets
      responses:
        "200":
          description: OK
  /pets/{petId}:
    delete:
      operationId: deletePet
      parameters:
        - name: petId
          in: path
          required: true
          schema:
            type: string
      responses:
        "204":
          description: Deleted
`

const diffRevisedSpec = `openapi: "3.0.0"
info:
  title: Pet Store
  version: "2.0.0"
paths:
  /pets:
    get:
      operationId: listPets
      parameters:
        - name: status
          in: query
          required: true
          schema:
            type: string
      responses:
        "200":
          description: OK
    post:
      operationId: createPet
      responses:
        "201":
          description: Created
`

func TestDiffTool_DetectsChanges(t *testing.T) {
	modelCache.reset()

	input := diffInput{
		Base:     specInput{Content: diffBaseSpec},
		Revision: specInput{Content: diffRevisedSpec},
	}
	_, output, err := handleDiff(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, 3, output.TotalChanges)
	assert.Equal(t, 2, output.BreakingCount)
	assert.Equal(t, 1, output.NonBreakingCount)
	assert.Contains(t, output.Summary, "Breaking changes detected")

	categories := make([]string, 0, len(output.Changes))
	for _, c := range output.Changes {
		categories = append(categories, c.Category)
		assert.NotEmpty(t, c.Type)
		assert.NotEmpty(t, c.Message)
	}
	assert.Equal(t, []string{
		"endpoint-removed", "endpoint-added", "required-param-added",
	}, categories)
}

func TestDiffTool_BreakingOnly(t *testing.T) {
	modelCache.reset()

	input := diffInput{
		Base:         specInput{Content: diffBaseSpec},
		Revision:     specInput{Content: diffRevisedSpec},
		BreakingOnly: true,
	}
	_, output, err := handleDiff(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	require.Len(t, output.Changes, 2)
	for _, c := range output.Changes {
		assert.Equal(t, "breaking", c.Type)
	}
	// Counts still reflect the full change set.
	assert.Equal(t, 3, output.TotalChanges)
	assert.Equal(t, 1, output.NonBreakingCount)
}

func TestDiffTool_NoChanges(t *testing.T) {
	modelCache.reset()

	input := diffInput{
		Base:     specInput{Content: diffBaseSpec},
		Revision: specInput{Content: diffBaseSpec},
	}
	_, output, err := handleDiff(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Zero(t, output.TotalChanges)
	assert.Empty(t, output.Changes)
	assert.Equal(t, "No changes detected.", output.Summary)
}

func TestDiffTool_MissingRevision(t *testing.T) {
	input := diffInput{Base: specInput{Content: diffBaseSpec}}
	result, _, err := handleDiff(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
