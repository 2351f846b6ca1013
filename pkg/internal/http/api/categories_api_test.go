package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bildev/tastebook/pkg/internal/models"
)

func TestCategoryTreeResponseExpandsChildren(t *testing.T) {
	grandchild := &models.Category{
		BaseModel: models.BaseModel{ID: 3},
		Slug:      "broths",
	}
	child := &models.Category{
		BaseModel:  models.BaseModel{ID: 2},
		Slug:       "stews",
		ImagesJSON: `{"thumbnail":{"url":"http://x/stews.jpg","width":64,"height":64}}`,
		Children:   []*models.Category{grandchild},
	}
	root := &models.Category{
		BaseModel: models.BaseModel{ID: 1},
		Slug:      "soups",
		Children:  []*models.Category{child},
	}

	out := categoryTreeResponse(root)
	assert.Equal(t, "soups", out["slug"])

	children, ok := out["children"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, children, 1)
	assert.Equal(t, "stews", children[0]["slug"])
	assert.Equal(t, "http://x/stews.jpg", children[0]["imageUrl"])

	grandchildren, ok := children[0]["children"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, grandchildren, 1)
	assert.Equal(t, "broths", grandchildren[0]["slug"])
}
