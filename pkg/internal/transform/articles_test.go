package transform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bildev/tastebook/pkg/internal/columns"
	"github.com/bildev/tastebook/pkg/internal/models"
)

func TestArticleRequestDefaultsType(t *testing.T) {
	out, err := ArticleRequest(map[string]any{"slug": "a-post", "headline": "A Post"})
	require.NoError(t, err)
	assert.Equal(t, models.ArticleTypePost, out["type"])
}

func TestArticleRequestRecipeColumn(t *testing.T) {
	out, err := ArticleRequest(map[string]any{
		"slug":     "weeknight-ramen",
		"headline": "Weeknight Ramen",
		"type":     models.ArticleTypeRecipe,
		"recipeJson": map[string]any{
			"ingredients":  []any{"noodles", "broth"},
			"servings":     float64(2),
			"prepMinutes":  float64(15),
			"secretField":  "dropped",
			"instructions": []any{"boil", "assemble"},
		},
	})
	require.NoError(t, err)

	parsed := columns.Recipe.Parse(out["recipeJson"])
	assert.Equal(t, []any{"noodles", "broth"}, parsed["ingredients"])
	assert.Equal(t, float64(2), parsed["servings"])
	_, ok := parsed["secretField"]
	assert.False(t, ok)
}

func TestArticleRequestRecipeDroppedForNonRecipe(t *testing.T) {
	out, err := ArticleRequest(map[string]any{
		"slug":       "best-soups",
		"headline":   "Best Soups",
		"type":       models.ArticleTypeRoundup,
		"recipeJson": map[string]any{"ingredients": []any{"x"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "{}", out["recipeJson"])
}

func TestArticleRequestMissingFields(t *testing.T) {
	_, err := ArticleRequest(map[string]any{"content": "body only"})

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.ElementsMatch(t, []string{"slug", "headline"}, ve.Missing)
}

func TestArticleRequestCoverIsPrimarySlot(t *testing.T) {
	out, err := ArticleRequest(map[string]any{
		"slug":     "a-post",
		"headline": "A Post",
		"imageUrl": "http://x/cover.jpg",
	})
	require.NoError(t, err)

	parsed := columns.ArticleImages.Parse(out["imagesJson"])
	_, ok := parsed["cover"]
	assert.True(t, ok)
}

func TestArticleResponseExpandsCover(t *testing.T) {
	row := map[string]any{
		"slug":       "a-post",
		"imagesJson": `{"cover":{"url":"http://x/cover.jpg","width":1200,"height":630}}`,
	}
	out := ArticleResponse(row)
	assert.Equal(t, "http://x/cover.jpg", out["imageUrl"])
	assert.Equal(t, float64(1200), out["imageWidth"])
}

func TestTagRequestAndResponse(t *testing.T) {
	out, err := TagRequest(map[string]any{"label": "Comfort Food", "color": "#aabbcc"})
	require.NoError(t, err)
	assert.Equal(t, "comfort-food", out["slug"])

	_, err = TagRequest(map[string]any{"slug": "x"})
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"label"}, ve.Missing)

	assert.Nil(t, TagResponse(nil))
	row := map[string]any{"slug": "x", "label": "X"}
	assert.Equal(t, row, TagResponse(row))
}
