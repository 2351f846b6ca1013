package transform

import (
	"github.com/bildev/tastebook/pkg/internal/columns"
	"github.com/bildev/tastebook/pkg/internal/models"
)

var articleRequiredFields = []string{"slug", "headline"}

// ArticleRequest shapes a raw article payload into a column-shaped object.
// The type defaults to a plain post; the recipe column is only kept for
// recipe-typed articles.
func ArticleRequest(body map[string]any) (map[string]any, error) {
	out := copyBody(body)
	scrubServerOwned(out)
	ensureSlug(out, "headline")

	if _, ok := out["type"].(string); !ok {
		out["type"] = models.ArticleTypePost
	}

	liftImages(out, columns.ArticleImages, "cover")

	if has(out, "recipeJson") {
		if out["type"] == models.ArticleTypeRecipe {
			out["recipeJson"] = columns.Recipe.Serialize(out["recipeJson"])
		} else {
			out["recipeJson"] = "{}"
		}
	}

	if err := requireFields(out, articleRequiredFields); err != nil {
		return nil, err
	}
	return out, nil
}

// ArticleResponse expands a stored article row for API consumers.
func ArticleResponse(row map[string]any) map[string]any {
	if row == nil {
		return nil
	}
	out := copyBody(row)
	expandImages(out, columns.ArticleImages, "cover", "thumbnail")
	return out
}
