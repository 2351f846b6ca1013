package transform

import (
	"github.com/bildev/tastebook/pkg/internal/columns"
)

var authorRequiredFields = []string{"slug", "name"}

// AuthorRequest shapes a raw author payload into a column-shaped object.
func AuthorRequest(body map[string]any) (map[string]any, error) {
	out := copyBody(body)
	scrubServerOwned(out)
	ensureSlug(out, "name")

	liftImages(out, columns.AuthorImages, "avatar")
	liftSeo(out)

	if has(out, "bioJson") {
		out["bioJson"] = columns.Bio.Serialize(out["bioJson"])
	}

	if err := requireFields(out, authorRequiredFields); err != nil {
		return nil, err
	}
	return out, nil
}

// AuthorResponse expands a stored author row for API consumers.
func AuthorResponse(row map[string]any) map[string]any {
	if row == nil {
		return nil
	}
	out := copyBody(row)
	expandImages(out, columns.AuthorImages, "avatar", "cover")
	expandSeo(out)
	return out
}
