package transform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bildev/tastebook/pkg/internal/columns"
)

func TestAuthorRequestLegacyImageBecomesAvatar(t *testing.T) {
	out, err := AuthorRequest(map[string]any{
		"slug":        "jane-doe",
		"name":        "Jane Doe",
		"imageUrl":    "http://x/img.jpg",
		"imageWidth":  float64(100),
		"imageHeight": float64(50),
	})
	require.NoError(t, err)

	for _, key := range []string{"imageUrl", "imageWidth", "imageHeight"} {
		_, ok := out[key]
		assert.False(t, ok, key)
	}

	parsed := columns.AuthorImages.Parse(out["imagesJson"])
	avatar, ok := parsed["avatar"].(map[string]any)
	require.True(t, ok)
	original := avatar["variants"].(map[string]any)["original"].(map[string]any)
	assert.Equal(t, "http://x/img.jpg", original["url"])
	assert.Equal(t, float64(100), original["width"])
	assert.Equal(t, float64(50), original["height"])
}

func TestAuthorRequestMissingName(t *testing.T) {
	_, err := AuthorRequest(map[string]any{"slug": "jane-doe"})

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"name"}, ve.Missing)
}

func TestAuthorRequestBioNormalized(t *testing.T) {
	out, err := AuthorRequest(map[string]any{
		"slug": "jane-doe",
		"name": "Jane Doe",
		"bioJson": map[string]any{
			"short": "Cook and writer",
			"socials": []any{
				map[string]any{"network": "instagram", "url": "https://ig/jane"},
			},
		},
	})
	require.NoError(t, err)

	parsed := columns.Bio.Parse(out["bioJson"])
	assert.Equal(t, "Cook and writer", parsed["introduction"])
	links := parsed["socialLinks"].(map[string]any)
	assert.Equal(t, "https://ig/jane", links["instagram"])
}

func TestAuthorResponsePrefersAvatarThenCover(t *testing.T) {
	row := map[string]any{
		"slug":       "jane-doe",
		"imagesJson": `{"cover":{"url":"http://x/cover.jpg","width":1,"height":1}}`,
	}
	out := AuthorResponse(row)
	assert.Equal(t, "http://x/cover.jpg", out["imageUrl"])

	row["imagesJson"] = `{"avatar":{"url":"http://x/avatar.jpg","width":1,"height":1},"cover":{"url":"http://x/cover.jpg","width":1,"height":1}}`
	out = AuthorResponse(row)
	assert.Equal(t, "http://x/avatar.jpg", out["imageUrl"])
}

func TestAuthorResponseBestVariantWins(t *testing.T) {
	row := map[string]any{
		"slug": "jane-doe",
		"imagesJson": `{"avatar":{"variants":{
			"original":{"url":"http://x/original.jpg","width":1000,"height":1000},
			"md":{"url":"http://x/md.jpg","width":300,"height":300},
			"lg":{"url":"http://x/lg.jpg","width":600,"height":600}
		}}}`,
	}
	out := AuthorResponse(row)
	assert.Equal(t, "http://x/lg.jpg", out["imageUrl"])
	assert.Equal(t, float64(600), out["imageWidth"])
}
