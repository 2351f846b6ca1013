package columns

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMalformedInput(t *testing.T) {
	for _, stored := range []any{nil, "", "{not json", "[1,2,3]", `"just a string"`, float64(42)} {
		assert.Equal(t, map[string]any{}, SEO.Parse(stored), "stored=%v", stored)
	}
}

func TestSerializeRoundTripStable(t *testing.T) {
	in := map[string]any{
		"metaTitle":   "Soups",
		"canonical":   "https://example.com/soups",
		"noIndex":     true,
		"strayField":  "dropped",
		"twitterCard": "summary",
	}

	first := SEO.Serialize(in)
	second := SEO.Serialize(first)
	assert.Equal(t, SEO.Parse(first), SEO.Parse(second))

	parsed := SEO.Parse(first)
	assert.Equal(t, "Soups", parsed["metaTitle"])
	assert.Equal(t, "https://example.com/soups", parsed["canonical"])
	assert.Equal(t, true, parsed["noIndex"])
	_, stray := parsed["strayField"]
	assert.False(t, stray)
}

func TestSerializeEmptyInput(t *testing.T) {
	assert.Equal(t, "{}", SEO.Serialize(nil))
	assert.Equal(t, "{}", Config.Serialize("broken{"))
}

func TestSEOCanonicalAlias(t *testing.T) {
	parsed := SEO.Parse(map[string]any{"canonicalUrl": "https://example.com/a"})
	assert.Equal(t, "https://example.com/a", parsed["canonical"])

	// An explicit canonical wins over the alias.
	parsed = SEO.Parse(map[string]any{
		"canonical":    "https://example.com/real",
		"canonicalUrl": "https://example.com/legacy",
	})
	assert.Equal(t, "https://example.com/real", parsed["canonical"])
}

func TestImagesCodecDropsUnknownSlots(t *testing.T) {
	stored, err := jsoniter.MarshalToString(map[string]any{
		"thumbnail": map[string]any{"url": "http://x/t.jpg", "width": 10, "height": 10},
		"sidebar":   map[string]any{"url": "http://x/s.jpg"},
	})
	require.NoError(t, err)

	parsed := CategoryImages.Parse(stored)
	_, ok := parsed["sidebar"]
	assert.False(t, ok)

	thumb, ok := parsed["thumbnail"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, SlotShapeCanonical, ClassifySlot(thumb))
}

func TestConfigTypedProjection(t *testing.T) {
	parsed := Config.Parse(map[string]any{
		"postsPerPage":   float64(12),
		"tldr":           "short one",
		"showInNav":      true,
		"showSidebar":    "yes", // wrong type, dropped
		"layout":         "grid",
		"sortBy":         float64(3), // wrong type, dropped
		"unknownSetting": "x",
	})

	assert.Equal(t, float64(12), parsed["postsPerPage"])
	assert.Equal(t, "short one", parsed["tldr"])
	assert.Equal(t, true, parsed["showInNav"])
	assert.Equal(t, "grid", parsed["layout"])
	for _, dropped := range []string{"showSidebar", "sortBy", "unknownSetting"} {
		_, ok := parsed[dropped]
		assert.False(t, ok, dropped)
	}
}

func TestConfigAliases(t *testing.T) {
	parsed := Config.Parse(map[string]any{"numEntriesPerPage": float64(8), "layoutMode": "list"})
	assert.Equal(t, float64(8), parsed["postsPerPage"])
	assert.Equal(t, "list", parsed["layout"])
}

func TestBioFallbacksAndSocials(t *testing.T) {
	parsed := Bio.Parse(map[string]any{
		"headline":  "Head of Soup",
		"short":     "intro text",
		"long":      "full text",
		"expertise": []any{"broth", "stock"},
		"socials": []any{
			map[string]any{"network": "instagram", "url": "https://ig/x", "label": "IG"},
			map[string]any{"network": "twitter"}, // no url, dropped
			"garbage",
		},
	})

	assert.Equal(t, "intro text", parsed["introduction"])
	assert.Equal(t, "full text", parsed["fullBio"])
	assert.Equal(t, []any{"broth", "stock"}, parsed["expertise"])

	socials := parsed["socials"].([]any)
	require.Len(t, socials, 1)
	links := parsed["socialLinks"].(map[string]any)
	assert.Equal(t, "https://ig/x", links["instagram"])
}

func TestBioMapToArrayDerivation(t *testing.T) {
	parsed := Bio.Parse(map[string]any{
		"socialLinks": map[string]any{
			"youtube": "https://yt/x",
			"broken":  float64(1), // non-string value, filtered
		},
	})

	links := parsed["socialLinks"].(map[string]any)
	assert.Equal(t, map[string]any{"youtube": "https://yt/x"}, links)

	socials := parsed["socials"].([]any)
	require.Len(t, socials, 1)
	entry := socials[0].(map[string]any)
	assert.Equal(t, "youtube", entry["network"])
	assert.Equal(t, "https://yt/x", entry["url"])
}

func TestBioExpertiseWrongTypeDropped(t *testing.T) {
	parsed := Bio.Parse(map[string]any{"expertise": "not an array"})
	_, ok := parsed["expertise"]
	assert.False(t, ok)
}

func TestSetIfAbsent(t *testing.T) {
	target := map[string]any{"imageUrl": "http://keep/me", "empty": nil}
	SetIfAbsent(target, "imageUrl", "http://new/url")
	SetIfAbsent(target, "empty", "filled")
	SetIfAbsent(target, "fresh", "value")
	SetIfAbsent(target, "nothing", nil)

	assert.Equal(t, "http://keep/me", target["imageUrl"])
	assert.Equal(t, "filled", target["empty"])
	assert.Equal(t, "value", target["fresh"])
	_, ok := target["nothing"]
	assert.False(t, ok)
}
