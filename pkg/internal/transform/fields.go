package transform

import (
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"
	"github.com/samber/lo"

	"github.com/bildev/tastebook/pkg/internal/columns"
)

// Legacy flat image fields accepted beside (or instead of) an imagesJson
// payload. Presence is what matters, not truthiness: an explicit null is a
// valid "clear the image" signal and must survive the lift.
var legacyImageFields = []string{"imageUrl", "imageAlt", "imageWidth", "imageHeight"}

// Flat SEO fields that synthesize a seoJson when none was provided. They stay
// at the top level afterwards; older consumers still read them from there.
var seoFlatFields = []string{
	"metaTitle", "metaDescription", "canonical", "canonicalUrl",
	"ogImage", "ogTitle", "ogDescription", "twitterCard", "robots", "noIndex",
}

// Server-owned keys a request body may never set directly. Nested relation
// objects are scrubbed too; references travel as foreign key ids.
var serverOwnedFields = []string{
	"id", "createdAt", "updatedAt", "deletedAt", "depth", "viewCount",
	"language", "cachedCardJson", "cachedAuthorJson", "cachedCategoryJson",
	"parent", "children", "articles", "category", "author",
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// MakeSlug folds a human label down to a url-safe slug.
func MakeSlug(label string) string {
	slug := strings.ToLower(unidecode.Unidecode(label))
	slug = slugStrip.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

func copyBody(body map[string]any) map[string]any {
	out := make(map[string]any, len(body))
	for k, v := range body {
		out[k] = v
	}
	return out
}

func has(body map[string]any, key string) bool {
	_, ok := body[key]
	return ok
}

func hasAny(body map[string]any, keys []string) bool {
	return lo.SomeBy(keys, func(key string) bool { return has(body, key) })
}

func scrubServerOwned(out map[string]any) {
	for _, key := range serverOwnedFields {
		delete(out, key)
	}
}

// ensureSlug derives a slug from the given label field when the slug key is
// absent entirely. A provided-but-empty slug is left alone so validation can
// reject it.
func ensureSlug(out map[string]any, labelKey string) {
	if has(out, "slug") {
		return
	}
	if label, ok := out[labelKey].(string); ok && label != "" {
		out["slug"] = MakeSlug(label)
	}
}

// liftImages applies step 4 of the request transform: an explicit imagesJson
// wins; otherwise any legacy flat field synthesizes the primary slot, and the
// flat fields are consumed so they do not leak as stray columns.
func liftImages(out map[string]any, codec columns.Codec, primarySlot string) {
	if has(out, "imagesJson") {
		out["imagesJson"] = codec.Serialize(out["imagesJson"])
		return
	}
	if !hasAny(out, legacyImageFields) {
		return
	}

	slot := map[string]any{}
	if has(out, "imageUrl") {
		slot["url"] = out["imageUrl"]
	}
	if has(out, "imageAlt") {
		slot["alt"] = out["imageAlt"]
	}
	if has(out, "imageWidth") {
		slot["width"] = out["imageWidth"]
	}
	if has(out, "imageHeight") {
		slot["height"] = out["imageHeight"]
	}

	out["imagesJson"] = codec.Serialize(map[string]any{primarySlot: slot})
	for _, key := range legacyImageFields {
		delete(out, key)
	}
}

// liftSeo synthesizes seoJson from flat SEO fields when no explicit payload
// was sent. The flat fields are intentionally not deleted.
func liftSeo(out map[string]any) {
	if has(out, "seoJson") {
		out["seoJson"] = columns.SEO.Serialize(out["seoJson"])
		return
	}
	if !hasAny(out, seoFlatFields) {
		return
	}

	synth := map[string]any{}
	for _, key := range seoFlatFields {
		if has(out, key) {
			synth[key] = out[key]
		}
	}
	out["seoJson"] = columns.SEO.Serialize(synth)
}

// requireFields checks that each field is a non-empty string after all the
// lifting has run, and reports every failure together.
func requireFields(out map[string]any, fields []string) error {
	missing := lo.Filter(fields, func(key string, _ int) bool {
		v, ok := out[key].(string)
		return !ok || v == ""
	})
	if len(missing) > 0 {
		return newValidationError(missing)
	}
	return nil
}

// expandImages populates the flat imageUrl/imageAlt/imageWidth/imageHeight
// convenience fields from the first populated slot, without overwriting
// anything already present on the row.
func expandImages(out map[string]any, codec columns.Codec, slotPreference ...string) {
	parsed := codec.Parse(out["imagesJson"])
	for _, name := range slotPreference {
		slot, ok := parsed[name].(map[string]any)
		if !ok {
			continue
		}
		best := columns.BestVariant(slot["variants"])
		if best == nil {
			continue
		}
		columns.SetIfAbsent(out, "imageUrl", best["url"])
		columns.SetIfAbsent(out, "imageWidth", best["width"])
		columns.SetIfAbsent(out, "imageHeight", best["height"])
		columns.SetIfAbsent(out, "imageAlt", slot["alt"])
		return
	}
}

// expandSeo mirrors the stored seo column back onto flat response fields.
func expandSeo(out map[string]any) {
	parsed := columns.SEO.Parse(out["seoJson"])
	for _, key := range []string{
		"metaTitle", "metaDescription", "ogImage", "ogTitle",
		"ogDescription", "twitterCard", "robots", "noIndex",
	} {
		columns.SetIfAbsent(out, key, parsed[key])
	}
	columns.SetIfAbsent(out, "canonicalUrl", parsed["canonical"])
}
