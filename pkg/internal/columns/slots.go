package columns

// Image slots live inside an entity's images column under a fixed slot name
// (avatar, cover, thumbnail, banner). Two shapes exist in stored data: the
// legacy flat form {url, alt?, width?, height?} and the canonical variant-map
// form {alt?, variants: {original?, xs?, sm?, md?, lg?}}.

type SlotShape int

const (
	// SlotShapeOpaque marks values the normalizer must pass through untouched:
	// nil, non-objects, and objects carrying neither a url nor a variant map.
	SlotShapeOpaque SlotShape = iota
	SlotShapeLegacy
	SlotShapeCanonical
)

// variantPriority is the fixed preference order for picking a display variant.
var variantPriority = []string{"lg", "md", "sm", "original", "xs"}

// ClassifySlot is the discriminant for the legacy/canonical union.
func ClassifySlot(raw any) SlotShape {
	slot, ok := raw.(map[string]any)
	if !ok || slot == nil {
		return SlotShapeOpaque
	}
	if variants, ok := slot["variants"].(map[string]any); ok && variants != nil {
		return SlotShapeCanonical
	}
	if _, ok := slot["url"]; ok {
		return SlotShapeLegacy
	}
	return SlotShapeOpaque
}

// NormalizeSlot lifts a legacy slot into canonical variant form. It is total
// and idempotent: canonical and opaque values come back unchanged.
func NormalizeSlot(raw any) any {
	switch ClassifySlot(raw) {
	case SlotShapeCanonical, SlotShapeOpaque:
		return raw
	}

	slot := raw.(map[string]any)
	original := map[string]any{
		"url":    slot["url"],
		"width":  numberOrZero(slot["width"]),
		"height": numberOrZero(slot["height"]),
	}

	out := make(map[string]any, len(slot)+1)
	for k, v := range slot {
		out[k] = v
	}
	out["variants"] = map[string]any{"original": original}
	return out
}

// BestVariant returns the highest-priority defined variant, lg down to xs.
func BestVariant(variants any) map[string]any {
	set, ok := variants.(map[string]any)
	if !ok {
		return nil
	}
	for _, name := range variantPriority {
		if variant, ok := set[name].(map[string]any); ok && variant != nil {
			return variant
		}
	}
	return nil
}

func numberOrZero(v any) any {
	switch v.(type) {
	case float64, float32, int, int64, int32, uint, uint64, uint32:
		return v
	default:
		return 0
	}
}
