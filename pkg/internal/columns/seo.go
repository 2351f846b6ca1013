package columns

// SEO is the codec for seo columns shared by categories and authors.
// The stored shape keys canonical under "canonical"; the request side may
// only carry the legacy "canonicalUrl" alias.
var SEO = Codec{
	Kind: "seo",
	normalize: func(obj map[string]any) map[string]any {
		out := map[string]any{}
		for _, key := range []string{
			"metaTitle", "metaDescription", "ogImage", "ogTitle",
			"ogDescription", "twitterCard", "robots",
		} {
			if v, ok := pickString(obj, key); ok {
				out[key] = v
			}
		}
		if v, ok := pickString(obj, "canonical"); ok {
			out["canonical"] = v
		} else if v, ok := pickString(obj, "canonicalUrl"); ok {
			out["canonical"] = v
		}
		if v, ok := pickBool(obj, "noIndex"); ok {
			out["noIndex"] = v
		}
		return out
	},
}
