package columns

// configToggles are the boolean display switches of a category config.
var configToggles = []string{
	"showInNav", "showInFooter", "showSidebar",
	"showFilters", "showBreadcrumb", "showPagination",
}

// Config is the codec for the category layout-config column. Every field is
// kept only when its source value has the exact expected type; mismatches
// are dropped, not coerced.
var Config = Codec{
	Kind: "config",
	normalize: func(obj map[string]any) map[string]any {
		out := map[string]any{}

		if v, ok := pickNumber(obj, "postsPerPage"); ok {
			out["postsPerPage"] = v
		} else if v, ok := pickNumber(obj, "numEntriesPerPage"); ok {
			out["postsPerPage"] = v
		} else if v, ok := pickNumber(obj, "entriesPerPage"); ok {
			out["postsPerPage"] = v
		}

		if v, ok := pickString(obj, "tldr"); ok {
			out["tldr"] = v
		}

		for _, key := range configToggles {
			if v, ok := pickBool(obj, key); ok {
				out[key] = v
			}
		}

		if v, ok := pickString(obj, "layout"); ok {
			out["layout"] = v
		} else if v, ok := pickString(obj, "layoutMode"); ok {
			out["layout"] = v
		}

		for _, key := range []string{"cardStyle", "sortBy", "sortOrder", "headerStyle"} {
			if v, ok := pickString(obj, key); ok {
				out[key] = v
			}
		}
		return out
	},
}
