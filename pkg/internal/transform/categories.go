package transform

import (
	"github.com/bildev/tastebook/pkg/internal/columns"
)

var categoryRequiredFields = []string{"slug", "label", "shortDescription"}

// categoryConfigOverrides maps flat request keys into their canonical config
// column keys. Ordered so a canonical key beats its legacy aliases when both
// arrive in one payload.
var categoryConfigOverrides = [][2]string{
	{"postsPerPage", "postsPerPage"},
	{"numEntriesPerPage", "postsPerPage"},
	{"entriesPerPage", "postsPerPage"},
	{"tldr", "tldr"},
	{"showInNav", "showInNav"},
	{"showInFooter", "showInFooter"},
	{"showSidebar", "showSidebar"},
	{"showFilters", "showFilters"},
	{"showBreadcrumb", "showBreadcrumb"},
	{"showPagination", "showPagination"},
	{"layout", "layout"},
	{"layoutMode", "layout"},
	{"cardStyle", "cardStyle"},
	{"sortBy", "sortBy"},
	{"sortOrder", "sortOrder"},
	{"headerStyle", "headerStyle"},
}

// CategoryRequest shapes a raw category payload into a column-shaped object
// ready for insert or partial update.
func CategoryRequest(body map[string]any) (map[string]any, error) {
	out := copyBody(body)
	scrubServerOwned(out)
	ensureSlug(out, "label")

	overrides := map[string]any{}
	for _, pair := range categoryConfigOverrides {
		key, canonical := pair[0], pair[1]
		if !has(out, key) {
			continue
		}
		if key == "sortOrder" {
			// A numeric sortOrder is the scalar position column, not the
			// config display preference.
			if _, isString := out[key].(string); !isString {
				continue
			}
		}
		if _, staged := overrides[canonical]; !staged {
			overrides[canonical] = out[key]
		}
		delete(out, key)
	}

	liftImages(out, columns.CategoryImages, "thumbnail")
	liftSeo(out)

	if has(out, "configJson") || len(overrides) > 0 {
		merged := columns.Config.Parse(out["configJson"])
		for k, v := range overrides {
			merged[k] = v
		}
		out["configJson"] = columns.Config.Serialize(merged)
	}

	if err := requireFields(out, categoryRequiredFields); err != nil {
		return nil, err
	}
	return out, nil
}

// CategoryResponse expands the stored JSON columns of a category row into
// the flat fields API consumers expect. Nil rows pass through.
func CategoryResponse(row map[string]any) map[string]any {
	if row == nil {
		return nil
	}
	out := copyBody(row)

	expandImages(out, columns.CategoryImages, "thumbnail", "cover")
	expandSeo(out)

	parsed := columns.Config.Parse(out["configJson"])
	columns.SetIfAbsent(out, "numEntriesPerPage", parsed["postsPerPage"])
	columns.SetIfAbsent(out, "layoutMode", parsed["layout"])
	for _, key := range []string{
		"tldr", "showInNav", "showInFooter", "showSidebar", "showFilters",
		"showBreadcrumb", "showPagination", "cardStyle", "sortBy",
		"sortOrder", "headerStyle",
	} {
		columns.SetIfAbsent(out, key, parsed[key])
	}
	return out
}
