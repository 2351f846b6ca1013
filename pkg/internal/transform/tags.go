package transform

var tagRequiredFields = []string{"slug", "label"}

// TagRequest shapes a raw tag payload. Tags carry no complex JSON columns,
// so this is the simple inline mapper of the family.
func TagRequest(body map[string]any) (map[string]any, error) {
	out := copyBody(body)
	scrubServerOwned(out)
	ensureSlug(out, "label")

	if err := requireFields(out, tagRequiredFields); err != nil {
		return nil, err
	}
	return out, nil
}

// TagResponse passes a tag row through unchanged apart from the copy.
func TagResponse(row map[string]any) map[string]any {
	if row == nil {
		return nil
	}
	return copyBody(row)
}
