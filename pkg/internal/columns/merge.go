package columns

// SetIfAbsent writes value under key only when the key is missing or holds an
// explicit nil. Rows marshal cleared fields as null, and for the flat
// convenience fields a null counts as unset: it may be backfilled from the
// JSON column, while any concrete value is never overwritten. Nil values are
// never written either, so absent keys stay absent.
func SetIfAbsent(target map[string]any, key string, value any) {
	if existing, ok := target[key]; ok && existing != nil {
		return
	}
	if value == nil {
		return
	}
	target[key] = value
}
