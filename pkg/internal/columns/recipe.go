package columns

// Recipe is the codec for the article recipe column (recipe-typed articles
// only; roundups and plain posts store "{}").
var Recipe = Codec{
	Kind: "recipe",
	normalize: func(obj map[string]any) map[string]any {
		out := map[string]any{}
		for _, key := range []string{"ingredients", "instructions"} {
			if v, ok := pickArray(obj, key); ok {
				out[key] = v
			}
		}
		if v, ok := pickObject(obj, "nutrition"); ok {
			out["nutrition"] = v
		}
		for _, key := range []string{"prepMinutes", "cookMinutes", "totalMinutes", "servings"} {
			if v, ok := pickNumber(obj, key); ok {
				out[key] = v
			}
		}
		if v, ok := pickString(obj, "difficulty"); ok {
			out["difficulty"] = v
		}
		return out
	},
}
