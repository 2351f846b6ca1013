package columns

// Slot sets per entity. Unknown slot names are dropped on normalization.
var (
	ArticleImages  = Images("cover", "thumbnail")
	CategoryImages = Images("thumbnail", "cover")
	AuthorImages   = Images("avatar", "cover", "banner")
)

// Images builds the codec for an images column holding the given slots.
func Images(slots ...string) Codec {
	return Codec{
		Kind: "images",
		normalize: func(obj map[string]any) map[string]any {
			out := map[string]any{}
			for _, name := range slots {
				raw, ok := obj[name]
				if !ok {
					continue
				}
				out[name] = NormalizeSlot(raw)
			}
			return out
		},
	}
}
