package columns

import "github.com/samber/lo"

// Bio is the codec for the author bio column. Social links are stored in two
// interchangeable shapes, a network→url map ("socialLinks") and an array of
// {network, url, label} entries ("socials"); whichever one is present
// produces the other on normalization.
var Bio = Codec{
	Kind: "bio",
	normalize: func(obj map[string]any) map[string]any {
		out := map[string]any{}
		for _, key := range []string{"headline", "subtitle"} {
			if v, ok := pickString(obj, key); ok {
				out[key] = v
			}
		}
		if v, ok := pickString(obj, "introduction"); ok {
			out["introduction"] = v
		} else if v, ok := pickString(obj, "short"); ok {
			out["introduction"] = v
		}
		if v, ok := pickString(obj, "fullBio"); ok {
			out["fullBio"] = v
		} else if v, ok := pickString(obj, "long"); ok {
			out["fullBio"] = v
		}
		if v, ok := pickArray(obj, "expertise"); ok {
			out["expertise"] = v
		}

		links, hasLinks := pickObject(obj, "socialLinks")
		socials, hasSocials := pickArray(obj, "socials")
		if !hasSocials {
			// The array alias may arrive under the map's key.
			socials, hasSocials = pickArray(obj, "socialLinks")
		}

		if hasSocials {
			socials = lo.Filter(socials, func(item any, _ int) bool {
				entry, ok := item.(map[string]any)
				if !ok {
					return false
				}
				_, hasNetwork := entry["network"].(string)
				_, hasURL := entry["url"].(string)
				return hasNetwork && hasURL
			})
		}

		if hasLinks {
			filtered := map[string]any{}
			for network, url := range links {
				if _, ok := url.(string); ok {
					filtered[network] = url
				}
			}
			out["socialLinks"] = filtered
			if !hasSocials {
				socials = lo.MapToSlice(filtered, func(network string, url any) any {
					return map[string]any{"network": network, "url": url}
				})
				hasSocials = true
			}
		} else if hasSocials {
			derived := map[string]any{}
			for _, item := range socials {
				entry := item.(map[string]any)
				derived[entry["network"].(string)] = entry["url"]
			}
			out["socialLinks"] = derived
		}

		if hasSocials {
			out["socials"] = socials
		}
		return out
	},
}
