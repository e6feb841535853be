package data

import "maps"

// mergeInto copies src into dst. Nested maps present on both sides are merged
// recursively, anything else in src replaces the value in dst.
func mergeInto(dst, src map[string]any) {
	for k, v := range src {
		srcMap, srcIsMap := v.(map[string]any)
		dstMap, dstIsMap := dst[k].(map[string]any)
		if srcIsMap && dstIsMap {
			merged := maps.Clone(dstMap)
			mergeInto(merged, srcMap)
			dst[k] = merged
			continue
		}
		dst[k] = v
	}
}

// cloneData copies m and every nested map[string]any inside it.
func cloneData(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if nested, ok := v.(map[string]any); ok {
			out[k] = cloneData(nested)
			continue
		}
		out[k] = v
	}
	return out
}
