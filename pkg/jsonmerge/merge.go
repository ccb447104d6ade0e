// Package jsonmerge provides recursive deep-merging of parsed JSON values.
package jsonmerge

// Merge deep-merges src into dst and returns the result.
//
// When both values are JSON objects, src's entries are merged into dst
// key by key, recursively; null values in src are skipped so they never
// erase data already present in dst. In every other case src overrides
// dst wholesale (arrays are not element-merged).
//
// dst is mutated when it is an object. Use Clone first to merge into a
// copy of a value that must stay intact.
func Merge(dst, src any) any {
	dstObj, dstIsObj := dst.(map[string]any)
	srcObj, srcIsObj := src.(map[string]any)

	if dstIsObj && srcIsObj {
		for k, v := range srcObj {
			if v == nil {
				continue
			}
			dstObj[k] = Merge(dstObj[k], v)
		}
		return dstObj
	}

	return src
}

// Clone returns a deep copy of a parsed JSON value tree.
func Clone(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			out[k] = Clone(child)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, child := range val {
			out[i] = Clone(child)
		}
		return out
	default:
		return v
	}
}
