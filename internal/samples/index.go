package samples

import "github.com/RoaringBitmap/roaring/v2"

// SearchByFields returns samples whose payloads contain every queried field
// name, in insertion order. Each query term is tokenized the same way field
// names are at index time, and all tokens are ANDed.
func (s *Store) SearchByFields(fields []string, limit int) []*Sample {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var acc *roaring.Bitmap
	for _, field := range fields {
		for _, token := range Tokenize(field) {
			bm, ok := s.idxField[token]
			if !ok {
				return nil
			}
			if acc == nil {
				acc = bm.Clone()
			} else {
				acc.And(bm)
			}
		}
	}
	if acc == nil {
		return nil
	}

	out := make([]*Sample, 0, acc.GetCardinality())
	it := acc.Iterator()
	for it.HasNext() {
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, s.docs[it.Next()])
	}
	return out
}

// FieldNames returns the distinct indexed field tokens and how many samples
// contain each.
func (s *Store) FieldNames() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]int, len(s.idxField))
	for token, bm := range s.idxField {
		out[token] = int(bm.GetCardinality())
	}
	return out
}

// collectFieldTokens walks a parsed JSON value and gathers the tokens of
// every object key, at any depth.
func collectFieldTokens(v any) []string {
	seen := make(map[string]struct{})
	walkKeys(v, seen)

	out := make([]string, 0, len(seen))
	for token := range seen {
		out = append(out, token)
	}
	return out
}

func walkKeys(v any, seen map[string]struct{}) {
	switch val := v.(type) {
	case map[string]any:
		for k, child := range val {
			for _, token := range Tokenize(k) {
				seen[token] = struct{}{}
			}
			walkKeys(child, seen)
		}
	case []any:
		for _, child := range val {
			walkKeys(child, seen)
		}
	}
}
