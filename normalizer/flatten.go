package normalizer

import (
	"github.com/FreezeNow/swagger-to-axios/document"
)

// maxMergeDepth bounds deep merging of mapping values. Past it, the later
// value wins as it would for a scalar.
const maxMergeDepth = 64

// Flatten returns a copy of v in which every schema carrying an allOf list is
// replaced by a single merged schema.
//
// Members are merged in list order, then the schema's own keys. Scalars are
// last-write-wins, sequences are concatenated without duplicates and mappings
// (properties, nested objects) are merged key by key. Members are flattened
// before they are merged, so an allOf reached through a member disappears too.
//
// The input is never modified. Every source node maps to exactly one output
// node, so shared subtrees stay shared and cyclic graphs terminate. Flatten is
// idempotent.
func Flatten(v *document.Value) *document.Value {
	f := &flattener{out: make(map[*document.Value]*document.Value)}
	return f.flatten(v)
}

type flattener struct {
	// out maps each source node to its flattened node
	out map[*document.Value]*document.Value
}

func (f *flattener) flatten(v *document.Value) *document.Value {
	if v == nil {
		return nil
	}
	if done, ok := f.out[v]; ok {
		return done
	}
	switch v.Kind() {
	case document.KindSequence:
		out := document.Sequence()
		f.out[v] = out
		items, _ := v.Items()
		for _, item := range items {
			out.Append(f.flatten(item))
		}
		return out
	case document.KindMapping:
		out := document.Mapping()
		f.out[v] = out
		members, composed := v.SeqField("allOf")
		if !composed {
			for _, e := range v.Entries() {
				out.Set(e.Key, f.flatten(e.Value))
			}
			return out
		}
		for _, m := range members {
			for _, e := range f.flatten(m).Entries() {
				mergeKey(out, e.Key, e.Value)
			}
		}
		for _, e := range v.Entries() {
			if e.Key == "allOf" {
				continue
			}
			mergeKey(out, e.Key, f.flatten(e.Value))
		}
		return out
	default:
		return v
	}
}

// mergeKey merges val into dst[key]. dst is a node under construction; the
// values already stored in it belong to other parts of the graph and are
// never modified.
func mergeKey(dst *document.Value, key string, val *document.Value) {
	existing, ok := dst.Get(key)
	if !ok {
		dst.Set(key, val)
		return
	}
	dst.Set(key, merge(existing, val, 0))
}

func merge(a, b *document.Value, depth int) *document.Value {
	if a == b || depth > maxMergeDepth {
		return b
	}
	switch {
	case a.IsMapping() && b.IsMapping():
		out := document.Mapping()
		for _, e := range a.Entries() {
			out.Set(e.Key, e.Value)
		}
		for _, e := range b.Entries() {
			if prev, ok := out.Get(e.Key); ok {
				out.Set(e.Key, merge(prev, e.Value, depth+1))
				continue
			}
			out.Set(e.Key, e.Value)
		}
		return out
	case a.IsSequence() && b.IsSequence():
		return union(a, b)
	default:
		return b
	}
}

// union concatenates two sequences, dropping repeated scalars and repeated
// nodes.
func union(a, b *document.Value) *document.Value {
	out := document.Sequence()
	scalars := make(map[string]bool)
	nodes := make(map[*document.Value]bool)
	for _, seq := range []*document.Value{a, b} {
		items, _ := seq.Items()
		for _, item := range items {
			if key := item.ScalarKey(); key != "" {
				if scalars[key] {
					continue
				}
				scalars[key] = true
			} else {
				if nodes[item] {
					continue
				}
				nodes[item] = true
			}
			out.Append(item)
		}
	}
	return out
}
