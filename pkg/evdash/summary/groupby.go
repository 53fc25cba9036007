package summary

import "github.com/evdash/evdash/pkg/evdash/dal"

// Grouped holds per-key value sequences with keys in first-seen order.
type Grouped[V any] struct {
	keys    []string
	members map[string][]V
}

// Keys returns the group keys in first-occurrence order.
func (g *Grouped[V]) Keys() []string { return g.keys }

// Values returns the collected values for a key.
func (g *Grouped[V]) Values(key string) []V { return g.members[key] }

// Len returns the number of distinct keys.
func (g *Grouped[V]) Len() int { return len(g.keys) }

// GroupBy buckets records by a derived key, collecting a derived value
// per record. A record whose key function reports no key (ok false, or
// an empty string) is skipped entirely. A record whose value function
// reports no value is skipped for this grouping only, so its key may
// still appear with the values of other records.
func GroupBy[V any](
	records []dal.Record,
	keyFn func(dal.Record) (string, bool),
	valueFn func(dal.Record) (V, bool),
) *Grouped[V] {
	g := &Grouped[V]{members: make(map[string][]V)}
	for _, r := range records {
		key, ok := keyFn(r)
		if !ok || key == "" {
			continue
		}
		if _, seen := g.members[key]; !seen {
			g.keys = append(g.keys, key)
			g.members[key] = nil
		}
		if v, ok := valueFn(r); ok {
			g.members[key] = append(g.members[key], v)
		}
	}
	return g
}
