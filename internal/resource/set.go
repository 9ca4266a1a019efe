package resource

// TranslationSet accumulates extracted resources for one file and locale.
// Insertion order is preserved; adding a resource with a key already in the
// set overwrites the earlier record in place.
type TranslationSet struct {
	order []string
	byKey map[string]String
}

// NewTranslationSet returns an empty set.
func NewTranslationSet() *TranslationSet {
	return &TranslationSet{byKey: make(map[string]String)}
}

// Add inserts or overwrites the resource keyed by r.Key.
func (ts *TranslationSet) Add(r String) {
	if _, ok := ts.byKey[r.Key]; !ok {
		ts.order = append(ts.order, r.Key)
	}
	ts.byKey[r.Key] = r
}

// AddAll inserts every resource from other, in other's insertion order.
func (ts *TranslationSet) AddAll(other *TranslationSet) {
	if other == nil {
		return
	}
	for _, r := range other.All() {
		ts.Add(r)
	}
}

// Get returns the resource for key, if present.
func (ts *TranslationSet) Get(key string) (String, bool) {
	r, ok := ts.byKey[key]
	return r, ok
}

// All returns the resources in insertion order.
func (ts *TranslationSet) All() []String {
	out := make([]String, 0, len(ts.order))
	for _, key := range ts.order {
		out = append(out, ts.byKey[key])
	}
	return out
}

// Size returns the number of distinct keys in the set.
func (ts *TranslationSet) Size() int {
	return len(ts.order)
}
