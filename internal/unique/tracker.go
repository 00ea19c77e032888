// Package unique tracks previously emitted values per mutation rule so
// that mutations declared unique never repeat a value within a run.
package unique

import "github.com/rorycl/pgdumpanon/internal/anonerr"

// MaxRetries bounds how many candidates Generate will draw from gen
// before giving up. spec.md §3 suggests 1000; this is that suggestion.
const MaxRetries = 1000

// Tracker is a per-rule set of emitted values.
type Tracker struct {
	seen map[string]struct{}
}

// NewTracker returns an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{seen: make(map[string]struct{})}
}

// TryInsert reports whether value was not already present, inserting
// it either way is not correct — it inserts only on success.
func (t *Tracker) TryInsert(value string) bool {
	if _, ok := t.seen[value]; ok {
		return false
	}
	t.seen[value] = struct{}{}
	return true
}

// Generate calls gen until it produces a value not already tracked,
// inserts it, and returns it. It fails with KindUniquenessExhausted
// after MaxRetries attempts.
func (t *Tracker) Generate(gen func() (string, error)) (string, error) {
	for i := 0; i < MaxRetries; i++ {
		v, err := gen()
		if err != nil {
			return "", err
		}
		if t.TryInsert(v) {
			return v, nil
		}
	}
	return "", anonerr.New(anonerr.KindUniquenessExhausted, "", errTooManyRetries)
}

// Reset clears the tracker. The Row Rewriter keeps one tracker per
// table.column for the whole run and never calls Reset.
func (t *Tracker) Reset() {
	t.seen = make(map[string]struct{})
}

var errTooManyRetries = uniqueExhaustedErr("could not generate a unique value after the retry budget")

type uniqueExhaustedErr string

func (e uniqueExhaustedErr) Error() string { return string(e) }
