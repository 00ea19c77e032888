// Package mutate implements the Mutation Registry: one concrete type
// per mutation_name, dispatched by a tagged switch in registry.go so
// that kwargs are validated once at rule-load time rather than on
// every row (original_source/src/mutator/mod.rs's Mutator enum).
package mutate

import (
	"math/rand"

	"github.com/rorycl/pgdumpanon/internal/anonerr"
	"github.com/rorycl/pgdumpanon/internal/locale"
	"github.com/rorycl/pgdumpanon/internal/unique"
)

var errMissingSecret = anonerr.New(anonerr.KindMissingSecret, "", errMissingSecretInner)

type missingSecretErr string

func (e missingSecretErr) Error() string { return string(e) }

var errMissingSecretInner = missingSecretErr("SECRET_KEY is not set; deterministic_phone_number requires it")

// Secrets carries the HMAC material deterministic_phone_number needs,
// read once from SECRET_KEY/SECRET_KEY_NONCE at startup.
type Secrets struct {
	Key   string
	Nonce string
}

// Context is the per-invocation state a Mutation.Apply call sees: the
// column's current (pre-mutation) value, the locale catalog active
// for the run, shared secrets, and the uniqueness tracker for the
// owning rule, if it declared unique: true.
type Context struct {
	Rng          *rand.Rand
	Locale       *locale.Catalog
	Secrets      Secrets
	Unique       *unique.Tracker // nil unless the rule is unique
	CurrentValue string          // column's value before mutation
	SourceValue  string          // resolved source_column value, if any
}

// Mutation is one mutation_name's behaviour, built once per rule at
// rule-load time from validated kwargs.
type Mutation interface {
	// Apply produces the replacement column value. Unique retry, if
	// the owning rule requested it, is handled by the caller via
	// ctx.Unique, not by the Mutation itself.
	Apply(ctx *Context) (string, error)
}
