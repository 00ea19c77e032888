package mutate

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/rorycl/pgdumpanon/internal/anonerr"
)

// uuid4Mutation emits a fresh random UUID per row.
type uuid4Mutation struct{}

func (uuid4Mutation) Apply(ctx *Context) (string, error) {
	return uuid.New().String(), nil
}

// uuid5BySourceValueMutation derives a stable UUIDv5 over a declared
// namespace and the sibling column named by source_column — the
// column's already-mutated value, resolved generically by the Row
// Rewriter into ctx.SourceValue — so the same input always anonymises
// to the same UUID without needing a relation entry. Grounded on
// original_source/src/mutator/identity.rs's uuid5_by_source_value.
type uuid5BySourceValueMutation struct {
	namespace uuid.UUID
}

func newUUID5BySourceValueMutation(kwargs map[string]any) (Mutation, error) {
	nsStr, err := kwargString(kwargs, "namespace", true, "")
	if err != nil {
		return nil, err
	}
	namespace, perr := uuid.Parse(nsStr)
	if perr != nil {
		return nil, anonerr.New(anonerr.KindRuleParse, "namespace", fmt.Errorf("invalid UUID namespace %q: %w", nsStr, perr))
	}
	if _, err := kwargString(kwargs, "source_column", true, ""); err != nil {
		return nil, err
	}
	return uuid5BySourceValueMutation{namespace: namespace}, nil
}

func (m uuid5BySourceValueMutation) Apply(ctx *Context) (string, error) {
	return uuid.NewSHA1(m.namespace, []byte(ctx.SourceValue)).String(), nil
}
