// Package rewrite implements the Row Rewriter: given a table's
// cached column rules, it turns one row of raw column values into one
// row of anonymised column values, handling condition matching,
// cross-table relation consistency, and per-rule uniqueness retry.
//
// Grounded on original_source/src/processor.rs's row-processing loop
// and src/conditions.rs's condition evaluation.
package rewrite

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/dlclark/regexp2"

	"github.com/rorycl/pgdumpanon/internal/anonerr"
	"github.com/rorycl/pgdumpanon/internal/locale"
	"github.com/rorycl/pgdumpanon/internal/mutate"
	"github.com/rorycl/pgdumpanon/internal/relate"
	"github.com/rorycl/pgdumpanon/internal/rules"
	"github.com/rorycl/pgdumpanon/internal/unique"
)

// NullSentinel is the COPY text-format marker pg_dump uses for a SQL
// NULL. Plain-format rows and custom-format DATA block rows both carry
// it verbatim, so this package has one NULL representation to reason
// about.
const NullSentinel = `\N`

// compiledSpec is one Spec compiled once per table: condition
// patterns precompiled, the mutation built, and the source_column
// dependency resolved, so a row doesn't pay rule-load cost per cell.
type compiledSpec struct {
	spec         rules.Spec
	mutation     mutate.Mutation
	patterns     []*regexp2.Regexp // aligned to spec.Conditions; nil entries for non-by_pattern operations
	sourceColumn string
	hasSource    bool
	unique       bool
}

// columnRule holds every Spec declared for one column, in declaration
// order, so RewriteRow can pick the first whose conditions hold.
type columnRule struct {
	specs []*compiledSpec
}

// Rewriter turns raw rows into anonymised rows for every table its
// Store has rules for.
type Rewriter struct {
	store    *rules.Store
	relate   *relate.Store
	locale   *locale.Catalog
	secrets  mutate.Secrets
	rng      *rand.Rand
	trackers map[string]*unique.Tracker // "table.column" -> tracker

	compiled map[string]map[string]*columnRule // table -> column -> compiled rule

	currentSourceValue string // resolved source_column value for the cell in progress
}

// New builds a Rewriter. rng should be a single shared source; with a
// fixed seed, the mutations that draw from it repeat their output from
// run to run. uuid4, ipv4/ipv6 and the numeric_decimal/numeric_real/
// numeric_double_precision mutations use their own random sources and
// do not follow this seed.
func New(store *rules.Store, relateStore *relate.Store, loc *locale.Catalog, secrets mutate.Secrets, rng *rand.Rand) *Rewriter {
	return &Rewriter{
		store:    store,
		relate:   relateStore,
		locale:   loc,
		secrets:  secrets,
		rng:      rng,
		trackers: make(map[string]*unique.Tracker),
		compiled: make(map[string]map[string]*columnRule),
	}
}

// HasRules reports whether table has any column rules to apply, so
// callers can skip the Rewriter entirely for untouched tables.
func (rw *Rewriter) HasRules(table string) bool {
	return rw.store.HasMutations(table)
}

// columnsFor compiles (and caches) the rules for table, returning a
// map from column name to its compiled rule.
func (rw *Rewriter) columnsFor(table string, columns []string) (map[string]*columnRule, error) {
	if m, ok := rw.compiled[table]; ok {
		return m, nil
	}
	m := make(map[string]*columnRule)
	for _, col := range columns {
		specs := rw.store.ColumnRules(table, col)
		if len(specs) == 0 {
			continue
		}
		cr, err := compileColumn(specs)
		if err != nil {
			return nil, err
		}
		for _, cs := range cr.specs {
			if cs.hasSource && !slices.Contains(columns, cs.sourceColumn) {
				return nil, anonerr.New(anonerr.KindRuleParse, table+"."+col,
					fmt.Errorf("source_column %q is not in the COPY column list", cs.sourceColumn))
			}
		}
		m[col] = cr
	}
	rw.compiled[table] = m
	return m, nil
}

// compileColumn compiles every Spec declared for a column, in
// declaration order, so RewriteRow can evaluate each one's conditions
// per row and fire the first that holds (spec.md §3).
func compileColumn(specs []rules.Spec) (*columnRule, error) {
	cr := &columnRule{specs: make([]*compiledSpec, 0, len(specs))}
	for _, spec := range specs {
		mut, err := mutate.Load(spec.MutationName, spec.MutationKwargs)
		if err != nil {
			return nil, err
		}
		patterns, err := compilePatterns(spec.Conditions)
		if err != nil {
			return nil, err
		}
		srcCol, hasSrc := spec.HasSourceColumn()
		uniqueFlag, _ := spec.MutationKwargs["unique"].(bool)
		cr.specs = append(cr.specs, &compiledSpec{
			spec:         spec,
			mutation:     mut,
			patterns:     patterns,
			sourceColumn: srcCol,
			hasSource:    hasSrc,
			unique:       uniqueFlag,
		})
	}
	return cr, nil
}

func compilePatterns(conds []rules.Condition) ([]*regexp2.Regexp, error) {
	out := make([]*regexp2.Regexp, len(conds))
	for i, c := range conds {
		if c.Operation != "by_pattern" {
			continue
		}
		re, err := regexp2.Compile(c.Value, regexp2.None)
		if err != nil {
			return nil, err
		}
		out[i] = re
	}
	return out, nil
}

// conditionsHold reports whether every condition in the Spec holds —
// a conjunction, per spec.md §3. An empty condition list is vacuously
// true (an unconditional rule). Each condition names its own sibling
// column via ColumnName (spec.md §4.5 step 2; original_source
// conditions.rs looks up column_indices[condition.column_name]), so
// the comparison value comes from rowValues, not the column the rule
// itself is mutating.
func conditionsHold(conds []rules.Condition, patterns []*regexp2.Regexp, rowValues map[string]string) bool {
	for i, c := range conds {
		value, ok := rowValues[c.ColumnName]
		if !ok {
			return false
		}
		switch c.Operation {
		case "equal":
			if value != c.Value {
				return false
			}
		case "not_equal":
			if value == c.Value {
				return false
			}
		case "by_pattern":
			if patterns[i] == nil {
				return false
			}
			ok, err := patterns[i].MatchString(value)
			if err != nil || !ok {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func (rw *Rewriter) trackerFor(table, column string) *unique.Tracker {
	key := table + "." + column
	t, ok := rw.trackers[key]
	if !ok {
		t = unique.NewTracker()
		rw.trackers[key] = t
	}
	return t
}
