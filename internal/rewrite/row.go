package rewrite

import (
	"github.com/rorycl/pgdumpanon/internal/anonerr"
	"github.com/rorycl/pgdumpanon/internal/mutate"
	"github.com/rorycl/pgdumpanon/internal/unique"
)

// RewriteRow produces the anonymised values for one row, given its
// table's already-fetched column names and the row's raw values in
// the same order. columns and values must be the same length.
//
// Columns with no rule pass through unchanged. A column whose value
// is NullSentinel also passes through unless its selected rule is
// null/empty_string/fixed_value, the only mutations spec.md §4.5 step
// 4 requires to still run against a NULL (§8 property 8).
func (rw *Rewriter) RewriteRow(table string, columns, values []string) ([]string, error) {
	colRules, err := rw.columnsFor(table, columns)
	if err != nil {
		return nil, err
	}
	if len(colRules) == 0 {
		return values, nil
	}

	out := make([]string, len(values))
	copy(out, values)

	order := orderColumns(columns, colRules)
	mutatedByName := make(map[string]string, len(columns))
	for i, c := range columns {
		mutatedByName[c] = values[i]
	}

	for _, idx := range order {
		col := columns[idx]
		cr, ok := colRules[col]
		if !ok {
			continue
		}
		newVal, err := rw.applyColumn(table, col, cr, values[idx], mutatedByName)
		if err != nil {
			return nil, err
		}
		out[idx] = newVal
		mutatedByName[col] = newVal
	}
	return out, nil
}

// orderColumns returns column indices with source_column-dependent
// rules sorted after every independent rule, mirroring
// original_source/src/processor.rs's sort_columns_by_dependency so a
// dependent mutation always sees its source column's final value.
func orderColumns(columns []string, colRules map[string]*columnRule) []int {
	independent := make([]int, 0, len(columns))
	dependent := make([]int, 0)
	for i, c := range columns {
		cr, ok := colRules[c]
		if !ok {
			continue
		}
		if anySpecHasSource(cr) {
			dependent = append(dependent, i)
		} else {
			independent = append(independent, i)
		}
	}
	return append(independent, dependent...)
}

func anySpecHasSource(cr *columnRule) bool {
	for _, cs := range cr.specs {
		if cs.hasSource {
			return true
		}
	}
	return false
}

// applyColumn picks the first Spec on col whose conditions hold
// against the row's current values and produces its mutated
// replacement, honouring relation consistency and rule-declared
// uniqueness.
func (rw *Rewriter) applyColumn(table, col string, cr *columnRule, value string, mutatedByName map[string]string) (string, error) {
	cs := selectSpec(cr, mutatedByName)
	if cs == nil {
		return value, nil
	}

	// NULL passes through untouched except for the handful of
	// mutations spec.md §4.5 step 4 requires to still fire on it
	// (null/empty_string/fixed_value).
	if value == NullSentinel {
		na, ok := cs.mutation.(mutate.FiresOnNull)
		if !ok || !na.FiresOnNull() {
			return value, nil
		}
	}

	if cs.hasSource {
		if src, ok := mutatedByName[cs.sourceColumn]; ok {
			rw.currentSourceValue = src
		} else {
			rw.currentSourceValue = ""
		}
	} else {
		rw.currentSourceValue = ""
	}

	// Relation consistency keys on the sibling column named by
	// from_column_name, not the column being mutated (spec.md §4.5
	// step 3; original_source processor.rs:211-252).
	for _, rel := range cs.spec.Relations {
		fkValue, ok := mutatedByName[rel.FromColumnName]
		if !ok {
			continue
		}
		if existing, ok := rw.relate.Lookup(rel.TableName, rel.ToColumnName, fkValue); ok {
			return existing, nil
		}
	}

	var tracker *unique.Tracker
	if cs.unique {
		tracker = rw.trackerFor(table, col)
	}
	gen := func() (string, error) {
		return cs.mutation.Apply(&mutate.Context{
			Rng:          rw.rng,
			Locale:       rw.locale,
			Secrets:      rw.secrets,
			Unique:       tracker,
			CurrentValue: value,
			SourceValue:  rw.currentSourceValue,
		})
	}

	var result string
	var err error
	if tracker != nil {
		result, err = tracker.Generate(gen)
	} else {
		result, err = gen()
	}
	if err != nil {
		// A mutation can fail for a reason spec.md §7 gives its own exit
		// code (missing secret, unsupported locale, ...); preserve that
		// Kind instead of collapsing every failure to rule-parse.
		if ae, ok := err.(*anonerr.Error); ok {
			return "", anonerr.New(ae.Kind, table+"."+col, ae.Err)
		}
		return "", anonerr.New(anonerr.KindRuleParse, table+"."+col, err)
	}

	for _, rel := range cs.spec.Relations {
		fkValue, ok := mutatedByName[rel.FromColumnName]
		if !ok {
			continue
		}
		rw.relate.Store(rel.TableName, rel.ToColumnName, fkValue, result)
	}
	return result, nil
}

func selectSpec(cr *columnRule, mutatedByName map[string]string) *compiledSpec {
	for _, cs := range cr.specs {
		if conditionsHold(cs.spec.Conditions, cs.patterns, mutatedByName) {
			return cs
		}
	}
	return nil
}
