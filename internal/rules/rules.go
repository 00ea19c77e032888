// Package rules holds the Rule Store: mutation rules parsed from
// `anon:`-prefixed schema comments, keyed by (schema.table, column),
// plus table-level delete markers.
//
// Grounded on original_source/src/types.rs and src/processor.rs'
// parse_comment/setup_table logic.
package rules

// Condition is one entry in a rule's conjunctive condition list.
type Condition struct {
	ColumnName string `json:"column_name"`
	Operation  string `json:"operation"` // equal | not_equal | by_pattern
	Value      string `json:"value"`
}

// Relation names a cross-table FK relationship a rule participates in.
type Relation struct {
	TableName      string `json:"table_name"`
	ColumnName     string `json:"column_name"`
	FromColumnName string `json:"from_column_name"`
	ToColumnName   string `json:"to_column_name"`
}

// Spec is a single column-level rule as decoded from an `anon:`
// COMMENT ON COLUMN body. Multiple Specs may target the same column;
// they are tried in slice order and the first whose Conditions all
// hold fires (spec.md §3).
type Spec struct {
	MutationName   string         `json:"mutation_name"`
	MutationKwargs map[string]any `json:"mutation_kwargs"`
	Conditions     []Condition    `json:"conditions"`
	Relations      []Relation     `json:"relations"`
}

// TableSpec is a table-level rule as decoded from an `anon:` COMMENT
// ON TABLE body. Only "delete" is meaningful today.
type TableSpec struct {
	MutationName string `json:"mutation_name"`
}

// IsDelete reports whether this table-level rule deletes all row data.
func (t TableSpec) IsDelete() bool {
	return t.MutationName == "delete"
}

// HasSourceColumn reports whether this Spec's kwargs reference another
// column's already-mutated value via "source_column" — the dependency
// the Row Rewriter defers to the end of column processing order
// (SPEC_FULL.md §4.5 / §9).
func (s Spec) HasSourceColumn() (string, bool) {
	v, ok := s.MutationKwargs["source_column"]
	if !ok {
		return "", false
	}
	name, ok := v.(string)
	return name, ok
}
