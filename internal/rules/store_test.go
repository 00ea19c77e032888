package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDeleteByPattern(t *testing.T) {
	p, err := CompilePattern(`^public\.tmp_.*`)
	require.NoError(t, err)
	store := NewStore([]TablePattern{p})

	assert.True(t, store.IsDelete("public.tmp_sessions"))
	assert.False(t, store.IsDelete("public.users"))
}

func TestHasMutations(t *testing.T) {
	store := NewStore(nil)
	assert.False(t, store.HasMutations("public.users"))
	store.AddColumnRules("public.users", "email", []Spec{{MutationName: "email"}})
	assert.True(t, store.HasMutations("public.users"))
}

func TestColumnRulesUnknownReturnsNil(t *testing.T) {
	store := NewStore(nil)
	assert.Nil(t, store.ColumnRules("public.users", "email"))
}

func TestParseCopyStatement(t *testing.T) {
	table, cols, ok := ParseCopyStatement(`COPY public.users (id, email, "full name") FROM stdin;`)
	require.True(t, ok)
	assert.Equal(t, "public.users", table)
	assert.Equal(t, []string{"id", "email", "full name"}, cols)
}

func TestParseCopyStatementRejectsNonCopyLines(t *testing.T) {
	_, _, ok := ParseCopyStatement(`SELECT 1;`)
	assert.False(t, ok)
}
