package plainfmt

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rorycl/pgdumpanon/internal/locale"
	"github.com/rorycl/pgdumpanon/internal/mutate"
	"github.com/rorycl/pgdumpanon/internal/relate"
	"github.com/rorycl/pgdumpanon/internal/rewrite"
	"github.com/rorycl/pgdumpanon/internal/rules"
)

func newProcessor(store *rules.Store) *Processor {
	rw := rewrite.New(store, relate.NewStore(), locale.Get(locale.EN), mutate.Secrets{}, rand.New(rand.NewSource(1)))
	return New(store, rw, "\t", zerolog.Nop())
}

func TestRunPassesThroughUntouchedTable(t *testing.T) {
	store := rules.NewStore(nil)
	p := newProcessor(store)

	input := "CREATE TABLE public.users (id integer);\n" +
		"COPY public.users (id) FROM stdin;\n" +
		"1\n" +
		"2\n" +
		`\.` + "\n"

	var out bytes.Buffer
	require.NoError(t, p.Run(strings.NewReader(input), &out))
	assert.Equal(t, input, out.String())
}

func TestRunAppliesColumnRuleFromComment(t *testing.T) {
	store := rules.NewStore(nil)
	p := newProcessor(store)

	input := `COMMENT ON COLUMN public.users.email IS 'anon: {"mutation_name": "fixed_value", "mutation_kwargs": {"value": "redacted"}}';` + "\n" +
		"COPY public.users (id, email) FROM stdin;\n" +
		"1\talice@example.com\n" +
		`\.` + "\n"

	var out bytes.Buffer
	require.NoError(t, p.Run(strings.NewReader(input), &out))
	assert.Contains(t, out.String(), "1\tredacted\n")
}

func TestRunSuppressesDeleteFlaggedTable(t *testing.T) {
	store := rules.NewStore(nil)
	p := newProcessor(store)

	comment := `COMMENT ON TABLE public.sessions IS 'anon: {"mutation_name": "delete"}';` + "\n"
	input := comment +
		"COPY public.sessions (id) FROM stdin;\n" +
		"1\n" +
		"2\n" +
		`\.` + "\n"

	// The COMMENT statement is DDL and stays; the COPY header, rows and
	// terminator are suppressed.
	var out bytes.Buffer
	require.NoError(t, p.Run(strings.NewReader(input), &out))
	assert.Equal(t, comment, out.String())
}

func TestRunPassesThroughNullUnmutated(t *testing.T) {
	store := rules.NewStore(nil)
	// email does not fire on NULL (unlike null/empty_string/fixed_value),
	// so the \N must come through unchanged.
	store.AddColumnRules("public.users", "email", []rules.Spec{{MutationName: "email"}})
	p := newProcessor(store)

	input := "COPY public.users (id, email) FROM stdin;\n" +
		"1\t\\N\n" +
		`\.` + "\n"

	var out bytes.Buffer
	require.NoError(t, p.Run(strings.NewReader(input), &out))
	assert.Contains(t, out.String(), "1\t\\N\n")
}
