package rules

import (
	"regexp"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/rorycl/pgdumpanon/internal/anonerr"
)

// commentColumnRE and commentTableRE match the two comment
// statements pg_dump emits for schema objects carrying a COMMENT.
// Only statements whose body starts with "anon:" carry mutation
// rules; everything else is left for the writer to pass through
// untouched.
//
// Grounded on original_source/src/processor.rs's comment_column_re /
// comment_table_re.
var (
	commentColumnRE = regexp.MustCompile(
		`^COMMENT ON COLUMN\s+([\w."]+)\.([\w."]+)\.([\w."]+)\s+IS\s+'(.*)';\s*$`)
	commentTableRE = regexp.MustCompile(
		`^COMMENT ON TABLE\s+([\w."]+)\.([\w."]+)\s+IS\s+'(.*)';\s*$`)
)

const anonPrefix = "anon:"

// unescapeSQLString undoes pg_dump's '' escaping of a literal quote
// inside a single-quoted string.
func unescapeSQLString(s string) string {
	return strings.ReplaceAll(s, "''", "'")
}

// ParseComment inspects a single line of plain-format SQL (or a
// decoded custom-format SQL comment string) for an `anon:`-tagged
// COMMENT ON COLUMN/TABLE statement and, if found, records the
// mutation rules it carries into store.
//
// It never returns an error that should halt processing: malformed
// JSON in a recognised anon: body is reported via anonerr so the
// caller can log and continue (spec.md §7), and lines that aren't
// anon: comments at all are simply ignored (ok == false).
func ParseComment(store *Store, line string) (ok bool, err error) {
	if m := commentColumnRE.FindStringSubmatch(line); m != nil {
		schema, table, column, body := m[1], m[2], m[3], m[4]
		body = unescapeSQLString(body)
		rawJSON, isAnon := cutAnonPrefix(body)
		if !isAnon {
			return false, nil
		}
		specs, perr := decodeColumnSpecs(rawJSON)
		if perr != nil {
			return true, anonerr.New(anonerr.KindRuleParse, schema+"."+table+"."+column, perr)
		}
		store.AddColumnRules(qualify(schema, table), column, specs)
		return true, nil
	}
	if m := commentTableRE.FindStringSubmatch(line); m != nil {
		schema, table, body := m[1], m[2], m[3]
		body = unescapeSQLString(body)
		rawJSON, isAnon := cutAnonPrefix(body)
		if !isAnon {
			return false, nil
		}
		var spec TableSpec
		if perr := sonic.Unmarshal([]byte(rawJSON), &spec); perr != nil {
			return true, anonerr.New(anonerr.KindRuleParse, schema+"."+table, perr)
		}
		store.AddTableRule(qualify(schema, table), spec)
		return true, nil
	}
	return false, nil
}

func cutAnonPrefix(body string) (rawJSON string, ok bool) {
	trimmed := strings.TrimSpace(body)
	if !strings.HasPrefix(trimmed, anonPrefix) {
		return "", false
	}
	return strings.TrimSpace(trimmed[len(anonPrefix):]), true
}

// decodeColumnSpecs accepts either a single rule object or a JSON
// array of them, so a column can declare one unconditional mutation
// or a list of conditional fallbacks (spec.md §3).
func decodeColumnSpecs(rawJSON string) ([]Spec, error) {
	trimmed := strings.TrimSpace(rawJSON)
	if strings.HasPrefix(trimmed, "[") {
		var specs []Spec
		if err := sonic.Unmarshal([]byte(trimmed), &specs); err != nil {
			return nil, err
		}
		return specs, nil
	}
	var spec Spec
	if err := sonic.Unmarshal([]byte(trimmed), &spec); err != nil {
		return nil, err
	}
	return []Spec{spec}, nil
}

func qualify(schema, table string) string {
	return Qualify(schema, table)
}

// Qualify normalises a schema-qualified table name to the Store's key
// shape, stripping any double-quoted identifier quoting pg_dump adds.
func Qualify(schema, table string) string {
	return strings.Trim(schema, `"`) + "." + strings.Trim(table, `"`)
}
