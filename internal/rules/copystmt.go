package rules

import (
	"regexp"
	"strings"
)

var copyStmtRE = regexp.MustCompile(`^COPY\s+([^ (]+)\s+\(([^)]+)\)\s+FROM\s+stdin;`)

// ParseCopyStatement extracts the schema-qualified table name and
// ordered column list from a COPY ... FROM stdin; statement, as found
// verbatim both as a plain-format line and as a custom-format TOC
// entry's copy_stmt field.
func ParseCopyStatement(stmt string) (table string, columns []string, ok bool) {
	m := copyStmtRE.FindStringSubmatch(strings.TrimSpace(stmt))
	if m == nil {
		return "", nil, false
	}
	parts := strings.SplitN(m[1], ".", 2)
	if len(parts) != 2 {
		table = Qualify("public", m[1])
	} else {
		table = Qualify(parts[0], parts[1])
	}
	cols := strings.Split(m[2], ", ")
	for i, c := range cols {
		cols[i] = strings.Trim(c, `"`)
	}
	return table, cols, true
}
