package rules

import "github.com/dlclark/regexp2"

// TablePattern is a compiled --delete-table-pattern regex. regexp2 is
// used here (rather than stdlib regexp) because these patterns are
// user-supplied on the command line, not part of the program's own
// fixed grammar, and regexp2 accepts the fuller PCRE-style syntax
// users of pg_dump-adjacent tooling tend to reach for.
type TablePattern struct {
	re *regexp2.Regexp
}

// CompilePattern compiles a single --delete-table-pattern value.
func CompilePattern(pattern string) (TablePattern, error) {
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return TablePattern{}, err
	}
	return TablePattern{re: re}, nil
}

// MatchString reports whether table matches the pattern.
func (p TablePattern) MatchString(table string) bool {
	if p.re == nil {
		return false
	}
	ok, err := p.re.MatchString(table)
	return err == nil && ok
}
