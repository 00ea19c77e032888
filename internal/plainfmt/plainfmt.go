// Package plainfmt implements the Preamble/InCopy state machine
// for pg_dump's plain (-Fp) output: a stream of SQL statements with
// COPY ... FROM stdin; blocks carrying tab-delimited row data.
//
// Grounded on the teacher's tables.go/anonymise.go DumpTable state
// machine, generalised from its reference-table two-pass design down
// to the single forward pass this program's Relation Store makes
// sufficient.
package plainfmt

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rorycl/pgdumpanon/internal/anonerr"
	"github.com/rorycl/pgdumpanon/internal/rewrite"
	"github.com/rorycl/pgdumpanon/internal/rules"
)

const copyTerminator = `\.`

// maxLineSize bumps bufio.Scanner past its 64KiB default: pg_dump can
// legitimately emit very wide rows (large text/bytea columns), and a
// row that overflows the default buffer would otherwise be a silent
// truncation rather than a parse error.
const maxLineSize = 32 * 1024 * 1024

// state is which part of a plain dump the Processor is currently
// reading.
type state int

const (
	statePreamble state = iota
	stateInCopy
)

// Processor drives the plain-format transducer: read one line, act on
// it, write zero or more lines out.
type Processor struct {
	store     *rules.Store
	rewriter  *rewrite.Rewriter
	delimiter string
	log       zerolog.Logger

	st        state
	table     string // current COPY table, Store-qualified
	columns   []string
	suppress  bool // current table is delete-flagged
	hasMutate bool
}

// New builds a Processor. delimiter defaults to a tab, matching
// pg_dump's default COPY text format, but can be overridden via
// --delimiter for dumps created with a non-default COPY delimiter
// option.
func New(store *rules.Store, rewriter *rewrite.Rewriter, delimiter string, log zerolog.Logger) *Processor {
	if delimiter == "" {
		delimiter = "\t"
	}
	return &Processor{store: store, rewriter: rewriter, delimiter: delimiter, log: log, st: statePreamble}
}

// Run consumes r line by line and writes the anonymised dump to w.
func (p *Processor) Run(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if err := p.handleLine(line, bw); err != nil {
			var ae *anonerr.Error
			if errors.As(err, &ae) {
				ctx := lineNumberContext(lineNo)
				if ae.Context != "" {
					ctx += " (" + ae.Context + ")"
				}
				return anonerr.New(ae.Kind, ctx, ae.Err)
			}
			return anonerr.New(anonerr.KindIO, lineNumberContext(lineNo), err)
		}
	}
	if err := scanner.Err(); err != nil {
		return anonerr.New(anonerr.KindIO, "", err)
	}
	return bw.Flush()
}

func lineNumberContext(n int) string {
	return "line " + strconv.Itoa(n)
}

func (p *Processor) handleLine(line string, w *bufio.Writer) error {
	switch p.st {
	case statePreamble:
		return p.handlePreambleLine(line, w)
	case stateInCopy:
		return p.handleCopyLine(line, w)
	}
	return nil
}

func (p *Processor) handlePreambleLine(line string, w *bufio.Writer) error {
	// anon: comments must be absorbed before the COPY blocks they
	// govern arrive, which pg_dump's own statement ordering guarantees
	// (pre-data comments precede data sections).
	if ok, err := rules.ParseComment(p.store, line); ok && err != nil {
		p.log.Warn().Err(err).Msg("dropping malformed anon rule comment")
	}
	if table, columns, ok := rules.ParseCopyStatement(line); ok {
		return p.enterCopy(table, columns, line, w)
	}
	_, err := w.WriteString(line + "\n")
	return err
}

func (p *Processor) enterCopy(table string, columns []string, headerLine string, w *bufio.Writer) error {
	p.table = table
	p.columns = columns
	p.suppress = p.store.IsDelete(p.table)
	p.hasMutate = p.rewriter.HasRules(p.table)
	p.st = stateInCopy

	if p.suppress {
		return nil
	}
	_, err := w.WriteString(headerLine + "\n")
	return err
}

func (p *Processor) handleCopyLine(line string, w *bufio.Writer) error {
	if line == copyTerminator {
		p.st = statePreamble
		if p.suppress {
			return nil
		}
		_, err := w.WriteString(line + "\n")
		return err
	}
	if p.suppress {
		return nil
	}
	if !p.hasMutate {
		_, err := w.WriteString(line + "\n")
		return err
	}

	fields := strings.Split(line, p.delimiter)
	out, err := p.rewriter.RewriteRow(p.table, p.columns, fields)
	if err != nil {
		return err
	}
	_, err = w.WriteString(strings.Join(out, p.delimiter) + "\n")
	return err
}
