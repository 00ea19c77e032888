package customfmt

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rorycl/pgdumpanon/internal/anonerr"
	"github.com/rorycl/pgdumpanon/internal/rewrite"
	"github.com/rorycl/pgdumpanon/internal/rules"
)

const (
	blockTypeData = 0x01
	blockTypeBlob = 0x03
	blockTypeEnd  = 0x04
)

// Archive drives a custom-format (-Fc) dump end to end: header, TOC,
// then the data-block loop. Grounded on
// original_source/src/format/custom/mod.rs's CustomHandler.
type Archive struct {
	store    *rules.Store
	rewriter *rewrite.Rewriter
	log      zerolog.Logger
}

// New builds an Archive processor.
func New(store *rules.Store, rewriter *rewrite.Rewriter, log zerolog.Logger) *Archive {
	return &Archive{store: store, rewriter: rewriter, log: log}
}

// Run consumes a custom-format dump from r, writing its anonymised
// equivalent to w. initial is the magic-sniff prefix the format
// demultiplexer already read off r.
func (a *Archive) Run(r io.Reader, w io.Writer, initial []byte) error {
	br := bufio.NewReaderSize(r, 64*1024)
	bw := bufio.NewWriterSize(w, 64*1024)
	defer bw.Flush()

	header, err := parseHeader(br, bw, initial)
	if err != nil {
		return err
	}

	entries, err := parseTOC(br, bw, header)
	if err != nil {
		return err
	}

	for _, e := range entries {
		if e.Desc != "COMMENT" {
			continue
		}
		for _, line := range strings.Split(e.Defn, "\n") {
			if ok, perr := rules.ParseComment(a.store, strings.TrimSpace(line)); ok && perr != nil {
				a.log.Warn().Err(perr).Msg("dropping malformed anon rule comment")
			}
		}
	}

	dataEntries := make(map[int32]TocEntry, len(entries))
	for _, e := range entries {
		if e.Section == SectionData || e.Desc == "TABLE DATA" {
			dataEntries[e.DumpID] = e
		}
	}

	dio := newDumpIO(header.IntSize, header.OffsetSize)

	for {
		blockType, err := readByte(br)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return anonerr.New(anonerr.KindIO, "", err)
		}

		if blockType == blockTypeEnd {
			if _, err := bw.Write([]byte{blockType}); err != nil {
				return err
			}
			break
		}

		if _, err := bw.Write([]byte{blockType}); err != nil {
			return err
		}
		dumpID, err := dio.readIntBypass(br, bw)
		if err != nil {
			return err
		}

		if blockType != blockTypeData {
			if err := passThroughBlock(br, bw, dio); err != nil {
				return err
			}
			continue
		}

		entry, ok := dataEntries[dumpID]
		if !ok {
			if err := passThroughBlock(br, bw, dio); err != nil {
				return err
			}
			continue
		}

		table, columns, hasCopy := rules.ParseCopyStatement(entry.CopyStmt)
		if !hasCopy {
			if err := passThroughBlock(br, bw, dio); err != nil {
				return err
			}
			continue
		}

		suppress := a.store.IsDelete(table)
		hasMutate := a.rewriter.HasRules(table)
		if !hasMutate && !suppress {
			if err := passThroughBlock(br, bw, dio); err != nil {
				return err
			}
			continue
		}

		fn := a.lineFuncFor(table, columns, suppress)
		if err := processBlock(br, bw, dio, header.Compression, fn); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// lineFuncFor closes over the current table's column list and the
// Rewriter, turning one DATA-block text row into its anonymised form.
// Rows use the same tab-delimited, backslash-N-for-NULL encoding as
// plain format.
func (a *Archive) lineFuncFor(table string, columns []string, suppress bool) lineFunc {
	return func(line []byte) ([]byte, bool, error) {
		if suppress {
			return nil, false, nil
		}
		fields := strings.Split(string(line), "\t")
		out, err := a.rewriter.RewriteRow(table, columns, fields)
		if err != nil {
			return nil, false, err
		}
		return []byte(strings.Join(out, "\t")), true, nil
	}
}
