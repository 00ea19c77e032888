// Package demux implements the format demultiplexer: a handful of
// bytes are peeked off the input stream to decide whether it's a
// plain-format SQL dump or a PGDMP custom-format archive, and those
// bytes are handed back to whichever parser is chosen so no byte is
// lost.
package demux

import (
	"bufio"
	"io"

	"github.com/rorycl/pgdumpanon/internal/anonerr"
)

// Format is the detected (or forced) pg_dump output format.
type Format int

const (
	FormatUnknown Format = iota
	FormatPlain
	FormatCustom
)

// magicLen is the length of the custom format's PGDMP signature.
const magicLen = 5

var customMagic = []byte("PGDMP")

// Sniff peeks up to magicLen bytes from r and reports the detected
// Format along with the bytes it consumed, which the caller must feed
// back to the chosen parser as its initial prefix. forced, if not
// FormatUnknown, skips detection entirely (the --format flag
// override).
func Sniff(r io.Reader, forced Format) (Format, []byte, io.Reader, error) {
	br := bufio.NewReaderSize(r, 64*1024)
	peek, err := br.Peek(magicLen)
	if err != nil && err != io.EOF {
		return FormatUnknown, nil, br, anonerr.New(anonerr.KindIO, "", err)
	}

	if forced != FormatUnknown {
		return forced, nil, br, nil
	}

	if len(peek) == magicLen && string(peek) == string(customMagic) {
		consumed := make([]byte, magicLen)
		if _, err := io.ReadFull(br, consumed); err != nil {
			return FormatUnknown, nil, br, anonerr.New(anonerr.KindIO, "", err)
		}
		return FormatCustom, consumed, br, nil
	}

	return FormatPlain, nil, br, nil
}

// ParseFormatFlag maps the --format CLI value ("p"/"plain", "c"/"custom")
// to a Format, defaulting to FormatUnknown (auto-detect) for anything
// else including an empty string.
func ParseFormatFlag(s string) Format {
	switch s {
	case "p", "plain":
		return FormatPlain
	case "c", "custom":
		return FormatCustom
	default:
		return FormatUnknown
	}
}
