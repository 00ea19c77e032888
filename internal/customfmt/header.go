package customfmt

import (
	"fmt"
	"io"

	"github.com/rorycl/pgdumpanon/internal/anonerr"
)

// magic is the 5-byte signature every custom-format archive opens
// with.
var magic = []byte("PGDMP")

// CompressionMethod is the block-level compression the archive's data
// section uses, resolved from a version-dependent encoding in the
// header (see parseHeader).
type CompressionMethod int

const (
	CompressionNone CompressionMethod = iota
	CompressionZlib
	CompressionLz4
	CompressionZstd
)

// Header is the fully decoded fixed-format preamble of a custom
// archive.
type Header struct {
	VMaj, VMin, VRev int
	IntSize          int
	OffsetSize       int
	Format           int
	Compression      CompressionMethod
}

// AtLeast reports whether the header's format version is >= the given
// major.minor.rev triple.
func (h Header) AtLeast(maj, min, rev int) bool {
	if h.VMaj != maj {
		return h.VMaj > maj
	}
	if h.VMin != min {
		return h.VMin > min
	}
	return h.VRev >= rev
}

// parseHeader reads and bypasses the archive header, validating the
// magic bytes and the supported format-version window (1.12.0 to
// 1.16.0 inclusive, per custom.py / pg_dump's own archive version
// gate). initial is the prefix already consumed by the format
// demultiplexer's magic sniff.
func parseHeader(r io.Reader, w io.Writer, initial []byte) (Header, error) {
	if _, err := w.Write(initial); err != nil {
		return Header{}, err
	}
	remaining := len(magic) - len(initial)
	if remaining > 0 {
		buf, err := readExactBypass(r, w, remaining)
		if err != nil {
			return Header{}, err
		}
		full := append(append([]byte{}, initial...), buf...)
		if string(full) != string(magic) {
			return Header{}, anonerr.New(anonerr.KindUnsupportedFormat, "", errBadMagic)
		}
	} else if string(initial[:len(magic)]) != string(magic) {
		return Header{}, anonerr.New(anonerr.KindUnsupportedFormat, "", errBadMagic)
	}

	vmaj, err := readByte(r)
	if err != nil {
		return Header{}, err
	}
	if _, err := w.Write([]byte{vmaj}); err != nil {
		return Header{}, err
	}
	vmin, err := readByte(r)
	if err != nil {
		return Header{}, err
	}
	if _, err := w.Write([]byte{vmin}); err != nil {
		return Header{}, err
	}
	vrev, err := readByte(r)
	if err != nil {
		return Header{}, err
	}
	if _, err := w.Write([]byte{vrev}); err != nil {
		return Header{}, err
	}

	if vmaj < 1 || (vmaj == 1 && vmin < 12) {
		return Header{}, anonerr.New(anonerr.KindUnsupportedVersion, "",
			fmt.Errorf("archive version %d.%d.%d is older than the minimum supported 1.12.0", vmaj, vmin, vrev))
	}
	if vmaj > 1 || (vmaj == 1 && vmin > 16) {
		return Header{}, anonerr.New(anonerr.KindUnsupportedVersion, "",
			fmt.Errorf("archive version %d.%d.%d is newer than the maximum supported 1.16.0", vmaj, vmin, vrev))
	}

	intSizeB, err := readByte(r)
	if err != nil {
		return Header{}, err
	}
	if _, err := w.Write([]byte{intSizeB}); err != nil {
		return Header{}, err
	}
	offsetSizeB, err := readByte(r)
	if err != nil {
		return Header{}, err
	}
	if _, err := w.Write([]byte{offsetSizeB}); err != nil {
		return Header{}, err
	}
	intSize, offsetSize := int(intSizeB), int(offsetSizeB)
	if intSize == 0 || intSize > 8 || offsetSize == 0 || offsetSize > 8 {
		return Header{}, anonerr.New(anonerr.KindUnsupportedFormat, "",
			fmt.Errorf("invalid int_size=%d or offset_size=%d", intSize, offsetSize))
	}

	formatB, err := readByte(r)
	if err != nil {
		return Header{}, err
	}
	if _, err := w.Write([]byte{formatB}); err != nil {
		return Header{}, err
	}
	if formatB != 1 {
		return Header{}, anonerr.New(anonerr.KindUnsupportedFormat, "",
			fmt.Errorf("expected custom format byte 1, got %d", formatB))
	}

	dio := newDumpIO(intSize, offsetSize)

	h := Header{
		VMaj: int(vmaj), VMin: int(vmin), VRev: int(vrev),
		IntSize: intSize, OffsetSize: offsetSize, Format: int(formatB),
	}

	compression, err := parseCompression(r, w, dio, h)
	if err != nil {
		return Header{}, err
	}
	h.Compression = compression

	// Timestamp: 7 integers (sec, min, hour, mday, mon, year, isdst),
	// all bypassed unread by any caller.
	for i := 0; i < 7; i++ {
		if _, err := dio.readIntBypass(r, w); err != nil {
			return Header{}, err
		}
	}

	if _, _, err := dio.readStringBypass(r, w); err != nil { // database name
		return Header{}, err
	}
	if _, _, err := dio.readStringBypass(r, w); err != nil { // server version
		return Header{}, err
	}
	if _, _, err := dio.readStringBypass(r, w); err != nil { // pg_dump version string
		return Header{}, err
	}

	return h, nil
}

// parseCompression decodes the header's compression field, whose
// encoding changed shape at archive version 1.15.0: before it, the
// field is a zlib level integer (0 = none, -1 = default, 1-9 = zlib);
// from 1.15.0 on, it's a single byte naming the algorithm directly.
func parseCompression(r io.Reader, w io.Writer, dio dumpIO, h Header) (CompressionMethod, error) {
	if h.AtLeast(1, 15, 0) {
		b, err := readByte(r)
		if err != nil {
			return 0, err
		}
		if _, err := w.Write([]byte{b}); err != nil {
			return 0, err
		}
		switch b {
		case 0:
			return CompressionNone, nil
		case 1:
			return CompressionZlib, nil
		case 2:
			return CompressionLz4, nil
		case 3:
			return CompressionZstd, nil
		default:
			return 0, anonerr.New(anonerr.KindUnsupportedFormat, "",
				fmt.Errorf("unknown compression algorithm byte %d", b))
		}
	}

	level, err := dio.readIntBypass(r, w)
	if err != nil {
		return 0, err
	}
	switch {
	case level == 0:
		return CompressionNone, nil
	case level == -1 || (level >= 1 && level <= 9):
		return CompressionZlib, nil
	default:
		return 0, anonerr.New(anonerr.KindUnsupportedFormat, "",
			fmt.Errorf("invalid pre-1.15 compression level %d", level))
	}
}

type magicErr string

func (e magicErr) Error() string { return string(e) }

var errBadMagic = magicErr("invalid PGDMP magic header")
