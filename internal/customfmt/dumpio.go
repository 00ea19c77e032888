// Package customfmt implements the reader/writer for pg_dump's custom
// (-Fc) archive format: a binary header, a table-of-contents section,
// and a sequence of length-chunked, optionally zlib-compressed data
// blocks.
//
// Grounded file-for-file on original_source/src/format/custom/*.rs.
package customfmt

import "io"

// dumpIO encodes/decodes the three primitive value shapes a custom
// dump uses: signed integers (1 sign byte + intSize magnitude bytes,
// little-endian), raw unsigned offsets (offsetSize bytes,
// little-endian, no sign byte), and length-prefixed UTF-8 strings.
type dumpIO struct {
	intSize    int
	offsetSize int
}

func newDumpIO(intSize, offsetSize int) dumpIO {
	return dumpIO{intSize: intSize, offsetSize: offsetSize}
}

func readByte(r io.Reader) (byte, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// readInt reads a sign-prefixed little-endian magnitude.
func (d dumpIO) readInt(r io.Reader) (int32, error) {
	sign, err := readByte(r)
	if err != nil {
		return 0, err
	}
	buf := make([]byte, d.intSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return 0, err
	}
	var value int32
	for i := d.intSize - 1; i >= 0; i-- {
		value = (value << 8) | int32(buf[i])
	}
	if sign != 0 {
		value = -value
	}
	return value, nil
}

// readIntBypass reads an int exactly as readInt does, additionally
// copying the raw bytes read to w unchanged. Every structural field
// outside the mutated row payload travels through the archive this
// way: read, decode just enough to drive control flow, then emit the
// same bytes back out.
func (d dumpIO) readIntBypass(r io.Reader, w io.Writer) (int32, error) {
	sign, err := readByte(r)
	if err != nil {
		return 0, err
	}
	if _, err := w.Write([]byte{sign}); err != nil {
		return 0, err
	}
	buf := make([]byte, d.intSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return 0, err
	}
	if _, err := w.Write(buf); err != nil {
		return 0, err
	}
	var value int32
	for i := d.intSize - 1; i >= 0; i-- {
		value = (value << 8) | int32(buf[i])
	}
	if sign != 0 {
		value = -value
	}
	return value, nil
}

// writeInt writes val as a sign byte followed by intSize
// little-endian magnitude bytes.
func (d dumpIO) writeInt(w io.Writer, val int32) error {
	sign := byte(0)
	abs := val
	if val < 0 {
		sign = 1
		abs = -val
	}
	buf := make([]byte, 1+d.intSize)
	buf[0] = sign
	v := uint32(abs)
	for i := 0; i < d.intSize; i++ {
		buf[1+i] = byte(v)
		v >>= 8
	}
	_, err := w.Write(buf)
	return err
}

// readOffset reads an unsigned little-endian offset of offsetSize
// bytes with no sign byte.
func (d dumpIO) readOffset(r io.Reader) (int64, error) {
	buf := make([]byte, d.offsetSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return 0, err
	}
	var offset int64
	for i := d.offsetSize - 1; i >= 0; i-- {
		offset = (offset << 8) | int64(buf[i])
	}
	return offset, nil
}

func (d dumpIO) readOffsetBypass(r io.Reader, w io.Writer) (int64, error) {
	buf := make([]byte, d.offsetSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return 0, err
	}
	if _, err := w.Write(buf); err != nil {
		return 0, err
	}
	var offset int64
	for i := d.offsetSize - 1; i >= 0; i-- {
		offset = (offset << 8) | int64(buf[i])
	}
	return offset, nil
}

// readString reads a length-prefixed string; a non-positive length
// means SQL NULL, reported as ("", false).
func (d dumpIO) readString(r io.Reader) (string, bool, error) {
	n, err := d.readInt(r)
	if err != nil {
		return "", false, err
	}
	if n <= 0 {
		return "", false, nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", false, err
	}
	return string(buf), true, nil
}

func (d dumpIO) readStringBypass(r io.Reader, w io.Writer) (string, bool, error) {
	n, err := d.readIntBypass(r, w)
	if err != nil {
		return "", false, err
	}
	if n <= 0 {
		return "", false, nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", false, err
	}
	if _, err := w.Write(buf); err != nil {
		return "", false, err
	}
	return string(buf), true, nil
}

func readExactBypass(r io.Reader, w io.Writer, n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	if _, err := w.Write(buf); err != nil {
		return nil, err
	}
	return buf, nil
}
