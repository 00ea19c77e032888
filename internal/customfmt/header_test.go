package customfmt

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestString(t *testing.T, buf *bytes.Buffer, d dumpIO, s string) {
	t.Helper()
	require.NoError(t, d.writeInt(buf, int32(len(s))))
	buf.WriteString(s)
}

// buildHeaderBytes assembles a well-formed custom-format header for
// the given version, using pre-1.15 (zlib level) or post-1.15
// (algorithm byte) compression encoding as appropriate.
func buildHeaderBytes(t *testing.T, vmaj, vmin, vrev, intSize, offsetSize byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	buf.Write(magic)
	buf.WriteByte(vmaj)
	buf.WriteByte(vmin)
	buf.WriteByte(vrev)
	buf.WriteByte(intSize)
	buf.WriteByte(offsetSize)
	buf.WriteByte(1) // format byte

	d := newDumpIO(int(intSize), int(offsetSize))

	if vmaj == 1 && vmin >= 15 {
		buf.WriteByte(0) // CompressionNone
	} else {
		require.NoError(t, d.writeInt(&buf, 0)) // zlib level 0 == none
	}

	for i := 0; i < 7; i++ {
		require.NoError(t, d.writeInt(&buf, 0))
	}
	writeTestString(t, &buf, d, "testdb")
	writeTestString(t, &buf, d, "16.0")
	writeTestString(t, &buf, d, "pg_dump 16.0")

	return buf.Bytes()
}

func TestParseHeaderAcceptsSupportedVersionWindow(t *testing.T) {
	for _, v := range [][3]byte{{1, 12, 0}, {1, 14, 0}, {1, 15, 0}, {1, 16, 0}} {
		raw := buildHeaderBytes(t, v[0], v[1], v[2], 4, 8)
		var out bytes.Buffer
		h, err := parseHeader(bytes.NewReader(raw), &out, nil)
		require.NoError(t, err, "version %v", v)
		assert.Equal(t, int(v[0]), h.VMaj)
		assert.Equal(t, int(v[1]), h.VMin)
		assert.Equal(t, CompressionNone, h.Compression)
		assert.Equal(t, raw, out.Bytes())
	}
}

func TestParseHeaderHonoursDemuxConsumedPrefix(t *testing.T) {
	raw := buildHeaderBytes(t, 1, 14, 0, 4, 8)
	var out bytes.Buffer
	h, err := parseHeader(bytes.NewReader(raw[len(magic):]), &out, raw[:len(magic)])
	require.NoError(t, err)
	assert.Equal(t, 1, h.VMaj)
	assert.Equal(t, raw, out.Bytes())
}

func TestParseHeaderRejectsBadMagic(t *testing.T) {
	var out bytes.Buffer
	_, err := parseHeader(bytes.NewReader([]byte("NOTIT")), &out, nil)
	assert.Error(t, err)
}

func TestParseHeaderRejectsTooOldVersion(t *testing.T) {
	raw := buildHeaderBytes(t, 1, 11, 0, 4, 8)
	var out bytes.Buffer
	_, err := parseHeader(bytes.NewReader(raw), &out, nil)
	assert.Error(t, err)
}

func TestParseHeaderRejectsTooNewVersion(t *testing.T) {
	raw := buildHeaderBytes(t, 1, 17, 0, 4, 8)
	var out bytes.Buffer
	_, err := parseHeader(bytes.NewReader(raw), &out, nil)
	assert.Error(t, err)
}

func TestParseCompressionPre15ZlibLevel(t *testing.T) {
	d := newDumpIO(4, 8)
	var buf bytes.Buffer
	require.NoError(t, d.writeInt(&buf, 6))

	var out bytes.Buffer
	method, err := parseCompression(&buf, &out, d, Header{VMaj: 1, VMin: 14})
	require.NoError(t, err)
	assert.Equal(t, CompressionZlib, method)
}

func TestParseCompressionPost15AlgorithmByte(t *testing.T) {
	d := newDumpIO(4, 8)
	var buf bytes.Buffer
	buf.WriteByte(1) // zlib

	var out bytes.Buffer
	method, err := parseCompression(&buf, &out, d, Header{VMaj: 1, VMin: 15})
	require.NoError(t, err)
	assert.Equal(t, CompressionZlib, method)
}

func TestParseCompressionPost15DecodesZstdByte(t *testing.T) {
	// The header field itself decodes any known algorithm byte; it's
	// processBlock, not parseCompression, that rejects LZ4/Zstd when
	// a DATA block actually needs decompressing.
	d := newDumpIO(4, 8)
	var buf bytes.Buffer
	buf.WriteByte(3) // zstd

	var out bytes.Buffer
	method, err := parseCompression(&buf, &out, d, Header{VMaj: 1, VMin: 15})
	require.NoError(t, err)
	assert.Equal(t, CompressionZstd, method)
}

func TestParseCompressionPost15RejectsUnknownByte(t *testing.T) {
	d := newDumpIO(4, 8)
	var buf bytes.Buffer
	buf.WriteByte(9)

	var out bytes.Buffer
	_, err := parseCompression(&buf, &out, d, Header{VMaj: 1, VMin: 15})
	assert.Error(t, err)
}

func TestHeaderAtLeast(t *testing.T) {
	h := Header{VMaj: 1, VMin: 14, VRev: 3}
	assert.True(t, h.AtLeast(1, 14, 0))
	assert.True(t, h.AtLeast(1, 14, 3))
	assert.False(t, h.AtLeast(1, 14, 4))
	assert.False(t, h.AtLeast(1, 15, 0))
	assert.True(t, h.AtLeast(1, 12, 0))
}
