package customfmt

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeRawBlock(t *testing.T, d dumpIO, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, writeChunks(&buf, d, data))
	require.NoError(t, d.writeInt(&buf, 0))
	return buf.Bytes()
}

func TestProcessRawBlockAppliesLineFunc(t *testing.T) {
	d := newDumpIO(4, 8)
	block := encodeRawBlock(t, d, []byte("1\talice\n2\tbob\n"))

	upper := func(line []byte) ([]byte, bool, error) {
		return bytes.ToUpper(line), true, nil
	}

	var out bytes.Buffer
	require.NoError(t, processBlock(bytes.NewReader(block), &out, d, CompressionNone, upper))

	rawOut, err := readAllChunks(bytes.NewReader(out.Bytes()), d)
	require.NoError(t, err)
	assert.Equal(t, "1\tALICE\n2\tBOB\n", string(rawOut))
}

func TestProcessRawBlockDropsFilteredLines(t *testing.T) {
	d := newDumpIO(4, 8)
	block := encodeRawBlock(t, d, []byte("keep\ndrop\n"))

	dropSecond := func(line []byte) ([]byte, bool, error) {
		return line, string(line) != "drop", nil
	}

	var out bytes.Buffer
	require.NoError(t, processBlock(bytes.NewReader(block), &out, d, CompressionNone, dropSecond))

	rawOut, err := readAllChunks(bytes.NewReader(out.Bytes()), d)
	require.NoError(t, err)
	assert.Equal(t, "keep\n", string(rawOut))
}

func TestProcessBlockRejectsUnsupportedCompression(t *testing.T) {
	d := newDumpIO(4, 8)
	block := encodeRawBlock(t, d, []byte("x\n"))
	noop := func(line []byte) ([]byte, bool, error) { return line, true, nil }

	var out bytes.Buffer
	err := processBlock(bytes.NewReader(block), &out, d, CompressionZstd, noop)
	assert.Error(t, err)
}

func TestZlibCompressThenDecompressRoundTrips(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	compressed, err := zlibCompress(data)
	require.NoError(t, err)
	decompressed, err := zlibDecompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, data, decompressed)
}

func TestPassThroughBlockCopiesBytesVerbatim(t *testing.T) {
	d := newDumpIO(4, 8)
	block := encodeRawBlock(t, d, []byte("untouched\n"))

	var out bytes.Buffer
	require.NoError(t, passThroughBlock(bytes.NewReader(block), &out, d))
	assert.Equal(t, block, out.Bytes())
}
