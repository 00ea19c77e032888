package customfmt

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteIntThenReadIntRoundTrips(t *testing.T) {
	d := newDumpIO(4, 8)
	for _, v := range []int32{0, 1, -1, 12345, -12345, 2147483647, -2147483647} {
		var buf bytes.Buffer
		require.NoError(t, d.writeInt(&buf, v))
		got, err := d.readInt(&buf)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestReadOffsetIsUnsignedLittleEndian(t *testing.T) {
	d := newDumpIO(4, 8)
	buf := bytes.NewReader([]byte{0x10, 0, 0, 0, 0, 0, 0, 0})
	v, err := d.readOffset(buf)
	require.NoError(t, err)
	assert.Equal(t, int64(0x10), v)
}

func TestReadStringNullSentinel(t *testing.T) {
	d := newDumpIO(4, 8)
	var buf bytes.Buffer
	require.NoError(t, d.writeInt(&buf, -1))

	s, ok, err := d.readString(&buf)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "", s)
}

func TestReadStringPositiveLength(t *testing.T) {
	d := newDumpIO(4, 8)
	var buf bytes.Buffer
	require.NoError(t, d.writeInt(&buf, 5))
	buf.WriteString("hello")

	s, ok, err := d.readString(&buf)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "hello", s)
}

func TestReadIntBypassCopiesBytesToWriter(t *testing.T) {
	d := newDumpIO(4, 8)
	var src bytes.Buffer
	require.NoError(t, d.writeInt(&src, 42))

	var out bytes.Buffer
	v, err := d.readIntBypass(bytes.NewReader(src.Bytes()), &out)
	require.NoError(t, err)
	assert.Equal(t, int32(42), v)
	assert.Equal(t, src.Bytes(), out.Bytes())
}
