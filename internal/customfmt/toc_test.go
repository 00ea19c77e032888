package customfmt

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTOCEntryBytes assembles one raw TOC entry matching
// parseTOCEntry's field order, optionally including the 1.14.0+
// tableam field.
func buildTOCEntryBytes(t *testing.T, d dumpIO, h Header, tag, desc, copyStmt string, deps []int32) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, d.writeInt(&buf, 1))  // dumpID
	require.NoError(t, d.writeInt(&buf, -1)) // hadDumper
	writeTestString(t, &buf, d, "")          // table OID
	writeTestString(t, &buf, d, "")          // OID
	writeTestString(t, &buf, d, tag)
	writeTestString(t, &buf, d, desc)
	require.NoError(t, d.writeInt(&buf, 2)) // section = data
	writeTestString(t, &buf, d, "")         // defn
	writeTestString(t, &buf, d, "")         // drop stmt
	writeTestString(t, &buf, d, copyStmt)
	writeTestString(t, &buf, d, "public") // namespace
	writeTestString(t, &buf, d, "")       // tablespace
	if h.AtLeast(1, 14, 0) {
		writeTestString(t, &buf, d, "heap") // tableam
	}
	writeTestString(t, &buf, d, "owner")
	writeTestString(t, &buf, d, "") // with_oids
	for _, dep := range deps {
		writeTestString(t, &buf, d, itoa32(dep))
	}
	writeTestString(t, &buf, d, "") // dependency list terminator
	buf.WriteByte(1) // DataState = NeedData
	writeTestOffset(t, &buf, d, 4096)
	return buf.Bytes()
}

// writeTestOffset writes an unsigned little-endian offset of
// d.offsetSize bytes, matching readOffsetBypass's framing (no sign
// byte, unlike writeInt).
func writeTestOffset(t *testing.T, buf *bytes.Buffer, d dumpIO, v int64) {
	t.Helper()
	b := make([]byte, d.offsetSize)
	for i := 0; i < d.offsetSize; i++ {
		b[i] = byte(v)
		v >>= 8
	}
	buf.Write(b)
}

func itoa32(v int32) string {
	neg := v < 0
	if neg {
		v = -v
	}
	if v == 0 {
		return "0"
	}
	var digits []byte
	for v > 0 {
		digits = append([]byte{byte('0' + v%10)}, digits...)
		v /= 10
	}
	if neg {
		return "-" + string(digits)
	}
	return string(digits)
}

func TestParseTOCEntryReadsTableAMWhenVersionGates(t *testing.T) {
	h := Header{VMaj: 1, VMin: 14, IntSize: 4, OffsetSize: 8}
	d := newDumpIO(h.IntSize, h.OffsetSize)
	raw := buildTOCEntryBytes(t, d, h, "users", "TABLE DATA", "COPY public.users (id) FROM stdin;\n", []int32{1, 2})

	var out bytes.Buffer
	e, err := parseTOCEntry(bytes.NewReader(raw), &out, d, h)
	require.NoError(t, err)
	assert.Equal(t, "users", e.Tag)
	assert.Equal(t, "heap", e.TableAM)
	assert.Equal(t, SectionData, e.Section)
	assert.Equal(t, DataStateNeedData, e.DataState)
	assert.Equal(t, int64(4096), e.Offset)
	assert.Equal(t, []int32{1, 2}, e.Dependencies)
	assert.Equal(t, raw, out.Bytes())
}

func TestParseTOCEntryOmitsTableAMBeforeVersionGate(t *testing.T) {
	h := Header{VMaj: 1, VMin: 13, IntSize: 4, OffsetSize: 8}
	d := newDumpIO(h.IntSize, h.OffsetSize)
	raw := buildTOCEntryBytes(t, d, h, "orders", "TABLE DATA", "COPY public.orders (id) FROM stdin;\n", nil)

	var out bytes.Buffer
	e, err := parseTOCEntry(bytes.NewReader(raw), &out, d, h)
	require.NoError(t, err)
	assert.Equal(t, "orders", e.Tag)
	assert.Equal(t, "", e.TableAM)
}

func TestSectionFromInt(t *testing.T) {
	assert.Equal(t, SectionPreData, sectionFromInt(1))
	assert.Equal(t, SectionData, sectionFromInt(2))
	assert.Equal(t, SectionPostData, sectionFromInt(3))
	assert.Equal(t, SectionNone, sectionFromInt(0))
}

func TestDataStateFromByte(t *testing.T) {
	assert.Equal(t, DataStateNeedData, dataStateFromByte(1))
	assert.Equal(t, DataStateNoData, dataStateFromByte(2))
	assert.Equal(t, DataStateUnknown, dataStateFromByte(0))
}
