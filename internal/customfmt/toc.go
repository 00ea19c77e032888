package customfmt

import (
	"io"
	"strconv"
)

// Section is a TOC entry's place in the archive's three-phase
// ordering (schema, data, constraints/indexes).
type Section int

const (
	SectionNone Section = iota
	SectionPreData
	SectionData
	SectionPostData
)

func sectionFromInt(v int32) Section {
	switch v {
	case 1:
		return SectionPreData
	case 2:
		return SectionData
	case 3:
		return SectionPostData
	default:
		return SectionNone
	}
}

// DataState is the one-byte flag every TOC entry carries immediately
// before the data offset (read for all supported archive versions,
// 1.12 through 1.16), replacing what earlier spec
// text calls an "offset known" flag — it is concretely this enum, not
// a boolean.
type DataState int

const (
	DataStateUnknown DataState = iota
	DataStateNeedData
	DataStateNoData
)

func dataStateFromByte(b byte) DataState {
	switch b {
	case 1:
		return DataStateNeedData
	case 2:
		return DataStateNoData
	default:
		return DataStateUnknown
	}
}

// TocEntry is one table-of-contents record. Grounded on
// original_source/src/format/custom/toc.rs's TocEntry and parse_toc.
type TocEntry struct {
	DumpID       int32
	Section      Section
	Tag          string
	Desc         string
	Defn         string
	CopyStmt     string
	DropStmt     string
	Namespace    string
	Tablespace   string
	TableAM      string
	Owner        string
	Dependencies []int32
	Offset       int64
	DataState    DataState
}

// parseTOC reads every TOC entry, bypassing all bytes to w unchanged.
func parseTOC(r io.Reader, w io.Writer, h Header) ([]TocEntry, error) {
	dio := newDumpIO(h.IntSize, h.OffsetSize)

	count, err := dio.readIntBypass(r, w)
	if err != nil {
		return nil, err
	}
	entries := make([]TocEntry, 0, count)
	for i := int32(0); i < count; i++ {
		e, err := parseTOCEntry(r, w, dio, h)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func parseTOCEntry(r io.Reader, w io.Writer, dio dumpIO, h Header) (TocEntry, error) {
	var e TocEntry

	dumpID, err := dio.readIntBypass(r, w)
	if err != nil {
		return e, err
	}
	e.DumpID = dumpID

	if _, err := dio.readIntBypass(r, w); err != nil { // hadDumper, legacy
		return e, err
	}
	if _, _, err := dio.readStringBypass(r, w); err != nil { // table OID
		return e, err
	}
	if _, _, err := dio.readStringBypass(r, w); err != nil { // OID
		return e, err
	}
	tag, _, err := dio.readStringBypass(r, w)
	if err != nil {
		return e, err
	}
	e.Tag = tag

	desc, _, err := dio.readStringBypass(r, w)
	if err != nil {
		return e, err
	}
	e.Desc = desc

	sectionRaw, err := dio.readIntBypass(r, w)
	if err != nil {
		return e, err
	}
	e.Section = sectionFromInt(sectionRaw)

	defn, _, err := dio.readStringBypass(r, w)
	if err != nil {
		return e, err
	}
	e.Defn = defn

	dropStmt, _, err := dio.readStringBypass(r, w)
	if err != nil {
		return e, err
	}
	e.DropStmt = dropStmt

	copyStmt, _, err := dio.readStringBypass(r, w)
	if err != nil {
		return e, err
	}
	e.CopyStmt = copyStmt

	namespace, _, err := dio.readStringBypass(r, w)
	if err != nil {
		return e, err
	}
	e.Namespace = namespace

	tablespace, _, err := dio.readStringBypass(r, w)
	if err != nil {
		return e, err
	}
	e.Tablespace = tablespace

	// tableam was added in archive format 1.14.0; earlier archives
	// don't carry the field at all.
	if h.AtLeast(1, 14, 0) {
		tableam, _, err := dio.readStringBypass(r, w)
		if err != nil {
			return e, err
		}
		e.TableAM = tableam
	}

	owner, _, err := dio.readStringBypass(r, w)
	if err != nil {
		return e, err
	}
	e.Owner = owner

	if _, _, err := dio.readStringBypass(r, w); err != nil { // with_oids
		return e, err
	}

	for {
		dep, present, err := dio.readStringBypass(r, w)
		if err != nil {
			return e, err
		}
		if !present || dep == "" {
			break
		}
		if id, err := strconv.ParseInt(dep, 10, 32); err == nil {
			e.Dependencies = append(e.Dependencies, int32(id))
		}
	}

	dataStateByte, err := readByte(r)
	if err != nil {
		return e, err
	}
	if _, err := w.Write([]byte{dataStateByte}); err != nil {
		return e, err
	}
	e.DataState = dataStateFromByte(dataStateByte)

	offset, err := dio.readOffsetBypass(r, w)
	if err != nil {
		return e, err
	}
	e.Offset = offset

	return e, nil
}
