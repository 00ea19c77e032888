package customfmt

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/rorycl/pgdumpanon/internal/anonerr"
)

// outputChunkSize bounds how much of a re-encoded block is buffered
// before being flushed as one length-prefixed chunk, matching
// original_source/src/format/custom/blocks.rs's OUTPUT_CHUNK_SIZE.
const outputChunkSize = 512 * 1024

// lineFunc rewrites one row of a DATA block's payload. keep == false
// drops the row entirely, the behaviour a delete-flagged table needs.
type lineFunc func(line []byte) (out []byte, keep bool, err error)

// passThroughBlock copies a chunked data block byte-for-byte,
// decoding only the chunk-length framing so the terminator is
// reproduced correctly.
func passThroughBlock(r io.Reader, w io.Writer, dio dumpIO) error {
	for {
		chunkLen, err := dio.readInt(r)
		if err != nil {
			return err
		}
		if err := dio.writeInt(w, chunkLen); err != nil {
			return err
		}
		if chunkLen == 0 {
			return nil
		}
		n := absInt(chunkLen)
		buf := make([]byte, n)
		if _, err := io.ReadFull(r, buf); err != nil {
			return err
		}
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
}

// processBlock reads every chunk of a DATA block, decompresses if
// needed, rewrites each row via fn, then re-encodes and writes the
// result in outputChunkSize pieces followed by the terminator chunk.
func processBlock(r io.Reader, w io.Writer, dio dumpIO, compression CompressionMethod, fn lineFunc) error {
	switch compression {
	case CompressionNone:
		return processRawBlock(r, w, dio, fn, false)
	case CompressionZlib:
		return processRawBlock(r, w, dio, fn, true)
	default:
		return anonerr.New(anonerr.KindUnsupportedFormat, "",
			fmt.Errorf("compression method %d is not supported", compression))
	}
}

func processRawBlock(r io.Reader, w io.Writer, dio dumpIO, fn lineFunc, compressed bool) error {
	raw, err := readAllChunks(r, dio)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		return dio.writeInt(w, 0)
	}

	var data []byte
	if compressed {
		data, err = zlibDecompress(raw)
		if err != nil {
			return err
		}
	} else {
		data = raw
	}

	processed, err := rewriteLines(data, fn)
	if err != nil {
		return err
	}

	var out []byte
	if compressed {
		out, err = zlibCompress(processed)
		if err != nil {
			return err
		}
	} else {
		out = processed
	}

	if err := writeChunks(w, dio, out); err != nil {
		return err
	}
	return dio.writeInt(w, 0)
}

func readAllChunks(r io.Reader, dio dumpIO) ([]byte, error) {
	var buf bytes.Buffer
	for {
		chunkLen, err := dio.readInt(r)
		if err != nil {
			return nil, err
		}
		if chunkLen == 0 {
			return buf.Bytes(), nil
		}
		n := absInt(chunkLen)
		chunk := make([]byte, n)
		if _, err := io.ReadFull(r, chunk); err != nil {
			return nil, err
		}
		buf.Write(chunk)
	}
}

func writeChunks(w io.Writer, dio dumpIO, data []byte) error {
	for offset := 0; offset < len(data); {
		end := offset + outputChunkSize
		if end > len(data) {
			end = len(data)
		}
		chunk := data[offset:end]
		if err := dio.writeInt(w, int32(len(chunk))); err != nil {
			return err
		}
		if _, err := w.Write(chunk); err != nil {
			return err
		}
		offset = end
	}
	return nil
}

// rewriteLines splits data on '\n', feeds each line through fn, and
// reassembles the lines fn keeps, preserving the trailing newline
// convention of the source block.
func rewriteLines(data []byte, fn lineFunc) ([]byte, error) {
	var out bytes.Buffer
	start := 0
	for start < len(data) {
		end := bytes.IndexByte(data[start:], '\n')
		var line []byte
		hasNL := end >= 0
		if hasNL {
			end += start
			line = data[start:end]
		} else {
			end = len(data)
			line = data[start:end]
		}

		mutated, keep, err := fn(line)
		if err != nil {
			return nil, err
		}
		if keep {
			out.Write(mutated)
			if hasNL {
				out.WriteByte('\n')
			}
		}

		if hasNL {
			start = end + 1
		} else {
			start = end
		}
	}
	return out.Bytes(), nil
}

func zlibDecompress(data []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, anonerr.New(anonerr.KindTruncatedInput, "", err)
	}
	defer zr.Close()
	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, anonerr.New(anonerr.KindTruncatedInput, "", err)
	}
	return out, nil
}

func zlibCompress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, 6)
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func absInt(v int32) int {
	if v < 0 {
		return int(-v)
	}
	return int(v)
}
