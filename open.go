package cgf

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/HOKORISAMA/Triangle-Engine-Tools/config"
)

// ErrFormatMismatch is the definitive "not a CGF archive" result. It is
// wrapped by every [FormatError] returned from [Open], so callers can detect
// the condition with [errors.Is].
var ErrFormatMismatch = errors.New("not a cgf archive")

// FormatError reports why a file was rejected by [Open]. The whole open
// fails on the first inconsistency; there is no partial directory.
type FormatError struct {
	Path   string
	Reason string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Path, ErrFormatMismatch, e.Reason)
}

// Unwrap returns [ErrFormatMismatch].
func (e *FormatError) Unwrap() error {
	return ErrFormatMismatch
}

// offsetMask clears the two flag bits of a packed offset field, leaving the
// 30-bit byte offset.
const offsetMask = ^uint32(0xC0000000)

// maxEntryCount is a sanity bound against garbage files, not a limit defined
// by the format itself.
const maxEntryCount = 100000

// layoutCandidates are the known index layouts. Each record holds a
// null-padded name followed by a packed u32 offset field, so the first
// record's offset field sits at probeOffset and must equal the index end for
// the layout to be self-consistent. Candidates are evaluated in order and the
// first match wins, which keeps detection deterministic for files that would
// satisfy both equations.
var layoutCandidates = []struct {
	probeOffset int64
	recordSize  int64
}{
	{probeOffset: 0x14, recordSize: 0x14},
	{probeOffset: 0x20, recordSize: 0x20},
}

// Open reads the directory of the CGF archive at path. It determines the
// index record layout from the file itself, decodes all entries in index
// order and validates them. If the file is structurally inconsistent with
// either known layout, a [FormatError] is returned and no directory is
// produced. The archive file is opened read-only and closed before Open
// returns.
func Open(path string, c *config.Config) (*Archive, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// entry count
	var header [4]byte
	if _, err := io.ReadFull(f, header[:]); err != nil {
		return nil, &FormatError{Path: path, Reason: "file too short for an entry count"}
	}
	count := int64(binary.LittleEndian.Uint32(header[:]))
	if count <= 0 || count >= maxEntryCount {
		return nil, &FormatError{Path: path, Reason: fmt.Sprintf("insane entry count %d", count)}
	}
	if err := c.CheckMaxEntries(count); err != nil {
		return nil, &FormatError{Path: path, Reason: err.Error()}
	}

	// archive length bounds the last entry
	fileSize, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, err
	}

	// sniff the index record size: the first record's packed offset field
	// must point at the end of the index block
	var recordSize int64
	for _, cand := range layoutCandidates {
		var buf [4]byte
		if _, err := f.ReadAt(buf[:], cand.probeOffset); err != nil {
			// file too short for this candidate
			continue
		}
		probe := binary.LittleEndian.Uint32(buf[:])
		if 4+count*cand.recordSize == int64(probe&offsetMask) {
			recordSize = cand.recordSize
			break
		}
	}
	if recordSize == 0 {
		return nil, &FormatError{Path: path, Reason: "no index layout matches the first offset field"}
	}

	index := make([]byte, count*recordSize)
	if _, err := f.ReadAt(index, 4); err != nil {
		return nil, &FormatError{Path: path, Reason: "truncated index block"}
	}

	entries := make([]Entry, 0, count)
	for i := int64(0); i < count; i++ {
		record := index[i*recordSize : (i+1)*recordSize]

		name := strings.TrimRight(string(record[:recordSize-4]), "\x00")
		if !validEntryName(name) {
			return nil, &FormatError{Path: path, Reason: fmt.Sprintf("invalid entry name %q in record %d", name, i)}
		}

		// record i's trailing field is record i's own packed offset; record
		// i+1's field supplies the end of the range, the file length bounds
		// the last entry
		packed := binary.LittleEndian.Uint32(record[recordSize-4:])
		flags := uint8(packed >> 30)
		offset := int64(packed & offsetMask)

		next := fileSize
		if i+1 < count {
			nextPacked := binary.LittleEndian.Uint32(index[(i+2)*recordSize-4 : (i+2)*recordSize])
			next = int64(nextPacked & offsetMask)
		}
		if next < offset {
			return nil, &FormatError{Path: path, Reason: fmt.Sprintf("decreasing offset in record %d", i)}
		}

		e := Entry{Name: name, Offset: offset, Size: next - offset}
		if flags == 1 || strings.HasSuffix(strings.ToLower(name), ".iaf") {
			e.Kind = KindGeneric
		} else {
			e.Kind = KindImage
			e.Flags = flags
		}
		entries = append(entries, e)
	}

	c.Logger().Debug("decoded cgf index", "path", path, "entries", len(entries), "record_size", recordSize)
	return &Archive{Path: path, Entries: entries}, nil
}
