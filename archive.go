package cgf

import (
	"errors"
	"fmt"
)

// ErrEntryNotFound is returned by [Archive.Entry] if the archive directory
// holds no entry with the requested name.
var ErrEntryNotFound = errors.New("entry not found in archive")

// Archive is the decoded directory of a CGF file. Entries preserve on-disk
// index order, which is also increasing offset order. An Archive is built
// once by [Open] and is not modified afterwards.
type Archive struct {
	// Path is the location of the archive file the directory was read from.
	Path string

	// Entries is the ordered entry directory.
	Entries []Entry
}

// Entry returns the entry with the exact given name, or an error wrapping
// [ErrEntryNotFound] if no entry matches.
func (a *Archive) Entry(name string) (Entry, error) {
	for _, e := range a.Entries {
		if e.Name == name {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %s", ErrEntryNotFound, name)
}
