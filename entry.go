package cgf

import "strings"

// Kind classifies an archive entry for downstream handling.
type Kind int

const (
	// KindGeneric is an entry whose flag bits are already consumed: either
	// the flag field decoded to the image-forced value, or the name carries
	// the .iaf suffix. Downstream handling does not depend on its flags.
	KindGeneric Kind = iota

	// KindImage is an image entry that still carries its decoded flag bits.
	KindImage
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindGeneric:
		return "generic"
	case KindImage:
		return "image"
	default:
		return "unknown"
	}
}

// Entry describes one record of a CGF archive directory. Offset and Size
// locate the entry payload inside the source archive; Flags holds the two
// packed flag bits and is meaningful only for [KindImage] entries.
type Entry struct {
	Name   string
	Kind   Kind
	Offset int64
	Size   int64
	Flags  uint8
}

// forbiddenNameChars are the path separator and wildcard characters that
// never occur in a valid CGF entry name.
const forbiddenNameChars = `\/:*?"<>|`

// validEntryName returns true if name is a valid CGF entry name.
func validEntryName(name string) bool {
	return name != "" && !strings.ContainsAny(name, forbiddenNameChars)
}
