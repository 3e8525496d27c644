package codec

import "github.com/sail-go/sail/pixel"

// Descriptor is the static metadata a manifest describes: everything the
// registry needs to resolve a codec by extension, MIME type, or magic
// number, before any driver code runs.
type Descriptor struct {
	LayoutVersion int
	Name          string
	Description   string
	Version       string

	Extensions []string // lower-cased, no leading dot
	MIMETypes  []string // lower-cased

	MagicNumbers [][]byte // candidate byte sequences at offset 0

	ReadPixelFormats  []pixel.Format
	WritePixelFormats []pixel.Format
	Compressions      []pixel.Compression

	// ManifestPath is where this descriptor was parsed from, kept for
	// diagnostics and for RegisterBuiltin-based codecs that embed the text
	// instead of reading it from disk.
	ManifestPath string
}

// SniffMatch reports whether data begins with one of the descriptor's
// declared magic numbers.
func (d *Descriptor) SniffMatch(data []byte) bool {
	for _, magic := range d.MagicNumbers {
		if len(data) < len(magic) {
			continue
		}
		match := true
		for i, b := range magic {
			if data[i] != b {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
