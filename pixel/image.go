package pixel

import "github.com/sail-go/sail/sailerr"

// Properties is a bitset of per-image flags.
type Properties uint32

const (
	FlippedVertically Properties = 1 << iota
	Interlaced
)

// Compression identifies the codec-native compression scheme the source
// file used, reported informationally on SourceImage.
type Compression int

const (
	CompressionUnknown Compression = iota
	CompressionLZW
	CompressionNone
)

// SourceImage describes the file's native representation before any
// framework-level conversion to the caller's requested output format.
type SourceImage struct {
	Compression Compression
	PixelFormat Format
	Properties  Properties
}

// Header is what read_seek_next_frame populates: everything about a frame
// except its pixel bytes.
type Header struct {
	Width, Height int
	BytesPerLine  int
	PixelFormat   Format

	Passes   int // >= 1; >1 iff interlaced
	Animated bool
	DelayMs  int // meaningful only if Animated

	Palette *Palette
	Meta    *MetaChain
	Props   Properties
	Source  SourceImage
}

// Validate checks the header invariants: stride covers the declared width,
// palette presence matches what the pixel format requires, and there is at
// least one pass.
func (h *Header) Validate() error {
	if h.BytesPerLine < BytesPerLine(h.Width, h.PixelFormat) {
		return sailerr.New(sailerr.InvalidArgument, "pixel.header.validate")
	}
	if RequiresPalette(h.PixelFormat) && h.Palette == nil {
		return sailerr.New(sailerr.MissingPalette, "pixel.header.validate")
	}
	if h.Passes < 1 {
		return sailerr.New(sailerr.InvalidArgument, "pixel.header.validate")
	}
	return nil
}

// Image is one fully decoded frame: a Header plus its pixel buffer.
type Image struct {
	Header
	Pixels []byte
}
