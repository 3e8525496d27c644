package pixel

import "github.com/sail-go/sail/sailerr"

// Palette is a fixed-format color table: pixel format + entry count + raw
// bytes, where EntryCount * bytesPerEntry(Format) == len(Data).
type Palette struct {
	Format     Format
	EntryCount int
	Data       []byte
}

// bytesPerEntry returns the byte width of one palette entry for f.
func bytesPerEntry(f Format) int {
	switch f {
	case RGB888:
		return 3
	case RGBA8888, ARGB8888, BGRA8888, RGBX8888:
		return 4
	default:
		return 0
	}
}

// NewPalette validates that data's length matches entryCount*bytesPerEntry
// and returns a Palette.
func NewPalette(format Format, entryCount int, data []byte) (*Palette, error) {
	bpe := bytesPerEntry(format)
	if bpe == 0 || len(data) != entryCount*bpe {
		return nil, sailerr.New(sailerr.InvalidArgument, "pixel.new_palette")
	}
	out := make([]byte, len(data))
	copy(out, data)
	return &Palette{Format: format, EntryCount: entryCount, Data: out}, nil
}

// Copy deep-copies a palette.
func (p *Palette) Copy() *Palette {
	if p == nil {
		return nil
	}
	return &Palette{Format: p.Format, EntryCount: p.EntryCount, Data: append([]byte(nil), p.Data...)}
}
