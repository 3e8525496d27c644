// Package pixel is the common data model: pixel formats, image/frame
// descriptors, metadata nodes, and palettes.
package pixel

import (
	"strings"

	"github.com/sail-go/sail/sailerr"
)

// Format is a tagged enumeration of canonical pixel formats.
type Format int

const (
	// UNSUPPORTED marks a format that cannot be represented by this library.
	Unsupported Format = iota
	// Source means "do not convert; yield raw codec pixels".
	Source

	Mono
	Grayscale8
	Grayscale16
	Indexed8

	RGB555
	RGB565
	RGB888

	RGBA8888
	ARGB8888
	BGRA8888
	RGBX8888
)

var formatNames = map[Format]string{
	Unsupported: "UNSUPPORTED",
	Source:      "SOURCE",
	Mono:        "MONO",
	Grayscale8:  "GRAYSCALE8",
	Grayscale16: "GRAYSCALE16",
	Indexed8:    "INDEXED8",
	RGB555:      "RGB555",
	RGB565:      "RGB565",
	RGB888:      "RGB888",
	RGBA8888:    "RGBA8888",
	ARGB8888:    "ARGB8888",
	BGRA8888:    "BGRA8888",
	RGBX8888:    "RGBX8888",
}

var namesToFormat = func() map[string]Format {
	m := make(map[string]Format, len(formatNames))
	for f, s := range formatNames {
		m[s] = f
	}
	return m
}()

// String stringifies a pixel format. Round-trips with ParseFormat for every
// format except Unsupported (there is no unambiguous source string for it).
func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return "UNSUPPORTED"
}

// ParseFormat parses a pixel format name back into a Format. Lookup is
// case-insensitive. Returns sailerr.InvalidArgument for unknown names.
func ParseFormat(s string) (Format, error) {
	if f, ok := namesToFormat[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return f, nil
	}
	return Unsupported, sailerr.New(sailerr.InvalidArgument, "pixel.parse_format")
}

// BitsPerPixel returns the fixed bit depth of a non-sentinel pixel format.
// Source and Unsupported have no fixed depth and return 0.
func BitsPerPixel(f Format) int {
	switch f {
	case Mono:
		return 1
	case Grayscale8, Indexed8:
		return 8
	case Grayscale16, RGB555, RGB565:
		return 16
	case RGB888:
		return 24
	case RGBA8888, ARGB8888, BGRA8888, RGBX8888:
		return 32
	default:
		return 0
	}
}

// RequiresPalette reports whether images in this pixel format must carry a
// Palette: palette presence and RequiresPalette must always agree.
func RequiresPalette(f Format) bool {
	return f == Indexed8
}

// BytesPerLine derives the minimum stride for width pixels of format f,
// rounding up to whole bytes. MONO rounds up to whole bytes
func BytesPerLine(width int, f Format) int {
	bpp := BitsPerPixel(f)
	if bpp == 0 {
		return 0
	}
	return (width*bpp + 7) / 8
}
