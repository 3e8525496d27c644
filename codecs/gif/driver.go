// Package gif is the GIF codec driver: the exemplar that exercises the
// full read-side codec framework (persistent canvas, disposal methods,
// interlacing, transparency, comment/application metadata). Writing is not
// implemented.
package gif

import (
	"github.com/sail-go/sail/codec"
	"github.com/sail-go/sail/pixel"
)

// Driver implements codec.Driver for GIF.
type Driver struct{}

// New returns a GIF codec.Driver.
func New() *Driver { return &Driver{} }

func (*Driver) NewReader() codec.Reader { return newReader() }
func (*Driver) NewWriter() codec.Writer { return newWriter() }

func (*Driver) ReadFeatures() codec.ReadFeatures {
	return codec.ReadFeatures{
		InputPixelFormats:        []pixel.Format{pixel.Indexed8},
		OutputPixelFormats:       []pixel.Format{pixel.RGBA8888, pixel.BGRA8888},
		DefaultOutputPixelFormat: pixel.RGBA8888,
		DefaultIOOptions:         codec.MetaData,
	}
}

func (*Driver) WriteFeatures() codec.WriteFeatures {
	return codec.WriteFeatures{}
}
