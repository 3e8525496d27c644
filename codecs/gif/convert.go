package gif

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// rgbaSwap is a read-only image.Image view over a tightly-packed RGBA8888
// buffer that reports blue and red swapped, so that copying it through
// image/draw into a plain *image.RGBA yields a BGRA8888 byte layout.
type rgbaSwap struct {
	pix    []byte
	width  int
	height int
	stride int
}

func (s *rgbaSwap) ColorModel() color.Model { return color.RGBAModel }
func (s *rgbaSwap) Bounds() image.Rectangle { return image.Rect(0, 0, s.width, s.height) }

func (s *rgbaSwap) At(x, y int) color.Color {
	off := y*s.stride + x*4
	r, g, b, a := s.pix[off], s.pix[off+1], s.pix[off+2], s.pix[off+3]
	return color.RGBA{R: b, G: g, B: r, A: a}
}

// swapToBGRA rewrites an RGBA8888 canvas in place into BGRA8888 byte order,
// using image/draw.Draw (rather than a hand-rolled channel swap) to perform
// the conversion.
func swapToBGRA(buf []byte, width, height, stride int) {
	src := &rgbaSwap{pix: buf, width: width, height: height, stride: stride}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), src, image.Point{}, draw.Src)
	for y := 0; y < height; y++ {
		copy(buf[y*stride:y*stride+width*4], dst.Pix[y*dst.Stride:y*dst.Stride+width*4])
	}
}
