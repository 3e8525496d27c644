package gif

import (
	"github.com/sail-go/sail/codec"
	"github.com/sail-go/sail/iostream"
	"github.com/sail-go/sail/pixel"
	"github.com/sail-go/sail/sailerr"
)

// writer is a placeholder codec.Writer: GIF encoding is not implemented,
// matching the upstream driver this package is modeled on.
type writer struct{}

func newWriter() *writer { return &writer{} }

func (*writer) Init(iostream.Stream, *codec.WriteOptions) error {
	return sailerr.New(sailerr.NotImplemented, "gif.write_init")
}

func (*writer) SeekNextFrame(*pixel.Header) error {
	return sailerr.New(sailerr.NotImplemented, "gif.write_seek_next_frame")
}

func (*writer) SeekNextPass() error {
	return sailerr.New(sailerr.NotImplemented, "gif.write_seek_next_pass")
}

func (*writer) WriteFrame([]byte) error {
	return sailerr.New(sailerr.NotImplemented, "gif.write_frame")
}

func (*writer) Finish() error {
	return sailerr.New(sailerr.NotImplemented, "gif.write_finish")
}
