package session

import (
	"github.com/sail-go/sail/codec"
	"github.com/sail-go/sail/iostream"
	"github.com/sail-go/sail/pixel"
)

// Probe performs Init and SeekNextFrame against a fresh reader, returns the
// resulting header, then releases the reader. It leaves stream at whatever
// position the codec's read_init/read_seek_next_frame left it at — no
// rewind is attempted.
func Probe(drv codec.Driver, stream iostream.Stream, opts *codec.ReadOptions) (*pixel.Header, error) {
	rs := NewReadSession(drv.NewReader())
	if err := rs.Init(stream, opts); err != nil {
		return nil, err
	}
	hdr, err := rs.SeekNextFrame()
	if finishErr := rs.Finish(); err == nil && finishErr != nil {
		err = finishErr
	}
	if err != nil {
		return nil, err
	}
	return hdr, nil
}
