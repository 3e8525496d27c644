package gif

import (
	"github.com/sail-go/sail/iostream"
	"github.com/sail-go/sail/sailerr"
)

// byteReader adapts an iostream.Stream to the single-byte and fixed-length
// reads the GIF container format is built from.
type byteReader struct {
	s iostream.Stream
}

func (r *byteReader) readN(n int) ([]byte, error) {
	buf := make([]byte, n)
	read, err := r.s.Read(buf, 1, n)
	if err != nil {
		return nil, sailerr.Wrap(sailerr.UnderlyingCodec, "gif.read", err)
	}
	if read != n {
		return nil, sailerr.New(sailerr.UnderlyingCodec, "gif.read_short")
	}
	return buf, nil
}

func (r *byteReader) readByte() (byte, error) {
	b, err := r.readN(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *byteReader) readUint16LE() (uint16, error) {
	b, err := r.readN(2)
	if err != nil {
		return 0, err
	}
	return uint16(b[0]) | uint16(b[1])<<8, nil
}

// readDataSubBlocks reads a GIF "data sub-blocks" sequence: a series of
// length-prefixed chunks terminated by a zero-length block, and returns
// the concatenation of every chunk's payload.
func (r *byteReader) readDataSubBlocks() ([]byte, error) {
	var out []byte
	for {
		size, err := r.readByte()
		if err != nil {
			return nil, err
		}
		if size == 0 {
			return out, nil
		}
		chunk, err := r.readN(int(size))
		if err != nil {
			return nil, err
		}
		out = append(out, chunk...)
	}
}

// skipDataSubBlocks consumes and discards a data sub-blocks sequence.
func (r *byteReader) skipDataSubBlocks() error {
	_, err := r.readDataSubBlocks()
	return err
}
