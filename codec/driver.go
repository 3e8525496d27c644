// Package codec defines the ABI-stable entry-point set every codec driver
// implements and the static descriptor metadata parsed from a
// codec's on-disk manifest.
package codec

import (
	"github.com/sail-go/sail/iostream"
	"github.com/sail-go/sail/pixel"
)

// LayoutVersion4 is the ABI variant a driver implements. Only v4 is
// understood by this framework; the registry refuses to bind to any other
// version; no attempt is made to call into a codec whose layout does not
// match.
const LayoutVersion4 = 4

// IOOptions is a bitset of read/write behavior toggles.
type IOOptions uint32

// MetaData gates metadata extraction during read.
const MetaData IOOptions = 1 << 0

// ReadOptions configures a read session. Init deep-copies this value.
type ReadOptions struct {
	OutputPixelFormat pixel.Format
	IOOptions         IOOptions
}

// WriteOptions configures a write session.
type WriteOptions struct {
	OutputPixelFormat pixel.Format
	Compression       pixel.Compression
}

// ReadFeatures describes a driver's read-side capabilities and defaults.
type ReadFeatures struct {
	InputPixelFormats        []pixel.Format
	OutputPixelFormats       []pixel.Format
	DefaultOutputPixelFormat pixel.Format
	DefaultIOOptions         IOOptions
}

// WriteFeatures describes a driver's write-side capabilities and defaults.
type WriteFeatures struct {
	OutputPixelFormats []pixel.Format
	Compressions       []pixel.Compression
	DefaultCompression pixel.Compression
}

// Reader drives the read half of one streaming session. A
// Reader is created fresh per session; all mutable decode state lives
// inside it, never in the Driver, so concurrent sessions of the same codec
// never share mutable state.
type Reader interface {
	// Init binds the reader to an I/O stream and options. Transitions the
	// session to READING.
	Init(s iostream.Stream, opts *ReadOptions) error
	// SeekNextFrame advances to the next frame and returns its header, or
	// sailerr.ErrNoMoreFrames when the stream is exhausted.
	SeekNextFrame() (*pixel.Header, error)
	// SeekNextPass prepares the next interlaced pass. Called exactly
	// header.Passes times per frame.
	SeekNextPass() error
	// ReadFrame fills buf with one pass of pixel data.
	ReadFrame(buf []byte) error
	// Finish releases reader state. Must accept being called from any
	// state and must not panic; idempotent in the sense that a second call
	// returns an error but never crashes.
	Finish() error
}

// Writer drives the write half of one streaming session.
type Writer interface {
	Init(s iostream.Stream, opts *WriteOptions) error
	SeekNextFrame(header *pixel.Header) error
	SeekNextPass() error
	WriteFrame(buf []byte) error
	Finish() error
}

// Driver is the fixed entry-point set a codec implementation provides:
// NewReader/NewWriter stand in for a native ABI's init calls allocating
// per-session state, paired with the features each side advertises.
type Driver interface {
	NewReader() Reader
	NewWriter() Writer
	ReadFeatures() ReadFeatures
	WriteFeatures() WriteFeatures
}
