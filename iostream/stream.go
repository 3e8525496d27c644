// Package iostream is the abstract I/O layer codecs read and write through:
// a source-agnostic byte stream with file-backed and memory-backed
// implementations.
package iostream

import "github.com/sail-go/sail/sailerr"

// Whence selects the reference point for Seek, mirroring io.Seeker but
// named the way a native caller's manifest/ABI would.
type Whence int

const (
	SeekSet Whence = iota
	SeekCur
	SeekEnd
)

// Kind distinguishes file-backed from memory-backed streams. Used only for
// diagnostics and codec hints,
type Kind int

const (
	KindFile Kind = iota
	KindMemory
)

// Stream is the contract codecs are written against. Every method is
// allowed to fail with one of the small enumerated *sailerr.Error codes
// from package sailerr; sessions propagate those verbatim.
type Stream interface {
	// Read reads whole objects of objectSize bytes each, up to objectCount
	// of them, stopping early at EOF. Returns sailerr.EOF only if zero
	// objects were read and the position was already at or past the
	// accessible length.
	Read(buf []byte, objectSize, objectCount int) (readObjectCount int, err error)
	// Write writes whole objects; memory streams fail with sailerr.EOF once
	// their fixed capacity is exhausted, file streams grow.
	Write(buf []byte, objectSize, objectCount int) (writtenObjectCount int, err error)
	Seek(offset int64, whence Whence) error
	Tell() (int64, error)
	EOF() (bool, error)
	Flush() error
	// Close is idempotent and safe to call after a partial failure.
	Close() error
	// Kind reports whether this is a file or memory stream.
	Kind() Kind
}

// checkObjectArgs validates the common Read/Write argument shape.
func checkObjectArgs(buf []byte, objectSize, objectCount int) error {
	if objectSize <= 0 || objectCount < 0 {
		return sailerr.New(sailerr.InvalidArgument, "iostream.check_object_args")
	}
	if len(buf) < objectSize*objectCount {
		return sailerr.New(sailerr.InvalidArgument, "iostream.check_object_args")
	}
	return nil
}
