package iostream

import (
	"github.com/sail-go/sail/sailerr"
)

// memoryStream implements Stream over an in-memory buffer. It tracks two
// sizes (grounded on SAIL's io_mem.c):
//
//   - capacity: the fixed total size of the underlying buffer.
//   - accessibleLength: the watermark of the highest byte ever written to
//     or seeked past. For a read stream this starts out equal to capacity
//     (the whole view is accessible); for a write stream it starts at 0 and
//     grows as bytes are written or the stream is seeked forward.
type memoryStream struct {
	buffer           []byte
	capacity         int
	accessibleLength int
	pos              int
	readOnly         bool
	closed           bool
}

// NewMemoryReader returns a Stream providing read-only, immutable access to
// data. Write always fails with sailerr.IOWrite.
func NewMemoryReader(data []byte) Stream {
	return &memoryStream{
		buffer:           data,
		capacity:         len(data),
		accessibleLength: len(data),
		readOnly:         true,
	}
}

// NewMemoryWriter returns a Stream backed by a fixed-capacity buffer.
// Writing past capacity fails with sailerr.EOF, matching a memory-backed
// write stream's contract.
func NewMemoryWriter(capacity int) Stream {
	return &memoryStream{
		buffer:   make([]byte, capacity),
		capacity: capacity,
	}
}

// Bytes returns the portion of the underlying buffer written or seeked so
// far (length == AccessibleLength()).
func (m *memoryStream) Bytes() []byte {
	return m.buffer[:m.accessibleLength]
}

// AccessibleLength reports the current watermark.
func (m *memoryStream) AccessibleLength() int { return m.accessibleLength }

func (m *memoryStream) Kind() Kind { return KindMemory }

func (m *memoryStream) Read(buf []byte, objectSize, objectCount int) (int, error) {
	if err := checkObjectArgs(buf, objectSize, objectCount); err != nil {
		return 0, err
	}
	if m.pos >= m.accessibleLength {
		return 0, sailerr.New(sailerr.EOF, "iostream.memory.read")
	}

	read := 0
	for m.pos <= m.accessibleLength-objectSize && objectCount > 0 {
		copy(buf[read*objectSize:], m.buffer[m.pos:m.pos+objectSize])
		m.pos += objectSize
		read++
		objectCount--
	}
	return read, nil
}

func (m *memoryStream) Write(buf []byte, objectSize, objectCount int) (int, error) {
	if m.readOnly {
		return 0, sailerr.New(sailerr.IOWrite, "iostream.memory.write")
	}
	if err := checkObjectArgs(buf, objectSize, objectCount); err != nil {
		return 0, err
	}
	if m.pos >= m.capacity {
		return 0, sailerr.New(sailerr.EOF, "iostream.memory.write")
	}

	written := 0
	for m.pos <= m.capacity-objectSize && objectCount > 0 {
		copy(m.buffer[m.pos:m.pos+objectSize], buf[written*objectSize:(written+1)*objectSize])
		m.pos += objectSize
		if m.pos >= m.accessibleLength {
			m.accessibleLength = m.pos
		}
		written++
		objectCount--
	}
	return written, nil
}

func (m *memoryStream) Seek(offset int64, whence Whence) error {
	var newPos int
	switch whence {
	case SeekSet:
		newPos = int(offset)
	case SeekCur:
		newPos = m.pos + int(offset)
	case SeekEnd:
		newPos = m.accessibleLength + int(offset)
	default:
		return sailerr.New(sailerr.UnsupportedSeekWhence, "iostream.memory.seek")
	}
	if newPos < 0 {
		return sailerr.New(sailerr.IOSeek, "iostream.memory.seek")
	}

	if newPos >= m.capacity {
		newPos = m.capacity
		m.accessibleLength = m.capacity
	} else if newPos >= m.accessibleLength {
		m.accessibleLength = newPos + 1
		if m.accessibleLength > m.capacity {
			m.accessibleLength = m.capacity
		}
	}

	m.pos = newPos
	return nil
}

func (m *memoryStream) Tell() (int64, error) { return int64(m.pos), nil }

func (m *memoryStream) EOF() (bool, error) { return m.pos >= m.accessibleLength, nil }

func (m *memoryStream) Flush() error { return nil }

func (m *memoryStream) Close() error {
	m.closed = true
	return nil
}
