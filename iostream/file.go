package iostream

import (
	"errors"
	"io"
	"os"

	"github.com/sail-go/sail/sailerr"
)

// fileStream wraps an *os.File. Write past the current end grows the file;
// Seek past EOF is permitted and the next Write sparsely extends it —
// ordinary POSIX file semantics.
type fileStream struct {
	f      *os.File
	closed bool
}

// OpenFile opens path for reading. The returned Stream must be closed with
// Close.
func OpenFile(path string) (Stream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, sailerr.Wrap(sailerr.IOOpen, "iostream.open_file", err)
	}
	return &fileStream{f: f}, nil
}

// CreateFile creates or truncates path for writing (and reading, since
// O_RDWR is used so codecs that seek-and-reread their own output work).
func CreateFile(path string) (Stream, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, sailerr.Wrap(sailerr.IOOpen, "iostream.create_file", err)
	}
	return &fileStream{f: f}, nil
}

func (fs *fileStream) Kind() Kind { return KindFile }

func (fs *fileStream) Read(buf []byte, objectSize, objectCount int) (int, error) {
	if err := checkObjectArgs(buf, objectSize, objectCount); err != nil {
		return 0, err
	}

	read := 0
	for read < objectCount {
		start := read * objectSize
		n, err := io.ReadFull(fs.f, buf[start:start+objectSize])
		if n == objectSize {
			read++
		}
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				if read == 0 {
					return 0, sailerr.New(sailerr.EOF, "iostream.file.read")
				}
				return read, nil
			}
			return read, sailerr.Wrap(sailerr.IORead, "iostream.file.read", err)
		}
	}
	return read, nil
}

func (fs *fileStream) Write(buf []byte, objectSize, objectCount int) (int, error) {
	if err := checkObjectArgs(buf, objectSize, objectCount); err != nil {
		return 0, err
	}
	n, err := fs.f.Write(buf[:objectSize*objectCount])
	written := n / objectSize
	if err != nil {
		return written, sailerr.Wrap(sailerr.IOWrite, "iostream.file.write", err)
	}
	return written, nil
}

func (fs *fileStream) Seek(offset int64, whence Whence) error {
	var w int
	switch whence {
	case SeekSet:
		w = io.SeekStart
	case SeekCur:
		w = io.SeekCurrent
	case SeekEnd:
		w = io.SeekEnd
	default:
		return sailerr.New(sailerr.UnsupportedSeekWhence, "iostream.file.seek")
	}
	if _, err := fs.f.Seek(offset, w); err != nil {
		return sailerr.Wrap(sailerr.IOSeek, "iostream.file.seek", err)
	}
	return nil
}

func (fs *fileStream) Tell() (int64, error) {
	pos, err := fs.f.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, sailerr.Wrap(sailerr.IOSeek, "iostream.file.tell", err)
	}
	return pos, nil
}

func (fs *fileStream) EOF() (bool, error) {
	pos, err := fs.f.Seek(0, io.SeekCurrent)
	if err != nil {
		return false, sailerr.Wrap(sailerr.IOSeek, "iostream.file.eof", err)
	}
	info, err := fs.f.Stat()
	if err != nil {
		return false, sailerr.Wrap(sailerr.IOSeek, "iostream.file.eof", err)
	}
	return pos >= info.Size(), nil
}

func (fs *fileStream) Flush() error {
	if err := fs.f.Sync(); err != nil {
		return sailerr.Wrap(sailerr.IOWrite, "iostream.file.flush", err)
	}
	return nil
}

func (fs *fileStream) Close() error {
	if fs.closed {
		return nil
	}
	fs.closed = true
	if err := fs.f.Close(); err != nil {
		return sailerr.Wrap(sailerr.IOOpen, "iostream.file.close", err)
	}
	return nil
}
