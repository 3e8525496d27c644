package session

import (
	"github.com/sail-go/sail/codec"
	"github.com/sail-go/sail/iostream"
	"github.com/sail-go/sail/pixel"
	"github.com/sail-go/sail/sailcore"
	"github.com/sail-go/sail/sailerr"
)

type writeState int

const (
	writeIdle writeState = iota
	writeWriting
	writeFrameReady
	writePassReady
	writeFrameDone
	writeFinished
	writeFailed
)

// WriteSession drives codec.Writer through its strict call order, symmetric
// with ReadSession: Init -> SeekNextFrame -> SeekNextPass -> WriteFrame (x
// passes) -> SeekNextFrame (next) | Finish.
type WriteSession struct {
	writer codec.Writer
	state  writeState
	hook   sailcore.Hook

	passesWanted int
	passesDone   int
}

// NewWriteSession wraps a freshly constructed codec.Writer.
func NewWriteSession(w codec.Writer) *WriteSession {
	return &WriteSession{writer: w, state: writeIdle, hook: sailcore.NoopHook{}}
}

// SetHook installs h to observe every subsequent writer operation. Passing
// nil restores the no-op default.
func (s *WriteSession) SetHook(h sailcore.Hook) {
	if h == nil {
		h = sailcore.NoopHook{}
	}
	s.hook = h
}

// Init binds the session to an output stream.
func (s *WriteSession) Init(stream iostream.Stream, opts *codec.WriteOptions) error {
	if s.state != writeIdle {
		return sailerr.New(sailerr.StateError, "session.write.init")
	}
	optsCopy := *opts
	s.hook.BeforeOp("write_init")
	err := s.writer.Init(stream, &optsCopy)
	s.hook.AfterOp("write_init", err)
	if err != nil {
		s.state = writeFailed
		return err
	}
	s.state = writeWriting
	return nil
}

// SeekNextFrame begins a new frame with the given header. The codec
// validates the header against its declared write capabilities.
func (s *WriteSession) SeekNextFrame(header *pixel.Header) error {
	if s.state != writeWriting && s.state != writeFrameDone {
		return sailerr.New(sailerr.StateError, "session.write.seek_next_frame")
	}
	if err := header.Validate(); err != nil {
		return err
	}
	s.hook.BeforeOp("write_seek_next_frame")
	err := s.writer.SeekNextFrame(header)
	s.hook.AfterOp("write_seek_next_frame", err)
	if err != nil {
		s.state = writeFailed
		return err
	}
	s.passesWanted = header.Passes
	s.passesDone = 0
	s.state = writeFrameReady
	return nil
}

// SeekNextPass prepares the next pass for the current frame.
func (s *WriteSession) SeekNextPass() error {
	if s.state != writeFrameReady && s.state != writePassReady {
		return sailerr.New(sailerr.StateError, "session.write.seek_next_pass")
	}
	if s.passesDone >= s.passesWanted {
		return sailerr.New(sailerr.StateError, "session.write.seek_next_pass")
	}
	s.hook.BeforeOp("write_seek_next_pass")
	err := s.writer.SeekNextPass()
	s.hook.AfterOp("write_seek_next_pass", err)
	if err != nil {
		s.state = writeFailed
		return err
	}
	s.state = writePassReady
	return nil
}

// WriteFrame writes one pass of pixel data.
func (s *WriteSession) WriteFrame(buf []byte) error {
	if s.state != writePassReady {
		return sailerr.New(sailerr.StateError, "session.write.write_frame")
	}
	s.hook.BeforeOp("write_frame")
	err := s.writer.WriteFrame(buf)
	s.hook.AfterOp("write_frame", err)
	if err != nil {
		s.state = writeFailed
		return err
	}
	s.passesDone++
	if s.passesDone >= s.passesWanted {
		s.state = writeFrameDone
	} else {
		s.state = writeFrameReady
	}
	return nil
}

// Finish releases writer state. Safe to call from any state, including
// IDLE (before Init) or after a failure; a second call returns an error but
// never panics.
func (s *WriteSession) Finish() error {
	if s.state == writeFinished {
		return sailerr.New(sailerr.StateError, "session.write.finish")
	}
	neverInited := s.state == writeIdle
	s.state = writeFinished
	if neverInited {
		return nil
	}
	s.hook.BeforeOp("write_finish")
	err := s.writer.Finish()
	s.hook.AfterOp("write_finish", err)
	return err
}
