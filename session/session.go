// Package session implements the streaming read/write state machine that
// binds one codec driver instance to one I/O stream.
package session

import (
	"github.com/sail-go/sail/codec"
	"github.com/sail-go/sail/iostream"
	"github.com/sail-go/sail/pixel"
	"github.com/sail-go/sail/sailcore"
	"github.com/sail-go/sail/sailerr"
)

// readState enumerates the read session's states.
type readState int

const (
	readIdle readState = iota
	readReading
	readFrameReady
	readPassReady
	readFrameDone
	readExhausted
	readFinished
	readFailed
)

// ReadSession drives codec.Reader through its strict call order, rejecting
// any call made out of order with STATE_ERROR.
type ReadSession struct {
	reader codec.Reader
	state  readState
	hook   sailcore.Hook

	header       *pixel.Header
	passesWanted int
	passesDone   int
}

// NewReadSession wraps a freshly constructed codec.Reader. Call Init next.
func NewReadSession(r codec.Reader) *ReadSession {
	return &ReadSession{reader: r, state: readIdle, hook: sailcore.NoopHook{}}
}

// SetHook installs h to observe every subsequent reader operation. Passing
// nil restores the no-op default.
func (s *ReadSession) SetHook(h sailcore.Hook) {
	if h == nil {
		h = sailcore.NoopHook{}
	}
	s.hook = h
}

// Init binds the session to an I/O stream and transitions IDLE -> READING.
func (s *ReadSession) Init(stream iostream.Stream, opts *codec.ReadOptions) error {
	if s.state != readIdle {
		return sailerr.New(sailerr.StateError, "session.read.init")
	}
	optsCopy := *opts
	s.hook.BeforeOp("read_init")
	err := s.reader.Init(stream, &optsCopy)
	s.hook.AfterOp("read_init", err)
	if err != nil {
		s.state = readFailed
		return err
	}
	s.state = readReading
	return nil
}

// SeekNextFrame advances to the next frame. Valid from READING (first
// frame) or FRAME_DONE (subsequent frames). Returns sailerr.ErrNoMoreFrames
// when the codec reports the stream is exhausted; the session transitions
// to a distinct exhausted state in that case, not FAILED — Finish is still
// the one valid next call, and it still reaches the underlying reader.
func (s *ReadSession) SeekNextFrame() (*pixel.Header, error) {
	if s.state != readReading && s.state != readFrameDone {
		return nil, sailerr.New(sailerr.StateError, "session.read.seek_next_frame")
	}
	s.hook.BeforeOp("read_seek_next_frame")
	hdr, err := s.reader.SeekNextFrame()
	s.hook.AfterOp("read_seek_next_frame", err)
	if err != nil {
		if sailerr.Is(err, sailerr.NoMoreFrames) {
			s.state = readExhausted
			return nil, err
		}
		s.state = readFailed
		return nil, err
	}
	if err := hdr.Validate(); err != nil {
		s.state = readFailed
		return nil, err
	}
	s.header = hdr
	s.passesWanted = hdr.Passes
	s.passesDone = 0
	s.state = readFrameReady
	return hdr, nil
}

// SeekNextPass prepares the next interlaced pass. Must be called exactly
// header.Passes times per frame, interleaved with ReadFrame.
func (s *ReadSession) SeekNextPass() error {
	if s.state != readFrameReady && s.state != readPassReady {
		return sailerr.New(sailerr.StateError, "session.read.seek_next_pass")
	}
	if s.passesDone >= s.passesWanted {
		return sailerr.New(sailerr.StateError, "session.read.seek_next_pass")
	}
	s.hook.BeforeOp("read_seek_next_pass")
	err := s.reader.SeekNextPass()
	s.hook.AfterOp("read_seek_next_pass", err)
	if err != nil {
		s.state = readFailed
		return err
	}
	s.state = readPassReady
	return nil
}

// ReadFrame fills buf with one pass of pixel data. After the final pass the
// session transitions to FRAME_DONE and the caller may seek the next frame.
func (s *ReadSession) ReadFrame(buf []byte) error {
	if s.state != readPassReady {
		return sailerr.New(sailerr.StateError, "session.read.read_frame")
	}
	s.hook.BeforeOp("read_frame")
	err := s.reader.ReadFrame(buf)
	s.hook.AfterOp("read_frame", err)
	if err != nil {
		s.state = readFailed
		return err
	}
	s.passesDone++
	if s.passesDone >= s.passesWanted {
		s.state = readFrameDone
	} else {
		s.state = readFrameReady
	}
	return nil
}

// Finish releases reader state. Safe to call from any state, including
// IDLE (before Init) or after a failure; a second call returns an error but
// never panics.
func (s *ReadSession) Finish() error {
	if s.state == readFinished {
		return sailerr.New(sailerr.StateError, "session.read.finish")
	}
	neverInited := s.state == readIdle
	s.state = readFinished
	if neverInited {
		return nil
	}
	s.hook.BeforeOp("read_finish")
	err := s.reader.Finish()
	s.hook.AfterOp("read_finish", err)
	return err
}

// Header returns the most recently seeked frame's header, or nil.
func (s *ReadSession) Header() *pixel.Header { return s.header }
