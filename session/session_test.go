package session

import (
	"testing"

	"github.com/sail-go/sail/codec"
	"github.com/sail-go/sail/iostream"
	"github.com/sail-go/sail/pixel"
	"github.com/sail-go/sail/sailerr"
)

type fakeReader struct {
	frames   int
	returned int
	finished bool
}

func (f *fakeReader) Init(iostream.Stream, *codec.ReadOptions) error { return nil }

func (f *fakeReader) SeekNextFrame() (*pixel.Header, error) {
	if f.returned >= f.frames {
		return nil, sailerr.ErrNoMoreFrames
	}
	f.returned++
	return &pixel.Header{
		Width: 1, Height: 1,
		BytesPerLine: pixel.BytesPerLine(1, pixel.RGBA8888),
		PixelFormat:  pixel.RGBA8888,
		Passes:       1,
	}, nil
}

func (f *fakeReader) SeekNextPass() error { return nil }

func (f *fakeReader) ReadFrame(buf []byte) error { return nil }

func (f *fakeReader) Finish() error {
	f.finished = true
	return nil
}

func newTestSession(frames int) (*ReadSession, *fakeReader) {
	fr := &fakeReader{frames: frames}
	return NewReadSession(fr), fr
}

func TestReadSessionHappyPath(t *testing.T) {
	rs, fr := newTestSession(1)
	if err := rs.Init(iostream.NewMemoryReader(nil), &codec.ReadOptions{}); err != nil {
		t.Fatal(err)
	}
	hdr, err := rs.SeekNextFrame()
	if err != nil {
		t.Fatal(err)
	}
	if err := rs.SeekNextPass(); err != nil {
		t.Fatal(err)
	}
	buf := make([]byte, hdr.BytesPerLine*hdr.Height)
	if err := rs.ReadFrame(buf); err != nil {
		t.Fatal(err)
	}
	if _, err := rs.SeekNextFrame(); !sailerr.Is(err, sailerr.NoMoreFrames) {
		t.Fatalf("expected NoMoreFrames, got %v", err)
	}
	if err := rs.Finish(); err != nil {
		t.Fatal(err)
	}
	if !fr.finished {
		t.Fatal("expected the underlying reader's Finish to be called")
	}
}

func TestReadSessionOutOfOrderCallIsStateError(t *testing.T) {
	rs, _ := newTestSession(1)
	// ReadFrame before Init/SeekNextFrame/SeekNextPass.
	if err := rs.ReadFrame(make([]byte, 4)); sailerr.CodeOf(err) != sailerr.StateError {
		t.Fatalf("expected StateError, got %v", err)
	}

	if err := rs.Init(iostream.NewMemoryReader(nil), &codec.ReadOptions{}); err != nil {
		t.Fatal(err)
	}
	// SeekNextPass before SeekNextFrame.
	if err := rs.SeekNextPass(); sailerr.CodeOf(err) != sailerr.StateError {
		t.Fatalf("expected StateError, got %v", err)
	}
}

func TestReadSessionFinishSafeBeforeInit(t *testing.T) {
	rs, fr := newTestSession(1)
	if err := rs.Finish(); err != nil {
		t.Fatalf("Finish before Init must succeed, got %v", err)
	}
	if fr.finished {
		t.Fatal("Finish before Init must not call the underlying reader's Finish")
	}
}

func TestReadSessionFinishIsNotIdempotent(t *testing.T) {
	rs, _ := newTestSession(1)
	if err := rs.Finish(); err != nil {
		t.Fatal(err)
	}
	if err := rs.Finish(); sailerr.CodeOf(err) != sailerr.StateError {
		t.Fatalf("second Finish must return StateError, got %v", err)
	}
}
