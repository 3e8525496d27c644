package sail

import (
	"bytes"
	"compress/lzw"
	"sync"
	"testing"

	"github.com/sail-go/sail/iostream"
)

// buildMinimalGIF returns a single-frame, non-interlaced GIF exercising
// only what every concurrent reader in this test needs: a 2x2 image over a
// 2-entry global color table.
func buildMinimalGIF() []byte {
	var buf bytes.Buffer
	buf.WriteString("GIF89a")
	le16 := func(v int) { buf.WriteByte(byte(v)); buf.WriteByte(byte(v >> 8)) }
	le16(2)                                   // width
	le16(2)                                   // height
	buf.WriteByte(0x80)                       // global color table present, 2 entries
	buf.WriteByte(0)                          // background index
	buf.WriteByte(0)                          // aspect ratio
	buf.Write([]byte{0, 0, 0, 255, 255, 255}) // black, white

	buf.WriteByte(0x2C) // image descriptor
	le16(0)             // left
	le16(0)             // top
	le16(2)             // width
	le16(2)             // height
	buf.WriteByte(0)    // packed: no local table, not interlaced

	const minCodeSize = 2
	buf.WriteByte(minCodeSize)
	var compressed bytes.Buffer
	w := lzw.NewWriter(&compressed, lzw.LSB, minCodeSize)
	if _, err := w.Write([]byte{1, 0, 0, 1}); err != nil {
		panic(err)
	}
	if err := w.Close(); err != nil {
		panic(err)
	}
	data := compressed.Bytes()
	buf.WriteByte(byte(len(data)))
	buf.Write(data)
	buf.WriteByte(0) // block terminator

	buf.WriteByte(0x3B) // trailer
	return buf.Bytes()
}

// TestConcurrentSessionsAgainstSharedRegistry drives many independent read
// sessions through one shared, already-loaded Registry at once, the way a
// server would fan out decodes across a fixed set of codec drivers.
func TestConcurrentSessionsAgainstSharedRegistry(t *testing.T) {
	reg, err := LoadCodecs(DefaultConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}
	d, err := CodecForExtension(reg, "gif")
	if err != nil {
		t.Fatal(err)
	}

	raw := buildMinimalGIF()
	const workers = 32

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			stream := iostream.NewMemoryReader(append([]byte(nil), raw...))
			rs, err := StartReading(reg, d, stream, &ReadOptions{OutputPixelFormat: FormatRGBA8888}, nil)
			if err != nil {
				errs <- err
				return
			}
			hdr, err := rs.SeekNextFrame()
			if err != nil {
				errs <- err
				return
			}
			if err := rs.SeekNextPass(); err != nil {
				errs <- err
				return
			}
			pixels := make([]byte, hdr.BytesPerLine*hdr.Height)
			if err := rs.ReadFrame(pixels); err != nil {
				errs <- err
				return
			}
			if pixels[0] != 255 || pixels[1] != 255 || pixels[2] != 255 {
				errs <- errNotWhite
				return
			}
			if !IsNoMoreFrames(mustErr(rs.SeekNextFrame())) {
				errs <- errExpectedNoMoreFrames
				return
			}
			errs <- rs.Finish()
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Error(err)
		}
	}
}

var errNotWhite = stubErr("decoded pixel 0 was not white as expected")
var errExpectedNoMoreFrames = stubErr("expected NoMoreFrames after the only frame")

type stubErr string

func (e stubErr) Error() string { return string(e) }

func mustErr(_ interface{}, err error) error { return err }
