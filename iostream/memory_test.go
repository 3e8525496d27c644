package iostream

import (
	"testing"

	"github.com/sail-go/sail/sailerr"
)

func TestMemoryReaderReadsExactBytes(t *testing.T) {
	s := NewMemoryReader([]byte("hello world"))
	buf := make([]byte, 5)
	n, err := s.Read(buf, 1, 5)
	if err != nil {
		t.Fatal(err)
	}
	if n != 5 || string(buf) != "hello" {
		t.Fatalf("got n=%d buf=%q", n, buf)
	}
}

func TestMemoryReaderEOFAtAccessibleLength(t *testing.T) {
	s := NewMemoryReader([]byte("ab"))
	buf := make([]byte, 2)
	if _, err := s.Read(buf, 1, 2); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Read(buf, 1, 1); sailerr.CodeOf(err) != sailerr.EOF {
		t.Fatalf("expected sailerr.EOF at end of buffer, got %v", err)
	}
}

func TestMemoryWriterCapacityWatermark(t *testing.T) {
	s := NewMemoryWriter(4)
	mem := s.(*memoryStream)

	if mem.AccessibleLength() != 0 {
		t.Fatalf("fresh writer should have zero accessible length, got %d", mem.AccessibleLength())
	}

	n, err := mem.Write([]byte("ab"), 1, 2)
	if err != nil || n != 2 {
		t.Fatalf("Write: n=%d err=%v", n, err)
	}
	if mem.AccessibleLength() != 2 {
		t.Fatalf("accessible length = %d, want 2", mem.AccessibleLength())
	}

	// Writing past capacity truncates to what fits, then reports EOF on the
	// next attempt once capacity is exhausted.
	n, err = mem.Write([]byte("cdef"), 1, 4)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("expected only 2 objects written (capacity 4, already at 2), got %d", n)
	}
	if mem.AccessibleLength() != 4 {
		t.Fatalf("accessible length = %d, want 4 (full capacity)", mem.AccessibleLength())
	}

	if _, err := mem.Write([]byte("x"), 1, 1); sailerr.CodeOf(err) != sailerr.EOF {
		t.Fatalf("expected sailerr.EOF once capacity is exhausted, got %v", err)
	}
}

func TestMemoryWriterReadOnlyRejectsWrite(t *testing.T) {
	s := NewMemoryReader([]byte("x"))
	if _, err := s.Write([]byte("y"), 1, 1); sailerr.CodeOf(err) != sailerr.IOWrite {
		t.Fatalf("expected sailerr.IOWrite from a read-only stream, got %v", err)
	}
}

func TestMemorySeekWatermarkAdvancesOnForwardSeek(t *testing.T) {
	s := NewMemoryWriter(8)
	mem := s.(*memoryStream)

	if err := mem.Seek(3, SeekSet); err != nil {
		t.Fatal(err)
	}
	// Seeking to offset 3 makes byte index 3 accessible, watermark = 4.
	if mem.AccessibleLength() != 4 {
		t.Fatalf("accessible length after seek = %d, want 4", mem.AccessibleLength())
	}

	if err := mem.Seek(0, SeekEnd); err != nil {
		t.Fatal(err)
	}
	pos, err := mem.Tell()
	if err != nil {
		t.Fatal(err)
	}
	if pos != 4 {
		t.Fatalf("SeekEnd(0) landed at %d, want 4 (current accessible length)", pos)
	}
}

func TestMemorySeekPastCapacityClamps(t *testing.T) {
	s := NewMemoryWriter(4)
	mem := s.(*memoryStream)

	if err := mem.Seek(100, SeekSet); err != nil {
		t.Fatal(err)
	}
	pos, _ := mem.Tell()
	if pos != 4 {
		t.Fatalf("seek past capacity should clamp to capacity, got pos=%d", pos)
	}
	if mem.AccessibleLength() != 4 {
		t.Fatalf("accessible length should clamp to capacity, got %d", mem.AccessibleLength())
	}
}
