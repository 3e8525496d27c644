package registry

import (
	"testing"

	"github.com/sail-go/sail/codec"
	"github.com/sail-go/sail/sailcore"
	"github.com/sail-go/sail/sailerr"
)

type stubDriver struct{}

func (stubDriver) NewReader() codec.Reader            { return nil }
func (stubDriver) NewWriter() codec.Writer            { return nil }
func (stubDriver) ReadFeatures() codec.ReadFeatures   { return codec.ReadFeatures{} }
func (stubDriver) WriteFeatures() codec.WriteFeatures { return codec.WriteFeatures{} }

func descriptor(name string, ext, mime string, magic []byte) *codec.Descriptor {
	return &codec.Descriptor{
		LayoutVersion: codec.LayoutVersion4,
		Name:          name,
		Extensions:    []string{ext},
		MIMETypes:     []string{mime},
		MagicNumbers:  [][]byte{magic},
	}
}

func TestRegistryResolveByExtensionThenMIMEThenSniff(t *testing.T) {
	r := New(sailcore.NoopLogger{})
	d := descriptor("GIF", "gif", "image/gif", []byte("GIF89a"))
	r.RegisterBuiltin(d, func() (codec.Driver, error) { return stubDriver{}, nil })

	if got, err := r.CodecForExtension(".GIF"); err != nil || got.Name != "GIF" {
		t.Fatalf("CodecForExtension: got %v, err %v", got, err)
	}
	if got, err := r.CodecForMIME("IMAGE/GIF"); err != nil || got.Name != "GIF" {
		t.Fatalf("CodecForMIME: got %v, err %v", got, err)
	}
	if got, err := r.CodecBySniffing([]byte("GIF89a\x00\x00")); err != nil || got.Name != "GIF" {
		t.Fatalf("CodecBySniffing: got %v, err %v", got, err)
	}
	if _, err := r.Resolve("png", "", nil); err == nil {
		t.Fatal("expected no match for an unregistered extension")
	}
}

func TestRegistryDuplicateExtensionFirstWins(t *testing.T) {
	r := New(sailcore.NoopLogger{})
	first := descriptor("A", "img", "image/a", []byte{0x01})
	second := descriptor("B", "img", "image/b", []byte{0x02})

	r.RegisterBuiltin(first, func() (codec.Driver, error) { return stubDriver{}, nil })
	r.RegisterBuiltin(second, func() (codec.Driver, error) { return stubDriver{}, nil })

	got, err := r.CodecForExtension("img")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "A" {
		t.Fatalf("expected first registration to win, got %q", got.Name)
	}
}

func TestRegistryLoadCachesDriver(t *testing.T) {
	r := New(sailcore.NoopLogger{})
	d := descriptor("GIF", "gif", "image/gif", []byte("GIF89a"))
	calls := 0
	r.RegisterBuiltin(d, func() (codec.Driver, error) {
		calls++
		return stubDriver{}, nil
	})

	if _, err := r.Load(d); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Load(d); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Fatalf("factory called %d times, want 1 (driver should be cached)", calls)
	}

	r.Unload()
	if _, err := r.Load(d); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Fatalf("factory called %d times after Unload, want 2", calls)
	}
}

func TestRegistryLoadRejectsLayoutMismatch(t *testing.T) {
	r := New(sailcore.NoopLogger{})
	d := &codec.Descriptor{LayoutVersion: 1, Name: "old"}
	if _, err := r.Load(d); sailerr.CodeOf(err) != sailerr.UnsupportedCodecLayout {
		t.Fatalf("expected UnsupportedCodecLayout, got %v", err)
	}
}
