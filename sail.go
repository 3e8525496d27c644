// Package sail is the top-level facade over the codec framework: codec
// discovery, probing, and read/write sessions, wired with sensible
// defaults so most callers never need the sail/* subpackages directly.
package sail

import (
	"github.com/sail-go/sail/codec"
	"github.com/sail-go/sail/codecs/gif"
	"github.com/sail-go/sail/config"
	"github.com/sail-go/sail/iostream"
	"github.com/sail-go/sail/pixel"
	"github.com/sail-go/sail/registry"
	"github.com/sail-go/sail/sailcore"
	"github.com/sail-go/sail/sailerr"
	"github.com/sail-go/sail/session"
)

// Re-export the pieces callers need without reaching into subpackages.
type (
	Logger      = sailcore.Logger
	Hook        = sailcore.Hook
	Stream      = iostream.Stream
	Header      = pixel.Header
	Format      = pixel.Format
	Descriptor  = codec.Descriptor
	ReadOptions = codec.ReadOptions
)

// Pixel format constants, re-exported for callers that never import
// sail/pixel directly.
const (
	FormatRGBA8888 = pixel.RGBA8888
	FormatBGRA8888 = pixel.BGRA8888
	FormatIndexed8 = pixel.Indexed8
)

// DefaultConfig returns a sensible production configuration.
func DefaultConfig() config.Config { return config.Default() }

// LoadCodecs builds a Registry with every builtin codec registered. cfg is
// not read: its CodecsPath is ignored and only compile-time-linked codecs
// are available.
func LoadCodecs(cfg config.Config, log Logger) (*registry.Registry, error) {
	if log == nil {
		log = sailcore.NoopLogger{}
	}
	reg := registry.New(log)
	if err := gif.Register(reg, log); err != nil {
		return nil, err
	}
	return reg, nil
}

// CodecForExtension resolves a codec by file extension (leading dot
// optional, case-insensitive).
func CodecForExtension(reg *registry.Registry, ext string) (*Descriptor, error) {
	return reg.CodecForExtension(ext)
}

// CodecForMIME resolves a codec by MIME type.
func CodecForMIME(reg *registry.Registry, mime string) (*Descriptor, error) {
	return reg.CodecForMIME(mime)
}

// CodecBySniffing resolves a codec by matching data's leading bytes against
// every registered codec's magic numbers.
func CodecBySniffing(reg *registry.Registry, data []byte) (*Descriptor, error) {
	return reg.CodecBySniffing(data)
}

// Probe opens stream with d's reader just far enough to learn the first
// frame's header, then releases the reader. Useful for inspecting an image
// without decoding any pixels.
func Probe(reg *registry.Registry, d *Descriptor, stream Stream, opts *ReadOptions) (*Header, error) {
	drv, err := reg.Load(d)
	if err != nil {
		return nil, err
	}
	return session.Probe(drv, stream, opts)
}

// UnloadCodecs drops every cached driver instance. Safe to call with no
// sessions in flight; callers must not hold a ReadSession or WriteSession
// across this call.
func UnloadCodecs(reg *registry.Registry) { reg.Unload() }

// StartReading constructs a ReadSession for d bound to stream and runs Init,
// returning a session ready for SeekNextFrame.
func StartReading(reg *registry.Registry, d *Descriptor, stream Stream, opts *ReadOptions, hook Hook) (*session.ReadSession, error) {
	drv, err := reg.Load(d)
	if err != nil {
		return nil, err
	}
	rs := session.NewReadSession(drv.NewReader())
	if hook != nil {
		rs.SetHook(hook)
	}
	if err := rs.Init(stream, opts); err != nil {
		return nil, err
	}
	return rs, nil
}

// StartWriting constructs a WriteSession for d bound to stream and runs
// Init, returning a session ready for SeekNextFrame.
func StartWriting(reg *registry.Registry, d *Descriptor, stream Stream, opts *codec.WriteOptions, hook Hook) (*session.WriteSession, error) {
	drv, err := reg.Load(d)
	if err != nil {
		return nil, err
	}
	ws := session.NewWriteSession(drv.NewWriter())
	if hook != nil {
		ws.SetHook(hook)
	}
	if err := ws.Init(stream, opts); err != nil {
		return nil, err
	}
	return ws, nil
}

// IsNoMoreFrames reports whether err is the sentinel a read session returns
// once every frame has been consumed.
func IsNoMoreFrames(err error) bool { return sailerr.Is(err, sailerr.NoMoreFrames) }
