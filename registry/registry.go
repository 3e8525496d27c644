// Package registry resolves a codec by extension, MIME type, or magic-number
// sniffing, and manages the lazy load/unload lifecycle of codec drivers.
package registry

import (
	"strings"
	"sync"

	"github.com/sail-go/sail/codec"
	"github.com/sail-go/sail/sailcore"
	"github.com/sail-go/sail/sailerr"
)

// Factory lazily constructs a codec.Driver. Builtin codecs register one
// directly; there is no dynamic shared-object loading in this framework, so
// Factory stands in for what would otherwise be a dlopen+dlsym resolution.
type Factory func() (codec.Driver, error)

type entry struct {
	descriptor *codec.Descriptor
	factory    Factory

	mu     sync.Mutex
	driver codec.Driver // nil until Load
}

// Registry holds every known codec descriptor and its lazily loaded driver.
// Resolution (CodecForExtension, CodecForMIME, CodecBySniffing) is safe for
// concurrent use. Load/Unload mutate shared state and must be serialized by
// the caller with respect to active sessions.
type Registry struct {
	log sailcore.Logger

	mu      sync.RWMutex
	byName  map[string]*entry
	byExt   map[string]*entry // lower-cased, no leading dot
	byMIME  map[string]*entry // lower-cased
	ordered []*entry          // registration order, for sniffing and tie-break determinism
}

// New returns an empty Registry. Use RegisterBuiltin to populate it.
func New(log sailcore.Logger) *Registry {
	if log == nil {
		log = sailcore.NoopLogger{}
	}
	return &Registry{
		log:    log,
		byName: make(map[string]*entry),
		byExt:  make(map[string]*entry),
		byMIME: make(map[string]*entry),
	}
}

// RegisterBuiltin adds a compile-time-linked codec. Duplicate extension or
// MIME registrations log a warning; the first registration wins.
func (r *Registry) RegisterBuiltin(d *codec.Descriptor, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[d.Name]; exists {
		r.log.Warn("registry: duplicate codec name, ignoring", "name", d.Name)
		return
	}

	e := &entry{descriptor: d, factory: factory}
	r.byName[d.Name] = e
	r.ordered = append(r.ordered, e)

	for _, ext := range d.Extensions {
		if _, dup := r.byExt[ext]; dup {
			r.log.Warn("registry: duplicate extension, first registration wins", "extension", ext, "codec", d.Name)
			continue
		}
		r.byExt[ext] = e
	}
	for _, mime := range d.MIMETypes {
		if _, dup := r.byMIME[mime]; dup {
			r.log.Warn("registry: duplicate mime type, first registration wins", "mime", mime, "codec", d.Name)
			continue
		}
		r.byMIME[mime] = e
	}
}

// CodecForExtension resolves by file extension. ext may have a leading dot;
// lookup is case-insensitive.
func (r *Registry) CodecForExtension(ext string) (*codec.Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byExt[normalizeExt(ext)]
	if !ok {
		return nil, sailerr.New(sailerr.NoSuitableCodec, "registry.codec_for_extension")
	}
	return e.descriptor, nil
}

// CodecForMIME resolves by MIME type, case-insensitive.
func (r *Registry) CodecForMIME(mime string) (*codec.Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byMIME[normalizeMIME(mime)]
	if !ok {
		return nil, sailerr.New(sailerr.NoSuitableCodec, "registry.codec_for_mime")
	}
	return e.descriptor, nil
}

// CodecBySniffing matches the leading bytes of data against every
// registered codec's magic numbers, in registration order, and returns the
// first match.
func (r *Registry) CodecBySniffing(data []byte) (*codec.Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.ordered {
		if e.descriptor.SniffMatch(data) {
			return e.descriptor, nil
		}
	}
	return nil, sailerr.New(sailerr.NoSuitableCodec, "registry.codec_by_sniffing")
}

// Resolve applies the lookup tie-break order: extension, then MIME, then
// sniffing. Any of ext or mime may be empty to skip that step; data may be
// nil to skip sniffing.
func (r *Registry) Resolve(ext, mime string, data []byte) (*codec.Descriptor, error) {
	if ext != "" {
		if d, err := r.CodecForExtension(ext); err == nil {
			return d, nil
		}
	}
	if mime != "" {
		if d, err := r.CodecForMIME(mime); err == nil {
			return d, nil
		}
	}
	if data != nil {
		if d, err := r.CodecBySniffing(data); err == nil {
			return d, nil
		}
	}
	return nil, sailerr.New(sailerr.NoSuitableCodec, "registry.resolve")
}

// Load returns the driver for a descriptor, constructing it on first use via
// its factory and caching the result. LayoutVersion is checked first; a
// mismatch returns UnsupportedCodecLayout without invoking the factory.
func (r *Registry) Load(d *codec.Descriptor) (codec.Driver, error) {
	if d.LayoutVersion != codec.LayoutVersion4 {
		return nil, sailerr.New(sailerr.UnsupportedCodecLayout, "registry.load")
	}

	r.mu.RLock()
	e, ok := r.byName[d.Name]
	r.mu.RUnlock()
	if !ok {
		return nil, sailerr.New(sailerr.NoSuitableCodec, "registry.load")
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.driver != nil {
		return e.driver, nil
	}
	drv, err := e.factory()
	if err != nil {
		return nil, sailerr.Wrap(sailerr.UnderlyingCodec, "registry.load", err)
	}
	e.driver = drv
	r.log.Debug("registry: codec loaded", "name", d.Name)
	return drv, nil
}

// Unload drops every cached driver so the next Load reconstructs it. The
// caller must ensure no session is currently using any loaded codec.
func (r *Registry) Unload() {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.ordered {
		e.mu.Lock()
		e.driver = nil
		e.mu.Unlock()
	}
	r.log.Debug("registry: all codecs unloaded")
}

// Destroy unloads every codec and discards all descriptors. The Registry is
// empty and unusable afterward.
func (r *Registry) Destroy() {
	r.Unload()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byName = make(map[string]*entry)
	r.byExt = make(map[string]*entry)
	r.byMIME = make(map[string]*entry)
	r.ordered = nil
}

// Descriptors returns every registered descriptor in registration order.
func (r *Registry) Descriptors() []*codec.Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*codec.Descriptor, len(r.ordered))
	for i, e := range r.ordered {
		out[i] = e.descriptor
	}
	return out
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.Trim(ext, "."))
}

func normalizeMIME(mime string) string {
	return strings.ToLower(mime)
}
