package codec

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/sail-go/sail/pixel"
	"github.com/sail-go/sail/sailcore"
	"github.com/sail-go/sail/sailerr"
)

// ParseManifest reads the line-oriented manifest format:
//
//	layout=<int>
//	name=<short-name>
//	description=<human>
//	version=<semver-like>
//	magic-numbers=<hex>[, <hex>…]
//	extensions=<ext>[, <ext>…]
//	mime-types=<mime>[, <mime>…]
//	read-pixel-formats=<fmt>[, <fmt>…]
//	write-pixel-formats=<fmt>[, <fmt>…]
//	compressions=<name>[, <name>…]
//
// The codec name, description and version are stored as given. Extensions
// and MIME types are lower-cased as they are parsed, so their original case
// is not kept; lookups elsewhere lower-case their keys too. Unknown lines
// are ignored with a warning logged through log.
func ParseManifest(r io.Reader, log sailcore.Logger) (*Descriptor, error) {
	if log == nil {
		log = sailcore.NoopLogger{}
	}
	d := &Descriptor{}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			log.Warn("codec manifest: malformed line, ignoring", "line", lineNo)
			continue
		}
		key = strings.TrimSpace(strings.ToLower(key))
		value = strings.TrimSpace(value)

		switch key {
		case "layout":
			var n int
			if _, err := fmt.Sscanf(value, "%d", &n); err != nil {
				return nil, sailerr.Wrap(sailerr.InvalidArgument, "codec.parse_manifest", err)
			}
			d.LayoutVersion = n
		case "name":
			d.Name = value
		case "description":
			d.Description = value
		case "version":
			d.Version = value
		case "magic-numbers":
			for _, tok := range splitList(value) {
				raw, err := hex.DecodeString(tok)
				if err != nil {
					log.Warn("codec manifest: bad magic number, skipping", "value", tok)
					continue
				}
				d.MagicNumbers = append(d.MagicNumbers, raw)
			}
		case "extensions":
			for _, tok := range splitList(value) {
				d.Extensions = append(d.Extensions, strings.ToLower(tok))
			}
		case "mime-types":
			for _, tok := range splitList(value) {
				d.MIMETypes = append(d.MIMETypes, strings.ToLower(tok))
			}
		case "read-pixel-formats":
			for _, tok := range splitList(value) {
				f, err := pixel.ParseFormat(tok)
				if err != nil {
					log.Warn("codec manifest: unknown read pixel format, skipping", "value", tok)
					continue
				}
				d.ReadPixelFormats = append(d.ReadPixelFormats, f)
			}
		case "write-pixel-formats":
			for _, tok := range splitList(value) {
				f, err := pixel.ParseFormat(tok)
				if err != nil {
					log.Warn("codec manifest: unknown write pixel format, skipping", "value", tok)
					continue
				}
				d.WritePixelFormats = append(d.WritePixelFormats, f)
			}
		case "compressions":
			for _, tok := range splitList(value) {
				c, err := parseCompression(tok)
				if err != nil {
					log.Warn("codec manifest: unknown compression, skipping", "value", tok)
					continue
				}
				d.Compressions = append(d.Compressions, c)
			}
		default:
			log.Warn("codec manifest: unknown key, ignoring", "key", key, "line", lineNo)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, sailerr.Wrap(sailerr.IORead, "codec.parse_manifest", err)
	}
	if d.Name == "" {
		return nil, sailerr.New(sailerr.InvalidArgument, "codec.parse_manifest")
	}
	return d, nil
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseCompression(s string) (pixel.Compression, error) {
	switch strings.ToLower(s) {
	case "none":
		return pixel.CompressionNone, nil
	case "lzw":
		return pixel.CompressionLZW, nil
	case "unknown":
		return pixel.CompressionUnknown, nil
	default:
		return 0, sailerr.New(sailerr.InvalidArgument, "codec.parse_compression")
	}
}
