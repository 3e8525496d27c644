package gif

import (
	_ "embed"
	"strings"

	"github.com/sail-go/sail/codec"
	"github.com/sail-go/sail/registry"
	"github.com/sail-go/sail/sailcore"
)

//go:embed gif.manifest
var manifestText string

// Register parses the embedded GIF manifest and adds this codec to reg as
// a builtin, compile-time-linked driver.
func Register(reg *registry.Registry, log sailcore.Logger) error {
	d, err := codec.ParseManifest(strings.NewReader(manifestText), log)
	if err != nil {
		return err
	}
	reg.RegisterBuiltin(d, func() (codec.Driver, error) {
		return New(), nil
	})
	return nil
}
