// Package config holds the top-level, injectable configuration for a sail
// process: codec discovery, default read options, and worker pool, retry
// and limit knobs. Outside Validate, only DefaultReadOptions is used in this
// module (by cmd/sail-probe); the other fields are not acted on.
package config

import (
	"os"
	"time"

	"github.com/sail-go/sail/codec"
	"github.com/sail-go/sail/pixel"
	"github.com/sail-go/sail/sailerr"
)

// defaultCodecsPath is used when SAIL_CODECS_PATH is unset.
const defaultCodecsPath = "/usr/local/share/sail/codecs"

// Config is the top-level configuration struct. Callers can start with
// Default() and override only what they need.
type Config struct {
	// CodecsPath names a directory for external codec manifests (and, on
	// platforms with dynamic loading, their driver libraries). LoadCodecs
	// does not read it; only builtin codecs are registered.
	CodecsPath string

	// DefaultReadOptions is a ready-made codec.ReadOptions a caller can pass
	// when starting a read session; sessions do not fall back to it.
	DefaultReadOptions codec.ReadOptions

	// Worker pool controls. No package in this module runs a worker pool.
	WorkerCount int // Default() sets 0
	QueueSize   int // max queued jobs before backpressure; default 64
	JobTimeout  time.Duration

	// Retry settings. Nothing in this module retries; I/O errors are
	// returned as they occur.
	MaxRetries int
	RetryDelay time.Duration

	// Streaming / memory limits. Nothing in this module enforces them.
	MaxImageBytes int64 // 0 = no limit
	ChunkSize     int   // streaming chunk size in bytes; default 32 KiB

	LogLevel string // "debug", "info", "warn", "error"
}

// Default returns a Config populated with sensible defaults. CodecsPath is
// resolved from SAIL_CODECS_PATH if set, else defaultCodecsPath.
func Default() Config {
	path := os.Getenv("SAIL_CODECS_PATH")
	if path == "" {
		path = defaultCodecsPath
	}
	return Config{
		CodecsPath: path,
		DefaultReadOptions: codec.ReadOptions{
			OutputPixelFormat: pixel.RGBA8888,
			IOOptions:         codec.MetaData,
		},
		WorkerCount: 0,
		QueueSize:   64,
		JobTimeout:  30 * time.Second,
		MaxRetries:  3,
		RetryDelay:  200 * time.Millisecond,
		ChunkSize:   32 * 1024,
		LogLevel:    "info",
	}
}

// Validate returns an error if the configuration is inconsistent.
func Validate(c Config) error {
	if c.CodecsPath == "" {
		return sailerr.New(sailerr.InvalidArgument, "config.validate")
	}
	if c.ChunkSize <= 0 {
		return sailerr.New(sailerr.InvalidArgument, "config.validate")
	}
	if c.QueueSize <= 0 {
		return sailerr.New(sailerr.InvalidArgument, "config.validate")
	}
	if c.MaxRetries < 0 {
		return sailerr.New(sailerr.InvalidArgument, "config.validate")
	}
	return nil
}
