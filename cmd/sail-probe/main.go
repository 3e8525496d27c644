// Command sail-probe opens an image file, resolves its codec, and prints
// the first frame's header. With -decode it instead walks every pass of
// every frame through the full read session, printing each frame's header,
// and reports decode metrics.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sail-go/sail"
	"github.com/sail-go/sail/iostream"
	"github.com/sail-go/sail/sailhooks"
)

func main() {
	decode := flag.Bool("decode", false, "walk every frame and pass, not just the headers")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: sail-probe [-decode] <image-file>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	logger := sailhooks.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
	metrics := sailhooks.NewInMemoryMetrics()
	hook := sailhooks.MultiHook{sailhooks.NewLoggingHook(logger), sailhooks.NewMetricsHook(metrics)}

	cfg := sail.DefaultConfig()
	reg, err := sail.LoadCodecs(cfg, logger)
	mustNoErr(err)
	defer sail.UnloadCodecs(reg)

	stream, err := iostream.OpenFile(path)
	mustNoErr(err)
	defer stream.Close()

	d, err := sail.CodecForExtension(reg, filepath.Ext(path))
	mustNoErr(err)
	fmt.Printf("codec: %s (%s)\n", d.Name, d.Description)

	opts := cfg.DefaultReadOptions

	if !*decode {
		hdr, err := sail.Probe(reg, d, stream, &opts)
		mustNoErr(err)
		printHeader(0, hdr)
		return
	}

	rs, err := sail.StartReading(reg, d, stream, &opts, hook)
	mustNoErr(err)
	defer rs.Finish()

	frame := 0
	for {
		hdr, err := rs.SeekNextFrame()
		if sail.IsNoMoreFrames(err) {
			break
		}
		mustNoErr(err)
		printHeader(frame, hdr)

		buf := make([]byte, hdr.BytesPerLine*hdr.Height)
		for pass := 0; pass < hdr.Passes; pass++ {
			mustNoErr(rs.SeekNextPass())
			mustNoErr(rs.ReadFrame(buf))
		}
		metrics.RecordFrameDecoded(len(buf))
		frame++
	}
	mustNoErr(rs.Finish())

	snap := metrics.Snapshot()
	fmt.Printf("\nframes decoded: %d  bytes: %d\n", snap.TotalFramesDecoded, snap.TotalBytesDecoded)
	for op, calls := range snap.OpCalls {
		avg := float64(snap.OpDurationsMs[op]) / float64(calls)
		fmt.Printf("  %-28s calls=%-4d avg=%.2fms errors=%d\n", op, calls, avg, snap.OpErrors[op])
	}
}

func printHeader(frame int, hdr *sail.Header) {
	fmt.Printf("frame %d: %dx%d  format=%s  passes=%d  delay=%dms  animated=%v\n",
		frame, hdr.Width, hdr.Height, hdr.PixelFormat, hdr.Passes, hdr.DelayMs, hdr.Animated)
}

func mustNoErr(err error) {
	if err != nil {
		log.Fatalf("error: %v", err)
	}
}
