// Command dmtxpixel inspects images through the dmtxgo pixel mapping: it
// prints image properties, samples pixels at logical coordinates and dumps
// single channels of the crop window.
package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ericlevine/dmtxgo"
)

type cli struct {
	Globals

	Info  InfoCmd  `cmd:"" help:"Print pack format, properties and channel table"`
	Pixel PixelCmd `cmd:"" help:"Print every channel value at scaled logical coordinates"`
	Dump  DumpCmd  `cmd:"" help:"Write one channel of the crop window as PNG, BMP or TIFF"`
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("dmtxpixel"),
		kong.Description("Inspect images the way the Data Matrix pixel layer addresses them."),
		kong.UsageOnError(),
	)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.LogLevel.Level()}))
	slog.SetDefault(logger)
	dmtxgo.SetLogger(logger)

	err := kctx.Run(&c.Globals)
	if err != nil {
		slog.Error("command failed", "command", kctx.Command(), "error", err)
		os.Exit(1)
	}
}
