package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/ericlevine/dmtxgo"
)

var infoProps = []dmtxgo.Prop{
	dmtxgo.PropWidth,
	dmtxgo.PropHeight,
	dmtxgo.PropArea,
	dmtxgo.PropBitsPerPixel,
	dmtxgo.PropBytesPerPixel,
	dmtxgo.PropImageFlip,
	dmtxgo.PropRowPadBytes,
	dmtxgo.PropScale,
	dmtxgo.PropXmin,
	dmtxgo.PropXmax,
	dmtxgo.PropYmin,
	dmtxgo.PropYmax,
	dmtxgo.PropScaledWidth,
	dmtxgo.PropScaledHeight,
	dmtxgo.PropScaledArea,
	dmtxgo.PropScaledXmin,
	dmtxgo.PropScaledXmax,
	dmtxgo.PropScaledYmin,
	dmtxgo.PropScaledYmax,
}

type InfoCmd struct {
	File string `arg:"" type:"existingfile" help:"Image file"`
}

func (c *InfoCmd) Run(g *Globals) error {
	img, err := g.open(c.File)
	if err != nil {
		return err
	}
	return writeInfo(os.Stdout, img)
}

func writeInfo(w io.Writer, img *dmtxgo.Image) error {
	if _, err := fmt.Fprintf(w, "PACK_FORMAT=%s\n", img.PackFormat()); err != nil {
		return err
	}
	for _, p := range infoProps {
		v, ok := img.Prop(p)
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s=%d\n", p, v); err != nil {
			return err
		}
	}
	for i := 0; i < img.ChannelCount(); i++ {
		ch, _ := img.Channel(i)
		if _, err := fmt.Fprintf(w, "CHANNEL[%d]=%d:%d\n", i, ch.BitOffset, ch.BitWidth); err != nil {
			return err
		}
	}
	return nil
}

type PixelCmd struct {
	File string `arg:"" type:"existingfile" help:"Image file"`
	X    int    `arg:"" help:"Scaled x coordinate"`
	Y    int    `arg:"" help:"Scaled y coordinate, 0 is the bottom row"`
}

func (c *PixelCmd) Run(g *Globals) error {
	img, err := g.open(c.File)
	if err != nil {
		return err
	}
	return writePixel(os.Stdout, img, c.X, c.Y)
}

func writePixel(w io.Writer, img *dmtxgo.Image, x, y int) error {
	offset, ok := img.PixelOffset(x, y)
	if !ok {
		if img.ContainsInt(0, x, y) {
			return fmt.Errorf("(%d,%d): %w", x, y, dmtxgo.ErrPartialBlock)
		}
		return fmt.Errorf("(%d,%d): %w", x, y, dmtxgo.ErrOutsideCrop)
	}
	values := make([]string, 0, img.ChannelCount())
	for i := 0; i < img.ChannelCount(); i++ {
		v, err := img.PixelValue(x, y, i)
		if err != nil {
			return fmt.Errorf("channel %d at (%d,%d): %w", i, x, y, err)
		}
		values = append(values, fmt.Sprint(v))
	}
	_, err := fmt.Fprintf(w, "(%d,%d) offset=%d values=%s\n", x, y, offset, strings.Join(values, ","))
	return err
}

type DumpCmd struct {
	File    string `arg:"" type:"existingfile" help:"Image file"`
	Out     string `arg:"" help:"Output file; format is chosen by extension (.png, .bmp, .tif, .tiff)"`
	Channel int    `help:"Channel to dump" default:"0"`
}

func (c *DumpCmd) Validate() error {
	if _, err := encoderFor(c.Out); err != nil {
		return err
	}
	if c.Channel < 0 {
		return fmt.Errorf("invalid channel: %d", c.Channel)
	}
	return nil
}

func (c *DumpCmd) Run(g *Globals) error {
	img, err := g.open(c.File)
	if err != nil {
		return err
	}

	gray, err := img.GrayImage(c.Channel)
	if err != nil {
		return fmt.Errorf("could not read channel %d: %w", c.Channel, err)
	}
	encode, err := encoderFor(c.Out)
	if err != nil {
		return err
	}

	out, err := os.Create(c.Out)
	if err != nil {
		return fmt.Errorf("could not create %q: %w", c.Out, err)
	}
	if err := encode(out, gray); err != nil {
		_ = out.Close()
		return fmt.Errorf("could not encode %q: %w", c.Out, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("could not close %q: %w", c.Out, err)
	}
	slog.Debug("dumped", "channel", c.Channel, "to", c.Out, "bounds", gray.Bounds())
	return nil
}

type encodeFunc func(io.Writer, image.Image) error

func encoderFor(path string) (encodeFunc, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Encode, nil
	case ".bmp":
		return bmp.Encode, nil
	case ".tif", ".tiff":
		return func(w io.Writer, m image.Image) error {
			return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	}
	return nil, fmt.Errorf("unsupported output format %q", filepath.Ext(path))
}
