package main

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"

	"github.com/ericlevine/dmtxgo"
)

// LogLevel is a log level name accepted on the command line.
type LogLevel string

// Level returns the slog level for l.
func (l LogLevel) Level() slog.Level {
	switch l {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Globals are the flags shared by every command.
type Globals struct {
	LogLevel LogLevel `help:"Log level" enum:"debug,info,warn,error" default:"info"`
	Scale    int      `help:"Block scale factor applied to coordinates and crop window" default:"1"`
	FlipY    bool     `help:"Rows are stored bottom to top" name:"flip-y"`
	Crop     []int    `help:"Crop window as xmin,xmax,ymin,ymax in unscaled pixels, y counted from the top row" sep:","`
}

func (g *Globals) Validate() error {
	if g.Scale < 1 {
		return fmt.Errorf("invalid scale: %d", g.Scale)
	}
	if len(g.Crop) != 0 && len(g.Crop) != 4 {
		return fmt.Errorf("crop needs 4 values, got %d", len(g.Crop))
	}
	return nil
}

// open decodes path and wraps its pixels in a dmtxgo.Image configured from
// the global flags.
func (g *Globals) open(path string) (*dmtxgo.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open image %q: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Error("could not close image", "file", path, "error", closeErr)
		}
	}()

	m, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode image %q: %w", path, err)
	}
	slog.Debug("decoded", "file", path, "format", format, "type", fmt.Sprintf("%T", m), "bounds", m.Bounds())

	img, err := dmtxgo.FromGoImage(m)
	if errors.Is(err, dmtxgo.ErrUnsupportedImage) || errors.Is(err, dmtxgo.ErrRowPadding) {
		slog.Debug("converting to RGBA", "file", path, "reason", err)
		b := m.Bounds()
		rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), m, b.Min, draw.Src)
		m = rgba
		img, err = dmtxgo.FromGoImage(m)
	}
	if err != nil {
		return nil, fmt.Errorf("could not map image %q: %w", path, err)
	}

	if err := g.configure(img); err != nil {
		return nil, err
	}
	return img, nil
}

// configure applies crop, flip and scale to img. Crop bounds are set before
// the scale so the scaled window is derived from the final bounds.
func (g *Globals) configure(img *dmtxgo.Image) error {
	if len(g.Crop) == 4 {
		props := []struct {
			p dmtxgo.Prop
			v int
		}{
			{dmtxgo.PropXmax, g.Crop[1]},
			{dmtxgo.PropXmin, g.Crop[0]},
			{dmtxgo.PropYmin, g.Crop[2]},
			{dmtxgo.PropYmax, g.Crop[3]},
		}
		for _, pv := range props {
			if err := img.SetProp(pv.p, pv.v); err != nil {
				return fmt.Errorf("could not set %s to %d: %w", pv.p, pv.v, err)
			}
		}
	}
	if g.FlipY {
		if err := img.SetProp(dmtxgo.PropImageFlip, int(dmtxgo.FlipY)); err != nil {
			return fmt.Errorf("could not set flip: %w", err)
		}
	}
	if g.Scale != 1 {
		if err := img.SetProp(dmtxgo.PropScale, g.Scale); err != nil {
			return fmt.Errorf("could not set scale to %d: %w", g.Scale, err)
		}
	}
	return nil
}
