// Package dmtxgo provides pixel access for Data Matrix decoding and encoding.
//
// An Image borrows a flat pixel buffer owned by the caller and maps logical
// coordinates onto it. All coordinates passed to an Image are scaled
// coordinates with (0,0) at the bottom-left pixel, regardless of how the rows
// are stored:
//
//	          (0,HEIGHT-1)        (WIDTH-1,HEIGHT-1)
//
//	    buffer pos = 0,1,2,3,...-----------+
//	                 |                     |
//	                 |     logical image   |
//	                 |     coordinates     |
//	                 |                     |
//	                 +---------...,N-2,N-1,N = buffer pos
//
//	              (0,0)              (WIDTH-1,0)
//
// Most image formats (PNG, GIF, Go's image package) store rows top to bottom
// and need no flip. Buffers stored bottom to top, such as those read back
// from OpenGL, should set FlipY. Flipping only changes the offset arithmetic;
// pixel data is never moved.
//
// The buffer is never copied, resized or released. It must outlive the Image.
// An Image is not safe for concurrent mutation; concurrent readers are fine
// while no goroutine is writing.
package dmtxgo

import (
	"fmt"
	"log/slog"
)

// maxChannels is the capacity of an image's channel table.
const maxChannels = 4

// Channel describes one plane of a pixel: where it starts within the pixel,
// in bits from the most significant end, and how many bits wide it is.
type Channel struct {
	BitOffset int
	BitWidth  int
}

// Flip describes how logical rows map onto buffer rows.
type Flip int

const (
	FlipNone Flip = 0
	// FlipX is recognized so that it can be rejected. Horizontal mirroring
	// is not supported.
	FlipX Flip = 1 << 0
	FlipY Flip = 1 << 1
)

// String returns the name of the flip mode.
func (f Flip) String() string {
	switch f {
	case FlipNone:
		return "NONE"
	case FlipX:
		return "X"
	case FlipY:
		return "Y"
	case FlipX | FlipY:
		return "XY"
	default:
		return fmt.Sprintf("Flip(%d)", int(f))
	}
}

// Rect is an inclusive rectangle of pixel coordinates.
type Rect struct {
	XMin, XMax int
	YMin, YMax int
}

// Image is a view over a caller-owned pixel buffer.
type Image struct {
	pix          []byte
	width        int
	height       int
	pack         PackFormat
	bitsPerPixel int
	channels     [maxChannels]Channel
	channelCount int
	flip         Flip
	scale        int
	rowPadBytes  int

	// Crop window in unscaled coordinates, origin bottom-left.
	xMin, xMax int
	yMin, yMax int

	widthScaled, heightScaled int
	xMinScaled, xMaxScaled    int
	yMinScaled, yMaxScaled    int
}

// New creates an Image over pix. The crop window covers the whole image, the
// scale is 1 and no flip is applied. The channel table is populated from the
// pack format; PackCustom leaves it empty for the caller to fill with
// SetChannel.
func New(pix []byte, width, height int, pack PackFormat) (*Image, error) {
	if len(pix) == 0 {
		Logger().Debug("image rejected", slog.Any("err", ErrNilBuffer))
		return nil, ErrNilBuffer
	}
	if width < 1 || height < 1 {
		Logger().Debug("image rejected", slog.Int("width", width), slog.Int("height", height))
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	layout, ok := packLayouts[pack]
	if !ok {
		Logger().Debug("image rejected", slog.Int("pack", int(pack)))
		return nil, fmt.Errorf("%w: %d", ErrUnknownPackFormat, int(pack))
	}

	img := &Image{
		pix:          pix,
		width:        width,
		height:       height,
		pack:         pack,
		bitsPerPixel: layout.bitsPerPixel,
		flip:         FlipNone,
		scale:        1,
		xMin:         0,
		xMax:         width - 1,
		yMin:         0,
		yMax:         height - 1,
		widthScaled:  width,
		heightScaled: height,
		xMinScaled:   0,
		xMaxScaled:   width - 1,
		yMinScaled:   0,
		yMaxScaled:   height - 1,
	}
	for _, c := range layout.channels {
		if err := img.SetChannel(c.BitOffset, c.BitWidth); err != nil {
			return nil, err
		}
	}
	return img, nil
}

// Destroy releases the image's metadata. The pixel buffer is left untouched
// and remains owned by the caller. Any later call on img fails.
func (img *Image) Destroy() {
	if img == nil {
		return
	}
	*img = Image{}
}

func (img *Image) destroyed() bool {
	return img == nil || img.pix == nil
}

// SetChannel appends a channel to the channel table. It fails once four
// channels are registered, leaving the table unchanged. The channel is not
// checked against the pixel width.
func (img *Image) SetChannel(bitOffset, bitWidth int) error {
	if img.destroyed() {
		return ErrDestroyed
	}
	if img.channelCount >= maxChannels {
		Logger().Debug("channel rejected",
			slog.Int("bitOffset", bitOffset), slog.Int("bitWidth", bitWidth))
		return ErrChannelTableFull
	}
	img.channels[img.channelCount] = Channel{BitOffset: bitOffset, BitWidth: bitWidth}
	img.channelCount++
	return nil
}

// ChannelCount returns the number of registered channels.
func (img *Image) ChannelCount() int {
	if img == nil {
		return 0
	}
	return img.channelCount
}

// Channel returns the i-th registered channel.
func (img *Image) Channel(i int) (Channel, bool) {
	if img == nil || i < 0 || i >= img.channelCount {
		return Channel{}, false
	}
	return img.channels[i], true
}

// Pix returns the borrowed pixel buffer.
func (img *Image) Pix() []byte {
	if img == nil {
		return nil
	}
	return img.pix
}

// The typed readers below return zero values for a nil image.

// PackFormat returns the format the image was created with.
func (img *Image) PackFormat() PackFormat {
	if img == nil {
		return PackCustom
	}
	return img.pack
}

// Width returns the unscaled width.
func (img *Image) Width() int {
	if img == nil {
		return 0
	}
	return img.width
}

// Height returns the unscaled height.
func (img *Image) Height() int {
	if img == nil {
		return 0
	}
	return img.height
}

// Scale returns the scale factor.
func (img *Image) Scale() int {
	if img == nil {
		return 0
	}
	return img.scale
}

// Flip returns the flip mode.
func (img *Image) Flip() Flip {
	if img == nil {
		return FlipNone
	}
	return img.flip
}

// CropWindow returns the crop window in unscaled coordinates.
func (img *Image) CropWindow() Rect {
	if img == nil {
		return Rect{}
	}
	return Rect{XMin: img.xMin, XMax: img.xMax, YMin: img.yMin, YMax: img.yMax}
}

// ScaledCropWindow returns the crop window in scaled coordinates.
func (img *Image) ScaledCropWindow() Rect {
	if img == nil {
		return Rect{}
	}
	return Rect{XMin: img.xMinScaled, XMax: img.xMaxScaled, YMin: img.yMinScaled, YMax: img.yMaxScaled}
}

// mappableWindow returns the scaled crop window without the partial block
// row that PixelOffset cannot map. YMax may end up below YMin when the
// window holds nothing else.
func (img *Image) mappableWindow() Rect {
	win := img.ScaledCropWindow()
	if img != nil && img.flip&FlipY == 0 && win.YMax >= img.heightScaled {
		win.YMax = img.heightScaled - 1
	}
	return win
}
