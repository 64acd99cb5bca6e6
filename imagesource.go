package dmtxgo

import (
	"fmt"
	"image"
)

// FromGoImage creates an Image that shares the pixel memory of m. Writes
// through the returned Image are visible in m, and m must outlive it.
//
// Supported types are *image.Gray (Pack8bppK), *image.RGBA and *image.NRGBA
// (Pack32bppRGBX, alpha ignored) and *image.CMYK (Pack32bppCMYK). Images
// whose stride is wider than a row, such as most sub-images, return
// ErrRowPadding.
func FromGoImage(m image.Image) (*Image, error) {
	var (
		pix    []byte
		stride int
		bpp    int
		pack   PackFormat
	)
	switch t := m.(type) {
	case *image.Gray:
		pix, stride, bpp, pack = t.Pix, t.Stride, 1, Pack8bppK
	case *image.RGBA:
		pix, stride, bpp, pack = t.Pix, t.Stride, 4, Pack32bppRGBX
	case *image.NRGBA:
		pix, stride, bpp, pack = t.Pix, t.Stride, 4, Pack32bppRGBX
	case *image.CMYK:
		pix, stride, bpp, pack = t.Pix, t.Stride, 4, Pack32bppCMYK
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedImage, m)
	}

	b := m.Bounds()
	w, h := b.Dx(), b.Dy()
	if stride != w*bpp {
		return nil, fmt.Errorf("%w: stride %d for width %d", ErrRowPadding, stride, w)
	}
	if len(pix) < stride*h {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d", ErrBufferTooSmall, len(pix), w, h)
	}
	return New(pix, w, h, pack)
}

// GrayImage renders one channel of the scaled crop window into a new
// greyscale image. The top row of the result is the highest logical y. Like
// ChannelSource, it skips the partial block row PixelOffset cannot map.
func (img *Image) GrayImage(channel int) (*image.Gray, error) {
	if img.destroyed() {
		return nil, ErrDestroyed
	}
	win := img.mappableWindow()
	out := image.NewGray(image.Rect(0, 0, win.XMax-win.XMin+1, max(0, win.YMax-win.YMin+1)))
	for y := 0; y < out.Rect.Dy(); y++ {
		row := out.Pix[y*out.Stride:]
		for x := 0; x < out.Rect.Dx(); x++ {
			v, err := img.PixelValue(win.XMin+x, win.YMax-y, channel)
			if err != nil {
				return nil, err
			}
			row[x] = byte(v)
		}
	}
	return out, nil
}
