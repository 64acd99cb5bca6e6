package dmtxgo

import (
	"encoding/binary"
	"fmt"
)

// PixelOffset returns the index of the pixel at scaled coordinates (x, y),
// counted in pixels from the start of the buffer. The second result is false
// when (x, y) lies outside the scaled crop window. Without FlipY it is also
// false for the partial block row at y >= scaledHeight, which would map
// before the start of the buffer.
//
// With FlipY the offset is scale*(y*width+x). Otherwise rows are stored top
// to bottom and the offset is scale*width*(scaledHeight-y-1) + scale*x.
func (img *Image) PixelOffset(x, y int) (int, bool) {
	if img.destroyed() || img.flip&FlipX != 0 {
		return 0, false
	}
	if !img.ContainsInt(0, x, y) {
		return 0, false
	}
	if x < 0 || y < 0 {
		return 0, false
	}
	if img.flip&FlipY == 0 && y >= img.heightScaled {
		return 0, false
	}

	if img.flip&FlipY != 0 {
		return img.scale * (y*img.width + x), true
	}
	return (img.heightScaled-y-1)*img.scale*img.width + x*img.scale, true
}

// channelAt resolves a channel index and the pixel offset of (x, y).
func (img *Image) channelAt(x, y, channel int) (Channel, int, error) {
	if img.destroyed() {
		return Channel{}, 0, ErrDestroyed
	}
	if channel < 0 || channel >= img.channelCount {
		return Channel{}, 0, fmt.Errorf("%w: %d of %d", ErrChannelOutOfRange, channel, img.channelCount)
	}
	offset, ok := img.PixelOffset(x, y)
	if !ok {
		if img.ContainsInt(0, x, y) {
			return Channel{}, 0, fmt.Errorf("%w: (%d,%d)", ErrPartialBlock, x, y)
		}
		return Channel{}, 0, fmt.Errorf("%w: (%d,%d)", ErrOutsideCrop, x, y)
	}
	return img.channels[channel], offset, nil
}

// bufferIndex checks that n bytes starting at i lie inside the buffer.
func (img *Image) bufferIndex(i, n int) error {
	if i < 0 || i+n > len(img.pix) {
		return fmt.Errorf("%w: byte %d of %d", ErrBufferTooSmall, i+n-1, len(img.pix))
	}
	return nil
}

// PixelValue returns the value of one channel at scaled coordinates (x, y),
// expanded to an 8-bit intensity. 1-bit channels read as 0 or 255 and 5-bit
// channels are shifted up by three bits.
func (img *Image) PixelValue(x, y, channel int) (int, error) {
	c, offset, err := img.channelAt(x, y, channel)
	if err != nil {
		return 0, err
	}

	switch c.BitWidth {
	case 1:
		if img.bitsPerPixel != 1 {
			return 0, fmt.Errorf("%w: 1-bit channel in %d-bit pixel", ErrUnsupportedLayout, img.bitsPerPixel)
		}
		i := offset / 8
		if err := img.bufferIndex(i, 1); err != nil {
			return 0, err
		}
		if img.pix[i]&(0x01<<(7-offset%8)) != 0 {
			return 255, nil
		}
		return 0, nil
	case 5:
		if img.bitsPerPixel != 16 {
			return 0, fmt.Errorf("%w: 5-bit channel in %d-bit pixel", ErrUnsupportedLayout, img.bitsPerPixel)
		}
		i := offset * 2
		if err := img.bufferIndex(i, 2); err != nil {
			return 0, err
		}
		shift := img.bitsPerPixel - 5 - c.BitOffset
		if shift < 0 {
			return 0, fmt.Errorf("%w: 5-bit channel at bit %d", ErrUnsupportedLayout, c.BitOffset)
		}
		word := int(binary.BigEndian.Uint16(img.pix[i:]))
		return ((word >> shift) & 0x1f) << 3, nil
	case 8:
		i, err := img.byteIndex(c, offset, channel)
		if err != nil {
			return 0, err
		}
		return int(img.pix[i]), nil
	}
	return 0, fmt.Errorf("%w: %d-bit channel", ErrUnsupportedLayout, c.BitWidth)
}

// SetPixelValue writes one channel at scaled coordinates (x, y). For 1-bit
// channels any non-zero value sets the bit. 8-bit channels store the low
// byte of value. Writes to 5-bit channels return ErrUnsupported.
func (img *Image) SetPixelValue(x, y, channel, value int) error {
	c, offset, err := img.channelAt(x, y, channel)
	if err != nil {
		return err
	}

	switch c.BitWidth {
	case 1:
		if img.bitsPerPixel != 1 {
			return fmt.Errorf("%w: 1-bit channel in %d-bit pixel", ErrUnsupportedLayout, img.bitsPerPixel)
		}
		i := offset / 8
		if err := img.bufferIndex(i, 1); err != nil {
			return err
		}
		mask := byte(0x01 << (7 - offset%8))
		if value != 0 {
			img.pix[i] |= mask
		} else {
			img.pix[i] &^= mask
		}
		return nil
	case 5:
		return fmt.Errorf("%w: write to 5-bit channel", ErrUnsupported)
	case 8:
		i, err := img.byteIndex(c, offset, channel)
		if err != nil {
			return err
		}
		img.pix[i] = byte(value)
		return nil
	}
	return fmt.Errorf("%w: %d-bit channel", ErrUnsupportedLayout, c.BitWidth)
}

// byteIndex locates the byte of an 8-bit channel. The channel's byte is
// found by its index within the pixel, not by its bit offset.
func (img *Image) byteIndex(c Channel, offset, channel int) (int, error) {
	if c.BitOffset%8 != 0 || img.bitsPerPixel%8 != 0 || img.bitsPerPixel == 0 {
		return 0, fmt.Errorf("%w: 8-bit channel at bit %d in %d-bit pixel",
			ErrUnsupportedLayout, c.BitOffset, img.bitsPerPixel)
	}
	i := offset*(img.bitsPerPixel/8) + channel
	if err := img.bufferIndex(i, 1); err != nil {
		return 0, err
	}
	return i, nil
}

// ContainsInt reports whether (x, y) lies at least margin pixels inside the
// scaled crop window. The window bounds are inclusive.
func (img *Image) ContainsInt(margin, x, y int) bool {
	if img.destroyed() {
		return false
	}
	return x-margin >= img.xMinScaled && x+margin <= img.xMaxScaled &&
		y-margin >= img.yMinScaled && y+margin <= img.yMaxScaled
}

// ContainsFloat reports whether (x, y) lies inside the scaled crop window.
func (img *Image) ContainsFloat(x, y float64) bool {
	if img.destroyed() {
		return false
	}
	return x >= float64(img.xMinScaled) && x <= float64(img.xMaxScaled) &&
		y >= float64(img.yMinScaled) && y <= float64(img.yMaxScaled)
}
