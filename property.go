package dmtxgo

import (
	"fmt"
	"log/slog"
)

// Prop names an image property.
type Prop int

const (
	PropWidth Prop = iota
	PropHeight
	PropArea
	PropBitsPerPixel
	PropBytesPerPixel
	PropImageFlip
	PropRowPadBytes
	PropXmin
	PropXmax
	PropYmin
	PropYmax
	PropScale
	PropScaledWidth
	PropScaledHeight
	PropScaledArea
	PropScaledXmin
	PropScaledXmax
	PropScaledYmin
	PropScaledYmax
)

var propNames = [...]string{
	PropWidth:         "WIDTH",
	PropHeight:        "HEIGHT",
	PropArea:          "AREA",
	PropBitsPerPixel:  "BITS_PER_PIXEL",
	PropBytesPerPixel: "BYTES_PER_PIXEL",
	PropImageFlip:     "IMAGE_FLIP",
	PropRowPadBytes:   "ROW_PAD_BYTES",
	PropXmin:          "XMIN",
	PropXmax:          "XMAX",
	PropYmin:          "YMIN",
	PropYmax:          "YMAX",
	PropScale:         "SCALE",
	PropScaledWidth:   "SCALED_WIDTH",
	PropScaledHeight:  "SCALED_HEIGHT",
	PropScaledArea:    "SCALED_AREA",
	PropScaledXmin:    "SCALED_XMIN",
	PropScaledXmax:    "SCALED_XMAX",
	PropScaledYmin:    "SCALED_YMIN",
	PropScaledYmax:    "SCALED_YMAX",
}

// String returns the name of the property.
func (p Prop) String() string {
	if p >= 0 && int(p) < len(propNames) {
		return propNames[p]
	}
	return fmt.Sprintf("Prop(%d)", int(p))
}

// SetProp sets a property and re-derives the scaled fields that depend on
// it. The writable properties are PropWidth, PropHeight, PropImageFlip,
// PropRowPadBytes, PropXmin, PropXmax, PropYmin, PropYmax and PropScale, plus
// PropBitsPerPixel for PackCustom images.
//
// PropYmin and PropYmax are given in top-down row terms and stored flipped:
// setting PropYmin to v sets the bottom-up yMax to height-v-1, and setting
// PropYmax to v sets yMin to height-v-1.
//
// The crop window is validated after the value is written. When validation
// fails, ErrInvalidCropWindow is returned and the new value stays in place;
// the caller must correct the window or rebuild the image.
func (img *Image) SetProp(p Prop, value int) error {
	if img.destroyed() {
		return ErrDestroyed
	}

	switch p {
	case PropWidth:
		img.width = value
		img.widthScaled = img.width / img.scale
	case PropHeight:
		img.height = value
		img.heightScaled = img.height / img.scale
	case PropImageFlip:
		f := Flip(value)
		if f&FlipX != 0 {
			Logger().Debug("property rejected", slog.String("prop", p.String()), slog.Int("value", value))
			return ErrFlipXUnsupported
		}
		if f != FlipNone && f != FlipY {
			return fmt.Errorf("%w: %d", ErrInvalidFlip, value)
		}
		img.flip = f
	case PropRowPadBytes:
		img.rowPadBytes = value
	case PropXmin:
		img.xMin = value
		img.xMinScaled = img.xMin / img.scale
	case PropXmax:
		img.xMax = value
		img.xMaxScaled = img.xMax / img.scale
	case PropYmin:
		img.yMax = img.height - value - 1
		img.yMaxScaled = img.yMax / img.scale
	case PropYmax:
		img.yMin = img.height - value - 1
		img.yMinScaled = img.yMin / img.scale
	case PropScale:
		if value < 1 {
			Logger().Debug("property rejected", slog.String("prop", p.String()), slog.Int("value", value))
			return fmt.Errorf("%w: %d", ErrInvalidScale, value)
		}
		img.scale = value
		img.widthScaled = img.width / value
		img.heightScaled = img.height / value
		img.xMinScaled = img.xMin / value
		img.xMaxScaled = img.xMax / value
		img.yMinScaled = img.yMin / value
		img.yMaxScaled = img.yMax / value
	case PropBitsPerPixel:
		if img.pack != PackCustom {
			return fmt.Errorf("%w: %s on %s image", ErrUnknownProperty, p, img.pack)
		}
		img.bitsPerPixel = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownProperty, p)
	}

	if err := img.checkCropWindow(); err != nil {
		Logger().Debug("property rejected",
			slog.String("prop", p.String()), slog.Int("value", value), slog.Any("err", err))
		return err
	}
	return nil
}

// checkCropWindow verifies the crop window has positive area and lies
// within the image.
func (img *Image) checkCropWindow() error {
	if img.xMin >= img.xMax || img.yMin >= img.yMax {
		return fmt.Errorf("%w: empty area x=[%d,%d] y=[%d,%d]",
			ErrInvalidCropWindow, img.xMin, img.xMax, img.yMin, img.yMax)
	}
	if img.xMin < 0 || img.xMax >= img.width || img.yMin < 0 || img.yMax >= img.height {
		return fmt.Errorf("%w: x=[%d,%d] y=[%d,%d] exceeds %dx%d",
			ErrInvalidCropWindow, img.xMin, img.xMax, img.yMin, img.yMax, img.width, img.height)
	}
	return nil
}

// Prop returns the value of a property. The second result is false for an
// unknown property or a destroyed image.
func (img *Image) Prop(p Prop) (int, bool) {
	if img.destroyed() {
		return 0, false
	}

	switch p {
	case PropWidth:
		return img.width, true
	case PropHeight:
		return img.height, true
	case PropArea:
		return img.width * img.height, true
	case PropBitsPerPixel:
		return img.bitsPerPixel, true
	case PropBytesPerPixel:
		return img.bitsPerPixel / 8, true
	case PropImageFlip:
		return int(img.flip), true
	case PropRowPadBytes:
		return img.rowPadBytes, true
	case PropXmin:
		return img.xMin, true
	case PropXmax:
		return img.xMax, true
	case PropYmin:
		return img.yMin, true
	case PropYmax:
		return img.yMax, true
	case PropScale:
		return img.scale, true
	case PropScaledWidth:
		return img.widthScaled, true
	case PropScaledHeight:
		return img.heightScaled, true
	case PropScaledArea:
		return img.widthScaled * img.heightScaled, true
	case PropScaledXmin:
		return img.xMinScaled, true
	case PropScaledXmax:
		return img.xMaxScaled, true
	case PropScaledYmin:
		return img.yMinScaled, true
	case PropScaledYmax:
		return img.yMaxScaled, true
	}
	return 0, false
}
