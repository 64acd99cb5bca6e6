package dmtxgo

// PackFormat identifies how one pixel is laid out in the pixel buffer.
type PackFormat int

const (
	PackCustom PackFormat = iota
	Pack1bppK
	Pack8bppK
	Pack16bppRGB
	Pack16bppRGBX
	Pack16bppXRGB
	Pack16bppBGR
	Pack16bppBGRX
	Pack16bppXBGR
	Pack16bppYCbCr
	Pack24bppRGB
	Pack24bppBGR
	Pack24bppYCbCr
	Pack32bppRGBX
	Pack32bppXRGB
	Pack32bppBGRX
	Pack32bppXBGR
	Pack32bppCMYK
)

// packLayout is the canonical layout for one pack format.
type packLayout struct {
	name         string
	bitsPerPixel int
	channels     []Channel
}

var (
	layout1    = []Channel{{0, 1}}
	layout8    = []Channel{{0, 8}}
	layout555  = []Channel{{0, 5}, {5, 5}, {10, 5}}
	layoutX555 = []Channel{{1, 5}, {6, 5}, {11, 5}}
	layout888  = []Channel{{0, 8}, {8, 8}, {16, 8}}
	layoutX888 = []Channel{{8, 8}, {16, 8}, {24, 8}}
	layout8888 = []Channel{{0, 8}, {8, 8}, {16, 8}, {24, 8}}
)

var packLayouts = map[PackFormat]packLayout{
	PackCustom:     {"CUSTOM", 0, nil},
	Pack1bppK:      {"1BPP_K", 1, layout1},
	Pack8bppK:      {"8BPP_K", 8, layout8},
	Pack16bppRGB:   {"16BPP_RGB", 16, layout555},
	Pack16bppRGBX:  {"16BPP_RGBX", 16, layout555},
	Pack16bppXRGB:  {"16BPP_XRGB", 16, layoutX555},
	Pack16bppBGR:   {"16BPP_BGR", 16, layout555},
	Pack16bppBGRX:  {"16BPP_BGRX", 16, layout555},
	Pack16bppXBGR:  {"16BPP_XBGR", 16, layoutX555},
	Pack16bppYCbCr: {"16BPP_YCBCR", 16, layout555},
	Pack24bppRGB:   {"24BPP_RGB", 24, layout888},
	Pack24bppBGR:   {"24BPP_BGR", 24, layout888},
	Pack24bppYCbCr: {"24BPP_YCBCR", 24, layout888},
	Pack32bppRGBX:  {"32BPP_RGBX", 32, layout888},
	Pack32bppXRGB:  {"32BPP_XRGB", 32, layoutX888},
	Pack32bppBGRX:  {"32BPP_BGRX", 32, layout888},
	Pack32bppXBGR:  {"32BPP_XBGR", 32, layoutX888},
	Pack32bppCMYK:  {"32BPP_CMYK", 32, layout8888},
}

// Valid reports whether f is a known pack format.
func (f PackFormat) Valid() bool {
	_, ok := packLayouts[f]
	return ok
}

// String returns the name of the pack format.
func (f PackFormat) String() string {
	if l, ok := packLayouts[f]; ok {
		return l.name
	}
	return "UNKNOWN"
}

// BitsPerPixel returns the pixel width of the format, or 0 for PackCustom
// and unknown formats.
func (f PackFormat) BitsPerPixel() int {
	return packLayouts[f].bitsPerPixel
}

// Channels returns a copy of the format's canonical channel table.
func (f PackFormat) Channels() []Channel {
	l := packLayouts[f]
	if len(l.channels) == 0 {
		return nil
	}
	out := make([]Channel, len(l.channels))
	copy(out, l.channels)
	return out
}
