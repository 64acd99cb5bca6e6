package dmtxgo

// LuminanceSource provides access to greyscale luminance values for an image.
type LuminanceSource interface {
	// Row returns a row of luminance data. If row is non-nil and large enough,
	// it should be reused.
	Row(y int, row []byte) []byte

	// Matrix returns the entire luminance matrix.
	Matrix() []byte

	// Width returns the width of the image.
	Width() int

	// Height returns the height of the image.
	Height() int
}

// ChannelSource is a LuminanceSource reading one channel of an Image's scaled
// crop window. Row 0 is the top of the window, the highest logical y. A
// partial block row left by a scale that does not divide the height is
// skipped.
// Values are read through the Image on every call; nothing is cached.
type ChannelSource struct {
	img     *Image
	channel int
	window  Rect
}

var _ LuminanceSource = (*ChannelSource)(nil)

// NewChannelSource creates a ChannelSource over channel of img. The crop
// window and scale are captured at construction.
func NewChannelSource(img *Image, channel int) (*ChannelSource, error) {
	if img.destroyed() {
		return nil, ErrDestroyed
	}
	if _, ok := img.Channel(channel); !ok {
		return nil, ErrChannelOutOfRange
	}
	return &ChannelSource{
		img:     img,
		channel: channel,
		window:  img.mappableWindow(),
	}, nil
}

// Row returns a row of luminance data, or nil when y is out of range or the
// row cannot be read.
func (s *ChannelSource) Row(y int, row []byte) []byte {
	if y < 0 || y >= s.Height() {
		return nil
	}
	w := s.Width()
	if row == nil || len(row) < w {
		row = make([]byte, w)
	}
	ly := s.window.YMax - y
	for x := 0; x < w; x++ {
		v, err := s.img.PixelValue(s.window.XMin+x, ly, s.channel)
		if err != nil {
			return nil
		}
		row[x] = byte(v)
	}
	return row
}

// Matrix returns the entire luminance matrix, row-major from the top.
func (s *ChannelSource) Matrix() []byte {
	w, h := s.Width(), s.Height()
	m := make([]byte, w*h)
	for y := 0; y < h; y++ {
		if s.Row(y, m[y*w:(y+1)*w]) == nil {
			return nil
		}
	}
	return m
}

// Width returns the width of the crop window in scaled pixels.
func (s *ChannelSource) Width() int {
	return s.window.XMax - s.window.XMin + 1
}

// Height returns the height of the crop window in scaled pixels.
func (s *ChannelSource) Height() int {
	return max(0, s.window.YMax-s.window.YMin+1)
}
