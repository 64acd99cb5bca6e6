package dmtxgo

import "errors"

var (
	// ErrNilBuffer is returned when an image is created without pixel data.
	ErrNilBuffer = errors.New("pixel buffer is empty")

	// ErrInvalidDimensions is returned when width or height is less than one.
	ErrInvalidDimensions = errors.New("invalid image dimensions")

	// ErrUnknownPackFormat is returned for a pack format outside the format table.
	ErrUnknownPackFormat = errors.New("unknown pack format")

	// ErrChannelTableFull is returned when a fifth channel is registered.
	ErrChannelTableFull = errors.New("channel table full")

	// ErrUnknownProperty is returned when a property cannot be set.
	ErrUnknownProperty = errors.New("unknown or read-only property")

	// ErrInvalidCropWindow is returned when a property change leaves the crop
	// window empty or outside the image. The rejected value has already been
	// stored when this is returned.
	ErrInvalidCropWindow = errors.New("invalid crop window")

	// ErrInvalidScale is returned for a scale factor below one.
	ErrInvalidScale = errors.New("invalid scale")

	// ErrFlipXUnsupported is returned when horizontal flip is requested.
	ErrFlipXUnsupported = errors.New("horizontal flip not supported")

	// ErrInvalidFlip is returned for a flip mode other than FlipNone or FlipY.
	ErrInvalidFlip = errors.New("invalid flip mode")

	// ErrChannelOutOfRange is returned for a channel index without a
	// registered channel.
	ErrChannelOutOfRange = errors.New("channel out of range")

	// ErrOutsideCrop is returned when a coordinate lies outside the scaled
	// crop window.
	ErrOutsideCrop = errors.New("coordinate outside crop window")

	// ErrPartialBlock is returned for a coordinate inside the crop window
	// that falls in the partial block row left over when the scale does not
	// divide the height.
	ErrPartialBlock = errors.New("coordinate in partial scale block")

	// ErrBufferTooSmall is returned when a pixel maps past the end of the
	// borrowed buffer.
	ErrBufferTooSmall = errors.New("pixel buffer too small")

	// ErrUnsupportedLayout is returned when a channel's bit width does not
	// fit the image's bits per pixel.
	ErrUnsupportedLayout = errors.New("unsupported channel layout")

	// ErrUnsupported is returned for writes to 5-bit channels.
	ErrUnsupported = errors.New("unsupported operation")

	// ErrDestroyed is returned by operations on a destroyed image.
	ErrDestroyed = errors.New("image destroyed")

	// ErrUnsupportedImage is returned when a Go image type cannot be borrowed.
	ErrUnsupportedImage = errors.New("unsupported image type")

	// ErrRowPadding is returned when a Go image has a stride wider than its
	// pixel rows.
	ErrRowPadding = errors.New("image rows are padded")
)
