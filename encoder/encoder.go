package encoder

import "errors"

const (
	Signature     = "\x89PNG\r\n\x1a\n"
	BitDepth      = 8
	ColorTypeRGBA = 6
	FilterNone    = 0
	BytesPerPixel = 4

	// MaxDimension is the largest width or height an IHDR chunk may declare.
	MaxDimension = 1<<31 - 1
)

var (
	ErrInvalidDimensions = errors.New("png: width and height must be between 1 and 2^31-1")
	ErrPixelLength       = errors.New("png: pixel buffer length does not match dimensions")
	ErrBadSignature      = errors.New("png: bad signature")
	ErrTruncated         = errors.New("png: truncated chunk")
	ErrChecksum          = errors.New("png: chunk checksum mismatch")
)

// RawSize returns the length of the filtered scanline buffer for an RGBA
// image: one filter byte plus width*4 pixel bytes per row.
func RawSize(width, height int) int {
	return height * (1 + width*BytesPerPixel)
}
