package encoder

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"image"
)

// Encode produces a PNG stream for an 8-bit RGBA image. pixels must hold
// width*height*4 bytes in row-major order, top row first.
func Encode(width, height int, pixels []byte) ([]byte, error) {
	if width <= 0 || height <= 0 || width > MaxDimension || height > MaxDimension {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	expected := width * height * BytesPerPixel
	if expected/BytesPerPixel/width != height || len(pixels) != expected {
		return nil, fmt.Errorf("%w: expected %d bytes for %dx%d RGBA, got %d",
			ErrPixelLength, expected, width, height, len(pixels))
	}

	var ihdr [13]byte
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(width))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(height))
	ihdr[8] = BitDepth
	ihdr[9] = ColorTypeRGBA
	// compression, filter and interlace methods stay 0

	idat, err := compress(scanlines(width, height, pixels))
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	out.Grow(len(Signature) + 3*12 + len(ihdr) + len(idat))
	out.WriteString(Signature)
	out.Write(WrapChunk("IHDR", ihdr[:]))
	out.Write(WrapChunk("IDAT", idat))
	out.Write(WrapChunk("IEND", nil))
	return out.Bytes(), nil
}

// EncodeImage encodes an NRGBA image. Rows are copied out when the image
// stride has padding or the bounds do not start at the pixel origin.
func EncodeImage(img *image.NRGBA) ([]byte, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, w, h)
	}
	rowLen := w * BytesPerPixel
	if img.Stride == rowLen && len(img.Pix) == rowLen*h {
		return Encode(w, h, img.Pix)
	}
	pixels := make([]byte, 0, rowLen*h)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := img.PixOffset(b.Min.X, y)
		pixels = append(pixels, img.Pix[off:off+rowLen]...)
	}
	return Encode(w, h, pixels)
}

// WrapChunk frames payload as a PNG chunk: big-endian length, the 4-byte
// type tag, the payload, and the CRC-32 of tag+payload.
func WrapChunk(tag string, payload []byte) []byte {
	if len(tag) != 4 {
		panic("png: chunk type must be 4 bytes: " + tag)
	}
	buf := make([]byte, 12+len(payload))
	binary.BigEndian.PutUint32(buf[0:4], uint32(len(payload)))
	copy(buf[4:8], tag)
	copy(buf[8:], payload)
	binary.BigEndian.PutUint32(buf[8+len(payload):], crc32.ChecksumIEEE(buf[4:8+len(payload)]))
	return buf
}

func scanlines(width, height int, pixels []byte) []byte {
	rowLen := width * BytesPerPixel
	raw := make([]byte, RawSize(width, height))
	for y := 0; y < height; y++ {
		dst := raw[y*(rowLen+1):]
		dst[0] = FilterNone
		copy(dst[1:1+rowLen], pixels[y*rowLen:(y+1)*rowLen])
	}
	return raw
}

func compress(raw []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("creating zlib writer: %w", err)
	}
	if _, err := zw.Write(raw); err != nil {
		return nil, fmt.Errorf("compressing scanlines: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("flushing zlib stream: %w", err)
	}
	return buf.Bytes(), nil
}
