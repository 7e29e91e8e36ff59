package encoder

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
)

type Chunk struct {
	Type string
	Data []byte
	CRC  uint32
}

type Header struct {
	Width       uint32
	Height      uint32
	BitDepth    uint8
	ColorType   uint8
	Compression uint8
	Filter      uint8
	Interlace   uint8
}

// ReadChunks walks the chunk frames of a PNG stream and verifies every CRC.
// It stops after IEND; trailing bytes are ignored. Pixel data is not decoded.
func ReadChunks(data []byte) ([]Chunk, error) {
	if len(data) < len(Signature) || string(data[:len(Signature)]) != Signature {
		return nil, ErrBadSignature
	}
	var chunks []Chunk
	off := len(Signature)
	for off < len(data) {
		if len(data)-off < 12 {
			return chunks, fmt.Errorf("%w: %d bytes left at offset %d", ErrTruncated, len(data)-off, off)
		}
		n := int(binary.BigEndian.Uint32(data[off:]))
		if n < 0 || n > len(data)-off-12 {
			return chunks, fmt.Errorf("%w: length %d at offset %d", ErrTruncated, n, off)
		}
		body := data[off+4 : off+8+n]
		want := binary.BigEndian.Uint32(data[off+8+n:])
		if got := crc32.ChecksumIEEE(body); got != want {
			return chunks, fmt.Errorf("%w: %s has %08x, computed %08x", ErrChecksum, body[:4], want, got)
		}
		c := Chunk{Type: string(body[:4]), Data: body[4:], CRC: want}
		chunks = append(chunks, c)
		off += 12 + n
		if c.Type == "IEND" {
			break
		}
	}
	return chunks, nil
}

func ParseHeader(c Chunk) (Header, error) {
	if c.Type != "IHDR" {
		return Header{}, fmt.Errorf("png: expected IHDR chunk, got %q", c.Type)
	}
	if len(c.Data) != 13 {
		return Header{}, fmt.Errorf("png: IHDR payload is %d bytes, want 13", len(c.Data))
	}
	return Header{
		Width:       binary.BigEndian.Uint32(c.Data[0:4]),
		Height:      binary.BigEndian.Uint32(c.Data[4:8]),
		BitDepth:    c.Data[8],
		ColorType:   c.Data[9],
		Compression: c.Data[10],
		Filter:      c.Data[11],
		Interlace:   c.Data[12],
	}, nil
}
