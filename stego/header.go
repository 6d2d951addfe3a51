package stego

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Wire-format constants. Changing any of these breaks compatibility with
// every previously embedded image.
const (
	FormatVersion = 1
	HeaderSize    = 60
	NameSize      = 32
)

var signature = [4]byte{'H', 'I', 'D', 'E'}

// Header is the fixed 60-byte record stored at channel slot 0, always at
// LevelLow. Layout, little endian:
//
//	[0:4]   signature "HIDE"
//	[4:6]   format version
//	[6]     payload encoding level
//	[7]     flags, reserved, zero
//	[8:12]  payload offset in channel slots, relative to the header region end
//	[12:16] padded payload size in bytes
//	[16:48] file name, NUL padded unless exactly 32 bytes
//	[48:60] reserved, zero
type Header struct {
	Level  EncodingLevel
	Offset uint32
	Size   uint32
	Name   string
}

// BuildHeader serializes a header record. The name must fit the fixed
// 32-byte field.
func BuildHeader(level EncodingLevel, offset, size uint32, name string) ([]byte, error) {
	if len(name) > NameSize {
		return nil, fmt.Errorf("%w: %q is %d bytes", ErrNameTooLong, name, len(name))
	}

	h := make([]byte, HeaderSize)
	copy(h[0:4], signature[:])
	binary.LittleEndian.PutUint16(h[4:6], FormatVersion)
	h[6] = byte(level)
	binary.LittleEndian.PutUint32(h[8:12], offset)
	binary.LittleEndian.PutUint32(h[12:16], size)
	copy(h[16:48], name)
	return h, nil
}

// ParseHeader validates and decodes a header record read from the header
// region. Any validation failure aborts the decode; none are recoverable.
func ParseHeader(h []byte) (Header, error) {
	if len(h) != HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes, want %d", ErrInvalidHeader, len(h), HeaderSize)
	}
	if !bytes.Equal(h[0:4], signature[:]) {
		return Header{}, fmt.Errorf("%w: bad signature % x", ErrInvalidHeader, h[0:4])
	}
	if v := binary.LittleEndian.Uint16(h[4:6]); v != FormatVersion {
		return Header{}, fmt.Errorf("%w: unsupported version %d", ErrInvalidHeader, v)
	}
	level := EncodingLevel(h[6])
	if !level.valid() {
		return Header{}, fmt.Errorf("%w: unknown encoding level %d", ErrInvalidHeader, h[6])
	}
	if h[7] != 0 {
		return Header{}, fmt.Errorf("%w: nonzero flags", ErrInvalidHeader)
	}
	for _, r := range h[48:60] {
		if r != 0 {
			return Header{}, fmt.Errorf("%w: nonzero reserved bytes", ErrInvalidHeader)
		}
	}

	// A name shorter than the field is NUL terminated; a full-width name
	// uses all 32 bytes with no terminator.
	name := h[16:48]
	if name[NameSize-1] == 0 {
		name = name[:bytes.IndexByte(name, 0)]
	}

	return Header{
		Level:  level,
		Offset: binary.LittleEndian.Uint32(h[8:12]),
		Size:   binary.LittleEndian.Uint32(h[12:16]),
		Name:   string(name),
	}, nil
}
