package stego

import "fmt"

// Extract recovers the embedded file from the channel-slot buffer. It
// returns the parsed header, for the recorded name and level, and the
// exact original payload bytes.
func Extract(buf []byte) (Header, []byte, error) {
	if len(buf) < HeaderSlots() {
		return Header{}, nil, fmt.Errorf("%w: %d slots cannot hold a header", ErrInvalidHeader, len(buf))
	}

	header, err := ParseHeader(Unpack(buf, 0, LevelLow, HeaderSize))
	if err != nil {
		return Header{}, nil, err
	}

	// The declared region must fit without wrapping; Pack's wraparound is
	// a defensive fallback, never part of the format.
	start := HeaderSlots() + int(header.Offset)
	if start+EncodedSize(int(header.Size), header.Level) > len(buf) {
		return Header{}, nil, fmt.Errorf("%w: declared payload region exceeds image capacity", ErrInvalidHeader)
	}

	payload, err := StripPadding(Unpack(buf, start, header.Level, int(header.Size)))
	if err != nil {
		return Header{}, nil, err
	}

	return header, payload, nil
}
