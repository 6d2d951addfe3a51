package stego

// EncodedSize returns the number of channel slots needed to store n bytes
// at the given level: ceil(n*8 / bits).
func EncodedSize(n int, level EncodingLevel) int {
	bits := level.Bits()
	return (n*8 + bits - 1) / bits
}

// HeaderSlots is the number of channel slots the header region occupies.
// The header is always stored at LevelLow so a decoder can read it without
// knowing the payload level.
func HeaderSlots() int {
	return EncodedSize(HeaderSize, LevelLow)
}

// MaxPayload returns the largest padded payload, in bytes, that a buffer
// with the given number of channel slots can hold at the given level,
// after reserving the header region. Returns 0 if the buffer cannot hold
// even a header.
func MaxPayload(slots int, level EncodingLevel) int {
	n := slots/EncodedSize(1, level) - HeaderSlots()
	if n < 0 {
		return 0
	}
	return n
}
