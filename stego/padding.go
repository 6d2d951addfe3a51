package stego

import "fmt"

// padBlock is the alignment of the embedded payload. The trailer is always
// 1..padBlock bytes, every byte holding the trailer length, so the original
// size is recoverable from the final payload byte alone.
const padBlock = 16

// PadPayload appends the self-describing trailer. The result is always a
// multiple of padBlock and strictly longer than raw.
func PadPayload(raw []byte) []byte {
	p := padBlock - len(raw)%padBlock
	padded := make([]byte, len(raw)+p)
	copy(padded, raw)
	for i := len(raw); i < len(padded); i++ {
		padded[i] = byte(p)
	}
	return padded
}

// StripPadding undoes PadPayload, recovering the exact original bytes.
func StripPadding(padded []byte) ([]byte, error) {
	if len(padded) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrCorruptPadding)
	}
	p := int(padded[len(padded)-1])
	if p < 1 || p > padBlock || p > len(padded) {
		return nil, fmt.Errorf("%w: pad length %d of a %d byte payload", ErrCorruptPadding, p, len(padded))
	}
	return padded[:len(padded)-p], nil
}
