package stego

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHeader covers every decode-side header validation failure:
	// bad signature, unsupported version, unknown level, nonzero flags or
	// reserved bytes, and a declared payload region that cannot fit the
	// image. All are terminal for the decode.
	ErrInvalidHeader = errors.New("invalid header")

	// ErrCorruptPadding reports an impossible pad-length trailer byte.
	ErrCorruptPadding = errors.New("corrupt payload padding")

	// ErrNameTooLong reports a file name that does not fit the fixed
	// header name field.
	ErrNameTooLong = errors.New("file name over 32 bytes")
)

// CapacityError reports a payload that does not fit the carrier at the
// requested level. Max is the largest padded payload that would fit.
type CapacityError struct {
	Size int // padded payload size, bytes
	Max  int // capacity at the requested level, bytes
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("payload of %d bytes too big, maximum possible size: %d bytes", e.Size, e.Max)
}
