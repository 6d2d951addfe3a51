package stego

import "fmt"

// RandFunc supplies the single random draw used to place the payload.
// Production callers back it with the system entropy source; tests
// substitute fixed values.
type RandFunc func() (uint32, error)

// Embed conceals payload, labeled with name, inside the channel-slot
// buffer at the given level. The header lands at slot 0 at LevelLow; the
// payload starts at a randomized slot offset recorded in the header, so
// it never sits at a fixed, guessable position.
//
// The buffer is not touched until every fallible step has succeeded, so a
// failed embed leaves the carrier unchanged.
func Embed(buf []byte, level EncodingLevel, name string, payload []byte, random RandFunc) error {
	padded := PadPayload(payload)

	max := MaxPayload(len(buf), level)
	if len(padded) > max {
		return &CapacityError{Size: len(padded), Max: max}
	}

	draw, err := random()
	if err != nil {
		return fmt.Errorf("could not draw embedding offset: %w", err)
	}

	// Fold the draw into the slot window the payload can slide within and
	// still fit, so any draw yields a valid placement.
	var offset uint32
	if window := EncodedSize(max-len(padded), level); window > 0 {
		offset = (draw + uint32(HeaderSlots())) % uint32(window)
	}

	header, err := BuildHeader(level, offset, uint32(len(padded)), name)
	if err != nil {
		return err
	}

	Pack(buf, 0, LevelLow, header)
	Pack(buf, HeaderSlots()+int(offset), level, padded)
	return nil
}
