// Package entropy supplies the random draws used to place payloads.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// Uint32 returns a uniformly random value from the operating system's
// entropy source. Failure is fatal to the caller's operation; falling back
// to a fixed value would defeat placement randomization.
func Uint32() (uint32, error) {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("could not read system entropy: %w", err)
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}
