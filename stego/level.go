// Package stego implements the embedding codec: capacity arithmetic, the
// bit packer that spreads payload bytes over pixel channel slots, the
// container header and padding format, and the embed/extract orchestration.
// It operates on a borrowed slice of channel bytes and performs no I/O.
package stego

import "fmt"

// EncodingLevel selects how many low-order bits of each channel slot the
// codec may overwrite. Higher levels trade detectability for capacity.
type EncodingLevel uint8

const (
	LevelLow    EncodingLevel = iota // 1 bit per slot
	LevelMedium                      // 2 bits per slot
	LevelHigh                        // 4 bits per slot
)

// Bits returns the number of payload bits carried per channel slot. These
// values are wire-format parameters; both sides of the format depend on
// them, so they are fixed here and never configurable.
func (l EncodingLevel) Bits() int {
	switch l {
	case LevelLow:
		return 1
	case LevelMedium:
		return 2
	case LevelHigh:
		return 4
	}
	return 0
}

func (l EncodingLevel) valid() bool {
	return l <= LevelHigh
}

func (l EncodingLevel) String() string {
	switch l {
	case LevelLow:
		return "Low (Default)"
	case LevelMedium:
		return "Medium"
	case LevelHigh:
		return "High"
	}
	return fmt.Sprintf("EncodingLevel(%d)", uint8(l))
}

// ParseLevel maps a CLI or API level name to its EncodingLevel.
func ParseLevel(s string) (EncodingLevel, error) {
	switch s {
	case "low":
		return LevelLow, nil
	case "medium":
		return LevelMedium, nil
	case "high":
		return LevelHigh, nil
	}
	return 0, fmt.Errorf("unknown encoding level %q, want low, medium or high", s)
}
