package stego

import (
	"bytes"
	"testing"
)

func testBuffer(n int) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(i*31 + 7)
	}
	return buf
}

func TestPackUnpackRoundTrip(t *testing.T) {
	data := []byte{0x00, 0xFF, 0xA5, 0x5A, 0x01, 0x80, 0x42}

	for _, level := range []EncodingLevel{LevelLow, LevelMedium, LevelHigh} {
		for _, start := range []int{0, 1, 17, 100} {
			buf := testBuffer(256)
			Pack(buf, start, level, data)

			got := Unpack(buf, start, level, len(data))
			if !bytes.Equal(got, data) {
				t.Errorf("level %v start %d: got % x, want % x", level, start, got, data)
			}
		}
	}
}

func TestPackPreservesHighBits(t *testing.T) {
	data := []byte{0xFF, 0x00, 0x96}

	for _, level := range []EncodingLevel{LevelLow, LevelMedium, LevelHigh} {
		buf := testBuffer(128)
		orig := append([]byte(nil), buf...)
		Pack(buf, 5, level, data)

		mask := byte(1<<level.Bits() - 1)
		for i := range buf {
			if buf[i]&^mask != orig[i]&^mask {
				t.Errorf("level %v: slot %d high bits changed: %02x -> %02x", level, i, orig[i], buf[i])
			}
		}
	}
}

func TestPackTouchesOnlyTargetSlots(t *testing.T) {
	data := []byte{0xFF, 0xFF}
	buf := make([]byte, 64)
	Pack(buf, 10, LevelLow, data)

	for i := range buf {
		touched := i >= 10 && i < 10+EncodedSize(len(data), LevelLow)
		if !touched && buf[i] != 0 {
			t.Errorf("slot %d modified outside write region", i)
		}
		if touched && buf[i] != 1 {
			t.Errorf("slot %d = %d, want low bit set", i, buf[i])
		}
	}
}

func TestPackWraparound(t *testing.T) {
	// A write past the end must land back at the start rather than panic.
	data := []byte{0xDE, 0xAD}
	buf := testBuffer(20)
	start := 15

	Pack(buf, start, LevelLow, data)
	got := Unpack(buf, start, LevelLow, len(data))
	if !bytes.Equal(got, data) {
		t.Errorf("wrapped round trip: got % x, want % x", got, data)
	}
}

func TestUnpackDoesNotMutate(t *testing.T) {
	buf := testBuffer(64)
	orig := append([]byte(nil), buf...)

	Unpack(buf, 3, LevelHigh, 8)
	if !bytes.Equal(buf, orig) {
		t.Error("Unpack mutated the buffer")
	}
}
