package stego

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func fixedRand(v uint32) RandFunc {
	return func() (uint32, error) { return v, nil }
}

func failingRand() (uint32, error) {
	return 0, errors.New("entropy source closed")
}

func TestEmbedExtractRoundTrip(t *testing.T) {
	payload := []byte("hello9999")

	for _, level := range []EncodingLevel{LevelLow, LevelMedium, LevelHigh} {
		// Different draws must place the payload differently yet still
		// round-trip the same bytes.
		for _, draw := range []uint32{0, 1, 7919, math.MaxUint32} {
			buf := testBuffer(64 * 64 * 4)
			if err := Embed(buf, level, "hello.txt", payload, fixedRand(draw)); err != nil {
				t.Fatalf("level %v draw %d: Embed failed: %v", level, draw, err)
			}

			header, got, err := Extract(buf)
			if err != nil {
				t.Fatalf("level %v draw %d: Extract failed: %v", level, draw, err)
			}
			if !bytes.Equal(got, payload) {
				t.Errorf("level %v draw %d: got %q, want %q", level, draw, got, payload)
			}
			if header.Name != "hello.txt" {
				t.Errorf("level %v draw %d: name %q, want %q", level, draw, header.Name, "hello.txt")
			}
			if header.Level != level {
				t.Errorf("draw %d: header level %v, want %v", draw, header.Level, level)
			}
		}
	}
}

func TestEmbedRandomizesOffset(t *testing.T) {
	a := testBuffer(64 * 64 * 4)
	b := testBuffer(64 * 64 * 4)
	payload := []byte("same payload, different draw")

	if err := Embed(a, LevelLow, "f", payload, fixedRand(100)); err != nil {
		t.Fatal(err)
	}
	if err := Embed(b, LevelLow, "f", payload, fixedRand(20000)); err != nil {
		t.Fatal(err)
	}

	ha, _, err := Extract(a)
	if err != nil {
		t.Fatal(err)
	}
	hb, _, err := Extract(b)
	if err != nil {
		t.Fatal(err)
	}
	if ha.Offset == hb.Offset {
		t.Errorf("distinct draws produced the same offset %d", ha.Offset)
	}
}

func TestEmbedFillsCapacityExactly(t *testing.T) {
	// A payload that pads to exactly MaxPayload leaves a zero-slot window;
	// the offset must collapse to the header boundary.
	buf := testBuffer(64 * 64 * 4)
	max := MaxPayload(len(buf), LevelLow)
	payload := make([]byte, max-padBlock)

	if err := Embed(buf, LevelLow, "full.bin", payload, fixedRand(math.MaxUint32)); err != nil {
		t.Fatalf("Embed at full capacity failed: %v", err)
	}

	header, got, err := Extract(buf)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if header.Offset != 0 {
		t.Errorf("offset %d, want 0 for a full payload", header.Offset)
	}
	if !bytes.Equal(got, payload) {
		t.Error("full-capacity payload mismatch")
	}
}

func TestEmbedCapacityExceeded(t *testing.T) {
	buf := testBuffer(8 * 8 * 4)
	orig := append([]byte(nil), buf...)

	err := Embed(buf, LevelLow, "big.bin", []byte("does not fit"), fixedRand(0))
	var capErr *CapacityError
	if !errors.As(err, &capErr) {
		t.Fatalf("got %v, want CapacityError", err)
	}
	if capErr.Max != MaxPayload(len(buf), LevelLow) {
		t.Errorf("reported max %d, want %d", capErr.Max, MaxPayload(len(buf), LevelLow))
	}
	if !bytes.Equal(buf, orig) {
		t.Error("failed embed modified the buffer")
	}
}

func TestEmbedRandomnessFailure(t *testing.T) {
	buf := testBuffer(64 * 64 * 4)
	orig := append([]byte(nil), buf...)

	if err := Embed(buf, LevelLow, "f", []byte("abc"), failingRand); err == nil {
		t.Fatal("Embed succeeded without randomness")
	}
	if !bytes.Equal(buf, orig) {
		t.Error("failed embed modified the buffer")
	}
}

func TestEmbedNameTooLong(t *testing.T) {
	buf := testBuffer(64 * 64 * 4)
	name := string(bytes.Repeat([]byte{'n'}, NameSize+1))

	if err := Embed(buf, LevelLow, name, []byte("abc"), fixedRand(0)); !errors.Is(err, ErrNameTooLong) {
		t.Fatalf("got %v, want ErrNameTooLong", err)
	}
}

func TestExtractCorruptSignature(t *testing.T) {
	buf := testBuffer(64 * 64 * 4)
	if err := Embed(buf, LevelLow, "f", []byte("abc"), fixedRand(0)); err != nil {
		t.Fatal(err)
	}

	// Flip the low bit of the first signature slot.
	buf[0] ^= 1

	if _, _, err := Extract(buf); !errors.Is(err, ErrInvalidHeader) {
		t.Fatalf("got %v, want ErrInvalidHeader", err)
	}
}

func TestExtractRejectsOversizedRegion(t *testing.T) {
	// A header whose declared region cannot fit must be rejected rather
	// than read through wraparound.
	buf := testBuffer(64 * 64 * 4)
	header, err := BuildHeader(LevelHigh, 0, uint32(len(buf)), "f")
	if err != nil {
		t.Fatal(err)
	}
	Pack(buf, 0, LevelLow, header)

	if _, _, err := Extract(buf); !errors.Is(err, ErrInvalidHeader) {
		t.Fatalf("got %v, want ErrInvalidHeader", err)
	}
}

func TestExtractTinyBuffer(t *testing.T) {
	if _, _, err := Extract(make([]byte, 100)); !errors.Is(err, ErrInvalidHeader) {
		t.Fatalf("got %v, want ErrInvalidHeader", err)
	}
}
