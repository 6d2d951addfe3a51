package stego

// Pack writes data into consecutive channel slots starting at start. Each
// byte is split into 8/bits groups of bits, most significant group first;
// each group replaces the low-order bits of one slot and leaves the slot's
// high bits untouched. Slot indices wrap modulo len(buf) as a fallback;
// callers must size writes so that never happens.
func Pack(buf []byte, start int, level EncodingLevel, data []byte) {
	bits := level.Bits()
	mask := byte(1<<bits - 1)
	slot := start
	for _, b := range data {
		for shift := 8 - bits; shift >= 0; shift -= bits {
			i := slot % len(buf)
			buf[i] = buf[i]&^mask | b>>shift&mask
			slot++
		}
	}
}

// Unpack reads back n bytes written by Pack with the same start and level.
// It never mutates buf.
func Unpack(buf []byte, start int, level EncodingLevel, n int) []byte {
	bits := level.Bits()
	mask := byte(1<<bits - 1)
	out := make([]byte, n)
	slot := start
	for j := range out {
		var b byte
		for g := 0; g < 8/bits; g++ {
			b = b<<bits | buf[slot%len(buf)]&mask
			slot++
		}
		out[j] = b
	}
	return out
}
