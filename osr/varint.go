package osr

import "fmt"

// maxVarIntBits bounds decoded lengths; the format only stores string lengths.
const maxVarIntBits = 32

// readULEB128 decodes an unsigned LEB128 integer: 7 bits per byte, low group
// first, high bit set on every byte except the last.
func readULEB128(c *cursor) (uint32, error) {
	var v uint32
	var shift uint
	for {
		b, err := c.u8()
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrMalformedVarInt, err)
		}
		group := uint32(b & 0x7F)
		if shift >= maxVarIntBits || (shift > 0 && group>>(maxVarIntBits-shift) != 0) {
			return 0, fmt.Errorf("%w: exceeds %d bits at offset %d", ErrMalformedVarInt, maxVarIntBits, c.pos()-1)
		}
		v |= group << shift
		if b&0x80 == 0 {
			return v, nil
		}
		shift += 7
	}
}
