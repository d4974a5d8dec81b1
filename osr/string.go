package osr

import (
	"fmt"
	"unicode/utf8"
)

// String header bytes.
const (
	stringAbsent  = 0x00
	stringPresent = 0x0b
)

// readString decodes a header byte, then for 0x0b a ULEB128 byte length and
// that many UTF-8 bytes. 0x00 is the empty string.
func readString(c *cursor) (string, error) {
	start := c.pos()
	h, err := c.u8()
	if err != nil {
		return "", err
	}
	switch h {
	case stringAbsent:
		return "", nil
	case stringPresent:
	default:
		return "", fmt.Errorf("%w: 0x%02x at offset %d", ErrUnexpectedStringHeader, h, start)
	}
	n, err := readULEB128(c)
	if err != nil {
		return "", err
	}
	if uint64(n) > uint64(c.remaining()) {
		return "", fmt.Errorf("%w: string of %d bytes at offset %d, have %d", ErrTruncatedInput, n, c.pos(), c.remaining())
	}
	b, err := c.take(int(n))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: string at offset %d", ErrInvalidUTF8, start)
	}
	return string(b), nil
}
