package osr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadString(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
		used int
	}{
		{"absent", []byte{0x00}, "", 1},
		{"present", []byte{0x0b, 0x03, 'a', 'b', 'c'}, "abc", 5},
		{"present but empty", []byte{0x0b, 0x00, 0xFF}, "", 2},
		{"multibyte", append([]byte{0x0b, 0x06}, "çığ"...), "çığ", 8},
		{"leaves rest", []byte{0x0b, 0x01, 'x', 0x0b}, "x", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCursor(tt.in)
			got, err := readString(c)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.used, c.pos())
		})
	}
}

func TestReadString_LongLength(t *testing.T) {
	s := make([]byte, 200)
	for i := range s {
		s[i] = 'z'
	}
	in := append([]byte{0x0b, 0xC8, 0x01}, s...)
	c := newCursor(in)
	got, err := readString(c)
	require.NoError(t, err)
	assert.Len(t, got, 200)
	assert.Equal(t, 0, c.remaining())
}

func TestReadString_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want error
	}{
		{"no header", nil, ErrTruncatedInput},
		{"bad header", []byte{0x0c, 0x01, 'a'}, ErrUnexpectedStringHeader},
		{"missing length", []byte{0x0b}, ErrMalformedVarInt},
		{"short body", []byte{0x0b, 0x05, 'a', 'b'}, ErrTruncatedInput},
		{"invalid utf8", []byte{0x0b, 0x02, 0xC3, 0x28}, ErrInvalidUTF8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readString(newCursor(tt.in))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
