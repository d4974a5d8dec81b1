package osr

import "errors"

var (
	// ErrTruncatedInput indicates fewer bytes remain than a field requires.
	ErrTruncatedInput = errors.New("osr: truncated input")

	// ErrMalformedVarInt indicates a ULEB128 length wider than 32 bits or cut short.
	ErrMalformedVarInt = errors.New("osr: malformed varint")

	// ErrInvalidUTF8 indicates string or frame bytes that are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("osr: invalid utf-8")

	// ErrUnexpectedStringHeader indicates a string header other than 0x00 or 0x0b.
	ErrUnexpectedStringHeader = errors.New("osr: unexpected string header")

	// ErrDivisionByZero indicates a replay with no judged hits, so accuracy is undefined.
	ErrDivisionByZero = errors.New("osr: accuracy denominator is zero")

	// ErrDecompression indicates frame data that is not a valid LZMA stream.
	ErrDecompression = errors.New("osr: frame data decompression failed")

	// ErrMalformedFrameToken indicates a frame token that is not time|x|y|keys.
	ErrMalformedFrameToken = errors.New("osr: malformed frame token")

	// ErrUnknownModifierBit indicates a set mods bit with no code in the table.
	ErrUnknownModifierBit = errors.New("osr: unknown modifier bit")
)
