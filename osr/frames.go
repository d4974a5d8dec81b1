package osr

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ulikunitz/xz/lzma"
)

// Frame is one input sample. Time is the absolute time in milliseconds.
type Frame struct {
	Time int64   `json:"t"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Keys int32   `json:"k"`
}

// DecompressFrames returns the raw frame text: comma separated
// "delta|x|y|keys" tokens. Empty data yields an empty string.
func DecompressFrames(data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	zr, err := lzma.NewReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecompression, err)
	}
	raw, err := io.ReadAll(zr)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecompression, err)
	}
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: frame text", ErrInvalidUTF8)
	}
	return string(raw), nil
}

// DecodeFrames decompresses data and builds the absolute-time frame list.
// Empty data (replays without gameplay) yields no frames and no error.
func DecodeFrames(data []byte) ([]Frame, error) {
	text, err := DecompressFrames(data)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}
	return ParseFrames(text)
}

// ParseFrames builds the frame list from decompressed frame text.
//
// The first two tokens only seed the clock with the sum of their deltas and
// the last two are trailing markers; neither pair produces frames. Every
// other token adds its delta to the clock. A token whose delta is the literal
// "0" replaces the frame appended just before it, so no two frames share a
// timestamp.
func ParseFrames(text string) ([]Frame, error) {
	tokens := strings.Split(text, ",")
	if len(tokens) < 2 {
		return nil, fmt.Errorf("%w: need 2 seed tokens, have %d", ErrMalformedFrameToken, len(tokens))
	}
	var t int64
	for i := 0; i < 2; i++ {
		field, _, _ := strings.Cut(tokens[i], "|")
		d, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d delta %q", ErrMalformedFrameToken, i, field)
		}
		t += d
	}

	var body []string
	if len(tokens) > 4 {
		body = tokens[2 : len(tokens)-2]
	}
	frames := make([]Frame, 0, len(body))
	for i, tok := range body {
		if tok == "" {
			continue
		}
		f, delta, err := parseFrameToken(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d: %v", ErrMalformedFrameToken, i+2, err)
		}
		t += delta
		f.Time = t
		if strings.HasPrefix(tok, "0|") && len(frames) > 0 {
			frames = frames[:len(frames)-1]
		}
		frames = append(frames, f)
	}
	return frames, nil
}

func parseFrameToken(tok string) (Frame, int64, error) {
	parts := strings.Split(tok, "|")
	if len(parts) != 4 {
		return Frame{}, 0, fmt.Errorf("%q has %d fields, want 4", tok, len(parts))
	}
	delta, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return Frame{}, 0, fmt.Errorf("delta %q: %w", parts[0], err)
	}
	x, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return Frame{}, 0, fmt.Errorf("x %q: %w", parts[1], err)
	}
	y, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return Frame{}, 0, fmt.Errorf("y %q: %w", parts[2], err)
	}
	keys, err := strconv.ParseInt(parts[3], 10, 32)
	if err != nil {
		return Frame{}, 0, fmt.Errorf("keys %q: %w", parts[3], err)
	}
	return Frame{X: x, Y: y, Keys: int32(keys)}, delta, nil
}

// FrameTimes returns the Time of every frame.
func FrameTimes(frames []Frame) []int64 {
	out := make([]int64, len(frames))
	for i, f := range frames {
		out[i] = f.Time
	}
	return out
}
