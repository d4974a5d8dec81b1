package osr

import (
	"fmt"
	"io"
	"os"
)

type decodeConfig struct {
	mods ModTable
}

// Option configures Decode.
type Option func(*decodeConfig)

// WithModTable selects the table used for Replay.ParsedMods. The default is
// ReferenceMods.
func WithModTable(t ModTable) Option {
	return func(c *decodeConfig) { c.mods = t }
}

// fieldReader reads named fields and keeps the first error.
type fieldReader struct {
	c   *cursor
	err error
}

func (r *fieldReader) fail(field string, off int, err error) {
	r.err = fmt.Errorf("decode %s at offset %d: %w", field, off, err)
}

func (r *fieldReader) u8(field string) uint8 {
	if r.err != nil {
		return 0
	}
	off := r.c.pos()
	v, err := r.c.u8()
	if err != nil {
		r.fail(field, off, err)
	}
	return v
}

func (r *fieldReader) u16(field string) uint16 {
	if r.err != nil {
		return 0
	}
	off := r.c.pos()
	v, err := r.c.u16()
	if err != nil {
		r.fail(field, off, err)
	}
	return v
}

func (r *fieldReader) u32(field string) uint32 {
	if r.err != nil {
		return 0
	}
	off := r.c.pos()
	v, err := r.c.u32()
	if err != nil {
		r.fail(field, off, err)
	}
	return v
}

func (r *fieldReader) u64(field string) uint64 {
	if r.err != nil {
		return 0
	}
	off := r.c.pos()
	v, err := r.c.u64()
	if err != nil {
		r.fail(field, off, err)
	}
	return v
}

func (r *fieldReader) str(field string) string {
	if r.err != nil {
		return ""
	}
	off := r.c.pos()
	v, err := readString(r.c)
	if err != nil {
		r.fail(field, off, err)
	}
	return v
}

func (r *fieldReader) blob(field string, n uint32) []byte {
	if r.err != nil {
		return nil
	}
	off := r.c.pos()
	if uint64(n) > uint64(r.c.remaining()) {
		r.fail(field, off, fmt.Errorf("%w: declared %d bytes, have %d", ErrTruncatedInput, n, r.c.remaining()))
		return nil
	}
	v, err := r.c.bytes(int(n))
	if err != nil {
		r.fail(field, off, err)
	}
	return v
}

// Decode parses a complete replay file held in data. Fields are read in file
// order and the first failure aborts the decode; no partial Replay is
// returned. data is not retained.
func Decode(data []byte, opts ...Option) (*Replay, error) {
	cfg := decodeConfig{mods: ReferenceMods}
	for _, o := range opts {
		o(&cfg)
	}
	rp, _, err := decode(data, cfg)
	return rp, err
}

// decode also reports how many bytes follow the online score id.
func decode(data []byte, cfg decodeConfig) (*Replay, int, error) {
	r := &fieldReader{c: newCursor(data)}
	var rp Replay
	rp.GameMode = GameMode(r.u8("game mode"))
	rp.Version = r.u32("version")
	rp.BeatmapMD5 = r.str("beatmap md5")
	rp.PlayerName = r.str("player name")
	rp.ReplayMD5 = r.str("replay md5")
	rp.Count300 = r.u16("count300")
	rp.Count100 = r.u16("count100")
	rp.Count50 = r.u16("count50")
	rp.CountGeki = r.u16("count geki")
	rp.CountKatu = r.u16("count katu")
	rp.CountMiss = r.u16("count miss")
	if r.err != nil {
		return nil, 0, r.err
	}
	acc, err := Accuracy(rp.Count300, rp.Count100, rp.Count50, rp.CountMiss)
	if err != nil {
		return nil, 0, fmt.Errorf("decode accuracy: %w", err)
	}
	rp.Accuracy = acc

	rp.Score = r.u32("score")
	rp.MaxCombo = r.u16("max combo")
	rp.Perfect = r.u8("perfect") != 0
	rp.Mods = r.u32("mods")
	rp.LifeBarGraph = r.str("life bar graph")
	rp.Timestamp = r.u64("timestamp")
	n := r.u32("frame data length")
	rp.CompressedFrameData = r.blob("frame data", n)
	rp.OnlineScoreID = r.u64("online score id")
	if r.err != nil {
		return nil, 0, r.err
	}
	rp.ParsedMods = cfg.mods.Parse(rp.Mods)
	return &rp, r.c.remaining(), nil
}

// DecodeReader reads r to EOF and decodes the payload.
func DecodeReader(r io.Reader, opts ...Option) (*Replay, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read replay: %w", err)
	}
	return Decode(data, opts...)
}

// DecodeFile reads the replay file at path and decodes it.
func DecodeFile(path string, opts ...Option) (*Replay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read replay: %w", err)
	}
	return Decode(data, opts...)
}
