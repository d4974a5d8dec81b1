// Package osrtest builds replay files and frame blobs for tests. The osr
// package itself never encodes replays.
package osrtest

import (
	"bytes"
	"encoding/binary"

	pk "github.com/Tnze/go-mc/net/packet"
	"github.com/ulikunitz/xz/lzma"

	"github.com/reallyoldfogie/osr-replay-go/osr"
)

// Encode serializes r in replay file order. Accuracy and ParsedMods are
// derived fields and are not written. Empty strings use the absent header.
func Encode(r *osr.Replay) []byte {
	var buf bytes.Buffer
	le := func(v any) { _ = binary.Write(&buf, binary.LittleEndian, v) }

	le(uint8(r.GameMode))
	le(r.Version)
	buf.Write(String(r.BeatmapMD5))
	buf.Write(String(r.PlayerName))
	buf.Write(String(r.ReplayMD5))
	le(r.Count300)
	le(r.Count100)
	le(r.Count50)
	le(r.CountGeki)
	le(r.CountKatu)
	le(r.CountMiss)
	le(r.Score)
	le(r.MaxCombo)
	le(r.Perfect)
	le(r.Mods)
	buf.Write(String(r.LifeBarGraph))
	le(r.Timestamp)
	le(uint32(len(r.CompressedFrameData)))
	buf.Write(r.CompressedFrameData)
	le(r.OnlineScoreID)
	return buf.Bytes()
}

// String encodes s with its header byte: 0x00 when empty, otherwise 0x0b
// followed by a VarInt length and the bytes.
func String(s string) []byte {
	if s == "" {
		return []byte{0x00}
	}
	var buf bytes.Buffer
	buf.WriteByte(0x0b)
	if _, err := pk.String(s).WriteTo(&buf); err != nil {
		panic("osrtest: encode string: " + err.Error())
	}
	return buf.Bytes()
}

// VarInt encodes v as ULEB128.
func VarInt(v int32) []byte {
	var buf bytes.Buffer
	if _, err := pk.VarInt(v).WriteTo(&buf); err != nil {
		panic("osrtest: encode varint: " + err.Error())
	}
	return buf.Bytes()
}

// CompressFrames LZMA-compresses frame text the way the game client stores it.
func CompressFrames(text string) []byte {
	var buf bytes.Buffer
	zw, err := lzma.NewWriter(&buf)
	if err != nil {
		panic("osrtest: lzma writer: " + err.Error())
	}
	if _, err := zw.Write([]byte(text)); err != nil {
		panic("osrtest: lzma write: " + err.Error())
	}
	if err := zw.Close(); err != nil {
		panic("osrtest: lzma close: " + err.Error())
	}
	return buf.Bytes()
}

// FrameText is a small frame stream: two seed tokens, four frames (the last
// one merging into its predecessor) and two trailing markers.
const FrameText = "0|256|-500|0,-1|256|-500|0,16|100.5|200.25|1,16|110|210|1,0|115|215|3,17|120|220|0,-12345|0|0|6789,"

// Sample returns a fully populated replay with frame data.
func Sample() *osr.Replay {
	return &osr.Replay{
		GameMode:            osr.ModeOsu,
		Version:             20240101,
		BeatmapMD5:          "d41d8cd98f00b204e9800998ecf8427e",
		PlayerName:          "peppy",
		ReplayMD5:           "0cc175b9c0f1b6a831c399e269772661",
		Count300:            300,
		Count100:            30,
		Count50:             3,
		CountGeki:           40,
		CountKatu:           12,
		CountMiss:           1,
		Score:               1234567,
		MaxCombo:            512,
		Perfect:             false,
		Mods:                8 | 64, // HD DT
		LifeBarGraph:        "0|1,1000|0.95,",
		Timestamp:           638400000000000000,
		CompressedFrameData: CompressFrames(FrameText),
		OnlineScoreID:       4242424242,
	}
}
