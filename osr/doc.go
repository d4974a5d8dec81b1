// Package osr provides a decoder for osu! replay (.osr) files.
//
// A replay is a flat little-endian record:
//  - mode, client version, beatmap hash, player name, replay hash
//  - six hit counts, score, max combo, perfect flag, mods bitmask
//  - life bar graph, timestamp (.NET ticks)
//  - [lenLE:uint32][LZMA frame data]
//  - online score id
//
// Decode parses the record and keeps the frame data compressed. Frames are
// decompressed on demand with DecodeFrames (or Replay.Frames); the result is
// not cached. The package never writes replay files.
package osr
