package osr

import (
	"fmt"
	"time"

	"golang.org/x/text/cases"
)

// GameMode is the ruleset a replay was played in. Values outside 0..3 are
// kept as read.
type GameMode uint8

const (
	ModeOsu GameMode = iota
	ModeTaiko
	ModeCatch
	ModeMania
)

func (m GameMode) String() string {
	switch m {
	case ModeOsu:
		return "osu"
	case ModeTaiko:
		return "taiko"
	case ModeCatch:
		return "catch"
	case ModeMania:
		return "mania"
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

// Known reports whether m is one of the four rulesets.
func (m GameMode) Known() bool { return m <= ModeMania }

// Replay is the decoded header of a replay file. The frame data stays
// compressed; see Frames.
type Replay struct {
	GameMode     GameMode `json:"gameMode"`
	Version      uint32   `json:"version"`
	BeatmapMD5   string   `json:"beatmapMd5"`
	PlayerName   string   `json:"playerName"`
	ReplayMD5    string   `json:"replayMd5"`
	Count300     uint16   `json:"count300"`
	Count100     uint16   `json:"count100"`
	Count50      uint16   `json:"count50"`
	CountGeki    uint16   `json:"countGeki"`
	CountKatu    uint16   `json:"countKatu"`
	CountMiss    uint16   `json:"countMiss"`
	Accuracy     float64  `json:"accuracy"` // percent, 0..100
	Score        uint32   `json:"score"`
	MaxCombo     uint16   `json:"maxCombo"`
	Perfect      bool     `json:"perfect"`
	Mods         uint32   `json:"mods"`
	ParsedMods   []Mod    `json:"parsedMods"`
	LifeBarGraph string   `json:"lifeBarGraph,omitempty"`
	Timestamp    uint64   `json:"timestamp"` // .NET ticks

	CompressedFrameData []byte `json:"-"`

	OnlineScoreID uint64 `json:"onlineScoreId,omitempty"`
}

// Frames decompresses and decodes the frame data. The result is not cached.
func (r *Replay) Frames() ([]Frame, error) {
	return DecodeFrames(r.CompressedFrameData)
}

// HasFrames reports whether the replay carries any frame data.
func (r *Replay) HasFrames() bool { return len(r.CompressedFrameData) > 0 }

// ModString returns the parsed mods joined, e.g. "HDDT", or "NM".
func (r *Replay) ModString() string { return JoinMods(r.ParsedMods) }

// PlayerKey returns the case-folded player name, suitable as a lookup key
// for services that treat usernames case-insensitively.
func (r *Replay) PlayerKey() string {
	return cases.Fold().String(r.PlayerName)
}

// .NET ticks are 100ns intervals since 0001-01-01 UTC.
const (
	ticksPerSecond     = 10_000_000
	ticksToUnixSeconds = 62_135_596_800
)

// Time converts Timestamp to wall-clock time in UTC.
func (r *Replay) Time() time.Time {
	sec := int64(r.Timestamp/ticksPerSecond) - ticksToUnixSeconds
	nsec := int64(r.Timestamp%ticksPerSecond) * 100
	return time.Unix(sec, nsec).UTC()
}

// Accuracy returns the weighted hit percentage
// (300 + 100/3 + 50/6) / (300 + 100 + 50 + miss) * 100.
func Accuracy(c300, c100, c50, miss uint16) (float64, error) {
	total := float64(c300) + float64(c100) + float64(c50) + float64(miss)
	if total == 0 {
		return 0, ErrDivisionByZero
	}
	hit := float64(c300) + float64(c100)/3 + float64(c50)/6
	return hit / total * 100, nil
}
