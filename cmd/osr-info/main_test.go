package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reallyoldfogie/osr-replay-go/internal/config"
	"github.com/reallyoldfogie/osr-replay-go/osr/osrtest"
)

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.osr")
	require.NoError(t, os.WriteFile(path, osrtest.Encode(osrtest.Sample()), 0o644))
	return path
}

func TestRun_Text(t *testing.T) {
	var out bytes.Buffer
	cfg := config.Config{ModTable: "reference", Locale: "en"}
	require.NoError(t, run(&out, writeSample(t), cfg, options{timeline: true}))

	s := out.String()
	assert.Contains(t, s, "Player:    peppy")
	assert.Contains(t, s, "Mode:      osu")
	assert.Contains(t, s, "Score:     1,234,567")
	assert.Contains(t, s, "Accuracy:  92.96%")
	assert.Contains(t, s, "Combo:     512x\n")
	assert.Contains(t, s, "Mods:      HDDT")
	assert.Contains(t, s, "Played:    2024-01-04T21:20:00Z")
	assert.Contains(t, s, "Frames:    3 over 33 ms")
}

func TestRun_JSONAndDump(t *testing.T) {
	var out bytes.Buffer
	dump := filepath.Join(t.TempDir(), "frames.txt")
	cfg := config.Config{ModTable: "standard", Locale: "en"}
	require.NoError(t, run(&out, writeSample(t), cfg, options{json: true, dump: dump}))

	var got map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "peppy", got["playerName"])
	assert.Equal(t, []any{"HD", "DT"}, got["parsedMods"])
	assert.NotContains(t, got, "CompressedFrameData")

	data, err := os.ReadFile(dump)
	require.NoError(t, err)
	assert.Contains(t, string(data), "16|100.5|200.25|1\n")
}

func TestRun_Errors(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, writeSample(t), config.Config{ModTable: "nope", Locale: "en"}, options{})
	assert.Error(t, err)

	err = run(&out, filepath.Join(t.TempDir(), "missing.osr"), config.Config{Locale: "en"}, options{})
	assert.Error(t, err)
}
