package main

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reallyoldfogie/osr-replay-go/osr"
	"github.com/reallyoldfogie/osr-replay-go/osr/osrtest"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.osr")
	require.NoError(t, os.WriteFile(good, osrtest.Encode(osrtest.Sample()), 0o644))
	bad := filepath.Join(dir, "bad.osr")
	require.NoError(t, os.WriteFile(bad, osrtest.Encode(&osr.Replay{})[:10], 0o644))

	assert.Equal(t, 0, run([]string{good}, osr.ReferenceMods, false, true))
	assert.Equal(t, 0, run([]string{good, good}, osr.ReferenceMods, true, true))
	assert.Equal(t, 1, run([]string{good, bad}, osr.ReferenceMods, false, true))
	assert.Equal(t, 1, run([]string{filepath.Join(dir, "missing.osr")}, osr.ReferenceMods, false, true))
}

func TestRun_ModTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "relax.osr")
	require.NoError(t, os.WriteFile(path, osrtest.Encode(&osr.Replay{PlayerName: "x", Count300: 1, Mods: 128}), 0o644))

	var logs bytes.Buffer
	old := log.Writer()
	log.SetOutput(&logs)
	t.Cleanup(func() { log.SetOutput(old) })

	require.Equal(t, 0, run([]string{path}, osr.ReferenceMods, false, false))
	assert.Contains(t, logs.String(), "reference table: 0x80")

	logs.Reset()
	require.Equal(t, 0, run([]string{path}, osr.StandardMods, false, false))
	assert.NotContains(t, logs.String(), "bits without a code")
}
