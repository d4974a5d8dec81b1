package osr

import (
	"fmt"
	"io"
	"log"
	"os"
)

// ValidateFile decodes the replay at path, including its frame data, and
// logs warnings for oddities that do not prevent decoding. Mods bits are
// checked against the table chosen with WithModTable (ReferenceMods by
// default).
func ValidateFile(path string, opts ...Option) error {
	cfg := decodeConfig{mods: ReferenceMods}
	for _, o := range opts {
		o(&cfg)
	}

	// Check file exists and has size
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("replay file not found: %w", err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("replay file is empty (0 bytes)")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read replay: %w", err)
	}

	rp, extra, err := decode(data, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode replay: %w", err)
	}

	if !rp.GameMode.Known() {
		log.Printf("[osr] WARNING: unknown game mode: %s", rp.GameMode)
	}
	if !isDigest(rp.BeatmapMD5) {
		log.Printf("[osr] WARNING: beatmap hash is not an md5 digest: %q", rp.BeatmapMD5)
	}
	if !isDigest(rp.ReplayMD5) {
		log.Printf("[osr] WARNING: replay hash is not an md5 digest: %q", rp.ReplayMD5)
	}
	if rp.PlayerName == "" {
		log.Printf("[osr] WARNING: player name is empty")
	}
	if unk := cfg.mods.Unknown(rp.Mods); unk != 0 {
		log.Printf("[osr] WARNING: mods 0x%x include bits without a code in the %s table: 0x%x", rp.Mods, cfg.mods.Name, unk)
	}
	if extra > 0 {
		log.Printf("[osr] WARNING: %d trailing bytes after online score id", extra)
	}

	nframes := 0
	if !rp.HasFrames() {
		log.Printf("[osr] WARNING: replay has no frame data")
	} else {
		frames, err := rp.Frames()
		if err != nil {
			return fmt.Errorf("failed to decode frames: %w", err)
		}
		nframes = len(frames)
	}

	log.Printf("[osr] Validated %s: %s by %q, %d frames, %d bytes",
		path, rp.GameMode, rp.PlayerName, nframes, info.Size())

	return nil
}

// ValidateFileQuiet is like ValidateFile but suppresses all log output.
func ValidateFileQuiet(path string, opts ...Option) error {
	oldFlags := log.Flags()
	oldOutput := log.Writer()
	log.SetOutput(io.Discard)
	defer func() {
		log.SetFlags(oldFlags)
		log.SetOutput(oldOutput)
	}()

	return ValidateFile(path, opts...)
}

// isDigest reports whether s is empty or 32 lowercase hex characters.
func isDigest(s string) bool {
	if s == "" {
		return true
	}
	if len(s) != 32 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
