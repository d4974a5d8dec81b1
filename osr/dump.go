package osr

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// DumpFrames writes the decompressed frame text of data to out with one
// "delta|x|y|keys" token per line, in file order and without any merging.
// Empty data writes nothing.
func DumpFrames(out io.Writer, data []byte) error {
	text, err := DecompressFrames(data)
	if err != nil {
		return err
	}
	return writeFrameText(out, text)
}

// DumpFramesFile writes DumpFrames output to path. The frame data is
// decompressed before path is touched, so a corrupt blob leaves any existing
// file as it was.
func DumpFramesFile(path string, data []byte) error {
	text, err := DecompressFrames(data)
	if err != nil {
		return fmt.Errorf("dump frames: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeFrameText(f, text); err != nil {
		_ = f.Close()
		return fmt.Errorf("dump frames: %w", err)
	}
	return f.Close()
}

func writeFrameText(out io.Writer, text string) error {
	if text == "" {
		return nil
	}
	bw := bufio.NewWriter(out)
	for _, tok := range strings.Split(text, ",") {
		if _, err := bw.WriteString(tok); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
