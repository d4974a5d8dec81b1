package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"golang.org/x/text/message"

	"github.com/reallyoldfogie/osr-replay-go/internal/config"
	"github.com/reallyoldfogie/osr-replay-go/osr"
)

type options struct {
	json     bool
	timeline bool
	dump     string
	mods     string
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("osr-info: ")

	cfg, err := config.ParseEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var opts options
	flag.BoolVar(&opts.json, "json", false, "Print the replay record as JSON")
	flag.BoolVar(&opts.timeline, "timeline", false, "Decode frames and print timeline stats")
	flag.StringVar(&opts.dump, "frames", "", "Write raw frame tokens, one per line, to this path")
	flag.StringVar(&opts.mods, "mods", cfg.ModTable, "Mod table: reference or standard (env OSR_MOD_TABLE)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <replay.osr>\n\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg.ModTable = opts.mods
	if err := run(os.Stdout, flag.Arg(0), cfg, opts); err != nil {
		log.Fatal(err)
	}
}

func run(out io.Writer, path string, cfg config.Config, opts options) error {
	tbl, err := cfg.Mods()
	if err != nil {
		return err
	}
	tag, err := cfg.Language()
	if err != nil {
		return err
	}

	rp, err := osr.DecodeFile(path, osr.WithModTable(tbl))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	var frames []osr.Frame
	if opts.timeline {
		if frames, err = rp.Frames(); err != nil {
			return fmt.Errorf("%s: frames: %w", path, err)
		}
	}
	if opts.dump != "" {
		if err := osr.DumpFramesFile(opts.dump, rp.CompressedFrameData); err != nil {
			return err
		}
	}

	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rp)
	}
	printReplay(out, message.NewPrinter(tag), rp, frames, opts.timeline)
	return nil
}

func printReplay(out io.Writer, p *message.Printer, rp *osr.Replay, frames []osr.Frame, timeline bool) {
	p.Fprintf(out, "Player:    %s\n", rp.PlayerName)
	p.Fprintf(out, "Mode:      %s (client %d)\n", rp.GameMode, rp.Version)
	p.Fprintf(out, "Beatmap:   %s\n", rp.BeatmapMD5)
	p.Fprintf(out, "Played:    %s\n", rp.Time().Format(time.RFC3339))
	p.Fprintf(out, "Score:     %d\n", rp.Score)
	p.Fprintf(out, "Accuracy:  %.2f%%\n", rp.Accuracy)
	p.Fprintf(out, "Combo:     %dx", rp.MaxCombo)
	if rp.Perfect {
		p.Fprintf(out, " (perfect)")
	}
	p.Fprintf(out, "\n")
	p.Fprintf(out, "Hits:      %d / %d / %d / %d miss (geki %d, katu %d)\n",
		rp.Count300, rp.Count100, rp.Count50, rp.CountMiss, rp.CountGeki, rp.CountKatu)
	p.Fprintf(out, "Mods:      %s\n", rp.ModString())
	if rp.OnlineScoreID != 0 {
		p.Fprintf(out, "Score ID:  %d\n", rp.OnlineScoreID)
	}
	if timeline {
		if len(frames) == 0 {
			p.Fprintf(out, "Frames:    none\n")
		} else {
			span := frames[len(frames)-1].Time - frames[0].Time
			p.Fprintf(out, "Frames:    %d over %d ms\n", len(frames), span)
		}
	}
}
