package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/reallyoldfogie/osr-replay-go/internal/config"
	"github.com/reallyoldfogie/osr-replay-go/osr"
)

func main() {
	cfg, err := config.ParseEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <replay.osr> [replay2.osr ...]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Checks osu! replay headers and frame data.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	verbose := flag.Bool("v", false, "Verbose output")
	quiet := flag.Bool("q", false, "Quiet mode (errors only)")
	mods := flag.String("mods", cfg.ModTable, "Mod table for unknown-bit warnings: reference or standard (env OSR_MOD_TABLE)")
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	cfg.ModTable = *mods
	tbl, err := cfg.Mods()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	os.Exit(run(flag.Args(), tbl, *verbose, *quiet))
}

func run(files []string, tbl osr.ModTable, verbose, quiet bool) int {
	validate := osr.ValidateFile
	if quiet {
		validate = osr.ValidateFileQuiet
	}

	failed := 0
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			fmt.Fprintf(os.Stderr, "❌ %s: file not found\n", file)
			failed++
			continue
		}
		if verbose {
			fmt.Printf("Validating %s (%s mods)...\n", file, tbl.Name)
		}

		if err := validate(file, osr.WithModTable(tbl)); err != nil {
			fmt.Fprintf(os.Stderr, "❌ %s: %v\n", filepath.Base(file), err)
			failed++
			continue
		}
		if !quiet {
			fmt.Printf("✅ %s: valid\n", filepath.Base(file))
		}
	}

	if quiet {
		return exitCode(failed)
	}
	switch {
	case failed > 0:
		fmt.Printf("\n%d of %d replay files failed validation\n", failed, len(files))
	case len(files) > 1:
		fmt.Printf("\nAll %d replay files are valid!\n", len(files))
	}
	return exitCode(failed)
}

func exitCode(failed int) int {
	if failed > 0 {
		return 1
	}
	return 0
}
