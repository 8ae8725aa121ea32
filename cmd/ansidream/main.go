package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"

	"github.com/thesavant42/ansidream/internal/remap"
	"github.com/thesavant42/ansidream/internal/textenc"
	"github.com/thesavant42/ansidream/internal/ui"
)

func main() {
	// Load .env file if it exists (silently ignore if not found)
	_ = godotenv.Load()

	os.Exit(run(os.Args))
}

func run(args []string) int {
	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	verbose := flags.BoolP("verbose", "v", false, "Log transform details to stderr")
	encName := flags.StringP("encoding", "e", "utf-8", "Input/output text encoding (utf-8, cp437)")
	if err := flags.Parse(args[1:]); err != nil {
		ui.PrintError(err.Error())
		return 1
	}

	configureLogging(*verbose)

	if flags.NArg() != 2 {
		ui.PrintUsage(filepath.Base(args[0]))
		return 1
	}
	inputPath, outputPath := flags.Arg(0), flags.Arg(1)

	enc, err := textenc.Parse(*encName)
	if err != nil {
		ui.PrintError(err.Error())
		return 1
	}

	stats, err := remap.New().TransformFile(inputPath, outputPath, enc)
	if err != nil {
		ui.PrintError(err.Error())
		return 1
	}

	log.Debug("transform finished",
		"encoding", enc.String(),
		"bytes_in", stats.BytesIn,
		"bytes_out", stats.BytesOut,
		"replacements", stats.Replacements)

	ui.PrintSuccess(fmt.Sprintf("Cyberdream color remapping complete: %s -> %s", inputPath, outputPath))
	return 0
}

// configureLogging keeps the default output quiet so the fixed CLI surface
// stays clean; ANSIDREAM_LOG or --verbose raise the level.
func configureLogging(verbose bool) {
	log.SetLevel(log.WarnLevel)
	if lvl := os.Getenv("ANSIDREAM_LOG"); lvl != "" {
		if parsed, err := log.ParseLevel(lvl); err == nil {
			log.SetLevel(parsed)
		}
	}
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}
