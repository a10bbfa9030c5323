// SPDX-License-Identifier: EPL-2.0

// Command audcompose reads a score from standard input and writes the
// rendered composition as a WAV file.
//
//	echo "C4 *t2 E4 *. G4" | audcompose -v song.wav
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ik5/audcompose"
	"github.com/ik5/audcompose/codec"
	"github.com/ik5/audcompose/composer"
	"github.com/ik5/audcompose/config"
	"github.com/ik5/audcompose/notes"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stderr))
}

func run(args []string, stdin io.Reader, stderr io.Writer) int {
	fs := flag.NewFlagSet("audcompose", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML settings `file`; defaults apply when empty.")
	verbose := fs.Bool("v", false, "Log every token and codec step.")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Render a note score from standard input into a WAV file.\nUsage: audcompose [flags] <output.wav>\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 1
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if fs.NArg() != 1 {
		logger.Error("bad arguments", "err", audcompose.ErrNoOutput, "args", fs.Args())
		fs.Usage()
		return 1
	}
	out := fs.Arg(0)

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			logger.Error("could not load config", "err", err)
			return 1
		}
	}

	opts := []codec.Option{codec.WithLogger(logger)}
	if cfg.ResampleLoads {
		opts = append(opts, codec.WithResample(cfg.SampleRate))
	}
	enc := codec.New(opts...)
	c := composer.New(cfg, notes.NewMaker(cfg), enc, composer.WithLogger(logger))

	if err := audcompose.RenderFile(stdin, c, enc, out); err != nil {
		logger.Error("could not render", "output", out, "err", err)
		return 1
	}

	song := c.Overall()
	logger.Info("wrote composition",
		"output", out,
		"ms", song.Duration(),
		"sample_rate", song.SampleRate,
		"bits", song.BitsPerSample,
	)

	return 0
}
