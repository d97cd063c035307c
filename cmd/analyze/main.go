package main

import (
	"flag"
	"os"

	"github.com/nnaakkaaii/term2048/internal/config"
	"github.com/nnaakkaaii/term2048/internal/logging"
	"github.com/nnaakkaaii/term2048/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fatal := logging.Fatal(os.Stderr)
		fatal.Error().Err(err).Msg("analyze failed")
		os.Exit(1)
	}

	depth := flag.Int("depth", cfg.Depth, "initial search depth")
	target := flag.Int("target", cfg.Target, "tile value that wins the game")
	parallel := flag.Bool("parallel", false, "evaluate root moves in parallel")
	flag.Parse()

	cfg.Depth, cfg.Target = *depth, *target
	if err := cfg.Validate(); err != nil {
		fatal := logging.Fatal(os.Stderr)
		fatal.Error().Err(err).Msg("analyze failed")
		os.Exit(1)
	}

	usecase.Analyze(os.Stdin, os.Stdout, usecase.AnalyzeConfig{
		Target:   cfg.Target,
		MaxDepth: cfg.Depth,
		Parallel: *parallel,
	})
}
