package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/nnaakkaaii/term2048/internal/config"
	"github.com/nnaakkaaii/term2048/internal/logging"
	"github.com/nnaakkaaii/term2048/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fatal := logging.Fatal(os.Stderr)
		fatal.Error().Err(err).Msg("autoplay failed")
		os.Exit(1)
	}

	depth := flag.Int("depth", cfg.Depth, "search depth")
	target := flag.Int("target", cfg.Target, "tile value that wins the game")
	seed := flag.Int64("seed", cfg.Seed, "random seed (0 = time based)")
	delay := flag.Int("delay", 100, "delay between moves (ms)")
	parallel := flag.Bool("parallel", false, "evaluate root moves in parallel")
	quiet := flag.Bool("quiet", false, "suppress output")
	flag.Parse()

	cfg.Depth, cfg.Target, cfg.Seed = *depth, *target, *seed
	if err := cfg.Validate(); err != nil {
		fatal := logging.Fatal(os.Stderr)
		fatal.Error().Err(err).Msg("autoplay failed")
		os.Exit(1)
	}

	logger, closeLog, err := logging.New(cfg.LogLevel, cfg.LogFile, os.Stderr)
	if err != nil {
		fatal := logging.Fatal(os.Stderr)
		fatal.Error().Err(err).Msg("autoplay failed")
		os.Exit(1)
	}
	defer closeLog()

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	autoConfig := usecase.DefaultAutoPlayConfig()
	autoConfig.Target = cfg.Target
	autoConfig.MaxDepth = cfg.Depth
	autoConfig.Delay = time.Duration(*delay) * time.Millisecond
	autoConfig.UseParallel = *parallel
	autoConfig.Verbose = !*quiet
	autoConfig.Logger = logger

	usecase.AutoPlay(os.Stdout, rng, autoConfig)
}
