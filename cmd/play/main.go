package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/nnaakkaaii/term2048/internal/config"
	"github.com/nnaakkaaii/term2048/internal/domain"
	"github.com/nnaakkaaii/term2048/internal/logging"
	"github.com/nnaakkaaii/term2048/internal/tui"
	"github.com/nnaakkaaii/term2048/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		fatal := logging.Fatal(os.Stderr)
		fatal.Error().Err(err).Msg("play failed")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	target := flag.Int("target", cfg.Target, "tile value that wins the game")
	seed := flag.Int64("seed", cfg.Seed, "random seed (0 = time based)")
	depth := flag.Int("depth", cfg.Depth, "hint search depth")
	plain := flag.Bool("plain", false, "line mode: read w/a/s/d/h/q from stdin")
	logFile := flag.String("log-file", cfg.LogFile, "write logs to this file")
	logLevel := flag.String("log-level", cfg.LogLevel, "log level")
	flag.Parse()

	cfg.Target, cfg.Seed, cfg.Depth = *target, *seed, *depth
	cfg.LogFile, cfg.LogLevel = *logFile, *logLevel
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := logging.New(cfg.LogLevel, cfg.LogFile, nil)
	if err != nil {
		return err
	}
	defer closeLog()

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger.Debug().Int64("seed", cfg.Seed).Int("target", cfg.Target).Msg("config loaded")
	rng := rand.New(rand.NewSource(cfg.Seed))
	advisor := usecase.NewAdvisor(cfg.Depth, true)

	if *plain {
		usecase.PlayGame(os.Stdin, os.Stdout, rng, usecase.PlayConfig{
			Target:  cfg.Target,
			Advisor: advisor,
			Logger:  logger,
		})
		return nil
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	game := domain.NewGame(rng, cfg.Target)
	if err := tui.New(screen, game, tui.Options{Advisor: advisor, Logger: logger}).Run(ctx); err != nil {
		logger.Error().Err(err).Msg("ui exited")
		return err
	}
	return nil
}
