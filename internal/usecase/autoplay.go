package usecase

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/nnaakkaaii/term2048/internal/domain"
)

// AutoPlayConfig は自動プレイの設定
type AutoPlayConfig struct {
	Target      int
	MaxDepth    int
	Delay       time.Duration
	UseParallel bool
	Verbose     bool
	Logger      zerolog.Logger
}

// DefaultAutoPlayConfig はデフォルトの設定を返す
func DefaultAutoPlayConfig() AutoPlayConfig {
	return AutoPlayConfig{
		Target:      domain.DefaultTarget,
		MaxDepth:    3,
		Delay:       100 * time.Millisecond,
		UseParallel: false,
		Verbose:     true,
		Logger:      zerolog.Nop(),
	}
}

// NewAdvisor は設定に応じたソルバーを返す
func NewAdvisor(maxDepth int, parallel bool) domain.Advisor {
	evaluator := domain.NewHeuristicEvaluator()
	if parallel {
		return domain.NewParallelSolver(evaluator, maxDepth)
	}
	return domain.NewSolver(evaluator, maxDepth)
}

// AutoPlay は自動でゲームをプレイする
func AutoPlay(w io.Writer, rng domain.Rand, config AutoPlayConfig) Summary {
	game := domain.NewGame(rng, config.Target)
	solver := NewAdvisor(config.MaxDepth, config.UseParallel)
	log := config.Logger

	if config.Verbose {
		fmt.Fprintln(w, "=== 2048 AutoPlay ===")
		mode := "Sequential"
		if config.UseParallel {
			mode = "Parallel"
		}
		fmt.Fprintf(w, "Depth: %d, Mode: %s, Target: %d\n\n", config.MaxDepth, mode, game.Target())
	}

	for !game.Status().Finished() {
		if config.Verbose {
			fmt.Fprint(w, game.Board())
			fmt.Fprintf(w, "Score: %d, Moves: %d\n", game.Score(), game.Moves())
		}

		dir, ok := solver.BestMove(game.Board())
		if !ok {
			break
		}

		if config.Verbose {
			fmt.Fprintf(w, "Move: %s\n\n", dir)
		}

		turn := game.Step(domain.CommandFor(dir))
		log.Debug().Stringer("dir", dir).Bool("moved", turn.Moved).Int("score", game.Score()).Msg("autoplay turn")

		if config.Delay > 0 {
			time.Sleep(config.Delay)
		}
	}

	summary := summarize(game, false)

	// 最終結果は常に表示
	fmt.Fprint(w, game.Board())
	fmt.Fprintln(w, "=== Game Over ===")
	fmt.Fprintf(w, "Result: %s\n", summary.Status)
	fmt.Fprintf(w, "Final Score: %d\n", summary.Score)
	fmt.Fprintf(w, "Total Moves: %d\n", summary.Moves)
	fmt.Fprintf(w, "Max Tile: %d\n", summary.MaxTile)

	log.Info().
		Str("status", summary.Status.String()).
		Int("score", summary.Score).
		Int("moves", summary.Moves).
		Int("max_tile", summary.MaxTile).
		Msg("autoplay finished")

	return summary
}
