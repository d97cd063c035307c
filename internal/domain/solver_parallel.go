package domain

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ParallelSolver はルートの各手を並列に評価するソルバー
type ParallelSolver struct {
	searcher
	maxDepth int
	workers  int
}

// NewParallelSolver は新しいParallelSolverを生成する
func NewParallelSolver(evaluator Evaluator, maxDepth int) *ParallelSolver {
	return &ParallelSolver{
		searcher: searcher{evaluator: evaluator, maxSample: 4},
		maxDepth: maxDepth,
		workers:  runtime.NumCPU(),
	}
}

// BestMove は現在の盤面から最良の手を返す（トップレベルのみ並列化）
func (s *ParallelSolver) BestMove(board Board) (Direction, bool) {
	return BestDirection(s.Analyze(board))
}

// Analyze は動かせる方向ごとの評価値を並列に計算する
func (s *ParallelSolver) Analyze(board Board) map[Direction]float64 {
	// Backgroundはキャンセルされないのでエラーにならない
	scores, _ := s.AnalyzeContext(context.Background(), board)
	return scores
}

// AnalyzeContext はAnalyzeと同じだが、ctxがキャンセルされると未着手の手を打ち切りエラーを返す
// 各goroutineは盤面のコピーだけを触る
func (s *ParallelSolver) AnalyzeContext(ctx context.Context, board Board) (map[Direction]float64, error) {
	scores := make(map[Direction]float64, len(Directions))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for _, dir := range Directions {
		dir := dir
		next, moved := board.Moved(dir)
		if !moved {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			score := s.expectedScore(next, s.maxDepth-1)
			mu.Lock()
			scores[dir] = score
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}
	return scores, nil
}
