package domain

import "math"

// Evaluator はBoardを評価してスコアを返すインターフェース
type Evaluator interface {
	Evaluate(b Board) float64
}

// WeightedEvaluator は複数のEvaluatorを係数付きで組み合わせる
type WeightedEvaluator struct {
	evaluators []Evaluator
	weights    []float64
}

// NewWeightedEvaluator は係数付きEvaluatorを生成する
func NewWeightedEvaluator(evaluators []Evaluator, weights []float64) *WeightedEvaluator {
	return &WeightedEvaluator{
		evaluators: evaluators,
		weights:    weights,
	}
}

// NewHeuristicEvaluator はヒントと自動プレイで使う既定の組み合わせを返す
func NewHeuristicEvaluator() *WeightedEvaluator {
	return NewWeightedEvaluator(
		[]Evaluator{
			&EmptyCellsEvaluator{},
			&MonotonicityEvaluator{},
			&SmoothnessEvaluator{},
			&CornerBonusEvaluator{},
			&MergeableEvaluator{},
		},
		[]float64{2.7, 1.0, 0.1, 3.0, 1.5},
	)
}

// Evaluate は全てのEvaluatorの重み付き和を返す
func (w *WeightedEvaluator) Evaluate(b Board) float64 {
	score := 0.0
	for i, ev := range w.evaluators {
		score += w.weights[i] * ev.Evaluate(b)
	}
	return score
}

// EmptyCellsEvaluator は空きマス数で評価する
type EmptyCellsEvaluator struct{}

func (e *EmptyCellsEvaluator) Evaluate(b Board) float64 {
	return float64(len(b.EmptyCells()))
}

// MonotonicityEvaluator は単調性で評価する（角から降順に並ぶほど高評価）
type MonotonicityEvaluator struct{}

func (e *MonotonicityEvaluator) Evaluate(b Board) float64 {
	best := math.Inf(-1)
	for _, fromTop := range []bool{true, false} {
		for _, fromLeft := range []bool{true, false} {
			if s := e.calcMonotonicity(b, fromTop, fromLeft); s > best {
				best = s
			}
		}
	}
	return best
}

func (e *MonotonicityEvaluator) calcMonotonicity(b Board, fromTop, fromLeft bool) float64 {
	score := 0.0
	for i := 0; i < Size; i++ {
		for j := 0; j < Size-1; j++ {
			c1, c2 := j, j+1
			if !fromLeft {
				c1, c2 = Size-1-j, Size-2-j
			}
			if b.Get(i, c1) >= b.Get(i, c2) {
				score++
			}

			r1, r2 := j, j+1
			if !fromTop {
				r1, r2 = Size-1-j, Size-2-j
			}
			if b.Get(r1, i) >= b.Get(r2, i) {
				score++
			}
		}
	}
	return score
}

// SmoothnessEvaluator は隣接タイルの値の差で評価する（差が小さいほど高評価）
type SmoothnessEvaluator struct{}

func (e *SmoothnessEvaluator) Evaluate(b Board) float64 {
	penalty := 0.0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			v := b.Get(r, c)
			if v == 0 {
				continue
			}
			logV := math.Log2(float64(v))
			if c+1 < Size {
				if right := b.Get(r, c+1); right != 0 {
					penalty += math.Abs(logV - math.Log2(float64(right)))
				}
			}
			if r+1 < Size {
				if down := b.Get(r+1, c); down != 0 {
					penalty += math.Abs(logV - math.Log2(float64(down)))
				}
			}
		}
	}
	return -penalty
}

// CornerBonusEvaluator は最大タイルが角にあると高評価
type CornerBonusEvaluator struct{}

func (e *CornerBonusEvaluator) Evaluate(b Board) float64 {
	maxVal := b.MaxTile()
	if maxVal == 0 {
		return 0
	}
	for _, rc := range [][2]int{{0, 0}, {0, Size - 1}, {Size - 1, 0}, {Size - 1, Size - 1}} {
		if b.Get(rc[0], rc[1]) == maxVal {
			return 1.0
		}
	}
	return 0.0
}

// MergeableEvaluator は隣接する同じ値のペア数で評価する
type MergeableEvaluator struct{}

func (e *MergeableEvaluator) Evaluate(b Board) float64 {
	count := 0.0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			v := b.Get(r, c)
			if v == 0 {
				continue
			}
			if c+1 < Size && b.Get(r, c+1) == v {
				count++
			}
			if r+1 < Size && b.Get(r+1, c) == v {
				count++
			}
		}
	}
	return count
}
