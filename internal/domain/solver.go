package domain

// スポーン確率（2が90%、4が10%）
const (
	spawn2Weight = 1 - spawn4Prob
	spawn4Weight = spawn4Prob
)

// defaultMaxSample はchanceノードで展開する空きマスの上限
const defaultMaxSample = 6

// Advisor は盤面から次の一手を提案する
type Advisor interface {
	BestMove(board Board) (Direction, bool)
}

// searcher はExpectimax探索の本体
type searcher struct {
	evaluator Evaluator
	maxSample int
}

// expectedScore はスポーンの期待値を計算する
func (s searcher) expectedScore(board Board, depth int) float64 {
	emptyCells := board.EmptyCells()
	if len(emptyCells) == 0 || depth <= 0 {
		return s.evaluator.Evaluate(board)
	}

	sampleCells := sampleEvenly(emptyCells, s.maxSample)

	totalScore := 0.0
	for _, pos := range sampleCells {
		board2 := board.Copy()
		board2.Set(pos[0], pos[1], 2)
		board4 := board.Copy()
		board4.Set(pos[0], pos[1], 4)

		totalScore += spawn2Weight*s.searchMax(board2, depth) + spawn4Weight*s.searchMax(board4, depth)
	}
	return totalScore / float64(len(sampleCells))
}

// searchMax はプレイヤーの最善手を探索
func (s searcher) searchMax(board Board, depth int) float64 {
	if depth <= 0 || !board.CanMove() {
		return s.evaluator.Evaluate(board)
	}

	bestScore := float64(-1e18)
	hasMoved := false
	for _, dir := range Directions {
		next, moved := board.Moved(dir)
		if !moved {
			continue
		}
		hasMoved = true
		if score := s.expectedScore(next, depth-1); score > bestScore {
			bestScore = score
		}
	}

	if !hasMoved {
		return s.evaluator.Evaluate(board)
	}
	return bestScore
}

// sampleEvenly は空きマスが多い場合に均等な間隔で間引く
func sampleEvenly(cells [][2]int, max int) [][2]int {
	if max <= 0 || len(cells) <= max {
		return cells
	}
	step := len(cells) / max
	sampled := make([][2]int, 0, max)
	for i := 0; i < len(cells) && len(sampled) < max; i += step {
		sampled = append(sampled, cells[i])
	}
	return sampled
}

// Solver はExpectimaxアルゴリズムで最良の手を探索する
type Solver struct {
	searcher
	maxDepth int
}

// NewSolver は新しいSolverを生成する
func NewSolver(evaluator Evaluator, maxDepth int) *Solver {
	return &Solver{
		searcher: searcher{evaluator: evaluator, maxSample: defaultMaxSample},
		maxDepth: maxDepth,
	}
}

// BestMove は現在の盤面から最良の手を返す
// 有効な手がない場合はokがfalse
func (s *Solver) BestMove(board Board) (Direction, bool) {
	return BestDirection(s.Analyze(board))
}

// Analyze は動かせる方向ごとの評価値を返す
func (s *Solver) Analyze(board Board) map[Direction]float64 {
	scores := make(map[Direction]float64, len(Directions))
	for _, dir := range Directions {
		next, moved := board.Moved(dir)
		if !moved {
			continue
		}
		scores[dir] = s.expectedScore(next, s.maxDepth-1)
	}
	return scores
}

// BestDirection は評価値が最大の方向を返す。同点ならDirectionsの順で先のもの
// 候補がなければokはfalse
func BestDirection(scores map[Direction]float64) (Direction, bool) {
	best := Direction(-1)
	bestScore := 0.0
	for _, dir := range Directions {
		score, ok := scores[dir]
		if !ok {
			continue
		}
		if best < 0 || score > bestScore {
			best, bestScore = dir, score
		}
	}
	return best, best >= 0
}
