package domain

// spawn4Prob は4が出現する確率（残りは2）
const spawn4Prob = 0.1

// Rand はタイル出現に使う乱数源
// *math/rand.Rand がそのまま満たす
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Game は2048ゲームの状態を管理する
type Game struct {
	board  Board
	rng    Rand
	target int
	status Status
	moves  int
}

// NewGame は新しいゲームを開始する
// targetが0以下ならDefaultTargetを使う
func NewGame(rng Rand, target int) *Game {
	if target <= 0 {
		target = DefaultTarget
	}
	g := &Game{
		board:  NewBoard(),
		rng:    rng,
		target: target,
	}
	// 初期配置として2つのタイルを配置
	g.spawnTile()
	g.spawnTile()
	g.status = g.board.Status(g.target)
	return g
}

// NewGameFromBoard は任意の盤面からゲームを再開する
func NewGameFromBoard(rng Rand, target int, board Board) *Game {
	if target <= 0 {
		target = DefaultTarget
	}
	return &Game{
		board:  board,
		rng:    rng,
		target: target,
		status: board.Status(target),
	}
}

// Board は現在の盤面のコピーを返す
func (g *Game) Board() Board {
	return g.board.Copy()
}

// Score は現在のスコア（全セルの合計）を返す
func (g *Game) Score() int {
	return g.board.Score()
}

// Status は直近のターン終了時の状態を返す
func (g *Game) Status() Status {
	return g.status
}

// Target は勝利となるタイル値を返す
func (g *Game) Target() int {
	return g.target
}

// Moves は盤面が変化したターン数を返す
func (g *Game) Moves() int {
	return g.moves
}

// Step はコマンドを1つ処理する
// 移動 → 変化があればspawn → 勝敗判定 の順に進む
func (g *Game) Step(cmd Command) Turn {
	if cmd == CommandQuit {
		return Turn{Status: g.status, Quit: true}
	}

	dir, ok := cmd.Direction()
	if !ok || g.status.Finished() {
		return Turn{Status: g.status}
	}

	if !g.board.Move(dir) {
		return Turn{Status: g.status}
	}

	g.moves++
	turn := Turn{Moved: true, Spawned: g.spawnTile()}
	g.status = g.board.Status(g.target)
	turn.Status = g.status
	return turn
}

// Move は指定した方向に盤面を動かす
// 盤面が変化した場合はtrueを返す
func (g *Game) Move(dir Direction) bool {
	return g.Step(CommandFor(dir)).Moved
}

// spawnTile は空きマスにランダムにタイルを配置する
// 空きマスがなければ何もしない
func (g *Game) spawnTile() *Spawn {
	empty := g.board.EmptyCells()
	if len(empty) == 0 {
		return nil
	}

	pos := empty[g.rng.Intn(len(empty))]
	val := 2
	if g.rng.Float64() < spawn4Prob {
		val = 4
	}
	g.board.Set(pos[0], pos[1], val)
	return &Spawn{Row: pos[0], Col: pos[1], Value: val}
}
