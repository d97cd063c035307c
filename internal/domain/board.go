package domain

import (
	"fmt"
	"strings"
)

// Size は盤面の一辺のマス数
const Size = 4

// DefaultTarget は勝利となるタイルの既定値
const DefaultTarget = 2048

// Direction はスワイプの方向を表す
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions は全ての方向を探索順に並べたもの
var Directions = []Direction{Up, Down, Left, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// Status はターン終了時のゲームの状態
type Status int

const (
	Continue Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Continue:
		return "continue"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Finished は勝敗が決まっているかどうかを返す
func (s Status) Finished() bool {
	return s == Won || s == Lost
}

// Board は4x4の2048ゲーム盤面を表す
// ゼロ値は空の盤面。移動操作はレシーバを直接書き換える
type Board struct {
	cells [Size][Size]int
}

// NewBoard は空のBoardを生成する
func NewBoard() Board {
	return Board{}
}

// NewBoardFromCells はセルの値を指定してBoardを生成する
func NewBoardFromCells(cells [Size][Size]int) Board {
	return Board{cells: cells}
}

// Get は指定した位置のセル値を取得する
func (b Board) Get(row, col int) int {
	return b.cells[row][col]
}

// Set は指定した位置に値を書き込む
func (b *Board) Set(row, col, value int) {
	b.cells[row][col] = value
}

// Cells はセルの値のコピーを返す
func (b Board) Cells() [Size][Size]int {
	return b.cells
}

// Copy はBoardのコピーを返す
func (b Board) Copy() Board {
	return Board{cells: b.cells}
}

// EmptyCells は空のセルの座標一覧を返す
func (b Board) EmptyCells() [][2]int {
	var empty [][2]int
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.cells[r][c] == 0 {
				empty = append(empty, [2]int{r, c})
			}
		}
	}
	return empty
}

// Score は全セルの合計値を返す
func (b Board) Score() int {
	sum := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			sum += b.cells[r][c]
		}
	}
	return sum
}

// MaxTile は最大のタイル値を返す
func (b Board) MaxTile() int {
	max := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.cells[r][c] > max {
				max = b.cells[r][c]
			}
		}
	}
	return max
}

// HasAdjacentEqual は上下左右に隣接する同じ値のペアがあるかを返す
func (b Board) HasAdjacentEqual() bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			v := b.cells[r][c]
			if v == 0 {
				continue
			}
			if c+1 < Size && b.cells[r][c+1] == v {
				return true
			}
			if r+1 < Size && b.cells[r+1][c] == v {
				return true
			}
		}
	}
	return false
}

// CanMove はいずれかの方向に動かせるかどうかを返す
func (b Board) CanMove() bool {
	return len(b.EmptyCells()) > 0 || b.HasAdjacentEqual()
}

// Status は盤面の勝敗を判定する
// targetに達したタイルがあれば空きマスに関係なくWon
func (b Board) Status(target int) Status {
	if b.MaxTile() >= target {
		return Won
	}
	if !b.CanMove() {
		return Lost
	}
	return Continue
}

// Move は指定した方向に盤面を動かし、変化があればtrueを返す
func (b *Board) Move(dir Direction) bool {
	switch dir {
	case Up:
		return b.MoveUp()
	case Down:
		return b.MoveDown()
	case Left:
		return b.MoveLeft()
	case Right:
		return b.MoveRight()
	default:
		return false
	}
}

// Moved はレシーバを変更せずに移動後の盤面を返す
func (b Board) Moved(dir Direction) (Board, bool) {
	next := b.Copy()
	moved := next.Move(dir)
	return next, moved
}

// MoveRight は全ての行を右に詰めてマージする
func (b *Board) MoveRight() bool {
	moved := false
	for r := 0; r < Size; r++ {
		if shiftRight(&b.cells[r]) {
			moved = true
		}
	}
	return moved
}

// MoveLeft は左右反転してから右移動し、反転を戻す
func (b *Board) MoveLeft() bool {
	b.Mirror()
	moved := b.MoveRight()
	b.Mirror()
	return moved
}

// MoveDown は転置してから右移動し、転置を戻す
func (b *Board) MoveDown() bool {
	b.Transpose()
	moved := b.MoveRight()
	b.Transpose()
	return moved
}

// MoveUp は転置と左右反転で右移動に帰着させる
func (b *Board) MoveUp() bool {
	b.Transpose()
	b.Mirror()
	moved := b.MoveRight()
	b.Mirror()
	b.Transpose()
	return moved
}

// Mirror は各行を左右反転する
func (b *Board) Mirror() {
	for r := 0; r < Size; r++ {
		row := &b.cells[r]
		row[0], row[3] = row[3], row[0]
		row[1], row[2] = row[2], row[1]
	}
}

// Transpose は行と列を入れ替える
func (b *Board) Transpose() {
	tmp := b.cells
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			b.cells[x][y] = tmp[y][x]
		}
	}
}

// shiftRight は1行を右方向へマージしてから詰める操作を、変化がなくなるまで繰り返す
// マージで生まれたタイルは同じ手の中で再度マージしない
func shiftRight(row *[Size]int) bool {
	var merged [Size]bool
	changed := false
	for {
		pass := false

		// 右から左へマージ
		for x := Size - 2; x >= 0; x-- {
			if row[x] != 0 && row[x] == row[x+1] && !merged[x] && !merged[x+1] {
				row[x+1] = row[x] * 2
				row[x] = 0
				merged[x+1] = true
				pass = true
			}
		}

		// 左から右へ空きを詰める
		for x := 0; x < Size-1; x++ {
			if row[x] != 0 && row[x+1] == 0 {
				row[x+1], row[x] = row[x], 0
				merged[x+1], merged[x] = merged[x], false
				pass = true
			}
		}

		if !pass {
			return changed
		}
		changed = true
	}
}

// Equal は2つのBoardが等しいかどうかを返す
func (b Board) Equal(other Board) bool {
	return b.cells == other.cells
}

// String はBoardをASCIIアートとして表示する
func (b Board) String() string {
	line := "+------+------+------+------+"
	var sb strings.Builder
	sb.WriteString(line + "\n")
	for r := 0; r < Size; r++ {
		sb.WriteString("|")
		for c := 0; c < Size; c++ {
			if b.cells[r][c] == 0 {
				sb.WriteString("      |")
			} else {
				fmt.Fprintf(&sb, "%5d |", b.cells[r][c])
			}
		}
		sb.WriteString("\n" + line + "\n")
	}
	return sb.String()
}
