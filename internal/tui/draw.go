package tui

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/nnaakkaaii/term2048/internal/domain"
)

const (
	cellWidth = 6

	// 画面上の行位置
	titleRow = 2*domain.Size + 2
	scoreRow = titleRow + 2
	helpRow  = scoreRow + 2

	minWidth  = 48
	minHeight = helpRow + 1

	gridLine  = "+------+------+------+------+"
	gridCells = "|      |      |      |      |"
	helpText  = "Use cursor keys to move, h for a hint, q to exit"
)

// tileColors はタイル値のビット長ごとの文字色
var tileColors = []tcell.Color{
	tcell.ColorWhite,
	tcell.ColorWhite,
	tcell.ColorAqua,
	tcell.ColorBlue,
	tcell.ColorGreen,
	tcell.ColorYellow,
	tcell.ColorFuchsia,
	tcell.ColorRed,
}

// tileStyle はタイル値に応じたスタイルを返す
func tileStyle(value int) tcell.Style {
	if value <= 0 {
		return tcell.StyleDefault
	}
	i := bits.Len(uint(value)) - 1
	if i >= len(tileColors) {
		i = len(tileColors) - 1
	}
	return tcell.StyleDefault.Foreground(tileColors[i]).Bold(value >= 2048)
}

// center は文字列を表示幅widthの中央に寄せる
func center(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return runewidth.Truncate(s, width, "")
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

func putString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

// draw は盤面とスコア、メッセージを描画する
func (u *UI) draw() {
	u.screen.Clear()

	w, h := u.screen.Size()
	if w < minWidth || h < minHeight {
		putString(u.screen, 0, 0, "Window too small", tcell.StyleDefault)
		u.screen.Show()
		return
	}

	frame := tcell.StyleDefault
	for y := 0; y <= 2*domain.Size; y++ {
		if y%2 == 1 {
			putString(u.screen, 0, y, gridCells, frame)
		} else {
			putString(u.screen, 0, y, gridLine, frame)
		}
	}

	board := u.game.Board()
	for y := 0; y < domain.Size; y++ {
		for x := 0; x < domain.Size; x++ {
			v := board.Get(y, x)
			text := ""
			if v != 0 {
				text = fmt.Sprint(v)
			}
			px := x*(cellWidth+1) + 1
			py := y*2 + 1
			putString(u.screen, px, py, center(text, cellWidth), tileStyle(v))
		}
	}

	putString(u.screen, 0, titleRow, fmt.Sprintf("Join the numbers and get to the %d tile!", u.game.Target()), frame)
	putString(u.screen, 0, scoreRow, fmt.Sprintf("Score: %d   Moves: %d", u.game.Score(), u.game.Moves()), frame)

	msg := helpText
	if u.message != "" {
		msg = u.message
	}
	putString(u.screen, 0, helpRow, msg, frame)

	u.screen.Show()
}
