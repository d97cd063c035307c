package tui

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/nnaakkaaii/term2048/internal/domain"
)

// DecodeKey はキー入力をコマンドに変換する
// 対応しないキーはCommandNone
func DecodeKey(ev *tcell.EventKey) domain.Command {
	switch ev.Key() {
	case tcell.KeyUp:
		return domain.CommandUp
	case tcell.KeyDown:
		return domain.CommandDown
	case tcell.KeyLeft:
		return domain.CommandLeft
	case tcell.KeyRight:
		return domain.CommandRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return domain.CommandQuit
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'w':
			return domain.CommandUp
		case 's':
			return domain.CommandDown
		case 'a':
			return domain.CommandLeft
		case 'd':
			return domain.CommandRight
		case 'h':
			return domain.CommandHint
		case 'q':
			return domain.CommandQuit
		}
	}
	return domain.CommandNone
}
