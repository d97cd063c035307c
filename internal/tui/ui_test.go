package tui

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/nnaakkaaii/term2048/internal/domain"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

// line は画面のy行目を文字列として返す
func line(s tcell.SimulationScreen, y int) string {
	cells, w, _ := s.GetContents()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		runes := cells[y*w+x].Runes
		if len(runes) == 0 {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteRune(runes[0])
	}
	return strings.TrimRight(sb.String(), " ")
}

func runUI(t *testing.T, s tcell.SimulationScreen, game *domain.Game, opts Options) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, New(s, game, opts).Run(ctx))
	require.NoError(t, ctx.Err(), "UI did not quit before the timeout")
}

func TestDecodeKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want domain.Command
	}{
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), domain.CommandUp},
		{"arrow down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), domain.CommandDown},
		{"arrow left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), domain.CommandLeft},
		{"arrow right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), domain.CommandRight},
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), domain.CommandUp},
		{"shift D", tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModShift), domain.CommandRight},
		{"hint", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), domain.CommandHint},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), domain.CommandQuit},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), domain.CommandQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), domain.CommandQuit},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), domain.CommandNone},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), domain.CommandNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, DecodeKey(tt.ev))
		})
	}
}

func TestRunDrawsBoardAndQuits(t *testing.T) {
	s := newScreen(t, 80, 25)
	game := domain.NewGameFromBoard(rand.New(rand.NewSource(1)), 0, domain.NewBoardFromCells([4][4]int{
		{2, 0, 0, 0},
		{0, 128, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 1024},
	}))

	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	runUI(t, s, game, Options{Logger: zerolog.Nop()})

	require.Equal(t, gridLine, line(s, 0))
	require.Equal(t, "|  2   |      |      |      |", line(s, 1))
	require.Equal(t, "|      | 128  |      |      |", line(s, 3))
	require.Equal(t, "|      |      |      | 1024 |", line(s, 7))
	require.Equal(t, "Join the numbers and get to the 2048 tile!", line(s, titleRow))
	require.Equal(t, "Score: 1154   Moves: 0", line(s, scoreRow))
	require.Equal(t, helpText, line(s, helpRow))
}

func TestRunIgnoresNoOpMove(t *testing.T) {
	s := newScreen(t, 80, 25)
	start := domain.NewBoardFromCells([4][4]int{
		{0, 0, 0, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	game := domain.NewGameFromBoard(rand.New(rand.NewSource(1)), 0, start)

	s.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	runUI(t, s, game, Options{Logger: zerolog.Nop()})

	require.True(t, game.Board().Equal(start))
	require.Equal(t, 0, game.Moves())
}

func TestRunShowsWin(t *testing.T) {
	s := newScreen(t, 80, 25)
	game := domain.NewGameFromBoard(rand.New(rand.NewSource(1)), 0, domain.NewBoardFromCells([4][4]int{
		{1024, 1024, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}))

	s.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	runUI(t, s, game, Options{Logger: zerolog.Nop()})

	require.Equal(t, domain.Won, game.Status())
	require.Equal(t, 1, game.Moves())
	require.Equal(t, "You won! Press q to exit", line(s, helpRow))
}

// fourRand は常に先頭の空きマスに4を置く
type fourRand struct{}

func (fourRand) Intn(int) int     { return 0 }
func (fourRand) Float64() float64 { return 0 }

func TestRunShowsWinOnOpeningBoard(t *testing.T) {
	s := newScreen(t, 80, 25)
	game := domain.NewGame(fourRand{}, 4)
	require.Equal(t, domain.Won, game.Status())

	s.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	runUI(t, s, game, Options{Logger: zerolog.Nop()})

	require.Equal(t, 0, game.Moves())
	require.Equal(t, "Join the numbers and get to the 4 tile!", line(s, titleRow))
	require.Equal(t, "You won! Press q to exit", line(s, helpRow))
}

func TestRunShowsLossOnOpeningBoard(t *testing.T) {
	s := newScreen(t, 80, 25)
	game := domain.NewGameFromBoard(rand.New(rand.NewSource(1)), 0, domain.NewBoardFromCells([4][4]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}))

	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	runUI(t, s, game, Options{Logger: zerolog.Nop()})

	require.Equal(t, "You lost. Press q to exit", line(s, helpRow))
}

func TestStatusMessage(t *testing.T) {
	require.Empty(t, statusMessage(domain.Continue))
	require.Equal(t, "You won! Press q to exit", statusMessage(domain.Won))
	require.Equal(t, "You lost. Press q to exit", statusMessage(domain.Lost))
}

func TestRunHint(t *testing.T) {
	s := newScreen(t, 80, 25)
	game := domain.NewGameFromBoard(rand.New(rand.NewSource(1)), 0, domain.NewBoardFromCells([4][4]int{
		{0, 0, 0, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}))

	s.InjectKey(tcell.KeyRune, 'h', tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	runUI(t, s, game, Options{
		Advisor: domain.NewSolver(domain.NewHeuristicEvaluator(), 1),
		Logger:  zerolog.Nop(),
	})

	got := line(s, helpRow)
	require.True(t, got == "Hint: Left" || got == "Hint: Down", "unexpected hint %q", got)
}

func TestRunWindowTooSmall(t *testing.T) {
	s := newScreen(t, 20, 5)
	game := domain.NewGame(rand.New(rand.NewSource(1)), 0)

	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	runUI(t, s, game, Options{Logger: zerolog.Nop()})

	require.Equal(t, "Window too small", line(s, 0))
}

func TestRunContextCancel(t *testing.T) {
	s := newScreen(t, 80, 25)
	game := domain.NewGame(rand.New(rand.NewSource(1)), 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, New(s, game, Options{Logger: zerolog.Nop()}).Run(ctx))
}

func TestCenter(t *testing.T) {
	require.Equal(t, "  2   ", center("2", 6))
	require.Equal(t, " 2048 ", center("2048", 6))
	require.Equal(t, "131072", center("1310720", 6))
}

func TestTileStyle(t *testing.T) {
	require.Equal(t, tcell.StyleDefault, tileStyle(0))

	fg, _, _ := tileStyle(4).Decompose()
	require.Equal(t, tcell.ColorAqua, fg)

	fg, _, _ = tileStyle(1 << 16).Decompose()
	require.Equal(t, tcell.ColorRed, fg)
}
