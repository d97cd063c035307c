// Package tui はtcellを使った端末上のゲームループ
package tui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/nnaakkaaii/term2048/internal/domain"
)

// Options はUIの設定
type Options struct {
	Advisor domain.Advisor // nilならヒントキーは無効
	Logger  zerolog.Logger
}

// UI は1つのゲームを画面に描画し、キー入力で進める
type UI struct {
	screen  tcell.Screen
	game    *domain.Game
	opts    Options
	message string
}

// New はUIを生成する。screenは初期化済みであること
func New(screen tcell.Screen, game *domain.Game, opts Options) *UI {
	return &UI{
		screen: screen,
		game:   game,
		opts:   opts,
	}
}

// Run は終了コマンドかctxのキャンセルまでイベントを処理する
func (u *UI) Run(ctx context.Context) error {
	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)
	go u.screen.ChannelEvents(events, quit)

	u.opts.Logger.Info().Int("target", u.game.Target()).Stringer("status", u.game.Status()).Msg("game started")
	u.message = statusMessage(u.game.Status())
	u.draw()

	for {
		select {
		case <-ctx.Done():
			u.opts.Logger.Info().Int("score", u.game.Score()).Msg("interrupted")
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if u.handle(ev) {
				return nil
			}
		}
	}
}

// handle はイベントを1つ処理し、終了すべきならtrueを返す
func (u *UI) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		u.screen.Sync()
		u.draw()
	case *tcell.EventKey:
		cmd := DecodeKey(ev)
		switch cmd {
		case domain.CommandNone:
			return false
		case domain.CommandHint:
			u.message = u.hint()
			u.draw()
			return false
		}

		turn := u.game.Step(cmd)
		if turn.Quit {
			u.opts.Logger.Info().
				Int("score", u.game.Score()).
				Int("moves", u.game.Moves()).
				Stringer("status", u.game.Status()).
				Msg("game quit")
			return true
		}
		if !turn.Moved {
			return false
		}

		u.opts.Logger.Debug().Stringer("command", cmd).Int("score", u.game.Score()).Msg("turn")
		u.message = statusMessage(turn.Status)
		if turn.Status.Finished() {
			u.opts.Logger.Info().
				Int("score", u.game.Score()).
				Int("moves", u.game.Moves()).
				Stringer("status", turn.Status).
				Msg("game over")
		}
		u.draw()
	}
	return false
}

// statusMessage は終了状態のときヘルプ行に出す文言を返す
func statusMessage(status domain.Status) string {
	switch status {
	case domain.Won:
		return "You won! Press q to exit"
	case domain.Lost:
		return "You lost. Press q to exit"
	default:
		return ""
	}
}

func (u *UI) hint() string {
	if u.game.Status().Finished() {
		return u.message
	}
	if u.opts.Advisor == nil {
		return "No hint available"
	}
	dir, ok := u.opts.Advisor.BestMove(u.game.Board())
	if !ok {
		return "No move left"
	}
	return fmt.Sprintf("Hint: %s", dir)
}
