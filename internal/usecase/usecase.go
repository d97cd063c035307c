package usecase

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/nnaakkaaii/term2048/internal/domain"
)

// Summary はゲーム終了時の結果
type Summary struct {
	Status  domain.Status
	Score   int
	Moves   int
	MaxTile int
	Quit    bool
}

func summarize(game *domain.Game, quit bool) Summary {
	board := game.Board()
	return Summary{
		Status:  game.Status(),
		Score:   game.Score(),
		Moves:   game.Moves(),
		MaxTile: board.MaxTile(),
		Quit:    quit,
	}
}

// PlayConfig はCLIプレイの設定
type PlayConfig struct {
	Target  int
	Advisor domain.Advisor // nilならヒントは出さない
	Logger  zerolog.Logger
}

// PlayGame はCLIで2048ゲームを実行する
func PlayGame(r io.Reader, w io.Writer, rng domain.Rand, config PlayConfig) Summary {
	game := domain.NewGame(rng, config.Target)
	reader := bufio.NewReader(r)
	log := config.Logger

	log.Info().Int("target", game.Target()).Msg("game started")

	fmt.Fprintln(w, "=== 2048 ===")
	fmt.Fprintf(w, "Join the numbers and get to the %d tile!\n", game.Target())
	fmt.Fprintln(w, "Controls: w=Up, s=Down, a=Left, d=Right, h=Hint, q=Quit")
	fmt.Fprintln(w)

	for {
		fmt.Fprint(w, game.Board())
		fmt.Fprintf(w, "Score: %d\n", game.Score())

		switch game.Status() {
		case domain.Won:
			fmt.Fprintln(w, "You won!")
			log.Info().Int("score", game.Score()).Int("moves", game.Moves()).Msg("game won")
			return summarize(game, false)
		case domain.Lost:
			fmt.Fprintln(w, "You lost.")
			log.Info().Int("score", game.Score()).Int("moves", game.Moves()).Msg("game lost")
			return summarize(game, false)
		}

		fmt.Fprint(w, "Move: ")
		input, err := reader.ReadString('\n')
		if err != nil && strings.TrimSpace(input) == "" {
			fmt.Fprintln(w)
			return summarize(game, true)
		}

		cmd := ParseCommand(input)
		switch cmd {
		case domain.CommandNone:
			fmt.Fprintln(w, "Invalid input. Use w/a/s/d, h for a hint or q to quit.")
			continue
		case domain.CommandHint:
			fmt.Fprintln(w, hintMessage(config.Advisor, game.Board()))
			continue
		}

		turn := game.Step(cmd)
		if turn.Quit {
			fmt.Fprintln(w, "Quit.")
			log.Info().Int("score", game.Score()).Msg("game quit")
			return summarize(game, true)
		}
		if !turn.Moved {
			fmt.Fprintln(w, "Cannot move in that direction.")
		} else {
			log.Debug().Stringer("command", cmd).Int("score", game.Score()).Msg("turn")
		}
		fmt.Fprintln(w)
	}
}

// ParseCommand は1行の入力をコマンドに変換する
func ParseCommand(input string) domain.Command {
	switch strings.TrimSpace(strings.ToLower(input)) {
	case "w":
		return domain.CommandUp
	case "s":
		return domain.CommandDown
	case "a":
		return domain.CommandLeft
	case "d":
		return domain.CommandRight
	case "h":
		return domain.CommandHint
	case "q":
		return domain.CommandQuit
	default:
		return domain.CommandNone
	}
}

func hintMessage(advisor domain.Advisor, board domain.Board) string {
	if advisor == nil {
		return "No hint available."
	}
	dir, ok := advisor.BestMove(board)
	if !ok {
		return "No move left."
	}
	return fmt.Sprintf("Hint: %s", dir)
}
