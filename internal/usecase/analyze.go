package usecase

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nnaakkaaii/term2048/internal/domain"
)

// ErrBoardFormat は盤面の入力が不正な場合のエラー
var ErrBoardFormat = errors.New("invalid board")

// ParseBoard は16個の数値（0は空）から盤面を生成する
func ParseBoard(input string) (domain.Board, error) {
	parts := strings.Fields(input)
	if len(parts) != domain.Size*domain.Size {
		return domain.Board{}, fmt.Errorf("%w: need exactly %d numbers, got %d", ErrBoardFormat, domain.Size*domain.Size, len(parts))
	}

	var cells [domain.Size][domain.Size]int
	for i, p := range parts {
		val, err := strconv.Atoi(p)
		if err != nil {
			return domain.Board{}, fmt.Errorf("%w: %q: %v", ErrBoardFormat, p, err)
		}
		if val < 0 || (val != 0 && (val < 2 || val&(val-1) != 0)) {
			return domain.Board{}, fmt.Errorf("%w: %d is not a power of two", ErrBoardFormat, val)
		}
		cells[i/domain.Size][i%domain.Size] = val
	}
	return domain.NewBoardFromCells(cells), nil
}

// AnalyzeConfig は解析セッションの設定
type AnalyzeConfig struct {
	Target   int
	MaxDepth int
	Parallel bool
}

// Analyze は対話的に盤面を解析する
//
//	16個の数値     盤面を入力
//	move u|d|l|r   盤面を動かす（タイルは出現しない）
//	tile R C V     (R,C)にVを置く
//	depth N        探索深さを変更
//	quit           終了
func Analyze(r io.Reader, w io.Writer, config AnalyzeConfig) {
	scanner := bufio.NewScanner(r)
	depth := config.MaxDepth
	var board *domain.Board

	fmt.Fprintln(w, "=== 2048 Interactive Analyzer ===")
	fmt.Fprintln(w, "Enter board state as 16 numbers (0 for empty), or 'quit' to exit")
	fmt.Fprintln(w, "Example: 0 0 0 0 0 0 0 0 0 0 0 0 0 0 2 2")

	for {
		fmt.Fprint(w, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(w)
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "quit", "q":
			return
		case "depth":
			n, err := parseArg(fields, 1)
			if err != nil || n < 1 || n > 10 {
				fmt.Fprintln(w, "Invalid depth (must be 1-10)")
				continue
			}
			depth = n
		case "move":
			if board == nil {
				fmt.Fprintln(w, "Enter a board first")
				continue
			}
			dir, ok := parseDirectionArg(fields)
			if !ok {
				fmt.Fprintln(w, "Usage: move u|d|l|r")
				continue
			}
			if !board.Move(dir) {
				fmt.Fprintf(w, "Cannot move %s\n", dir)
				continue
			}
		case "tile":
			if board == nil {
				fmt.Fprintln(w, "Enter a board first")
				continue
			}
			row, err1 := parseArg(fields, 1)
			col, err2 := parseArg(fields, 2)
			val, err3 := parseArg(fields, 3)
			if err1 != nil || err2 != nil || err3 != nil ||
				row < 0 || row >= domain.Size || col < 0 || col >= domain.Size ||
				(val != 2 && val != 4) || board.Get(row, col) != 0 {
				fmt.Fprintln(w, "Usage: tile ROW COL 2|4 (on an empty cell)")
				continue
			}
			board.Set(row, col, val)
		default:
			b, err := ParseBoard(scanner.Text())
			if err != nil {
				fmt.Fprintf(w, "Error: %v\n", err)
				continue
			}
			board = &b
		}

		if board != nil {
			report(w, *board, config, depth)
		}
	}
}

func report(w io.Writer, board domain.Board, config AnalyzeConfig, depth int) {
	fmt.Fprintln(w)
	fmt.Fprint(w, board)
	fmt.Fprintf(w, "Score: %d, Status: %s\n", board.Score(), board.Status(targetOrDefault(config.Target)))

	var scores map[domain.Direction]float64
	if config.Parallel {
		scores = domain.NewParallelSolver(domain.NewHeuristicEvaluator(), depth).Analyze(board)
	} else {
		scores = domain.NewSolver(domain.NewHeuristicEvaluator(), depth).Analyze(board)
	}
	best, ok := domain.BestDirection(scores)
	if !ok {
		fmt.Fprintln(w, "No valid moves available!")
		return
	}

	fmt.Fprintf(w, "Search depth: %d\n", depth)
	fmt.Fprintf(w, "=== Recommended move: %s ===\n", best)
	for _, dir := range domain.Directions {
		score, ok := scores[dir]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %s: %.2f", dir, score)
		if dir == best {
			fmt.Fprint(w, " <- BEST")
		}
		fmt.Fprintln(w)
	}
}

func targetOrDefault(target int) int {
	if target <= 0 {
		return domain.DefaultTarget
	}
	return target
}

func parseArg(fields []string, i int) (int, error) {
	if i >= len(fields) {
		return 0, fmt.Errorf("missing argument %d", i)
	}
	return strconv.Atoi(fields[i])
}

func parseDirectionArg(fields []string) (domain.Direction, bool) {
	if len(fields) != 2 {
		return 0, false
	}
	switch fields[1] {
	case "u":
		return domain.Up, true
	case "d":
		return domain.Down, true
	case "l":
		return domain.Left, true
	case "r":
		return domain.Right, true
	default:
		return 0, false
	}
}
