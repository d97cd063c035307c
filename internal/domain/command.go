package domain

// Command は入力層でデコード済みのプレイヤー操作
type Command int

const (
	// CommandNone は認識できない入力。状態は変化しない
	CommandNone Command = iota
	CommandUp
	CommandDown
	CommandLeft
	CommandRight
	CommandHint
	CommandQuit
)

func (c Command) String() string {
	switch c {
	case CommandUp:
		return "up"
	case CommandDown:
		return "down"
	case CommandLeft:
		return "left"
	case CommandRight:
		return "right"
	case CommandHint:
		return "hint"
	case CommandQuit:
		return "quit"
	default:
		return "none"
	}
}

// Direction は移動コマンドに対応する方向を返す
// 移動コマンドでなければokはfalse
func (c Command) Direction() (dir Direction, ok bool) {
	switch c {
	case CommandUp:
		return Up, true
	case CommandDown:
		return Down, true
	case CommandLeft:
		return Left, true
	case CommandRight:
		return Right, true
	default:
		return 0, false
	}
}

// CommandFor は方向に対応する移動コマンドを返す
func CommandFor(dir Direction) Command {
	switch dir {
	case Up:
		return CommandUp
	case Down:
		return CommandDown
	case Left:
		return CommandLeft
	case Right:
		return CommandRight
	default:
		return CommandNone
	}
}

// Spawn は出現したタイルの位置と値
type Spawn struct {
	Row, Col int
	Value    int
}

// Turn は1つのコマンドを処理した結果
type Turn struct {
	Moved   bool
	Status  Status
	Quit    bool
	Spawned *Spawn
}
