package domain

import "testing"

func TestCommandDirection(t *testing.T) {
	for _, dir := range Directions {
		cmd := CommandFor(dir)
		got, ok := cmd.Direction()
		if !ok || got != dir {
			t.Errorf("CommandFor(%s).Direction() = %s, %v", dir, got, ok)
		}
	}

	for _, cmd := range []Command{CommandNone, CommandHint, CommandQuit} {
		if _, ok := cmd.Direction(); ok {
			t.Errorf("%s should not map to a direction", cmd)
		}
	}
}
