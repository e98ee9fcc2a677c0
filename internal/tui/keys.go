package tui

import "github.com/hersh/blockfall/internal/game"

// commandForKey maps a key during play to an engine command. Unknown keys
// give CmdNone, which also releases acceleration.
func commandForKey(key string) game.Command {
	switch key {
	case "a", "left", "h":
		return game.CmdMoveLeft
	case "d", "right", "l":
		return game.CmdMoveRight
	case "w", "up", "x":
		return game.CmdRotate
	case "s", "down", "j":
		return game.CmdAccelerate
	case "q":
		return game.CmdQuit
	}
	return game.CmdNone
}
