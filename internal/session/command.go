package session

import (
	"errors"
	"fmt"
)

// Command is a keyboard-level request against the running game.
type Command uint8

const (
	CmdNewGame    Command = iota // shuffle and deal a fresh random game
	CmdDeal                      // turn a stock card, or recycle the waste
	CmdCollectAll                // send every collectable card to the foundations
	CmdUndo
	CmdRedo
	CmdSkip  // finish every running animation
	CmdPause // toggle pause
)

var (
	// ErrUnknownCommand is returned for a Command outside the defined set.
	ErrUnknownCommand = errors.New("session: unknown command")
	// ErrClosed is returned once the session has been closed.
	ErrClosed = errors.New("session: closed")
)

var commandNames = map[Command]string{
	CmdNewGame:    "new_game",
	CmdDeal:       "deal",
	CmdCollectAll: "collect_all",
	CmdUndo:       "undo",
	CmdRedo:       "redo",
	CmdSkip:       "skip",
	CmdPause:      "pause",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("command(%d)", uint8(c))
}

// ParseCommand maps a command name back to its Command.
func ParseCommand(name string) (Command, error) {
	for c, n := range commandNames {
		if n == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}
