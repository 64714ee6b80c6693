package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/jason-s-yu/klondike/engine"
	"github.com/jason-s-yu/klondike/internal/session"
)

// gestureTracker turns raw button state into clicks and drags. A press
// released where it started is a click; moving while pressed starts a drag
// from the press point.
type gestureTracker struct {
	down     bool
	dragging bool
	origin   engine.Point
	last     engine.Point
}

// update feeds one mouse sample and returns the gestures it completes.
func (g *gestureTracker) update(pressed bool, at engine.Point) []engine.PointerEvent {
	switch {
	case pressed && !g.down:
		g.down, g.dragging = true, false
		g.origin, g.last = at, at
		return nil
	case pressed && at == g.last:
		return nil
	case pressed && !g.dragging:
		g.dragging, g.last = true, at
		return []engine.PointerEvent{
			{Kind: engine.EventDragBegin, At: g.origin},
			{Kind: engine.EventDrag, At: at},
		}
	case pressed:
		g.last = at
		return []engine.PointerEvent{{Kind: engine.EventDrag, At: at}}
	case g.down:
		g.down = false
		if g.dragging {
			g.dragging = false
			return []engine.PointerEvent{{Kind: engine.EventDragEnd, At: at}}
		}
		return []engine.PointerEvent{{Kind: engine.EventClick, At: g.origin}}
	}
	return nil
}

// keyAction is what a key press asks for.
type keyAction struct {
	cmd  session.Command
	quit bool
}

// actionForKey maps the key bindings. ok is false for unbound keys.
func actionForKey(ev *tcell.EventKey) (keyAction, bool) {
	switch ev.Key() {
	case tcell.KeyCtrlN:
		return keyAction{cmd: session.CmdNewGame}, true
	case tcell.KeyCtrlZ:
		return keyAction{cmd: session.CmdUndo}, true
	case tcell.KeyCtrlY:
		return keyAction{cmd: session.CmdRedo}, true
	case tcell.KeyEscape:
		return keyAction{cmd: session.CmdPause}, true
	case tcell.KeyCtrlC:
		return keyAction{quit: true}, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'd', 'D':
			return keyAction{cmd: session.CmdDeal}, true
		case 'c', 'C':
			return keyAction{cmd: session.CmdCollectAll}, true
		case 's', 'S', ' ':
			return keyAction{cmd: session.CmdSkip}, true
		case 'q', 'Q':
			return keyAction{quit: true}, true
		}
	}
	return keyAction{}, false
}
