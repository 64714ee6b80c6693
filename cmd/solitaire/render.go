package main

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jason-s-yu/klondike/engine"
)

// scaler maps game units to terminal cells and back. One cell is sx game
// units wide and sy tall; the bottom row is kept for the status line.
type scaler struct {
	sx, sy float64
}

const (
	minCellWidth  = 5.0
	minCellHeight = 10.0
)

func newScaler(cols, rows int) scaler {
	sc := scaler{sx: minCellWidth, sy: minCellHeight}
	if cols > 0 {
		sc.sx = math.Max(minCellWidth, engine.BoardWidth/float64(cols))
	}
	if rows > 1 {
		sc.sy = math.Max(minCellHeight, engine.BoardHeight/float64(rows-1))
	}
	return sc
}

// toCell returns the cell containing game point p.
func (sc scaler) toCell(p engine.Point) (int, int) {
	return int(math.Floor(p.X / sc.sx)), int(math.Floor(p.Y / sc.sy))
}

// toGame returns the game point at the centre of cell (x, y).
func (sc scaler) toGame(x, y int) engine.Point {
	return engine.Point{X: (float64(x) + 0.5) * sc.sx, Y: (float64(y) + 0.5) * sc.sy}
}

var (
	styleTable = tcell.StyleDefault.Background(tcell.ColorDarkGreen).Foreground(tcell.ColorWhite)
	styleSlot  = styleTable.Foreground(tcell.ColorLightGreen)
	styleFace  = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	styleRed   = styleFace.Foreground(tcell.ColorRed)
	styleBack  = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorLightBlue)
	styleBar   = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
)

var suitSymbols = [engine.NumSuits]rune{'♠', '♣', '♥', '♦'}

// renderer draws engine views onto a tcell screen.
type renderer struct {
	screen tcell.Screen
}

func newRenderer(s tcell.Screen) *renderer {
	return &renderer{screen: s}
}

// scaler returns the mapping for the current screen size.
func (r *renderer) scaler() scaler {
	return newScaler(r.screen.Size())
}

// draw renders one frame.
func (r *renderer) draw(v engine.View) {
	cols, rows := r.screen.Size()
	sc := newScaler(cols, rows)
	fill(r.screen, 0, 0, cols, rows, ' ', styleTable)

	for _, sv := range v.Stacks {
		if len(sv.Cards) == 0 && sv.Ref.Kind != engine.KindDrag {
			r.drawSlot(sc, sv.Region)
		}
		for _, c := range sv.Cards {
			r.drawCard(sc, c)
		}
	}
	r.drawStatus(v, cols, rows)
	r.screen.Show()
}

func (r *renderer) drawSlot(sc scaler, region engine.Rect) {
	x0, y0 := sc.toCell(region.Min)
	x1, y1 := sc.toCell(engine.Point{X: region.Min.X + engine.CardWidth, Y: region.Min.Y + engine.CardHeight})
	box(r.screen, x0, y0, x1-x0, y1-y0, styleSlot, '·', '·', '·')
}

func (r *renderer) drawCard(sc scaler, c engine.CardView) {
	x0, y0 := sc.toCell(c.Pos)
	x1, y1 := sc.toCell(c.Pos.Add(engine.Point{X: engine.CardWidth, Y: engine.CardHeight}))
	w, h := max(x1-x0, 1), max(y1-y0, 1)

	// Flips squeeze the card towards its vertical centre line.
	sw := max(int(math.Round(float64(w)*c.ScaleX)), 1)
	x0 += (w - sw) / 2
	w = sw

	if c.Texture == engine.TextureBack {
		box(r.screen, x0, y0, w, h, styleBack, '─', '│', '▒')
		return
	}
	style := styleFace
	if c.ID.Color() == engine.Red {
		style = styleRed
	}
	box(r.screen, x0, y0, w, h, style, '─', '│', ' ')
	if w >= 4 && h >= 2 {
		label := []rune(c.ID.Rank().String())
		label = append(label, suitSymbols[c.ID.Suit()])
		text(r.screen, x0+1, y0+1, string(label), style)
	}
}

func (r *renderer) drawStatus(v engine.View, cols, rows int) {
	if rows < 1 {
		return
	}
	y := rows - 1
	fill(r.screen, 0, y, cols, 1, ' ', styleBar)
	status := fmt.Sprintf(" Seed %d  Moves %d  Time %s", v.Seed, v.Moves, clock(v.Elapsed))
	switch v.State {
	case engine.StatePaused:
		status += "  [paused]"
	case engine.StateWon:
		status += "  *** You won! ***"
	}
	status += "  | d deal  c collect  ^Z undo  ^Y redo  s skip  esc pause  ^N new  q quit"
	text(r.screen, 0, y, status, styleBar)
}

func clock(d time.Duration) string {
	d = d.Truncate(time.Second)
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// ---------------------------------------------------------------------------
// Cell helpers
// ---------------------------------------------------------------------------

func fill(s tcell.Screen, x, y, w, h int, ch rune, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			s.SetContent(col, row, ch, nil, style)
		}
	}
}

// box draws a w×h rectangle with a light border and the given fill rune.
func box(s tcell.Screen, x, y, w, h int, style tcell.Style, horiz, vert, inner rune) {
	if w <= 0 || h <= 0 {
		return
	}
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			ch := inner
			top, bottom := row == 0, row == h-1
			left, right := col == 0, col == w-1
			switch {
			case w == 1:
				ch = vert
			case top && left:
				ch = '┌'
			case top && right:
				ch = '┐'
			case bottom && left && h > 1:
				ch = '└'
			case bottom && right && h > 1:
				ch = '┘'
			case top || bottom:
				ch = horiz
			case left || right:
				ch = vert
			}
			s.SetContent(x+col, y+row, ch, nil, style)
		}
	}
}

func text(s tcell.Screen, x, y int, str string, style tcell.Style) {
	for i, ch := range []rune(str) {
		s.SetContent(x+i, y, ch, nil, style)
	}
}
