package engine

import "fmt"

// EventKind enumerates the abstract pointer gestures the game consumes.
type EventKind uint8

const (
	EventClick EventKind = iota
	EventDragBegin
	EventDrag
	EventDragEnd
)

func (k EventKind) String() string {
	switch k {
	case EventClick:
		return "click"
	case EventDragBegin:
		return "drag_begin"
	case EventDrag:
		return "drag"
	case EventDragEnd:
		return "drag_end"
	default:
		return fmt.Sprintf("event(%d)", uint8(k))
	}
}

// PointerEvent is a gesture at a point in game units.
type PointerEvent struct {
	Kind EventKind
	At   Point
}

// Handle dispatches a pointer event. It reports whether the event changed
// anything.
func (g *Game) Handle(ev PointerEvent) bool {
	switch ev.Kind {
	case EventClick:
		return g.OnClick(ev.At)
	case EventDragBegin:
		return g.OnDragBegin(ev.At)
	case EventDrag:
		return g.OnDrag(ev.At)
	case EventDragEnd:
		return g.OnDragEnd(ev.At)
	}
	return false
}

// OnClick deals from the stock when it is clicked, and collects the top
// card of a clicked waste or tableau stack.
func (g *Game) OnClick(p Point) bool {
	if !g.ready() {
		return false
	}
	if g.stock.BoundingRegion().Contains(p) {
		return g.DealCard()
	}
	if g.waste.TopHit(p) {
		return g.CollectCard(WasteRef)
	}
	for i, t := range g.tableaus {
		if t.TopHit(p) {
			return g.CollectCard(TableauRef(i))
		}
	}
	return false
}

// OnDragBegin picks up the draggable run under p, if any, into the drag
// stack.
func (g *Game) OnDragBegin(p Point) bool {
	if !g.ready() {
		return false
	}
	for _, s := range g.dragSources() {
		n := s.DragCountAt(p)
		if n == 0 {
			continue
		}
		g.CancelAnimations()
		from := s.Layout()[s.Size()-n]
		g.drag.Origin = from
		g.drag.push(s.Take(n))
		g.drag.Relayout()
		g.grab = grab{active: true, source: s, count: n, offset: p.Sub(from)}
		return true
	}
	return false
}

// OnDrag moves the held cards with the pointer.
func (g *Game) OnDrag(p Point) bool {
	if !g.grab.active || g.paused {
		return false
	}
	g.drag.Origin = p.Sub(g.grab.offset)
	g.drag.Relayout()
	return true
}

// OnDragEnd drops the held cards. A legal drop commits a transfer from the
// source stack; otherwise the cards slide back and history is untouched.
// It reports whether a move was committed.
func (g *Game) OnDragEnd(p Point) bool {
	if !g.OnDrag(p) {
		return false
	}
	target := g.dropTarget()
	src, n := g.grab.source, g.grab.count
	src.push(g.drag.Take(n))
	g.grab = grab{}
	if target == nil {
		g.register(layoutAnimation(src))
		return false
	}
	g.commit(g.withExposeFlip(src, NewTransfer(src, target, n)))
	return true
}

// abortDrag returns held cards to their source.
func (g *Game) abortDrag() {
	if !g.grab.active {
		return
	}
	src := g.grab.source
	src.push(g.drag.Take(g.drag.Size()))
	g.grab = grab{}
	g.register(layoutAnimation(src))
}

func (g *Game) dragSources() []*Stack {
	out := make([]*Stack, 0, NumTableaus+NumFoundations)
	out = append(out, g.tableaus[:]...)
	return append(out, g.foundations[:]...)
}

// dropTarget returns the accepting stack the held run overlaps most, or
// nil.
func (g *Game) dropTarget() *Stack {
	held := CardRect(g.drag.Origin)
	bottom := g.drag.Bottom()
	var (
		best     *Stack
		bestArea float64
	)
	for _, s := range g.dragSources() {
		if s == g.grab.source {
			continue
		}
		region := s.BoundingRegion()
		if !held.Intersects(region) {
			continue
		}
		if area := overlap(held, region); area > bestArea && s.CanAccept(bottom, g.grab.count) {
			best, bestArea = s, area
		}
	}
	return best
}

// overlap returns the shared area of two intersecting rectangles.
func overlap(a, b Rect) float64 {
	w := min(a.Max.X, b.Max.X) - max(a.Min.X, b.Min.X)
	h := min(a.Max.Y, b.Max.Y) - max(a.Min.Y, b.Min.Y)
	return w * h
}
