package engine

import (
	"math"
	"time"
)

// Animation is a time-driven, purely presentational progression. It never
// touches logical state: only Card.Pos, Card.ScaleX and Card.ShowFace.
type Animation interface {
	// Tick advances the animation by dt. Negative deltas count as zero.
	Tick(dt time.Duration)
	// Cancel force-completes the animation, applying its final state.
	Cancel()
	Done() bool
	// Progress is in [0, 1] and never decreases.
	Progress() float64
}

// clock is the shared elapsed/done bookkeeping of leaf animations.
type clock struct {
	elapsed time.Duration
	done    bool
}

func (c *clock) advance(dt time.Duration) {
	if dt > 0 {
		c.elapsed += dt
	}
	if c.elapsed >= AnimationDuration {
		c.elapsed = AnimationDuration
		c.done = true
	}
}

func (c *clock) finish() {
	c.elapsed = AnimationDuration
	c.done = true
}

func (c *clock) Done() bool { return c.done }

func (c *clock) Progress() float64 {
	return float64(c.elapsed) / float64(AnimationDuration)
}

// ---------------------------------------------------------------------------
// Tween
// ---------------------------------------------------------------------------

// Tween moves a card linearly to a target position. The start position is
// taken from the card when the tween first ticks, so tweens queued behind
// others in a sequence begin from wherever the card was left.
type Tween struct {
	clock
	card    *Card
	target  Point
	start   Point
	started bool
}

// NewTween returns a tween moving c to target.
func NewTween(c *Card, target Point) *Tween {
	return &Tween{card: c, target: target}
}

func (t *Tween) Tick(dt time.Duration) {
	if t.done {
		return
	}
	if !t.started {
		t.start = t.card.Pos
		t.started = true
	}
	t.advance(dt)
	t.card.Pos = t.start.Lerp(t.target, t.Progress())
}

func (t *Tween) Cancel() {
	t.finish()
	t.card.Pos = t.target
}

// Target returns the position the card ends up at.
func (t *Tween) Target() Point { return t.target }

// ---------------------------------------------------------------------------
// FlipTween
// ---------------------------------------------------------------------------

// FlipTween plays a card turning over: the horizontal scale shrinks to zero
// and grows back, and the displayed face switches at the halfway point.
type FlipTween struct {
	clock
	card   *Card
	faceUp bool
}

// NewFlipTween returns a flip animation ending on the card's current
// logical face.
func NewFlipTween(c *Card) *FlipTween {
	return &FlipTween{card: c, faceUp: c.FaceUp}
}

func (f *FlipTween) Tick(dt time.Duration) {
	if f.done {
		return
	}
	f.advance(dt)
	p := f.Progress()
	f.card.ScaleX = math.Abs(2*p - 1)
	if p > 0.5 {
		f.card.ShowFace = f.faceUp
	} else {
		f.card.ShowFace = !f.faceUp
	}
	if f.done {
		f.card.ScaleX = 1
	}
}

func (f *FlipTween) Cancel() {
	f.finish()
	f.card.ScaleX = 1
	f.card.ShowFace = f.faceUp
}

// ---------------------------------------------------------------------------
// Groups
// ---------------------------------------------------------------------------

// ConcurrentAnimation plays all children at once and is done when every
// child is done.
type ConcurrentAnimation struct {
	children []Animation
	done     bool
}

// NewConcurrentAnimation groups children to play together. Nil children are
// dropped.
func NewConcurrentAnimation(children ...Animation) *ConcurrentAnimation {
	a := &ConcurrentAnimation{children: compact(children)}
	a.done = allDone(a.children)
	return a
}

func (a *ConcurrentAnimation) Tick(dt time.Duration) {
	if a.done {
		return
	}
	for _, c := range a.children {
		c.Tick(dt)
	}
	a.done = allDone(a.children)
}

func (a *ConcurrentAnimation) Cancel() {
	for _, c := range a.children {
		if !c.Done() {
			c.Cancel()
		}
	}
	a.done = true
}

func (a *ConcurrentAnimation) Done() bool { return a.done }

// Progress is the progress of the slowest child.
func (a *ConcurrentAnimation) Progress() float64 {
	if a.done {
		return 1
	}
	p := 1.0
	for _, c := range a.children {
		p = min(p, c.Progress())
	}
	return p
}

// Children returns the grouped animations.
func (a *ConcurrentAnimation) Children() []Animation { return a.children }

// SequentialAnimation plays children one at a time, moving to the next only
// once the current one is done.
type SequentialAnimation struct {
	children []Animation
	cursor   int
}

// NewSequentialAnimation groups children to play in order. Nil children are
// dropped.
func NewSequentialAnimation(children ...Animation) *SequentialAnimation {
	a := &SequentialAnimation{children: compact(children)}
	a.skipDone()
	return a
}

func (a *SequentialAnimation) Tick(dt time.Duration) {
	if a.Done() {
		return
	}
	a.children[a.cursor].Tick(dt)
	a.skipDone()
}

// Cancel finishes the current child and every child not yet started.
func (a *SequentialAnimation) Cancel() {
	for ; a.cursor < len(a.children); a.cursor++ {
		if c := a.children[a.cursor]; !c.Done() {
			c.Cancel()
		}
	}
}

func (a *SequentialAnimation) Done() bool { return a.cursor >= len(a.children) }

func (a *SequentialAnimation) Progress() float64 {
	if a.Done() {
		return 1
	}
	return (float64(a.cursor) + a.children[a.cursor].Progress()) / float64(len(a.children))
}

// Current returns the playing child, or nil once done.
func (a *SequentialAnimation) Current() Animation {
	if a.Done() {
		return nil
	}
	return a.children[a.cursor]
}

func (a *SequentialAnimation) skipDone() {
	for a.cursor < len(a.children) && a.children[a.cursor].Done() {
		a.cursor++
	}
}

func compact(in []Animation) []Animation {
	out := make([]Animation, 0, len(in))
	for _, a := range in {
		if a != nil {
			out = append(out, a)
		}
	}
	return out
}

func allDone(as []Animation) bool {
	for _, a := range as {
		if !a.Done() {
			return false
		}
	}
	return true
}
