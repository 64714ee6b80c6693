package engine

import "time"

// Board geometry, in game units. The renderer scales these to the screen.
const (
	CardWidth  = 50
	CardHeight = 70

	// TableauClosedGap is the vertical offset below a face-down card,
	// TableauOpenGap the offset below a face-up one.
	TableauClosedGap = 10
	TableauOpenGap   = 20

	// WasteFanGap is the horizontal offset between the fanned waste cards.
	WasteFanGap  = 15
	WasteFanSize = 3

	ColumnGap = 60

	BoardWidth  = 7*ColumnGap + 20
	BoardHeight = 110 + CardHeight + 18*TableauOpenGap + 6*TableauClosedGap
)

const (
	NumTableaus    = 7
	NumFoundations = 4
)

// AnimationDuration is the fixed length of every leaf animation.
const AnimationDuration = 150 * time.Millisecond

// Layout holds the origins of every stack on the board.
type Layout struct {
	Stock       Point
	Waste       Point
	Foundations [NumFoundations]Point
	Tableaus    [NumTableaus]Point
}

// DefaultLayout returns the standard Klondike board arrangement.
func DefaultLayout() Layout {
	var l Layout
	l.Stock = Point{X: 20, Y: 20}
	l.Waste = Point{X: 80, Y: 20}
	for i := range l.Foundations {
		l.Foundations[i] = Point{X: 200 + float64(i)*ColumnGap, Y: 20}
	}
	for i := range l.Tableaus {
		l.Tableaus[i] = Point{X: 20 + float64(i)*ColumnGap, Y: 110}
	}
	return l
}

// Point is a position in game units.
type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Lerp interpolates linearly between p and q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// Rect is an axis-aligned rectangle; Max is exclusive.
type Rect struct {
	Min, Max Point
}

// CardRect returns the rectangle covered by a card drawn at p.
func CardRect(p Point) Rect {
	return Rect{Min: p, Max: Point{X: p.X + CardWidth, Y: p.Y + CardHeight}}
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Intersects reports whether r and o overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.Min.X < o.Max.X && o.Min.X < r.Max.X && r.Min.Y < o.Max.Y && o.Min.Y < r.Max.Y
}

// Union returns the smallest rectangle containing r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Min: Point{X: min(r.Min.X, o.Min.X), Y: min(r.Min.Y, o.Min.Y)},
		Max: Point{X: max(r.Max.X, o.Max.X), Y: max(r.Max.Y, o.Max.Y)},
	}
}
