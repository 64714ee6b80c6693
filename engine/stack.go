package engine

import "fmt"

// StackKind selects the layout and legality rules of a Stack.
type StackKind uint8

const (
	KindTableau    StackKind = iota // fanned down, built in alternating colors
	KindFoundation                  // squared, built up by suit
	KindStock                       // squared draw pile
	KindWaste                       // fanned sideways, last three visible
	KindDrag                        // follows the pointer during a drag
)

func (k StackKind) String() string {
	switch k {
	case KindTableau:
		return "tableau"
	case KindFoundation:
		return "foundation"
	case KindStock:
		return "stock"
	case KindWaste:
		return "waste"
	case KindDrag:
		return "drag"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Stack is an ordered pile of cards, bottom first. A card is held by
// exactly one stack at a time; stacks never copy cards.
type Stack struct {
	Kind   StackKind
	Origin Point

	cards []*Card
}

// NewStack creates an empty stack of the given kind at origin.
func NewStack(kind StackKind, origin Point) *Stack {
	return &Stack{Kind: kind, Origin: origin, cards: make([]*Card, 0, DeckSize)}
}

// Size returns the number of cards in the stack.
func (s *Stack) Size() int { return len(s.cards) }

// IsEmpty reports whether the stack holds no cards.
func (s *Stack) IsEmpty() bool { return len(s.cards) == 0 }

// Top returns the top card, or nil if the stack is empty.
func (s *Stack) Top() *Card {
	if len(s.cards) == 0 {
		return nil
	}
	return s.cards[len(s.cards)-1]
}

// Bottom returns the bottom card, or nil if the stack is empty.
func (s *Stack) Bottom() *Card {
	if len(s.cards) == 0 {
		return nil
	}
	return s.cards[0]
}

// At returns the card at index i counted from the bottom.
func (s *Stack) At(i int) *Card { return s.cards[i] }

// Cards returns a copy of the card sequence, bottom to top.
func (s *Stack) Cards() []*Card {
	out := make([]*Card, len(s.cards))
	copy(out, s.cards)
	return out
}

// Add appends a card and snaps it to its layout position.
func (s *Stack) Add(c *Card) { s.AddAll([]*Card{c}) }

// AddAll appends cards in order and snaps the appended cards to their
// layout positions.
func (s *Stack) AddAll(cards []*Card) {
	first := len(s.cards)
	s.push(cards)
	pos := s.Layout()
	for i := first; i < len(s.cards); i++ {
		s.cards[i].Pos = pos[i]
	}
}

// push appends cards without touching their presentation; the animation
// produced by the mutating move owns the visual transition.
func (s *Stack) push(cards []*Card) {
	s.cards = append(s.cards, cards...)
}

// Take removes and returns the top n cards, bottom-to-top order preserved.
// Taking more cards than the stack holds is an internal consistency fault.
func (s *Stack) Take(n int) []*Card {
	if n < 0 || n > len(s.cards) {
		panic(fmt.Sprintf("engine: take %d from %s stack of %d cards", n, s.Kind, len(s.cards)))
	}
	cut := len(s.cards) - n
	out := make([]*Card, n)
	copy(out, s.cards[cut:])
	for i := cut; i < len(s.cards); i++ {
		s.cards[i] = nil
	}
	s.cards = s.cards[:cut]
	return out
}

// Relayout snaps every card to its layout position.
func (s *Stack) Relayout() {
	for i, p := range s.Layout() {
		s.cards[i].Pos = p
	}
}

// Layout returns the target position of every card, bottom to top. It is
// a pure function of the origin, the cards and their face state.
func (s *Stack) Layout() []Point {
	pos := make([]Point, len(s.cards))
	switch s.Kind {
	case KindTableau, KindDrag:
		p := s.Origin
		for i, c := range s.cards {
			pos[i] = p
			if c.FaceUp {
				p.Y += TableauOpenGap
			} else {
				p.Y += TableauClosedGap
			}
		}
	case KindWaste:
		fanFrom := max(len(s.cards)-WasteFanSize, 0)
		for i := range s.cards {
			pos[i] = s.Origin
			if i > fanFrom {
				pos[i].X += float64(i-fanFrom) * WasteFanGap
			}
		}
	default:
		for i := range s.cards {
			pos[i] = s.Origin
		}
	}
	return pos
}

// BoundingRegion returns the area covered by the stack's laid-out cards,
// or a single card slot at the origin when empty.
func (s *Stack) BoundingRegion() Rect {
	r := CardRect(s.Origin)
	for _, p := range s.Layout() {
		r = r.Union(CardRect(p))
	}
	return r
}

// CanAccept reports whether a run of amount cards whose bottom card is c
// may be dropped onto the stack.
func (s *Stack) CanAccept(c *Card, amount int) bool {
	if c == nil || amount < 1 {
		return false
	}
	top := s.Top()
	switch s.Kind {
	case KindTableau:
		if top == nil {
			return c.Rank() == RankKing
		}
		return top.Color() != c.Color() && c.Rank().IsPrevious(top.Rank())
	case KindFoundation:
		if amount != 1 {
			return false
		}
		if top == nil {
			return c.Rank() == RankAce
		}
		return top.Suit() == c.Suit() && c.Rank().IsNext(top.Rank())
	default:
		return false
	}
}

// DragCountAt returns how many cards, counted from the top, a drag
// starting at p would pick up. Zero means nothing is draggable there.
func (s *Stack) DragCountAt(p Point) int {
	if len(s.cards) == 0 {
		return 0
	}
	switch s.Kind {
	case KindTableau:
		i := s.hitIndex(p)
		if i < 0 || !s.cards[i].FaceUp {
			return 0
		}
		return len(s.cards) - i
	case KindFoundation:
		if CardRect(s.Origin).Contains(p) {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// hitIndex returns the index of the topmost card whose visible area
// contains p, or -1. Every card but the top is occluded below the offset
// of the card above it.
func (s *Stack) hitIndex(p Point) int {
	pos := s.Layout()
	for i := len(pos) - 1; i >= 0; i-- {
		r := CardRect(pos[i])
		if i < len(pos)-1 {
			r.Max.Y = pos[i+1].Y
		}
		if r.Contains(p) {
			return i
		}
	}
	return -1
}

// TopHit reports whether p lies on the visible top card.
func (s *Stack) TopHit(p Point) bool {
	if len(s.cards) == 0 {
		return false
	}
	pos := s.Layout()
	return CardRect(pos[len(pos)-1]).Contains(p)
}
