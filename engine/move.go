package engine

import "slices"

// Move is a reversible unit of game mutation. A move records what moves
// between which stacks before anything is mutated; Apply and Revert then
// run unconditionally, legality having been checked by the caller.
// Revert restores exactly the card order and face states that held before
// Apply. Both return the animation that plays the change.
type Move interface {
	Apply() Animation
	Revert() Animation
}

// ---------------------------------------------------------------------------
// Transfer
// ---------------------------------------------------------------------------

// Transfer moves Amount cards from the top of From to the top of To. With
// Reverse set the moved run is reversed, as when the waste is turned back
// into the stock.
type Transfer struct {
	From    *Stack
	To      *Stack
	Amount  int
	Reverse bool
}

// NewTransfer builds a transfer of amount cards.
func NewTransfer(from, to *Stack, amount int) *Transfer {
	return &Transfer{From: from, To: to, Amount: amount}
}

func (t *Transfer) Apply() Animation { return t.shift(t.From, t.To) }

func (t *Transfer) Revert() Animation { return t.shift(t.To, t.From) }

func (t *Transfer) shift(from, to *Stack) Animation {
	cards := from.Take(t.Amount)
	if t.Reverse {
		slices.Reverse(cards)
	}
	to.push(cards)
	return NewConcurrentAnimation(layoutAnimation(from), layoutAnimation(to))
}

// layoutAnimation tweens every card of s to its layout position.
func layoutAnimation(s *Stack) Animation {
	pos := s.Layout()
	tweens := make([]Animation, len(pos))
	for i, p := range pos {
		tweens[i] = NewTween(s.cards[i], p)
	}
	return NewConcurrentAnimation(tweens...)
}

// ---------------------------------------------------------------------------
// Flip
// ---------------------------------------------------------------------------

// Flip turns one card over. It is its own inverse.
type Flip struct {
	Card *Card
}

// NewFlip builds a flip of c.
func NewFlip(c *Card) *Flip { return &Flip{Card: c} }

func (f *Flip) Apply() Animation {
	f.Card.Flip()
	return NewFlipTween(f.Card)
}

func (f *Flip) Revert() Animation { return f.Apply() }

// ---------------------------------------------------------------------------
// Groups
// ---------------------------------------------------------------------------

// Concurrent applies sub-moves with no ordering between them; their
// animations play together. Sub-moves must not depend on each other's
// order.
type Concurrent []Move

func (c Concurrent) Apply() Animation {
	anims := make([]Animation, len(c))
	for i, m := range c {
		anims[i] = m.Apply()
	}
	return NewConcurrentAnimation(anims...)
}

func (c Concurrent) Revert() Animation {
	anims := make([]Animation, len(c))
	for i, m := range c {
		anims[i] = m.Revert()
	}
	return NewConcurrentAnimation(anims...)
}

// Sequential applies sub-moves in order and reverts them in reverse order;
// their animations play one after another.
type Sequential []Move

func (s Sequential) Apply() Animation {
	anims := make([]Animation, len(s))
	for i, m := range s {
		anims[i] = m.Apply()
	}
	return NewSequentialAnimation(anims...)
}

func (s Sequential) Revert() Animation {
	anims := make([]Animation, 0, len(s))
	for i := len(s) - 1; i >= 0; i-- {
		anims = append(anims, s[i].Revert())
	}
	return NewSequentialAnimation(anims...)
}
