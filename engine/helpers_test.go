package engine

import (
	"testing"
)

// newDealtGame returns a game dealt from a fixed seed with the deal
// animation already finished.
func newDealtGame(t *testing.T) *Game {
	t.Helper()
	g := NewGame(42)
	g.Deal()
	g.CancelAnimations()
	if g.State() != StateIdle {
		t.Fatalf("State = %s after cancelling the deal, want idle", g.State())
	}
	return g
}

// newBareGame returns a game with every card pulled out of the stock. The
// cards are returned keyed by id so tests can lay out a board by hand.
func newBareGame(t *testing.T) (*Game, map[CardID]*Card) {
	t.Helper()
	g := NewGame(7)
	cards := make(map[CardID]*Card, DeckSize)
	for _, c := range g.stock.Take(DeckSize) {
		cards[c.ID] = c
	}
	return g, cards
}

// place moves the named cards onto s with the given face state.
func place(t *testing.T, cards map[CardID]*Card, s *Stack, faceUp bool, names ...string) {
	t.Helper()
	for _, name := range names {
		cid := id(name)
		c, ok := cards[cid]
		if !ok {
			t.Fatalf("card %s already placed", name)
		}
		delete(cards, cid)
		c.FaceUp = faceUp
		c.ShowFace = faceUp
		s.Add(c)
	}
}

// stockRest puts every unplaced card face down in the stock so the board
// holds a full deck.
func stockRest(g *Game, cards map[CardID]*Card) {
	for suit := Suit(0); suit < NumSuits; suit++ {
		for rank := RankAce; rank <= RankKing; rank++ {
			if c, ok := cards[NewCardID(suit, rank)]; ok {
				g.stock.Add(c)
			}
		}
	}
	clear(cards)
}

func id(s string) CardID {
	const ranks = "A23456789TJQK"
	var rank Rank
	for i := 0; i < len(ranks); i++ {
		if ranks[i] == s[0] {
			rank = Rank(i)
		}
	}
	var suit Suit
	switch s[1] {
	case 'S':
		suit = SuitSpades
	case 'C':
		suit = SuitClubs
	case 'H':
		suit = SuitHearts
	case 'D':
		suit = SuitDiamonds
	}
	return NewCardID(suit, rank)
}

func ids(ss ...string) []CardID {
	out := make([]CardID, len(ss))
	for i, s := range ss {
		out[i] = id(s)
	}
	return out
}

type cardState struct {
	ID     CardID
	FaceUp bool
}

// snapshot captures the ordered contents and face states of every stack.
func snapshot(g *Game) [][]cardState {
	var out [][]cardState
	for _, s := range g.Stacks() {
		row := make([]cardState, 0, s.Size())
		for _, c := range s.cards {
			row = append(row, cardState{ID: c.ID, FaceUp: c.FaceUp})
		}
		out = append(out, row)
	}
	return out
}

// checkConservation fails unless the board holds each of the 52 cards
// exactly once.
func checkConservation(t *testing.T, g *Game) {
	t.Helper()
	seen := make(map[CardID]bool, DeckSize)
	for _, s := range g.Stacks() {
		for _, c := range s.cards {
			if seen[c.ID] {
				t.Fatalf("card %s appears twice", c.ID)
			}
			seen[c.ID] = true
		}
	}
	if len(seen) != DeckSize {
		t.Fatalf("board holds %d cards, want %d", len(seen), DeckSize)
	}
}

// settle advances until no animation is live.
func settle(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; g.Animations() > 0; i++ {
		if i > 1000 {
			t.Fatal("animations never finished")
		}
		g.Advance(AnimationDuration)
	}
}
