package engine

// Suit constants, packed into the upper 4 bits of CardID.
const (
	SuitSpades   Suit = 0
	SuitClubs    Suit = 1
	SuitHearts   Suit = 2
	SuitDiamonds Suit = 3
)

// Rank constants, packed into the lower 4 bits of CardID.
const (
	RankAce   Rank = 0
	RankTwo   Rank = 1
	RankThree Rank = 2
	RankFour  Rank = 3
	RankFive  Rank = 4
	RankSix   Rank = 5
	RankSeven Rank = 6
	RankEight Rank = 7
	RankNine  Rank = 8
	RankTen   Rank = 9
	RankJack  Rank = 10
	RankQueen Rank = 11
	RankKing  Rank = 12
)

const (
	NumSuits = 4
	NumRanks = 13
	DeckSize = NumSuits * NumRanks
)

// Suit of a card.
type Suit uint8

// Color is the derived color of a suit.
type Color uint8

const (
	Black Color = iota
	Red
)

// Color returns Red for hearts and diamonds, Black otherwise.
func (s Suit) Color() Color {
	if s == SuitHearts || s == SuitDiamonds {
		return Red
	}
	return Black
}

func (s Suit) String() string {
	switch s {
	case SuitSpades:
		return "S"
	case SuitClubs:
		return "C"
	case SuitHearts:
		return "H"
	case SuitDiamonds:
		return "D"
	default:
		return "?"
	}
}

// Rank of a card, Ace lowest.
type Rank uint8

// IsNext reports whether r is exactly one above other.
func (r Rank) IsNext(other Rank) bool { return r == other+1 }

// IsPrevious reports whether r is exactly one below other.
func (r Rank) IsPrevious(other Rank) bool { return r+1 == other }

func (r Rank) String() string {
	const symbols = "A23456789TJQK"
	if r > RankKing {
		return "?"
	}
	return symbols[r : r+1]
}

// CardID is a packed uint8: upper 4 bits = suit, lower 4 bits = rank.
// It is the stable identity of a card for the life of a deal.
type CardID uint8

// NewCardID constructs a CardID from suit and rank.
func NewCardID(suit Suit, rank Rank) CardID {
	return CardID((uint8(suit) << 4) | (uint8(rank) & 0x0F))
}

// Suit returns the suit bits (upper 4).
func (c CardID) Suit() Suit { return Suit(uint8(c) >> 4) }

// Rank returns the rank bits (lower 4).
func (c CardID) Rank() Rank { return Rank(uint8(c) & 0x0F) }

// Color returns the color of the card's suit.
func (c CardID) Color() Color { return c.Suit().Color() }

// Index returns a dense index in [0, DeckSize).
func (c CardID) Index() int { return int(c.Suit())*NumRanks + int(c.Rank()) }

// String renders the card as rank then suit, e.g. "QH".
func (c CardID) String() string { return c.Rank().String() + c.Suit().String() }

// Card is a single playing card. ID and FaceUp are the logical state; Pos,
// ScaleX and ShowFace are presentational and only written by stack layout
// and animations.
type Card struct {
	ID     CardID
	FaceUp bool

	Pos      Point
	ScaleX   float64
	ShowFace bool
}

// NewCard returns a face-down card with neutral presentation.
func NewCard(id CardID) *Card {
	return &Card{ID: id, ScaleX: 1}
}

func (c *Card) Suit() Suit   { return c.ID.Suit() }
func (c *Card) Rank() Rank   { return c.ID.Rank() }
func (c *Card) Color() Color { return c.ID.Color() }

// Flip toggles the logical face state.
func (c *Card) Flip() { c.FaceUp = !c.FaceUp }

// TextureBack is the texture id of every card back.
const TextureBack = "back"

// Texture returns the texture id the renderer should draw for the card's
// current presentational face.
func (c *Card) Texture() string {
	if c.ShowFace {
		return c.ID.String()
	}
	return TextureBack
}

// NewDeck returns the 52 cards of a standard deck, face down, ordered by
// suit then rank.
func NewDeck() []*Card {
	deck := make([]*Card, 0, DeckSize)
	for suit := Suit(0); suit < NumSuits; suit++ {
		for rank := RankAce; rank <= RankKing; rank++ {
			deck = append(deck, NewCard(NewCardID(suit, rank)))
		}
	}
	return deck
}
