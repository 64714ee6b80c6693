// Package engine implements the Klondike solitaire game state and move
// engine.
//
// Logical state (which stack holds which card, face states, history) is
// mutated synchronously by Moves and is always consistent after a call
// returns. Visual playback is carried by Animations that the caller
// advances once per frame with Advance. The package is single threaded and
// performs no I/O; rendering and raw input belong to the caller.
package engine

import (
	"time"
)

// State is the coarse phase of a Game.
type State uint8

const (
	StateIdle      State = iota // waiting for input, nothing animating
	StateDealing                // the opening deal is still playing
	StateAnimating              // at least one animation is live
	StatePaused                 // input and time are frozen
	StateWon                    // every foundation is complete
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDealing:
		return "dealing"
	case StateAnimating:
		return "animating"
	case StatePaused:
		return "paused"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// StackRef names a stack on the board.
type StackRef struct {
	Kind  StackKind
	Index int
}

var (
	StockRef = StackRef{Kind: KindStock}
	WasteRef = StackRef{Kind: KindWaste}
	DragRef  = StackRef{Kind: KindDrag}
)

func FoundationRef(i int) StackRef { return StackRef{Kind: KindFoundation, Index: i} }
func TableauRef(i int) StackRef    { return StackRef{Kind: KindTableau, Index: i} }

// grab tracks an in-flight drag gesture.
type grab struct {
	active bool
	source *Stack
	count  int
	offset Point
}

// Game orchestrates the stacks, the history and the live animations.
type Game struct {
	layout      Layout
	stock       *Stack
	waste       *Stack
	foundations [NumFoundations]*Stack
	tableaus    [NumTableaus]*Stack
	drag        *Stack

	history History
	live    []Animation
	dealing Animation
	grab    grab

	seed       uint64
	rng        uint64
	seedSource func() uint64

	paused  bool
	won     bool
	elapsed time.Duration
	moves   int
}

// Option configures a Game.
type Option func(*Game)

// WithLayout places the stacks at the given origins.
func WithLayout(l Layout) Option {
	return func(g *Game) { g.layout = l }
}

// WithSeedSource sets where seeds come from when a game is started with
// seed 0.
func WithSeedSource(src func() uint64) Option {
	return func(g *Game) { g.seedSource = src }
}

// NewGame builds a game whose full deck sits face down in the stock. The
// deck is not yet shuffled or dealt; call Deal.
func NewGame(seed uint64, opts ...Option) *Game {
	g := &Game{
		layout:     DefaultLayout(),
		seedSource: func() uint64 { return uint64(time.Now().UnixNano()) },
	}
	for _, opt := range opts {
		opt(g)
	}
	g.stock = NewStack(KindStock, g.layout.Stock)
	g.waste = NewStack(KindWaste, g.layout.Waste)
	for i := range g.foundations {
		g.foundations[i] = NewStack(KindFoundation, g.layout.Foundations[i])
	}
	for i := range g.tableaus {
		g.tableaus[i] = NewStack(KindTableau, g.layout.Tableaus[i])
	}
	g.drag = NewStack(KindDrag, Point{})
	g.reset(seed)
	return g
}

// Restart gathers a fresh deck and deals it. Seed 0 draws a seed from the
// configured source.
func (g *Game) Restart(seed uint64) {
	g.reset(seed)
	g.Deal()
}

func (g *Game) reset(seed uint64) {
	for _, a := range g.live {
		a.Cancel()
	}
	g.live = nil
	g.dealing = nil
	g.grab = grab{}
	g.history.Clear()
	g.paused, g.won = false, false
	g.elapsed, g.moves = 0, 0

	if seed == 0 {
		seed = g.seedSource()
	}
	g.seed = seed
	g.rng = seed
	if g.rng == 0 {
		g.rng = 1 // xorshift can't start at 0
	}

	for _, s := range g.Stacks() {
		s.Take(s.Size())
	}
	g.stock.AddAll(NewDeck())
}

// ---------------------------------------------------------------------------
// xorshift64 RNG
// ---------------------------------------------------------------------------

func (g *Game) nextRand() uint64 {
	x := g.rng
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	g.rng = x
	return x
}

// randN returns a random number in [0, n).
func (g *Game) randN(n uint64) uint64 {
	return g.nextRand() % n
}

// Deal shuffles the stock and deals the seven tableau piles, one card per
// pile per row, turning up the last card of each pile. The deal is applied
// at once and played back as a single sequential animation; it is not an
// undoable move.
func (g *Game) Deal() {
	// Fisher-Yates shuffle.
	cards := g.stock.cards
	for i := len(cards) - 1; i > 0; i-- {
		j := int(g.randN(uint64(i + 1)))
		cards[i], cards[j] = cards[j], cards[i]
	}
	g.stock.Relayout()

	deck := g.stock.Cards()
	next := len(deck) - 1
	moves := make(Sequential, 0, 35)
	for row := 0; row < NumTableaus; row++ {
		for col := row; col < NumTableaus; col++ {
			moves = append(moves, NewTransfer(g.stock, g.tableaus[col], 1))
			if col == row {
				moves = append(moves, NewFlip(deck[next]))
			}
			next--
		}
	}
	g.dealing = moves.Apply()
	g.register(g.dealing)
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

// Seed returns the seed of the current deal.
func (g *Game) Seed() uint64 { return g.seed }

// State returns the current phase.
func (g *Game) State() State {
	switch {
	case g.won:
		return StateWon
	case g.paused:
		return StatePaused
	case g.dealing != nil:
		return StateDealing
	case len(g.live) > 0:
		return StateAnimating
	}
	return StateIdle
}

// Elapsed returns the play time accumulated while unpaused and unwon.
func (g *Game) Elapsed() time.Duration { return g.elapsed }

// Moves returns the number of committed moves.
func (g *Game) Moves() int { return g.moves }

// History exposes the undo/redo ledger.
func (g *Game) History() *History { return &g.history }

// Animations returns the number of live animations.
func (g *Game) Animations() int { return len(g.live) }

// Dragging reports whether a drag gesture holds cards.
func (g *Game) Dragging() bool { return g.grab.active }

// Stack returns the stack named by ref, or nil.
func (g *Game) Stack(ref StackRef) *Stack {
	switch ref.Kind {
	case KindStock:
		return g.stock
	case KindWaste:
		return g.waste
	case KindDrag:
		return g.drag
	case KindFoundation:
		if ref.Index >= 0 && ref.Index < NumFoundations {
			return g.foundations[ref.Index]
		}
	case KindTableau:
		if ref.Index >= 0 && ref.Index < NumTableaus {
			return g.tableaus[ref.Index]
		}
	}
	return nil
}

// RefOf returns the ref of a stack owned by g.
func (g *Game) RefOf(s *Stack) (StackRef, bool) {
	switch s {
	case g.stock:
		return StockRef, true
	case g.waste:
		return WasteRef, true
	case g.drag:
		return DragRef, true
	}
	for i, f := range g.foundations {
		if f == s {
			return FoundationRef(i), true
		}
	}
	for i, t := range g.tableaus {
		if t == s {
			return TableauRef(i), true
		}
	}
	return StackRef{}, false
}

// Stacks returns every stack in drawing order, the drag stack last.
func (g *Game) Stacks() []*Stack {
	out := make([]*Stack, 0, 4+NumFoundations+NumTableaus)
	out = append(out, g.stock, g.waste)
	out = append(out, g.foundations[:]...)
	out = append(out, g.tableaus[:]...)
	return append(out, g.drag)
}

// ---------------------------------------------------------------------------
// Commands
// ---------------------------------------------------------------------------

// ready reports whether a command may run, abandoning any drag in progress.
func (g *Game) ready() bool {
	if g.paused || g.won {
		return false
	}
	g.abortDrag()
	return true
}

func (g *Game) register(a Animation) {
	if a != nil && !a.Done() {
		g.live = append(g.live, a)
	}
}

func (g *Game) commit(m Move) {
	g.CancelAnimations()
	g.register(g.history.Commit(m))
	g.moves++
}

// DealCard turns the top stock card onto the waste, or turns the whole
// waste back into the stock when the stock is empty. It reports whether a
// move was committed.
func (g *Game) DealCard() bool {
	if !g.ready() {
		return false
	}
	if !g.stock.IsEmpty() {
		g.commit(Concurrent{NewFlip(g.stock.Top()), NewTransfer(g.stock, g.waste, 1)})
		return true
	}
	if g.waste.IsEmpty() {
		return false
	}
	m := make(Concurrent, 0, g.waste.Size()+1)
	for _, c := range g.waste.cards {
		m = append(m, NewFlip(c))
	}
	m = append(m, &Transfer{From: g.waste, To: g.stock, Amount: g.waste.Size(), Reverse: true})
	g.commit(m)
	return true
}

// CollectCard moves the top card of the referenced waste or tableau stack
// to the first foundation accepting it.
func (g *Game) CollectCard(ref StackRef) bool {
	if !g.ready() {
		return false
	}
	s := g.Stack(ref)
	if s == nil || (s.Kind != KindTableau && s.Kind != KindWaste) {
		return false
	}
	m := g.collectMove(s)
	if m == nil {
		return false
	}
	g.commit(m)
	return true
}

// CollectAll collects cards to the foundations until a full pass over the
// waste and tableaus finds nothing more. All collections form one undo
// step.
func (g *Game) CollectAll() bool {
	if !g.ready() {
		return false
	}
	g.CancelAnimations()
	var (
		moves Sequential
		anims []Animation
	)
	sources := append([]*Stack{g.waste}, g.tableaus[:]...)
	for progress := true; progress; {
		progress = false
		for _, s := range sources {
			if m := g.collectMove(s); m != nil {
				anims = append(anims, m.Apply())
				moves = append(moves, m)
				progress = true
			}
		}
	}
	if len(moves) == 0 {
		return false
	}
	g.history.Record(moves)
	g.register(NewSequentialAnimation(anims...))
	g.moves++
	return true
}

// collectMove builds the move sending the top card of s to a foundation,
// or returns nil.
func (g *Game) collectMove(s *Stack) Move {
	top := s.Top()
	if top == nil || !top.FaceUp {
		return nil
	}
	for _, f := range g.foundations {
		if f.CanAccept(top, 1) {
			return g.withExposeFlip(s, NewTransfer(s, f, 1))
		}
	}
	return nil
}

// withExposeFlip prepends a flip of the card that t would uncover on a
// tableau, when that card is face down.
func (g *Game) withExposeFlip(s *Stack, t *Transfer) Move {
	if s.Kind != KindTableau || s.Size() <= t.Amount {
		return t
	}
	below := s.At(s.Size() - t.Amount - 1)
	if below.FaceUp {
		return t
	}
	return Concurrent{NewFlip(below), t}
}

// Undo reverts the newest move.
func (g *Game) Undo() bool {
	if !g.ready() {
		return false
	}
	g.CancelAnimations()
	anim := g.history.Undo()
	if anim == nil {
		return false
	}
	g.register(anim)
	return true
}

// Redo re-applies the most recently undone move.
func (g *Game) Redo() bool {
	if !g.ready() {
		return false
	}
	g.CancelAnimations()
	anim := g.history.Redo()
	if anim == nil {
		return false
	}
	g.register(anim)
	return true
}

// Pause toggles the paused state. Pausing drops any drag in progress.
func (g *Game) Pause() {
	if g.won {
		return
	}
	if !g.paused {
		g.abortDrag()
	}
	g.paused = !g.paused
}

// CancelAnimations forces every live animation to its end state. Logical
// state is untouched.
func (g *Game) CancelAnimations() {
	if g.paused {
		return
	}
	for _, a := range g.live {
		a.Cancel()
	}
	clear(g.live)
	g.live = g.live[:0]
	g.dealing = nil
}

// Advance moves time forward by dt: live animations tick, finished ones
// are dropped and the win condition is checked. It reports whether the
// game was won by this frame.
func (g *Game) Advance(dt time.Duration) bool {
	if g.paused {
		return false
	}
	if dt < 0 {
		dt = 0
	}
	alive := g.live[:0]
	for _, a := range g.live {
		a.Tick(dt)
		if !a.Done() {
			alive = append(alive, a)
		}
	}
	clear(g.live[len(alive):])
	g.live = alive
	if g.dealing != nil && g.dealing.Done() {
		g.dealing = nil
	}

	if g.won {
		return false
	}
	g.elapsed += dt
	if len(g.live) == 0 && !g.grab.active && g.complete() {
		g.won = true
		return true
	}
	return false
}

func (g *Game) complete() bool {
	for _, f := range g.foundations {
		if f.Size() != NumRanks {
			return false
		}
	}
	return true
}
