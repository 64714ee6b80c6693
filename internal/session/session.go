// Package session hosts one solitaire game for an interactive front-end:
// it serialises input against the frame loop, drives the engine clock and
// reports what happened through callbacks.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jason-s-yu/klondike/engine"
	"github.com/sirupsen/logrus"
)

// EventType names a session event.
type EventType string

const (
	EventGameStart EventType = "game_start"
	EventMove      EventType = "move"   // a move was committed
	EventReturn    EventType = "return" // a drop was refused and the cards went back
	EventUndo      EventType = "undo"
	EventRedo      EventType = "redo"
	EventPause     EventType = "pause"
	EventResume    EventType = "resume"
	EventSkip      EventType = "skip"
	EventGameWin   EventType = "game_win"
)

// Event reports a change to the hosted game.
type Event struct {
	Type    EventType     `json:"type"`
	Seed    uint64        `json:"seed"`
	Moves   int           `json:"moves"`
	Elapsed time.Duration `json:"elapsed"`
}

// OnWinFunc is called once when a game is won.
type OnWinFunc func(sessionID uuid.UUID, seed uint64, elapsed time.Duration, moves int)

// Session owns an engine.Game and everything that touches it. All methods
// are safe for concurrent use. Callbacks run with the session lock held and
// must not call back into the session.
type Session struct {
	ID uuid.UUID

	mu       sync.Mutex
	game     *engine.Game
	seed     uint64
	lastTick time.Time
	base     *logrus.Entry
	log      *logrus.Entry
	done     chan struct{}
	closed   bool

	RenderFn    func(v engine.View) // called after every frame
	BroadcastFn func(ev Event)      // called for every event
	OnWin       OnWinFunc
}

// New creates a session for the given seed; seed 0 deals a random game.
// The game is not dealt until Start.
func New(seed uint64, logger *logrus.Logger, opts ...engine.Option) *Session {
	id, _ := uuid.NewRandom()
	base := logger.WithField("session", id.String())
	return &Session{
		ID:   id,
		game: engine.NewGame(seed, opts...),
		seed: seed,
		base: base,
		log:  base,
		done: make(chan struct{}),
	}
}

// Start shuffles and deals the configured seed.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.restart(s.seed)
	return nil
}

// restart deals a new game. Assumes lock is held by caller.
func (s *Session) restart(seed uint64) {
	s.game.Restart(seed)
	s.log = s.base.WithField("seed", s.game.Seed())
	s.log.Info("Game started.")
	s.fireEvent(EventGameStart)
}

// Do runs a key command. It reports whether the command changed the game.
func (s *Session) Do(cmd Command) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false, ErrClosed
	}

	var (
		ok bool
		ev EventType
	)
	switch cmd {
	case CmdNewGame:
		s.restart(0)
		return true, nil
	case CmdDeal:
		ok, ev = s.game.DealCard(), EventMove
	case CmdCollectAll:
		ok, ev = s.game.CollectAll(), EventMove
	case CmdUndo:
		ok, ev = s.game.Undo(), EventUndo
	case CmdRedo:
		ok, ev = s.game.Redo(), EventRedo
	case CmdSkip:
		ok = s.game.Animations() > 0 && s.game.State() != engine.StatePaused
		s.game.CancelAnimations()
		ev = EventSkip
	case CmdPause:
		before := s.game.State()
		s.game.Pause()
		switch after := s.game.State(); {
		case after == engine.StatePaused && before != engine.StatePaused:
			ok, ev = true, EventPause
		case before == engine.StatePaused && after != engine.StatePaused:
			ok, ev = true, EventResume
		}
	default:
		s.log.WithField("command", cmd).Warn("Unknown command.")
		return false, ErrUnknownCommand
	}

	s.log.WithFields(logrus.Fields{"command": cmd, "applied": ok}).Debug("Command handled.")
	if ok {
		s.fireEvent(ev)
	}
	return ok, nil
}

// Pointer forwards an abstract pointer gesture to the game. It reports
// whether the gesture changed anything.
func (s *Session) Pointer(ev engine.PointerEvent) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	moves, dragging := s.game.Moves(), s.game.Dragging()
	ok := s.game.Handle(ev)
	switch {
	case s.game.Moves() > moves:
		s.log.WithFields(logrus.Fields{"event": ev.Kind, "x": ev.At.X, "y": ev.At.Y}).Debug("Pointer move committed.")
		s.fireEvent(EventMove)
	case ev.Kind == engine.EventDragEnd && dragging && !ok:
		s.fireEvent(EventReturn)
	}
	return ok
}

// Frame advances the game to now and renders it. The first frame after a
// session is created only establishes the time base.
func (s *Session) Frame(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	var dt time.Duration
	if !s.lastTick.IsZero() {
		dt = now.Sub(s.lastTick)
	}
	s.lastTick = now

	if s.game.Advance(dt) {
		s.reportWin()
	}
	if s.RenderFn != nil {
		s.RenderFn(s.game.View())
	}
}

// reportWin logs and announces a finished game. Assumes lock is held by
// caller.
func (s *Session) reportWin() {
	elapsed, moves := s.game.Elapsed(), s.game.Moves()
	s.log.WithFields(logrus.Fields{"elapsed": elapsed, "moves": moves}).Info("Game won.")
	s.fireEvent(EventGameWin)
	if s.OnWin != nil {
		s.OnWin(s.ID, s.game.Seed(), elapsed, moves)
	}
}

// Run drives Frame from a ticker until ctx is cancelled or the session is
// closed.
func (s *Session) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	s.entry().WithField("interval", interval).Info("Frame loop started.")
	for {
		select {
		case <-ctx.Done():
			s.entry().Info("Frame loop stopped.")
			return ctx.Err()
		case <-s.done:
			return ErrClosed
		case now := <-ticker.C:
			s.Frame(now)
		}
	}
}

func (s *Session) entry() *logrus.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.log
}

// View returns the current visual state.
func (s *Session) View() engine.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.View()
}

// Close stops the session. Later calls fail with ErrClosed.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.done)
	s.log.Info("Session closed.")
}

// fireEvent broadcasts an event via the BroadcastFn callback.
// Assumes lock is held by caller.
func (s *Session) fireEvent(t EventType) {
	if s.BroadcastFn == nil {
		return
	}
	s.BroadcastFn(Event{
		Type:    t,
		Seed:    s.game.Seed(),
		Moves:   s.game.Moves(),
		Elapsed: s.game.Elapsed(),
	})
}
