// Command solitaire plays Klondike in the terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/jason-s-yu/klondike/internal/config"
	"github.com/jason-s-yu/klondike/internal/session"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "solitaire:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	if cfg.Mouse {
		screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	r := newRenderer(screen)
	sess := session.New(cfg.Seed, logger)
	sess.RenderFn = r.draw
	sess.OnWin = func(id uuid.UUID, seed uint64, elapsed time.Duration, moves int) {
		logger.WithFields(logrus.Fields{
			"session": id.String(),
			"seed":    seed,
			"elapsed": elapsed,
			"moves":   moves,
		}).Info("Solved.")
	}
	if err := sess.Start(); err != nil {
		return err
	}

	loopErr := make(chan error, 1)
	go func() { loopErr <- sess.Run(ctx, cfg.FrameInterval()) }()
	go func() {
		<-ctx.Done()
		screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	pollInput(screen, r, sess, logger)
	cancel()
	sess.Close()

	if err := <-loopErr; err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, session.ErrClosed) {
		return err
	}
	return nil
}

// pollInput feeds terminal events to the session until the player quits or
// the process is interrupted.
func pollInput(screen tcell.Screen, r *renderer, sess *session.Session, logger *logrus.Logger) {
	var gestures gestureTracker
	for {
		switch ev := screen.PollEvent().(type) {
		case nil, *tcell.EventInterrupt:
			return
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			action, ok := actionForKey(ev)
			if !ok {
				continue
			}
			if action.quit {
				return
			}
			if _, err := sess.Do(action.cmd); err != nil {
				logger.WithError(err).WithField("command", action.cmd).Warn("Command failed.")
			}
		case *tcell.EventMouse:
			x, y := ev.Position()
			pressed := ev.Buttons()&tcell.Button1 != 0
			for _, g := range gestures.update(pressed, r.scaler().toGame(x, y)) {
				sess.Pointer(g)
			}
		}
	}
}
