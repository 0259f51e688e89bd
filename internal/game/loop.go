package game

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-clicker/internal/core"
)

// Frontend is the terminal collaborator of the loop.
type Frontend interface {
	// Draw hands one frame to the terminal without blocking. An error means
	// the terminal can no longer display frames.
	Draw(snap Snapshot) error

	// Restore leaves the alternate screen and raw mode and shows the cursor.
	// It must be safe to call more than once.
	Restore() error
}

// ActionSource is the consumer side of the action queue.
type ActionSource interface {
	// Drain appends every currently queued action to dst without blocking.
	Drain(dst []core.Action) []core.Action
}

// Phase is the tick-level state of the loop.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseTerminating
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "Running"
	case PhaseTerminating:
		return "Terminating"
	default:
		return "Unknown"
	}
}

// Loop drives a Game at a fixed tick.
type Loop struct {
	game     *Game
	actions  ActionSource
	frontend Frontend
	logger   *log.Logger
	period   time.Duration
	phase    Phase
	pending  []core.Action
}

// NewLoop creates a loop ticking every core.TickPeriod.
func NewLoop(g *Game, actions ActionSource, frontend Frontend, logger *log.Logger) *Loop {
	return &Loop{
		game:     g,
		actions:  actions,
		frontend: frontend,
		logger:   logger,
		period:   core.TickPeriod,
		pending:  make([]core.Action, 0, 16),
	}
}

// Phase returns the current loop phase.
func (l *Loop) Phase() Phase {
	return l.phase
}

// Step runs one tick: idle accrual, then every queued action in order, then
// one render. A render error moves the loop to PhaseTerminating and is
// returned, unless the loop was already terminating.
func (l *Loop) Step() error {
	if l.phase == PhaseTerminating {
		return nil
	}

	l.game.Tick()

	l.pending = l.actions.Drain(l.pending[:0])
	for _, a := range l.pending {
		if l.game.Apply(a) {
			l.phase = PhaseTerminating
		}
	}

	snap := l.game.Snapshot()
	if err := l.frontend.Draw(snap); err != nil {
		if l.phase == PhaseTerminating {
			// The terminal going away is what produced the exit.
			l.logger.Debug("skipping final frame", "tick", snap.Tick, "error", err)
			return nil
		}
		l.phase = PhaseTerminating
		return fmt.Errorf("game: render tick %d: %w", snap.Tick, err)
	}
	return nil
}

// Run ticks until an Exit action is applied, a frame fails to render or ctx
// is cancelled. The terminal is restored on every path.
func (l *Loop) Run(ctx context.Context) (err error) {
	defer func() {
		if rerr := l.frontend.Restore(); rerr != nil && err == nil {
			err = fmt.Errorf("game: restore terminal: %w", rerr)
		}
	}()

	ticker := time.NewTicker(l.period)
	defer ticker.Stop()

	for {
		if err := l.Step(); err != nil {
			l.logger.Error("render failed, terminating", "error", err)
			return err
		}
		if l.phase == PhaseTerminating {
			l.logger.Info("exit requested", "tick", l.game.tick, "score", l.game.state.Score)
			return nil
		}

		select {
		case <-ctx.Done():
			l.phase = PhaseTerminating
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
