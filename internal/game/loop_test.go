package game

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-clicker/internal/core"
)

// sliceSource is a single-goroutine action queue for loop tests.
type sliceSource struct {
	items []core.Action
}

func (s *sliceSource) Drain(dst []core.Action) []core.Action {
	dst = append(dst, s.items...)
	s.items = s.items[:0]
	return dst
}

func (s *sliceSource) push(a ...core.Action) {
	s.items = append(s.items, a...)
}

// recordingFrontend records frames and can fail or inject actions on draw.
type recordingFrontend struct {
	frames   []Snapshot
	restores int
	failAt   int // 1-based frame number that fails, 0 = never
	onDraw   func(n int)
}

var errDrawFailed = errors.New("terminal gone")

func (f *recordingFrontend) Draw(snap Snapshot) error {
	f.frames = append(f.frames, snap)
	if f.onDraw != nil {
		f.onDraw(len(f.frames))
	}
	if f.failAt != 0 && len(f.frames) == f.failAt {
		return errDrawFailed
	}
	return nil
}

func (f *recordingFrontend) Restore() error {
	f.restores++
	return nil
}

func newTestLoop(g *Game) (*Loop, *sliceSource, *recordingFrontend) {
	src := &sliceSource{}
	fe := &recordingFrontend{}
	l := NewLoop(g, src, fe, log.New(io.Discard))
	l.period = time.Millisecond
	return l, src, fe
}

func TestStepOrdering(t *testing.T) {
	g := newSeededGame(1)
	g.state.IdleIncrease = 2
	l, src, fe := newTestLoop(g)

	src.push(core.ActionClick, core.ActionClick)
	if err := l.Step(); err != nil {
		t.Fatalf("Step() failed: %v", err)
	}

	// The frame already shows idle accrual and both clicks
	if len(fe.frames) != 1 {
		t.Fatalf("got %d frames, expected 1", len(fe.frames))
	}
	if fe.frames[0].Score != 4 {
		t.Errorf("frame score = %g, expected 4", fe.frames[0].Score)
	}
	if fe.frames[0].Tick != 1 {
		t.Errorf("frame tick = %d, expected 1", fe.frames[0].Tick)
	}
}

func TestStepIdleBeforeActions(t *testing.T) {
	g := purchaseFixture()
	g.state.Score = 1.5
	g.state.IdleIncrease = 0.5
	l, src, _ := newTestLoop(g)

	// Row 0 costs 2: only affordable once this tick's idle accrual is in
	src.push(core.ActionSelect)
	if err := l.Step(); err != nil {
		t.Fatalf("Step() failed: %v", err)
	}

	if g.state.Score != 0 {
		t.Errorf("Score = %g, expected 0", g.state.Score)
	}
	if g.state.IdleIncrease != 5.5 {
		t.Errorf("IdleIncrease = %g, expected 5.5", g.state.IdleIncrease)
	}
}

func TestStepExitFinishesTick(t *testing.T) {
	g := newSeededGame(1)
	l, src, fe := newTestLoop(g)

	src.push(core.ActionExit, core.ActionClick)
	if err := l.Step(); err != nil {
		t.Fatalf("Step() failed: %v", err)
	}

	if l.Phase() != PhaseTerminating {
		t.Errorf("Phase() = %v, expected Terminating", l.Phase())
	}
	// Actions queued behind Exit in the same tick still apply
	if g.state.Score != 1 {
		t.Errorf("Score = %g, expected 1", g.state.Score)
	}
	if len(fe.frames) != 1 {
		t.Errorf("got %d frames, expected 1", len(fe.frames))
	}

	// Terminating is absorbing
	if err := l.Step(); err != nil {
		t.Fatalf("Step() after exit failed: %v", err)
	}
	if len(fe.frames) != 1 || g.Snapshot().Tick != 1 {
		t.Error("Step() after exit advanced the game")
	}
}

func TestRunExitCleanliness(t *testing.T) {
	g := newSeededGame(1)
	l, src, fe := newTestLoop(g)
	fe.onDraw = func(n int) {
		if n == 5 {
			src.push(core.ActionExit)
		}
	}

	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("Run() = %v, expected nil", err)
	}

	if len(fe.frames) != 6 {
		t.Errorf("got %d frames, expected exit on the 6th tick", len(fe.frames))
	}
	if fe.restores != 1 {
		t.Errorf("Restore() called %d times, expected 1", fe.restores)
	}
}

func TestRunRenderFailure(t *testing.T) {
	g := newSeededGame(1)
	l, _, fe := newTestLoop(g)
	fe.failAt = 3

	err := l.Run(context.Background())
	if !errors.Is(err, errDrawFailed) {
		t.Fatalf("Run() = %v, expected draw error", err)
	}
	if l.Phase() != PhaseTerminating {
		t.Errorf("Phase() = %v, expected Terminating", l.Phase())
	}
	if fe.restores != 1 {
		t.Errorf("Restore() called %d times, expected 1", fe.restores)
	}
}

func TestRunRenderFailureAfterExit(t *testing.T) {
	g := newSeededGame(1)
	l, src, fe := newTestLoop(g)
	fe.failAt = 1
	src.push(core.ActionExit)

	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("Run() = %v, expected nil when exit was already requested", err)
	}
	if fe.restores != 1 {
		t.Errorf("Restore() called %d times, expected 1", fe.restores)
	}
}

func TestRunContextCancel(t *testing.T) {
	g := newSeededGame(1)
	l, _, fe := newTestLoop(g)
	ctx, cancel := context.WithCancel(context.Background())
	fe.onDraw = func(n int) {
		if n == 2 {
			cancel()
		}
	}

	if err := l.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() = %v, expected context.Canceled", err)
	}
	if fe.restores != 1 {
		t.Errorf("Restore() called %d times, expected 1", fe.restores)
	}
}
