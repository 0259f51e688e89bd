package tui

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-clicker/internal/core"
	"github.com/vovakirdan/tui-clicker/internal/game"
)

// ErrTerminalClosed is returned by Draw once the terminal program has exited.
var ErrTerminalClosed = errors.New("tui: terminal closed")

// Buffer sizes and timeouts
const (
	keyBuffer      = 256
	restoreTimeout = 2 * time.Second
)

// Terminal is the display and keyboard of one game session.
//
// A Bubble Tea program owns the real terminal: alternate screen, raw mode and
// key decoding. The game loop hands it snapshots through Draw, the input
// reader takes keys from it through Poll. Neither ever touches the program
// directly.
type Terminal struct {
	renderer *Renderer
	logger   *log.Logger
	config   core.RuntimeConfig

	snapshots chan game.Snapshot // latest frame only
	keys      chan string
	quit      chan struct{}
	done      chan struct{}

	quitOnce  sync.Once
	closeOnce sync.Once
	err       error // program error, valid once done is closed
}

// NewTerminal creates a terminal rendering with renderer. cfg provides the
// viewport size used until the first resize event.
func NewTerminal(renderer *Renderer, logger *log.Logger, cfg core.RuntimeConfig) *Terminal {
	return &Terminal{
		renderer:  renderer,
		logger:    logger,
		config:    cfg,
		snapshots: make(chan game.Snapshot, 1),
		keys:      make(chan string, keyBuffer),
		quit:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Model returns the Bubble Tea model that displays this terminal.
func (t *Terminal) Model() tea.Model {
	return model{
		term:   t,
		width:  t.config.ScreenW,
		height: t.config.ScreenH,
	}
}

// Draw hands a snapshot to the program, replacing any frame it has not
// picked up yet.
func (t *Terminal) Draw(snap game.Snapshot) error {
	select {
	case <-t.done:
		return t.closedErr()
	default:
	}

	// Draw is the only sender, so after dropping a stale frame there is room.
	select {
	case <-t.snapshots:
	default:
	}
	t.snapshots <- snap
	return nil
}

// Restore asks the program to quit and waits until it has released the
// terminal.
func (t *Terminal) Restore() error {
	t.quitOnce.Do(func() { close(t.quit) })

	select {
	case <-t.done:
		return t.err
	case <-time.After(restoreTimeout):
		return fmt.Errorf("tui: terminal not released after %s", restoreTimeout)
	}
}

// Close marks the program as finished. err is the program's exit error, if
// any. Pending and future polls report io.EOF.
func (t *Terminal) Close(err error) {
	t.closeOnce.Do(func() {
		t.err = err
		close(t.done)
	})
}

// Poll waits up to timeout for the next key press.
func (t *Terminal) Poll(timeout time.Duration) (string, bool, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case k := <-t.keys:
		return k, true, nil
	case <-t.done:
		return "", false, io.EOF
	case <-timer.C:
		return "", false, nil
	}
}

func (t *Terminal) closedErr() error {
	if t.err != nil {
		return fmt.Errorf("%w: %w", ErrTerminalClosed, t.err)
	}
	return ErrTerminalClosed
}

// offerKey queues a key for the reader without blocking the program.
func (t *Terminal) offerKey(k string) {
	select {
	case t.keys <- k:
	default:
		t.logger.Warn("key buffer full, dropping key", "key", k)
	}
}

// frameMsg carries a snapshot to the model.
type frameMsg game.Snapshot

// quitMsg tells the model the game loop is done with the terminal.
type quitMsg struct{}

// waitForFrame returns a command that delivers the next snapshot or the quit
// request, whichever comes first.
func (t *Terminal) waitForFrame() tea.Cmd {
	return func() tea.Msg {
		select {
		case snap := <-t.snapshots:
			return frameMsg(snap)
		case <-t.quit:
			return quitMsg{}
		}
	}
}

// model is the Bubble Tea side of a Terminal.
type model struct {
	term     *Terminal
	snap     *game.Snapshot
	width    int
	height   int
	quitting bool
}

// Init starts listening for frames.
func (m model) Init() tea.Cmd {
	return m.term.waitForFrame()
}

// Update handles messages and updates the model state.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.term.offerKey(msg.String())
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case frameMsg:
		snap := game.Snapshot(msg)
		m.snap = &snap
		return m, m.term.waitForFrame()

	case quitMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the latest snapshot.
func (m model) View() string {
	if m.quitting || m.snap == nil {
		return ""
	}
	return m.term.renderer.Render(*m.snap, m.width, m.height)
}
