// Package tui provides the Bubble Tea integration for the clicker.
// It renders game snapshots, feeds key presses to the input reader and owns
// the terminal lifecycle, locally or over SSH.
package tui

import (
	"context"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-clicker/internal/config"
	"github.com/vovakirdan/tui-clicker/internal/core"
	"github.com/vovakirdan/tui-clicker/internal/game"
	"github.com/vovakirdan/tui-clicker/internal/input"
)

// Session wires one game to one terminal: the reader feeds the queue, the
// loop drains it and draws to the terminal.
type Session struct {
	game   *game.Game
	term   *Terminal
	queue  *input.Queue
	loop   *game.Loop
	reader *input.Reader
}

// NewSession creates a game session. A zero seed is replaced by the clock.
func NewSession(clicker config.ClickerConfig, cfg core.RuntimeConfig, logger *log.Logger) *Session {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	keys := NewKeyMap(clicker.Keys)
	term := NewTerminal(NewRenderer(keys), logger, cfg)
	queue := input.NewQueue()
	g := game.New(clicker, rand.New(rand.NewSource(cfg.Seed)))

	return &Session{
		game:   g,
		term:   term,
		queue:  queue,
		loop:   game.NewLoop(g, queue, term, logger),
		reader: input.NewReader(term, keys, logger),
	}
}

// Terminal returns the session's terminal.
func (s *Session) Terminal() *Terminal {
	return s.term
}

// Play starts the input reader and runs the game loop until it terminates.
// The reader is not joined; once the queue closes it stops on its next push
// or when the terminal reports EOF.
func (s *Session) Play(ctx context.Context) error {
	defer s.queue.Close()

	go s.reader.Run(ctx, s.queue)
	return s.loop.Run(ctx)
}

// Run plays one game on the local terminal.
func Run(ctx context.Context, clicker config.ClickerConfig, cfg core.RuntimeConfig, logger *log.Logger) error {
	s := NewSession(clicker, cfg, logger)

	p := tea.NewProgram(
		s.term.Model(),
		tea.WithAltScreen(), // Use alternate screen buffer
	)
	go func() {
		_, err := p.Run()
		s.term.Close(err)
	}()

	return s.Play(ctx)
}
