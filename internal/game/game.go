// Package game implements the clicker's game core: the authoritative state,
// upgrade purchasing and the fixed-tick loop that drives it.
package game

import (
	"github.com/vovakirdan/tui-clicker/internal/config"
	"github.com/vovakirdan/tui-clicker/internal/core"
)

// Game owns the clicker state and applies actions to it.
// It is not safe for concurrent use; the Loop is its only caller.
type Game struct {
	state State
	gen   *Generator
	tick  uint64
}

// New creates a game with the configured starting increases and a freshly
// generated shop.
func New(cfg config.ClickerConfig, rng Rand) *Game {
	g := &Game{
		gen: NewGenerator(rng, cfg.Upgrades.MaxLevel),
		state: State{
			ActiveIncrease: cfg.Start.ActiveIncrease,
			IdleIncrease:   cfg.Start.IdleIncrease,
			Selection:      SelectAt(0),
		},
	}
	for i := range g.state.Shop {
		g.state.Shop[i] = g.gen.Next(0)
	}
	return g
}

// Tick advances the clock by one tick and applies idle accrual.
func (g *Game) Tick() {
	g.tick++
	g.state.Score += g.state.IdleIncrease
}

// Apply applies a single action. It reports whether the action asks the
// game to exit.
func (g *Game) Apply(a core.Action) (exit bool) {
	switch a {
	case core.ActionClick:
		g.state.Score += g.state.ActiveIncrease
	case core.ActionUp:
		g.state.Selection = g.state.Selection.up()
	case core.ActionDown:
		g.state.Selection = g.state.Selection.down()
	case core.ActionDeselect:
		g.state.Selection = NoSelection
	case core.ActionSelect:
		g.Purchase()
	case core.ActionExit:
		return true
	}
	return false
}

// Purchase buys the selected upgrade if the player can afford it.
// It reports whether a purchase happened; without a selection or with too
// few points the state is left untouched.
func (g *Game) Purchase() bool {
	i, ok := g.state.Selection.Index()
	if !ok {
		return false
	}
	u := g.state.Shop[i]
	if g.state.Score < u.Cost {
		return false
	}

	g.state.Score -= u.Cost
	switch u.Kind {
	case KindActive:
		g.state.ActiveIncrease += u.Level
	case KindIdle:
		g.state.IdleIncrease += u.Level
	}
	// The replacement is priced against the score left after paying.
	g.state.Shop.Replace(i, g.gen.Next(g.state.Score))
	return true
}
