package game

// Snapshot is a read-only copy of the game state for one frame.
type Snapshot struct {
	Tick uint64
	State
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:  g.tick,
		State: g.state,
	}
}
