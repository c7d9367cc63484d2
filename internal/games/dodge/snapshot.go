package dodge

// Snapshot is a read-only, render-ready copy of one tick's state.
type Snapshot struct {
	Tick      uint64
	Width     int
	Height    int
	PlayerCol int
	PlayerRow int // Always Height-1
	Obstacles []Obstacle
	Score     int
	Running   bool
	Reason    EndReason
	Crash     *Obstacle // Set when the session ended in a collision
}

// Snapshot captures the current state. The returned value shares nothing
// with the state, so later ticks do not change it.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      s.tick,
		Width:     s.width,
		Height:    s.height,
		PlayerCol: s.player.Col,
		PlayerRow: s.height - 1,
		Obstacles: s.field.Obstacles(),
		Score:     s.score,
		Running:   s.running,
		Reason:    s.reason,
	}
	if s.crash != nil {
		crash := *s.crash
		snap.Crash = &crash
	}
	return snap
}
