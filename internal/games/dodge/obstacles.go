package dodge

import (
	"slices"
)

// Obstacle is a single falling cell.
type Obstacle struct {
	Col int // Column in [0, width)
	Row int // Row; 0 is the top of the playfield
}

// Field owns the active obstacles: it spawns them at the top, moves them down
// one row per tick and removes them once they leave the bottom.
// Between ticks every obstacle satisfies 0 <= Row < height.
type Field struct {
	obstacles []Obstacle
	rng       RandomSource
	width     int
	height    int
	odds      int // Spawn draw range [0, odds)
	sentinel  int // Draw value that triggers a spawn
}

// NewField creates an empty field for a width x height viewport.
// A spawn happens on a tick when a draw from [0, odds) equals sentinel.
func NewField(width, height, odds, sentinel int, rng RandomSource) *Field {
	return &Field{
		obstacles: make([]Obstacle, 0, height),
		rng:       rng,
		width:     width,
		height:    height,
		odds:      odds,
		sentinel:  sentinel,
	}
}

// SpawnMaybe rolls for a spawn and, on a hit, adds one obstacle at row 0 in a
// random column. The spawn roll is always drawn before the column.
// Returns whether an obstacle was added.
func (f *Field) SpawnMaybe() bool {
	if f.rng.IntRange(0, f.odds) != f.sentinel {
		return false
	}
	f.obstacles = append(f.obstacles, Obstacle{
		Col: f.rng.IntRange(0, f.width),
		Row: 0,
	})
	return true
}

// Advance moves every obstacle down one row.
func (f *Field) Advance() {
	for i := range f.obstacles {
		f.obstacles[i].Row++
	}
}

// Cull removes obstacles that have left the playfield, keeping order.
// Returns the number removed.
func (f *Field) Cull() int {
	before := len(f.obstacles)
	kept := f.obstacles[:0]
	for _, o := range f.obstacles {
		if o.Row < f.height {
			kept = append(kept, o)
		}
	}
	f.obstacles = kept
	return before - len(kept)
}

// Hit removes the first obstacle occupying (col, row) and reports whether one did.
func (f *Field) Hit(col, row int) bool {
	i := slices.IndexFunc(f.obstacles, func(o Obstacle) bool {
		return o.Col == col && o.Row == row
	})
	if i < 0 {
		return false
	}
	f.obstacles = slices.Delete(f.obstacles, i, i+1)
	return true
}

// Obstacles returns a copy of the active obstacles in spawn order.
func (f *Field) Obstacles() []Obstacle {
	return slices.Clone(f.obstacles)
}

// Len returns the number of active obstacles.
func (f *Field) Len() int {
	return len(f.obstacles)
}
