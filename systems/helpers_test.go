package systems

import (
	"github.com/lixenwraith/galaga/components"
	"github.com/lixenwraith/galaga/engine"
	"github.com/lixenwraith/galaga/vmath"
)

// newPlayingContext returns a deterministic context already in gameplay
func newPlayingContext() *engine.GameContext {
	ctx := engine.NewTestGameContext(0)
	ctx.State.TransitionPhase(engine.PhaseGamePlay)
	return ctx
}

// keepOnly deactivates every enemy except the listed cells
func keepOnly(f *components.Formation, cells ...components.Cell) {
	keep := make(map[components.Cell]bool, len(cells))
	for _, c := range cells {
		keep[c] = true
	}
	for row := range f.Enemies {
		for col := range f.Enemies[row] {
			if !keep[components.Cell{Row: row, Col: col}] {
				f.Enemies[row][col].Active = false
			}
		}
	}
}

// placeBullet activates a bullet whose collision bound is exactly r
func placeBullet(pool *components.BulletPool, r vmath.Rect) int {
	i := pool.Acquire(vmath.V2(r.X, r.Y))
	if i >= 0 {
		pool.Bullets[i].Bound = r
	}
	return i
}
