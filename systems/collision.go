package systems

import (
	"github.com/lixenwraith/galaga/components"
	"github.com/lixenwraith/galaga/engine"
	"github.com/lixenwraith/galaga/vmath"
)

// ResolveHits applies every active bullet of pool overlapping bound to target
// Each hit recycles its bullet and costs target one life; enemy hits score a point
// All overlapping bullets count, so several hits can land in a single frame
func ResolveHits(ctx *engine.GameContext, bound vmath.Rect, pool *components.BulletPool, target *components.Character, isEnemyTarget bool) int {
	hits := 0
	for i := range pool.Bullets {
		b := &pool.Bullets[i]
		if !b.Active || !bound.Intersects(b.Bound) {
			continue
		}

		b.Active = false
		target.TakeHit()
		if isEnemyTarget {
			ctx.State.AddScore(1)
		}
		hits++
	}
	return hits
}
