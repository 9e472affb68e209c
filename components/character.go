package components

import (
	"github.com/lixenwraith/galaga/asset"
	"github.com/lixenwraith/galaga/vmath"
)

// Character is the player ship or one enemy of the formation
// Position X is the sprite's horizontal centre, Y its top edge
type Character struct {
	Position vmath.Vec2
	Origin   vmath.Vec2 // Recorded once at construction, restored by Reset

	Sprite    asset.SpriteID
	Explosion asset.SpriteID // Carried for a death effect that is not drawn

	Pool           *BulletPool
	ShootDirection int // +1 fires downward, -1 upward

	Life    int
	MaxLife int
	Active  bool
}

// NewCharacter creates an active character at origin with full life
func NewCharacter(origin vmath.Vec2, sprite asset.SpriteID, pool *BulletPool, direction, life int) Character {
	return Character{
		Position:       origin,
		Origin:         origin,
		Sprite:         sprite,
		Explosion:      asset.SpriteExplosion,
		Pool:           pool,
		ShootDirection: direction,
		Life:           life,
		MaxLife:        life,
		Active:         true,
	}
}

// Shoot acquires a bullet from the character's pool at its current position
// Returns false when the pool is exhausted and the shot was dropped
func (c *Character) Shoot() bool {
	if c.Pool == nil {
		return false
	}
	return c.Pool.Acquire(c.Position) >= 0
}

// TakeHit removes one life and deactivates the character at zero
// The bullet that caused the hit is the caller's to recycle
func (c *Character) TakeHit() {
	c.Life--
	if c.Life <= 0 {
		c.Active = false
	}
}

// Bound returns the collision rectangle for the current position
func (c *Character) Bound() vmath.Rect {
	s := asset.Get(c.Sprite)
	return vmath.NewRect(c.Position.X-s.Width/2, c.Position.Y, s.Width, s.Height)
}

// Reset restores the character to its origin with full life
func (c *Character) Reset() {
	c.Position = c.Origin
	c.Life = c.MaxLife
	c.Active = true
}
