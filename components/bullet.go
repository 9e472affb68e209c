package components

import (
	"github.com/lixenwraith/galaga/asset"
	"github.com/lixenwraith/galaga/vmath"
)

// Bullet is one projectile slot of a BulletPool
type Bullet struct {
	Position vmath.Vec2
	Sprite   asset.SpriteID
	Bound    vmath.Rect // Collision rectangle, recomputed each frame the bullet is active
	Active   bool
}

// BulletPool is a fixed-capacity projectile array recycled via the Active flag
// Pool size doubles as the owner's fire-rate limit
type BulletPool struct {
	Bullets []Bullet
	Speed   float64 // World units per second
	Height  float64 // Bullets leaving [0, Height] are recycled
}

// NewBulletPool creates a pool with every slot inactive
func NewBulletPool(size int, speed, height float64) *BulletPool {
	if size < 0 {
		size = 0
	}
	p := &BulletPool{
		Bullets: make([]Bullet, size),
		Speed:   speed,
		Height:  height,
	}
	for i := range p.Bullets {
		p.Bullets[i].Sprite = asset.SpriteBullet
	}
	return p
}

// Acquire activates the first inactive slot at spawn and returns its index
// The bound is rebuilt at spawn so a recycled slot never keeps its last flight's rect
// Returns -1 and leaves the pool untouched when every slot is in flight
func (p *BulletPool) Acquire(spawn vmath.Vec2) int {
	for i := range p.Bullets {
		b := &p.Bullets[i]
		if !b.Active {
			s := asset.Get(b.Sprite)
			b.Position = spawn
			b.Bound = vmath.NewRect(spawn.X, spawn.Y, s.Width, s.Height)
			b.Active = true
			return i
		}
	}
	return -1
}

// Advance moves every active bullet vertically by direction*Speed*dt
// Per bullet: bound from the current position, then displacement, then bounds check
// The bound therefore trails the drawn position by one frame of travel
func (p *BulletPool) Advance(direction int, dt float64) {
	for i := range p.Bullets {
		b := &p.Bullets[i]
		if !b.Active {
			continue
		}

		s := asset.Get(b.Sprite)
		b.Bound = vmath.NewRect(b.Position.X, b.Position.Y, s.Width, s.Height)
		b.Position.Y += float64(direction) * p.Speed * dt

		if b.Position.Y > p.Height || b.Position.Y < 0 {
			b.Active = false
		}
	}
}

// Clear deactivates every slot
func (p *BulletPool) Clear() {
	for i := range p.Bullets {
		p.Bullets[i].Active = false
	}
}

// ActiveCount returns the number of bullets in flight
func (p *BulletPool) ActiveCount() int {
	n := 0
	for i := range p.Bullets {
		if p.Bullets[i].Active {
			n++
		}
	}
	return n
}

// Len returns the pool capacity
func (p *BulletPool) Len() int {
	return len(p.Bullets)
}
