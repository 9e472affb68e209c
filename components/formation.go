package components

import (
	"github.com/lixenwraith/galaga/asset"
	"github.com/lixenwraith/galaga/constants"
	"github.com/lixenwraith/galaga/vmath"
)

const (
	FormationRows = constants.FormationRows
	FormationCols = constants.FormationCols
)

// Cell addresses one slot of the formation grid
type Cell struct {
	Row, Col int
}

// Formation is the fixed enemy grid
// Only positions and life/active flags change after construction
type Formation struct {
	Enemies [FormationRows][FormationCols]Character
}

// NewFormation lays out the grid below origin, one sprite size apart
// Every enemy shares pool and fires downward
func NewFormation(origin vmath.Vec2, pool *BulletPool, life int) *Formation {
	f := &Formation{}
	step := asset.Get(asset.SpriteAlien1)

	pos := origin
	for row := 0; row < FormationRows; row++ {
		pos.Y += step.Height
		pos.X = origin.X
		sprite := asset.AlienForRow(row)
		for col := 0; col < FormationCols; col++ {
			pos.X += step.Width
			f.Enemies[row][col] = NewCharacter(pos, sprite, pool, 1, life)
		}
	}
	return f
}

// At returns the enemy in cell c
func (f *Formation) At(c Cell) *Character {
	return &f.Enemies[c.Row][c.Col]
}

// Reset reactivates every enemy at its recorded origin
func (f *Formation) Reset() {
	for row := range f.Enemies {
		for col := range f.Enemies[row] {
			f.Enemies[row][col].Reset()
		}
	}
}

// ActiveCount returns the number of enemies still alive
func (f *Formation) ActiveCount() int {
	n := 0
	for row := range f.Enemies {
		for col := range f.Enemies[row] {
			if f.Enemies[row][col].Active {
				n++
			}
		}
	}
	return n
}

// AppendActive appends the cells of live enemies to dst in row-major order
func (f *Formation) AppendActive(dst []Cell) []Cell {
	for row := range f.Enemies {
		for col := range f.Enemies[row] {
			if f.Enemies[row][col].Active {
				dst = append(dst, Cell{Row: row, Col: col})
			}
		}
	}
	return dst
}

// ForEachActive calls fn for every live enemy in row-major order
func (f *Formation) ForEachActive(fn func(c Cell, e *Character)) {
	for row := range f.Enemies {
		for col := range f.Enemies[row] {
			e := &f.Enemies[row][col]
			if e.Active {
				fn(Cell{Row: row, Col: col}, e)
			}
		}
	}
}
