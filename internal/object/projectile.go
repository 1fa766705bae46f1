package object

import (
	"github.com/tomz197/spaceship/internal/loop/config"
	"github.com/tomz197/spaceship/internal/physics"
)

// Projectile is a bullet travelling straight up.
type Projectile struct {
	X, Y      float64 // Top-left corner
	Owner     Owner   // Who fired it
	destroyed bool    // Marked for removal
}

// NewProjectile creates a projectile at (x,y) fired by owner.
func NewProjectile(x, y float64, owner Owner) *Projectile {
	return &Projectile{
		X:     x,
		Y:     y,
		Owner: owner,
	}
}

// Rect returns the projectile's bounding box at its current position.
func (p *Projectile) Rect() physics.Rect {
	return physics.NewRect(p.X, p.Y, config.BulletWidth, config.BulletHeight)
}

// OffTop reports whether the projectile has fully left the top of the play area.
func (p *Projectile) OffTop() bool {
	return p.Y+config.BulletHeight < 0
}

// MarkDestroyed marks the projectile for removal.
func (p *Projectile) MarkDestroyed() {
	p.destroyed = true
}

// IsDestroyed returns true if the projectile is marked for removal.
func (p *Projectile) IsDestroyed() bool {
	return p.destroyed
}
