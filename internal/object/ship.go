package object

import (
	"github.com/tomz197/spaceship/internal/loop/config"
	"github.com/tomz197/spaceship/internal/physics"
)

// Ship is a player-controlled spaceship.
// HP has no floor: sustained contact can push it below zero.
type Ship struct {
	X, Y float64 // Top-left corner
	HP   int
}

// NewShip creates a ship at (x,y) with full health.
func NewShip(x, y float64) *Ship {
	return &Ship{
		X:  x,
		Y:  y,
		HP: config.ShipStartHP,
	}
}

// Rect returns the ship's bounding box at its current position.
func (s *Ship) Rect() physics.Rect {
	return physics.NewRect(s.X, s.Y, config.ShipWidth, config.ShipHeight)
}

// Muzzle returns where a new projectile appears: centered on the ship, just above its nose.
func (s *Ship) Muzzle() (float64, float64) {
	x := s.X + config.ShipWidth/2 - config.BulletWidth/2
	y := s.Y - config.BulletHeight
	return x, y
}
