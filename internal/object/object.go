// Package object holds the plain entity records the simulation operates on.
package object

import (
	"github.com/tomz197/spaceship/internal/input"
	"github.com/tomz197/spaceship/internal/physics"
)

// Input is an alias for the input package's Input type.
type Input = input.Input

// Screen represents the play area dimensions.
type Screen struct {
	Width   int
	Height  int
	CenterX int
	CenterY int
}

// NewScreen creates a screen of the given size with its center precomputed.
func NewScreen(width, height int) Screen {
	return Screen{
		Width:   width,
		Height:  height,
		CenterX: width / 2,
		CenterY: height / 2,
	}
}

// Bounds returns the play area as a rectangle anchored at the origin.
func (s Screen) Bounds() physics.Rect {
	return physics.NewRect(0, 0, float64(s.Width), float64(s.Height))
}

// Owner identifies who fired a projectile.
type Owner int

// OwnerLocal marks shots fired by this player's ship.
const OwnerLocal Owner = 1

// String returns a short label for logs.
func (o Owner) String() string {
	if o == OwnerLocal {
		return "local"
	}
	return "unknown"
}
