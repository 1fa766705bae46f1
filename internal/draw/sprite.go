package draw

import (
	"math"
	"math/rand"

	"github.com/tomz197/spaceship/internal/loop/config"
)

// SpriteID names an image the game can draw.
type SpriteID int

const (
	SpriteBackground     SpriteID = iota // Early game backdrop
	SpriteBackgroundLate                 // Backdrop once fast hostiles appear
	SpriteShip
	SpriteRemoteShip
	SpriteProjectile
	SpriteRemoteProjectile
	SpriteBasic
	SpriteFast
	SpriteBoss
	SpriteExplosion
)

// SoundID names a one-shot sound effect.
type SoundID int

const (
	SoundBullet SoundID = iota
	SoundEnemyDie
)

// Sprite is a vector image. Outline and Dots are in unit space and are
// stretched to W x H logical units when drawn.
type Sprite struct {
	W, H    float64
	Outline []Point
	Filled  bool
	Dots    []Point
}

// DefaultSprites returns the built-in sprite table.
func DefaultSprites() map[SpriteID]Sprite {
	ship := []Point{{0.5, 0}, {0.9, 0.85}, {0.5, 0.65}, {0.1, 0.85}}
	bolt := []Point{{0.4, 0}, {0.6, 0}, {0.6, 1}, {0.4, 1}}

	return map[SpriteID]Sprite{
		SpriteBackground:     {W: config.ScreenWidth, H: config.ScreenHeight, Dots: starField(40, 1)},
		SpriteBackgroundLate: {W: config.ScreenWidth, H: config.ScreenHeight, Dots: starField(120, 2)},
		SpriteShip:           {W: config.ShipWidth, H: config.ShipHeight, Outline: ship},
		SpriteRemoteShip:     {W: config.ShipWidth, H: config.ShipHeight, Outline: ship, Filled: true},
		SpriteProjectile:     {W: config.BulletWidth, H: config.BulletHeight, Outline: bolt, Filled: true},
		SpriteRemoteProjectile: {
			W: config.BulletWidth, H: config.BulletHeight, Outline: bolt,
		},
		SpriteBasic:     {W: config.BasicSize, H: config.BasicSize, Outline: []Point{{0.5, 0}, {1, 0.5}, {0.5, 1}, {0, 0.5}}},
		SpriteFast:      {W: config.FastSize, H: config.FastSize, Outline: []Point{{0, 0}, {1, 0}, {0.5, 1}}, Filled: true},
		SpriteBoss:      {W: config.BossSize, H: config.BossSize, Outline: regular(8, 0.5, 0.5)},
		SpriteExplosion: {W: 150, H: 150, Outline: regular(16, 0.5, 0.2)},
	}
}

// DefaultSounds maps sound effects to the bytes that play them.
func DefaultSounds() map[SoundID]string {
	return map[SoundID]string{
		SoundBullet:   "\a",
		SoundEnemyDie: "\a",
	}
}

// regular returns an n-gon centered in the unit square. With inner < outer
// every other vertex is pulled in, giving a star.
func regular(n int, outer, inner float64) []Point {
	pts := make([]Point, n)
	for i := range pts {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
		pts[i] = Point{X: 0.5 + r*math.Cos(a), Y: 0.5 + r*math.Sin(a)}
	}
	return pts
}

// starField scatters n fixed points over the unit square.
func starField(n int, seed int64) []Point {
	rng := rand.New(rand.NewSource(seed))
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Point{X: rng.Float64(), Y: rng.Float64()}
	}
	return pts
}
