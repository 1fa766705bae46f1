// Package config centralizes all tunable game parameters.
package config

import "time"

// Play area in logical units. Everything in the simulation is positioned
// against these bounds; the presenter scales them to the terminal.
const (
	ScreenWidth  = 1200
	ScreenHeight = 800
)

// Ship
const (
	ShipWidth    = 200
	ShipHeight   = 200
	ShipStartHP  = 100
	PlayerSpeed  = 5 // Units per tick per held direction
	ShipStartX   = ScreenWidth/2 - ShipWidth/2
	ShipStartY   = ScreenHeight - ShipHeight
	HealthBarMax = 300 // Health bar width at full HP (3 units per HP)
)

// Projectiles
const (
	BulletWidth  = 50
	BulletHeight = 100
	BulletSpeed  = 6 // Units per tick, upward
	MaxBullets   = 4 // Concurrent local projectiles
)

// Hostiles
const (
	BasicSize = 100
	FastSize  = 120
	BossSize  = 250

	BasicSpeed = 1
	FastSpeed  = 1
	BossSpeed  = 0 // Bosses hold their position

	BasicHP = 1
	FastHP  = 1
	BossHP  = 500

	// Contact damage applied to the ship per tick of overlap.
	BasicContactDamage = 1
	FastContactDamage  = 5
	BossContactDamage  = 15

	// Damage a single projectile deals to a hostile.
	ProjectileDamage     = 1
	BossProjectileDamage = 10

	// Y a hostile is moved to after ramming the ship.
	RespawnY = -100
)

// Spawning
const (
	SpawnTimer     = 40 // Ticks between spawns
	FastScoreLevel = 40 // Score at which fast hostiles replace basic ones
)

// Effects
const (
	ExplosionTicks = 20 // Frames a boss explosion stays on screen
)

// Tick rate
const (
	TickRate = 60
	TickTime = time.Second / TickRate
)

// Matchmaking
const (
	PortBase        = 50000
	RoomCodeLength  = 6
	DefaultJoinHost = "127.0.0.1"
	ReadTimeout     = 10 * time.Second
)

// Terminal rendering
const (
	MaxTermWidth  = 160
	MaxTermHeight = 50
)
