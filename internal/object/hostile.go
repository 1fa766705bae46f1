package object

import (
	"github.com/tomz197/spaceship/internal/loop/config"
	"github.com/tomz197/spaceship/internal/physics"
)

// HostileKind represents the enemy variant.
type HostileKind int

const (
	KindBasic HostileKind = iota
	KindFast
	KindBoss
)

// Kinds lists every hostile kind in collision order.
var Kinds = [...]HostileKind{KindBasic, KindFast, KindBoss}

// kindStats holds the fixed per-kind properties.
type kindStats struct {
	size          float64
	speed         float64
	hp            int
	contactDamage int
	hitDamage     int
}

var hostileStats = map[HostileKind]kindStats{
	KindBasic: {config.BasicSize, config.BasicSpeed, config.BasicHP, config.BasicContactDamage, config.ProjectileDamage},
	KindFast:  {config.FastSize, config.FastSpeed, config.FastHP, config.FastContactDamage, config.ProjectileDamage},
	KindBoss:  {config.BossSize, config.BossSpeed, config.BossHP, config.BossContactDamage, config.BossProjectileDamage},
}

// String returns the kind name.
func (k HostileKind) String() string {
	switch k {
	case KindBasic:
		return "basic"
	case KindFast:
		return "fast"
	case KindBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// Size returns the edge length of the kind's square bounding box.
func (k HostileKind) Size() float64 {
	return hostileStats[k].size
}

// Speed returns how far the kind moves down per tick.
func (k HostileKind) Speed() float64 {
	return hostileStats[k].speed
}

// StartHP returns the health a freshly spawned hostile of this kind has.
func (k HostileKind) StartHP() int {
	return hostileStats[k].hp
}

// ContactDamage returns the damage dealt to the ship per tick of overlap.
func (k HostileKind) ContactDamage() int {
	return hostileStats[k].contactDamage
}

// HitDamage returns the damage one projectile deals to this kind.
func (k HostileKind) HitDamage() int {
	return hostileStats[k].hitDamage
}

// Hostile is an enemy that damages the ship on contact and can be shot down.
type Hostile struct {
	X, Y      float64 // Top-left corner
	Kind      HostileKind
	HP        int
	destroyed bool
}

// NewHostile creates a hostile of the given kind at (x,y) with full health.
func NewHostile(x, y float64, kind HostileKind) *Hostile {
	return &Hostile{
		X:    x,
		Y:    y,
		Kind: kind,
		HP:   kind.StartHP(),
	}
}

// Rect returns the hostile's bounding box at its current position.
func (h *Hostile) Rect() physics.Rect {
	size := h.Kind.Size()
	return physics.NewRect(h.X, h.Y, size, size)
}

// MarkDestroyed marks the hostile for removal.
func (h *Hostile) MarkDestroyed() {
	h.destroyed = true
}

// IsDestroyed returns true if the hostile is marked for removal.
func (h *Hostile) IsDestroyed() bool {
	return h.destroyed
}
