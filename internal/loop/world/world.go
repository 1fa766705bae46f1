// Package world advances the game state one tick at a time: spawning,
// movement, and collision resolution. It never blocks and never fails.
package world

import (
	"math/rand"

	"github.com/tomz197/spaceship/internal/loop/config"
	"github.com/tomz197/spaceship/internal/object"
	"github.com/tomz197/spaceship/internal/physics"
)

// World holds the full simulation state for the local player.
type World struct {
	Screen      object.Screen
	Ship        *object.Ship
	Projectiles []*object.Projectile
	Hostiles    [len(object.Kinds)][]*object.Hostile // One collection per kind, insertion ordered
	Score       int
	Ticks       uint64

	spawner *Spawner
	events  []Event // Reused between ticks
}

// New creates a world with the ship at its start position.
func New(rng *rand.Rand) *World {
	return &World{
		Screen:  object.NewScreen(config.ScreenWidth, config.ScreenHeight),
		Ship:    object.NewShip(config.ShipStartX, config.ShipStartY),
		spawner: NewSpawner(rng),
	}
}

// AddHostile inserts a hostile at the end of its kind's collection.
func (w *World) AddHostile(h *object.Hostile) {
	w.Hostiles[h.Kind] = append(w.Hostiles[h.Kind], h)
}

// HostileCount returns the number of live hostiles across all kinds.
func (w *World) HostileCount() int {
	n := 0
	for _, list := range w.Hostiles {
		n += len(list)
	}
	return n
}

// LocalProjectiles returns how many projectiles the local player has in flight.
func (w *World) LocalProjectiles() int {
	n := 0
	for _, p := range w.Projectiles {
		if p.Owner == object.OwnerLocal {
			n++
		}
	}
	return n
}

// Fire launches a projectile from the ship's muzzle.
// Returns false when MaxBullets local projectiles are already in flight.
func (w *World) Fire() bool {
	if w.LocalProjectiles() >= config.MaxBullets {
		return false
	}
	x, y := w.Ship.Muzzle()
	w.Projectiles = append(w.Projectiles, object.NewProjectile(x, y, object.OwnerLocal))
	w.emit(Event{Type: EventProjectileFired, X: x, Y: y})
	return true
}

// Step advances the world by one tick using the frame's input.
// The returned events are only valid until the next call to Step.
func (w *World) Step(in object.Input) []Event {
	w.events = w.events[:0]
	w.Ticks++

	for i := 0; i < in.Fire; i++ {
		w.Fire()
	}

	w.moveShip(in)
	w.advanceProjectiles()

	if h := w.spawner.Update(w.Score, w.Screen); h != nil {
		w.AddHostile(h)
	}

	w.advanceHostiles()
	w.checkProjectileHostileCollisions()
	w.sweep()

	return w.events
}

// moveShip applies held directions and keeps the ship inside the play area.
func (w *World) moveShip(in object.Input) {
	s := w.Ship
	if in.Left {
		s.X -= config.PlayerSpeed
	}
	if in.Right {
		s.X += config.PlayerSpeed
	}
	if in.Up {
		s.Y -= config.PlayerSpeed
	}
	if in.Down {
		s.Y += config.PlayerSpeed
	}

	s.X = physics.Clamp(s.X, 0, float64(w.Screen.Width-config.ShipWidth))
	s.Y = physics.Clamp(s.Y, 0, float64(w.Screen.Height-config.ShipHeight))
}

// advanceProjectiles moves projectiles up and drops the ones that left the screen.
func (w *World) advanceProjectiles() {
	for _, p := range w.Projectiles {
		p.Y -= config.BulletSpeed
		if p.OffTop() {
			p.MarkDestroyed()
		}
	}
}

// advanceHostiles moves every hostile down and resolves ship contact.
// A hostile touching the ship deals its contact damage for this tick and is
// sent back above the top edge; it keeps its identity and health.
func (w *World) advanceHostiles() {
	shipRect := w.Ship.Rect()
	bottom := float64(w.Screen.Height)

	for _, list := range w.Hostiles {
		for _, h := range list {
			h.Y += h.Kind.Speed()

			if h.Y > bottom {
				h.MarkDestroyed()
				w.emit(Event{Type: EventHostileEscaped, Kind: h.Kind, X: h.X, Y: h.Y})
				continue
			}

			if h.Rect().Overlaps(shipRect) {
				damage := h.Kind.ContactDamage()
				w.Ship.HP -= damage
				w.emit(Event{Type: EventShipHit, Kind: h.Kind, X: h.X, Y: h.Y, Damage: damage})
				h.Y = config.RespawnY
			}
		}
	}
}

// checkProjectileHostileCollisions resolves projectile hits.
// Hostiles are visited kind by kind in insertion order, and for each one the
// projectiles in insertion order; the first overlapping projectile is consumed.
func (w *World) checkProjectileHostileCollisions() {
	for _, list := range w.Hostiles {
		for _, h := range list {
			if h.IsDestroyed() {
				continue
			}
			hr := h.Rect()
			for _, p := range w.Projectiles {
				if p.IsDestroyed() || !hr.Overlaps(p.Rect()) {
					continue
				}
				p.MarkDestroyed()
				h.HP -= h.Kind.HitDamage()
				if h.HP <= 0 {
					h.MarkDestroyed()
					w.Score++
					w.emit(Event{Type: EventHostileDestroyed, Kind: h.Kind, X: h.X, Y: h.Y})
					break
				}
			}
		}
	}
}

// sweep compacts every collection, dropping entities marked for removal.
func (w *World) sweep() {
	kept := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		if !p.IsDestroyed() {
			kept = append(kept, p)
		}
	}
	clear(w.Projectiles[len(kept):])
	w.Projectiles = kept

	for kind, list := range w.Hostiles {
		keptHostiles := list[:0]
		for _, h := range list {
			if !h.IsDestroyed() {
				keptHostiles = append(keptHostiles, h)
			}
		}
		clear(list[len(keptHostiles):])
		w.Hostiles[kind] = keptHostiles
	}
}

func (w *World) emit(e Event) {
	w.events = append(w.events, e)
}
