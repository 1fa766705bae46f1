package world

import "github.com/tomz197/spaceship/internal/object"

// EventType identifies something the presentation layer may react to.
type EventType int

const (
	EventProjectileFired  EventType = iota // A local projectile left the ship
	EventShipHit                           // A hostile rammed the ship
	EventHostileDestroyed                  // A hostile's health dropped to zero
	EventHostileEscaped                    // A hostile left the bottom of the play area
)

// String returns the event name for logs.
func (t EventType) String() string {
	switch t {
	case EventProjectileFired:
		return "projectile_fired"
	case EventShipHit:
		return "ship_hit"
	case EventHostileDestroyed:
		return "hostile_destroyed"
	case EventHostileEscaped:
		return "hostile_escaped"
	default:
		return "unknown"
	}
}

// Event is emitted by World.Step.
type Event struct {
	Type   EventType
	Kind   object.HostileKind // Hostile involved, if any
	X, Y   float64            // Where it happened
	Damage int                // Damage dealt to the ship (EventShipHit)
}
