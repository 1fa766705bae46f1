package client

import (
	"github.com/tomz197/spaceship/internal/draw"
	"github.com/tomz197/spaceship/internal/object"
	"github.com/tomz197/spaceship/internal/session"
)

// GameState represents the current game phase.
type GameState int

const (
	GameStateMenu    GameState = iota // Title screen
	GameStatePlaying                  // Active gameplay
)

// explosion is a short-lived effect drawn where a boss died.
type explosion struct {
	X, Y  float64
	ticks int // Frames left
}

// ClientState holds per-player state outside the simulation.
type ClientState struct {
	Input     object.Input
	GameState GameState
	Running   bool // Client loop running

	// Code entry field on the title screen.
	Entering bool
	Entry    []byte

	// Latest state received from the peer, nil until one arrives.
	Remote *session.PeerState

	linkFailed bool
	explosions []explosion
	sounds     []draw.SoundID // Sounds to play this frame
}

// NewClientState creates a new initialized client state.
func NewClientState() *ClientState {
	return &ClientState{
		GameState: GameStateMenu,
		Running:   true,
	}
}
