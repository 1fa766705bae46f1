// Package client drives the game: it reads input, advances the world at a
// fixed tick rate, keeps the peer session in sync and hands every frame to
// a Presenter.
package client

import (
	"bufio"
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/spaceship/internal/draw"
	"github.com/tomz197/spaceship/internal/input"
	"github.com/tomz197/spaceship/internal/loop/config"
	"github.com/tomz197/spaceship/internal/loop/world"
	"github.com/tomz197/spaceship/internal/object"
	"github.com/tomz197/spaceship/internal/session"
)

//go:generate go tool mockgen -destination=./mocks/presenter_mock.go -package=mocks . Presenter

// Presenter is the drawing and audio surface. A frame is Begin, any number
// of draw and sound calls, then End.
type Presenter interface {
	Begin(background draw.SpriteID)
	DrawSprite(id draw.SpriteID, x, y float64)
	DrawHealthBar(hp int)
	DrawScore(score int)
	DrawStatus(text string)
	DrawMenu(menu draw.Menu)
	PlaySound(id draw.SoundID)
	End() error
}

// Options configures the client.
type Options struct {
	Session session.Options
	Logger  *log.Logger
	Rand    *rand.Rand // Spawner randomness
}

// Client runs one player's game.
type Client struct {
	presenter   Presenter
	inputStream *input.Stream
	state       *ClientState
	world       *world.World
	session     *session.Session
	sessionOpts session.Options
	log         *log.Logger
}

// NewClient creates a client reading keys from r and drawing to p.
func NewClient(r *bufio.Reader, p Presenter, opts Options) *Client {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	sessionOpts := opts.Session
	if sessionOpts.Logger == nil {
		sessionOpts.Logger = logger
	}

	return &Client{
		presenter:   p,
		inputStream: input.StartStream(r),
		state:       NewClientState(),
		world:       world.New(rng),
		sessionOpts: sessionOpts,
		log:         logger.WithPrefix("client"),
	}
}

// Run starts the client loop. Blocks until the player quits, the input ends
// or ctx is cancelled. Any open session is closed on return.
func (c *Client) Run(ctx context.Context) error {
	defer c.closeSession()

	for c.state.Running && ctx.Err() == nil {
		frameStart := time.Now()

		if err := c.step(ctx, input.ReadInput(c.inputStream)); err != nil {
			return err
		}

		elapsed := time.Since(frameStart)
		if elapsed < config.TickTime {
			time.Sleep(config.TickTime - elapsed)
		}
	}
	return nil
}

// step runs one tick: input handling, simulation, peer sync and drawing.
func (c *Client) step(ctx context.Context, in object.Input) error {
	c.state.Input = in
	c.state.sounds = c.state.sounds[:0]

	if in.Quit {
		c.state.Running = false
		return nil
	}

	switch c.state.GameState {
	case GameStateMenu:
		c.updateMenuState(ctx)
	case GameStatePlaying:
		c.updatePlayingState()
	}
	if !c.state.Running {
		return nil
	}

	c.syncPeer()
	return c.drawFrame()
}

// updateMenuState handles the title screen keys.
func (c *Client) updateMenuState(ctx context.Context) {
	for _, b := range c.state.Input.Pressed {
		// Hosting works from the code field too.
		if b == 'm' || b == 'M' {
			c.host(ctx)
			continue
		}
		if c.state.Entering {
			if c.updateCodeEntry(ctx, b) {
				return
			}
			continue
		}

		switch b {
		case 'p', 'P', input.KeyEnter, input.KeyNewline, input.KeySpace:
			c.startGame()
			return
		case 'c', 'C':
			c.state.Entering = true
		case 'x', 'X', 'q', 'Q', input.KeyEscape:
			c.state.Running = false
			return
		}
	}
}

// updateCodeEntry applies one key to the code field. Returns true when the
// key left the menu.
func (c *Client) updateCodeEntry(ctx context.Context, b byte) bool {
	switch {
	case b >= '0' && b <= '9':
		if len(c.state.Entry) < config.RoomCodeLength {
			c.state.Entry = append(c.state.Entry, b)
		}
	case b == input.KeyBackspace || b == input.KeyDelete:
		if n := len(c.state.Entry); n > 0 {
			c.state.Entry = c.state.Entry[:n-1]
		}
	case b == input.KeyEnter || b == input.KeyNewline:
		if len(c.state.Entry) == 0 {
			return false
		}
		c.join(ctx, string(c.state.Entry))
		c.state.Entering = false
		c.startGame()
		return true
	case b == input.KeyEscape:
		c.state.Entering = false
		c.state.Entry = c.state.Entry[:0]
	}
	return false
}

// startGame leaves the menu.
func (c *Client) startGame() {
	input.Reset(c.inputStream)
	c.state.GameState = GameStatePlaying
	c.log.Info("game started", "multiplayer", c.session != nil)
}

// updatePlayingState advances the world and collects effects for drawing.
func (c *Client) updatePlayingState() {
	for _, b := range c.state.Input.Pressed {
		if b == 'q' || b == 'Q' {
			c.state.Running = false
			return
		}
	}

	for _, e := range c.world.Step(c.state.Input) {
		switch e.Type {
		case world.EventProjectileFired:
			c.state.sounds = append(c.state.sounds, draw.SoundBullet)
		case world.EventHostileDestroyed:
			c.state.sounds = append(c.state.sounds, draw.SoundEnemyDie)
			if e.Kind == object.KindBoss {
				c.state.explosions = append(c.state.explosions, explosion{X: e.X, Y: e.Y, ticks: config.ExplosionTicks})
			}
		case world.EventShipHit:
			c.log.Debug("ship hit", "kind", e.Kind, "damage", e.Damage, "hp", c.world.Ship.HP)
		case world.EventHostileEscaped:
			c.log.Debug("hostile escaped", "kind", e.Kind)
		}
	}

	kept := c.state.explosions[:0]
	for _, ex := range c.state.explosions {
		ex.ticks--
		if ex.ticks > 0 {
			kept = append(kept, ex)
		}
	}
	c.state.explosions = kept
}

// host opens a hosted session unless one is already pending or live.
func (c *Client) host(ctx context.Context) {
	if c.session != nil && c.session.State() != session.StateFailed {
		return
	}
	c.closeSession()

	s, err := session.NewHost(ctx, c.sessionOpts)
	if err != nil {
		c.log.Error("could not host", "err", err)
		c.state.linkFailed = true
		return
	}
	c.session = s
	c.state.linkFailed = false
	c.log.Info("hosting", "code", s.Code(), "port", s.Port())
}

// join dials the host for code.
func (c *Client) join(ctx context.Context, code string) {
	c.closeSession()

	s, err := session.NewJoiner(ctx, code, c.sessionOpts)
	if err != nil {
		c.log.Error("could not join", "code", code, "err", err)
		c.state.linkFailed = true
		return
	}
	c.session = s
	c.state.linkFailed = false
}

func (c *Client) closeSession() {
	if c.session == nil {
		return
	}
	c.session.Close()
	c.session = nil
	c.state.Remote = nil
}

// syncPeer trades states with the peer once per tick.
func (c *Client) syncPeer() {
	if c.session == nil {
		return
	}

	if c.session.State() == session.StateFailed {
		if !c.state.linkFailed {
			c.log.Error("link failed", "err", c.session.Err())
			c.state.linkFailed = true
			c.state.Remote = nil
		}
		return
	}

	remote, ok := c.session.Exchange(c.localState())
	if ok {
		if c.state.Remote == nil {
			c.log.Info("peer state received", "peer", c.session.RemotePeerID())
		}
		c.state.Remote = &remote
	}
}

// localState captures what the peer needs to draw this player.
func (c *Client) localState() session.PeerState {
	w := c.world
	state := session.PeerState{
		X:     w.Ship.X,
		Y:     w.Ship.Y,
		HP:    w.Ship.HP,
		Score: w.Score,
	}
	for _, p := range w.Projectiles {
		state.Projectiles = append(state.Projectiles, session.Point{X: p.X, Y: p.Y})
	}
	return state
}

// statusText describes the link for the HUD.
func (c *Client) statusText() string {
	if c.state.linkFailed {
		return "link failed"
	}
	if c.session == nil {
		return ""
	}
	switch c.session.State() {
	case session.StateConnecting:
		if c.session.Role() == session.RoleHost {
			return "waiting for player 2 (code " + c.session.Code() + ")"
		}
		return "joining " + c.session.Code() + "..."
	case session.StateConnected:
		return "player 2 connected"
	default:
		return ""
	}
}
