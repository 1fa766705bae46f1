package client

import (
	"github.com/tomz197/spaceship/internal/draw"
	"github.com/tomz197/spaceship/internal/loop/config"
	"github.com/tomz197/spaceship/internal/object"
	"github.com/tomz197/spaceship/internal/session"
)

var hostileSprites = map[object.HostileKind]draw.SpriteID{
	object.KindBasic: draw.SpriteBasic,
	object.KindFast:  draw.SpriteFast,
	object.KindBoss:  draw.SpriteBoss,
}

var menuItems = []string{
	"[P] Play",
	"[C] Code",
	"[M] Host",
	"[X] Exit",
}

// drawFrame hands the current frame to the presenter.
func (c *Client) drawFrame() error {
	p := c.presenter

	background := draw.SpriteBackground
	if c.world.Score >= config.FastScoreLevel {
		background = draw.SpriteBackgroundLate
	}
	p.Begin(background)

	switch c.state.GameState {
	case GameStateMenu:
		c.drawMenu()
	case GameStatePlaying:
		c.drawPlaying()
	}

	for _, s := range c.state.sounds {
		p.PlaySound(s)
	}
	return p.End()
}

func (c *Client) drawMenu() {
	menu := draw.Menu{
		Title:    "SpaceShip Inc.",
		Items:    menuItems,
		Entering: c.state.Entering,
		Entry:    string(c.state.Entry),
		Status:   c.statusText(),
	}
	if c.session != nil && c.session.Role() == session.RoleHost {
		menu.HostCode = c.session.Code()
	}
	c.presenter.DrawMenu(menu)
}

func (c *Client) drawPlaying() {
	p := c.presenter
	w := c.world

	if r := c.state.Remote; r != nil {
		p.DrawSprite(draw.SpriteRemoteShip, r.X, r.Y)
		for _, pt := range r.Projectiles {
			p.DrawSprite(draw.SpriteRemoteProjectile, pt.X, pt.Y)
		}
	}

	p.DrawSprite(draw.SpriteShip, w.Ship.X, w.Ship.Y)
	for _, pr := range w.Projectiles {
		p.DrawSprite(draw.SpriteProjectile, pr.X, pr.Y)
	}
	for _, list := range w.Hostiles {
		for _, h := range list {
			p.DrawSprite(hostileSprites[h.Kind], h.X, h.Y)
		}
	}
	for _, ex := range c.state.explosions {
		p.DrawSprite(draw.SpriteExplosion, ex.X, ex.Y)
	}

	p.DrawHealthBar(w.Ship.HP)
	p.DrawScore(w.Score)
	if status := c.statusText(); status != "" {
		p.DrawStatus(status)
	}
}
