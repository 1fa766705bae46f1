package client

import (
	"bufio"
	"context"
	"io"
	"math/rand"
	"net"
	"strconv"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/tomz197/spaceship/internal/draw"
	"github.com/tomz197/spaceship/internal/input"
	"github.com/tomz197/spaceship/internal/loop/client/mocks"
	"github.com/tomz197/spaceship/internal/loop/config"
	"github.com/tomz197/spaceship/internal/object"
	"github.com/tomz197/spaceship/internal/session"
)

func newTestClient(p Presenter) *Client {
	return NewClient(bufio.NewReader(strings.NewReader("")), p, Options{
		Rand: rand.New(rand.NewSource(1)),
	})
}

// allowFrames accepts any drawing calls.
func allowFrames(p *mocks.MockPresenter) {
	p.EXPECT().Begin(gomock.Any()).AnyTimes()
	p.EXPECT().DrawSprite(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	p.EXPECT().DrawHealthBar(gomock.Any()).AnyTimes()
	p.EXPECT().DrawScore(gomock.Any()).AnyTimes()
	p.EXPECT().DrawStatus(gomock.Any()).AnyTimes()
	p.EXPECT().DrawMenu(gomock.Any()).AnyTimes()
	p.EXPECT().PlaySound(gomock.Any()).AnyTimes()
	p.EXPECT().End().Return(nil).AnyTimes()
}

func pressed(keys string) object.Input {
	return object.Input{Pressed: []byte(keys)}
}

func TestMenu_PlayDrawsFirstFrame(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mocks.NewMockPresenter(ctrl)

	gomock.InOrder(
		p.EXPECT().Begin(draw.SpriteBackground),
		p.EXPECT().DrawSprite(draw.SpriteShip, float64(config.ShipStartX), float64(config.ShipStartY)),
		p.EXPECT().DrawHealthBar(config.ShipStartHP),
		p.EXPECT().DrawScore(0),
		p.EXPECT().End().Return(nil),
	)

	c := newTestClient(p)
	if err := c.step(context.Background(), pressed("p")); err != nil {
		t.Fatalf("step: %v", err)
	}
	if c.state.GameState != GameStatePlaying {
		t.Errorf("state = %d, want playing", c.state.GameState)
	}
}

func TestMenu_StartKeys(t *testing.T) {
	for _, key := range []string{"p", "P", "\r", "\n", " "} {
		t.Run(strconv.Quote(key), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			p := mocks.NewMockPresenter(ctrl)
			allowFrames(p)

			c := newTestClient(p)
			c.step(context.Background(), pressed(key))
			if c.state.GameState != GameStatePlaying {
				t.Errorf("key %q did not start the game", key)
			}
		})
	}
}

func TestMenu_ExitKeys(t *testing.T) {
	for _, key := range []string{"x", "X", "q", "Q", "\x1b"} {
		t.Run(strconv.Quote(key), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			p := mocks.NewMockPresenter(ctrl)

			c := newTestClient(p)
			if err := c.step(context.Background(), pressed(key)); err != nil {
				t.Fatalf("step: %v", err)
			}
			if c.state.Running {
				t.Errorf("key %q did not exit", key)
			}
		})
	}
}

func TestStep_Quit(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mocks.NewMockPresenter(ctrl)

	c := newTestClient(p)
	c.state.GameState = GameStatePlaying
	c.step(context.Background(), object.Input{Quit: true})
	if c.state.Running {
		t.Errorf("Ctrl-C did not stop the client")
	}

	c = newTestClient(p)
	c.state.GameState = GameStatePlaying
	c.step(context.Background(), pressed("q"))
	if c.state.Running {
		t.Errorf("q did not stop the client")
	}
}

func TestMenu_CodeEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mocks.NewMockPresenter(ctrl)

	var menu draw.Menu
	p.EXPECT().Begin(gomock.Any()).AnyTimes()
	p.EXPECT().DrawMenu(gomock.Any()).Do(func(m draw.Menu) { menu = m }).AnyTimes()
	p.EXPECT().End().Return(nil).AnyTimes()

	c := newTestClient(p)
	ctx := context.Background()

	c.step(ctx, pressed("c"))
	if !c.state.Entering || !menu.Entering {
		t.Fatalf("c did not open code entry")
	}

	c.step(ctx, pressed("12a34567"))
	if got := string(c.state.Entry); got != "123456" {
		t.Errorf("entry = %q, want 123456", got)
	}

	c.step(ctx, pressed(string(input.KeyDelete)))
	if menu.Entry != "12345" {
		t.Errorf("menu entry = %q, want 12345", menu.Entry)
	}

	c.step(ctx, pressed("\x1b"))
	if c.state.Entering || len(c.state.Entry) != 0 {
		t.Errorf("escape did not close entry: entering=%v entry=%q", c.state.Entering, c.state.Entry)
	}
	if c.state.GameState != GameStateMenu || !c.state.Running {
		t.Errorf("escape in code entry left the menu")
	}
}

func TestMenu_HostFromCodeEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mocks.NewMockPresenter(ctrl)
	allowFrames(p)

	const seed = 5
	code := session.GenerateCode(rand.New(rand.NewSource(seed)))
	offset, _ := session.PortForCode(0, code)
	c := NewClient(bufio.NewReader(strings.NewReader("")), p, Options{
		Rand:    rand.New(rand.NewSource(1)),
		Session: session.Options{PortBase: freePort(t) - offset, Rand: rand.New(rand.NewSource(seed))},
	})
	defer c.closeSession()
	ctx := context.Background()

	c.step(ctx, pressed("c"))
	c.step(ctx, pressed("1m2"))

	if c.session == nil || c.session.Role() != session.RoleHost {
		t.Fatalf("m in code entry did not host")
	}
	if got := string(c.state.Entry); got != "12" {
		t.Errorf("entry = %q, want 12", got)
	}
	if !c.state.Entering || c.state.GameState != GameStateMenu {
		t.Errorf("hosting changed the menu: entering=%v state=%v", c.state.Entering, c.state.GameState)
	}
}

func TestMenu_EnterWithEmptyCodeStays(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mocks.NewMockPresenter(ctrl)
	allowFrames(p)

	c := newTestClient(p)
	c.step(context.Background(), pressed("c\r"))
	if c.state.GameState != GameStateMenu || !c.state.Entering {
		t.Errorf("enter with an empty code changed state")
	}
}

func TestMenu_JoinWithoutHostFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mocks.NewMockPresenter(ctrl)
	var status string
	p.EXPECT().DrawStatus(gomock.Any()).Do(func(s string) { status = s }).AnyTimes()
	allowFrames(p)

	port := freePort(t)
	c := NewClient(bufio.NewReader(strings.NewReader("")), p, Options{
		Rand:    rand.New(rand.NewSource(1)),
		Session: session.Options{PortBase: port - 56},
	})
	defer c.closeSession()
	ctx := context.Background()

	c.step(ctx, pressed("c123456\r"))
	if c.state.GameState != GameStatePlaying {
		t.Fatalf("joining did not start the game")
	}
	if c.session == nil || c.session.Role() != session.RoleJoiner {
		t.Fatalf("no joiner session")
	}

	deadline := time.Now().Add(5 * time.Second)
	for status != "link failed" {
		if time.Now().After(deadline) {
			t.Fatalf("status = %q, want link failed", status)
		}
		time.Sleep(5 * time.Millisecond)
		c.step(ctx, object.Input{})
	}
}

func TestMenu_InvalidCodeFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mocks.NewMockPresenter(ctrl)
	allowFrames(p)

	c := newTestClient(p)
	c.step(context.Background(), pressed("c12\r"))

	if c.state.GameState != GameStatePlaying {
		t.Errorf("enter with a code did not start the game")
	}
	if c.session != nil || c.statusText() != "link failed" {
		t.Errorf("short code: session = %v, status = %q", c.session, c.statusText())
	}
}

func TestPlaying_FireSound(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mocks.NewMockPresenter(ctrl)
	p.EXPECT().PlaySound(draw.SoundBullet).Times(1)
	allowFrames(p)

	c := newTestClient(p)
	c.state.GameState = GameStatePlaying
	c.step(context.Background(), object.Input{Fire: 1})

	if n := len(c.world.Projectiles); n != 1 {
		t.Errorf("projectiles = %d, want 1", n)
	}
}

func TestPlaying_BossExplosion(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mocks.NewMockPresenter(ctrl)
	p.EXPECT().PlaySound(draw.SoundEnemyDie).Times(1)
	p.EXPECT().DrawSprite(draw.SpriteExplosion, 400.0, 100.0).MinTimes(1)
	allowFrames(p)

	c := newTestClient(p)
	c.state.GameState = GameStatePlaying

	boss := object.NewHostile(400, 100, object.KindBoss)
	boss.HP = config.BossProjectileDamage
	c.world.AddHostile(boss)
	c.world.Projectiles = append(c.world.Projectiles, object.NewProjectile(500, 200, object.OwnerLocal))

	c.step(context.Background(), object.Input{})
	if c.world.Score != 1 {
		t.Errorf("score = %d, want 1", c.world.Score)
	}

	for i := 1; i < config.ExplosionTicks; i++ {
		c.step(context.Background(), object.Input{})
	}
	if len(c.state.explosions) != 0 {
		t.Errorf("explosion still shown after %d ticks", config.ExplosionTicks)
	}
}

func TestPlaying_BackgroundSwitch(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mocks.NewMockPresenter(ctrl)
	p.EXPECT().Begin(draw.SpriteBackgroundLate).Times(1)
	allowFrames(p)

	c := newTestClient(p)
	c.state.GameState = GameStatePlaying
	c.world.Score = config.FastScoreLevel
	c.step(context.Background(), object.Input{})
}

func TestPlaying_DrawsRemote(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mocks.NewMockPresenter(ctrl)
	p.EXPECT().DrawSprite(draw.SpriteRemoteShip, 100.0, 200.0).Times(1)
	p.EXPECT().DrawSprite(draw.SpriteRemoteProjectile, 175.0, 50.0).Times(1)
	allowFrames(p)

	c := newTestClient(p)
	c.state.GameState = GameStatePlaying
	c.state.Remote = &session.PeerState{X: 100, Y: 200, HP: 100, Projectiles: []session.Point{{X: 175, Y: 50}}}
	c.step(context.Background(), object.Input{})
}

func TestRun_HostClosedOnExit(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mocks.NewMockPresenter(ctrl)
	allowFrames(p)

	const seed = 21
	code := session.GenerateCode(rand.New(rand.NewSource(seed)))
	offset, _ := session.PortForCode(0, code)
	port := freePort(t)

	pr, pw := io.Pipe()
	defer pw.Close()

	c := NewClient(bufio.NewReader(pr), p, Options{
		Session: session.Options{PortBase: port - offset, Rand: rand.New(rand.NewSource(seed))},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	if _, err := pw.Write([]byte("m")); err != nil {
		t.Fatalf("write key: %v", err)
	}

	var peer net.Conn
	deadline := time.Now().Add(5 * time.Second)
	for {
		conn, err := net.Dial("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(port)))
		if err == nil {
			peer = conn
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("host never listened on %d: %v", port, err)
		}
		time.Sleep(10 * time.Millisecond)
	}
	defer peer.Close()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop")
	}

	peer.SetReadDeadline(time.Now().Add(5 * time.Second))
	if _, err := io.Copy(io.Discard, peer); err != nil {
		t.Errorf("host link still open after exit: %v", err)
	}
}

func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()
	return ln.Addr().(*net.TCPAddr).Port
}
