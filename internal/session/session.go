// Package session pairs two players over TCP. The host listens on a port
// derived from a room code and the joiner dials it; once connected both
// sides stream their ship state to each other every tick.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math/rand"
	"net"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/sync/errgroup"

	"github.com/tomz197/spaceship/internal/loop/config"
)

// Role is the side of the connection a session plays.
type Role uint8

const (
	RoleHost Role = iota
	RoleJoiner
)

// String returns the role name.
func (r Role) String() string {
	if r == RoleHost {
		return "host"
	}
	return "joiner"
}

// State is the session lifecycle state.
type State int32

const (
	StateIdle State = iota
	StateConnecting
	StateConnected
	StateFailed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Options configures a session. Zero values fall back to the defaults.
type Options struct {
	PortBase       int           // First port of the room range
	JoinHost       string        // Address the joiner dials
	ConnectTimeout time.Duration // Dial timeout, 0 waits indefinitely
	ReadTimeout    time.Duration // Max silence from the peer, negative disables
	Logger         *log.Logger
	Rand           *rand.Rand // Source for room codes
}

func (o Options) withDefaults() Options {
	if o.PortBase == 0 {
		o.PortBase = config.PortBase
	}
	if o.JoinHost == "" {
		o.JoinHost = config.DefaultJoinHost
	}
	if o.ReadTimeout == 0 {
		o.ReadTimeout = config.ReadTimeout
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o
}

// Session is one side of a two-player link.
// Connected and Exchange never block and are safe to call every frame.
type Session struct {
	ID   uuid.UUID
	role Role
	code string
	port int
	opts Options
	log  *log.Logger

	state  atomic.Int32
	remote atomic.Pointer[PeerState]
	peerID atomic.Pointer[string]
	sendCh chan PeerState // Latest local state wins

	mu  sync.Mutex
	err error

	ctx       context.Context
	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once
}

func newSession(ctx context.Context, role Role, code string, port int, opts Options) *Session {
	ctx, cancel := context.WithCancel(ctx)
	id := uuid.New()
	s := &Session{
		ID:     id,
		role:   role,
		code:   code,
		port:   port,
		opts:   opts,
		log:    opts.Logger.WithPrefix("session").With("role", role, "code", code, "id", id),
		sendCh: make(chan PeerState, 1),
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	s.state.Store(int32(StateConnecting))
	return s
}

// NewHost generates a room code, listens on its port and waits for exactly
// one peer in the background.
func NewHost(ctx context.Context, opts Options) (*Session, error) {
	opts = opts.withDefaults()
	code := GenerateCode(opts.Rand)
	port, err := PortForCode(opts.PortBase, code)
	if err != nil {
		return nil, err
	}

	ln, err := net.Listen("tcp", ":"+strconv.Itoa(port))
	if err != nil {
		return nil, fmt.Errorf("listen on port %d: %w", port, err)
	}

	s := newSession(ctx, RoleHost, code, port, opts)
	s.log.Info("waiting for peer", "port", port)
	go s.run(func() (net.Conn, error) { return s.accept(ln) })
	return s, nil
}

// NewJoiner dials the host for code once in the background. There is no retry.
func NewJoiner(ctx context.Context, code string, opts Options) (*Session, error) {
	opts = opts.withDefaults()
	port, err := PortForCode(opts.PortBase, code)
	if err != nil {
		return nil, err
	}

	s := newSession(ctx, RoleJoiner, code, port, opts)
	addr := net.JoinHostPort(opts.JoinHost, strconv.Itoa(port))
	s.log.Info("joining", "addr", addr)
	go s.run(func() (net.Conn, error) { return s.dial(addr) })
	return s, nil
}

// Role returns which side of the link this session is.
func (s *Session) Role() Role { return s.role }

// Code returns the room code.
func (s *Session) Code() string { return s.code }

// Port returns the port derived from the room code.
func (s *Session) Port() int { return s.port }

// State returns the current lifecycle state.
func (s *Session) State() State {
	return State(s.state.Load())
}

// Connected reports whether the peer link is up.
func (s *Session) Connected() bool {
	return s.State() == StateConnected
}

// Err returns the error that moved the session to StateFailed, if any.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// RemotePeerID returns the peer's ID once its hello has arrived.
func (s *Session) RemotePeerID() string {
	if id := s.peerID.Load(); id != nil {
		return *id
	}
	return ""
}

// Exchange queues the local state for sending and returns the latest state
// received from the peer. ok is false until the peer has sent one.
func (s *Session) Exchange(local PeerState) (remote PeerState, ok bool) {
	if !s.Connected() {
		return PeerState{}, false
	}

	select {
	case s.sendCh <- local:
	default:
		// Replace the unsent state with the newer one.
		select {
		case <-s.sendCh:
		default:
		}
		select {
		case s.sendCh <- local:
		default:
		}
	}

	if r := s.remote.Load(); r != nil {
		return *r, true
	}
	return PeerState{}, false
}

// Close aborts a pending accept or dial, drops the link and waits for the
// background goroutines to finish.
func (s *Session) Close() error {
	s.closeOnce.Do(s.cancel)
	<-s.done
	return nil
}

// run establishes the connection with connect and then serves it until the
// peer goes away or the session is closed.
func (s *Session) run(connect func() (net.Conn, error)) {
	defer close(s.done)

	conn, err := connect()
	if err != nil {
		s.finish(err)
		return
	}
	defer conn.Close()

	s.state.Store(int32(StateConnected))
	s.log.Info("peer connected", "remote", conn.RemoteAddr())

	g, ctx := errgroup.WithContext(s.ctx)
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	g.Go(func() error { return s.readLoop(conn) })
	g.Go(func() error { return s.writeLoop(ctx, conn) })
	s.finish(g.Wait())
}

// finish records how the session ended. Errors caused by Close are not failures.
func (s *Session) finish(err error) {
	if s.ctx.Err() != nil || err == nil {
		s.state.Store(int32(StateIdle))
		s.log.Debug("session closed")
		return
	}

	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
	s.state.Store(int32(StateFailed))
	s.log.Error("session failed", "err", err)
}

func (s *Session) accept(ln net.Listener) (net.Conn, error) {
	stop := context.AfterFunc(s.ctx, func() { ln.Close() })
	defer stop()
	defer ln.Close()

	conn, err := ln.Accept()
	if err != nil {
		return nil, fmt.Errorf("accept on port %d: %w", s.port, err)
	}
	return conn, nil
}

func (s *Session) dial(addr string) (net.Conn, error) {
	d := net.Dialer{Timeout: s.opts.ConnectTimeout}
	conn, err := d.DialContext(s.ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	return conn, nil
}

// readLoop decodes frames until the connection breaks or the peer goes silent.
func (s *Session) readLoop(conn net.Conn) error {
	r := bufio.NewReader(conn)
	var window seqWindow

	for {
		if s.opts.ReadTimeout > 0 {
			if err := conn.SetReadDeadline(time.Now().Add(s.opts.ReadTimeout)); err != nil {
				return fmt.Errorf("set read deadline: %w", err)
			}
		}

		msg, err := Decode(r)
		if err != nil {
			return fmt.Errorf("read from peer: %w", err)
		}

		switch msg.Type {
		case MsgHello:
			var hello Hello
			if err := msgpack.Unmarshal(msg.Payload, &hello); err != nil {
				return fmt.Errorf("decode hello: %w", err)
			}
			s.peerID.Store(&hello.PeerID)
			s.log.Info("peer introduced", "peer", hello.PeerID)

		case MsgState:
			if !window.Accept(msg.Seq) {
				s.log.Debug("dropping stale state", "seq", msg.Seq)
				continue
			}
			var state PeerState
			if err := msgpack.Unmarshal(msg.Payload, &state); err != nil {
				return fmt.Errorf("decode state: %w", err)
			}
			s.remote.Store(&state)

		default:
			s.log.Warn("unknown message", "type", msg.Type)
		}
	}
}

// writeLoop sends the hello and then every state queued by Exchange.
func (s *Session) writeLoop(ctx context.Context, conn net.Conn) error {
	w := bufio.NewWriter(conn)
	var seq uint32

	send := func(t MessageType, v any) error {
		seq++
		msg, err := newMessage(t, seq, v)
		if err != nil {
			return fmt.Errorf("encode %s: %w", t, err)
		}
		if err := msg.Encode(w); err != nil {
			return fmt.Errorf("write %s: %w", t, err)
		}
		return w.Flush()
	}

	if err := send(MsgHello, Hello{PeerID: s.ID.String()}); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case state := <-s.sendCh:
			if err := send(MsgState, state); err != nil {
				return err
			}
		}
	}
}
