// Package input turns a raw terminal byte stream into per-frame key state.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals never report key releases, so held state is inferred from repeats.
const keyHoldDuration = 60 * time.Millisecond

// Key bytes the game reacts to.
const (
	KeyEnter     = '\r'
	KeyNewline   = '\n'
	KeyBackspace = '\b'
	KeyDelete    = '\x7f'
	KeyEscape    = '\x1b'
	KeyCtrlC     = '\x03'
	KeySpace     = ' '
)

// Input represents the current frame's input state.
type Input struct {
	Quit  bool
	Left  bool
	Right bool
	Up    bool
	Down  bool

	// Fire counts space presses received this frame; each press is one shot.
	Fire int

	// Pressed holds every byte received this frame in arrival order,
	// with arrow-key escape sequences removed.
	Pressed []byte
}

// keyState tracks the last time each movement key was pressed.
type keyState struct {
	left  time.Time
	right time.Time
	up    time.Time
	down  time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch      chan byte
	state   keyState
	closed  bool
	pending []byte // Unfinished escape sequence held for the next drain
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and accumulates all pressed keys.
func ReadInput(s *Stream) Input {
	return readInputAt(s, time.Now())
}

func readInputAt(s *Stream, now time.Time) Input {
	buf := s.pending
	s.pending = nil
	fresh := 0

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
			fresh++
		default:
			break drain
		}
	}

	// An arrow sequence can be split across two drains. A trailing partial
	// sequence is held back once; if nothing follows it, it is a plain Esc.
	if fresh > 0 && !s.closed {
		if n := partialEscape(buf); n > 0 {
			s.pending = append([]byte(nil), buf[len(buf)-n:]...)
			buf = buf[:len(buf)-n]
		}
	}

	input := Input{}
	pressed := make([]byte, 0, len(buf))

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == KeyEscape && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.up = now
				i += 2
				continue
			case 'B':
				s.state.down = now
				i += 2
				continue
			case 'C':
				s.state.right = now
				i += 2
				continue
			case 'D':
				s.state.left = now
				i += 2
				continue
			}
		}

		applyByteToState(&s.state, &input, b, now)
		pressed = append(pressed, b)
	}

	input.Left = now.Sub(s.state.left) < keyHoldDuration
	input.Right = now.Sub(s.state.right) < keyHoldDuration
	input.Up = now.Sub(s.state.up) < keyHoldDuration
	input.Down = now.Sub(s.state.down) < keyHoldDuration
	input.Pressed = pressed
	if s.closed {
		input.Quit = true
	}

	return input
}

// partialEscape returns the length of an unfinished CSI prefix at the end
// of buf, or 0.
func partialEscape(buf []byte) int {
	n := len(buf)
	switch {
	case n >= 1 && buf[n-1] == KeyEscape:
		return 1
	case n >= 2 && buf[n-2] == KeyEscape && buf[n-1] == '[':
		return 2
	}
	return 0
}

// applyByteToState updates key timestamps and frame counters for one byte.
func applyByteToState(state *keyState, input *Input, b byte, now time.Time) {
	switch b {
	case 'a', 'A':
		state.left = now
	case 'd', 'D':
		state.right = now
	case 'w', 'W':
		state.up = now
	case 's', 'S':
		state.down = now
	case KeySpace:
		input.Fire++
	case KeyCtrlC:
		input.Quit = true
	}
}

// Reset forgets held keys and discards buffered bytes, so a key used to
// leave a menu does not leak into gameplay.
func Reset(s *Stream) {
	s.state = keyState{}
	s.pending = nil
	for {
		select {
		case _, ok := <-s.ch:
			if !ok {
				s.closed = true
				return
			}
		default:
			return
		}
	}
}
