package session

import (
	"encoding/binary"
	"errors"
	"io"
	"math"

	"github.com/vmihailenco/msgpack/v5"
)

// MessageType identifies what a frame's payload holds.
type MessageType uint8

const (
	MsgHello MessageType = 0x01 // Peer introduction, sent once after connect
	MsgState MessageType = 0x02 // Sender's ship and projectiles for one tick
)

// String returns the message type name for logs.
func (t MessageType) String() string {
	switch t {
	case MsgHello:
		return "hello"
	case MsgState:
		return "state"
	default:
		return "unknown"
	}
}

// HeaderSize is the fixed frame header: [Type:1][Seq:4][Len:2]
const HeaderSize = 7

// ErrPayloadTooLarge is returned when a payload does not fit the length field.
var ErrPayloadTooLarge = errors.New("payload exceeds maximum size")

// Message is one framed unit on the wire.
type Message struct {
	Type    MessageType
	Seq     uint32 // Sender's sequence number, starting at 1
	Payload []byte
}

// Encode writes the header followed by the payload.
func (m *Message) Encode(w io.Writer) error {
	if len(m.Payload) > math.MaxUint16 {
		return ErrPayloadTooLarge
	}

	var header [HeaderSize]byte
	header[0] = byte(m.Type)
	binary.BigEndian.PutUint32(header[1:5], m.Seq)
	binary.BigEndian.PutUint16(header[5:7], uint16(len(m.Payload)))

	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	if len(m.Payload) > 0 {
		if _, err := w.Write(m.Payload); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads one message from r.
func Decode(r io.Reader) (*Message, error) {
	var header [HeaderSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, err
	}

	m := &Message{
		Type: MessageType(header[0]),
		Seq:  binary.BigEndian.Uint32(header[1:5]),
	}

	if n := binary.BigEndian.Uint16(header[5:7]); n > 0 {
		m.Payload = make([]byte, n)
		if _, err := io.ReadFull(r, m.Payload); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hello introduces a peer.
type Hello struct {
	PeerID string `msgpack:"id"`
}

// Point is a projectile position.
type Point struct {
	X float64 `msgpack:"x"`
	Y float64 `msgpack:"y"`
}

// PeerState is everything one player shares with the other each tick.
type PeerState struct {
	X           float64 `msgpack:"x"`
	Y           float64 `msgpack:"y"`
	HP          int     `msgpack:"hp"`
	Score       int     `msgpack:"score"`
	Projectiles []Point `msgpack:"shots"`
}

// newMessage encodes v with msgpack into a message of type t.
func newMessage(t MessageType, seq uint32, v any) (*Message, error) {
	payload, err := msgpack.Marshal(v)
	if err != nil {
		return nil, err
	}
	return &Message{Type: t, Seq: seq, Payload: payload}, nil
}

// seqWindow drops messages that arrive with a sequence number at or below
// the last accepted one.
type seqWindow struct {
	last uint32
}

// Accept reports whether seq is newer than anything seen so far and records it.
func (w *seqWindow) Accept(seq uint32) bool {
	if seq <= w.last {
		return false
	}
	w.last = seq
	return true
}
