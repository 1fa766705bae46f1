package session

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

func TestMessage_EncodeDecode(t *testing.T) {
	state := PeerState{
		X: 120, Y: 600, HP: 85, Score: 7,
		Projectiles: []Point{{X: 195, Y: 400}, {X: 195, Y: 250}},
	}
	msg, err := newMessage(MsgState, 42, state)
	if err != nil {
		t.Fatalf("newMessage: %v", err)
	}

	var buf bytes.Buffer
	if err := msg.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got, want := buf.Len(), HeaderSize+len(msg.Payload); got != want {
		t.Errorf("frame length = %d, want %d", got, want)
	}

	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded.Type != MsgState || decoded.Seq != 42 {
		t.Errorf("header = %s/%d, want state/42", decoded.Type, decoded.Seq)
	}

	var got PeerState
	if err := msgpack.Unmarshal(decoded.Payload, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !reflect.DeepEqual(got, state) {
		t.Errorf("got %+v - want %+v", got, state)
	}
}

func TestMessage_EmptyPayload(t *testing.T) {
	var buf bytes.Buffer
	msg := &Message{Type: MsgHello, Seq: 1}
	if err := msg.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if decoded.Payload != nil {
		t.Errorf("payload = %v, want nil", decoded.Payload)
	}
}

func TestMessage_PayloadTooLarge(t *testing.T) {
	msg := &Message{Type: MsgState, Payload: make([]byte, 1<<16)}
	if err := msg.Encode(io.Discard); !errors.Is(err, ErrPayloadTooLarge) {
		t.Errorf("err = %v, want ErrPayloadTooLarge", err)
	}
}

func TestDecode_Truncated(t *testing.T) {
	var buf bytes.Buffer
	msg := &Message{Type: MsgState, Seq: 3, Payload: []byte{1, 2, 3, 4}}
	if err := msg.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	truncated := bytes.NewReader(buf.Bytes()[:buf.Len()-2])
	if _, err := Decode(truncated); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("err = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestSeqWindow(t *testing.T) {
	var w seqWindow
	steps := []struct {
		seq  uint32
		want bool
	}{
		{1, true},
		{2, true},
		{2, false},
		{1, false},
		{5, true},
		{4, false},
		{6, true},
	}
	for i, step := range steps {
		if got := w.Accept(step.seq); got != step.want {
			t.Errorf("step %d: Accept(%d) = %v, want %v", i, step.seq, got, step.want)
		}
	}
}
