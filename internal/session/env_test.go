package session

import (
	"testing"
	"time"
)

func TestOptionsFromEnv(t *testing.T) {
	t.Setenv("SPACESHIP_PORT_BASE", "41000")
	t.Setenv("SPACESHIP_JOIN_HOST", "10.0.0.2")
	t.Setenv("SPACESHIP_CONNECT_TIMEOUT", "3s")

	opts := OptionsFromEnv(nil)
	if opts.PortBase != 41000 || opts.JoinHost != "10.0.0.2" || opts.ConnectTimeout != 3*time.Second {
		t.Errorf("got %+v", opts)
	}
	if opts.ReadTimeout != 10*time.Second {
		t.Errorf("ReadTimeout = %v, want default 10s", opts.ReadTimeout)
	}
}
