package session

import (
	"errors"
	"math/rand"
	"testing"
)

func TestPortForCode(t *testing.T) {
	tests := []struct {
		code    string
		base    int
		want    int
		wantErr bool
	}{
		{"123456", 50000, 50056, false},
		{"000000", 50000, 50000, false},
		{"999999", 50000, 50099, false},
		{"000007", 50000, 50007, false},
		{"123456", 40000, 40056, false},
		{"12345", 50000, 0, true},
		{"1234567", 50000, 0, true},
		{"12a456", 50000, 0, true},
		{"", 50000, 0, true},
		{"１２３４５６", 50000, 0, true},
	}

	for _, test := range tests {
		got, err := PortForCode(test.base, test.code)
		if test.wantErr {
			if !errors.Is(err, ErrInvalidCode) {
				t.Errorf("PortForCode(%q): err = %v, want ErrInvalidCode", test.code, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("PortForCode(%q): unexpected error %v", test.code, err)
			continue
		}
		if got != test.want {
			t.Errorf("PortForCode(%q): got %d - want %d", test.code, got, test.want)
		}
	}
}

func TestGenerateCode(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 1000; i++ {
		code := GenerateCode(rng)
		if err := ValidateCode(code); err != nil {
			t.Fatalf("generated invalid code %q: %v", code, err)
		}
		port, _ := PortForCode(50000, code)
		if port < 50000 || port > 50099 {
			t.Fatalf("code %q maps to port %d outside the room range", code, port)
		}
	}
}

func TestGenerateCode_Deterministic(t *testing.T) {
	a := GenerateCode(rand.New(rand.NewSource(5)))
	b := GenerateCode(rand.New(rand.NewSource(5)))
	if a != b {
		t.Errorf("same seed produced %q and %q", a, b)
	}
}
