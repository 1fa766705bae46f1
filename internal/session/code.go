package session

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/tomz197/spaceship/internal/loop/config"
)

// ErrInvalidCode is returned for room codes that are not exactly six decimal digits.
var ErrInvalidCode = errors.New("room code must be 6 decimal digits")

// GenerateCode returns a random six digit room code. Leading zeros are kept.
func GenerateCode(rng *rand.Rand) string {
	return fmt.Sprintf("%06d", rng.Intn(1_000_000))
}

// ValidateCode checks that code is exactly six ASCII digits.
func ValidateCode(code string) error {
	if len(code) != config.RoomCodeLength {
		return fmt.Errorf("%w: got %q", ErrInvalidCode, code)
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return fmt.Errorf("%w: got %q", ErrInvalidCode, code)
		}
	}
	return nil
}

// PortForCode derives the session port from the last two digits of code.
// With the default base every code maps into [50000, 50099].
func PortForCode(base int, code string) (int, error) {
	if err := ValidateCode(code); err != nil {
		return 0, err
	}
	suffix, _ := strconv.Atoi(code[len(code)-2:])
	return base + suffix, nil
}
