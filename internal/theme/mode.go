// Package theme owns the light/dark mode: resolving it on startup,
// persisting every change, and keeping the root class set in lockstep.
package theme

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidMode is returned when parsing a value that is neither light nor dark.
var ErrInvalidMode = errors.New("theme: invalid mode")

// Mode is one of the two supported palettes.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// ParseMode accepts "light" or "dark" in any case, surrounding space ignored.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	}
	return "", errors.Wrapf(ErrInvalidMode, "%q", s)
}

func (m Mode) Valid() bool { return m == Light || m == Dark }

// Other returns the opposite mode.
func (m Mode) Other() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

func (m Mode) IsDark() bool { return m == Dark }

func (m Mode) String() string { return string(m) }
