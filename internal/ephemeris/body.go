package ephemeris

import (
	"fmt"
	"strings"
)

// Body identifies one of the eight planets, ordered outward from the Sun.
type Body int

const (
	Mercury Body = iota
	Venus
	Earth
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
)

var bodyNames = [...]string{
	Mercury: "Mercury",
	Venus:   "Venus",
	Earth:   "Earth",
	Mars:    "Mars",
	Jupiter: "Jupiter",
	Saturn:  "Saturn",
	Uranus:  "Uranus",
	Neptune: "Neptune",
}

// Bodies returns every body in fixed Mercury→Neptune order.
func Bodies() []Body {
	return []Body{Mercury, Venus, Earth, Mars, Jupiter, Saturn, Uranus, Neptune}
}

// String returns the body's display name.
func (b Body) String() string {
	if b < Mercury || b > Neptune {
		return fmt.Sprintf("Body(%d)", int(b))
	}
	return bodyNames[b]
}

// Valid reports whether b is one of the eight known bodies.
func (b Body) Valid() bool {
	return b >= Mercury && b <= Neptune
}

// ParseBody maps a case-insensitive name to its Body.
func ParseBody(name string) (Body, error) {
	for i, n := range bodyNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Body(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBody, name)
}
