// Package ephemeris resolves the heliocentric position of the eight planets
// from Keplerian mean orbital elements. A Model is selected by name: the
// "builtin" model carries the JPL approximate element table, the "elements"
// model reads the same table from a TOML file.
package ephemeris

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Model names accepted by Open.
const (
	ModelBuiltin  = "builtin"
	ModelElements = "elements"
)

// Sentinel errors returned by models. Callers should match with errors.Is.
var (
	// ErrUnknownModel indicates Open was given a model name it does not know.
	ErrUnknownModel = errors.New("unknown ephemeris model")
	// ErrUnknownBody indicates the model has no elements for the requested body.
	ErrUnknownBody = errors.New("body not covered by ephemeris model")
	// ErrOutOfRange indicates the requested time lies outside the model's validity window.
	ErrOutOfRange = errors.New("time outside ephemeris validity range")
	// ErrMissingElementsFile indicates the elements model was opened without a file path.
	ErrMissingElementsFile = errors.New("elements model requires an elements file")
)

// Reading is the position of one body at one instant. RightAscensionDeg and
// DeclinationDeg are heliocentric equatorial (J2000) angles; DistanceAU is the
// distance from the Sun.
type Reading struct {
	RightAscensionDeg float64
	DeclinationDeg    float64
	DistanceAU        float64
}

// Model answers position queries for a named body at a given time.
type Model interface {
	// Name returns the model name for display and logging.
	Name() string

	// Locate returns the body's position at t.
	Locate(ctx context.Context, body Body, t time.Time) (Reading, error)
}

// Options configures Open.
type Options struct {
	// ElementsPath is the TOML element table read by the elements model.
	ElementsPath string
}

// Open returns the model registered under name.
func Open(name string, opts Options) (Model, error) {
	switch name {
	case ModelBuiltin, "":
		return NewBuiltin(), nil
	case ModelElements:
		if opts.ElementsPath == "" {
			return nil, ErrMissingElementsFile
		}
		return LoadElementsFile(opts.ElementsPath)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, name)
	}
}
