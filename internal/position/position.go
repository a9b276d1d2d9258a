// Package position resolves a complete, ordered set of planet positions at a
// single reference time by querying an ephemeris model.
package position

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/papapumpkin/orrery/internal/ephemeris"
)

// ErrEphemerisUnavailable indicates the ephemeris model could not resolve a
// body. Resolution is all-or-nothing: no positions are returned alongside it.
var ErrEphemerisUnavailable = errors.New("ephemeris unavailable")

// NoBody marks an UnavailableError raised before any body was queried, such
// as an unknown model name.
const NoBody ephemeris.Body = -1

// UnavailableError records which body and model failed during resolution.
type UnavailableError struct {
	Body  ephemeris.Body
	Model string
	Err   error
}

// Error returns a message naming the model and, when known, the body that
// failed.
func (e *UnavailableError) Error() string {
	if !e.Body.Valid() {
		return fmt.Sprintf("%s: model %q: %v", ErrEphemerisUnavailable, e.Model, e.Err)
	}
	return fmt.Sprintf("%s: model %q could not resolve %s: %v", ErrEphemerisUnavailable, e.Model, e.Body, e.Err)
}

// Unwrap returns the model's underlying error.
func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// Is makes every UnavailableError match ErrEphemerisUnavailable.
func (e *UnavailableError) Is(target error) bool {
	return target == ErrEphemerisUnavailable
}

// PlanetPosition is one body's resolved position. Values are never mutated
// after resolution.
type PlanetPosition struct {
	Body              ephemeris.Body
	RightAscensionDeg float64 // normalized to [0, 360)
	DistanceAU        float64 // heliocentric, >= 0
	ObservedAt        time.Time
}

// Name returns the body's display name.
func (p PlanetPosition) Name() string {
	return p.Body.String()
}

// Timestamp formats the observation instant as ISO-8601 in UTC.
func (p PlanetPosition) Timestamp() string {
	return p.ObservedAt.UTC().Format(time.RFC3339)
}

// Resolver resolves positions against a model. Now supplies the reference
// time when the caller passes a zero time.
type Resolver struct {
	Model ephemeris.Model
	Now   func() time.Time
}

// Resolve queries the model for every body at t, in Mercury→Neptune order.
// A zero t means the current time.
func (r Resolver) Resolve(ctx context.Context, t time.Time) ([]PlanetPosition, error) {
	if r.Model == nil {
		return nil, &UnavailableError{Body: NoBody, Err: ephemeris.ErrUnknownModel}
	}
	if t.IsZero() {
		now := r.Now
		if now == nil {
			now = time.Now
		}
		t = now()
	}
	t = t.UTC()

	bodies := ephemeris.Bodies()
	positions := make([]PlanetPosition, 0, len(bodies))
	for _, b := range bodies {
		reading, err := r.Model.Locate(ctx, b, t)
		if err != nil {
			return nil, &UnavailableError{Body: b, Model: r.Model.Name(), Err: err}
		}
		if err := checkReading(reading); err != nil {
			return nil, &UnavailableError{Body: b, Model: r.Model.Name(), Err: err}
		}
		positions = append(positions, PlanetPosition{
			Body:              b,
			RightAscensionDeg: NormalizeDegrees(reading.RightAscensionDeg),
			DistanceAU:        reading.DistanceAU,
			ObservedAt:        t,
		})
	}

	slog.Debug("positions resolved",
		"model", r.Model.Name(),
		"at", t.Format(time.RFC3339),
		"count", len(positions),
	)
	return positions, nil
}

// checkReading rejects readings that cannot be plotted: a non-finite angle
// or a distance that is negative or not finite.
func checkReading(r ephemeris.Reading) error {
	if math.IsNaN(r.RightAscensionDeg) || math.IsInf(r.RightAscensionDeg, 0) {
		return fmt.Errorf("invalid right ascension %g°", r.RightAscensionDeg)
	}
	if math.IsNaN(r.DistanceAU) || math.IsInf(r.DistanceAU, 0) || r.DistanceAU < 0 {
		return fmt.Errorf("invalid distance %g AU", r.DistanceAU)
	}
	return nil
}

// Open selects the named ephemeris model. A name the collaborator does not
// know, or a model it cannot load, is reported as ErrEphemerisUnavailable.
func Open(name string, opts ephemeris.Options) (ephemeris.Model, error) {
	m, err := ephemeris.Open(name, opts)
	if err != nil {
		return nil, &UnavailableError{Body: NoBody, Model: name, Err: err}
	}
	return m, nil
}

// Resolve is shorthand for Resolver{Model: model}.Resolve(ctx, t).
func Resolve(ctx context.Context, model ephemeris.Model, t time.Time) ([]PlanetPosition, error) {
	return Resolver{Model: model}.Resolve(ctx, t)
}

// NormalizeDegrees folds any finite angle into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	n := math.Mod(math.Mod(deg, 360)+360, 360)
	if n >= 360 {
		n = 0
	}
	return n
}
