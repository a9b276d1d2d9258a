// Package scene turns resolved planet positions into a display-independent
// polar scene: projected markers, axis ticks, orbit guide rings, the summary
// table and the radial zoom state. Display surfaces (the TUI and the static
// printer) only draw what Build and Rasterize produce.
package scene

import (
	"errors"
	"slices"
	"time"

	"github.com/papapumpkin/orrery/internal/position"
)

// ErrEmptyDataset indicates Build was called without any positions.
var ErrEmptyDataset = errors.New("no positions to render")

// Defaults for Options fields left at their zero value.
const (
	DefaultZoomFactor  = 1.2
	DefaultRingSamples = 72

	// axisHeadroom pads the initial radial limit past the outermost body.
	axisHeadroom = 1.1
)

// Options toggles the optional renderer features.
type Options struct {
	ShowTable      bool
	ShowOrbitRings bool
	EnableHover    bool
	EnableZoom     bool
	ZoomFactor     float64 // radial zoom step, must be > 1
	RingSamples    int     // points per orbit ring
}

// DefaultOptions enables every feature.
func DefaultOptions() Options {
	return Options{
		ShowTable:      true,
		ShowOrbitRings: true,
		EnableHover:    true,
		EnableZoom:     true,
		ZoomFactor:     DefaultZoomFactor,
		RingSamples:    DefaultRingSamples,
	}
}

func (o Options) withDefaults() Options {
	if o.ZoomFactor <= 1 {
		o.ZoomFactor = DefaultZoomFactor
	}
	if o.RingSamples < 8 {
		o.RingSamples = DefaultRingSamples
	}
	return o
}

// MarkerID identifies a plotted body marker. The zero value means "no marker".
type MarkerID int

// Point is one body projected onto the polar plane.
type Point struct {
	Marker   MarkerID
	Name     string
	ThetaRad float64 // in [0, 2π)
	R        float64 // AU
}

// Scene is the complete, immutable description of one render.
type Scene struct {
	Options      Options
	Points       []Point
	RadialTicks  []Tick
	AngularTicks []Tick
	Rings        []Ring // nil unless ShowOrbitRings
	Table        []Row  // nil unless ShowTable

	// Markers maps each marker to the body name shown when it is hovered.
	Markers map[MarkerID]string

	// Axis is the initial radial axis limit.
	Axis Axis

	// MaxDistanceAU is the largest distance in the dataset.
	MaxDistanceAU float64

	// ObservedAt is the shared observation timestamp, ISO-8601.
	ObservedAt string
	Observed   time.Time
}

// Build projects positions into a scene. It returns ErrEmptyDataset when
// positions is empty.
func Build(positions []position.PlanetPosition, opts Options) (*Scene, error) {
	if len(positions) == 0 {
		return nil, ErrEmptyDataset
	}
	opts = opts.withDefaults()

	distances := make([]float64, len(positions))
	for i, p := range positions {
		distances[i] = p.DistanceAU
	}
	maxDist := slices.Max(distances)

	s := &Scene{
		Options:       opts,
		Points:        make([]Point, 0, len(positions)),
		Markers:       make(map[MarkerID]string, len(positions)),
		RadialTicks:   RadialTicks(maxDist),
		AngularTicks:  AngularTicks(),
		MaxDistanceAU: maxDist,
		Axis:          InitialAxis(maxDist),
		ObservedAt:    positions[0].Timestamp(),
		Observed:      positions[0].ObservedAt.UTC(),
	}

	for i, p := range positions {
		id := MarkerID(i + 1)
		pt := Point{
			Marker:   id,
			Name:     p.Name(),
			ThetaRad: ProjectAngle(p.RightAscensionDeg),
			R:        p.DistanceAU,
		}
		s.Points = append(s.Points, pt)
		s.Markers[id] = pt.Name

		if opts.ShowOrbitRings {
			s.Rings = append(s.Rings, OrbitRing(id, p.DistanceAU, opts.RingSamples))
		}
	}

	if opts.ShowTable {
		s.Table = TableRows(positions)
	}
	return s, nil
}

// MarkerName returns the body name for a marker, if it exists.
func (s *Scene) MarkerName(id MarkerID) (string, bool) {
	name, ok := s.Markers[id]
	return name, ok
}

// InitialAxis returns the radial limit that fits every body with headroom.
func InitialAxis(maxDistanceAU float64) Axis {
	if maxDistanceAU <= 0 {
		return Axis{Min: 0, Max: 1}
	}
	return Axis{Min: 0, Max: maxDistanceAU * axisHeadroom}
}
