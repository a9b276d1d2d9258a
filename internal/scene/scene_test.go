package scene

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/papapumpkin/orrery/internal/ephemeris"
	"github.com/papapumpkin/orrery/internal/position"
)

var observed = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

// samplePositions returns one position per body with the given angles and
// the reference distances 0.39 … 30.1 AU.
func samplePositions(ras ...float64) []position.PlanetPosition {
	dists := []float64{0.39, 0.72, 1.0, 1.52, 5.2, 9.5, 19.8, 30.1}
	out := make([]position.PlanetPosition, len(dists))
	for i, b := range ephemeris.Bodies() {
		ra := 0.0
		if i < len(ras) {
			ra = ras[i]
		}
		out[i] = position.PlanetPosition{Body: b, RightAscensionDeg: ra, DistanceAU: dists[i], ObservedAt: observed}
	}
	return out
}

func TestBuild_EmptyDataset(t *testing.T) {
	t.Parallel()

	s, err := Build(nil, DefaultOptions())
	if !errors.Is(err, ErrEmptyDataset) {
		t.Fatalf("Build(nil) error = %v, want ErrEmptyDataset", err)
	}
	if s != nil {
		t.Errorf("Build(nil) returned a scene")
	}
}

func TestRadialTicks_ReferenceDistances(t *testing.T) {
	t.Parallel()

	s, err := Build(samplePositions(), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{0, 6.02, 12.04, 18.06, 24.08, 30.1}
	wantLabels := []string{"0 AU", "6 AU", "12 AU", "18 AU", "24 AU", "30 AU"}
	if len(s.RadialTicks) != len(want) {
		t.Fatalf("got %d ticks, want %d", len(s.RadialTicks), len(want))
	}
	for i, tick := range s.RadialTicks {
		if math.Abs(tick.Value-want[i]) > 1e-9 {
			t.Errorf("tick %d = %g, want %g", i, tick.Value, want[i])
		}
		if tick.Label != wantLabels[i] {
			t.Errorf("tick %d label = %q, want %q", i, tick.Label, wantLabels[i])
		}
	}
	if s.RadialTicks[len(s.RadialTicks)-1].Value != s.MaxDistanceAU {
		t.Errorf("last tick %g != max distance %g", s.RadialTicks[5].Value, s.MaxDistanceAU)
	}
}

func TestAngularTicks(t *testing.T) {
	t.Parallel()

	ticks := AngularTicks()
	if len(ticks) != 8 {
		t.Fatalf("got %d ticks, want 8", len(ticks))
	}
	for i, tick := range ticks {
		deg := float64(i * 45)
		if math.Abs(tick.Value-deg*math.Pi/180) > 1e-12 {
			t.Errorf("tick %d = %g rad, want %g°", i, tick.Value, deg)
		}
	}
	if ticks[3].Label != "135°" {
		t.Errorf("tick 3 label = %q, want 135°", ticks[3].Label)
	}
}

func TestProjectAngle(t *testing.T) {
	t.Parallel()

	for _, raw := range []float64{0, 45, 359.999, 360, 720.5, -30, -360, -1e-9, 1e6} {
		got := ProjectAngle(raw)
		want := DegreesToRadians(math.Mod(math.Mod(raw, 360)+360, 360))
		if want >= 2*math.Pi {
			want = 0
		}
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("ProjectAngle(%g) = %g, want %g", raw, got, want)
		}
		if got < 0 || got >= 2*math.Pi {
			t.Errorf("ProjectAngle(%g) = %g outside [0, 2π)", raw, got)
		}
	}
}

func TestBuild_PointsAndMarkers(t *testing.T) {
	t.Parallel()

	s, err := Build(samplePositions(0, 90, 180, 270), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Points) != 8 || len(s.Markers) != 8 {
		t.Fatalf("points=%d markers=%d, want 8/8", len(s.Points), len(s.Markers))
	}
	for i, b := range ephemeris.Bodies() {
		p := s.Points[i]
		if p.Name != b.String() {
			t.Errorf("point %d = %s, want %s", i, p.Name, b)
		}
		if name, ok := s.MarkerName(p.Marker); !ok || name != b.String() {
			t.Errorf("marker %d maps to %q", p.Marker, name)
		}
	}
	if math.Abs(s.Points[1].ThetaRad-math.Pi/2) > 1e-12 {
		t.Errorf("Venus theta = %g, want π/2", s.Points[1].ThetaRad)
	}
	if s.ObservedAt != "2025-01-02T03:04:05Z" {
		t.Errorf("ObservedAt = %q", s.ObservedAt)
	}
	if s.Axis.Min != 0 || math.Abs(s.Axis.Max-30.1*1.1) > 1e-9 {
		t.Errorf("initial axis = %+v", s.Axis)
	}
}

func TestBuild_OptionalFeatures(t *testing.T) {
	t.Parallel()

	opts := Options{}
	s, err := Build(samplePositions(), opts)
	if err != nil {
		t.Fatal(err)
	}
	if s.Rings != nil {
		t.Errorf("rings drawn with ShowOrbitRings off")
	}
	if s.Table != nil {
		t.Errorf("table built with ShowTable off")
	}
	if s.Options.ZoomFactor != DefaultZoomFactor || s.Options.RingSamples != DefaultRingSamples {
		t.Errorf("defaults not applied: %+v", s.Options)
	}

	s, err = Build(samplePositions(), Options{ShowOrbitRings: true, RingSamples: 16})
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Rings) != 8 {
		t.Fatalf("got %d rings, want 8", len(s.Rings))
	}
	ring := s.Rings[4]
	if len(ring.Path) != 17 {
		t.Errorf("ring path has %d vertices, want 17", len(ring.Path))
	}
	for _, v := range ring.Path {
		if v.R != 5.2 {
			t.Errorf("ring vertex radius %g, want 5.2", v.R)
		}
	}
	if ring.Path[0].ThetaRad != 0 || math.Abs(ring.Path[16].ThetaRad-2*math.Pi) > 1e-12 {
		t.Errorf("ring not closed: first %g last %g", ring.Path[0].ThetaRad, ring.Path[16].ThetaRad)
	}
}

func TestTableRows(t *testing.T) {
	t.Parallel()

	rows := TableRows(samplePositions(12.3456))
	if len(rows) != 8 {
		t.Fatalf("got %d rows", len(rows))
	}
	got := rows[0].Cells()
	want := []string{"1", "Mercury", "12.35°", "0.39 AU", "2025-01-02T03:04:05Z"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cell %d (%s) = %q, want %q", i, TableHeaders[i], got[i], want[i])
		}
	}
	if rows[7].Distance != "30.10 AU" {
		t.Errorf("Neptune distance = %q", rows[7].Distance)
	}
}

func TestAxisZoomRoundTrip(t *testing.T) {
	t.Parallel()

	start := Axis{Min: 0.5, Max: 33.11}
	for _, f := range []float64{1.2, 1.5, 2} {
		inOut := start.ZoomIn(f).ZoomOut(f)
		outIn := start.ZoomOut(f).ZoomIn(f)
		for _, got := range []Axis{inOut, outIn} {
			if math.Abs(got.Min-start.Min) > 1e-12 || math.Abs(got.Max-start.Max) > 1e-12 {
				t.Errorf("factor %g: round trip %+v, want %+v", f, got, start)
			}
		}
	}
	if z := start.ZoomIn(1.2); z.Max >= start.Max {
		t.Errorf("ZoomIn did not narrow: %+v", z)
	}
}

func TestAxisFraction(t *testing.T) {
	t.Parallel()

	a := Axis{Min: 0, Max: 10}
	if f, ok := a.Fraction(5); !ok || f != 0.5 {
		t.Errorf("Fraction(5) = %g, %v", f, ok)
	}
	if _, ok := a.Fraction(11); ok {
		t.Errorf("Fraction(11) should be outside")
	}
	if _, ok := (Axis{Min: 1, Max: 1}).Fraction(1); ok {
		t.Errorf("degenerate axis should not map")
	}
}

func TestRasterize_Layout(t *testing.T) {
	t.Parallel()

	// Inner bodies point away from the 0° side so none of them lands on the Sun.
	s, err := Build(samplePositions(180, 180, 180, 180, 0, 0, 0, 90), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	r := Rasterize(s, s.Axis, 80, 40)

	if r.Width != 80 || r.Height != 40 || len(r.Cells) != 40 {
		t.Fatalf("raster size %dx%d", r.Width, r.Height)
	}

	// Neptune (RA 90°) sits straight above the center.
	x, y, ok := r.MarkerCell(8)
	if !ok {
		t.Fatal("Neptune marker not drawn")
	}
	if y >= 20 {
		t.Errorf("Neptune at row %d, want above center", y)
	}
	if x < 38 || x > 41 {
		t.Errorf("Neptune at column %d, want near center", x)
	}
	if r.Cells[y][x].Ch != '8' {
		t.Errorf("Neptune glyph = %q", r.Cells[y][x].Ch)
	}

	// Saturn (RA 0°) sits right of the center on the center row.
	sx, sy, ok := r.MarkerCell(6)
	if !ok {
		t.Fatal("Saturn marker not drawn")
	}
	if sx <= 41 || sy < 19 || sy > 20 {
		t.Errorf("Saturn at (%d,%d), want right of center", sx, sy)
	}

	out := r.String()
	for _, label := range []string{"0°", "90°", "180°", "270°", "30 AU"} {
		if !strings.Contains(out, label) {
			t.Errorf("raster missing label %q:\n%s", label, out)
		}
	}
	if !strings.ContainsRune(out, SunRune) {
		t.Errorf("raster missing sun")
	}
	if !strings.ContainsRune(out, RingRune) {
		t.Errorf("raster missing orbit rings")
	}
}

func TestRasterize_HoverAndAnnotate(t *testing.T) {
	t.Parallel()

	s, err := Build(samplePositions(0, 0, 0, 0, 0, 0, 0, 90), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	r := Rasterize(s, s.Axis, 80, 40)
	x, y, ok := r.MarkerCell(8)
	if !ok {
		t.Fatal("Neptune marker not drawn")
	}

	if id, ok := r.MarkerAt(x, y); !ok || id != 8 {
		t.Errorf("MarkerAt(%d,%d) = %d, %v", x, y, id, ok)
	}
	if id, ok := r.MarkerAt(x+1, y); !ok || id != 8 {
		t.Errorf("MarkerAt neighbor = %d, %v", id, ok)
	}
	if _, ok := r.MarkerAt(0, 0); ok {
		t.Errorf("MarkerAt(0,0) found a marker")
	}

	name, _ := s.MarkerName(8)
	annotated := r.Annotate(8, name)
	if !strings.Contains(annotated.Line(y), "Neptune") {
		t.Errorf("annotation missing: %q", annotated.Line(y))
	}
	if strings.Contains(r.Line(y), "Neptune") {
		t.Errorf("Annotate mutated the original raster")
	}
}

func TestRasterize_ZoomClipsOuterBodies(t *testing.T) {
	t.Parallel()

	s, err := Build(samplePositions(0, 0, 0, 0, 0, 0, 0, 90), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	axis := s.Axis
	for range 10 {
		axis = axis.ZoomIn(s.Options.ZoomFactor)
	}
	r := Rasterize(s, axis, 80, 40)
	if _, _, ok := r.MarkerCell(8); ok {
		t.Errorf("Neptune drawn at %+v", axis)
	}
	if _, _, ok := r.MarkerCell(4); !ok {
		t.Errorf("Mars clipped at %+v", axis)
	}
}

func TestRasterize_TooSmall(t *testing.T) {
	t.Parallel()

	s, err := Build(samplePositions(), DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	r := Rasterize(s, s.Axis, 6, 3)
	if strings.TrimSpace(r.String()) != "" {
		t.Errorf("tiny raster should be blank, got %q", r.String())
	}
}
