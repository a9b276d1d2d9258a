package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/papapumpkin/orrery/internal/ephemeris"
	"github.com/papapumpkin/orrery/internal/position"
	"github.com/papapumpkin/orrery/internal/scene"
)

func newTestPrinter() (*Printer, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &Printer{Out: &out, Err: &errOut}, &out, &errOut
}

func testScene(t *testing.T, opts scene.Options) *scene.Scene {
	t.Helper()
	at := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	var positions []position.PlanetPosition
	for i, b := range ephemeris.Bodies() {
		positions = append(positions, position.PlanetPosition{
			Body:              b,
			RightAscensionDeg: float64(i) * 40,
			DistanceAU:        float64(i + 1),
			ObservedAt:        at,
		})
	}
	s, err := scene.Build(positions, opts)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return s
}

func TestPrinter_Error(t *testing.T) {
	p, _, errOut := newTestPrinter()
	p.Error("ephemeris unavailable")
	if got := errOut.String(); got != "error: ephemeris unavailable\n" {
		t.Errorf("Error() wrote %q", got)
	}
}

func TestPrinter_ColorWrapsInANSI(t *testing.T) {
	p, _, errOut := newTestPrinter()
	p.Color = true
	p.Info("hello")
	if !strings.HasPrefix(errOut.String(), "\033[2m") {
		t.Errorf("expected dim ANSI prefix, got %q", errOut.String())
	}
}

func TestPrinter_Resolved(t *testing.T) {
	p, _, errOut := newTestPrinter()
	p.Resolved("builtin", "2025-05-01T00:00:00Z", 8)
	for _, want := range []string{"8 bodies", "builtin", "2025-05-01T00:00:00Z"} {
		if !strings.Contains(errOut.String(), want) {
			t.Errorf("expected %q in %q", want, errOut.String())
		}
	}
}

func TestPrinter_SceneWithTable(t *testing.T) {
	p, out, _ := newTestPrinter()
	p.Scene(testScene(t, scene.DefaultOptions()), 80, 30)

	got := out.String()
	checks := []struct {
		name   string
		substr string
	}{
		{"title", "Planet positions around the Sun"},
		{"angular label", "90°"},
		{"legend", "8 Neptune"},
		{"table header", "Distance"},
		{"table row", "Jupiter"},
		{"ra column", "160.00°"},
		{"distance column", "5.00 AU"},
		{"timestamp column", "2025-05-01T00:00:00Z"},
	}
	for _, c := range checks {
		if !strings.Contains(got, c.substr) {
			t.Errorf("expected output to contain %s (%q), got:\n%s", c.name, c.substr, got)
		}
	}
}

func TestPrinter_SceneWithoutTable(t *testing.T) {
	p, out, _ := newTestPrinter()
	p.Scene(testScene(t, scene.Options{}), 80, 30)
	if strings.Contains(out.String(), "Observed") {
		t.Errorf("table printed with ShowTable off:\n%s", out.String())
	}
}

func TestLegend(t *testing.T) {
	got := Legend(testScene(t, scene.Options{}))
	if !strings.HasPrefix(got, "* Sun  1 Mercury  2 Venus") {
		t.Errorf("Legend() = %q", got)
	}
}
