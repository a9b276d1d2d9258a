// Package ui prints human-facing output for non-interactive runs: status
// lines on stderr and the static plot and summary table on stdout.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/papapumpkin/orrery/internal/ansi"
	"github.com/papapumpkin/orrery/internal/scene"
)

// Printer writes status messages to Err and rendered scenes to Out.
type Printer struct {
	Out   io.Writer
	Err   io.Writer
	Color bool
}

// New returns a Printer on stdout/stderr with ANSI color enabled.
func New() *Printer {
	return &Printer{Out: os.Stdout, Err: os.Stderr, Color: true}
}

func (p *Printer) paint(codes, s string) string {
	if !p.Color {
		return s
	}
	return codes + s + ansi.Reset
}

// Error prints an error line.
func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.Err, "%s%s\n", p.paint(ansi.Red+ansi.Bold, "error: "), msg)
}

// Info prints a dimmed status line.
func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.Err, p.paint(ansi.Dim, msg))
}

// Resolved reports which model produced the positions and when they apply.
func (p *Printer) Resolved(model, observedAt string, count int) {
	fmt.Fprintf(p.Err, "%s %d bodies from %s %s\n",
		p.paint(ansi.Green, "✓ resolved"), count, p.paint(ansi.Bold, model), p.paint(ansi.Dim, "at "+observedAt))
}

// Scene prints the static rendition of s: the polar plot followed by the
// summary table when the scene carries one.
func (p *Printer) Scene(s *scene.Scene, width, height int) {
	r := scene.Rasterize(s, s.Axis, width, height)

	fmt.Fprintln(p.Out, p.paint(ansi.Bold+ansi.Cyan, "Planet positions around the Sun"))
	fmt.Fprintln(p.Out, p.paint(ansi.Dim, "observed "+s.ObservedAt))
	fmt.Fprintln(p.Out, r.String())
	fmt.Fprintln(p.Out, Legend(s))

	if len(s.Table) > 0 {
		fmt.Fprintln(p.Out)
		fmt.Fprintln(p.Out, Table(s.Table))
	}
}

// Legend lists each marker glyph with its body name on one line.
func Legend(s *scene.Scene) string {
	parts := make([]string, 0, len(s.Points)+1)
	parts = append(parts, string(scene.SunRune)+" Sun")
	for _, pt := range s.Points {
		parts = append(parts, fmt.Sprintf("%c %s", scene.MarkerRune(pt.Marker), pt.Name))
	}
	return strings.Join(parts, "  ")
}

// Table renders the summary rows with a plain border.
func Table(rows []scene.Row) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(scene.TableHeaders...).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for _, r := range rows {
		t.Row(r.Cells()...)
	}
	return t.String()
}
