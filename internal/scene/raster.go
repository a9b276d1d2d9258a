package scene

import (
	"math"
	"strings"
)

// Layer orders what a cell shows when primitives overlap. Higher layers win.
type Layer int

const (
	LayerEmpty Layer = iota
	LayerGrid
	LayerRing
	LayerLabel
	LayerSun
	LayerMarker
	LayerAnnotation
)

// Glyphs used by the raster.
const (
	GridRune = '·'
	RingRune = '∘'
	SunRune  = '*'
)

// Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 2.0

// radialLabelAngle is where radial tick labels sit, clear of the 0° spoke.
var radialLabelAngle = DegreesToRadians(22.5)

// Cell is one character of the raster.
type Cell struct {
	Ch     rune
	Layer  Layer
	Marker MarkerID // owning marker for marker, ring and annotation cells
}

// Raster is a character-grid rendition of a scene for one radial axis.
type Raster struct {
	Width  int
	Height int
	Cells  [][]Cell
	Axis   Axis

	cx, cy  float64
	radius  float64 // plot radius in rows
	markers map[MarkerID][2]int
}

// MarkerRune returns the glyph that represents a marker on the plot.
func MarkerRune(id MarkerID) rune {
	if id >= 1 && id <= 9 {
		return rune('0' + int(id))
	}
	return '+'
}

// Rasterize draws s into a width×height grid with the given radial axis.
// Grids too small to hold a plot come back blank.
func Rasterize(s *Scene, axis Axis, width, height int) *Raster {
	r := newRaster(width, height, axis)
	if s == nil || r.radius < 2 {
		return r
	}

	for _, t := range s.RadialTicks {
		if t.Value > 0 {
			r.circle(t.Value)
		}
	}
	for _, t := range s.AngularTicks {
		r.spoke(t.Value)
	}
	for _, ring := range s.Rings {
		r.ring(ring)
	}
	for _, t := range s.RadialTicks {
		if t.Value <= 0 {
			continue
		}
		if x, y, ok := r.project(radialLabelAngle, t.Value); ok {
			r.text(x+1, y, t.Label, LayerLabel, 0)
		}
	}
	for _, t := range s.AngularTicks {
		r.angularLabel(t)
	}
	if x, y, ok := r.project(0, 0); ok {
		r.set(x, y, Cell{Ch: SunRune, Layer: LayerSun})
	}
	for _, p := range s.Points {
		if x, y, ok := r.project(p.ThetaRad, p.R); ok {
			if prev := r.Cells[y][x]; prev.Layer == LayerMarker {
				delete(r.markers, prev.Marker)
			}
			r.set(x, y, Cell{Ch: MarkerRune(p.Marker), Layer: LayerMarker, Marker: p.Marker})
			r.markers[p.Marker] = [2]int{x, y}
		}
	}
	return r
}

func newRaster(width, height int, axis Axis) *Raster {
	width = max(width, 0)
	height = max(height, 0)
	cells := make([][]Cell, height)
	for y := range cells {
		row := make([]Cell, width)
		for x := range row {
			row[x] = Cell{Ch: ' '}
		}
		cells[y] = row
	}
	// Leave a row above and below and room for the widest angle label at the sides.
	radius := math.Min(float64(height-1)/2-1, (float64(width-1)/2-5)/cellAspect)
	return &Raster{
		Width:   width,
		Height:  height,
		Cells:   cells,
		Axis:    axis,
		cx:      float64(width-1) / 2,
		cy:      float64(height-1) / 2,
		radius:  radius,
		markers: make(map[MarkerID][2]int),
	}
}

// project maps a polar coordinate to a cell. ok is false when the point
// falls outside the axis or the grid.
func (r *Raster) project(theta, rAU float64) (x, y int, ok bool) {
	frac, ok := r.Axis.Fraction(rAU)
	if !ok {
		return 0, 0, false
	}
	return r.cell(theta, frac*r.radius)
}

// cell maps an angle and a distance in rows from the center to a cell.
func (r *Raster) cell(theta, rows float64) (x, y int, ok bool) {
	x = int(math.Round(r.cx + rows*cellAspect*math.Cos(theta)))
	y = int(math.Round(r.cy - rows*math.Sin(theta)))
	if x < 0 || x >= r.Width || y < 0 || y >= r.Height {
		return 0, 0, false
	}
	return x, y, true
}

func (r *Raster) set(x, y int, c Cell) {
	if x < 0 || x >= r.Width || y < 0 || y >= r.Height {
		return
	}
	if c.Layer >= r.Cells[y][x].Layer {
		r.Cells[y][x] = c
	}
}

func (r *Raster) text(x, y int, s string, layer Layer, id MarkerID) {
	for i, ch := range []rune(s) {
		r.set(x+i, y, Cell{Ch: ch, Layer: layer, Marker: id})
	}
}

// steps returns how many samples keep an arc of the given length in rows
// free of gaps.
func steps(rows float64) int {
	return int(math.Ceil(rows*cellAspect*2)) + 1
}

func (r *Raster) circle(rAU float64) {
	frac, ok := r.Axis.Fraction(rAU)
	if !ok {
		return
	}
	rows := frac * r.radius
	n := steps(2 * math.Pi * rows)
	for i := range n {
		if x, y, ok := r.cell(2*math.Pi*float64(i)/float64(n), rows); ok {
			r.set(x, y, Cell{Ch: GridRune, Layer: LayerGrid})
		}
	}
}

func (r *Raster) spoke(theta float64) {
	n := steps(r.radius)
	for i := 1; i <= n; i++ {
		if x, y, ok := r.cell(theta, r.radius*float64(i)/float64(n)); ok {
			r.set(x, y, Cell{Ch: GridRune, Layer: LayerGrid})
		}
	}
}

// ring draws every other segment of the ring's path.
func (r *Raster) ring(ring Ring) {
	for k := 0; k+1 < len(ring.Path); k += 2 {
		a, b := ring.Path[k], ring.Path[k+1]
		fa, okA := r.Axis.Fraction(a.R)
		fb, okB := r.Axis.Fraction(b.R)
		if !okA || !okB {
			continue
		}
		rowsA, rowsB := fa*r.radius, fb*r.radius
		n := steps(math.Abs(b.ThetaRad-a.ThetaRad) * math.Max(rowsA, rowsB))
		for i := 0; i <= n; i++ {
			t := float64(i) / float64(n)
			theta := a.ThetaRad + t*(b.ThetaRad-a.ThetaRad)
			rows := rowsA + t*(rowsB-rowsA)
			if x, y, ok := r.cell(theta, rows); ok {
				r.set(x, y, Cell{Ch: RingRune, Layer: LayerRing, Marker: ring.Marker})
			}
		}
	}
}

// angularLabel places a compass label just outside the plot edge, aligned
// away from the center.
func (r *Raster) angularLabel(t Tick) {
	x, y, ok := r.cell(t.Value, r.radius+1)
	if !ok {
		return
	}
	n := len([]rune(t.Label))
	cos := math.Cos(t.Value)
	switch {
	case math.Abs(cos) < 0.1:
		x -= n / 2
	case cos < 0:
		x -= n - 1
	}
	x = min(max(x, 0), r.Width-n)
	r.text(x, y, t.Label, LayerLabel, 0)
}

// MarkerAt returns the marker drawn at (x, y) or in the cells directly left
// and right of it.
func (r *Raster) MarkerAt(x, y int) (MarkerID, bool) {
	if y < 0 || y >= r.Height {
		return 0, false
	}
	for _, dx := range []int{0, -1, 1} {
		cx := x + dx
		if cx < 0 || cx >= r.Width {
			continue
		}
		if c := r.Cells[y][cx]; c.Layer == LayerMarker {
			return c.Marker, true
		}
	}
	return 0, false
}

// MarkerCell returns where a marker was drawn. ok is false for markers that
// were clipped by the axis or hidden under another marker.
func (r *Raster) MarkerCell(id MarkerID) (x, y int, ok bool) {
	pos, ok := r.markers[id]
	return pos[0], pos[1], ok
}

// Annotate returns a copy of the raster with text written beside the
// marker, to the right when it fits and to the left otherwise.
func (r *Raster) Annotate(id MarkerID, text string) *Raster {
	x, y, ok := r.MarkerCell(id)
	if !ok || text == "" {
		return r
	}
	out := r.clone()
	n := len([]rune(text))
	start := x + 2
	if start+n > out.Width {
		start = x - 1 - n
	}
	start = max(start, 0)
	for i, ch := range []rune(text) {
		if start+i >= out.Width {
			break
		}
		out.Cells[y][start+i] = Cell{Ch: ch, Layer: LayerAnnotation, Marker: id}
	}
	return out
}

func (r *Raster) clone() *Raster {
	out := *r
	out.Cells = make([][]Cell, len(r.Cells))
	for y, row := range r.Cells {
		out.Cells[y] = append([]Cell(nil), row...)
	}
	return &out
}

// Line returns row y as plain text, padded to the raster width.
func (r *Raster) Line(y int) string {
	var b strings.Builder
	for _, c := range r.Cells[y] {
		b.WriteRune(c.Ch)
	}
	return b.String()
}

// String returns the raster as plain text with trailing spaces trimmed.
func (r *Raster) String() string {
	lines := make([]string, r.Height)
	for y := range lines {
		lines[y] = strings.TrimRight(r.Line(y), " ")
	}
	return strings.Join(lines, "\n")
}
