package scene

// Axis is the visible radial range in AU.
type Axis struct {
	Min float64
	Max float64
}

// ZoomIn narrows the radial limits by factor.
func (a Axis) ZoomIn(factor float64) Axis {
	return Axis{Min: a.Min / factor, Max: a.Max / factor}
}

// ZoomOut widens the radial limits by factor.
func (a Axis) ZoomOut(factor float64) Axis {
	return Axis{Min: a.Min * factor, Max: a.Max * factor}
}

// Span returns Max - Min.
func (a Axis) Span() float64 {
	return a.Max - a.Min
}

// Fraction maps r onto [0, 1] across the axis. ok is false when r lies
// outside the visible range or the axis is degenerate.
func (a Axis) Fraction(r float64) (frac float64, ok bool) {
	span := a.Span()
	if span <= 0 {
		return 0, false
	}
	frac = (r - a.Min) / span
	if frac < 0 || frac > 1 {
		return frac, false
	}
	return frac, true
}
