package scene

import "math"

// PolarPoint is a vertex of a polar path.
type PolarPoint struct {
	ThetaRad float64
	R        float64
}

// Ring is a dashed circular guide at a body's current distance.
type Ring struct {
	Marker MarkerID
	Radius float64
	Path   []PolarPoint
}

// OrbitRing samples a closed circle of the given radius. The path has
// samples+1 vertices so that the last one coincides with the first.
func OrbitRing(id MarkerID, radius float64, samples int) Ring {
	path := make([]PolarPoint, samples+1)
	for i := range path {
		path[i] = PolarPoint{
			ThetaRad: 2 * math.Pi * float64(i) / float64(samples),
			R:        radius,
		}
	}
	return Ring{Marker: id, Radius: radius, Path: path}
}
