package scene

import (
	"fmt"
	"math"

	"github.com/papapumpkin/orrery/internal/position"
)

// Tick counts.
const (
	RadialTickCount  = 6
	AngularTickCount = 8
)

// Tick is one axis gridline. Value is AU for radial ticks and radians for
// angular ticks.
type Tick struct {
	Value float64
	Label string
}

// DegreesToRadians converts degrees to radians.
func DegreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// ProjectAngle maps a raw right ascension in degrees to a polar angle in
// [0, 2π).
func ProjectAngle(raDeg float64) float64 {
	theta := DegreesToRadians(position.NormalizeDegrees(raDeg))
	if theta >= 2*math.Pi {
		theta = 0
	}
	return theta
}

// RadialTicks returns RadialTickCount evenly spaced ticks from 0 to
// maxDistanceAU inclusive, labeled with their integer AU value.
func RadialTicks(maxDistanceAU float64) []Tick {
	ticks := make([]Tick, RadialTickCount)
	step := maxDistanceAU / float64(RadialTickCount-1)
	for i := range ticks {
		v := step * float64(i)
		if i == RadialTickCount-1 {
			v = maxDistanceAU
		}
		ticks[i] = Tick{Value: v, Label: fmt.Sprintf("%d AU", int(v))}
	}
	return ticks
}

// AngularTicks returns the fixed compass gridlines at 0°, 45°, …, 315°.
func AngularTicks() []Tick {
	ticks := make([]Tick, AngularTickCount)
	for i := range ticks {
		deg := i * 360 / AngularTickCount
		ticks[i] = Tick{
			Value: DegreesToRadians(float64(deg)),
			Label: fmt.Sprintf("%d°", deg),
		}
	}
	return ticks
}
