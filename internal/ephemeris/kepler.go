package ephemeris

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/coord"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/kepler"
	"github.com/soniakeys/unit"
)

const (
	j2000JD        = 2451545.0
	daysPerCentury = 36525.0
	secondsPerDay  = 86400.0

	// TT runs ahead of UTC by TAI-UTC (37 s since 2017) plus 32.184 s.
	ttMinusUTC = 69.184

	// Mean obliquity of the ecliptic at J2000, degrees.
	obliquityJ2000 = 23.43928

	// Decimal places the Newton solver must agree to.
	keplerPlaces = 12
)

// vec3 is a Cartesian vector in AU.
type vec3 struct {
	X, Y, Z float64
}

func (v vec3) norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func degToRad(deg float64) float64 {
	return unit.AngleFromDeg(deg).Rad()
}

func radToDeg(rad float64) float64 {
	return unit.Angle(rad).Deg()
}

// normalizeDegrees folds an angle into [0, 360).
func normalizeDegrees(angle float64) float64 {
	angle = math.Mod(angle, 360.0)
	if angle < 0 {
		angle += 360.0
	}
	return angle
}

// julianDate converts t to a Julian date on the UTC scale.
func julianDate(t time.Time) float64 {
	return julian.TimeToJD(t.UTC())
}

// centuriesSinceJ2000 returns Julian centuries of TT elapsed since J2000.
func centuriesSinceJ2000(t time.Time) float64 {
	jdTT := julianDate(t) + ttMinusUTC/secondsPerDay
	return (jdTT - j2000JD) / daysPerCentury
}

// solveKepler returns the eccentric anomaly E for mean anomaly m (radians)
// and eccentricity e. Newton iteration is tried first; the bisection solver
// takes over if it fails to settle.
func solveKepler(m, e float64) float64 {
	M := unit.Angle(math.Remainder(m, 2*math.Pi))
	E, err := kepler.Kepler2(e, M, keplerPlaces)
	if err != nil {
		E = kepler.Kepler3(e, M)
	}
	return E.Rad()
}

// heliocentricEcliptic propagates el to T centuries past J2000 and returns
// the body's heliocentric position in the J2000 ecliptic frame.
func heliocentricEcliptic(el Elements, T float64) vec3 {
	a := el.A + T*el.DA
	e := el.E + T*el.DE
	i := degToRad(el.I + T*el.DI)
	L := el.L + T*el.DL
	lp := el.LP + T*el.DLP
	node := el.Node + T*el.DNode

	w := degToRad(lp - node)
	M := degToRad(normalizeDegrees(L - lp))
	N := degToRad(node)

	E := solveKepler(M, e)

	// Position in the orbital plane, x toward perihelion.
	xo := a * (math.Cos(E) - e)
	yo := a * math.Sqrt(1-e*e) * math.Sin(E)

	cw, sw := math.Cos(w), math.Sin(w)
	cN, sN := math.Cos(N), math.Sin(N)
	ci, si := math.Cos(i), math.Sin(i)

	return vec3{
		X: (cw*cN-sw*sN*ci)*xo + (-sw*cN-cw*sN*ci)*yo,
		Y: (cw*sN+sw*cN*ci)*xo + (-sw*sN+cw*cN*ci)*yo,
		Z: (sw*si)*xo + (cw*si)*yo,
	}
}

// eclipticToEquatorial rotates an ecliptic vector about the x axis by the
// J2000 obliquity.
func eclipticToEquatorial(v vec3) vec3 {
	ob := coord.NewObliquity(unit.AngleFromDeg(obliquityJ2000))
	ce, se := ob.C, ob.S
	return vec3{
		X: v.X,
		Y: ce*v.Y - se*v.Z,
		Z: se*v.Y + ce*v.Z,
	}
}

// readingFrom converts an equatorial vector to RA/Dec/distance.
func readingFrom(eq vec3) Reading {
	r := eq.norm()
	var dec float64
	if r > 0 {
		dec = radToDeg(math.Asin(eq.Z / r))
	}
	return Reading{
		RightAscensionDeg: radToDeg(math.Atan2(eq.Y, eq.X)),
		DeclinationDeg:    dec,
		DistanceAU:        r,
	}
}
