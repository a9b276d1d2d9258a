package ephemeris

import (
	"fmt"
	"io"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Validity window of the JPL approximate element table.
const (
	DefaultValidFrom = 1800
	DefaultValidTo   = 2050
)

// Elements are Keplerian mean elements at J2000 with linear rates per Julian
// century. Distances are in AU, angles in degrees.
type Elements struct {
	Name  string  `toml:"name"`
	A     float64 `toml:"a"`     // semi-major axis
	E     float64 `toml:"e"`     // eccentricity
	I     float64 `toml:"i"`     // inclination
	L     float64 `toml:"l"`     // mean longitude
	LP    float64 `toml:"lp"`    // longitude of perihelion
	Node  float64 `toml:"node"`  // longitude of the ascending node
	DA    float64 `toml:"da"`    // rates per century
	DE    float64 `toml:"de"`
	DI    float64 `toml:"di"`
	DL    float64 `toml:"dl"`
	DLP   float64 `toml:"dlp"`
	DNode float64 `toml:"dnode"`
}

// ElementTable is the on-disk form of an element set.
type ElementTable struct {
	Source    string     `toml:"source,omitempty"`
	ValidFrom int        `toml:"valid_from,omitempty"` // first valid year
	ValidTo   int        `toml:"valid_to,omitempty"`   // last valid year
	Bodies    []Elements `toml:"body"`
}

// BuiltinElements returns the JPL approximate mean elements for 1800–2050
// (Standish, table 1). Earth's entry is the Earth–Moon barycenter.
func BuiltinElements() ElementTable {
	return ElementTable{
		Source:    "JPL approximate positions of the planets, 1800 AD - 2050 AD",
		ValidFrom: DefaultValidFrom,
		ValidTo:   DefaultValidTo,
		Bodies: []Elements{
			{
				Name: "Mercury",
				A:    0.38709927, E: 0.20563593, I: 7.00497902,
				L: 252.25032350, LP: 77.45779628, Node: 48.33076593,
				DA: 0.00000037, DE: 0.00001906, DI: -0.00594749,
				DL: 149472.67411175, DLP: 0.16047689, DNode: -0.12534081,
			},
			{
				Name: "Venus",
				A:    0.72333566, E: 0.00677672, I: 3.39467605,
				L: 181.97909950, LP: 131.60246718, Node: 76.67984255,
				DA: 0.00000390, DE: -0.00004107, DI: -0.00078890,
				DL: 58517.81538729, DLP: 0.00268329, DNode: -0.27769418,
			},
			{
				Name: "Earth",
				A:    1.00000261, E: 0.01671123, I: -0.00001531,
				L: 100.46457166, LP: 102.93768193, Node: 0.0,
				DA: 0.00000562, DE: -0.00004392, DI: -0.01294668,
				DL: 35999.37244981, DLP: 0.32327364, DNode: 0.0,
			},
			{
				Name: "Mars",
				A:    1.52371034, E: 0.09339410, I: 1.84969142,
				L: -4.55343205, LP: -23.94362959, Node: 49.55953891,
				DA: 0.00001847, DE: 0.00007882, DI: -0.00813131,
				DL: 19140.30268499, DLP: 0.44441088, DNode: -0.29257343,
			},
			{
				Name: "Jupiter",
				A:    5.20288700, E: 0.04838624, I: 1.30439695,
				L: 34.39644051, LP: 14.72847983, Node: 100.47390909,
				DA: -0.00011607, DE: -0.00013253, DI: -0.00183714,
				DL: 3034.74612775, DLP: 0.21252668, DNode: 0.20469106,
			},
			{
				Name: "Saturn",
				A:    9.53667594, E: 0.05386179, I: 2.48599187,
				L: 49.95424423, LP: 92.59887831, Node: 113.66242448,
				DA: -0.00125060, DE: -0.00050991, DI: 0.00193609,
				DL: 1222.49362201, DLP: -0.41897216, DNode: -0.28867794,
			},
			{
				Name: "Uranus",
				A:    19.18916464, E: 0.04725744, I: 0.77263783,
				L: 313.23810451, LP: 170.95427630, Node: 74.01692503,
				DA: -0.00196176, DE: -0.00004397, DI: -0.00242939,
				DL: 428.48202785, DLP: 0.40805281, DNode: 0.04240589,
			},
			{
				Name: "Neptune",
				A:    30.06992276, E: 0.00859048, I: 1.77004347,
				L: -55.12002969, LP: 44.96476227, Node: 131.78422574,
				DA: 0.00026291, DE: 0.00005105, DI: 0.00035372,
				DL: 218.45945325, DLP: -0.32241464, DNode: -0.00508664,
			},
		},
	}
}

// ParseElements decodes a TOML element table, applying the default validity
// window when the file leaves it unset.
func ParseElements(data []byte) (ElementTable, error) {
	var tbl ElementTable
	if err := toml.Unmarshal(data, &tbl); err != nil {
		return ElementTable{}, fmt.Errorf("parsing element table: %w", err)
	}
	if tbl.ValidFrom == 0 {
		tbl.ValidFrom = DefaultValidFrom
	}
	if tbl.ValidTo == 0 {
		tbl.ValidTo = DefaultValidTo
	}
	if tbl.ValidTo < tbl.ValidFrom {
		return ElementTable{}, fmt.Errorf("element table: valid_to %d before valid_from %d", tbl.ValidTo, tbl.ValidFrom)
	}
	for _, el := range tbl.Bodies {
		if _, err := ParseBody(el.Name); err != nil {
			return ElementTable{}, fmt.Errorf("element table: %w", err)
		}
		if el.E < 0 || el.E >= 1 {
			return ElementTable{}, fmt.Errorf("element table: %s: eccentricity %g not in [0, 1)", el.Name, el.E)
		}
		if el.A <= 0 {
			return ElementTable{}, fmt.Errorf("element table: %s: semi-major axis %g must be positive", el.Name, el.A)
		}
	}
	return tbl, nil
}

// WriteElements encodes tbl as TOML to w.
func WriteElements(w io.Writer, tbl ElementTable) error {
	enc := toml.NewEncoder(w)
	if err := enc.Encode(tbl); err != nil {
		return fmt.Errorf("encoding element table: %w", err)
	}
	return nil
}

// lookup returns the elements for body, if present.
func (tbl ElementTable) lookup(body Body) (Elements, bool) {
	for _, el := range tbl.Bodies {
		if b, err := ParseBody(el.Name); err == nil && b == body {
			return el, true
		}
	}
	return Elements{}, false
}

// covers reports whether t falls inside the table's validity window.
func (tbl ElementTable) covers(t time.Time) bool {
	y := t.UTC().Year()
	return y >= tbl.ValidFrom && y <= tbl.ValidTo
}

// Midpoint returns January 1st of the year halfway through the validity
// window, a time every complete table can answer for.
func (tbl ElementTable) Midpoint() time.Time {
	return time.Date((tbl.ValidFrom+tbl.ValidTo)/2, time.January, 1, 0, 0, 0, 0, time.UTC)
}
