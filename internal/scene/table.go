package scene

import (
	"fmt"

	"github.com/papapumpkin/orrery/internal/position"
)

// TableHeaders names the summary table columns.
var TableHeaders = []string{"#", "Planet", "RA", "Distance", "Observed"}

// Row is one summary table line, already formatted for display.
type Row struct {
	Marker         MarkerID
	Name           string
	RightAscension string
	Distance       string
	Observed       string
}

// Cells returns the row's values in TableHeaders order.
func (r Row) Cells() []string {
	return []string{fmt.Sprintf("%d", r.Marker), r.Name, r.RightAscension, r.Distance, r.Observed}
}

// TableRows formats one row per position, in input order.
func TableRows(positions []position.PlanetPosition) []Row {
	rows := make([]Row, len(positions))
	for i, p := range positions {
		rows[i] = Row{
			Marker:         MarkerID(i + 1),
			Name:           p.Name(),
			RightAscension: fmt.Sprintf("%.2f°", p.RightAscensionDeg),
			Distance:       fmt.Sprintf("%.2f AU", p.DistanceAU),
			Observed:       p.Timestamp(),
		}
	}
	return rows
}
