package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/orrery/internal/scene"
)

// Semantic color palette.
var (
	colorPrimary     = lipgloss.Color("#00BFFF") // Cyan, primary accent
	colorAccent      = lipgloss.Color("#FFD700") // Gold, the Sun
	colorDanger      = lipgloss.Color("#FF5252") // Red, errors
	colorMuted       = lipgloss.Color("#636363") // Gray, grid
	colorMutedLight  = lipgloss.Color("#8C8C8C") // Lighter gray, labels
	colorWhite       = lipgloss.Color("#EEEEEE")
	colorBrightWhite = lipgloss.Color("#FFFFFF")
	colorSurface     = lipgloss.Color("#1E1E2E") // status bar bg
	colorSurfaceDim  = lipgloss.Color("#181825") // footer bg
)

// bodyColors tints markers and their rings, indexed by marker ID - 1.
var bodyColors = []lipgloss.Color{
	lipgloss.Color("#B0A8A0"), // Mercury
	lipgloss.Color("#E8C77A"), // Venus
	lipgloss.Color("#5B8DEF"), // Earth
	lipgloss.Color("#E0603A"), // Mars
	lipgloss.Color("#D9A066"), // Jupiter
	lipgloss.Color("#E6D28A"), // Saturn
	lipgloss.Color("#7FD6E0"), // Uranus
	lipgloss.Color("#4A6FE3"), // Neptune
}

func bodyColor(id scene.MarkerID) lipgloss.Color {
	if id < 1 {
		return colorWhite
	}
	return bodyColors[(int(id)-1)%len(bodyColors)]
}

// Status bar styles.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 1)

	styleStatusLabel = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	styleStatusValue = lipgloss.NewStyle().
				Foreground(colorWhite)

	styleStatusError = lipgloss.NewStyle().
				Foreground(colorDanger).
				Bold(true)
)

// Footer styles.
var (
	styleFooter = lipgloss.NewStyle().
			Foreground(colorMuted).
			Background(colorSurfaceDim).
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(colorMuted)

	styleFooterKey = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleFooterSep = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleFooterDesc = lipgloss.NewStyle().
			Foreground(colorMutedLight)
)

// Plot cell styles.
var (
	styleGrid  = lipgloss.NewStyle().Foreground(colorMuted)
	styleLabel = lipgloss.NewStyle().Foreground(colorMutedLight)
	styleSun   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	styleAnnotation = lipgloss.NewStyle().
			Foreground(colorBrightWhite).
			Background(colorSurface).
			Bold(true)
)

// Table pane styles.
var (
	styleTableHeader = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				Padding(0, 1)

	styleTableCell = lipgloss.NewStyle().
			Foreground(colorWhite).
			Padding(0, 1)

	styleTableHovered = lipgloss.NewStyle().
				Foreground(colorBrightWhite).
				Background(colorSurface).
				Bold(true).
				Padding(0, 1)

	styleTableBorder = lipgloss.NewStyle().Foreground(colorMuted)
)

// cellStyle picks the style for one raster cell.
func cellStyle(c scene.Cell) lipgloss.Style {
	switch c.Layer {
	case scene.LayerGrid:
		return styleGrid
	case scene.LayerRing:
		return lipgloss.NewStyle().Foreground(bodyColor(c.Marker)).Faint(true)
	case scene.LayerLabel:
		return styleLabel
	case scene.LayerSun:
		return styleSun
	case scene.LayerMarker:
		return lipgloss.NewStyle().Foreground(bodyColor(c.Marker)).Bold(true)
	case scene.LayerAnnotation:
		return styleAnnotation
	default:
		return lipgloss.NewStyle()
	}
}
