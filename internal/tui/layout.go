package tui

import "unicode/utf8"

// Minimum terminal dimensions for usable rendering.
const (
	MinWidth  = 40
	MinHeight = 10
)

// Layout breakpoints for adaptive rendering.
const (
	// CompactWidth triggers compact mode for the footer and status bar.
	CompactWidth = 60
	// MinPlotWidth is the narrowest plot kept beside the table pane. Below
	// it the table pane is hidden.
	MinPlotWidth = 44
)

// Rows taken by chrome around the plot.
const (
	statusBarHeight = 1
	footerHeight    = 2 // top border + hints
)

// TruncateWithEllipsis truncates s to maxLen runes, appending "..." if truncated.
// If maxLen is less than 4, returns s truncated to maxLen runes without ellipsis.
func TruncateWithEllipsis(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		return truncateToNRunes(s, maxLen)
	}
	return truncateToNRunes(s, maxLen-3) + "..."
}

func truncateToNRunes(s string, n int) string {
	i := 0
	for j := 0; j < n; j++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i]
}

// paneSizes splits the body between the plot and the table pane. tableWidth
// is the rendered table width, or 0 when there is no table.
func paneSizes(width, height, tableWidth int) (plotW, plotH int, showTable bool) {
	plotH = max(height-statusBarHeight-footerHeight, 0)
	if tableWidth > 0 && width-tableWidth-1 >= MinPlotWidth {
		return width - tableWidth - 1, plotH, true
	}
	return width, plotH, false
}
