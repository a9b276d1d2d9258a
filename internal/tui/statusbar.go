package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/papapumpkin/orrery/internal/scene"
)

// StatusBar renders the persistent top bar: model, observation time, the
// visible radial range, the hovered body and the last refresh error.
type StatusBar struct {
	Model    string
	Observed time.Time
	Now      time.Time // reference for the relative observation time; zero means time.Now
	Axis     scene.Axis
	Hovered  string
	Err      error
	Width    int
}

// maxErrorWidth caps the error segment in runes.
const maxErrorWidth = 48

// Logo returns the styled single-line logo.
func Logo() string {
	return styleStatusLabel.Render("─○─ ORRERY")
}

// View renders the status bar as a single line. Low-priority segments are
// dropped from the right until the line fits.
func (s StatusBar) View() string {
	const barPadding = 2
	innerWidth := max(s.Width-barPadding, 0)

	left := Logo()
	if s.Model != "" {
		left += styleStatusValue.Render("  " + s.Model)
	}

	segments := s.segments()
	sep := styleFooterSep.Render(" │ ")
	var right string
	for n := len(segments); n >= 0; n-- {
		right = strings.Join(segments[:n], sep)
		if lipgloss.Width(left)+lipgloss.Width(right)+1 <= innerWidth {
			break
		}
	}

	gap := max(innerWidth-lipgloss.Width(left)-lipgloss.Width(right), 1)
	line := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(s.Width).MaxWidth(s.Width).Render(line)
}

// segments returns the right-hand segments in priority order.
func (s StatusBar) segments() []string {
	var out []string
	if s.Err != nil {
		out = append(out, styleStatusError.Render("✗ "+TruncateWithEllipsis(s.Err.Error(), maxErrorWidth)))
	}
	if s.Hovered != "" {
		out = append(out, styleStatusLabel.Render("◎ ")+styleStatusValue.Render(s.Hovered))
	}
	if !s.Observed.IsZero() {
		now := s.Now
		if now.IsZero() {
			now = time.Now()
		}
		out = append(out, styleStatusValue.Render(humanize.RelTime(s.Observed, now, "ago", "from now")))
	}
	if s.Axis.Max > 0 {
		out = append(out, styleStatusValue.Render("r ≤ "+humanize.FtoaWithDigits(s.Axis.Max, 2)+" AU"))
	}
	if !s.Observed.IsZero() && s.Width >= CompactWidth {
		out = append(out, styleFooterDesc.Render(s.Observed.UTC().Format(time.RFC3339)))
	}
	return out
}
