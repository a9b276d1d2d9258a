package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/papapumpkin/orrery/internal/scene"
)

func TestStatusBarView(t *testing.T) {
	t.Parallel()

	t.Run("relative observation time", func(t *testing.T) {
		t.Parallel()
		sb := StatusBar{
			Model:    "builtin",
			Observed: observed,
			Now:      observed.Add(3 * time.Hour),
			Width:    120,
		}
		view := sb.View()
		for _, want := range []string{"ORRERY", "builtin", "3 hours ago", "2025-01-02T03:04:05Z"} {
			if !strings.Contains(view, want) {
				t.Errorf("expected %q in view, got: %s", want, view)
			}
		}
	})

	t.Run("axis and hover", func(t *testing.T) {
		t.Parallel()
		sb := StatusBar{
			Axis:    scene.Axis{Min: 0, Max: 27.58},
			Hovered: "Saturn",
			Width:   120,
		}
		view := sb.View()
		if !strings.Contains(view, "27.58 AU") {
			t.Errorf("expected axis in view, got: %s", view)
		}
		if !strings.Contains(view, "Saturn") {
			t.Errorf("expected hovered body in view, got: %s", view)
		}
	})

	t.Run("narrow terminal stays on one line", func(t *testing.T) {
		t.Parallel()
		sb := StatusBar{
			Model:    "elements",
			Observed: observed,
			Now:      observed,
			Axis:     scene.Axis{Max: 33.11},
			Hovered:  "Neptune",
			Err:      errors.New("elements file vanished"),
			Width:    50,
		}
		view := sb.View()
		if strings.Contains(view, "\n") {
			t.Errorf("status bar wrapped: %q", view)
		}
		if w := lipgloss.Width(view); w > 50 {
			t.Errorf("status bar width = %d, want <= 50", w)
		}
	})
}

func TestFooterView(t *testing.T) {
	t.Parallel()

	km := DefaultKeyMap()
	km.Refresh.SetEnabled(false)

	wide := Footer{Width: 100, Bindings: FooterBindings(km)}.View()
	for _, want := range []string{"zoom in", "zoom out", "quit"} {
		if !strings.Contains(wide, want) {
			t.Errorf("expected %q in footer, got: %s", want, wide)
		}
	}
	if strings.Contains(wide, "refresh") {
		t.Errorf("disabled binding shown: %s", wide)
	}

	compact := Footer{Width: 40, Bindings: []key.Binding{km.Quit}}.View()
	if strings.Contains(compact, "quit") {
		t.Errorf("compact footer should omit descriptions: %s", compact)
	}
}

func TestTruncateWithEllipsis(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"Neptune", 10, "Neptune"},
		{"Neptune", 5, "Ne..."},
		{"Neptune", 3, "Nep"},
		{"Neptune", 0, ""},
		{"°°°°°°", 4, "°..."},
	}
	for _, tt := range tests {
		if got := TruncateWithEllipsis(tt.in, tt.maxLen); got != tt.want {
			t.Errorf("TruncateWithEllipsis(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
		}
	}
}
