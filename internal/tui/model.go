package tui

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/papapumpkin/orrery/internal/scene"
	"github.com/papapumpkin/orrery/internal/telemetry"
)

// RefreshFunc resolves and builds a fresh scene, typically at the current
// time.
type RefreshFunc func() (*scene.Scene, error)

// Options configures a Model.
type Options struct {
	ModelName string
	Refresh   RefreshFunc // nil disables the refresh key
	Emitter   *telemetry.Emitter
	Now       func() time.Time
}

// Model is the interactive polar plot. Zoom and hover only change view
// state; the scene itself is replaced wholesale by MsgSceneLoaded.
type Model struct {
	Scene   *scene.Scene
	Axis    scene.Axis
	Hovered scene.MarkerID
	Err     error
	Width   int
	Height  int
	Keys    KeyMap

	modelName string
	refresh   RefreshFunc
	emitter   *telemetry.Emitter
	now       func() time.Time

	raster    *scene.Raster
	showTable bool
}

// NewModel returns a Model displaying s.
func NewModel(s *scene.Scene, opts Options) Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return Model{
		Scene:     s,
		Axis:      s.Axis,
		Keys:      keyMapFor(s.Options.EnableZoom, opts.Refresh != nil),
		modelName: opts.ModelName,
		refresh:   opts.Refresh,
		emitter:   opts.Emitter,
		now:       now,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.relayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg), nil

	case MsgSceneLoaded:
		return m.replaceScene(msg), nil

	case MsgSceneFailed:
		m.Err = msg.Err
		slog.Warn("scene update failed", "source", msg.Source, "err", msg.Err)
		m.record(telemetry.KindResolveFailed, map[string]string{"source": msg.Source, "error": msg.Err.Error()})
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.ZoomIn):
		return m.zoom("in", m.Axis.ZoomIn(m.Scene.Options.ZoomFactor)), nil

	case key.Matches(msg, m.Keys.ZoomOut):
		return m.zoom("out", m.Axis.ZoomOut(m.Scene.Options.ZoomFactor)), nil

	case key.Matches(msg, m.Keys.ResetZoom):
		return m.zoom("reset", m.Scene.Axis), nil

	case key.Matches(msg, m.Keys.Refresh):
		return m, m.refreshCmd()
	}
	return m, nil
}

func (m Model) zoom(direction string, axis scene.Axis) Model {
	m.Axis = axis
	m.relayout()
	m.record(telemetry.KindZoom, map[string]any{"direction": direction, "min": axis.Min, "max": axis.Max})
	return m
}

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	if !m.Scene.Options.EnableHover || m.raster == nil {
		return m
	}
	id, _ := m.raster.MarkerAt(msg.X, msg.Y-statusBarHeight)
	if id == m.Hovered {
		return m
	}
	m.Hovered = id
	if name, ok := m.Scene.MarkerName(id); ok {
		m.emit(telemetry.Event{Kind: telemetry.KindHover, Body: name})
	}
	return m
}

func (m Model) replaceScene(msg MsgSceneLoaded) Model {
	if msg.Scene == nil {
		return m
	}
	zoomed := m.Axis != m.Scene.Axis
	m.Scene = msg.Scene
	if !zoomed {
		m.Axis = msg.Scene.Axis
	}
	m.Err = nil
	m.relayout()
	m.record(telemetry.KindReload, map[string]any{"source": msg.Source, "observed": msg.Scene.ObservedAt})
	return m
}

func (m Model) refreshCmd() tea.Cmd {
	if m.refresh == nil {
		return nil
	}
	refresh := m.refresh
	return func() tea.Msg {
		s, err := refresh()
		if err != nil {
			return MsgSceneFailed{Err: err, Source: SourceRefresh}
		}
		return MsgSceneLoaded{Scene: s, Source: SourceRefresh}
	}
}

// relayout re-rasterizes the plot for the current size, axis and scene.
func (m *Model) relayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}
	tableWidth := 0
	if m.Scene.Options.ShowTable && len(m.Scene.Table) > 0 {
		tableWidth = lipgloss.Width(m.renderTable())
	}
	plotW, plotH, showTable := paneSizes(m.Width, m.Height, tableWidth)
	m.showTable = showTable
	m.raster = scene.Rasterize(m.Scene, m.Axis, plotW, plotH)
	if _, _, ok := m.raster.MarkerCell(m.Hovered); !ok {
		m.Hovered = 0
	}
	m.record(telemetry.KindRender, map[string]any{"width": plotW, "height": plotH, "axis_max": m.Axis.Max})
}

// View implements tea.Model.
func (m Model) View() string {
	if m.Width == 0 || m.raster == nil {
		return ""
	}
	if m.Width < MinWidth || m.Height < MinHeight {
		return "terminal too small"
	}

	hovered, _ := m.Scene.MarkerName(m.Hovered)
	status := StatusBar{
		Model:    m.modelName,
		Observed: m.Scene.Observed,
		Now:      m.now(),
		Axis:     m.Axis,
		Hovered:  hovered,
		Err:      m.Err,
		Width:    m.Width,
	}
	footer := Footer{Width: m.Width, Bindings: FooterBindings(m.Keys)}

	r := m.raster
	if hovered != "" {
		r = r.Annotate(m.Hovered, hovered)
	}
	body := renderRaster(r)
	if m.showTable {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, " ", m.renderTable())
	}
	return lipgloss.JoinVertical(lipgloss.Left, status.View(), body, footer.View())
}

// renderTable draws the summary table, highlighting the hovered body.
func (m Model) renderTable() string {
	rows := m.Scene.Table
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableBorder).
		Headers(scene.TableHeaders...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleTableHeader
			case row >= 0 && row < len(rows) && rows[row].Marker == m.Hovered && m.Hovered != 0:
				return styleTableHovered
			case col == 0 && row >= 0 && row < len(rows):
				return styleTableCell.Foreground(bodyColor(rows[row].Marker))
			default:
				return styleTableCell
			}
		})
	for _, r := range rows {
		t.Row(r.Cells()...)
	}
	return t.String()
}

// renderRaster styles each cell by layer, batching runs of equal style.
func renderRaster(r *scene.Raster) string {
	lines := make([]string, r.Height)
	for y, row := range r.Cells {
		var b, run strings.Builder
		var cur scene.Cell
		flush := func() {
			if run.Len() == 0 {
				return
			}
			b.WriteString(cellStyle(cur).Render(run.String()))
			run.Reset()
		}
		for x, c := range row {
			if x > 0 && (c.Layer != cur.Layer || c.Marker != cur.Marker) {
				flush()
			}
			cur = c
			run.WriteRune(c.Ch)
		}
		flush()
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

func (m Model) record(kind string, data any) {
	if err := m.emitter.Record(kind, data); err != nil {
		slog.Warn("telemetry write failed", "kind", kind, "err", err)
	}
}

func (m Model) emit(evt telemetry.Event) {
	if err := m.emitter.Emit(evt); err != nil {
		slog.Warn("telemetry write failed", "kind", evt.Kind, "err", err)
	}
}
