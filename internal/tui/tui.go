// Package tui is the interactive terminal surface: a polar plot of the
// planets beside the summary table, with keyboard zoom and mouse hover.
package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// Program is an alias for tea.Program, exposed so callers don't need
// to import bubbletea directly.
type Program = tea.Program

// NewProgram creates a BubbleTea program for model. The program uses the
// alternate screen buffer and, when hover is enabled, reports all mouse
// motion.
func NewProgram(model Model, opts ...tea.ProgramOption) *Program {
	allOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
	}
	if model.Scene.Options.EnableHover {
		allOpts = append(allOpts, tea.WithMouseAllMotion())
	}
	allOpts = append(allOpts, opts...)
	return tea.NewProgram(model, allOpts...)
}

// Run runs p until the user quits.
func Run(p *Program) error {
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// WithOutput returns a program option that directs TUI output to the given writer.
// Useful for testing or redirecting output.
func WithOutput(w io.Writer) tea.ProgramOption {
	return tea.WithOutput(w)
}

// WithInput returns a program option that reads TUI input from r.
func WithInput(r io.Reader) tea.ProgramOption {
	return tea.WithInput(r)
}

// WithContext returns a program option that stops the program when ctx is
// cancelled.
func WithContext(ctx context.Context) tea.ProgramOption {
	return tea.WithContext(ctx)
}
