package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/papapumpkin/orrery/internal/config"
	"github.com/papapumpkin/orrery/internal/ephemeris"
	"github.com/papapumpkin/orrery/internal/logging"
	"github.com/papapumpkin/orrery/internal/position"
	"github.com/papapumpkin/orrery/internal/scene"
	"github.com/papapumpkin/orrery/internal/telemetry"
)

// session holds what every resolving command needs: the loaded config, the
// ephemeris model, the telemetry emitter and the log file.
type session struct {
	cfg     config.Config
	emitter *telemetry.Emitter

	mu    sync.Mutex
	model ephemeris.Model

	logCloser io.Closer
}

// openSession loads config, configures logging and opens the ephemeris
// model. interactive means the TUI will own the terminal, so stderr logging
// is limited to errors unless a log file is configured.
func openSession(cfg config.Config, interactive bool) (*session, error) {
	logOpts := logging.Options{Level: cfg.LogLevel, JSON: cfg.LogJSON, File: cfg.LogFile}
	if cfg.Verbose {
		logOpts.Level = "debug"
	}
	if interactive && cfg.LogFile == "" {
		logOpts.Level = "error"
	}
	logCloser, err := logging.Init(logOpts)
	if err != nil {
		return nil, err
	}

	s := &session{cfg: cfg, logCloser: logCloser}
	if cfg.TelemetryPath != "" {
		s.emitter, err = telemetry.NewEmitter(cfg.TelemetryPath)
		if err != nil {
			s.Close()
			return nil, err
		}
		slog.Debug("telemetry enabled", "path", cfg.TelemetryPath, "run", s.emitter.RunID())
	}

	s.model, err = position.Open(cfg.Ephemeris, ephemeris.Options{ElementsPath: cfg.ElementsFile})
	if err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the telemetry and log files.
func (s *session) Close() {
	if err := s.emitter.Close(); err != nil {
		slog.Warn("closing telemetry", "err", err)
	}
	if s.logCloser != nil {
		_ = s.logCloser.Close()
	}
}

func (s *session) currentModel() ephemeris.Model {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model
}

// reloadElements re-reads the elements file and swaps it in as the model.
func (s *session) reloadElements() error {
	m, err := ephemeris.LoadElementsFile(s.cfg.ElementsFile)
	if err != nil {
		return &position.UnavailableError{Body: position.NoBody, Model: ephemeris.ModelElements, Err: err}
	}
	s.mu.Lock()
	s.model = m
	s.mu.Unlock()
	return nil
}

// resolve produces positions for t (zero means now) and records the outcome.
func (s *session) resolve(ctx context.Context, t time.Time) ([]position.PlanetPosition, error) {
	model := s.currentModel()
	positions, err := position.Resolve(ctx, model, t)
	if err != nil {
		s.record(telemetry.KindResolveFailed, map[string]string{"model": model.Name(), "error": err.Error()})
		return nil, err
	}
	s.record(telemetry.KindResolveDone, map[string]any{
		"model":    model.Name(),
		"observed": positions[0].Timestamp(),
		"count":    len(positions),
	})
	return positions, nil
}

// scene resolves positions for t and builds the scene from them.
func (s *session) scene(ctx context.Context, t time.Time) (*scene.Scene, error) {
	positions, err := s.resolve(ctx, t)
	if err != nil {
		return nil, err
	}
	sc, err := scene.Build(positions, sceneOptions(s.cfg.Render))
	if err != nil {
		return nil, fmt.Errorf("building scene: %w", err)
	}
	return sc, nil
}

func (s *session) record(kind string, data any) {
	if err := s.emitter.Record(kind, data); err != nil {
		slog.Warn("telemetry write failed", "kind", kind, "err", err)
	}
}

func sceneOptions(rc config.RenderConfig) scene.Options {
	return scene.Options{
		ShowTable:      rc.ShowTable,
		ShowOrbitRings: rc.ShowOrbitRings,
		EnableHover:    rc.EnableHover,
		EnableZoom:     rc.EnableZoom,
		ZoomFactor:     rc.ZoomFactor,
		RingSamples:    rc.RingSamples,
	}
}
