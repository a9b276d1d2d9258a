package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/orrery/internal/config"
	"github.com/papapumpkin/orrery/internal/ephemeris"
	"github.com/papapumpkin/orrery/internal/scene"
	"github.com/papapumpkin/orrery/internal/telemetry"
	"github.com/papapumpkin/orrery/internal/tui"
	"github.com/papapumpkin/orrery/internal/ui"
	"github.com/papapumpkin/orrery/internal/watch"
)

// Static plot size when stdout is not a terminal.
const (
	staticWidth  = 80
	staticHeight = 33
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the interactive polar plot",
	Long: `Resolve planet positions and show them on a polar plot beside a summary
table. Use the arrow keys or +/- to zoom the radial axis and hover a marker
with the mouse to see which planet it is.

When stdout is not a terminal, or with --static, the plot and table are
printed once instead.`,
	Args:    cobra.NoArgs,
	PreRunE: bindShowFlags,
	RunE:    runShow,
}

func init() {
	addShowFlags(showCmd)
	rootCmd.AddCommand(showCmd)
}

func addShowFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Bool("static", false, "print the plot once instead of starting the TUI")
	f.Bool("no-table", false, "hide the summary table")
	f.Bool("no-rings", false, "hide the orbit guide rings")
	f.Bool("no-hover", false, "disable hover labels")
	f.Bool("no-zoom", false, "disable radial zoom")
	f.Float64("zoom-factor", scene.DefaultZoomFactor, "radial zoom step (> 1)")
}

// bindShowFlags binds the running command's flags, since show and the root
// command both declare them.
func bindShowFlags(cmd *cobra.Command, _ []string) error {
	f := cmd.Flags()
	if err := viper.BindPFlag("static", f.Lookup("static")); err != nil {
		return err
	}
	return viper.BindPFlag("render.zoom_factor", f.Lookup("zoom-factor"))
}

// applyShowFlags lets the --no-* flags switch features off.
func applyShowFlags(cmd *cobra.Command, cfg *config.Config) {
	for flag, field := range map[string]*bool{
		"no-table": &cfg.Render.ShowTable,
		"no-rings": &cfg.Render.ShowOrbitRings,
		"no-hover": &cfg.Render.EnableHover,
		"no-zoom":  &cfg.Render.EnableZoom,
	} {
		if v, _ := cmd.Flags().GetBool(flag); v {
			*field = false
		}
	}
}

func runShow(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyShowFlags(cmd, &cfg)

	interactive := !cfg.Static && isStdoutTTY()
	sess, err := openSession(cfg, interactive)
	if err != nil {
		return err
	}
	defer sess.Close()

	ctx := cmd.Context()
	sc, err := sess.scene(ctx, cfg.ReferenceTime)
	if err != nil {
		return err
	}

	if !interactive {
		printer := ui.New()
		printer.Out = cmd.OutOrStdout()
		printer.Color = isStdoutTTY()
		if cfg.Verbose {
			printer.Resolved(sess.currentModel().Name(), sc.ObservedAt, len(sc.Points))
		}
		w, h := staticSize()
		printer.Scene(sc, w, h)
		sess.record(telemetry.KindRender, map[string]int{"width": w, "height": h})
		return nil
	}

	model := tui.NewModel(sc, tui.Options{
		ModelName: sess.currentModel().Name(),
		Refresh: func() (*scene.Scene, error) {
			return sess.scene(ctx, time.Time{})
		},
		Emitter: sess.emitter,
	})
	p := tui.NewProgram(model, tui.WithContext(ctx))

	if cfg.Ephemeris == ephemeris.ModelElements {
		stop, err := watchElements(ctx, sess, p)
		if err != nil {
			return err
		}
		defer stop()
	}

	return tui.Run(p)
}

// watchElements reloads the elements file whenever it changes and sends the
// rebuilt scene, or the failure, into the running program.
func watchElements(ctx context.Context, sess *session, p *tui.Program) (stop func(), err error) {
	w, err := watch.NewWatcher(sess.cfg.ElementsFile)
	if err != nil {
		return nil, err
	}
	if err := w.Start(); err != nil {
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for c := range w.Changes {
			slog.Info("elements file changed", "file", c.File, "kind", c.Kind)
			if c.Kind == watch.ChangeRemoved {
				p.Send(tui.MsgSceneFailed{Err: fmt.Errorf("elements file %s was removed", c.File), Source: tui.SourceReload})
				continue
			}
			if err := sess.reloadElements(); err != nil {
				p.Send(tui.MsgSceneFailed{Err: err, Source: tui.SourceReload})
				continue
			}
			sc, err := sess.scene(ctx, sess.cfg.ReferenceTime)
			if err != nil {
				p.Send(tui.MsgSceneFailed{Err: err, Source: tui.SourceReload})
				continue
			}
			p.Send(tui.MsgSceneLoaded{Scene: sc, Source: tui.SourceReload})
		}
	}()

	return func() {
		w.Stop()
		<-done
	}, nil
}

func isStdoutTTY() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// staticSize fits the static plot to the terminal when there is one.
func staticSize() (width, height int) {
	w, h, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 || h <= 0 {
		return staticWidth, staticHeight
	}
	return min(w, 120), min(max(h-4, 12), 48)
}
