package cmd

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/papapumpkin/orrery/internal/config"
	"github.com/papapumpkin/orrery/internal/telemetry"
)

var telemetryCmd = &cobra.Command{
	Use:   "telemetry",
	Short: "View JSONL telemetry events",
	Long: `Reads and formats the JSONL telemetry file written with --telemetry or
telemetry_path.

With --run, only events from that run ID (or prefix) are shown.
With --follow (-f), watches the file for new events (like tail -f).`,
	Args: cobra.NoArgs,
	RunE: runTelemetry,
}

func init() {
	telemetryCmd.Flags().String("run", "", "only show events whose run ID starts with this")
	telemetryCmd.Flags().BoolP("follow", "f", false, "follow the file for new events")
	rootCmd.AddCommand(telemetryCmd)
}

func runTelemetry(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.TelemetryPath == "" {
		return errors.New("telemetry: no file configured (use --telemetry or telemetry_path)")
	}
	run, _ := cmd.Flags().GetString("run")
	follow, _ := cmd.Flags().GetBool("follow")

	f, err := os.Open(cfg.TelemetryPath)
	if err != nil {
		return fmt.Errorf("telemetry: open %s: %w", cfg.TelemetryPath, err)
	}
	defer f.Close()

	w := cmd.OutOrStdout()
	events := &eventReader{r: bufio.NewReader(f)}
	if err := events.drain(w, run); err != nil {
		return fmt.Errorf("telemetry: read %s: %w", cfg.TelemetryPath, err)
	}

	if !follow {
		events.flush(w, run)
		return nil
	}
	return tailFollow(cmd, events, cfg.TelemetryPath, run)
}

// eventReader reads JSONL events from a file that may still be growing. A
// trailing line without its newline is held back until the rest arrives.
type eventReader struct {
	r       *bufio.Reader
	partial string
}

// drain prints every complete line available so far.
func (er *eventReader) drain(w io.Writer, run string) error {
	for {
		chunk, err := er.r.ReadString('\n')
		er.partial += chunk
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		line := strings.TrimSpace(er.partial)
		er.partial = ""
		if line != "" {
			printEvent(w, line, run)
		}
	}
}

// flush prints a last line that was never terminated.
func (er *eventReader) flush(w io.Writer, run string) {
	line := strings.TrimSpace(er.partial)
	er.partial = ""
	if line != "" {
		printEvent(w, line, run)
	}
}

// tailFollow watches the file for new data using fsnotify and prints new
// events until the command's context is cancelled.
func tailFollow(cmd *cobra.Command, events *eventReader, path, run string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("telemetry: create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("telemetry: watch %s: %w", path, err)
	}

	ctx := cmd.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) {
				continue
			}
			if err := events.drain(cmd.OutOrStdout(), run); err != nil {
				return fmt.Errorf("telemetry: read %s: %w", path, err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("telemetry: watch %s: %w", path, err)
		}
	}
}

// printEvent decodes a JSONL line and prints a human-readable representation.
// Events from other runs are skipped when run is set.
func printEvent(w io.Writer, line, run string) {
	var evt telemetry.Event
	if err := json.Unmarshal([]byte(line), &evt); err != nil {
		fmt.Fprintf(w, "??? %s\n", line)
		return
	}
	if run != "" && !strings.HasPrefix(evt.RunID, run) {
		return
	}

	parts := []string{
		fmt.Sprintf("[%s]", evt.Timestamp.Format(time.TimeOnly)),
		evt.Kind,
	}
	if evt.RunID != "" {
		parts = append(parts, "run="+shortRunID(evt.RunID))
	}
	if evt.Body != "" {
		parts = append(parts, "body="+evt.Body)
	}
	if evt.Data != nil {
		if m, ok := evt.Data.(map[string]any); ok {
			parts = append(parts, formatDataMap(m))
		} else {
			data, _ := json.Marshal(evt.Data)
			parts = append(parts, string(data))
		}
	}

	fmt.Fprintln(w, strings.Join(parts, " "))
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// formatDataMap formats a data map as key=value pairs sorted by key.
func formatDataMap(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%v", k, m[k])
	}
	return b.String()
}
