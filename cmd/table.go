package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/orrery/internal/config"
	"github.com/papapumpkin/orrery/internal/scene"
	"github.com/papapumpkin/orrery/internal/ui"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the summary table without the plot",
	Args:  cobra.NoArgs,
	RunE:  runTable,
}

func init() {
	rootCmd.AddCommand(tableCmd)
}

func runTable(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	sess, err := openSession(cfg, false)
	if err != nil {
		return err
	}
	defer sess.Close()

	positions, err := sess.resolve(cmd.Context(), cfg.ReferenceTime)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.Table(scene.TableRows(positions)))
	return nil
}
