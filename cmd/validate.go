package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/orrery/internal/ephemeris"
	"github.com/papapumpkin/orrery/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Check an orbital elements file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := ephemeris.LoadElementsFile(args[0])
		if err != nil {
			return err
		}
		tbl := m.Table()

		printer := ui.New()
		printer.Err = cmd.ErrOrStderr()
		failed := 0
		for _, b := range ephemeris.Bodies() {
			if _, err := m.Locate(cmd.Context(), b, tbl.Midpoint()); err != nil {
				printer.Error(fmt.Sprintf("%s: %v", b, err))
				failed++
				continue
			}
			printer.Info(fmt.Sprintf("✓ %s", b))
		}
		if failed > 0 {
			return fmt.Errorf("%s: %d of %d bodies cannot be located", args[0], failed, len(ephemeris.Bodies()))
		}
		printer.Info(fmt.Sprintf("%s: %d bodies, valid %d–%d", args[0], len(tbl.Bodies), tbl.ValidFrom, tbl.ValidTo))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
