package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/orrery/internal/ephemeris"
)

var elementsCmd = &cobra.Command{
	Use:   "elements",
	Short: "Write the built-in orbital elements as TOML",
	Long: `Write the built-in mean orbital elements table as TOML. Edit the result and
pass it back with --ephemeris elements --elements-file FILE; a running
"orrery show" reloads the file whenever it changes.`,
	Args: cobra.NoArgs,
	RunE: runElements,
}

func init() {
	elementsCmd.Flags().StringP("output", "o", "", "write to this file instead of stdout")
	rootCmd.AddCommand(elementsCmd)
}

func runElements(cmd *cobra.Command, _ []string) error {
	var w io.Writer = cmd.OutOrStdout()
	if out, _ := cmd.Flags().GetString("output"); out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("creating %s: %w", out, err)
		}
		defer f.Close()
		w = f
	}
	return ephemeris.WriteElements(w, ephemeris.BuiltinElements())
}
