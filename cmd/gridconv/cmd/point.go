package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tzneal/gridconv"
)

var pointCmd = &cobra.Command{
	Use:   "point <mgrs>",
	Short: "Convert an MGRS reference to the latitude and longitude of its center",
	Long: `Convert an MGRS grid reference to the WGS84 latitude and longitude of
the center of the square it describes. Spaces in the reference are ignored.

Examples:
  gridconv point 30UWB8203270370
  gridconv point 30U WB 82032 70370`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPoint,
}

func init() {
	rootCmd.AddCommand(pointCmd)
}

func runPoint(cmd *cobra.Command, args []string) error {
	ref := strings.Join(args, "")
	ll, err := gridconv.MGRSToPoint(ref)
	if err != nil {
		return fmt.Errorf("decoding %q: %w", ref, err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), ll)
	return nil
}
