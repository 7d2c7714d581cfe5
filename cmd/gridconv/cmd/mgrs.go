package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tzneal/gridconv"
)

var (
	mgrsAccuracy int
	mgrsTemplate string
)

var mgrsCmd = &cobra.Command{
	Use:   "mgrs <lat> <lng>",
	Short: "Convert a latitude and longitude to an MGRS reference",
	Long: `Convert a WGS84 latitude and longitude in degrees to an MGRS grid
reference.

The template substitutes %z zone, %l band letter, %k 100km square id,
%e easting digits and %n northing digits.

Examples:
  gridconv mgrs -- 51.178861 -1.826412
  gridconv mgrs --accuracy 3 --template "%z%l %k %e %n" 51.178861,-1.826412`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runMGRS,
}

func init() {
	rootCmd.AddCommand(mgrsCmd)

	mgrsCmd.Flags().IntVarP(&mgrsAccuracy, "accuracy", "a", -1,
		"digits per axis, 0-5 (default from config)")
	mgrsCmd.Flags().StringVarP(&mgrsTemplate, "template", "t", "",
		"output template (default from config)")
}

func runMGRS(cmd *cobra.Command, args []string) error {
	lat, lng, err := parseLatLng(args)
	if err != nil {
		return err
	}
	accuracy := cfg.Accuracy
	if mgrsAccuracy >= 0 {
		accuracy = mgrsAccuracy
	}
	template := cfg.Template
	if mgrsTemplate != "" {
		template = mgrsTemplate
	}

	utm, err := gridconv.GeodeticToUTM(lat, lng)
	if err != nil {
		return fmt.Errorf("converting %v %v: %w", lat, lng, err)
	}
	ref, err := gridconv.MGRSCoord{UTMCoord: utm, Accuracy: accuracy}.Format(template)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", utm, err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), ref)
	return nil
}
