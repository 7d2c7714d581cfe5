package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tzneal/gridconv"
)

var utmZone int

var utmCmd = &cobra.Command{
	Use:   "utm <lat> <lng>",
	Short: "Convert a latitude and longitude to UTM",
	Long: `Convert a WGS84 latitude and longitude in degrees to a UTM zone, band
letter, easting and northing rounded to the meter.

Examples:
  gridconv utm -- 51.178861 -1.826412
  gridconv utm --zone 31 -- 51.178861 -1.826412   # force a neighbouring zone`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runUTM,
}

var latlongCmd = &cobra.Command{
	Use:   "latlong <zone><letter> <easting> <northing>",
	Short: "Convert a UTM coordinate to latitude and longitude",
	Long: `Convert a WGS84 UTM coordinate to latitude and longitude in degrees.
Only the hemisphere of the band letter is used.

Examples:
  gridconv latlong 30U 582032 5670370
  gridconv latlong "31M 500000 9889470"`,
	Args: cobra.RangeArgs(1, 3),
	RunE: runLatLong,
}

func init() {
	rootCmd.AddCommand(utmCmd)
	rootCmd.AddCommand(latlongCmd)

	utmCmd.Flags().IntVarP(&utmZone, "zone", "z", 0,
		"force a zone adjacent to the computed one")
}

func runUTM(cmd *cobra.Command, args []string) error {
	lat, lng, err := parseLatLng(args)
	if err != nil {
		return err
	}
	c, err := gridconv.DefaultUTMConverter.ConvertFromGeodetic(gridconv.NewLatLong(lat, lng), utmZone)
	if err != nil {
		return fmt.Errorf("converting %v %v: %w", lat, lng, err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), c)
	return nil
}

func runLatLong(cmd *cobra.Command, args []string) error {
	c, err := gridconv.ParseUTM(strings.Join(args, " "))
	if err != nil {
		return err
	}
	ll, err := gridconv.UTMToGeodetic(c)
	if err != nil {
		return fmt.Errorf("converting %s: %w", c, err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), ll)
	return nil
}
