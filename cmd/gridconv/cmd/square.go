package cmd

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/paulmach/orb/geojson"
	"github.com/spf13/cobra"
	"github.com/tzneal/gridconv"
)

var squareCmd = &cobra.Command{
	Use:   "square <mgrs>",
	Short: "Print the square described by an MGRS reference as GeoJSON",
	Long: `Print the extent of an MGRS grid reference as a GeoJSON polygon
feature. The polygon is the bounding box of the bottom left and top right
corners.

Examples:
  gridconv square 30UWB
  gridconv square 30UWB8270`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSquare,
}

func init() {
	rootCmd.AddCommand(squareCmd)
}

func runSquare(cmd *cobra.Command, args []string) error {
	ref := strings.Join(args, "")
	mc, err := gridconv.DecodeMGRS(ref)
	if err != nil {
		return fmt.Errorf("decoding %q: %w", ref, err)
	}
	sq, err := gridconv.DefaultUTMConverter.ConvertToSquare(mc.UTMCoord, mc.Size())
	if err != nil {
		return fmt.Errorf("converting %s: %w", mc, err)
	}

	f := geojson.NewFeature(sq.Bound().ToPolygon())
	f.Properties["mgrs"] = mc.String()
	f.Properties["size"] = mc.Size()
	f.Properties["size_text"] = humanize.SI(mc.Size(), "m")
	c := sq.Centroid()
	f.Properties["center"] = []float64{c.Longitude(), c.Latitude()}

	data, err := f.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encoding GeoJSON: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
