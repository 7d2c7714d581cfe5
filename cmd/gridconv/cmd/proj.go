package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/tzneal/gridconv"
	"github.com/tzneal/gridconv/projdef"
)

var (
	projDef     string
	projName    string
	projInverse bool
	projList    bool
)

var projCmd = &cobra.Command{
	Use:   "proj <x> <y>",
	Short: "Project a point with a PROJ.4 style definition",
	Long: `Project a WGS84 latitude and longitude with a Transverse Mercator, UTM
or longlat definition, or with --inverse convert an easting and northing back
to latitude and longitude.

Definitions come from --def, or --name looks one up in the built in and
configured projections. WGS84 UTM codes EPSG:326zz and EPSG:327zz are always
available.

Examples:
  gridconv proj --name EPSG:27700 -- 52.6575703056 1.7179215833
  gridconv proj --name EPSG:27700 --inverse 651409.903 313177.270
  gridconv proj --def "+proj=utm +zone=30 +datum=WGS84 +units=ft" -- 51.178861 -1.826412
  gridconv proj --list`,
	Args: func(cmd *cobra.Command, args []string) error {
		if projList {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.RangeArgs(1, 2)(cmd, args)
	},
	RunE: runProj,
}

func init() {
	rootCmd.AddCommand(projCmd)

	projCmd.Flags().StringVarP(&projDef, "def", "d", "", "projection definition string")
	projCmd.Flags().StringVarP(&projName, "name", "n", "", "registered projection name, e.g. EPSG:27700")
	projCmd.Flags().BoolVarP(&projInverse, "inverse", "i", false, "convert easting and northing to latitude and longitude")
	projCmd.Flags().BoolVarP(&projList, "list", "l", false, "list registered projections")
}

func runProj(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if projList {
		for _, name := range registry.Names() {
			d, _ := registry.Lookup(name)
			fmt.Fprintf(out, "%-12s %s\n", name, d.Source)
		}
		return nil
	}

	d, err := lookupDefinition()
	if err != nil {
		return err
	}
	p, err := d.Transform()
	if err != nil {
		return err
	}
	slog.Debug("Projection", "proj", d.Projection, "ellipsoid", d.EllipsoidName, "units", d.Units)

	// the first value is latitude or easting, the second longitude or northing
	a, b, err := parseLatLng(args)
	if err != nil {
		return err
	}
	if projInverse {
		ll, err := p.Inverse(gridconv.MapCoords{Easting: a, Northing: b})
		if err != nil {
			return err
		}
		fmt.Fprintln(out, ll)
		return nil
	}
	mc, err := p.Forward(gridconv.NewLatLong(a, b))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%.3f %.3f\n", mc.Easting, mc.Northing)
	return nil
}

func lookupDefinition() (*projdef.Definition, error) {
	switch {
	case projDef != "" && projName != "":
		return nil, errors.New("use only one of --def and --name")
	case projDef != "":
		return projdef.Parse(projDef)
	case projName != "":
		return registry.Lookup(projName)
	}
	return nil, errors.New("one of --def or --name is required")
}
