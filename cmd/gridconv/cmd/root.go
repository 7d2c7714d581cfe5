package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/tzneal/gridconv/internal/config"
	"github.com/tzneal/gridconv/internal/logging"
	"github.com/tzneal/gridconv/projdef"
)

var (
	// Global flags
	cfgFile   string
	logLevel  string
	logFormat string

	// set by the root pre-run
	cfg      *config.Config
	registry *projdef.Registry
)

var rootCmd = &cobra.Command{
	Use:   "gridconv",
	Short: "Convert between latitude/longitude, UTM and MGRS",
	Long: `Convert WGS84 coordinates between latitude/longitude, UTM and MGRS grid
references, and project points with PROJ.4 style Transverse Mercator
definitions.

Negative numbers must follow "--" so they are not read as flags.

Examples:
  gridconv mgrs -- 51.178861 -1.826412          # 30UWB8203270370
  gridconv point 30UWB8203270370                # center of the square
  gridconv utm -- 51.178861 -1.826412           # 30U 582032 5670370
  gridconv latlong 30U 582032 5670370
  gridconv square 30UWB8270                     # GeoJSON polygon
  gridconv proj --name EPSG:27700 -- 49 -2      # 400000.000 -100000.000
  echo '{"lat":51.178861,"lng":-1.826412}' | gridconv batch`,
	Version:           "0.1.0",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./gridconv.yaml or $HOME/.config/gridconv/gridconv.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text or json (overrides config)")
}

// setup loads the configuration, installs the logger and builds the
// projection registry before any subcommand runs.
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		c.Log.Level = logLevel
	}
	if logFormat != "" {
		c.Log.Format = logFormat
	}
	logging.Setup(c.Log.Level, c.Log.Format)

	r, err := projdef.NewRegistry(c.Projections)
	if err != nil {
		return fmt.Errorf("loading projections: %w", err)
	}
	cfg, registry = c, r

	slog.Debug("Configuration loaded",
		"command", cmd.Name(),
		"accuracy", c.Accuracy,
		"projections", humanize.Comma(int64(len(r.Names()))))
	return nil
}

// parseLatLng parses a latitude and longitude given either as two
// arguments or as a single "lat,lng" argument.
func parseLatLng(args []string) (float64, float64, error) {
	if len(args) == 1 {
		args = strings.Split(args[0], ",")
	}
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("expected latitude and longitude, got %d values", len(args))
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude %q: %w", args[0], err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(args[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude %q: %w", args[1], err)
	}
	return lat, lng, nil
}
