package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tzneal/gridconv"
)

var optBatchMaxLine int

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Convert JSON lines from stdin",
	Long: `Read JSON objects from stdin, one per line, and write one JSON result
per line to stdout.

A line with "lat" and "lng" is converted to UTM and MGRS. A line with "mgrs"
is decoded to the center of its square. An optional "accuracy" overrides the
configured accuracy, and "id" is copied to the result. Lines that fail to
convert produce an object with an "error" field; the command still succeeds.

Examples:
  echo '{"id":1,"lat":51.178861,"lng":-1.826412}' | gridconv batch
  echo '{"mgrs":"30UWB8203270370"}' | gridconv batch`,
	Args: cobra.NoArgs,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&optBatchMaxLine, "max-line", 1024*1024, "maximum line length in bytes")
}

// batchResult is one output line. Empty fields are omitted.
type batchResult struct {
	ID       any      `json:"id,omitempty"`
	Lat      *float64 `json:"lat,omitempty"`
	Lng      *float64 `json:"lng,omitempty"`
	UTM      string   `json:"utm,omitempty"`
	MGRS     string   `json:"mgrs,omitempty"`
	Accuracy *int     `json:"accuracy,omitempty"`
	Error    string   `json:"error,omitempty"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	sc := bufio.NewScanner(cmd.InOrStdin())
	sc.Buffer(make([]byte, 0, 64*1024), optBatchMaxLine)
	enc := json.NewEncoder(cmd.OutOrStdout())

	var lines, failed, bytesRead int64
	for sc.Scan() {
		line := sc.Bytes()
		bytesRead += int64(len(line)) + 1
		if len(line) == 0 {
			continue
		}
		lines++

		res := convertLine(line)
		if res.Error != "" {
			failed++
			slog.Warn("Failed to convert line", "line", lines, "error", res.Error)
		}
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("writing result: %w", err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	slog.Info("Batch done",
		"lines", humanize.Comma(lines),
		"failed", humanize.Comma(failed),
		"read", humanize.Bytes(uint64(bytesRead)))
	return nil
}

func convertLine(line []byte) batchResult {
	var res batchResult
	if !gjson.ValidBytes(line) {
		res.Error = "invalid JSON"
		return res
	}
	if id := gjson.GetBytes(line, "id"); id.Exists() {
		res.ID = id.Value()
	}

	accuracy := cfg.Accuracy
	if a := gjson.GetBytes(line, "accuracy"); a.Exists() {
		if a.Type != gjson.Number {
			res.Error = `"accuracy" must be a number`
			return res
		}
		accuracy = int(a.Int())
	}

	if ref := gjson.GetBytes(line, "mgrs"); ref.Exists() {
		mc, err := gridconv.DecodeMGRS(ref.String())
		if err != nil {
			res.Error = err.Error()
			return res
		}
		sq, err := gridconv.DefaultUTMConverter.ConvertToSquare(mc.UTMCoord, mc.Size())
		if err != nil {
			res.Error = err.Error()
			return res
		}
		ll := sq.Centroid()
		lat, lng := ll.Latitude(), ll.Longitude()
		res.Lat, res.Lng = &lat, &lng
		res.UTM = mc.UTMCoord.String()
		res.MGRS = mc.String()
		res.Accuracy = &mc.Accuracy
		return res
	}

	lat, lng := gjson.GetBytes(line, "lat"), gjson.GetBytes(line, "lng")
	if lat.Type != gjson.Number || lng.Type != gjson.Number {
		res.Error = `expected numeric "lat" and "lng", or "mgrs"`
		return res
	}
	latV, lngV := lat.Float(), lng.Float()
	res.Lat, res.Lng = &latV, &lngV

	utm, err := gridconv.GeodeticToUTM(latV, lngV)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.UTM = utm.String()
	ref, err := gridconv.EncodeMGRS(utm, accuracy)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.MGRS = ref
	res.Accuracy = &accuracy
	return res
}
