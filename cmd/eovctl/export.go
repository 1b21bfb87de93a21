package main

import (
	"eov-wgs-service/internal/adapters/export"
	"eov-wgs-service/internal/adapters/store"
	"eov-wgs-service/internal/domain"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var kmlCmd = &cobra.Command{
	Use:   "kml",
	Short: "Write the points of a seed file as a KML document",
	Long: `Read a YAML or JSON list of {label, lat, lon} entries and write a KML
document with one placemark per entry, in file order.`,
	Example: `  eovctl kml -i data/seeds/points.yaml -o points.kml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(cmd, export.KMLEncoder{})
	},
}

var geojsonCmd = &cobra.Command{
	Use:     "geojson",
	Short:   "Write the points of a seed file as a GeoJSON FeatureCollection",
	Example: `  eovctl geojson -i data/seeds/points.yaml -o points.geojson`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(cmd, export.GeoJSONEncoder{})
	},
}

type encoder interface {
	Encode([]domain.Point) ([]byte, error)
}

func init() {
	for _, c := range []*cobra.Command{kmlCmd, geojsonCmd} {
		rootCmd.AddCommand(c)
		c.Flags().StringP("input", "i", "", "seed file with points (required)")
		c.Flags().StringP("output", "o", "", "output file (default stdout)")
		_ = c.MarkFlagRequired("input")
	}
}

func runExport(cmd *cobra.Command, enc encoder) error {
	in, _ := cmd.Flags().GetString("input")
	outPath, _ := cmd.Flags().GetString("output")

	seeds, err := store.LoadSeed(in)
	if err != nil {
		return err
	}

	now := time.Now()
	points := make([]domain.Point, 0, len(seeds))
	for _, s := range seeds {
		points = append(points, s.Point(now))
	}

	data, err := enc.Encode(points)
	if err != nil {
		return userError(err)
	}

	if outPath == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write %q: %w", outPath, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%d points written to %s\n", len(points), outPath)
	return nil
}
