// Package main is the entry point for the eovctl CLI.
//
// eovctl runs the same validation, conversion and export code as the HTTP
// service, one command at a time.
//
// Usage:
//
//	eovctl eov2wgs 650000 240000                  # EOV Y X to WGS84
//	eovctl wgs2eov "47.50393208, 19.0474447"      # WGS84 to EOV
//	eovctl kml -i points.yaml -o points.kml       # seed file to KML
//	eovctl geojson -i points.yaml -o points.json  # seed file to GeoJSON
//	eovctl version
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Set at build time via -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
)

var rootCmd = &cobra.Command{
	Use:   "eovctl",
	Short: "Convert between EOV (EPSG:23700) and WGS84 coordinates",
	Long: `eovctl converts coordinates between the Hungarian national grid (EOV)
and WGS84 latitude/longitude, and exports point lists as KML or GeoJSON.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "eovctl %s (commit %s)\n", version, commit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
