package main

import (
	"eov-wgs-service/internal/adapters/projection"
	"eov-wgs-service/internal/domain"
	"eov-wgs-service/internal/services"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// newConverter builds the converter and returns its cleanup. Tests swap it out.
var newConverter = func() (*services.Converter, func(), error) {
	ts, err := projection.New()
	if err != nil {
		return nil, nil, err
	}
	conv, err := services.NewConverter(ts.FromEOV, ts.ToEOV)
	if err != nil {
		_ = ts.Close()
		return nil, nil, err
	}
	return conv, func() { _ = ts.Close() }, nil
}

var eov2wgsCmd = &cobra.Command{
	Use:   "eov2wgs Y X",
	Short: "Convert EOV Y (easting) and X (northing) metres to WGS84",
	Example: `  eovctl eov2wgs 650000 240000
  eovctl eov2wgs 650000 240000 --url --label "Old Tower"`,
	Args: cobra.ExactArgs(2),
	RunE: runEOV2WGS,
}

var wgs2eovCmd = &cobra.Command{
	Use:     "wgs2eov \"LAT, LON\"",
	Short:   "Convert a WGS84 \"lat, lon\" pair to EOV",
	Example: `  eovctl wgs2eov "47.50393208, 19.0474447"`,
	Args:    cobra.ExactArgs(1),
	RunE:    runWGS2EOV,
}

func init() {
	rootCmd.AddCommand(eov2wgsCmd, wgs2eovCmd)

	eov2wgsCmd.Flags().Bool("url", false, "also print the satellite map link")
	eov2wgsCmd.Flags().String("label", "", "label used in the map link")
}

func runEOV2WGS(cmd *cobra.Command, args []string) error {
	y, x, err := services.NewValidator().ValidateEOV(args[0], args[1])
	if err != nil {
		return userError(err)
	}

	conv, done, err := newConverter()
	if err != nil {
		return err
	}
	defer done()

	c, err := conv.EOVToWGS(cmd.Context(), y, x)
	if err != nil {
		return userError(err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, services.WGSResultText(c))
	if withURL, _ := cmd.Flags().GetBool("url"); withURL {
		label, _ := cmd.Flags().GetString("label")
		fmt.Fprintln(out, services.ExternalMapURL(label, c))
	}
	return nil
}

func runWGS2EOV(cmd *cobra.Command, args []string) error {
	lat, lon, err := services.NewValidator().ValidateWGS(args[0])
	if err != nil {
		return userError(err)
	}

	conv, done, err := newConverter()
	if err != nil {
		return err
	}
	defer done()

	eov, err := conv.WGSToEOV(cmd.Context(), lat, lon)
	if err != nil {
		return userError(err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), services.EOVResultText(eov))
	return nil
}

// userError keeps the domain message and drops the wrapped cause.
func userError(err error) error {
	var de *domain.Error
	if errors.As(err, &de) {
		return fmt.Errorf("%s: %s", de.Kind, de.Message)
	}
	return err
}
