package main

import (
	"bytes"
	"context"
	"eov-wgs-service/internal/services"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shift maps EOV metres to degrees around (650000, 200000) -> (47, 19).
type shift struct{ toEOV bool }

func (s shift) Transform(_ context.Context, a, b float64) (float64, float64, error) {
	if s.toEOV {
		return 650000 + (b-19.0)*75000, 200000 + (a-47.0)*111000, nil
	}
	return 47.0 + (b-200000)/111000, 19.0 + (a-650000)/75000, nil
}

func useShiftConverter(t *testing.T) {
	t.Helper()

	prev := newConverter
	newConverter = func() (*services.Converter, func(), error) {
		c, err := services.NewConverter(shift{}, shift{toEOV: true})
		return c, func() {}, err
	}
	t.Cleanup(func() { newConverter = prev })
}

// execute runs the root command and resets every flag afterwards, since the
// command tree is package state shared by all tests.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	for _, c := range rootCmd.Commands() {
		c.Flags().VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
	return out.String(), err
}

func writeSeed(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "points.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "eovctl dev")
}

func TestEOV2WGS(t *testing.T) {
	useShiftConverter(t)

	out, err := execute(t, "eov2wgs", "650000", "311000")
	require.NoError(t, err)
	assert.Equal(t, "WGS84 coords: (48.0, 19.0)\n", out)
}

func TestEOV2WGSWithURL(t *testing.T) {
	useShiftConverter(t)

	out, err := execute(t, "eov2wgs", "650000", "200000", "--url", "--label", "Old Tower")
	require.NoError(t, err)
	assert.Contains(t, out, "https://www.google.hu/maps/?q=Old+Tower@47.0,19.0&t=k&hl=hu&z=100")
}

func TestEOV2WGSValidation(t *testing.T) {
	useShiftConverter(t)

	_, err := execute(t, "eov2wgs", "650000,5", "240000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WrongDecimalSeparator")
}

func TestWGS2EOV(t *testing.T) {
	useShiftConverter(t)

	out, err := execute(t, "wgs2eov", "47.5, 19.2")
	require.NoError(t, err)
	assert.Equal(t, "EOV Y,X: 665000.00,255500.00\n", out)

	_, err = execute(t, "wgs2eov", "47.5 19.2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BadFormat")
}

func TestKMLExport(t *testing.T) {
	in := writeSeed(t, "- label: Tower\n  lat: 47.5\n  lon: 19.05\n- label: \"\"\n  lat: 47.6\n  lon: 19.1\n")
	outPath := filepath.Join(t.TempDir(), "out.kml")

	_, err := execute(t, "kml", "-i", in, "-o", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "<Placemark"))
	assert.Contains(t, string(data), "19.05,47.5")
}

func TestGeoJSONToStdout(t *testing.T) {
	in := writeSeed(t, "- label: Tower\n  lat: 47.5\n  lon: 19.05\n")

	out, err := execute(t, "geojson", "-i", in)
	require.NoError(t, err)
	assert.Contains(t, out, "FeatureCollection")
	assert.Contains(t, out, "Tower")
}

func TestExportRequiresPoints(t *testing.T) {
	in := writeSeed(t, "[]\n")

	_, err := execute(t, "kml", "-i", in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NoPointsToExport")
}

func TestExportRequiresInput(t *testing.T) {
	_, err := execute(t, "kml")
	assert.Error(t, err)
}
