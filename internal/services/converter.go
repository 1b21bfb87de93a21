package services

import (
	"context"
	"eov-wgs-service/internal/domain"
	"eov-wgs-service/internal/platform/obs"
	"eov-wgs-service/internal/ports"
	"errors"

	"github.com/rs/zerolog"
)

// Converter delegates both conversion directions to fixed-direction transformers.
// It keeps no state besides the two transformers and never caches results.
type Converter struct {
	fromEOV ports.CoordinateTransformer
	toEOV   ports.CoordinateTransformer
}

func NewConverter(fromEOV, toEOV ports.CoordinateTransformer) (*Converter, error) {
	if fromEOV == nil || toEOV == nil {
		return nil, errors.New("new converter: both transformers are required")
	}
	return &Converter{fromEOV: fromEOV, toEOV: toEOV}, nil
}

// EOVToWGS converts an EOV (Y easting, X northing) pair to WGS84 latitude/longitude.
func (c *Converter) EOVToWGS(ctx context.Context, y, x float64) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "converter.EOVToWGS")(&err)

	lat, lon, err := c.fromEOV.Transform(ctx, y, x)
	if err != nil {
		return domain.Coordinates{}, domain.WrapError(domain.KindTransform, "EOV to WGS84 conversion failed", err)
	}

	out := domain.Coordinates{Lat: lat, Lon: lon}
	if !out.Valid() {
		return domain.Coordinates{}, domain.NewError(domain.KindTransform, "", "EOV to WGS84 conversion produced no valid position")
	}

	zerolog.Ctx(ctx).Info().
		Float64("eov_y", y).Float64("eov_x", x).
		Float64("lat", lat).Float64("lon", lon).
		Msg("converted EOV to WGS84")

	return out, nil
}

// WGSToEOV converts WGS84 latitude/longitude to an EOV (Y, X) pair.
func (c *Converter) WGSToEOV(ctx context.Context, lat, lon float64) (_ domain.EOVCoordinates, err error) {
	defer obs.Time(ctx, "converter.WGSToEOV")(&err)

	y, x, err := c.toEOV.Transform(ctx, lat, lon)
	if err != nil {
		return domain.EOVCoordinates{}, domain.WrapError(domain.KindTransform, "WGS84 to EOV conversion failed", err)
	}

	out := domain.EOVCoordinates{Y: y, X: x}
	if !out.Valid() {
		return domain.EOVCoordinates{}, domain.NewError(domain.KindTransform, "", "WGS84 to EOV conversion produced no valid position")
	}

	zerolog.Ctx(ctx).Info().
		Float64("lat", lat).Float64("lon", lon).
		Float64("eov_y", y).Float64("eov_x", x).
		Msg("converted WGS84 to EOV")

	return out, nil
}
