package services

import (
	"eov-wgs-service/internal/domain"
	"strconv"
	"strings"
)

// Placeholder hints shown in empty input fields. Submitting a field that still
// holds its hint counts as leaving it empty.
const (
	DefaultEOVYPlaceholder = "e.g. 650000"
	DefaultEOVXPlaceholder = "e.g. 240000"
	DefaultWGSPlaceholder  = "e.g. 47.50393208, 19.0474447"
)

// Validator turns raw form text into numbers. It performs no I/O.
type Validator struct {
	EOVYPlaceholder string
	EOVXPlaceholder string
	WGSPlaceholder  string
}

func NewValidator() Validator {
	return Validator{
		EOVYPlaceholder: DefaultEOVYPlaceholder,
		EOVXPlaceholder: DefaultEOVXPlaceholder,
		WGSPlaceholder:  DefaultWGSPlaceholder,
	}
}

// ValidateEOV checks the EOV Y (easting) and X (northing) fields.
// Presence and decimal separator are checked per field, Y first; numbers are
// parsed only once both fields passed.
func (v Validator) ValidateEOV(yText, xText string) (float64, float64, error) {
	yText = strings.TrimSpace(yText)
	xText = strings.TrimSpace(xText)

	if err := checkEOVField("eov_y", "EOVy", yText, v.EOVYPlaceholder); err != nil {
		return 0, 0, err
	}
	if err := checkEOVField("eov_x", "EOVx", xText, v.EOVXPlaceholder); err != nil {
		return 0, 0, err
	}

	y, err := strconv.ParseFloat(yText, 64)
	if err != nil {
		return 0, 0, domain.NewError(domain.KindNotNumeric, "eov_y", "invalid coordinates")
	}
	x, err := strconv.ParseFloat(xText, 64)
	if err != nil {
		return 0, 0, domain.NewError(domain.KindNotNumeric, "eov_x", "invalid coordinates")
	}

	return y, x, nil
}

func checkEOVField(field, label, text, placeholder string) error {
	if text == "" || text == placeholder {
		return domain.NewError(domain.KindMissingField, field, label+" coordinate is required")
	}
	if strings.Contains(text, ",") {
		return domain.NewError(domain.KindWrongDecimalSeparator, field, "use a decimal point, not a comma")
	}
	return nil
}

// ValidateWGS parses a "lat, lon" pair as copied from an online map.
func (v Validator) ValidateWGS(text string) (float64, float64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || trimmed == v.WGSPlaceholder {
		return 0, 0, domain.NewError(domain.KindMissingField, "wgs", "coordinates are required")
	}

	compact := strings.Join(strings.Fields(trimmed), "")
	parts := strings.Split(compact, ",")
	if len(parts) != 2 {
		return 0, 0, domain.NewError(domain.KindBadFormat, "wgs", "invalid coordinate format, expected \"lat, lon\"")
	}

	lat, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, domain.NewError(domain.KindNotNumeric, "wgs", "invalid coordinates")
	}
	lon, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, domain.NewError(domain.KindNotNumeric, "wgs", "invalid coordinates")
	}

	return lat, lon, nil
}
