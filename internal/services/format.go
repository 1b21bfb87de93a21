package services

import (
	"eov-wgs-service/internal/domain"
	"fmt"
	"html"
	"net/url"
)

// Number of decimals shown for WGS84 degrees and EOV meters.
const (
	WGSPrecision = 5
	EOVPrecision = 2
)

const googleMapsBase = "https://www.google.hu/maps/"

func plain(v float64) string { return domain.DecimalText(v) }

// WGSResultText is the result line shown after an EOV to WGS84 conversion.
func WGSResultText(c domain.Coordinates) string {
	return fmt.Sprintf("WGS84 coords: (%s, %s)", plain(c.Lat), plain(c.Lon))
}

// EOVResultText is the result line shown after a WGS84 to EOV conversion.
func EOVResultText(c domain.EOVCoordinates) string {
	return fmt.Sprintf("EOV Y,X: %.*f,%.*f", EOVPrecision, c.Y, EOVPrecision, c.X)
}

// markerTexts builds the tooltip and popup markup shown for a converted point.
func markerTexts(label string, y, x float64, c domain.Coordinates) (tooltip, popup string) {
	short := fmt.Sprintf("%.*f, %.*f", WGSPrecision, c.Lat, WGSPrecision, c.Lon)
	if label != "" {
		label = html.EscapeString(label)
		tooltip = label + "<br>" + short
		popup = fmt.Sprintf("<b>%s</b><br>EOVY: %s<br>EOVX: %s", label, plain(y), plain(x))
		return tooltip, popup
	}
	return short, fmt.Sprintf("<b>EOVY: %s<br>EOVX: %s</b>", plain(y), plain(x))
}

// ExternalMapURL builds the satellite-view link for a converted position.
// A labelled point uses the "name@lat,lon" query form, an unlabelled one "loc:lat,lon".
func ExternalMapURL(label string, c domain.Coordinates) string {
	var q string
	if label != "" {
		q = url.QueryEscape(label) + "@" + plain(c.Lat) + "," + plain(c.Lon)
	} else {
		q = "loc:" + plain(c.Lat) + "," + plain(c.Lon)
	}
	return googleMapsBase + "?q=" + q + "&t=k&hl=hu&z=100"
}
