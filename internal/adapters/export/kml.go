package export

import (
	"eov-wgs-service/internal/domain"
	"fmt"
	"html"
	"strings"
)

const (
	kmlDocumentName        = "EOV-WGS Converter Points"
	kmlDocumentDescription = "Points exported from the EOV-WGS converter"
)

// KML builds a minimal KML document with one Placemark per point, in order.
// An empty input is an error, never an empty document.
func KML(points []domain.Point) (string, error) {
	if len(points) == 0 {
		return "", domain.NewError(domain.KindNoPointsToExport, "", "there are no points to export")
	}

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
<Document>
    <name>` + escapeXML(kmlDocumentName) + `</name>
    <description>` + escapeXML(kmlDocumentDescription) + `</description>
`)

	for i, p := range points {
		name := p.Label
		if name == "" {
			name = fmt.Sprintf("Point %d", i+1)
		}

		fmt.Fprintf(&b, `    <Placemark id="%s">
        <name>%s</name>
        <description>%s</description>
        <Point>
            <coordinates>%s,%s,0</coordinates>
        </Point>
    </Placemark>
`, p.ID, escapeXML(name), escapeXML(plainText(p.Popup)), domain.DecimalText(p.Location.Lon), domain.DecimalText(p.Location.Lat))
	}

	b.WriteString("</Document>\n</kml>\n")
	return b.String(), nil
}

// plainText removes the popup markup: bold tags vanish and line breaks become newlines.
func plainText(markup string) string {
	s := strings.NewReplacer(
		"<b>", "",
		"</b>", "",
		"<br>", "\n",
		"<br/>", "\n",
		"<br />", "\n",
	).Replace(markup)
	return html.UnescapeString(s)
}

// escapeXML escapes XML special characters in a string.
func escapeXML(s string) string {
	return strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\"", "&quot;",
		"'", "&apos;",
	).Replace(s)
}

// KMLEncoder adapts KML to the PointEncoder port.
type KMLEncoder struct{}

func (KMLEncoder) Encode(points []domain.Point) ([]byte, error) {
	doc, err := KML(points)
	if err != nil {
		return nil, err
	}
	return []byte(doc), nil
}

func (KMLEncoder) Extension() string   { return ".kml" }
func (KMLEncoder) ContentType() string { return "application/vnd.google-earth.kml+xml" }
