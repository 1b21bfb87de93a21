package services

import (
	"context"
	"eov-wgs-service/internal/adapters/export"
	"eov-wgs-service/internal/adapters/store"
	"eov-wgs-service/internal/domain"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	dialog   *Dialog
	store    *store.MemoryPointStore
	renderer *countingRenderer
	display  *recordingDisplay
	opener   *recordingOpener
	notifier *recordingNotifier
	files    *memorySink
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	conv, err := NewConverter(linearTransformer{}, linearTransformer{toEOV: true})
	require.NoError(t, err)

	h := &harness{
		store:    store.NewMemoryPointStore(),
		renderer: &countingRenderer{},
		display:  &recordingDisplay{},
		opener:   &recordingOpener{},
		notifier: &recordingNotifier{},
		files:    &memorySink{},
	}
	h.dialog, err = NewDialog(DialogDeps{
		Validator: NewValidator(),
		Converter: conv,
		Store:     h.store,
		Renderer:  h.renderer,
		Display:   h.display,
		Opener:    h.opener,
		Notifier:  h.notifier,
		Files:     h.files,
		KML:       export.KMLEncoder{},
		GeoJSON:   export.GeoJSONEncoder{},
	}, DefaultCenter, DefaultZoom)
	require.NoError(t, err)
	return h
}

func TestConvertEOVToWGSPlacesPoint(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	res, err := h.dialog.ConvertEOVToWGS(ctx, EOVToWGSCommand{Y: "650000", X: "240000", Label: " Bridge ", Place: true})
	require.NoError(t, err)

	assert.InDelta(t, 47.5048, res.Coordinates.Lat, 0.001)
	assert.InDelta(t, 19.0486, res.Coordinates.Lon, 0.001)
	assert.True(t, strings.HasPrefix(res.Text, "WGS84 coords: ("))
	require.NotNil(t, res.Point)
	assert.Equal(t, "Bridge", res.Point.Label)
	assert.Equal(t, "<b>Bridge</b><br>EOVY: 650000.0<br>EOVX: 240000.0", res.Point.Popup)
	assert.True(t, strings.HasPrefix(res.Point.Tooltip, "Bridge<br>47.50"))

	pts, err := h.store.All(ctx)
	require.NoError(t, err)
	require.Len(t, pts, 1)

	assert.Equal(t, 1, h.renderer.calls)
	assert.Equal(t, res.Coordinates, h.renderer.center)
	assert.Equal(t, DefaultZoom, h.renderer.zoom)
	assert.Equal(t, []string{"<html>1 points</html>"}, h.display.pages)
	assert.Equal(t, []string{"EOV->WGS conversion succeeded"}, h.notifier.infos)
}

func TestConvertEOVToWGSUnlabelledTexts(t *testing.T) {
	h := newHarness(t)

	res, err := h.dialog.ConvertEOVToWGS(context.Background(), EOVToWGSCommand{Y: "650000", X: "240000.5", Place: true})
	require.NoError(t, err)
	require.NotNil(t, res.Point)

	assert.Equal(t, "<b>EOVY: 650000.0<br>EOVX: 240000.5</b>", res.Point.Popup)
	assert.NotContains(t, res.Point.Tooltip, "<br>")
	assert.False(t, res.Point.HasLabel())
}

func TestConvertEOVToWGSWithoutPlacing(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	res, err := h.dialog.ConvertEOVToWGS(ctx, EOVToWGSCommand{Y: "650000", X: "240000"})
	require.NoError(t, err)
	assert.Nil(t, res.Point)

	pts, _ := h.store.All(ctx)
	assert.Empty(t, pts)
	assert.Zero(t, h.renderer.calls)
}

func TestMapRebuiltFromStoreInOrder(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	for _, label := range []string{"A", "B", "C"} {
		_, err := h.dialog.ConvertEOVToWGS(ctx, EOVToWGSCommand{Y: "650000", X: "240000", Label: label, Place: true})
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"A", "B", "C"}, h.renderer.labels)
	assert.Equal(t, "<html>3 points</html>", h.display.pages[len(h.display.pages)-1])
}

func TestConvertEOVToWGSValidationFailure(t *testing.T) {
	h := newHarness(t)

	_, err := h.dialog.ConvertEOVToWGS(context.Background(), EOVToWGSCommand{Y: "650,000", X: "240000", Place: true})
	assert.Equal(t, domain.KindWrongDecimalSeparator, domain.KindOf(err))
	assert.Equal(t, []string{"use a decimal point, not a comma"}, h.notifier.errors)
	assert.Empty(t, h.display.pages)
}

func TestTransformFailureIsReported(t *testing.T) {
	h := newHarness(t)
	conv, err := NewConverter(linearTransformer{err: errBroken}, linearTransformer{toEOV: true, err: errBroken})
	require.NoError(t, err)
	h.dialog.deps.Converter = conv

	_, err = h.dialog.ConvertEOVToWGS(context.Background(), EOVToWGSCommand{Y: "650000", X: "240000", Place: true})
	assert.Equal(t, domain.KindTransform, domain.KindOf(err))
	assert.ErrorIs(t, err, errBroken)

	_, err = h.dialog.ConvertWGSToEOV(context.Background(), WGSToEOVCommand{Text: "47.5, 19.0"})
	assert.Equal(t, domain.KindTransform, domain.KindOf(err))
	assert.Len(t, h.notifier.errors, 2)
}

func TestRenderFailureBecomesInternalError(t *testing.T) {
	h := newHarness(t)
	h.renderer.err = errBroken

	_, err := h.dialog.ConvertEOVToWGS(context.Background(), EOVToWGSCommand{Y: "650000", X: "240000", Place: true})
	assert.Equal(t, domain.KindInternal, domain.KindOf(err))
	assert.Equal(t, []string{"could not refresh the map"}, h.notifier.errors)
}

func TestConvertWGSToEOV(t *testing.T) {
	h := newHarness(t)

	res, err := h.dialog.ConvertWGSToEOV(context.Background(), WGSToEOVCommand{Text: "47.14439372222222, 19.04857177777778"})
	require.NoError(t, err)

	assert.InDelta(t, 650000, res.Coordinates.Y, 0.01)
	assert.InDelta(t, 200000, res.Coordinates.X, 0.01)
	assert.Equal(t, "EOV Y,X: 650000.00,200000.00", res.Text)
	assert.Empty(t, h.display.pages)
}

func TestConvertWGSToEOVBadFormat(t *testing.T) {
	h := newHarness(t)

	_, err := h.dialog.ConvertWGSToEOV(context.Background(), WGSToEOVCommand{Text: "47.5,19.0,1"})
	assert.Equal(t, domain.KindBadFormat, domain.KindOf(err))
}

func TestRoundTripThroughConverter(t *testing.T) {
	conv, err := NewConverter(linearTransformer{}, linearTransformer{toEOV: true})
	require.NoError(t, err)
	ctx := context.Background()

	wgs, err := conv.EOVToWGS(ctx, 650000, 240000)
	require.NoError(t, err)
	eov, err := conv.WGSToEOV(ctx, wgs.Lat, wgs.Lon)
	require.NoError(t, err)

	assert.InDelta(t, 650000, eov.Y, 0.01)
	assert.InDelta(t, 240000, eov.X, 0.01)
}

func TestOpenExternal(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	res, err := h.dialog.OpenExternal(ctx, OpenExternalCommand{Y: "650000", X: "200000"})
	require.NoError(t, err)
	assert.Equal(t, "https://www.google.hu/maps/?q=loc:47.14439372222222,19.04857177777778&t=k&hl=hu&z=100", res.URL)

	res, err = h.dialog.OpenExternal(ctx, OpenExternalCommand{Y: "650000", X: "200000", Label: "Old Tower"})
	require.NoError(t, err)
	assert.Equal(t, "https://www.google.hu/maps/?q=Old+Tower@47.14439372222222,19.04857177777778&t=k&hl=hu&z=100", res.URL)

	assert.Len(t, h.opener.urls, 2)
	pts, _ := h.store.All(ctx)
	assert.Empty(t, pts)
}

func TestOpenExternalOpenerFailure(t *testing.T) {
	h := newHarness(t)
	h.opener.err = errBroken

	_, err := h.dialog.OpenExternal(context.Background(), OpenExternalCommand{Y: "650000", X: "200000"})
	assert.Equal(t, domain.KindInternal, domain.KindOf(err))
	assert.Len(t, h.notifier.errors, 1)
}

func TestClearPoints(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.dialog.ConvertEOVToWGS(ctx, EOVToWGSCommand{Y: "650000", X: "240000", Place: true})
	require.NoError(t, err)

	require.NoError(t, h.dialog.ClearPoints(ctx))
	require.NoError(t, h.dialog.ClearPoints(ctx))

	pts, err := h.dialog.Points(ctx)
	require.NoError(t, err)
	assert.Empty(t, pts)
	assert.Equal(t, DefaultCenter, h.renderer.center)
	assert.Equal(t, "<html>0 points</html>", h.display.pages[len(h.display.pages)-1])
}

func TestExportKML(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.dialog.ExportKML(ctx, ExportCommand{})
	assert.Equal(t, domain.KindNoPointsToExport, domain.KindOf(err))

	_, err = h.dialog.ConvertEOVToWGS(ctx, EOVToWGSCommand{Y: "650000", X: "240000", Label: "A", Place: true})
	require.NoError(t, err)

	loc, err := h.dialog.ExportKML(ctx, ExportCommand{})
	require.NoError(t, err)
	assert.Equal(t, "/exports/points.kml", loc)
	assert.Contains(t, string(h.files.files["points.kml"]), "<name>A</name>")

	loc, err = h.dialog.ExportKML(ctx, ExportCommand{FileName: "survey"})
	require.NoError(t, err)
	assert.Equal(t, "/exports/survey.kml", loc)
}

func TestExportKMLWriteFailure(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	_, err := h.dialog.ConvertEOVToWGS(ctx, EOVToWGSCommand{Y: "650000", X: "240000", Place: true})
	require.NoError(t, err)

	h.files.err = errBroken
	_, err = h.dialog.ExportKML(ctx, ExportCommand{FileName: "points.kml"})
	assert.Equal(t, domain.KindFileWrite, domain.KindOf(err))
	assert.ErrorIs(t, err, errBroken)
}

func TestDocuments(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.dialog.GeoJSONDocument(ctx)
	assert.Equal(t, domain.KindNoPointsToExport, domain.KindOf(err))

	_, err = h.dialog.ConvertEOVToWGS(ctx, EOVToWGSCommand{Y: "650000", X: "240000", Place: true})
	require.NoError(t, err)

	kml, err := h.dialog.KMLDocument(ctx)
	require.NoError(t, err)
	assert.Contains(t, string(kml.Data), "<name>Point 1</name>")
	assert.Equal(t, "points.kml", kml.Name)
	assert.Equal(t, "application/vnd.google-earth.kml+xml", kml.ContentType)

	gj, err := h.dialog.GeoJSONDocument(ctx)
	require.NoError(t, err)
	assert.Contains(t, string(gj.Data), `"FeatureCollection"`)
	assert.Equal(t, "points.geojson", gj.Name)
	assert.Equal(t, "application/geo+json", gj.ContentType)
}

func TestSaveScreenshot(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	png := append(append([]byte{}, pngSignature...), 0, 0, 0, 0)

	_, err := h.dialog.SaveScreenshot(ctx, ScreenshotCommand{Name: " ", PNG: png})
	assert.Equal(t, domain.KindScreenshot, domain.KindOf(err))

	_, err = h.dialog.SaveScreenshot(ctx, ScreenshotCommand{Name: "map", PNG: []byte("GIF89a")})
	assert.Equal(t, domain.KindScreenshot, domain.KindOf(err))

	loc, err := h.dialog.SaveScreenshot(ctx, ScreenshotCommand{Name: "map", PNG: png})
	require.NoError(t, err)
	assert.Equal(t, "/exports/map.png", loc)

	h.files.err = errBroken
	_, err = h.dialog.SaveScreenshot(ctx, ScreenshotCommand{Name: "map.png", PNG: png})
	assert.Equal(t, domain.KindFileWrite, domain.KindOf(err))
}

func TestNewDialogRequiresCollaborators(t *testing.T) {
	_, err := NewDialog(DialogDeps{}, DefaultCenter, DefaultZoom)
	assert.Error(t, err)

	_, err = NewConverter(nil, linearTransformer{})
	assert.Error(t, err)
}
