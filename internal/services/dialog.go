package services

import (
	"bytes"
	"context"
	"eov-wgs-service/internal/domain"
	"eov-wgs-service/internal/ports"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	DefaultZoom       = 13
	DefaultExportName = exportBaseName + ".kml"
	exportBaseName    = "points"
)

// Map center used on startup and after clearing all points (Budapest).
var DefaultCenter = domain.Coordinates{Lat: 47.504105491592426, Lon: 19.046773410517797}

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// Command objects, one per user action.
type EOVToWGSCommand struct {
	Y     string
	X     string
	Label string
	// Place appends the converted point to the map.
	Place bool
}

type WGSToEOVCommand struct {
	Text string
}

type OpenExternalCommand struct {
	Y     string
	X     string
	Label string
}

type ExportCommand struct {
	FileName string
}

type ScreenshotCommand struct {
	Name string
	PNG  []byte
}

type EOVToWGSResult struct {
	Coordinates domain.Coordinates
	Text        string
	Point       *domain.Point
}

type WGSToEOVResult struct {
	Coordinates domain.EOVCoordinates
	Text        string
}

// Document is an encoded export ready to be downloaded.
type Document struct {
	Name        string
	ContentType string
	Data        []byte
}

type OpenExternalResult struct {
	Coordinates domain.Coordinates
	Text        string
	URL         string
}

// Collaborators of the Dialog. All fields are required.
type DialogDeps struct {
	Validator Validator
	Converter *Converter
	Store     ports.PointStore
	Renderer  ports.MapRenderer
	Display   ports.MapDisplay
	Opener    ports.URLOpener
	Notifier  ports.Notifier
	Files     ports.FileSink
	KML       ports.PointEncoder
	GeoJSON   ports.PointEncoder
}

// Dialog orchestrates validation, conversion, the point store and map rendering
// for every user action. Each flow runs to completion under a single lock, so the
// store has exactly one mutator at a time even when requests arrive concurrently.
// Failures never escape a flow unannounced: they are logged, posted to the
// notifier and returned as *domain.Error.
type Dialog struct {
	mu     sync.Mutex
	deps   DialogDeps
	center domain.Coordinates
	zoom   int
	now    func() time.Time
}

func NewDialog(deps DialogDeps, center domain.Coordinates, zoom int) (*Dialog, error) {
	if deps.Converter == nil || deps.Store == nil || deps.Renderer == nil || deps.Display == nil ||
		deps.Opener == nil || deps.Notifier == nil || deps.Files == nil || deps.KML == nil || deps.GeoJSON == nil {
		return nil, errors.New("new dialog: missing collaborator")
	}
	if !center.Valid() {
		center = DefaultCenter
	}
	if zoom <= 0 {
		zoom = DefaultZoom
	}
	return &Dialog{deps: deps, center: center, zoom: zoom, now: time.Now}, nil
}

// ConvertEOVToWGS converts the EOV fields, optionally adds the point to the map
// and redraws the map centered on it.
func (d *Dialog) ConvertEOVToWGS(ctx context.Context, cmd EOVToWGSCommand) (EOVToWGSResult, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	y, x, coords, err := d.convertEOV(ctx, cmd.Y, cmd.X)
	if err != nil {
		return EOVToWGSResult{}, d.fail(ctx, "eov to wgs", err)
	}

	res := EOVToWGSResult{Coordinates: coords, Text: WGSResultText(coords)}
	if !cmd.Place {
		d.deps.Notifier.Info(ctx, "EOV->WGS conversion succeeded")
		return res, nil
	}

	label := strings.TrimSpace(cmd.Label)
	tooltip, popup := markerTexts(label, y, x, coords)
	p := domain.NewPoint(coords, label, popup, tooltip, d.now())

	if err := d.deps.Store.Append(ctx, p); err != nil {
		return res, d.fail(ctx, "eov to wgs", fmt.Errorf("append point: %w", err))
	}
	if err := d.redraw(ctx, coords); err != nil {
		return res, d.fail(ctx, "eov to wgs", err)
	}

	res.Point = &p
	d.deps.Notifier.Info(ctx, "EOV->WGS conversion succeeded")
	return res, nil
}

// ConvertWGSToEOV only formats the result; the map is left untouched.
func (d *Dialog) ConvertWGSToEOV(ctx context.Context, cmd WGSToEOVCommand) (WGSToEOVResult, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	lat, lon, err := d.deps.Validator.ValidateWGS(cmd.Text)
	if err != nil {
		return WGSToEOVResult{}, d.fail(ctx, "wgs to eov", err)
	}

	eov, err := d.deps.Converter.WGSToEOV(ctx, lat, lon)
	if err != nil {
		return WGSToEOVResult{}, d.fail(ctx, "wgs to eov", err)
	}

	d.deps.Notifier.Info(ctx, "WGS->EOV conversion succeeded")
	return WGSToEOVResult{Coordinates: eov, Text: EOVResultText(eov)}, nil
}

// OpenExternal converts the EOV fields and hands a satellite map link to the opener.
func (d *Dialog) OpenExternal(ctx context.Context, cmd OpenExternalCommand) (OpenExternalResult, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	_, _, coords, err := d.convertEOV(ctx, cmd.Y, cmd.X)
	if err != nil {
		return OpenExternalResult{}, d.fail(ctx, "open external map", err)
	}

	link := ExternalMapURL(strings.TrimSpace(cmd.Label), coords)
	if err := d.deps.Opener.Open(ctx, link); err != nil {
		return OpenExternalResult{}, d.fail(ctx, "open external map", fmt.Errorf("open url: %w", err))
	}

	d.deps.Notifier.Info(ctx, "External map opened")
	return OpenExternalResult{Coordinates: coords, Text: WGSResultText(coords), URL: link}, nil
}

// ClearPoints empties the store and redraws an empty map on the default center.
func (d *Dialog) ClearPoints(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.deps.Store.Clear(ctx); err != nil {
		return d.fail(ctx, "clear points", fmt.Errorf("clear store: %w", err))
	}
	zerolog.Ctx(ctx).Info().Msg("all points cleared")

	if err := d.redraw(ctx, d.center); err != nil {
		return d.fail(ctx, "clear points", err)
	}

	d.deps.Notifier.Info(ctx, "Map refreshed, all points cleared")
	return nil
}

// Refresh redraws the map from the store on the default center.
func (d *Dialog) Refresh(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.redraw(ctx, d.center); err != nil {
		return d.fail(ctx, "refresh map", err)
	}
	return nil
}

// Points returns a snapshot of the stored points.
func (d *Dialog) Points(ctx context.Context) ([]domain.Point, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	pts, err := d.deps.Store.All(ctx)
	if err != nil {
		return nil, d.fail(ctx, "list points", fmt.Errorf("read store: %w", err))
	}
	return pts, nil
}

// ExportKML writes every stored point to a KML file through the file sink.
func (d *Dialog) ExportKML(ctx context.Context, cmd ExportCommand) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	data, n, err := d.encode(ctx, d.deps.KML)
	if err != nil {
		return "", d.fail(ctx, "export kml", err)
	}

	name := strings.TrimSpace(cmd.FileName)
	if name == "" {
		name = DefaultExportName
	}
	if !strings.EqualFold(filepath.Ext(name), d.deps.KML.Extension()) {
		name += d.deps.KML.Extension()
	}

	loc, err := d.deps.Files.Write(ctx, name, data)
	if err != nil {
		return "", d.fail(ctx, "export kml", domain.WrapError(domain.KindFileWrite, "could not save "+name, err))
	}

	zerolog.Ctx(ctx).Info().Str("file", loc).Int("points", n).Msg("kml exported")
	d.deps.Notifier.Info(ctx, fmt.Sprintf("KML export: %d points saved to %s", n, loc))
	return loc, nil
}

// KMLDocument returns the KML document for every stored point.
func (d *Dialog) KMLDocument(ctx context.Context) (Document, error) {
	return d.document(ctx, "kml document", d.deps.KML)
}

// GeoJSONDocument returns the GeoJSON FeatureCollection for every stored point.
func (d *Dialog) GeoJSONDocument(ctx context.Context) (Document, error) {
	return d.document(ctx, "geojson document", d.deps.GeoJSON)
}

// SaveScreenshot stores a PNG capture of the map under the given name.
func (d *Dialog) SaveScreenshot(ctx context.Context, cmd ScreenshotCommand) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return "", d.fail(ctx, "save screenshot", domain.NewError(domain.KindScreenshot, "name", "enter a file name for the screenshot"))
	}
	if !bytes.HasPrefix(cmd.PNG, pngSignature) {
		return "", d.fail(ctx, "save screenshot", domain.NewError(domain.KindScreenshot, "png", "screenshot data is not a PNG image"))
	}
	if !strings.EqualFold(filepath.Ext(name), ".png") {
		name += ".png"
	}

	loc, err := d.deps.Files.Write(ctx, name, cmd.PNG)
	if err != nil {
		return "", d.fail(ctx, "save screenshot", domain.WrapError(domain.KindFileWrite, "could not save the screenshot "+name, err))
	}

	d.deps.Notifier.Info(ctx, "Screenshot saved: "+loc)
	return loc, nil
}

func (d *Dialog) document(ctx context.Context, op string, enc ports.PointEncoder) (Document, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	data, _, err := d.encode(ctx, enc)
	if err != nil {
		return Document{}, d.fail(ctx, op, err)
	}
	return Document{
		Name:        exportBaseName + enc.Extension(),
		ContentType: enc.ContentType(),
		Data:        data,
	}, nil
}

func (d *Dialog) encode(ctx context.Context, enc ports.PointEncoder) ([]byte, int, error) {
	pts, err := d.deps.Store.All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("read store: %w", err)
	}
	data, err := enc.Encode(pts)
	if err != nil {
		return nil, 0, err
	}
	return data, len(pts), nil
}

func (d *Dialog) convertEOV(ctx context.Context, yText, xText string) (float64, float64, domain.Coordinates, error) {
	y, x, err := d.deps.Validator.ValidateEOV(yText, xText)
	if err != nil {
		return 0, 0, domain.Coordinates{}, err
	}
	coords, err := d.deps.Converter.EOVToWGS(ctx, y, x)
	if err != nil {
		return 0, 0, domain.Coordinates{}, err
	}
	return y, x, coords, nil
}

// redraw rebuilds the whole map from the store; the store is the only source of markers.
func (d *Dialog) redraw(ctx context.Context, center domain.Coordinates) error {
	pts, err := d.deps.Store.All(ctx)
	if err != nil {
		return fmt.Errorf("redraw: read store: %w", err)
	}
	page, err := d.deps.Renderer.Render(center, d.zoom, pts)
	if err != nil {
		return domain.WrapError(domain.KindInternal, "could not refresh the map", err)
	}
	if err := d.deps.Display.Show(ctx, page); err != nil {
		return domain.WrapError(domain.KindInternal, "could not refresh the map", err)
	}
	return nil
}

// fail is the flow boundary: log, announce, and normalize err to *domain.Error.
func (d *Dialog) fail(ctx context.Context, flow string, err error) error {
	msg := domain.UserMessage(err)

	var de *domain.Error
	if !errors.As(err, &de) {
		de = domain.WrapError(domain.KindInternal, msg, err)
	}

	ev := zerolog.Ctx(ctx).Warn()
	if de.Kind == domain.KindInternal || de.Kind == domain.KindTransform || de.Kind == domain.KindFileWrite {
		ev = zerolog.Ctx(ctx).Error()
	}
	ev.Str("flow", flow).Str("kind", string(de.Kind)).Err(err).Msg("flow failed")

	d.deps.Notifier.Error(ctx, msg)
	return de
}
