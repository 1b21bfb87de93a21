package projection

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/pebbe/proj/v5"
)

// EPSG codes of the two reference systems handled by this service.
const (
	EOVCode   = "EPSG:23700"
	WGS84Code = "EPSG:4326"
)

// wgsToEOVPipeline maps EPSG:4326 (lat, lon in degrees) to EPSG:23700 (Y easting, X northing in meters):
// HD72 datum shift via a 3-parameter Helmert on geocentric coordinates, then the
// EOV oblique cylindrical projection on the GRS67 ellipsoid.
const wgsToEOVPipeline = `
	+proj=pipeline
	+step +proj=axisswap +order=2,1
	+step +proj=unitconvert +xy_in=deg +xy_out=rad
	+step +proj=push +v_3
	+step +proj=cart +ellps=WGS84
	+step +inv +proj=helmert +x=52.17 +y=-71.82 +z=-14.9
	+step +inv +proj=cart +ellps=GRS67
	+step +proj=pop +v_3
	+step +proj=somerc +lat_0=47.14439372222222 +lon_0=19.04857177777778
	      +k_0=0.99993 +x_0=650000 +y_0=200000 +ellps=GRS67
`

// Transformer is a fixed-direction PROJ transformation.
// PROJ objects are not safe for concurrent use, so Transform serializes calls.
type Transformer struct {
	mu        sync.Mutex
	pj        *proj.PJ
	direction proj.Direction
	source    string
	target    string
}

func (t *Transformer) Transform(ctx context.Context, a, b float64) (float64, float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	out, err := t.pj.Trans(t.direction, proj.Coord{a, b, 0, 0})
	if err != nil {
		return 0, 0, fmt.Errorf("transform %s -> %s (%v, %v): %w", t.source, t.target, a, b, err)
	}
	if math.IsInf(out[0], 0) || math.IsInf(out[1], 0) || math.IsNaN(out[0]) || math.IsNaN(out[1]) {
		return 0, 0, fmt.Errorf("transform %s -> %s (%v, %v): result out of range", t.source, t.target, a, b)
	}

	return out[0], out[1], nil
}

func (t *Transformer) Source() string { return t.source }
func (t *Transformer) Target() string { return t.target }

// Transformers owns the PROJ context and both fixed-direction transformers.
// Build it once at startup and Close it on shutdown.
type Transformers struct {
	ctx     *proj.Context
	FromEOV *Transformer
	ToEOV   *Transformer
}

func New() (*Transformers, error) {
	pctx := proj.NewContext()

	fwd, err := pctx.Create(wgsToEOVPipeline)
	if err != nil {
		pctx.Close()
		return nil, fmt.Errorf("projection: create %s -> %s pipeline: %w", WGS84Code, EOVCode, err)
	}
	inv, err := pctx.Create(wgsToEOVPipeline)
	if err != nil {
		fwd.Close()
		pctx.Close()
		return nil, fmt.Errorf("projection: create %s -> %s pipeline: %w", EOVCode, WGS84Code, err)
	}

	return &Transformers{
		ctx:     pctx,
		ToEOV:   &Transformer{pj: fwd, direction: proj.Fwd, source: WGS84Code, target: EOVCode},
		FromEOV: &Transformer{pj: inv, direction: proj.Inv, source: EOVCode, target: WGS84Code},
	}, nil
}

func (ts *Transformers) Close() error {
	if ts == nil || ts.ctx == nil {
		return errors.New("projection: transformers already closed")
	}
	ts.ToEOV.pj.Close()
	ts.FromEOV.pj.Close()
	ts.ctx.Close()
	ts.ctx = nil
	return nil
}
