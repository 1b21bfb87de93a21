package services

import (
	"context"
	"eov-wgs-service/internal/domain"
	"errors"
	"fmt"
	"sync"
)

// linearTransformer is a stand-in for the geodetic library: a reversible
// affine map anchored on the EOV projection origin.
type linearTransformer struct {
	toEOV bool
	err   error
}

const (
	originY   = 650000.0
	originX   = 200000.0
	originLat = 47.14439372222222
	originLon = 19.04857177777778
	mPerLat   = 111000.0
	mPerLon   = 75000.0
)

func (l linearTransformer) Transform(_ context.Context, a, b float64) (float64, float64, error) {
	if l.err != nil {
		return 0, 0, l.err
	}
	if l.toEOV {
		lat, lon := a, b
		return originY + (lon-originLon)*mPerLon, originX + (lat-originLat)*mPerLat, nil
	}
	y, x := a, b
	return originLat + (x-originX)/mPerLat, originLon + (y-originY)/mPerLon, nil
}

// countingRenderer records what it was asked to draw.
type countingRenderer struct {
	calls  int
	labels []string
	center domain.Coordinates
	zoom   int
	err    error
}

func (r *countingRenderer) Render(center domain.Coordinates, zoom int, points []domain.Point) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	r.calls++
	r.center = center
	r.zoom = zoom
	r.labels = r.labels[:0]
	for _, p := range points {
		r.labels = append(r.labels, p.Label)
	}
	return fmt.Sprintf("<html>%d points</html>", len(points)), nil
}

type recordingDisplay struct {
	pages []string
}

func (d *recordingDisplay) Show(_ context.Context, html string) error {
	d.pages = append(d.pages, html)
	return nil
}

type recordingOpener struct {
	urls []string
	err  error
}

func (o *recordingOpener) Open(_ context.Context, url string) error {
	if o.err != nil {
		return o.err
	}
	o.urls = append(o.urls, url)
	return nil
}

type recordingNotifier struct {
	mu     sync.Mutex
	infos  []string
	errors []string
}

func (n *recordingNotifier) Info(_ context.Context, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.infos = append(n.infos, msg)
}

func (n *recordingNotifier) Error(_ context.Context, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, msg)
}

type memorySink struct {
	files map[string][]byte
	err   error
}

func (s *memorySink) Write(_ context.Context, name string, data []byte) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if s.files == nil {
		s.files = map[string][]byte{}
	}
	s.files[name] = data
	return "/exports/" + name, nil
}

var errBroken = errors.New("broken")
