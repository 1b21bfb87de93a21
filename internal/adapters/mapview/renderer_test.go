package mapview

import (
	"eov-wgs-service/internal/domain"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var budapest = domain.Coordinates{Lat: 47.504105491592426, Lon: 19.046773410517797}

func points(n int) []domain.Point {
	out := make([]domain.Point, 0, n)
	for i := 0; i < n; i++ {
		label := ""
		if i%2 == 0 {
			label = fmt.Sprintf("P%d", i)
		}
		out = append(out, domain.NewPoint(
			domain.Coordinates{Lat: 47.5 + float64(i)/100, Lon: 19.0 + float64(i)/100},
			label, "<b>popup</b>", "tooltip", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		))
	}
	return out
}

func TestRenderOneMarkerPerPointInOrder(t *testing.T) {
	r := NewRenderer("", "")

	for _, n := range []int{0, 1, 5} {
		t.Run(fmt.Sprintf("%d points", n), func(t *testing.T) {
			html, err := r.Render(budapest, 13, points(n))
			require.NoError(t, err)
			assert.Equal(t, n, strings.Count(html, "addPoint(map,"))
		})
	}

	html, err := r.Render(budapest, 13, points(5))
	require.NoError(t, err)
	p0 := strings.Index(html, `"label":"P0"`)
	p2 := strings.Index(html, `"label":"P2"`)
	p4 := strings.Index(html, `"label":"P4"`)
	assert.True(t, p0 >= 0 && p0 < p2 && p2 < p4)
}

func TestRenderIsDeterministic(t *testing.T) {
	r := NewRenderer("", "")
	pts := points(3)

	a, err := r.Render(budapest, 13, pts)
	require.NoError(t, err)
	b, err := r.Render(budapest, 13, pts)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRenderIncludesLayers(t *testing.T) {
	r := NewRenderer("https://tiles.example/{z}/{x}/{y}.png", "Example")

	html, err := r.Render(budapest, 13, nil)
	require.NoError(t, err)

	assert.Contains(t, html, "tiles.example")
	assert.Contains(t, html, "Example")
	assert.Contains(t, html, `map.on("click"`)
	assert.Contains(t, html, "47.504105491592426")
}

func TestRenderEscapesLabels(t *testing.T) {
	r := NewRenderer("", "")
	p := domain.NewPoint(budapest, "</script><script>alert(1)</script>", "", "", time.Now())

	html, err := r.Render(budapest, 13, []domain.Point{p})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert(1)</script>")
}

func TestRenderRejectsBadInput(t *testing.T) {
	r := NewRenderer("", "")

	_, err := r.Render(domain.Coordinates{Lat: 120, Lon: 19}, 13, nil)
	assert.Error(t, err)

	_, err = r.Render(budapest, 42, nil)
	assert.Error(t, err)
}

func TestRenderLabelledPointsUseInfoIcon(t *testing.T) {
	r := NewRenderer("", "")

	html, err := r.Render(budapest, 13, points(3))
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(html, `"kind":"info"`))
	assert.Equal(t, 1, strings.Count(html, `"kind":"plain"`))
	assert.Contains(t, html, `className: "point-info"`)
}
