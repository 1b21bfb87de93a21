package display

import (
	"context"
	"errors"
	"sync"
)

// LatestMap keeps the most recently rendered map page for the browser to fetch.
type LatestMap struct {
	mu   sync.RWMutex
	html string
	seq  uint64
}

func NewLatestMap() *LatestMap {
	return &LatestMap{}
}

func (m *LatestMap) Show(_ context.Context, html string) error {
	if html == "" {
		return errors.New("show map: empty document")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.html = html
	m.seq++
	return nil
}

// Current returns the page and its version; ok is false until a page was shown.
func (m *LatestMap) Current() (html string, version uint64, ok bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.html, m.seq, m.seq > 0
}
