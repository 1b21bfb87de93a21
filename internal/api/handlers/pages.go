package handlers

import (
	"eov-wgs-service/internal/adapters/display"
	"eov-wgs-service/internal/api/dto"
	"net/http"
	"strconv"
	"strings"
)

// PageSource yields the most recently rendered map page.
type PageSource interface {
	Current() (html string, version uint64, ok bool)
}

// MessageSource yields the recent user-facing messages, oldest first.
type MessageSource interface {
	Recent() []display.Message
}

type MapHandler struct {
	Map PageSource
}

// Show serves the current map page. The version is stamped into the page and
// sent as X-Map-Version so the page can poll for redraws.
func (h *MapHandler) Show(w http.ResponseWriter, r *http.Request) {
	page, version, ok := h.Map.Current()
	if !ok {
		writeError(w, r, http.StatusServiceUnavailable, "map not rendered yet")
		return
	}

	v := strconv.FormatUint(version, 10)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("X-Map-Version", v)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(withVersion(page, v)))
}

type MessageHandler struct {
	Messages MessageSource
}

func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	msgs := h.Messages.Recent()

	res := dto.ListMessageResponse{Messages: make([]dto.MessageResponse, 0, len(msgs))}
	for _, m := range msgs {
		res.Messages = append(res.Messages, dto.MessageResponse{
			Level: string(m.Level),
			Text:  m.Text,
			At:    m.At,
		})
	}
	writeJSON(w, r, http.StatusOK, res)
}

// withVersion adds a map-version meta tag right after <head>.
func withVersion(page, version string) string {
	return strings.Replace(page, "<head>", `<head>
<meta name="map-version" content="`+version+`">`, 1)
}
