package handlers

import (
	"eov-wgs-service/internal/api/dto"
	"eov-wgs-service/internal/domain"
	"eov-wgs-service/internal/services"
	"net/http"
)

type PointHandler struct {
	Dialog *services.Dialog
}

// List returns the placed points in insertion order.
func (h *PointHandler) List(w http.ResponseWriter, r *http.Request) {
	pts, err := h.Dialog.Points(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	res := dto.ListPointResponse{Points: make([]dto.PointResponse, 0, len(pts))}
	for _, p := range pts {
		res.Points = append(res.Points, toPointResponse(p))
	}
	writeJSON(w, r, http.StatusOK, res)
}

// Clear removes every point and redraws an empty map.
func (h *PointHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.Dialog.ClearPoints(r.Context()); err != nil {
		writeDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toPointResponse(p domain.Point) dto.PointResponse {
	return dto.PointResponse{
		ID:        p.ID.String(),
		Lat:       p.Location.Lat,
		Lon:       p.Location.Lon,
		Label:     p.Label,
		Tooltip:   p.Tooltip,
		Popup:     p.Popup,
		CreatedAt: p.CreatedAt,
	}
}
