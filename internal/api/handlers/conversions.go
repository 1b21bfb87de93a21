package handlers

import (
	"eov-wgs-service/internal/api/dto"
	"eov-wgs-service/internal/services"
	"net/http"
)

type ConversionHandler struct {
	Dialog *services.Dialog
}

// EOVToWGS converts an EOV pair and, when place is set, adds it to the map.
func (h *ConversionHandler) EOVToWGS(w http.ResponseWriter, r *http.Request) {
	var req dto.EOVToWGSRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.Dialog.ConvertEOVToWGS(r.Context(), services.EOVToWGSCommand{
		Y:     req.EOVY,
		X:     req.EOVX,
		Label: req.Label,
		Place: req.Place,
	})
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	out := dto.EOVToWGSResponse{
		Lat:  res.Coordinates.Lat,
		Lon:  res.Coordinates.Lon,
		Text: res.Text,
	}
	if res.Point != nil {
		p := toPointResponse(*res.Point)
		out.Point = &p
	}
	writeJSON(w, r, http.StatusOK, out)
}

func (h *ConversionHandler) WGSToEOV(w http.ResponseWriter, r *http.Request) {
	var req dto.WGSToEOVRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.Dialog.ConvertWGSToEOV(r.Context(), services.WGSToEOVCommand{Text: req.WGS})
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.WGSToEOVResponse{
		EOVY: res.Coordinates.Y,
		EOVX: res.Coordinates.X,
		Text: res.Text,
	})
}

// OpenExternal builds the satellite map link for an EOV pair and hands it to the opener.
func (h *ConversionHandler) OpenExternal(w http.ResponseWriter, r *http.Request) {
	var req dto.ExternalMapRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.Dialog.OpenExternal(r.Context(), services.OpenExternalCommand{
		Y:     req.EOVY,
		X:     req.EOVX,
		Label: req.Label,
	})
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ExternalMapResponse{
		Lat:  res.Coordinates.Lat,
		Lon:  res.Coordinates.Lon,
		Text: res.Text,
		URL:  res.URL,
	})
}
