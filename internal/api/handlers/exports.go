package handlers

import (
	"encoding/base64"
	"eov-wgs-service/internal/api/dto"
	"eov-wgs-service/internal/services"
	"net/http"
	"strconv"
)

type ExportHandler struct {
	Dialog *services.Dialog
}

func (h *ExportHandler) DownloadKML(w http.ResponseWriter, r *http.Request) {
	doc, err := h.Dialog.KMLDocument(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeDownload(w, doc)
}

func (h *ExportHandler) DownloadGeoJSON(w http.ResponseWriter, r *http.Request) {
	doc, err := h.Dialog.GeoJSONDocument(r.Context())
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeDownload(w, doc)
}

// SaveKML writes the KML export into the export directory.
func (h *ExportHandler) SaveKML(w http.ResponseWriter, r *http.Request) {
	var req dto.ExportKMLRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	path, err := h.Dialog.ExportKML(r.Context(), services.ExportCommand{FileName: req.FileName})
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, dto.SavedFileResponse{Path: path})
}

// SaveScreenshot stores a PNG map capture sent by the browser.
func (h *ExportHandler) SaveScreenshot(w http.ResponseWriter, r *http.Request) {
	var req dto.ScreenshotRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	// Undecodable data is passed on as empty; the dialog rejects it as a non-PNG payload.
	png, err := base64.StdEncoding.DecodeString(req.PNGBase64)
	if err != nil {
		png = nil
	}

	path, err := h.Dialog.SaveScreenshot(r.Context(), services.ScreenshotCommand{Name: req.Name, PNG: png})
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, dto.SavedFileResponse{Path: path})
}

func writeDownload(w http.ResponseWriter, doc services.Document) {
	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+strconv.Quote(doc.Name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc.Data)
}
