package handlers

import (
	"encoding/json"
	"eov-wgs-service/internal/api/dto"
	"eov-wgs-service/internal/domain"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog"
)

// Request bodies above this size are rejected; screenshots are the largest payload.
const maxBodyBytes = 16 << 20

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("encode failed")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, dto.ErrorResponse{Error: msg})
}

// writeDomainError maps a flow failure to its HTTP status. The message is the
// same text the message board received.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var de *domain.Error
	if !errors.As(err, &de) {
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, statusFor(de.Kind), dto.ErrorResponse{
		Error: de.Message,
		Kind:  string(de.Kind),
		Field: de.Field,
	})
}

func statusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindMissingField, domain.KindWrongDecimalSeparator, domain.KindNotNumeric,
		domain.KindBadFormat, domain.KindScreenshot:
		return http.StatusBadRequest
	case domain.KindNoPointsToExport:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON reads exactly one JSON object with no unknown fields into dst.
// Field contents are left to the dialog so their failures reach the message
// board. On failure the response is already written.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}
	return true
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found")
}
