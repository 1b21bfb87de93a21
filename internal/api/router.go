package api

import (
	"eov-wgs-service/internal/api/handlers"
	"eov-wgs-service/internal/services"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/klauspost/compress/gzhttp"
	"github.com/rs/zerolog"
)

// Deps are the collaborators the HTTP layer needs.
type Deps struct {
	Dialog   *services.Dialog
	Map      handlers.PageSource
	Messages handlers.MessageSource
	Logger   zerolog.Logger
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// Handlers stay unaware of concrete adapters.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(loggingMiddleware(d.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.GetHead)

	conv := &handlers.ConversionHandler{Dialog: d.Dialog}
	pts := &handlers.PointHandler{Dialog: d.Dialog}
	exp := &handlers.ExportHandler{Dialog: d.Dialog}
	page := &handlers.MapHandler{Map: d.Map}
	msgs := &handlers.MessageHandler{Messages: d.Messages}

	r.Get("/health", handlers.Health)
	r.Get("/", page.Show)

	r.Route("/api", func(r chi.Router) {
		r.Post("/conversions/eov-to-wgs", conv.EOVToWGS)
		r.Post("/conversions/wgs-to-eov", conv.WGSToEOV)
		r.Post("/external-map", conv.OpenExternal)

		r.Get("/points", pts.List)
		r.Delete("/points", pts.Clear)
		r.Get("/points.kml", exp.DownloadKML)
		r.Get("/points.geojson", exp.DownloadGeoJSON)

		r.Post("/exports/kml", exp.SaveKML)
		r.Post("/screenshots", exp.SaveScreenshot)

		r.Get("/messages", msgs.List)
	})

	r.MethodNotAllowed(handlers.MethodNotAllowed)
	r.NotFound(handlers.NotFound)

	return gzhttp.GzipHandler(r)
}
