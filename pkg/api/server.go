// Package api exposes the tuple store and its codec over HTTP.
//
// @title			FreyjaDB Order-Preserving Encoding API
// @version		1.0.0
// @description	REST API for encoding scalars and querying ordered tuple tables.
// @BasePath		/api/v1
//
// @securityDefinitions.apikey	ApiKeyAuth
// @in							header
// @name						X-API-Key
package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ssargent/freyja-ope/pkg/storage"
)

// NewRouter builds the chi router for engine, wiring middleware, metrics,
// and every route. Split out from StartServer so tests can exercise the
// router directly without binding a socket.
func NewRouter(engine *storage.Engine, config ServerConfig) *chi.Mux {
	metrics := NewMetrics()
	server := NewServer(engine, config, metrics)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/health", metrics.InstrumentHandler("GET", "/health", server.handleHealth))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(apiKeyMiddleware(config.APIKey))

		r.Post("/encode", metrics.InstrumentHandler("POST", "/api/v1/encode", server.handleEncode))
		r.Post("/decode", metrics.InstrumentHandler("POST", "/api/v1/decode", server.handleDecode))
		r.Put("/tables/{table}/rows", metrics.InstrumentHandler("PUT", "/api/v1/tables/{table}/rows", server.handlePutRow))
		r.Get("/tables/{table}/rows", metrics.InstrumentHandler("GET", "/api/v1/tables/{table}/rows", server.handleGetRows))
	})

	return r
}

// StartServer starts the HTTP server with all routes configured. It
// blocks until the server exits.
func StartServer(engine *storage.Engine, config ServerConfig) error {
	r := NewRouter(engine, config)
	addr := fmt.Sprintf(":%d", config.Port)
	fmt.Printf("Starting FreyjaDB API server on %s\n", addr)
	fmt.Printf("Metrics available at: http://localhost%s/metrics\n", addr)
	return http.ListenAndServe(addr, r)
}
