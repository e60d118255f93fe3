// Package app contains the application wiring for the catalog API.
package app

import (
	"log/slog"
	"net/http"

	"github.com/uibrahim/product-api/internal/catalog/service"
	"github.com/uibrahim/product-api/internal/catalog/store"
	"github.com/uibrahim/product-api/internal/config"
	"github.com/uibrahim/product-api/internal/transport/rest"
	"github.com/uibrahim/product-api/pkg/server"
	"github.com/uibrahim/product-api/pkg/web"
)

type Dependencies struct {
	CatalogService service.CatalogService
	Logger         *slog.Logger
}

// SetupDependencies wires the seeded in-memory store into the catalog service.
func SetupDependencies(logger *slog.Logger) *Dependencies {
	return &Dependencies{
		CatalogService: service.NewService(store.NewSeededStore()),
		Logger:         logger,
	}
}

// SetupHTTPHandler initializes the router, middleware chain and routes.
// Exported so test harnesses can drive requests without opening a socket.
func SetupHTTPHandler(deps *Dependencies, cfg *config.Config) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	mux.Use(web.Throttle(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	mux.Use(web.APIKeyAuth("/api", cfg.Auth.Key, deps.Logger))

	handler := rest.NewHandler(deps.CatalogService, deps.Logger)
	handler.RegisterRoutes(mux)
	return mux
}

// SetupHTTPServer creates and configures the HTTP server for the catalog API.
func SetupHTTPServer(deps *Dependencies, cfg *config.Config) *http.Server {
	mux := SetupHTTPHandler(deps, cfg)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}
	return server.NewHTTPServer(httpCfg, mux)
}
