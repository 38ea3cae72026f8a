package gateway

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/invopipe/invoice-ingest/internal/gateway/middleware"
	invoice_http "github.com/invopipe/invoice-ingest/internal/modules/invoice/interfaces/http"
)

// RouterConfig holds all the handlers and middleware needed for routing
type RouterConfig struct {
	UploadHandler  *invoice_http.UploadHandler
	AllowedOrigins string
}

// SetupRoutes creates and configures all application routes
func SetupRoutes(config RouterConfig) http.Handler {
	mux := http.NewServeMux()

	// Health Check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus Metrics Endpoint
	mux.Handle("/metrics", promhttp.Handler())

	// Invoice Routes
	mux.HandleFunc("POST /invoices/upload", config.UploadHandler.Upload)

	var handler http.Handler = mux
	handler = middleware.MetricsMiddleware(handler)
	handler = middleware.CORSMiddleware(handler, config.AllowedOrigins)
	handler = middleware.RecoverMiddleware(handler)
	return handler
}
