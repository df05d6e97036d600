package router

import (
	"net/http"

	"trackhub/internal/handler"
	"trackhub/internal/middleware"
	"trackhub/web"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	catalogHandler *handler.CatalogHandler,
	dashboardHandler *handler.DashboardHandler,
	apiKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Dashboard page at the root path only
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		page, err := web.IndexHTML()
		if err != nil {
			logger.Error().Err(err).Msg("failed to read dashboard page")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(page)
	})

	// Catalogue routes
	mux.HandleFunc("/api/products", catalogHandler.GetProducts)
	mux.HandleFunc("/api/filters", catalogHandler.GetFilterOptions)

	// Dashboard view routes, one per view variant
	mux.HandleFunc("/api/views/summary", dashboardHandler.GetSummary)
	mux.HandleFunc("/api/views/features", dashboardHandler.GetFeatures)
	mux.HandleFunc("/api/views/rankings", dashboardHandler.GetRankings)
	mux.HandleFunc("/api/views/deepdive", dashboardHandler.GetDeepDive)

	// Recommendation engine
	mux.HandleFunc("/api/recommendations", dashboardHandler.GetRecommendations)

	// Apply middleware in order: Recovery -> RequestID -> Logging -> CORS -> APIKeyAuth
	var h http.Handler = mux
	h = middleware.APIKeyAuth(apiKey, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.RequestID(h)
	h = middleware.Recovery(logger)(h)

	return h
}
