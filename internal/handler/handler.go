package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"trackhub/internal/analytics"
	"trackhub/internal/middleware"
	"trackhub/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes a standardised error response, tagging it with the
// request's correlation ID when one is present.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, logger zerolog.Logger) {
	correlationID := middleware.RequestIDFrom(r.Context())

	logger.Error().
		Str("code", code).
		Str("error", message).
		Int("status", status).
		Str("correlation_id", correlationID).
		Msg("handler error")

	writeJSON(w, status, model.ErrorResponse{
		Error:         code,
		Message:       message,
		CorrelationID: correlationID,
	})
}

// parseFilter reads the common sidebar filter query parameters. Empty
// multi-choice parameters stay unset and pass every row through.
func parseFilter(r *http.Request) (analytics.Filter, error) {
	query := r.URL.Query()

	filter := analytics.Filter{
		Brands:      splitParam(query.Get("brands")),
		DeviceTypes: splitParam(query.Get("devices")),
		Colors:      splitParam(query.Get("colors")),
	}

	var err error
	if filter.MinPrice, err = floatParam(query.Get("minPrice"), "minPrice"); err != nil {
		return analytics.Filter{}, err
	}
	if filter.MaxPrice, err = floatParam(query.Get("maxPrice"), "maxPrice"); err != nil {
		return analytics.Filter{}, err
	}
	if filter.MinRating, err = floatParam(query.Get("minRating"), "minRating"); err != nil {
		return analytics.Filter{}, err
	}

	return filter, nil
}

// splitParam splits a comma-separated multi-choice parameter, dropping
// empty entries.
func splitParam(s string) []string {
	if s == "" {
		return nil
	}
	var values []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}

// floatParam parses an optional numeric parameter; absent means unset.
func floatParam(s, name string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s parameter", name)
	}
	return &v, nil
}
