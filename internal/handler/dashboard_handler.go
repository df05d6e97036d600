package handler

import (
	"errors"
	"net/http"
	"strconv"

	"trackhub/internal/analytics"
	"trackhub/internal/model"
	"trackhub/internal/service"

	"github.com/rs/zerolog"
)

// DashboardHandler serves the four dashboard views and the
// recommendation engine.
type DashboardHandler struct {
	service service.AnalyticsService
	logger  zerolog.Logger
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(service service.AnalyticsService, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		logger:  logger.With().Str("handler", "dashboard").Logger(),
	}
}

// GetSummary handles GET /api/views/summary requests.
func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	h.serveView(w, r, func(filter analytics.Filter) (interface{}, error) {
		return h.service.Summary(r.Context(), filter)
	})
}

// GetFeatures handles GET /api/views/features requests.
func (h *DashboardHandler) GetFeatures(w http.ResponseWriter, r *http.Request) {
	h.serveView(w, r, func(filter analytics.Filter) (interface{}, error) {
		return h.service.Features(r.Context(), filter)
	})
}

// GetRankings handles GET /api/views/rankings requests.
func (h *DashboardHandler) GetRankings(w http.ResponseWriter, r *http.Request) {
	h.serveView(w, r, func(filter analytics.Filter) (interface{}, error) {
		return h.service.Rankings(r.Context(), filter)
	})
}

// GetDeepDive handles GET /api/views/deepdive requests.
func (h *DashboardHandler) GetDeepDive(w http.ResponseWriter, r *http.Request) {
	h.serveView(w, r, func(filter analytics.Filter) (interface{}, error) {
		return h.service.DeepDive(r.Context(), filter)
	})
}

// serveView parses the common filter parameters and renders one view.
func (h *DashboardHandler) serveView(w http.ResponseWriter, r *http.Request, build func(analytics.Filter) (interface{}, error)) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeInvalidFilter, "method not allowed", h.logger)
		return
	}

	filter, err := parseFilter(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidFilter, err.Error(), h.logger)
		return
	}

	view, err := build(filter)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to compute view", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// GetRecommendations handles GET /api/recommendations requests.
// Budget defaults to "budget" and priority to "value", mirroring the
// first option of each control; rating and battery floors default to
// 4.0 and 5 days.
func (h *DashboardHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeInvalidFilter, "method not allowed", h.logger)
		return
	}

	filter, err := parseFilter(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidFilter, err.Error(), h.logger)
		return
	}

	query := r.URL.Query()
	req := analytics.RecommendationRequest{
		Budget:     query.Get("budget"),
		Priority:   query.Get("priority"),
		Brand:      query.Get("brand"),
		DeviceType: query.Get("device"),
		MinRating:  4.0,
		MinBattery: 5,
	}
	if req.Budget == "" {
		req.Budget = analytics.BudgetLow
	}
	if req.Priority == "" {
		req.Priority = analytics.PriorityValue
	}
	if s := query.Get("minRating"); s != "" {
		req.MinRating, err = strconv.ParseFloat(s, 64)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidFilter, "invalid minRating parameter", h.logger)
			return
		}
	}
	if s := query.Get("minBattery"); s != "" {
		req.MinBattery, err = strconv.ParseFloat(s, 64)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidFilter, "invalid minBattery parameter", h.logger)
			return
		}
	}

	result, err := h.service.Recommend(r.Context(), filter, req)
	if err != nil {
		var domainErr *model.DomainError
		if errors.As(err, &domainErr) {
			writeError(w, r, http.StatusBadRequest, domainErr.Code, domainErr.Message, h.logger)
			return
		}
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to compute recommendations", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
