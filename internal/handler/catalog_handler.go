package handler

import (
	"net/http"
	"strconv"

	"trackhub/internal/model"
	"trackhub/internal/service"

	"github.com/rs/zerolog"
)

// CatalogHandler handles catalogue-related HTTP requests.
type CatalogHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewCatalogHandler creates a new catalogue handler.
func NewCatalogHandler(service service.CatalogService, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger.With().Str("handler", "catalog").Logger(),
	}
}

// GetProducts handles GET /api/products requests with filtering and
// pagination.
func (h *CatalogHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeInvalidFilter, "method not allowed", h.logger)
		return
	}

	filter, err := parseFilter(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidFilter, err.Error(), h.logger)
		return
	}

	limit := 50
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidFilter, "invalid limit parameter", h.logger)
			return
		}
	}

	offset := 0
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		offset, err = strconv.Atoi(offsetStr)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidFilter, "invalid offset parameter", h.logger)
			return
		}
	}

	products, err := h.service.Products(r.Context(), filter, limit, offset)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to retrieve products", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetFilterOptions handles GET /api/filters requests.
func (h *CatalogHandler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, model.ErrCodeInvalidFilter, "method not allowed", h.logger)
		return
	}

	options, err := h.service.FilterOptions(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to retrieve filter options", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, options)
}
