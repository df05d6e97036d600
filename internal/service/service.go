package service

import (
	"context"

	"trackhub/internal/analytics"
	"trackhub/internal/model"
)

// FilterOptions enumerates the values the sidebar filter controls can
// offer, derived from the loaded catalogue.
type FilterOptions struct {
	Brands      []string    `json:"brands"`
	DeviceTypes []string    `json:"deviceTypes"`
	Colors      []string    `json:"colors"`
	MinPrice    model.Float `json:"minPrice"`
	MaxPrice    model.Float `json:"maxPrice"`
}

// CatalogService defines operations over the loaded catalogue rows.
type CatalogService interface {
	// Products retrieves the filtered catalogue rows with pagination.
	Products(ctx context.Context, filter analytics.Filter, limit, offset int) ([]model.Product, error)

	// FilterOptions enumerates the available filter control values.
	FilterOptions(ctx context.Context) (FilterOptions, error)
}

// AnalyticsService defines the four dashboard views and the
// recommendation engine, each computed fresh over the filtered rows.
type AnalyticsService interface {
	// Summary computes the executive summary view.
	Summary(ctx context.Context, filter analytics.Filter) (analytics.SummaryView, error)

	// Features computes the feature analysis view.
	Features(ctx context.Context, filter analytics.Filter) (analytics.FeaturesView, error)

	// Rankings computes the product rankings view.
	Rankings(ctx context.Context, filter analytics.Filter) (analytics.RankingsView, error)

	// DeepDive computes the deep dive analytics view.
	DeepDive(ctx context.Context, filter analytics.Filter) (analytics.DeepDiveView, error)

	// Recommend narrows the filtered rows by the user's preferences
	// and returns up to five recommendations.
	Recommend(ctx context.Context, filter analytics.Filter, req analytics.RecommendationRequest) (analytics.RecommendationResult, error)
}
