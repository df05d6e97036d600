package service

import (
	"context"

	"trackhub/internal/analytics"
	"trackhub/internal/catalog"

	"github.com/rs/zerolog"
)

// analyticsService implements AnalyticsService. Every view recomputes
// from the full filtered table; nothing is cached across calls.
type analyticsService struct {
	table  *catalog.Table
	logger zerolog.Logger
}

// NewAnalyticsService creates an analytics service bound to the
// loaded table.
func NewAnalyticsService(table *catalog.Table, logger zerolog.Logger) AnalyticsService {
	return &analyticsService{
		table:  table,
		logger: logger.With().Str("service", "analytics").Logger(),
	}
}

// Summary computes the executive summary view.
func (s *analyticsService) Summary(ctx context.Context, filter analytics.Filter) (analytics.SummaryView, error) {
	rows := filter.Apply(s.table.Products())
	view := analytics.BuildSummary(rows)

	s.logger.Debug().
		Int("rows", len(rows)).
		Msg("computed summary view")

	return view, nil
}

// Features computes the feature analysis view.
func (s *analyticsService) Features(ctx context.Context, filter analytics.Filter) (analytics.FeaturesView, error) {
	rows := filter.Apply(s.table.Products())
	view := analytics.BuildFeatures(rows)

	s.logger.Debug().
		Int("rows", len(rows)).
		Msg("computed features view")

	return view, nil
}

// Rankings computes the product rankings view.
func (s *analyticsService) Rankings(ctx context.Context, filter analytics.Filter) (analytics.RankingsView, error) {
	rows := filter.Apply(s.table.Products())
	view := analytics.BuildRankings(rows)

	s.logger.Debug().
		Int("rows", len(rows)).
		Msg("computed rankings view")

	return view, nil
}

// DeepDive computes the deep dive analytics view.
func (s *analyticsService) DeepDive(ctx context.Context, filter analytics.Filter) (analytics.DeepDiveView, error) {
	rows := filter.Apply(s.table.Products())
	view := analytics.BuildDeepDive(rows)

	s.logger.Debug().
		Int("rows", len(rows)).
		Msg("computed deep dive view")

	return view, nil
}

// Recommend narrows the filtered rows by the user's preferences and
// returns up to five recommendations.
func (s *analyticsService) Recommend(ctx context.Context, filter analytics.Filter, req analytics.RecommendationRequest) (analytics.RecommendationResult, error) {
	rows := filter.Apply(s.table.Products())

	result, err := analytics.Recommend(rows, req)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("budget", req.Budget).
			Str("priority", req.Priority).
			Msg("invalid recommendation request")
		return analytics.RecommendationResult{}, err
	}

	s.logger.Debug().
		Int("rows", len(rows)).
		Int("matches", len(result.Products)).
		Msg("computed recommendations")

	return result, nil
}
