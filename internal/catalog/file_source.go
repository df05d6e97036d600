package catalog

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// fileSource implements Source for reading the catalogue CSV from the
// local file system.
type fileSource struct {
	path   string
	logger zerolog.Logger
}

// NewFileSource creates a file-based catalogue source.
func NewFileSource(path string, logger zerolog.Logger) Source {
	return &fileSource{
		path:   path,
		logger: logger.With().Str("component", "catalog-file-source").Logger(),
	}
}

// Load reads and cleans the catalogue CSV. The input file is opened
// read-only and never mutated.
func (s *fileSource) Load(ctx context.Context) (*Table, error) {
	s.logger.Info().Str("file", s.path).Msg("loading catalogue file")

	file, err := os.Open(s.path)
	if err != nil {
		s.logger.Error().Err(err).Str("file", s.path).Msg("failed to open catalogue file")
		return nil, fmt.Errorf("failed to open catalogue file %s: %w", s.path, err)
	}
	defer file.Close()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	products, err := parseCSV(file)
	if err != nil {
		s.logger.Error().Err(err).Str("file", s.path).Msg("failed to parse catalogue file")
		return nil, fmt.Errorf("failed to parse catalogue file %s: %w", s.path, err)
	}

	table := NewTable(products)

	s.logger.Info().
		Str("file", s.path).
		Int("products_loaded", table.Len()).
		Msg("catalogue file loaded successfully")

	return table, nil
}
