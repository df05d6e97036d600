package catalog

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// s3Source implements Source for reading the catalogue CSV from AWS S3.
type s3Source struct {
	client *s3.Client
	bucket string
	key    string
	logger zerolog.Logger
}

// NewS3Source creates an S3-based catalogue source.
func NewS3Source(ctx context.Context, bucket, region, key string, logger zerolog.Logger) (Source, error) {
	logger = logger.With().Str("component", "catalog-s3-source").Logger()

	// Load AWS configuration
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(cfg)

	logger.Info().
		Str("bucket", bucket).
		Str("region", region).
		Str("key", key).
		Msg("S3 catalogue source initialised")

	return &s3Source{
		client: client,
		bucket: bucket,
		key:    key,
		logger: logger,
	}, nil
}

// Load fetches the catalogue CSV object from S3 and cleans it.
func (s *s3Source) Load(ctx context.Context) (*Table, error) {
	s.logger.Info().
		Str("bucket", s.bucket).
		Str("key", s.key).
		Msg("loading catalogue from S3")

	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("bucket", s.bucket).
			Str("key", s.key).
			Msg("failed to get object from S3")
		return nil, fmt.Errorf("failed to get object from S3 (bucket=%s, key=%s): %w", s.bucket, s.key, err)
	}
	defer result.Body.Close()

	products, err := parseCSV(result.Body)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("bucket", s.bucket).
			Str("key", s.key).
			Msg("failed to parse catalogue object")
		return nil, fmt.Errorf("failed to parse catalogue object %s: %w", s.key, err)
	}

	table := NewTable(products)

	s.logger.Info().
		Str("bucket", s.bucket).
		Str("key", s.key).
		Int("products_loaded", table.Len()).
		Msg("catalogue loaded from S3 successfully")

	return table, nil
}
