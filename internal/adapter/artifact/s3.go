package artifact

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/sindhipoetry/backend/internal/config"
)

// S3Store keeps the artifact in an S3 (or S3-compatible) bucket.
type S3Store struct {
	client *s3.Client
	bucket string
	key    string
	log    *slog.Logger
}

// NewS3Store creates an S3Store. Requests are signed with the static
// credentials from cfg; without them they are sent unsigned.
func NewS3Store(cfg config.ArtifactConfig, logger *slog.Logger) *S3Store {
	opts := s3.Options{
		Region:       cfg.Region,
		UsePathStyle: cfg.PathStyle,
		// S3-compatible stores (MinIO, R2) reject the default trailing checksums.
		RequestChecksumCalculation: aws.RequestChecksumCalculationWhenRequired,
		ResponseChecksumValidation: aws.ResponseChecksumValidationWhenRequired,
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}
	if cfg.AccessKeyID != "" {
		opts.Credentials = aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		)
	}

	return &S3Store{
		client: s3.New(opts),
		bucket: cfg.Bucket,
		key:    cfg.Key,
		log:    logger.With("adapter", "artifact_s3"),
	}
}

// Load downloads the artifact. A missing object is an empty lookup.
func (s *S3Store) Load(ctx context.Context) (map[string]string, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("artifact: get s3://%s/%s: %w", s.bucket, s.key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("artifact: read s3 body: %w", err)
	}
	return decode(data)
}

// Save uploads the artifact, replacing the previous object.
func (s *S3Store) Save(ctx context.Context, lookup map[string]string) error {
	data, err := encode(lookup)
	if err != nil {
		return err
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(s.key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("artifact: put s3://%s/%s: %w", s.bucket, s.key, err)
	}

	s.log.InfoContext(ctx, "artifact uploaded",
		slog.String("bucket", s.bucket),
		slog.String("key", s.key),
		slog.Int("entries", len(lookup)),
	)
	return nil
}
