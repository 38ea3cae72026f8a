package s3

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/invopipe/invoice-ingest/internal/modules/invoice/application"
	"github.com/invopipe/invoice-ingest/internal/modules/invoice/domain"
)

// Config holds configuration for S3/MinIO archival
type Config struct {
	BucketName string
	Region     string
	Endpoint   string // Internal endpoint (e.g., minio:9000)
	AccessKey  string
	SecretKey  string
	UseSSL     bool
}

// Store archives validated invoices in an S3 (or MinIO) bucket.
type Store struct {
	client *s3.Client
	config Config
}

// NewStore creates the S3 archive store.
func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.BucketName == "" {
		return nil, fmt.Errorf("bucket name is required")
	}

	var awsCfg aws.Config
	var err error

	if cfg.Endpoint != "" {
		// MinIO / LocalStack Configuration
		awsCfg, err = config.LoadDefaultConfig(ctx,
			config.WithRegion(cfg.Region),
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
		)
	} else {
		// Standard AWS S3 Configuration
		awsCfg, err = config.LoadDefaultConfig(ctx, config.WithRegion(cfg.Region))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			endpoint := cfg.Endpoint
			if !cfg.UseSSL && !hasHTTPPrefix(endpoint) {
				endpoint = "http://" + endpoint
			}
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true // Required for MinIO
		}
	})

	return &Store{client: client, config: cfg}, nil
}

// Persist uploads the invoice bytes and returns the object URL.
func (s *Store) Persist(ctx context.Context, key string, file *domain.UploadedFile) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(file.Content),
		ContentType: aws.String(application.MimeTypePDF),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to s3: %w", err)
	}

	if s.config.Endpoint != "" {
		endpoint := s.config.Endpoint
		if !s.config.UseSSL && !hasHTTPPrefix(endpoint) {
			endpoint = "http://" + endpoint
		}
		return fmt.Sprintf("%s/%s/%s", endpoint, s.config.BucketName, key), nil
	}

	// S3: https://bucket.s3.region.amazonaws.com/folder/file.pdf
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.config.BucketName, s.config.Region, key), nil
}

func hasHTTPPrefix(endpoint string) bool {
	return strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://")
}
