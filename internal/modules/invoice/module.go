package invoice

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/invopipe/invoice-ingest/internal/modules/invoice/application"
	"github.com/invopipe/invoice-ingest/internal/modules/invoice/domain"
	"github.com/invopipe/invoice-ingest/internal/modules/invoice/infrastructure/auth"
	"github.com/invopipe/invoice-ingest/internal/modules/invoice/infrastructure/dedup"
	"github.com/invopipe/invoice-ingest/internal/modules/invoice/infrastructure/persistence/postgres"
	local_store "github.com/invopipe/invoice-ingest/internal/modules/invoice/infrastructure/storage/local"
	s3_store "github.com/invopipe/invoice-ingest/internal/modules/invoice/infrastructure/storage/s3"
	stub_store "github.com/invopipe/invoice-ingest/internal/modules/invoice/infrastructure/storage/stub"
	invoice_http "github.com/invopipe/invoice-ingest/internal/modules/invoice/interfaces/http"
	"github.com/invopipe/invoice-ingest/internal/shared/infrastructure/config"
)

// Module represents the Invoice module
type Module struct {
	service *application.UploadService
	handler *invoice_http.UploadHandler
}

// NewModule creates and initializes the Invoice module. db and redisClient
// are optional: nil disables the audit log and the duplicate tracker.
func NewModule(ctx context.Context, cfg config.Config, db *sqlx.DB, redisClient *redis.Client) (*Module, error) {
	var authenticator domain.Authenticator
	if cfg.Auth.Endpoint != "" {
		authenticator = auth.NewHTTPAuthenticator(cfg.Auth.Endpoint)
	} else {
		authenticator = auth.NewStaticAuthenticator(cfg.Auth.ClientID, cfg.Auth.ClientSecretHash)
	}

	store, err := newArchiveStore(ctx, cfg.Storage)
	if err != nil {
		return nil, err
	}

	var recorder domain.UploadRecorder
	if db != nil {
		recorder = postgres.NewUploadLogRepository(db)
	}

	var duplicates domain.DuplicateTracker
	if redisClient != nil {
		duplicates = dedup.NewRedisTracker(redisClient, cfg.Redis.Retention)
	}

	service := application.NewUploadService(authenticator, store, recorder, duplicates,
		application.NewSizeValidator(cfg.Upload.MaxBytes))
	handler := invoice_http.NewUploadHandler(service, cfg.Upload.MaxBytes)

	return &Module{service: service, handler: handler}, nil
}

func newArchiveStore(ctx context.Context, cfg config.StorageConfig) (domain.ArchiveStore, error) {
	switch cfg.Driver {
	case "s3":
		store, err := s3_store.NewStore(ctx, s3_store.Config{
			BucketName: cfg.S3BucketName,
			Region:     cfg.S3Region,
			Endpoint:   cfg.S3Endpoint,
			AccessKey:  cfg.S3AccessKey,
			SecretKey:  cfg.S3SecretKey,
			UseSSL:     cfg.S3UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3 archive store: %w", err)
		}
		return store, nil
	case "local":
		store, err := local_store.NewStore(cfg.LocalPath, cfg.LocalBaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize local archive store: %w", err)
		}
		return store, nil
	case "stub":
		return stub_store.NewStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// Service returns the upload service for use by other modules
func (m *Module) Service() *application.UploadService {
	return m.service
}

// HTTPHandler returns the HTTP handler for the invoice module
func (m *Module) HTTPHandler() *invoice_http.UploadHandler {
	return m.handler
}
