package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/invopipe/invoice-ingest/internal/modules/invoice/domain"
)

type PgUploadLogRepository struct {
	db *sqlx.DB
}

// NewUploadLogRepository creates the PostgreSQL-backed audit log. It
// implements domain.UploadRecorder.
func NewUploadLogRepository(db *sqlx.DB) *PgUploadLogRepository {
	return &PgUploadLogRepository{db: db}
}

// Record inserts one upload attempt row. CreatedAt is filled in when the
// caller left it zero.
func (r *PgUploadLogRepository) Record(ctx context.Context, rec *domain.UploadRecord) error {
	query := `INSERT INTO invoice_uploads (id, client_id, filename, size_bytes, outcome, storage_key, created_at) VALUES (:id, :client_id, :filename, :size_bytes, :outcome, :storage_key, :created_at)`

	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	_, err := r.db.NamedExecContext(ctx, query, rec)
	return err
}
