package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invopipe/invoice-ingest/internal/modules/invoice/domain"
	"github.com/invopipe/invoice-ingest/internal/modules/invoice/infrastructure/persistence/postgres"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(sqlDB, "sqlmock"), mock, func() { _ = sqlDB.Close() }
}

func TestPgUploadLogRepository_Record(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := postgres.NewUploadLogRepository(db)
	ctx := context.Background()

	key := "invoices/abc.pdf"
	rec := &domain.UploadRecord{
		ID:         uuid.New(),
		ClientID:   "client-1",
		Filename:   "invoice.pdf",
		SizeBytes:  1024,
		Outcome:    "accepted",
		StorageKey: &key,
	}
	mock.ExpectExec("INSERT INTO invoice_uploads").WillReturnResult(sqlmock.NewResult(1, 1))
	require.NoError(t, repo.Record(ctx, rec))
	assert.False(t, rec.CreatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgUploadLogRepository_RecordKeepsCreatedAt(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := postgres.NewUploadLogRepository(db)

	at := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	rec := &domain.UploadRecord{ID: uuid.New(), ClientID: "client-1", Outcome: "unauthorized", CreatedAt: at}
	mock.ExpectExec("INSERT INTO invoice_uploads").WillReturnResult(sqlmock.NewResult(1, 1))
	require.NoError(t, repo.Record(context.Background(), rec))
	assert.Equal(t, at, rec.CreatedAt)
}

func TestPgUploadLogRepository_RecordError(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := postgres.NewUploadLogRepository(db)

	mock.ExpectExec("INSERT INTO invoice_uploads").WillReturnError(errors.New("connection reset"))
	err := repo.Record(context.Background(), &domain.UploadRecord{ID: uuid.New(), ClientID: "client-1", Outcome: "internal_error"})
	assert.Error(t, err)
}
