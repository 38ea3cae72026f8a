package gateway_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invopipe/invoice-ingest/internal/gateway"
	"github.com/invopipe/invoice-ingest/internal/modules/invoice/application"
	"github.com/invopipe/invoice-ingest/internal/modules/invoice/domain"
	invoice_http "github.com/invopipe/invoice-ingest/internal/modules/invoice/interfaces/http"
)

type stubIngestService struct{}

func (stubIngestService) Ingest(ctx context.Context, req application.IngestRequest) (*domain.Receipt, error) {
	return nil, domain.ErrNoFileUploaded
}

func newTestHandler() http.Handler {
	return gateway.SetupRoutes(gateway.RouterConfig{
		UploadHandler:  invoice_http.NewUploadHandler(stubIngestService{}, 0),
		AllowedOrigins: "*",
	})
}

func TestRoutes_Health(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestRoutes_Metrics(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_UploadRegistered(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/invoices/upload", nil)
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	newTestHandler().ServeHTTP(rec, req)

	// The route exists; the empty body fails multipart parsing, not routing.
	require.NotEqual(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_UploadRejectsGet(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/invoices/upload", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
