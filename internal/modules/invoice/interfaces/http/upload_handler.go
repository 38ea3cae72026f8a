package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/invopipe/invoice-ingest/internal/modules/invoice/application"
	"github.com/invopipe/invoice-ingest/internal/modules/invoice/domain"
)

// multipartMemoryBytes caps how much of the form ParseMultipartForm keeps in
// memory before spilling to disk.
const multipartMemoryBytes = 32 << 20

// IngestService defines the pipeline operation the handler depends on.
type IngestService interface {
	Ingest(ctx context.Context, req application.IngestRequest) (*domain.Receipt, error)
}

type UploadHandler struct {
	service  IngestService
	maxBytes int64
}

func NewUploadHandler(service IngestService, maxBytes int64) *UploadHandler {
	if maxBytes <= 0 {
		maxBytes = application.DefaultMaxUploadBytes
	}
	return &UploadHandler{service: service, maxBytes: maxBytes}
}

// Upload handles POST /invoices/upload. The multipart body carries the file
// plus client_id/client_secret form fields; simulateTimeout=true in the
// query short-circuits the pipeline for timeout-path testing.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	// Allow some slack over the document limit for the multipart framing
	// and credential fields; the size validator owns the exact bound.
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+(1<<20))
	if err := r.ParseMultipartForm(multipartMemoryBytes); err != nil {
		log.Printf("[UploadHandler.Upload] ParseMultipartForm error: %v", err)
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			http.Error(w, `{"error": "request body too large"}`, http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, `{"error": "invalid multipart body"}`, http.StatusBadRequest)
		return
	}

	req := application.IngestRequest{
		Credentials: domain.Credentials{
			ClientID:     r.FormValue("client_id"),
			ClientSecret: r.FormValue("client_secret"),
		},
		SimulateTimeout: r.URL.Query().Get("simulateTimeout") == "true",
	}

	file, header, err := r.FormFile("file")
	switch err {
	case nil:
		defer file.Close()
		content, readErr := io.ReadAll(file)
		if readErr != nil {
			log.Printf("[UploadHandler.Upload] Reading file part failed: %v", readErr)
			http.Error(w, `{"error": "internal error"}`, http.StatusInternalServerError)
			return
		}
		req.File = &domain.UploadedFile{
			Content:          content,
			DeclaredMimeType: header.Header.Get("Content-Type"),
			OriginalFilename: header.Filename,
		}
	case http.ErrMissingFile:
		// Leave req.File nil; the pipeline reports the missing file as its
		// first stage, before touching the authenticator.
	default:
		log.Printf("[UploadHandler.Upload] FormFile error: %v", err)
		http.Error(w, `{"error": "internal error"}`, http.StatusInternalServerError)
		return
	}

	receipt, err := h.service.Ingest(r.Context(), req)
	if err != nil {
		writeIngestError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(receipt); err != nil {
		log.Printf("[UploadHandler.Upload] Response encode error: %v", err)
	}
}

// writeIngestError maps each pipeline sentinel to its status code. Anything
// unrecognized is reported as a plain internal error.
func writeIngestError(w http.ResponseWriter, err error) {
	switch {
	case err == domain.ErrNoFileUploaded:
		http.Error(w, `{"error": "no file uploaded"}`, http.StatusBadRequest)
	case err == domain.ErrUnauthorized:
		http.Error(w, `{"error": "invalid client credentials"}`, http.StatusUnauthorized)
	case err == domain.ErrServerTimeout:
		http.Error(w, `{"error": "upstream timeout"}`, http.StatusGatewayTimeout)
	case domain.IsFormatError(err):
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusUnsupportedMediaType)
	case err == domain.ErrEncryptedDocument:
		http.Error(w, `{"error": "document is encrypted"}`, http.StatusBadRequest)
	case err == domain.ErrCorruptDocument:
		http.Error(w, `{"error": "document is corrupted"}`, http.StatusBadRequest)
	case err == domain.ErrFileTooLarge:
		http.Error(w, `{"error": "file exceeds the maximum allowed size"}`, http.StatusRequestEntityTooLarge)
	case err == domain.ErrStoreNotImplemented:
		http.Error(w, `{"error": "invoice archival not implemented"}`, http.StatusNotImplemented)
	default:
		http.Error(w, `{"error": "internal error"}`, http.StatusInternalServerError)
	}
}
