package application

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/invopipe/invoice-ingest/internal/modules/invoice/domain"
)

var uploadOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "invoice_upload_outcomes_total",
	Help: "Terminal outcomes of invoice upload attempts.",
}, []string{"outcome"})

// IngestRequest is one upload attempt as seen by the pipeline.
type IngestRequest struct {
	File        *domain.UploadedFile
	Credentials domain.Credentials

	// SimulateTimeout short-circuits the pipeline with a timeout outcome
	// before any validator runs. Test hook for exercising the 504 path,
	// never set by production clients.
	SimulateTimeout bool
}

// UploadService sequences the validation pipeline for one invoice upload:
// file presence, authentication, format, encryption, integrity, size, then
// hand-off to the archive store. The first failing stage is terminal.
type UploadService struct {
	authenticator domain.Authenticator
	store         domain.ArchiveStore
	recorder      domain.UploadRecorder
	duplicates    domain.DuplicateTracker
	sizeValidator SizeValidator
}

// NewUploadService creates the orchestrator. recorder and duplicates are
// optional; pass nil to disable audit logging or duplicate tracking.
func NewUploadService(
	authenticator domain.Authenticator,
	store domain.ArchiveStore,
	recorder domain.UploadRecorder,
	duplicates domain.DuplicateTracker,
	sizeValidator SizeValidator,
) *UploadService {
	return &UploadService{
		authenticator: authenticator,
		store:         store,
		recorder:      recorder,
		duplicates:    duplicates,
		sizeValidator: sizeValidator,
	}
}

// Ingest runs the pipeline. On success it returns the archive receipt; on
// failure it returns one of the domain sentinel errors. Unexpected faults
// from collaborators are logged and remapped to domain.ErrInternal so no
// internal detail leaks to the caller.
func (s *UploadService) Ingest(ctx context.Context, req IngestRequest) (*domain.Receipt, error) {
	receipt, err := s.run(ctx, req)
	s.finish(ctx, req, receipt, err)
	return receipt, err
}

func (s *UploadService) run(ctx context.Context, req IngestRequest) (*domain.Receipt, error) {
	if req.File == nil || len(req.File.Content) == 0 {
		return nil, domain.ErrNoFileUploaded
	}

	ok, err := s.authenticator.Authenticate(ctx, req.Credentials.ClientID, req.Credentials.ClientSecret)
	if err != nil {
		log.Printf("[UploadService.Ingest] Authenticator fault: %v", err)
		return nil, domain.ErrInternal
	}
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if req.SimulateTimeout {
		return nil, domain.ErrServerTimeout
	}

	if err := ValidateFormat(req.File.Content, req.File.DeclaredMimeType, req.File.OriginalFilename); err != nil {
		return nil, err
	}
	if IsEncrypted(req.File.Content) {
		return nil, domain.ErrEncryptedDocument
	}
	if !CheckIntegrity(req.File.Content) {
		return nil, domain.ErrCorruptDocument
	}
	if err := s.sizeValidator.Validate(req.File.Content); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("invoices/%s.pdf", uuid.New().String())
	location, err := s.store.Persist(ctx, key, req.File)
	if err != nil {
		if err == domain.ErrStoreNotImplemented {
			return nil, err
		}
		log.Printf("[UploadService.Ingest] Archive store fault: %v", err)
		return nil, domain.ErrInternal
	}

	return &domain.Receipt{
		ID:         uuid.New(),
		StorageKey: key,
		Location:   location,
		SizeBytes:  req.File.Size(),
		ReceivedAt: time.Now(),
	}, nil
}

// finish handles the best-effort side work once the outcome is terminal:
// outcome metric, duplicate observation, audit record. None of it can
// change the pipeline result.
func (s *UploadService) finish(ctx context.Context, req IngestRequest, receipt *domain.Receipt, resultErr error) {
	outcome := outcomeLabel(resultErr)
	uploadOutcomes.WithLabelValues(outcome).Inc()

	if s.duplicates != nil && receipt != nil {
		seen, err := s.duplicates.Seen(ctx, Fingerprint(req.File.Content))
		if err != nil {
			log.Printf("[UploadService.Ingest] Duplicate tracker fault: %v", err)
		} else if seen {
			log.Printf("[UploadService.Ingest] Duplicate invoice content for %s", req.File.OriginalFilename)
		}
	}

	if s.recorder == nil {
		return
	}
	rec := &domain.UploadRecord{
		ID:        uuid.New(),
		ClientID:  req.Credentials.ClientID,
		Outcome:   outcome,
		CreatedAt: time.Now(),
	}
	if req.File != nil {
		rec.Filename = req.File.OriginalFilename
		rec.SizeBytes = req.File.Size()
	}
	if receipt != nil {
		rec.StorageKey = &receipt.StorageKey
	}
	if err := s.recorder.Record(ctx, rec); err != nil {
		log.Printf("[UploadService.Ingest] Audit record failed: %v", err)
	}
}

func outcomeLabel(err error) string {
	switch err {
	case nil:
		return "accepted"
	case domain.ErrNoFileUploaded:
		return "no_file"
	case domain.ErrUnauthorized:
		return "unauthorized"
	case domain.ErrServerTimeout:
		return "simulated_timeout"
	case domain.ErrInvalidMimeType:
		return "invalid_mime_type"
	case domain.ErrInvalidExtension:
		return "invalid_extension"
	case domain.ErrInvalidPDFContent:
		return "invalid_pdf_content"
	case domain.ErrEncryptedDocument:
		return "encrypted"
	case domain.ErrCorruptDocument:
		return "corrupt"
	case domain.ErrFileTooLarge:
		return "too_large"
	case domain.ErrStoreNotImplemented:
		return "store_not_implemented"
	default:
		return "internal_error"
	}
}
