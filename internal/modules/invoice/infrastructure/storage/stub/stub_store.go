package stub

import (
	"context"
	"log"

	"github.com/invopipe/invoice-ingest/internal/modules/invoice/domain"
)

// Store is the archive collaborator for deployments without a backing
// store. Every persist call reports not-implemented, which the HTTP layer
// surfaces as 501 — the documented terminal success of the current
// deployment: the document passed the full pipeline and was handed off.
type Store struct{}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Persist(ctx context.Context, key string, file *domain.UploadedFile) (string, error) {
	log.Printf("[stub.Persist] Validated invoice %s (%d bytes) reached the archive hand-off", file.OriginalFilename, file.Size())
	return "", domain.ErrStoreNotImplemented
}
