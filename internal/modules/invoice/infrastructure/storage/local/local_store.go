package local

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopipe/invoice-ingest/internal/modules/invoice/domain"
)

// Store archives invoices on the local filesystem. Meant for development
// deployments; the returned location is a URL under baseURL.
type Store struct {
	basePath string
	baseURL  string
}

func NewStore(basePath, baseURL string) (*Store, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &Store{basePath: basePath, baseURL: baseURL}, nil
}

// Persist writes the invoice bytes under key and returns its public URL.
func (s *Store) Persist(ctx context.Context, key string, file *domain.UploadedFile) (string, error) {
	fullPath := filepath.Join(s.basePath, key)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(fullPath, file.Content, 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return fmt.Sprintf("%s/%s", s.baseURL, key), nil
}
