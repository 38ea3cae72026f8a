package application

import "github.com/invopipe/invoice-ingest/internal/modules/invoice/domain"

// DefaultMaxUploadBytes is the stock invoice size cap (20 MiB).
const DefaultMaxUploadBytes = 20 * 1024 * 1024

// SizeValidator enforces a byte-length bound. The limit is carried per
// instance instead of a package global so concurrent pipelines with
// different configurations stay independent.
type SizeValidator struct {
	maxBytes int64
}

// NewSizeValidator creates a size validator. Non-positive limits fall back
// to DefaultMaxUploadBytes.
func NewSizeValidator(maxBytes int64) SizeValidator {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	return SizeValidator{maxBytes: maxBytes}
}

// MaxBytes returns the configured limit.
func (v SizeValidator) MaxBytes() int64 {
	return v.maxBytes
}

// Validate passes content of exactly the limit and fails anything larger.
func (v SizeValidator) Validate(content []byte) error {
	if int64(len(content)) > v.maxBytes {
		return domain.ErrFileTooLarge
	}
	return nil
}
