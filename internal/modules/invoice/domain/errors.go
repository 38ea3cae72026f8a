package domain

import "errors"

var (
	// Pipeline stage failures. Each validator reports exactly one of these;
	// the orchestrator never lets any other error kind reach the handler.
	ErrNoFileUploaded    = errors.New("no file uploaded")
	ErrUnauthorized      = errors.New("invalid client credentials")
	ErrServerTimeout     = errors.New("upstream timeout")
	ErrInvalidMimeType   = errors.New("declared mime type is not application/pdf")
	ErrInvalidExtension  = errors.New("filename extension is not .pdf")
	ErrInvalidPDFContent = errors.New("content is not a pdf document")
	ErrEncryptedDocument = errors.New("document is encrypted")
	ErrCorruptDocument   = errors.New("document is corrupted")
	ErrFileTooLarge      = errors.New("file exceeds the maximum allowed size")

	// ErrStoreNotImplemented is what the stub archive store returns in
	// deployments where no real backend is wired yet.
	ErrStoreNotImplemented = errors.New("invoice archival not implemented")

	// ErrInternal replaces any unexpected fault before it crosses the
	// module boundary. The original error is logged, never returned.
	ErrInternal = errors.New("internal error")
)

// IsFormatError reports whether err is one of the format-validation
// failures, which all map to the unsupported-format response.
func IsFormatError(err error) bool {
	return errors.Is(err, ErrInvalidMimeType) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidPDFContent)
}
