package application

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/invopipe/invoice-ingest/internal/modules/invoice/domain"
)

// MimeTypePDF is the only declared content type the pipeline accepts.
const MimeTypePDF = "application/pdf"

// pdfMagic is the file signature every PDF document starts with.
var pdfMagic = []byte("%PDF-")

// ValidateFormat checks declared MIME type, filename extension and the
// magic-byte header, in that order, reporting the first mismatch. Only the
// header prefix is inspected here; structural checks live elsewhere.
func ValidateFormat(content []byte, declaredMimeType, filename string) error {
	if declaredMimeType != MimeTypePDF {
		return domain.ErrInvalidMimeType
	}
	if strings.ToLower(filepath.Ext(filename)) != ".pdf" {
		return domain.ErrInvalidExtension
	}
	if !bytes.HasPrefix(content, pdfMagic) {
		return domain.ErrInvalidPDFContent
	}
	return nil
}
