package domain

import (
	"time"

	"github.com/google/uuid"
)

// UploadedFile holds one invoice document as received from the client.
// It is never mutated after construction; every validator reads the same
// bytes the handler captured from the multipart part.
type UploadedFile struct {
	Content          []byte
	DeclaredMimeType string
	OriginalFilename string
}

// Size returns the byte length of the document content.
func (f *UploadedFile) Size() int64 {
	return int64(len(f.Content))
}

// Credentials carry the client identity for the external authenticator.
// They are an opaque pass-through; the pipeline never interprets them.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// Receipt is returned when a validated invoice was handed to the archive
// store and the store accepted it.
type Receipt struct {
	ID         uuid.UUID `json:"id"`
	StorageKey string    `json:"storage_key"`
	Location   string    `json:"location"`
	SizeBytes  int64     `json:"size_bytes"`
	ReceivedAt time.Time `json:"received_at"`
}

// UploadRecord is the audit-log row written for every upload attempt,
// successful or not.
type UploadRecord struct {
	ID         uuid.UUID `db:"id"`
	ClientID   string    `db:"client_id"`
	Filename   string    `db:"filename"`
	SizeBytes  int64     `db:"size_bytes"`
	Outcome    string    `db:"outcome"`
	StorageKey *string   `db:"storage_key"`
	CreatedAt  time.Time `db:"created_at"`
}
