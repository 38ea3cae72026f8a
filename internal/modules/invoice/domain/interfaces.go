package domain

import "context"

// Authenticator checks client credentials against an external identity
// provider. The boolean is the verdict; a non-nil error means the provider
// itself faulted and the caller must not treat the request as authorized.
type Authenticator interface {
	Authenticate(ctx context.Context, clientID, clientSecret string) (bool, error)
}

// ArchiveStore persists a validated invoice. Implementations return the
// location at which the document can later be retrieved.
type ArchiveStore interface {
	Persist(ctx context.Context, key string, file *UploadedFile) (string, error)
}

// UploadRecorder writes the audit-log entry for a finished upload attempt.
// Recording is best-effort: the pipeline outcome never depends on it.
type UploadRecorder interface {
	Record(ctx context.Context, rec *UploadRecord) error
}

// DuplicateTracker remembers content fingerprints of accepted invoices so
// repeated submissions can be observed. Seen reports whether the
// fingerprint was already tracked and marks it either way.
type DuplicateTracker interface {
	Seen(ctx context.Context, fingerprint string) (bool, error)
}
