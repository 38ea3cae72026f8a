package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// StaticAuthenticator verifies credentials against a single client id and a
// bcrypt hash of its secret, both taken from configuration. Used in
// development and single-tenant deployments where no identity provider is
// reachable.
type StaticAuthenticator struct {
	clientID   string
	secretHash []byte
}

func NewStaticAuthenticator(clientID, secretBcryptHash string) *StaticAuthenticator {
	return &StaticAuthenticator{
		clientID:   clientID,
		secretHash: []byte(secretBcryptHash),
	}
}

// Authenticate compares the presented credentials. A wrong id or secret is a
// clean rejection; a malformed configured hash is a fault.
func (a *StaticAuthenticator) Authenticate(ctx context.Context, clientID, clientSecret string) (bool, error) {
	if a.clientID == "" || len(a.secretHash) == 0 {
		return false, fmt.Errorf("static authenticator is not configured")
	}
	if clientID != a.clientID {
		return false, nil
	}

	err := bcrypt.CompareHashAndPassword(a.secretHash, []byte(clientSecret))
	if err == bcrypt.ErrMismatchedHashAndPassword {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("comparing client secret: %w", err)
	}
	return true, nil
}
