package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/invopipe/invoice-ingest/internal/modules/invoice/infrastructure/auth"
)

func TestStaticAuthenticator_AcceptsConfiguredCredentials(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	a := auth.NewStaticAuthenticator("client-1", string(hash))

	ok, err := a.Authenticate(context.Background(), "client-1", "s3cret")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestStaticAuthenticator_RejectsWrongSecret(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	a := auth.NewStaticAuthenticator("client-1", string(hash))

	ok, err := a.Authenticate(context.Background(), "client-1", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStaticAuthenticator_RejectsUnknownClient(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	a := auth.NewStaticAuthenticator("client-1", string(hash))

	ok, err := a.Authenticate(context.Background(), "someone-else", "s3cret")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStaticAuthenticator_UnconfiguredIsFault(t *testing.T) {
	a := auth.NewStaticAuthenticator("", "")

	ok, err := a.Authenticate(context.Background(), "client-1", "s3cret")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestStaticAuthenticator_MalformedHashIsFault(t *testing.T) {
	a := auth.NewStaticAuthenticator("client-1", "not-a-bcrypt-hash")

	ok, err := a.Authenticate(context.Background(), "client-1", "s3cret")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestHTTPAuthenticator_Authorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.Write([]byte(`{"authorized": true}`))
	}))
	defer srv.Close()

	a := auth.NewHTTPAuthenticator(srv.URL)
	ok, err := a.Authenticate(context.Background(), "client-1", "s3cret")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHTTPAuthenticator_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"authorized": false}`))
	}))
	defer srv.Close()

	a := auth.NewHTTPAuthenticator(srv.URL)
	ok, err := a.Authenticate(context.Background(), "client-1", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHTTPAuthenticator_UpstreamErrorIsFault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := auth.NewHTTPAuthenticator(srv.URL)
	ok, err := a.Authenticate(context.Background(), "client-1", "s3cret")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestHTTPAuthenticator_UnreachableIsFault(t *testing.T) {
	a := auth.NewHTTPAuthenticator("http://127.0.0.1:1/auth")
	ok, err := a.Authenticate(context.Background(), "client-1", "s3cret")
	assert.Error(t, err)
	assert.False(t, ok)
}
