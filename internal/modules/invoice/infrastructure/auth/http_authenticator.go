package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPAuthenticator delegates credential checks to a remote identity
// endpoint. The endpoint receives the credentials as JSON and answers
// {"authorized": bool}; any non-200 reply or transport failure is a fault,
// never a rejection.
type HTTPAuthenticator struct {
	endpoint string
	client   *http.Client
}

func NewHTTPAuthenticator(endpoint string) *HTTPAuthenticator {
	return &HTTPAuthenticator{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type authCheckRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

type authCheckResponse struct {
	Authorized bool `json:"authorized"`
}

func (a *HTTPAuthenticator) Authenticate(ctx context.Context, clientID, clientSecret string) (bool, error) {
	body, err := json.Marshal(authCheckRequest{ClientID: clientID, ClientSecret: clientSecret})
	if err != nil {
		return false, fmt.Errorf("encoding auth request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("building auth request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("calling authenticator: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("authenticator returned status %d", resp.StatusCode)
	}

	var decoded authCheckResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return false, fmt.Errorf("decoding auth response: %w", err)
	}
	return decoded.Authorized, nil
}
