// Package gigachat implements the OAuth step of the GigaChat API: exchanging
// the user's authorization key for a short-lived access token, parameterized
// by the chosen API scope. The chat completion itself goes through the
// OpenAI-compatible endpoint and is handled by the service layer.
package gigachat

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
)

type TokenSource struct {
	authURL string
	client  *http.Client
}

func NewTokenSource(authURL string, client *http.Client) *TokenSource {
	return &TokenSource{
		authURL: authURL,
		client:  client,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}

// Fetch exchanges credential for an access token within scope. The credential
// is sent as-is in the Basic authorization header, matching what the API
// issues as an authorization key.
func (t *TokenSource) Fetch(ctx context.Context, credential, scope string) (string, error) {
	form := url.Values{"scope": {scope}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.authURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("RqUID", uuid.NewString())
	req.Header.Set("Authorization", "Basic "+credential)

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token request failed: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var tok tokenResponse
	if err := sonic.Unmarshal(body, &tok); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("token response without access_token")
	}
	return tok.AccessToken, nil
}
