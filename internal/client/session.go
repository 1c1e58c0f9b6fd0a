package client

import (
	"context"
	"fmt"
	"net/http"

	"inventory_portal/internal/utils"
)

const (
	tokenKey    = "token"
	usernameKey = "username"
)

// CredentialStore owns the single session: the opaque token and the
// username it was built from. Absence of a token is the sole
// "logged out" signal.
type CredentialStore struct {
	baseURL string
	http    *http.Client
	storage Storage
}

// NewCredentialStore creates a CredentialStore persisting through the
// given storage.
func NewCredentialStore(baseURL string, httpClient *http.Client, storage Storage) *CredentialStore {
	return &CredentialStore{baseURL: baseURL, http: httpClient, storage: storage}
}

// Login exchanges the credentials with the backend. The token is a
// reversible encoding of username:secret and doubles as the
// Authorization header for every later call. A rejected exchange
// surfaces ErrAuthRejected; nothing is persisted on failure.
func (s *CredentialStore) Login(ctx context.Context, username, secret string) error {
	token := utils.EncodeBasicToken(username, secret)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/api/v1/basicauth", nil)
	if err != nil {
		return fmt.Errorf("%w: building auth request: %v", ErrOperationFailed, err)
	}
	req.Header.Set("Authorization", token)

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: auth request: %v", ErrOperationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ErrAuthRejected
	}

	s.storage.Set(tokenKey, token)
	s.storage.Set(usernameKey, username)
	return nil
}

// Logout clears all session state. Safe to call any number of times.
func (s *CredentialStore) Logout() {
	s.storage.Delete(tokenKey)
	s.storage.Delete(usernameKey)
}

// IsAuthenticated reports whether a token is currently persisted.
func (s *CredentialStore) IsAuthenticated() bool {
	return s.storage.Get(tokenKey) != ""
}

// Token returns the persisted token, empty when logged out.
func (s *CredentialStore) Token() string {
	return s.storage.Get(tokenKey)
}

// Username returns the persisted username, empty when logged out.
func (s *CredentialStore) Username() string {
	return s.storage.Get(usernameKey)
}
