package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

// DefaultTimeout bounds every resource call so a dead backend cannot
// hang the caller indefinitely.
const DefaultTimeout = 10 * time.Second

// Client bundles the session with the typed resource clients. It is the
// single entry point a front end needs.
type Client struct {
	Session  *CredentialStore
	Items    *ItemClient
	Requests *RequestClient
}

// New creates a Client against the given base URL, persisting session
// state through storage.
func New(baseURL string, storage Storage) *Client {
	httpClient := &http.Client{Timeout: DefaultTimeout}
	session := NewCredentialStore(baseURL, httpClient, storage)
	a := &api{baseURL: baseURL, http: httpClient, session: session}
	return &Client{
		Session:  session,
		Items:    &ItemClient{api: a},
		Requests: &RequestClient{api: a},
	}
}

// api is the shared one-shot request/response plumbing: no retries, no
// caching, the stored token attached verbatim on every call.
type api struct {
	baseURL string
	http    *http.Client
	session *CredentialStore
}

func (a *api) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Buffer
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: encoding body: %v", ErrOperationFailed, err)
		}
		reqBody = bytes.NewBuffer(buf)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+"/api/v1"+path, reqBody)
	if err != nil {
		return fmt.Errorf("%w: building request: %v", ErrOperationFailed, err)
	}
	req.Header.Set("Authorization", a.session.Token())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return fmt.Errorf("%w: timeout on %s %s: %v", ErrOperationFailed, method, path, err)
		}
		return fmt.Errorf("%w: %s %s: %v", ErrOperationFailed, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s %s returned status %d", ErrOperationFailed, method, path, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: decoding response of %s %s: %v", ErrOperationFailed, method, path, err)
		}
	}
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
