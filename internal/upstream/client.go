package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// userIDHeader carries the session identifier on every authenticated call.
// The remote service validates it per request; the client never does.
const userIDHeader = "X-User-ID"

const defaultTimeout = 15 * time.Second

// Client talks to the remote health-record and chat service. All methods
// take a context so an abandoned browser request cancels its upstream call.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New constructs a client for the service at baseURL. A non-positive
// timeout falls back to the default.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// BaseURL reports the configured service origin.
func (client *Client) BaseURL() string {
	return client.baseURL
}

func (client *Client) newRequest(ctx context.Context, method string, path string, userID string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, client.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set(userIDHeader, userID)
	return request, nil
}

// doJSON executes the request and decodes a JSON body into out (when out is
// non-nil). A non-2xx answer becomes an *Error carrying the service's
// `detail` text; any other failure is returned as-is and means no response
// was obtained.
func (client *Client) doJSON(request *http.Request, out any) error {
	response, err := client.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("%s %s: %w", request.Method, request.URL.Path, err)
	}
	defer response.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return newRejectionError(response.StatusCode, payload)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

const maxResponseBytes = 1 << 20
