// Package etcd requests discovery tokens for bootstrapping etcd clusters.
package etcd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/imamik/stackplan/internal/errdefs"
)

// DiscoveryEndpoint is the public etcd discovery service.
const DiscoveryEndpoint = "https://discovery.etcd.io"

// Client requests new discovery URLs.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a client for the public discovery service.
func NewClient() *Client {
	return NewClientWithEndpoint(DiscoveryEndpoint)
}

// NewClientWithEndpoint creates a client with a custom endpoint (for testing).
func NewClientWithEndpoint(endpoint string) *Client {
	return &Client{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewDiscoveryURL requests a token for a cluster of size members.
func (c *Client) NewDiscoveryURL(ctx context.Context, size int) (string, error) {
	if size < 1 {
		return "", errdefs.Configuration("discovery cluster size must be at least 1, got %d", size)
	}

	endpoint := fmt.Sprintf("%s/new?size=%d", c.endpoint, size)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errdefs.ExternalCall(err, "failed to request discovery URL")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", errdefs.ExternalCall(nil, "discovery service returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errdefs.ExternalCall(err, "failed to read discovery URL")
	}

	token := strings.TrimSpace(string(body))
	if u, err := url.Parse(token); err != nil || u.Scheme == "" || u.Host == "" {
		return "", errdefs.ExternalCall(nil, "discovery service returned malformed URL %q", token)
	}
	return token, nil
}
