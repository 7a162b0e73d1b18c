// Package coreos fetches CoreOS AMI catalogs from the release servers.
package coreos

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/imamik/stackplan/internal/errdefs"
)

const (
	// ReleaseEndpoint is the default release server. "{channel}" is
	// replaced by the requested release channel.
	ReleaseEndpoint = "https://{channel}.release.core-os.net"

	catalogPath = "/amd64-usr/%s/coreos_production_ami_all.json"
)

// AMI holds the image ids of one region.
type AMI struct {
	PV  string `json:"PV"`
	HVM string `json:"HVM"`
}

// Catalog maps a region name to its images.
type Catalog map[string]AMI

// Client fetches AMI catalogs.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a client for the public release servers.
func NewClient() *Client {
	return NewClientWithEndpoint(ReleaseEndpoint)
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

// CatalogURL returns the catalog location for a channel and version.
func (c *Client) CatalogURL(channel, version string) string {
	base := strings.ReplaceAll(c.endpoint, "{channel}", channel)
	return base + fmt.Sprintf(catalogPath, version)
}

// FetchAMIs fetches the AMI catalog of a release.
func (c *Client) FetchAMIs(ctx context.Context, channel, version string) (Catalog, error) {
	url := c.CatalogURL(channel, version)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errdefs.ExternalCall(err, "failed to fetch AMI catalog %s", url)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errdefs.ExternalCall(nil, "the URL %s is invalid: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errdefs.ExternalCall(err, "failed to read AMI catalog")
	}

	return parseCatalog(body, url)
}

type catalogResponse struct {
	AMIs []struct {
		Name string `json:"name"`
		PV   string `json:"pv"`
		HVM  string `json:"hvm"`
	} `json:"amis"`
}

func parseCatalog(data []byte, url string) (Catalog, error) {
	var resp catalogResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, errdefs.ExternalCall(err, "the URL %s is invalid", url)
	}
	if len(resp.AMIs) == 0 {
		return nil, errdefs.ExternalCall(nil, "the URL %s lists no AMIs", url)
	}

	catalog := make(Catalog, len(resp.AMIs))
	for _, a := range resp.AMIs {
		catalog[a.Name] = AMI{PV: a.PV, HVM: a.HVM}
	}
	return catalog, nil
}

// Mapping converts the catalog into a template mappings section.
func (c Catalog) Mapping() map[string]any {
	out := make(map[string]any, len(c))
	for region, ami := range c {
		out[region] = map[string]any{"PV": ami.PV, "HVM": ami.HVM}
	}
	return out
}
