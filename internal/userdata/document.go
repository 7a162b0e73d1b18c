package userdata

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/imamik/stackplan/internal/errdefs"
)

const (
	// Header lines prepended to the rendered document.
	headerCloudConfig = "#cloud-config"
	headerDocument    = "---"

	// DiscoveryPlaceholder marks an unset etcd discovery URL.
	DiscoveryPlaceholder = "#DISCOVERY_URL"

	defaultDataDir = "ETCD_HOST_DATA_DIR=/var/lib/etcd2"
	volumeDataDir  = "ETCD_HOST_DATA_DIR=/media/etcd"
)

// Document is a parsed cloud-config.
type Document struct {
	data map[string]any
}

// Parse decodes a cloud-config document.
func Parse(raw []byte) (*Document, error) {
	var data map[string]any
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, errdefs.Configuration("invalid user-data: %v", err)
	}
	if data == nil {
		return nil, errdefs.Configuration("user-data document is empty")
	}
	return &Document{data: data}, nil
}

// section returns the nested mapping at path, failing when it is missing.
func (d *Document) section(path ...string) (map[string]any, error) {
	cur := d.data
	for i, key := range path {
		next, ok := cur[key].(map[string]any)
		if !ok {
			return nil, errdefs.Configuration("user-data has no %s section", strings.Join(path[:i+1], "."))
		}
		cur = next
	}
	return cur, nil
}

// Units returns the names of the document's units in order.
func (d *Document) Units() []string {
	coreos, err := d.section("coreos")
	if err != nil {
		return nil
	}
	list, _ := coreos["units"].([]any)
	names := make([]string, 0, len(list))
	for _, u := range list {
		if m, ok := u.(map[string]any); ok {
			name, _ := m["name"].(string)
			names = append(names, name)
		}
	}
	return names
}

// Metadata returns the fleet metadata tag, and whether it is present.
func (d *Document) Metadata() (string, bool) {
	fleet, err := d.section("coreos", "fleet")
	if err != nil {
		return "", false
	}
	v, ok := fleet["metadata"].(string)
	return v, ok
}

// EtcdProxy returns the etcd2 proxy setting.
func (d *Document) EtcdProxy() string {
	etcd, err := d.section("coreos", "etcd2")
	if err != nil {
		return ""
	}
	v, _ := etcd["proxy"].(string)
	return v
}

// DiscoveryURL returns the etcd discovery URL.
func (d *Document) DiscoveryURL() string {
	etcd, err := d.section("coreos", "etcd2")
	if err != nil {
		return ""
	}
	v, _ := etcd["discovery"].(string)
	return v
}

// SetDiscoveryURL sets the etcd discovery URL.
func (d *Document) SetDiscoveryURL(url string) error {
	etcd, err := d.section("coreos", "etcd2")
	if err != nil {
		return err
	}
	etcd["discovery"] = url
	return nil
}

// Render serializes the document back to YAML, pointing the etcd host
// data directory at the dedicated volume mount.
func (d *Document) Render() (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d.data); err != nil {
		return "", fmt.Errorf("failed to encode user-data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("failed to encode user-data: %w", err)
	}
	return strings.ReplaceAll(buf.String(), defaultDataDir, volumeDataDir), nil
}

// Bytes renders the document without header lines.
func (d *Document) Bytes() ([]byte, error) {
	s, err := d.Render()
	return []byte(s), err
}

// Payload wraps rendered user-data into the Fn::Join form embedded in a
// launch configuration: a newline separator and the header followed by
// the document lines.
func Payload(rendered string) []any {
	lines := strings.Split(rendered, "\n")
	parts := make([]any, 0, len(lines)+2)
	parts = append(parts, headerCloudConfig, headerDocument)
	for _, l := range lines {
		parts = append(parts, l)
	}
	return []any{"\n", parts}
}
