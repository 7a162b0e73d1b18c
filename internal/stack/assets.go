package stack

import (
	"embed"
	"fmt"

	"github.com/imamik/stackplan/internal/errdefs"
	"github.com/imamik/stackplan/internal/util/naming"
)

//go:embed assets/*.json
var assets embed.FS

func readAsset(name string) ([]byte, error) {
	raw, err := assets.ReadFile("assets/" + name)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded %s: %w", name, err)
	}
	return raw, nil
}

func loadAsset(name string) (*Document, error) {
	raw, err := readAsset(name)
	if err != nil {
		return nil, err
	}
	return Decode(raw)
}

// ClusterTemplate returns a fresh copy of the base cluster template.
func ClusterTemplate() (*Document, error) {
	return loadAsset("cluster.template.json")
}

// PlaneResources returns the per-plane resources renamed for the group
// with the given title.
func PlaneResources(title string) (map[string]any, error) {
	raw, err := readAsset("plane.template.json")
	if err != nil {
		return nil, err
	}
	return decodeObject([]byte(naming.RenamePlaneTemplate(string(raw), title)))
}

// InstanceSizes returns the instance types the template accepts.
func InstanceSizes(d *Document) ([]string, error) {
	p, err := d.Entry(SectionParameters, "InstanceType")
	if err != nil {
		return nil, err
	}
	values, ok := p["AllowedValues"].([]any)
	if !ok {
		return nil, errdefs.Configuration("InstanceType parameter has no allowed values")
	}
	sizes := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			sizes = append(sizes, s)
		}
	}
	return sizes, nil
}

// DefaultInstanceSizes returns the instance types of the embedded cluster
// template.
func DefaultInstanceSizes() ([]string, error) {
	d, err := ClusterTemplate()
	if err != nil {
		return nil, err
	}
	return InstanceSizes(d)
}
