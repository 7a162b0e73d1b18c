package userdata

import (
	"strings"

	"github.com/imamik/stackplan/internal/errdefs"
	"github.com/imamik/stackplan/internal/planes"
)

// Decorate prepends units to the document's unit list, sets the fleet
// metadata for the member planes and enables etcd proxy mode for the proxy
// role. Planes without a metadata tag are ignored; when none remain the
// metadata field is removed entirely.
//
// A document is decorated at most once: decorating a document whose unit
// list already starts with the bootstrap units is rejected.
func Decorate(d *Document, units []Unit, members []planes.Plane, role planes.Role) error {
	coreos, err := d.section("coreos")
	if err != nil {
		return err
	}
	fleet, err := d.section("coreos", "fleet")
	if err != nil {
		return err
	}
	etcd, err := d.section("coreos", "etcd2")
	if err != nil {
		return err
	}

	existing, _ := coreos["units"].([]any)
	if len(units) > 0 && alreadyDecorated(existing, units[0].Name) {
		return errdefs.Configuration("user-data already starts with unit %s", units[0].Name)
	}

	list := make([]any, 0, len(units)+len(existing))
	for _, u := range units {
		list = append(list, u.toMap())
	}
	coreos["units"] = append(list, existing...)

	var tags []string
	for _, p := range members {
		if tag := p.MetadataTag(); tag != "" {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		delete(fleet, "metadata")
	} else {
		fleet["metadata"] = strings.Join(tags, ",")
	}

	if role == planes.RoleProxy {
		etcd["proxy"] = "on"
	}

	return nil
}

func alreadyDecorated(existing []any, first string) bool {
	if len(existing) == 0 {
		return false
	}
	m, ok := existing[0].(map[string]any)
	return ok && m["name"] == first
}

// Decorator renders decorated user-data for node groups from a shared
// base document.
type Decorator struct {
	base      []byte
	units     []Unit
	discovery string
}

// NewDecorator creates a decorator over base. A nil base selects the
// embedded document.
func NewDecorator(base []byte) (*Decorator, error) {
	if base == nil {
		base = BaseDocument()
	}
	if _, err := Parse(base); err != nil {
		return nil, err
	}
	units, err := Units()
	if err != nil {
		return nil, err
	}
	return &Decorator{base: base, units: units}, nil
}

// SetDiscoveryURL makes every rendered document join the etcd cluster
// through url. An empty url keeps the base document's value.
func (dec *Decorator) SetDiscoveryURL(url string) {
	dec.discovery = url
}

// ForGroup returns the rendered user-data for a node group.
func (dec *Decorator) ForGroup(g *planes.NodeGroup) (string, error) {
	d, err := Parse(dec.base)
	if err != nil {
		return "", err
	}
	if dec.discovery != "" {
		if err := d.SetDiscoveryURL(dec.discovery); err != nil {
			return "", err
		}
	}
	if err := Decorate(d, dec.units, g.ServicePlanes(), g.Role); err != nil {
		return "", err
	}
	return d.Render()
}
