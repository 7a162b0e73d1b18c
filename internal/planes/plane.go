package planes

import (
	"fmt"
	"strings"
)

// Plane identifies a logical cluster role.
type Plane string

const (
	Control Plane = "control"
	Data    Plane = "data"
	Router  Plane = "router"
	Etcd    Plane = "etcd"
	// Other names the catch-all group for planes that are not isolated.
	// It never appears as a member plane of a group.
	Other Plane = "other"
)

// ResolutionOrder is the precedence in which isolation requests are
// resolved. A plane consumed by an earlier entry is no longer available
// to later ones. The residual "other" group is always formed last.
var ResolutionOrder = []Plane{Router, Data, Control, Etcd}

// Universe lists every plane that must be assigned to exactly one group,
// in canonical order.
var Universe = []Plane{Control, Data, Router, Etcd}

// ServicePlanes are the planes that publish service-discovery metadata.
var ServicePlanes = []Plane{Control, Data, Router}

// All lists every plane identifier including the catch-all.
var All = []Plane{Control, Data, Router, Etcd, Other}

// Parse converts a string into a Plane. "router-mesh" is accepted as an
// alias for the router plane.
func Parse(s string) (Plane, error) {
	p := Plane(strings.ToLower(strings.TrimSpace(s)))
	if p == "router-mesh" {
		return Router, nil
	}
	if !p.Valid() {
		return "", fmt.Errorf("unknown plane %q: must be one of %v", s, All)
	}
	return p, nil
}

// Valid reports whether p is a known plane identifier.
func (p Plane) Valid() bool {
	switch p {
	case Control, Data, Router, Etcd, Other:
		return true
	default:
		return false
	}
}

// Title returns the capitalized plane name used in resource keys.
func (p Plane) Title() string {
	if p == "" {
		return ""
	}
	return strings.ToUpper(string(p[:1])) + string(p[1:])
}

// ColocationChoices returns the planes that may share a node group with p
// when p is isolated.
func (p Plane) ColocationChoices() []Plane {
	switch p {
	case Control:
		return []Plane{Router, Data}
	case Data:
		return []Plane{Router, Control}
	case Router:
		return []Plane{Data, Control}
	default:
		return nil
	}
}

// MetadataTag returns the fleet metadata tag for a service plane, or ""
// for planes that do not publish one.
func (p Plane) MetadataTag() string {
	switch p {
	case Control:
		return "controlPlane=true"
	case Data:
		return "dataPlane=true"
	case Router:
		return "routerMesh=true"
	default:
		return ""
	}
}

func canColocate(p, with Plane) bool {
	for _, c := range p.ColocationChoices() {
		if c == with {
			return true
		}
	}
	return false
}

func rank(p Plane) int {
	for i, u := range Universe {
		if u == p {
			return i
		}
	}
	return len(Universe)
}
