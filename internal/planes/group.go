package planes

import (
	"slices"
	"strings"
)

// Role is the mode a node group runs the coordination service in.
type Role string

const (
	// RoleMember groups run etcd as voting members.
	RoleMember Role = "member"
	// RoleProxy groups run etcd as a client-side proxy.
	RoleProxy Role = "proxy"
)

// Sizing holds the instance bounds and optional size override for a group.
type Sizing struct {
	MinInstances int
	MaxInstances int
	InstanceSize string
}

// NodeGroup is a deployable unit hosting one or more co-located planes.
type NodeGroup struct {
	// Name is the isolated plane the group was formed from, or Other.
	Name Plane
	// Planes holds the member planes in canonical order. The group hosting
	// the coordination tier lists Etcd as well.
	Planes []Plane
	Role   Role

	MinInstances int
	MaxInstances int
	InstanceSize string

	Zones   []string
	Subnets []string
	// LoadBalancer is set on the single group attached to the shared
	// load balancer.
	LoadBalancer bool
}

// Title returns the capitalized group name, e.g. "Router".
func (g *NodeGroup) Title() string {
	return g.Name.Title()
}

// Contains reports whether p is a member plane of the group.
func (g *NodeGroup) Contains(p Plane) bool {
	return slices.Contains(g.Planes, p)
}

// ServicePlanes returns the member planes that publish metadata. The pure
// etcd group has none.
func (g *NodeGroup) ServicePlanes() []Plane {
	var out []Plane
	for _, p := range g.Planes {
		if p.MetadataTag() != "" {
			out = append(out, p)
		}
	}
	return out
}

// Proxy reports whether the group runs the coordination service as a proxy.
func (g *NodeGroup) Proxy() bool {
	return g.Role == RoleProxy
}

// Apply binds instance bounds and size override to the group.
func (g *NodeGroup) Apply(s Sizing) {
	g.MinInstances = s.MinInstances
	g.MaxInstances = s.MaxInstances
	g.InstanceSize = s.InstanceSize
}

// String renders the group as "name[plane,plane](role)".
func (g *NodeGroup) String() string {
	names := make([]string, len(g.Planes))
	for i, p := range g.Planes {
		names[i] = string(p)
	}
	return string(g.Name) + "[" + strings.Join(names, ",") + "](" + string(g.Role) + ")"
}

// CoordinationGroup returns the group hosting the etcd member tier.
func CoordinationGroup(groups []*NodeGroup) *NodeGroup {
	for _, g := range groups {
		if g.Contains(Etcd) {
			return g
		}
	}
	return nil
}

// ApplySizing binds the sizing of each group's name plane.
func ApplySizing(groups []*NodeGroup, sizing map[Plane]Sizing) {
	for _, g := range groups {
		if s, ok := sizing[g.Name]; ok {
			g.Apply(s)
		}
	}
}
