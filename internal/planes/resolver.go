package planes

import (
	"slices"

	"github.com/imamik/stackplan/internal/errdefs"
)

// Request is the isolation request for a single plane.
type Request struct {
	Isolate bool
	// Colocate lists other planes that should share the isolated plane's
	// node group. Ignored when Isolate is false.
	Colocate []Plane
}

// Requests maps a plane to its isolation request.
type Requests map[Plane]Request

// Resolve partitions the planes into node groups.
//
// Groups are returned in resolution order followed by the residual "other"
// group. Empty, duplicate and self references in co-location lists are
// dropped. A plane claimed by two isolation groups fails with a
// configuration error instead of silently moving between them.
func Resolve(reqs Requests) ([]*NodeGroup, error) {
	claims, err := claimOwnership(reqs)
	if err != nil {
		return nil, err
	}

	available := map[Plane]bool{Control: true, Data: true, Router: true}
	var groups []*NodeGroup

	for _, p := range ResolutionOrder {
		if !reqs[p].Isolate {
			continue
		}
		if p == Etcd {
			groups = append(groups, &NodeGroup{Name: Etcd, Planes: []Plane{Etcd}})
			continue
		}

		members := []Plane{p}
		delete(available, p)
		for _, c := range claims[p] {
			if available[c] {
				members = append(members, c)
				delete(available, c)
			}
		}
		groups = append(groups, &NodeGroup{Name: p, Planes: members})
	}

	if len(available) > 0 {
		var rest []Plane
		for _, p := range Universe {
			if available[p] {
				rest = append(rest, p)
			}
		}
		groups = append(groups, &NodeGroup{Name: Other, Planes: rest})
	}

	assignRoles(groups, reqs[Etcd].Isolate)

	for _, g := range groups {
		slices.SortFunc(g.Planes, func(a, b Plane) int { return rank(a) - rank(b) })
	}

	return groups, nil
}

// assignRoles marks the coordination member group. The pure etcd group is
// always a member. Otherwise the group containing the control plane owns
// the etcd tier when etcd is not isolated, or when it is the only group.
func assignRoles(groups []*NodeGroup, etcdIsolated bool) {
	for _, g := range groups {
		switch {
		case g.Name == Etcd:
			g.Role = RoleMember
		case g.Contains(Control) && (!etcdIsolated || len(groups) == 1):
			g.Role = RoleMember
			g.Planes = append(g.Planes, Etcd)
		default:
			g.Role = RoleProxy
		}
	}
}

// claimOwnership validates the requests and returns the cleaned
// co-location list of each isolated plane.
func claimOwnership(reqs Requests) (map[Plane][]Plane, error) {
	for p := range reqs {
		if !p.Valid() || p == Other {
			return nil, errdefs.Configuration("cannot isolate plane %q", p)
		}
	}

	owner := make(map[Plane]Plane)
	claim := func(p, by Plane) error {
		if prev, ok := owner[p]; ok && prev != by {
			return errdefs.Configuration("plane %q is claimed by both the %s and %s node groups", p, prev, by)
		}
		owner[p] = by
		return nil
	}

	claims := make(map[Plane][]Plane)
	for _, p := range ResolutionOrder {
		req := reqs[p]
		if !req.Isolate {
			continue
		}
		if err := claim(p, p); err != nil {
			return nil, err
		}

		for _, c := range req.Colocate {
			if c == "" || c == p || slices.Contains(claims[p], c) {
				continue
			}
			if !canColocate(p, c) {
				return nil, errdefs.Configuration("plane %q cannot be co-located with %s: must be one of %v", c, p, p.ColocationChoices())
			}
			if err := claim(c, p); err != nil {
				return nil, err
			}
			claims[p] = append(claims[p], c)
		}
	}

	return claims, nil
}
