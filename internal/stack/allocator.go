package stack

import "github.com/imamik/stackplan/internal/planes"

// LoadBalancerAllocator hands the shared web load balancer to the first
// node group carrying the router plane. It is threaded through a single
// synthesis run.
type LoadBalancerAllocator struct {
	owner *planes.NodeGroup
}

// Claim reports whether g receives the load balancer. It returns true at
// most once per allocator.
func (a *LoadBalancerAllocator) Claim(g *planes.NodeGroup) bool {
	if a.owner != nil || !g.Contains(planes.Router) {
		return false
	}
	a.owner = g
	g.LoadBalancer = true
	return true
}

// Owner returns the group holding the load balancer, or nil.
func (a *LoadBalancerAllocator) Owner() *planes.NodeGroup {
	return a.owner
}
