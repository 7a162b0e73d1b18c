// Package topology discovers the structure of an existing VPC.
//
// [Discover] resolves the VPC (directly or through a bastion instance),
// verifies it exists, finds its internet gateway and classifies every
// subnet as public (associated with a route through the gateway) or
// private. Zones are derived from subnets and sorted so the resulting
// [Topology] is deterministic.
package topology
