// Package planes assigns logical cluster planes to node groups.
//
// A plane is a logical role in the cluster: the control plane, the data
// plane, the router mesh and the etcd coordination tier. Planes that are
// not explicitly isolated share a single catch-all "other" group.
//
// [Resolve] partitions the planes into disjoint [NodeGroup] values according
// to the isolation and co-location requests. Requests are processed in the
// fixed [ResolutionOrder] (router, data, control, etcd) and each isolated
// plane consumes its co-located planes from the pool of unassigned planes.
// Whatever is left forms the "other" group.
//
// Every group is tagged with the role it plays in the coordination service:
// the group hosting the etcd tier runs etcd as a voting member, all others
// run it in proxy mode.
package planes
