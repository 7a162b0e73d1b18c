// Package userdata decorates the cloud-config document each node group
// boots with.
//
// The base document and the extra bootstrap units are embedded assets.
// [Decorate] prepends the units, writes the fleet metadata tags of the
// group's service planes and switches etcd into proxy mode for groups that
// do not host the coordination tier. [Document.Render] serializes the
// result and points the etcd host data directory at the dedicated volume.
package userdata
