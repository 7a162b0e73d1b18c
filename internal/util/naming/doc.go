// Package naming provides consistent names for generated stack resources.
//
// Per-group resources are keyed {Title}Plane{Kind}, e.g.
// "RouterPlaneAutoScale", and nodes carry the name tag
// deis-{group}-plane-node. Uploaded templates are stored under
// {prefix}/{stack}-{id}.{ext}.
package naming
