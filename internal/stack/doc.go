// Package stack builds the CloudFormation documents emitted by stackplan.
//
// The cluster template is assembled from an embedded base template and one
// copy of the per-plane template for every node group (see [Synthesize]).
// The VPC template is derived from an embedded network template with or
// without private subnets (see [VPCTemplate]). Both render to JSON or YAML.
package stack
