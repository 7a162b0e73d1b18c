// Package ec2 queries the structure of an existing AWS VPC through the
// aws command line interface.
//
// The package is split in two layers:
//
//   - runner.go: [Runner] executes one aws CLI invocation and returns its
//     standard output. [CLIRunner] is the real implementation; it appends
//     the named credential profile and treats any output on the error
//     stream as fatal.
//   - client.go: [Client] issues the typed read-only queries needed for
//     network discovery (VPC existence, bastion instance, internet gateway,
//     subnets, gateway-routed subnets) and decodes their JSON or text output.
//
// No query is retried. Every failure surfaces as an external call error
// from the errdefs package.
package ec2
