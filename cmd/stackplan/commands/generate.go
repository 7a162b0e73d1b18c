package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/stackplan/cmd/stackplan/handlers"
)

// Generate returns the command synthesizing the cluster template.
//
// Flags override values from the configuration file only when set.
func Generate() *cobra.Command {
	var flags *configFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the cluster CloudFormation template",
		Long: `Generate the CloudFormation template of a Deis cluster.

The VPC is discovered through the aws CLI, either directly from --vpc-id
or from the bastion host given with --bastion-id. Planes are placed in
node groups according to the isolation flags; planes that are not
isolated share the "other" node group.

A new etcd discovery URL is requested unless --discovery-url is given or
--updating is set. The template is written to stdout unless --output is
given, and uploaded to S3 when --upload is set.

Examples:
  # Isolate the router mesh
  stackplan generate --vpc-id vpc-123 --isolate-router > stack.json

  # Control plane sharing nodes with the data plane, dedicated etcd nodes
  stackplan generate --bastion-id i-123 \
    --isolate-control-plane --control-plane-colocate data \
    --isolate-etcd --etcd-instances 5

  # Update an existing stack
  stackplan generate --vpc-id vpc-123 --updating --upload s3://bucket/deis`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Generate(cmd.Context(), flags.configPath, flags.override(cmd))
		},
	}

	flags = bindConfigFlags(cmd, true, true)
	return cmd
}
