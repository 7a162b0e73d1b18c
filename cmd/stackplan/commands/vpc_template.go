package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/imamik/stackplan/cmd/stackplan/handlers"
	"github.com/imamik/stackplan/internal/config"
	"github.com/imamik/stackplan/internal/stack"
)

// EnvIncludePrivateSubnets selects the default of --private-subnets.
const EnvIncludePrivateSubnets = "INCLUDE_PRIVATE_SUBNETS"

// VPCTemplate returns the command printing the VPC CloudFormation template.
func VPCTemplate() *cobra.Command {
	var (
		includePrivate bool
		format         string
		compact        bool
	)

	cmd := &cobra.Command{
		Use:   "vpc-template",
		Short: "Generate the VPC CloudFormation template",
		Long: `Generate the CloudFormation template of the VPC the cluster runs in.

With private subnets the template adds NAT and bastion hosts in front of
three private subnets. The default follows $INCLUDE_PRIVATE_SUBNETS.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.VPCTemplate(includePrivate, format, compact)
		},
	}

	cmd.Flags().BoolVar(&includePrivate, "private-subnets", stack.IncludePrivateSubnets(os.Getenv(EnvIncludePrivateSubnets)), "Include private subnets behind NAT and bastion hosts")
	cmd.Flags().StringVar(&format, "format", config.DefaultFormat, "Output format (json, yaml)")
	cmd.Flags().BoolVar(&compact, "compact", false, "Write compact JSON")

	return cmd
}
