package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/stackplan/cmd/stackplan/handlers"
	"github.com/imamik/stackplan/internal/topology"
)

// VPC returns the command describing a VPC.
func VPC() *cobra.Command {
	var opts handlers.VPCOptions

	cmd := &cobra.Command{
		Use:   "vpc",
		Short: "Show the zones and subnets of a VPC",
		Long: `Discover the availability zones, public subnets and private subnets of
a VPC, given directly or through a bastion host.

The shell format can be evaluated to export DEIS_VPC_* variables:
  eval "$(stackplan vpc --bastion-id i-123)"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.Profile = profileOrEnv(cmd.Flags())
			return handlers.VPC(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.VPCID, "vpc-id", "", "VPC ID")
	cmd.Flags().StringVar(&opts.BastionID, "bastion-id", "", "Bastion instance ID")
	cmd.Flags().StringVar(&opts.Format, "format", topology.FormatShell, "Output format (shell, human, json)")
	cmd.MarkFlagsMutuallyExclusive("vpc-id", "bastion-id")
	cmd.MarkFlagsOneRequired("vpc-id", "bastion-id")

	return cmd
}
