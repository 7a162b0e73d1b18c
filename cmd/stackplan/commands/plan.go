package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/stackplan/cmd/stackplan/handlers"
)

// Plan returns the command previewing the node groups.
func Plan() *cobra.Command {
	var flags *configFlags

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the node groups without calling AWS",
		Long: `Resolve the plane isolation flags into node groups and print them.

Each group lists its planes, whether it runs etcd as a member or as a
proxy, its instance bounds and whether it is attached to the load
balancer. No AWS calls are made.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Plan(cmd.Context(), flags.configPath, flags.override(cmd))
		},
	}

	flags = bindConfigFlags(cmd, false, false)
	return cmd
}
