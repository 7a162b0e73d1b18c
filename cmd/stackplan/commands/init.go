package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/stackplan/cmd/stackplan/handlers"
	"github.com/imamik/stackplan/internal/config"
)

// Init returns the command for interactively creating a stack configuration.
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a stack configuration",
		Long: `Interactively create a stack configuration file.

The wizard asks for the stack name, the VPC or bastion host, the CoreOS
channel, the planes to isolate and the output format. Everything else
keeps its default and can be edited in the file afterwards.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", config.DefaultConfigFilename, "Output file path")

	return cmd
}
