// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/imamik/stackplan/internal/log"
)

const profileFlag = "aws-profile"

// Root returns the root command for the stackplan CLI.
func Root() *cobra.Command {
	var (
		logLevel string
		logJSON  bool
	)

	cmd := &cobra.Command{
		Use:           "stackplan",
		Short:         "Generate CloudFormation templates for Deis clusters on AWS",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			log.Init(log.Config{
				Level:      log.Level(logLevel),
				JSONOutput: logJSON,
				Output:     os.Stderr,
			})
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", string(log.InfoLevel), "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Write logs as JSON")
	cmd.PersistentFlags().String(profileFlag, "", "AWS CLI profile (default: $AWS_CLI_PROFILE)")

	// Core commands
	cmd.AddCommand(Generate())
	cmd.AddCommand(Plan())
	cmd.AddCommand(VPC())
	cmd.AddCommand(VPCTemplate())

	// Utility commands
	cmd.AddCommand(Init())
	cmd.AddCommand(Fingerprint())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
