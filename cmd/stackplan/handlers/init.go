package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/imamik/stackplan/internal/config"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// runWizard runs the interactive wizard.
	runWizard = config.RunWizard

	// saveConfig writes the config to a file.
	saveConfig = config.Save
)

// Init runs the configuration wizard and writes the result to outputPath.
func Init(ctx context.Context, outputPath string) error {
	if fileExists(outputPath) {
		fmt.Fprintf(stdout, "Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return err
	}

	cfg := result.ToConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := saveConfig(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, cfg)
	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "stackplan - Deis clusters on AWS CloudFormation")
	fmt.Fprintln(stdout, "===============================================")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "This wizard creates a stack configuration with sensible defaults.")
	fmt.Fprintln(stdout)
}

// printInitSuccess prints the summary and next steps.
func printInitSuccess(outputPath string, cfg *config.Config) {
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Configuration saved!")
	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "  File: %s\n", outputPath)
	fmt.Fprintln(stdout)

	fmt.Fprintln(stdout, "Stack Summary")
	fmt.Fprintln(stdout, "-------------")
	fmt.Fprintf(stdout, "  Name:     %s\n", cfg.StackName)
	if cfg.Network.BastionID != "" {
		fmt.Fprintf(stdout, "  Bastion:  %s\n", cfg.Network.BastionID)
	} else {
		fmt.Fprintf(stdout, "  VPC:      %s\n", cfg.Network.VPCID)
	}
	fmt.Fprintf(stdout, "  CoreOS:   %s/%s\n", cfg.CoreOS.Channel, cfg.CoreOS.Version)
	fmt.Fprintf(stdout, "  Format:   %s\n", cfg.Output.Format)
	fmt.Fprintln(stdout)

	fmt.Fprintln(stdout, "Next Steps")
	fmt.Fprintln(stdout, "----------")
	fmt.Fprintf(stdout, "  1. Review %s if needed\n", outputPath)
	fmt.Fprintln(stdout, "  2. Preview the node groups:")
	fmt.Fprintln(stdout, "     stackplan plan")
	fmt.Fprintln(stdout, "  3. Generate the template:")
	fmt.Fprintln(stdout, "     stackplan generate > stack.json")
	fmt.Fprintln(stdout)
}
