package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// Network selector kinds offered by the wizard.
const (
	SelectorVPC     = "vpc"
	SelectorBastion = "bastion"
)

// WizardResult holds the user's choices from the init wizard.
type WizardResult struct {
	StackName string
	Selector  string
	NetworkID string
	Channel   string
	Isolated  []string
	Format    string
}

// RunWizard runs the interactive configuration wizard.
func RunWizard(ctx context.Context) (*WizardResult, error) {
	result := &WizardResult{
		StackName: DefaultStackName,
		Selector:  SelectorVPC,
		Channel:   DefaultChannel,
		Format:    DefaultFormat,
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Stack name").
				Description("Name of the CloudFormation stack").
				Placeholder(DefaultStackName).
				Value(&result.StackName).
				Validate(validateStackName),
		),

		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Network").
				Description("Select the VPC directly or through its bastion host").
				Options(
					huh.NewOption("VPC id", SelectorVPC),
					huh.NewOption("Bastion instance id", SelectorBastion),
				).
				Value(&result.Selector),

			huh.NewInput().
				Title("Id").
				Description("vpc-... or i-...").
				Value(&result.NetworkID).
				Validate(func(s string) error { return validateNetworkID(result.Selector, s) }),
		),

		huh.NewGroup(
			huh.NewSelect[string]().
				Title("CoreOS channel").
				Options(
					huh.NewOption("stable", "stable"),
					huh.NewOption("beta", "beta"),
					huh.NewOption("alpha", "alpha"),
				).
				Value(&result.Channel),

			huh.NewMultiSelect[string]().
				Title("Isolated planes").
				Description("Planes that get their own node group; the rest share one").
				Options(
					huh.NewOption("control", "control"),
					huh.NewOption("data", "data"),
					huh.NewOption("router", "router"),
					huh.NewOption("etcd", "etcd"),
				).
				Value(&result.Isolated),
		),

		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Output format").
				Options(
					huh.NewOption("JSON", "json"),
					huh.NewOption("YAML", "yaml"),
				).
				Value(&result.Format),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return nil, fmt.Errorf("wizard canceled: %w", err)
	}

	return result, nil
}

// ToConfig converts the wizard result to a Config with defaults applied.
func (r *WizardResult) ToConfig() *Config {
	cfg := &Config{
		StackName: r.StackName,
		CoreOS:    CoreOS{Channel: r.Channel},
		Output:    Output{Format: r.Format},
	}
	if r.Selector == SelectorBastion {
		cfg.Network.BastionID = r.NetworkID
	} else {
		cfg.Network.VPCID = r.NetworkID
	}

	for _, name := range r.Isolated {
		switch name {
		case "control":
			cfg.Planes.Control.Isolate = true
		case "data":
			cfg.Planes.Data.Isolate = true
		case "router":
			cfg.Planes.Router.Isolate = true
		case "etcd":
			cfg.Planes.Etcd.Isolate = true
		}
	}

	cfg.ApplyDefaults()
	return cfg
}

// validateStackName validates a CloudFormation stack name.
func validateStackName(s string) error {
	if s == "" {
		return fmt.Errorf("stack name is required")
	}
	if len(s) > 128 {
		return fmt.Errorf("stack name must be 128 characters or less")
	}
	first := s[0]
	if !((first >= 'a' && first <= 'z') || (first >= 'A' && first <= 'Z')) {
		return fmt.Errorf("stack name must start with a letter")
	}
	for _, c := range s {
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '-') {
			return fmt.Errorf("stack name can only contain letters, numbers, and hyphens")
		}
	}
	return nil
}

// validateNetworkID checks the id prefix matching the selector.
func validateNetworkID(selector, id string) error {
	prefix := "vpc-"
	if selector == SelectorBastion {
		prefix = "i-"
	}
	if !strings.HasPrefix(id, prefix) || len(id) == len(prefix) {
		return fmt.Errorf("expected an id starting with %q", prefix)
	}
	return nil
}
