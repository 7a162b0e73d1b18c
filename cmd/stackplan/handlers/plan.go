package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/stackplan/internal/generate"
	"github.com/imamik/stackplan/internal/planes"
	"github.com/imamik/stackplan/internal/stack"
)

// Plan resolves the node groups of the configuration and prints them
// without querying AWS.
func Plan(_ context.Context, configPath string, override Override) error {
	cfg, err := loadConfig(configPath, override)
	if err != nil {
		return err
	}
	if err := cfg.ValidatePlanes(); err != nil {
		return err
	}
	sizes, err := stack.DefaultInstanceSizes()
	if err != nil {
		return err
	}
	if err := cfg.ValidateInstanceSizes(sizes); err != nil {
		return err
	}

	groups, err := generate.ResolveGroups(cfg)
	if err != nil {
		return err
	}

	var lb stack.LoadBalancerAllocator
	for _, g := range groups {
		lb.Claim(g)
	}

	fmt.Fprint(stdout, renderPlan(cfg.StackName, groups))
	return nil
}

// groupSize formats the instance bounds of a group.
func groupSize(g *planes.NodeGroup) string {
	size := g.InstanceSize
	if size == "" {
		size = "default"
	}
	return fmt.Sprintf("%d-%d x %s", g.MinInstances, g.MaxInstances, size)
}
