package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/imamik/stackplan/internal/errdefs"
	"github.com/imamik/stackplan/internal/planes"
)

// ValidChannels lists the CoreOS release channels.
var ValidChannels = []string{"stable", "beta", "alpha"}

// ValidFormats lists the output formats.
var ValidFormats = []string{"json", "yaml"}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if err := c.ValidateNetwork(); err != nil {
		return err
	}
	if err := c.ValidatePlanes(); err != nil {
		return err
	}
	if !slices.Contains(ValidChannels, c.CoreOS.Channel) {
		return errdefs.Configuration("coreos.channel %q must be one of %v", c.CoreOS.Channel, ValidChannels)
	}
	if c.CoreOS.Version == "" {
		return errdefs.Configuration("coreos.version is required")
	}
	return c.ValidateOutput()
}

// ValidateNetwork checks that exactly one network selector is set.
func (c *Config) ValidateNetwork() error {
	switch {
	case c.Network.VPCID == "" && c.Network.BastionID == "":
		return errdefs.Configuration("one of network.vpc_id or network.bastion_id is required")
	case c.Network.VPCID != "" && c.Network.BastionID != "":
		return errdefs.Configuration("network.vpc_id and network.bastion_id are mutually exclusive")
	}
	return nil
}

// ValidatePlanes checks instance bounds and that the isolation settings
// resolve to a partition.
func (c *Config) ValidatePlanes() error {
	for _, p := range planes.All {
		pc := c.Plane(p)
		if pc.Instances < 1 {
			return errdefs.Configuration("planes.%s.instances must be at least 1, got %d", p, pc.Instances)
		}
		if pc.InstancesMax < pc.Instances {
			return errdefs.Configuration("planes.%s.instances_max (%d) must be at least instances (%d)", p, pc.InstancesMax, pc.Instances)
		}
	}

	reqs, err := c.Requests()
	if err != nil {
		return errdefs.Configuration("%v", err)
	}
	if _, err := planes.Resolve(reqs); err != nil {
		return fmt.Errorf("plane isolation: %w", err)
	}
	return nil
}

// ValidateInstanceSizes checks every instance size override against the
// sizes the template accepts.
func (c *Config) ValidateInstanceSizes(allowed []string) error {
	for _, p := range planes.All {
		size := c.Plane(p).InstanceSize
		if size != "" && !slices.Contains(allowed, size) {
			return errdefs.Configuration("planes.%s.instance_size %q is not a valid instance type", p, size)
		}
	}
	return nil
}

// ValidateOutput checks the format and upload location.
func (c *Config) ValidateOutput() error {
	if !slices.Contains(ValidFormats, c.Output.Format) {
		return errdefs.Configuration("output.format %q must be one of %v", c.Output.Format, ValidFormats)
	}
	if u := c.Output.Upload; u != "" {
		bucket, _, _ := strings.Cut(strings.TrimPrefix(u, "s3://"), "/")
		if !strings.HasPrefix(u, "s3://") || bucket == "" {
			return errdefs.Configuration("output.upload %q must look like s3://bucket/prefix", u)
		}
	}
	return nil
}
