package testing

import (
	"slices"

	"github.com/imamik/stackplan/internal/config"
	"github.com/imamik/stackplan/internal/planes"
)

// ConfigBuilder provides a fluent interface for constructing test configs.
// Each method returns a new builder (immutable) for chaining.
type ConfigBuilder struct {
	cfg config.Config
}

// NewConfigBuilder creates a new ConfigBuilder for a VPC-addressed stack
// with defaults applied.
func NewConfigBuilder() *ConfigBuilder {
	b := &ConfigBuilder{
		cfg: config.Config{
			StackName: "test-stack",
			Profile:   "test",
			Network:   config.Network{VPCID: "vpc-123"},
		},
	}
	b.cfg.ApplyDefaults()
	return b
}

// WithStackName sets the stack name.
func (b *ConfigBuilder) WithStackName(name string) *ConfigBuilder {
	nb := b.clone()
	nb.cfg.StackName = name
	return nb
}

// WithBastion addresses the VPC through a bastion instance.
func (b *ConfigBuilder) WithBastion(id string) *ConfigBuilder {
	nb := b.clone()
	nb.cfg.Network.VPCID = ""
	nb.cfg.Network.BastionID = id
	return nb
}

// WithIsolated isolates p, co-locating the given planes with it.
func (b *ConfigBuilder) WithIsolated(p planes.Plane, colocate ...planes.Plane) *ConfigBuilder {
	nb := b.clone()
	pc := nb.cfg.Plane(p)
	pc.Isolate = true
	pc.Colocate = nil
	for _, c := range colocate {
		pc.Colocate = append(pc.Colocate, string(c))
	}
	return nb
}

// WithInstances sets the instance bounds of p.
func (b *ConfigBuilder) WithInstances(p planes.Plane, minInstances, maxInstances int) *ConfigBuilder {
	nb := b.clone()
	pc := nb.cfg.Plane(p)
	pc.Instances = minInstances
	pc.InstancesMax = maxInstances
	return nb
}

// WithDiscoveryURL reuses an existing discovery token.
func (b *ConfigBuilder) WithDiscoveryURL(url string) *ConfigBuilder {
	nb := b.clone()
	nb.cfg.Discovery.URL = url
	return nb
}

// WithUpload sets the s3 upload location.
func (b *ConfigBuilder) WithUpload(location string, create bool) *ConfigBuilder {
	nb := b.clone()
	nb.cfg.Output.Upload = location
	nb.cfg.Output.CreateBucket = create
	return nb
}

// WithFormat sets the output format.
func (b *ConfigBuilder) WithFormat(format string) *ConfigBuilder {
	nb := b.clone()
	nb.cfg.Output.Format = format
	return nb
}

// Build returns the constructed config.
func (b *ConfigBuilder) Build() *config.Config {
	cfg := b.cfg
	return &cfg
}

func (b *ConfigBuilder) clone() *ConfigBuilder {
	nb := &ConfigBuilder{cfg: b.cfg}
	nb.cfg.Network.Zones = slices.Clone(b.cfg.Network.Zones)
	nb.cfg.Network.Subnets = slices.Clone(b.cfg.Network.Subnets)
	nb.cfg.Network.PrivateSubnets = slices.Clone(b.cfg.Network.PrivateSubnets)
	for _, p := range planes.All {
		pc := nb.cfg.Plane(p)
		pc.Colocate = slices.Clone(pc.Colocate)
	}
	return nb
}
