package config

import "os"

// EnvProfile names the environment variable holding the default AWS CLI
// profile.
const EnvProfile = "AWS_CLI_PROFILE"

// Default values.
const (
	DefaultStackName    = "deis"
	DefaultChannel      = "stable"
	DefaultVersion      = "current"
	DefaultFormat       = "json"
	DefaultInstances    = 3
	DefaultInstancesMax = 9
	DefaultDataPlaneMax = 25
)

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.StackName == "" {
		c.StackName = DefaultStackName
	}
	if c.Profile == "" {
		c.Profile = os.Getenv(EnvProfile)
	}
	if c.CoreOS.Channel == "" {
		c.CoreOS.Channel = DefaultChannel
	}
	if c.CoreOS.Version == "" {
		c.CoreOS.Version = DefaultVersion
	}
	if c.Output.Format == "" {
		c.Output.Format = DefaultFormat
	}

	applyPlaneDefaults(&c.Planes.Control, DefaultInstancesMax)
	applyPlaneDefaults(&c.Planes.Data, DefaultDataPlaneMax)
	applyPlaneDefaults(&c.Planes.Router, DefaultInstancesMax)
	applyPlaneDefaults(&c.Planes.Etcd, DefaultInstancesMax)
	applyPlaneDefaults(&c.Planes.Other, DefaultInstancesMax)
}

func applyPlaneDefaults(p *Plane, maxInstances int) {
	if p.Instances == 0 {
		p.Instances = DefaultInstances
	}
	if p.InstancesMax == 0 {
		p.InstancesMax = maxInstances
	}
}
