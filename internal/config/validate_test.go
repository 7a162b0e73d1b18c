package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/imamik/stackplan/internal/errdefs"
)

func validConfig() *Config {
	cfg := Default()
	cfg.Network.VPCID = "vpc-1"
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults with vpc", mutate: func(*Config) {}},
		{
			name:   "bastion selector",
			mutate: func(c *Config) { c.Network.VPCID = ""; c.Network.BastionID = "i-1" },
		},
		{
			name:    "no selector",
			mutate:  func(c *Config) { c.Network.VPCID = "" },
			wantErr: "one of network.vpc_id or network.bastion_id is required",
		},
		{
			name:    "both selectors",
			mutate:  func(c *Config) { c.Network.BastionID = "i-1" },
			wantErr: "mutually exclusive",
		},
		{
			name:    "zero instances",
			mutate:  func(c *Config) { c.Planes.Router.Instances = 0 },
			wantErr: "planes.router.instances must be at least 1",
		},
		{
			name:    "max below min",
			mutate:  func(c *Config) { c.Planes.Data.Instances = 5; c.Planes.Data.InstancesMax = 4 },
			wantErr: "planes.data.instances_max (4)",
		},
		{
			name: "colocation",
			mutate: func(c *Config) {
				c.Planes.Control.Isolate = true
				c.Planes.Control.Colocate = []string{"router-mesh"}
			},
		},
		{
			name: "unknown colocation name",
			mutate: func(c *Config) {
				c.Planes.Control.Isolate = true
				c.Planes.Control.Colocate = []string{"storage"}
			},
			wantErr: `unknown plane "storage"`,
		},
		{
			name: "etcd cannot be colocated",
			mutate: func(c *Config) {
				c.Planes.Router.Isolate = true
				c.Planes.Router.Colocate = []string{"etcd"}
			},
			wantErr: `plane "etcd" cannot be co-located with router`,
		},
		{
			name: "plane claimed twice",
			mutate: func(c *Config) {
				c.Planes.Router.Isolate = true
				c.Planes.Router.Colocate = []string{"control"}
				c.Planes.Data.Isolate = true
				c.Planes.Data.Colocate = []string{"control"}
			},
			wantErr: `plane "control" is claimed by both`,
		},
		{
			name:    "bad channel",
			mutate:  func(c *Config) { c.CoreOS.Channel = "nightly" },
			wantErr: `coreos.channel "nightly"`,
		},
		{
			name:    "bad format",
			mutate:  func(c *Config) { c.Output.Format = "toml" },
			wantErr: `output.format "toml"`,
		},
		{
			name:   "upload location",
			mutate: func(c *Config) { c.Output.Upload = "s3://bucket/prefix" },
		},
		{
			name:    "upload without scheme",
			mutate:  func(c *Config) { c.Output.Upload = "bucket/prefix" },
			wantErr: "must look like s3://bucket/prefix",
		},
		{
			name:    "upload without bucket",
			mutate:  func(c *Config) { c.Output.Upload = "s3:///prefix" },
			wantErr: "must look like s3://bucket/prefix",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
			assert.True(t, errdefs.IsConfiguration(err), "expected a configuration error, got %v", err)
		})
	}
}

func TestValidateInstanceSizes(t *testing.T) {
	cfg := validConfig()
	allowed := []string{"m3.large", "c4.xlarge"}

	assert.NoError(t, cfg.ValidateInstanceSizes(allowed))

	cfg.Planes.Router.InstanceSize = "c4.xlarge"
	assert.NoError(t, cfg.ValidateInstanceSizes(allowed))

	cfg.Planes.Etcd.InstanceSize = "t1.nano"
	err := cfg.ValidateInstanceSizes(allowed)
	assert.ErrorContains(t, err, `planes.etcd.instance_size "t1.nano"`)
	assert.True(t, errdefs.IsConfiguration(err))
}
