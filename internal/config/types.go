package config

import (
	"github.com/imamik/stackplan/internal/planes"
)

// Config is the root configuration.
type Config struct {
	// StackName names the CloudFormation stack and prefixes uploads.
	StackName string `yaml:"stack_name"`
	// Profile is the AWS CLI profile used for every AWS call.
	Profile string `yaml:"aws_profile,omitempty"`

	Network   Network   `yaml:"network"`
	CoreOS    CoreOS    `yaml:"coreos"`
	Discovery Discovery `yaml:"discovery,omitempty"`
	Planes    Planes    `yaml:"planes"`
	Output    Output    `yaml:"output"`
}

// Network selects the VPC, either directly or through a bastion host, and
// optionally overrides discovered zones and subnets.
type Network struct {
	VPCID          string   `yaml:"vpc_id,omitempty"`
	BastionID      string   `yaml:"bastion_id,omitempty"`
	Zones          []string `yaml:"zones,omitempty"`
	Subnets        []string `yaml:"subnets,omitempty"`
	PrivateSubnets []string `yaml:"private_subnets,omitempty"`
}

// CoreOS selects the release whose AMIs are mapped into the template.
type CoreOS struct {
	Channel string `yaml:"channel"`
	Version string `yaml:"version"`
}

// Discovery controls the etcd discovery token.
type Discovery struct {
	// URL reuses an existing discovery token.
	URL string `yaml:"url,omitempty"`
	// Updating skips requesting a new token, for stack updates.
	Updating bool `yaml:"updating,omitempty"`
	// UserData replaces the embedded base cloud-config.
	UserData string `yaml:"user_data,omitempty"`
}

// Plane configures isolation and sizing of one plane.
type Plane struct {
	Isolate      bool     `yaml:"isolate,omitempty"`
	Colocate     []string `yaml:"colocate,omitempty"`
	Instances    int      `yaml:"instances"`
	InstancesMax int      `yaml:"instances_max"`
	InstanceSize string   `yaml:"instance_size,omitempty"`
}

// Planes holds the per-plane settings. Other sizes the group of planes
// that are not isolated; its isolation fields are ignored.
type Planes struct {
	Control Plane `yaml:"control"`
	Data    Plane `yaml:"data"`
	Router  Plane `yaml:"router"`
	Etcd    Plane `yaml:"etcd"`
	Other   Plane `yaml:"other"`
}

// Output controls rendering and upload.
type Output struct {
	Format  string `yaml:"format"`
	Path    string `yaml:"path,omitempty"`
	Compact bool   `yaml:"compact,omitempty"`
	// Upload is an s3://bucket/prefix location.
	Upload       string `yaml:"upload,omitempty"`
	CreateBucket bool   `yaml:"create_bucket,omitempty"`
	Region       string `yaml:"region,omitempty"`
}

// Plane returns the settings of p, or nil for an unknown plane.
func (c *Config) Plane(p planes.Plane) *Plane {
	switch p {
	case planes.Control:
		return &c.Planes.Control
	case planes.Data:
		return &c.Planes.Data
	case planes.Router:
		return &c.Planes.Router
	case planes.Etcd:
		return &c.Planes.Etcd
	case planes.Other:
		return &c.Planes.Other
	default:
		return nil
	}
}

// Requests converts the isolation settings into resolver input. Unknown
// co-location names are reported; validation of the allowed choices is
// left to the resolver.
func (c *Config) Requests() (planes.Requests, error) {
	reqs := planes.Requests{}
	for _, p := range planes.ResolutionOrder {
		pc := c.Plane(p)
		if !pc.Isolate {
			continue
		}
		req := planes.Request{Isolate: true}
		for _, name := range pc.Colocate {
			if name == "" {
				continue
			}
			other, err := planes.Parse(name)
			if err != nil {
				return nil, err
			}
			req.Colocate = append(req.Colocate, other)
		}
		reqs[p] = req
	}
	return reqs, nil
}

// Sizing returns the instance bounds of every plane.
func (c *Config) Sizing() map[planes.Plane]planes.Sizing {
	out := make(map[planes.Plane]planes.Sizing, len(planes.All))
	for _, p := range planes.All {
		pc := c.Plane(p)
		out[p] = planes.Sizing{
			MinInstances: pc.Instances,
			MaxInstances: pc.InstancesMax,
			InstanceSize: pc.InstanceSize,
		}
	}
	return out
}
