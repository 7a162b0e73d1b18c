package commands

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/imamik/stackplan/cmd/stackplan/handlers"
	"github.com/imamik/stackplan/internal/config"
	"github.com/imamik/stackplan/internal/planes"
)

// planeFlagSet describes the flag names of one plane.
type planeFlagSet struct {
	plane    planes.Plane
	prefix   string
	label    string
	isolate  string
	colocate bool
}

// planeFlagSets lists the per-plane flags in the order they appear in help.
var planeFlagSets = []planeFlagSet{
	{plane: planes.Control, prefix: "control-plane", label: "Control Plane", isolate: "isolate-control-plane", colocate: true},
	{plane: planes.Data, prefix: "data-plane", label: "Data Plane", isolate: "isolate-data-plane", colocate: true},
	{plane: planes.Router, prefix: "router-mesh", label: "Router Mesh", isolate: "isolate-router", colocate: true},
	{plane: planes.Etcd, prefix: "etcd", label: "etcd", isolate: "isolate-etcd"},
	{plane: planes.Other, prefix: "other-plane", label: "planes that are not isolated"},
}

// configFlags binds the flags shared by generate and plan. Values only
// override the configuration file when the flag was set.
type configFlags struct {
	configPath string
	values     config.Config
	network    bool
	output     bool
}

// bindConfigFlags registers the plane flags, plus the network and output
// flags when requested.
func bindConfigFlags(cmd *cobra.Command, network, output bool) *configFlags {
	f := &configFlags{network: network, output: output}
	fs := cmd.Flags()

	fs.StringVarP(&f.configPath, "config", "c", "", "Path to configuration file (default: stackplan.yaml)")
	fs.StringVar(&f.values.StackName, "stack-name", config.DefaultStackName, "CloudFormation stack name, used as the ClusterName default")

	for _, s := range planeFlagSets {
		p := f.values.Plane(s.plane)
		if s.isolate != "" {
			fs.BoolVar(&p.Isolate, s.isolate, false, "Isolate the "+s.label+" into its own node group")
		}
		if s.colocate {
			fs.StringSliceVar(&p.Colocate, s.prefix+"-colocate", nil, "Planes to co-locate with the isolated "+s.label)
		}
		maxInstances := config.DefaultInstancesMax
		if s.plane == planes.Data {
			maxInstances = config.DefaultDataPlaneMax
		}
		fs.IntVar(&p.Instances, s.prefix+"-instances", config.DefaultInstances, "Minimum number of instances for the "+s.label)
		fs.IntVar(&p.InstancesMax, s.prefix+"-instances-max", maxInstances, "Maximum number of instances for the "+s.label)
		fs.StringVar(&p.InstanceSize, s.prefix+"-instance-size", "", "Instance type for the "+s.label)
	}

	if network {
		fs.StringVar(&f.values.Network.VPCID, "vpc-id", "", "VPC ID")
		fs.StringVar(&f.values.Network.BastionID, "bastion-id", "", "EC2 instance ID of the bastion host; its VPC and security group are used")
		fs.StringSliceVar(&f.values.Network.Zones, "vpc-zones", nil, "Availability zones (default: discovered)")
		fs.StringSliceVar(&f.values.Network.Subnets, "vpc-subnets", nil, "Public subnets (default: discovered)")
		fs.StringSliceVar(&f.values.Network.PrivateSubnets, "vpc-private-subnets", nil, "Private subnets (default: discovered)")

		fs.StringVar(&f.values.CoreOS.Channel, "channel", config.DefaultChannel, "CoreOS channel")
		fs.StringVar(&f.values.CoreOS.Version, "version", config.DefaultVersion, "CoreOS version")

		fs.StringVar(&f.values.Discovery.URL, "discovery-url", "", "Reuse an existing etcd discovery URL")
		fs.BoolVar(&f.values.Discovery.Updating, "updating", false, "Update an existing stack without requesting a new discovery URL")
		fs.StringVar(&f.values.Discovery.UserData, "user-data", "", "Base cloud-config file (default: embedded)")
	}

	if output {
		fs.StringVar(&f.values.Output.Format, "format", config.DefaultFormat, "Output format (json, yaml)")
		fs.StringVarP(&f.values.Output.Path, "output", "o", "", "Write the template to a file instead of stdout")
		fs.BoolVar(&f.values.Output.Compact, "compact", false, "Write compact JSON")
		fs.StringVar(&f.values.Output.Upload, "upload", "", "Upload the template to s3://bucket/prefix")
		fs.BoolVar(&f.values.Output.CreateBucket, "create-bucket", false, "Create the upload bucket when it does not exist")
		fs.StringVar(&f.values.Output.Region, "region", "", "Region of the upload bucket")
	}

	return f
}

// override returns the handler override applying every changed flag.
func (f *configFlags) override(cmd *cobra.Command) handlers.Override {
	fs := cmd.Flags()
	return func(cfg *config.Config) {
		set := func(name string, apply func()) {
			if fs.Changed(name) {
				apply()
			}
		}

		if profile, ok := awsProfile(fs); ok {
			cfg.Profile = profile
		}
		set("stack-name", func() { cfg.StackName = f.values.StackName })

		for _, s := range planeFlagSets {
			src, dst := f.values.Plane(s.plane), cfg.Plane(s.plane)
			if s.isolate != "" {
				set(s.isolate, func() { dst.Isolate = src.Isolate })
			}
			if s.colocate {
				set(s.prefix+"-colocate", func() { dst.Colocate = src.Colocate })
			}
			set(s.prefix+"-instances", func() { dst.Instances = src.Instances })
			set(s.prefix+"-instances-max", func() { dst.InstancesMax = src.InstancesMax })
			set(s.prefix+"-instance-size", func() { dst.InstanceSize = src.InstanceSize })
		}

		if f.network {
			n := f.values.Network
			set("vpc-id", func() { cfg.Network.VPCID = n.VPCID })
			set("bastion-id", func() { cfg.Network.BastionID = n.BastionID })
			set("vpc-zones", func() { cfg.Network.Zones = n.Zones })
			set("vpc-subnets", func() { cfg.Network.Subnets = n.Subnets })
			set("vpc-private-subnets", func() { cfg.Network.PrivateSubnets = n.PrivateSubnets })
			set("channel", func() { cfg.CoreOS.Channel = f.values.CoreOS.Channel })
			set("version", func() { cfg.CoreOS.Version = f.values.CoreOS.Version })
			set("discovery-url", func() { cfg.Discovery.URL = f.values.Discovery.URL })
			set("updating", func() { cfg.Discovery.Updating = f.values.Discovery.Updating })
			set("user-data", func() { cfg.Discovery.UserData = f.values.Discovery.UserData })
		}

		if f.output {
			o := f.values.Output
			set("format", func() { cfg.Output.Format = o.Format })
			set("output", func() { cfg.Output.Path = o.Path })
			set("compact", func() { cfg.Output.Compact = o.Compact })
			set("upload", func() { cfg.Output.Upload = o.Upload })
			set("create-bucket", func() { cfg.Output.CreateBucket = o.CreateBucket })
			set("region", func() { cfg.Output.Region = o.Region })
		}
	}
}

// awsProfile returns the --aws-profile value when it was set.
func awsProfile(fs *pflag.FlagSet) (string, bool) {
	if !fs.Changed(profileFlag) {
		return "", false
	}
	v, err := fs.GetString(profileFlag)
	return v, err == nil
}

// profileOrEnv returns --aws-profile, falling back to AWS_CLI_PROFILE.
func profileOrEnv(fs *pflag.FlagSet) string {
	if v, ok := awsProfile(fs); ok {
		return v
	}
	return os.Getenv(config.EnvProfile)
}
