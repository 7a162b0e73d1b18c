package commands

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/stackplan/internal/config"
)

// parsedFlags binds the config flags to a command under a root carrying
// the persistent flags, and parses args.
func parsedFlags(t *testing.T, network, output bool, args ...string) (*cobra.Command, *configFlags) {
	t.Helper()
	root := &cobra.Command{Use: "stackplan"}
	root.PersistentFlags().String(profileFlag, "", "")

	cmd := &cobra.Command{Use: "generate", RunE: func(*cobra.Command, []string) error { return nil }}
	flags := bindConfigFlags(cmd, network, output)
	root.AddCommand(cmd)

	root.SetArgs(append([]string{"generate"}, args...))
	require.NoError(t, root.Execute())
	return cmd, flags
}

func fileConfig() *config.Config {
	cfg := config.Default()
	cfg.StackName = "from-file"
	cfg.Profile = "file-profile"
	cfg.Network.VPCID = "vpc-file"
	cfg.Planes.Router.Isolate = true
	cfg.Planes.Router.Instances = 4
	cfg.Planes.Router.InstancesMax = 6
	cfg.Output.Format = "yaml"
	return cfg
}

func TestOverride_UnsetFlagsKeepFileValues(t *testing.T) {
	cmd, flags := parsedFlags(t, true, true)

	cfg := fileConfig()
	flags.override(cmd)(cfg)

	assert.Equal(t, fileConfig(), cfg)
}

func TestOverride_SetFlagsWin(t *testing.T) {
	cmd, flags := parsedFlags(t, true, true,
		"--aws-profile", "flag-profile",
		"--stack-name", "from-flag",
		"--bastion-id", "i-1",
		"--vpc-zones", "us-east-1a,us-east-1b",
		"--isolate-router=false",
		"--isolate-control-plane",
		"--control-plane-colocate", "data,router",
		"--etcd-instances", "5",
		"--other-plane-instance-size", "c4.large",
		"--channel", "beta",
		"--updating",
		"--format", "json",
		"--upload", "s3://bucket/prefix",
		"--create-bucket",
	)

	cfg := fileConfig()
	flags.override(cmd)(cfg)

	assert.Equal(t, "flag-profile", cfg.Profile)
	assert.Equal(t, "from-flag", cfg.StackName)
	assert.Equal(t, "vpc-file", cfg.Network.VPCID)
	assert.Equal(t, "i-1", cfg.Network.BastionID)
	assert.Equal(t, []string{"us-east-1a", "us-east-1b"}, cfg.Network.Zones)
	assert.False(t, cfg.Planes.Router.Isolate)
	assert.Equal(t, 4, cfg.Planes.Router.Instances)
	assert.True(t, cfg.Planes.Control.Isolate)
	assert.Equal(t, []string{"data", "router"}, cfg.Planes.Control.Colocate)
	assert.Equal(t, 5, cfg.Planes.Etcd.Instances)
	assert.Equal(t, config.DefaultInstancesMax, cfg.Planes.Etcd.InstancesMax)
	assert.Equal(t, "c4.large", cfg.Planes.Other.InstanceSize)
	assert.Equal(t, "beta", cfg.CoreOS.Channel)
	assert.True(t, cfg.Discovery.Updating)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "s3://bucket/prefix", cfg.Output.Upload)
	assert.True(t, cfg.Output.CreateBucket)
}

func TestBindConfigFlags_Sections(t *testing.T) {
	cmd := &cobra.Command{Use: "plan"}
	bindConfigFlags(cmd, false, false)

	for _, name := range []string{"config", "stack-name", "isolate-router", "router-mesh-colocate", "data-plane-instances-max", "other-plane-instances"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
	for _, name := range []string{"vpc-id", "channel", "format", "upload", "etcd-colocate", "isolate-other-plane"} {
		assert.Nil(t, cmd.Flags().Lookup(name), name)
	}

	maxFlag := cmd.Flags().Lookup("data-plane-instances-max")
	assert.Equal(t, "25", maxFlag.DefValue)
}

func TestProfileOrEnv(t *testing.T) {
	t.Setenv(config.EnvProfile, "env-profile")

	cmd, _ := parsedFlags(t, false, false)
	assert.Equal(t, "env-profile", profileOrEnv(cmd.Flags()))

	cmd, _ = parsedFlags(t, false, false, "--aws-profile", "flag-profile")
	assert.Equal(t, "flag-profile", profileOrEnv(cmd.Flags()))
}
