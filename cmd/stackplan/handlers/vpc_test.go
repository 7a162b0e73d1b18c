package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/stackplan/internal/errdefs"
	"github.com/imamik/stackplan/internal/platform/ec2"
	testutil "github.com/imamik/stackplan/internal/testing"
)

func TestVPC_RendersShell(t *testing.T) {
	saveAndRestoreFactories(t)
	out, _ := captureOutput(t)

	d := testutil.NewNetworkFixture("vpc-123").
		Public("us-east-1a", "subnet-a").
		Private("us-east-1b", "subnet-b").
		Describer()
	var profile string
	newDescriber = func(p string) ec2.NetworkDescriber {
		profile = p
		return d
	}

	err := VPC(context.Background(), VPCOptions{Profile: "deis", VPCID: "vpc-123", Format: "shell"})
	require.NoError(t, err)

	assert.Equal(t, "deis", profile)
	assert.Contains(t, out.String(), `DEIS_VPC_ID="vpc-123"`)
	assert.Contains(t, out.String(), "subnet-a")
}

func TestVPC_Errors(t *testing.T) {
	saveAndRestoreFactories(t)
	captureOutput(t)

	tests := []struct {
		name  string
		opts  VPCOptions
		check func(error) bool
	}{
		{name: "no selector", opts: VPCOptions{Format: "shell"}, check: errdefs.IsConfiguration},
		{name: "both selectors", opts: VPCOptions{VPCID: "vpc-1", BastionID: "i-1", Format: "shell"}, check: errdefs.IsConfiguration},
		{name: "bad format", opts: VPCOptions{VPCID: "vpc-1", Format: "xml"}, check: errdefs.IsConfiguration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VPC(context.Background(), tt.opts)
			require.Error(t, err)
			assert.True(t, tt.check(err), "got %v", err)
		})
	}
}

func TestVPC_MissingTool(t *testing.T) {
	saveAndRestoreFactories(t)
	captureOutput(t)
	checkTools = func() error { return errors.New("missing required tools: aws") }

	err := VPC(context.Background(), VPCOptions{VPCID: "vpc-1", Format: "json"})
	assert.ErrorContains(t, err, "missing required tools")
}
