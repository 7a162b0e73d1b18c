package ec2

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/stackplan/internal/errdefs"
	"github.com/imamik/stackplan/internal/log"
)

// fakeRunner returns canned output keyed by the aws subcommand.
type fakeRunner struct {
	outputs map[string]string
	err     error
	calls   [][]string
}

func (f *fakeRunner) Run(_ context.Context, args ...string) ([]byte, error) {
	f.calls = append(f.calls, args)
	if f.err != nil {
		return nil, f.err
	}
	return []byte(f.outputs[args[1]]), nil
}

// Compile-time check.
var _ NetworkDescriber = (*Client)(nil)

func TestClient_VPCExists(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   bool
	}{
		{"exists", "VPCS\t10.0.0.0/16\tdopt-1\tdefault\tFalse\tavailable\tvpc-123\n", true},
		{"missing", "", false},
		{"whitespace only", "\n  \n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &fakeRunner{outputs: map[string]string{"describe-vpcs": tt.output}}
			got, err := NewClient(r).VPCExists(context.Background(), "vpc-123")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, r.calls[0], "Name=vpc-id,Values=vpc-123")
		})
	}
}

func TestClient_DescribeBastion(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{
		"describe-instances": `{"host": "54.1.2.3", "vpc_id": "vpc-abc", "sg": "sg-999"}`,
	}}

	b, err := NewClient(r).DescribeBastion(context.Background(), "i-1")
	require.NoError(t, err)
	assert.Equal(t, &Bastion{Host: "54.1.2.3", VPCID: "vpc-abc", SecurityGroupID: "sg-999"}, b)
	assert.Contains(t, r.calls[0], bastionQuery)
}

func TestClient_DescribeBastion_Null(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{"describe-instances": "null\n"}}

	_, err := NewClient(r).DescribeBastion(context.Background(), "i-1")
	require.Error(t, err)
	assert.True(t, errdefs.IsNotFound(err))
}

func TestClient_DescribeBastion_Malformed(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{"describe-instances": "not json"}}

	_, err := NewClient(r).DescribeBastion(context.Background(), "i-1")
	require.Error(t, err)
	assert.True(t, errdefs.IsExternalCall(err))
}

func TestClient_InternetGateway(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{"describe-internet-gateways": "igw-42\n"}}

	gw, err := NewClient(r).InternetGateway(context.Background(), "vpc-1")
	require.NoError(t, err)
	assert.Equal(t, "igw-42", gw)

	r.outputs["describe-internet-gateways"] = ""
	gw, err = NewClient(r).InternetGateway(context.Background(), "vpc-1")
	require.NoError(t, err)
	assert.Empty(t, gw)
}

func TestClient_InternetGateway_MultipleAttachments(t *testing.T) {
	var buf bytes.Buffer
	saved := log.Logger
	log.Init(log.Config{Level: log.DebugLevel, JSONOutput: true, Output: &buf})
	t.Cleanup(func() {
		log.Logger = saved
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	})

	r := &fakeRunner{outputs: map[string]string{"describe-internet-gateways": "igw-1\tigw-2\n"}}

	gw, err := NewClient(r).InternetGateway(context.Background(), "vpc-1")
	require.NoError(t, err)
	assert.Equal(t, "igw-1", gw)
	assert.Contains(t, buf.String(), "multiple internet gateways attached")
	assert.Contains(t, buf.String(), `"gateways":["igw-1","igw-2"]`)
}

func TestClient_GatewaySubnets_SkipsMainAssociation(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{
		"describe-route-tables": `["subnet-a", null, "subnet-b"]`,
	}}

	got, err := NewClient(r).GatewaySubnets(context.Background(), "vpc-1", "igw-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"subnet-a", "subnet-b"}, got)

	args := strings.Join(r.calls[0], " ")
	assert.Contains(t, args, "Name=vpc-id,Values=vpc-1 Name=route.gateway-id,Values=igw-1")
}

func TestClient_Subnets(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{
		"describe-subnets": `[["us-east-1a", "subnet-1"], ["us-east-1b", "subnet-2"]]`,
	}}

	got, err := NewClient(r).Subnets(context.Background(), "vpc-1")
	require.NoError(t, err)
	assert.Equal(t, []Subnet{{Zone: "us-east-1a", ID: "subnet-1"}, {Zone: "us-east-1b", ID: "subnet-2"}}, got)
}

func TestClient_Subnets_MalformedPair(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{"describe-subnets": `[["us-east-1a"]]`}}

	_, err := NewClient(r).Subnets(context.Background(), "vpc-1")
	require.Error(t, err)
	assert.True(t, errdefs.IsExternalCall(err))
}

func TestClient_PropagatesRunnerError(t *testing.T) {
	runErr := errdefs.ExternalCall(errors.New("exit status 255"), "aws ec2 describe-subnets")
	r := &fakeRunner{err: runErr}

	_, err := NewClient(r).Subnets(context.Background(), "vpc-1")
	assert.ErrorIs(t, err, runErr)
}
