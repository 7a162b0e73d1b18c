package ec2

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/imamik/stackplan/internal/errdefs"
	"github.com/imamik/stackplan/internal/log"
)

// Bastion describes the bastion host used to reach the cluster.
type Bastion struct {
	Host            string `json:"host"`
	VPCID           string `json:"vpc_id"`
	SecurityGroupID string `json:"sg"`
}

// Subnet is a subnet together with its availability zone.
type Subnet struct {
	Zone string
	ID   string
}

// NetworkDescriber answers the read-only questions needed to discover a
// VPC's topology.
type NetworkDescriber interface {
	// VPCExists reports whether the VPC exists in the account.
	VPCExists(ctx context.Context, vpcID string) (bool, error)
	// DescribeBastion resolves a bastion instance's address, VPC and
	// security group.
	DescribeBastion(ctx context.Context, instanceID string) (*Bastion, error)
	// InternetGateway returns the internet gateway attached to the VPC,
	// or "" when there is none.
	InternetGateway(ctx context.Context, vpcID string) (string, error)
	// GatewaySubnets returns the subnets associated with a route table that
	// routes through the given gateway.
	GatewaySubnets(ctx context.Context, vpcID, gatewayID string) ([]string, error)
	// Subnets returns every subnet of the VPC sorted by zone.
	Subnets(ctx context.Context, vpcID string) ([]Subnet, error)
}

const bastionQuery = `Reservations[0].Instances[0].{"host": PublicIpAddress, "vpc_id": NetworkInterfaces[0].VpcId, "sg": SecurityGroups[0].GroupId}`

// Client implements NetworkDescriber on top of a Runner.
type Client struct {
	runner Runner
}

// NewClient creates a client that issues queries through runner.
func NewClient(runner Runner) *Client {
	return &Client{runner: runner}
}

// VPCExists implements NetworkDescriber.
func (c *Client) VPCExists(ctx context.Context, vpcID string) (bool, error) {
	out, err := c.runner.Run(ctx, "ec2", "describe-vpcs",
		"--filters", "Name=vpc-id,Values="+vpcID,
		"--output", "text")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(string(out)) != "", nil
}

// DescribeBastion implements NetworkDescriber.
func (c *Client) DescribeBastion(ctx context.Context, instanceID string) (*Bastion, error) {
	out, err := c.runner.Run(ctx, "ec2", "describe-instances",
		"--instance-ids", instanceID,
		"--query", bastionQuery,
		"--output", "json")
	if err != nil {
		return nil, err
	}

	var bastion *Bastion
	if err := decode(out, &bastion, "describe-instances"); err != nil {
		return nil, err
	}
	if bastion == nil || bastion.VPCID == "" {
		return nil, errdefs.NotFound("bastion instance %s not found or not attached to a VPC", instanceID)
	}
	return bastion, nil
}

// InternetGateway implements NetworkDescriber.
func (c *Client) InternetGateway(ctx context.Context, vpcID string) (string, error) {
	out, err := c.runner.Run(ctx, "ec2", "describe-internet-gateways",
		"--filters", "Name=attachment.vpc-id,Values="+vpcID,
		"--query", "InternetGateways[].InternetGatewayId",
		"--output", "text")
	if err != nil {
		return "", err
	}

	fields := strings.Fields(string(out))
	if len(fields) == 0 {
		return "", nil
	}
	if len(fields) > 1 {
		logger := log.WithComponent("ec2")
		logger.Debug().
			Str("vpc_id", vpcID).
			Strs("gateways", fields).
			Str("using", fields[0]).
			Msg("multiple internet gateways attached")
	}
	return fields[0], nil
}

// GatewaySubnets implements NetworkDescriber.
func (c *Client) GatewaySubnets(ctx context.Context, vpcID, gatewayID string) ([]string, error) {
	out, err := c.runner.Run(ctx, "ec2", "describe-route-tables",
		"--filters", "Name=vpc-id,Values="+vpcID, "Name=route.gateway-id,Values="+gatewayID,
		"--query", "RouteTables[].Associations[].SubnetId",
		"--output", "json")
	if err != nil {
		return nil, err
	}

	// The main route table association carries no subnet id.
	var ids []*string
	if err := decode(out, &ids, "describe-route-tables"); err != nil {
		return nil, err
	}

	subnets := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != nil && *id != "" {
			subnets = append(subnets, *id)
		}
	}
	return subnets, nil
}

// Subnets implements NetworkDescriber.
func (c *Client) Subnets(ctx context.Context, vpcID string) ([]Subnet, error) {
	out, err := c.runner.Run(ctx, "ec2", "describe-subnets",
		"--filters", "Name=vpc-id,Values="+vpcID,
		"--query", "sort_by(Subnets, &AvailabilityZone)[*].[AvailabilityZone, SubnetId]",
		"--output", "json")
	if err != nil {
		return nil, err
	}

	var pairs [][]string
	if err := decode(out, &pairs, "describe-subnets"); err != nil {
		return nil, err
	}

	subnets := make([]Subnet, 0, len(pairs))
	for _, pair := range pairs {
		if len(pair) != 2 {
			return nil, errdefs.ExternalCall(nil, "describe-subnets returned malformed entry %v", pair)
		}
		subnets = append(subnets, Subnet{Zone: pair[0], ID: pair[1]})
	}
	return subnets, nil
}

func decode(out []byte, v any, query string) error {
	if err := json.Unmarshal(out, v); err != nil {
		return errdefs.ExternalCall(err, "%s returned malformed JSON", query)
	}
	return nil
}

// String is used in log output.
func (s Subnet) String() string {
	return fmt.Sprintf("%s/%s", s.Zone, s.ID)
}
