package topology

import (
	"context"
	"slices"

	"github.com/imamik/stackplan/internal/errdefs"
	"github.com/imamik/stackplan/internal/log"
	"github.com/imamik/stackplan/internal/platform/ec2"
)

// Options selects the network to discover. Exactly one of VPCID and
// BastionID is normally set; a bastion's VPC wins over VPCID.
type Options struct {
	VPCID     string
	BastionID string
}

// Topology is the discovered network layout. It is read-only once
// discovery returns, apart from explicit overrides.
type Topology struct {
	VPCID string
	// Bastion is set when the network was resolved through a bastion host.
	Bastion *ec2.Bastion

	// Zones holds availability zones in lexicographic order.
	Zones []string
	// Subnets holds public subnets in zone order.
	Subnets []string
	// PrivateSubnets holds private subnets in zone order.
	PrivateSubnets []string

	describer ec2.NetworkDescriber
	gateway   string
}

// Discover queries d for the topology selected by opts.
func Discover(ctx context.Context, d ec2.NetworkDescriber, opts Options) (*Topology, error) {
	logger := log.WithComponent("topology")
	t := &Topology{VPCID: opts.VPCID, describer: d}

	if opts.BastionID != "" {
		bastion, err := d.DescribeBastion(ctx, opts.BastionID)
		if err != nil {
			return nil, err
		}
		t.Bastion = bastion
		t.VPCID = bastion.VPCID
		logger.Debug().Str("bastion_id", opts.BastionID).Str("vpc_id", t.VPCID).Msg("resolved VPC from bastion")
	}

	if t.VPCID == "" {
		return nil, errdefs.NotFound("no VPC can be found")
	}

	exists, err := d.VPCExists(ctx, t.VPCID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errdefs.NotFound("VPC ID %s does not exist in this AWS setup", t.VPCID)
	}

	if err := t.discoverSubnets(ctx); err != nil {
		return nil, err
	}

	logger.Info().
		Str("vpc_id", t.VPCID).
		Strs("zones", t.Zones).
		Int("public_subnets", len(t.Subnets)).
		Int("private_subnets", len(t.PrivateSubnets)).
		Msg("discovered network topology")

	return t, nil
}

// Gateway returns the internet gateway attached to the VPC, or "" when the
// VPC has none. A found gateway is cached after the first lookup.
func (t *Topology) Gateway(ctx context.Context) (string, error) {
	if t.gateway != "" {
		return t.gateway, nil
	}

	gw, err := t.describer.InternetGateway(ctx, t.VPCID)
	if err != nil {
		return "", err
	}
	t.gateway = gw
	return gw, nil
}

func (t *Topology) discoverSubnets(ctx context.Context) error {
	public, err := t.publicSubnets(ctx)
	if err != nil {
		return err
	}

	all, err := t.describer.Subnets(ctx, t.VPCID)
	if err != nil {
		return err
	}

	// Subnet order within a zone is the order returned by the provider.
	byZone := make(map[string][]string)
	for _, s := range all {
		byZone[s.Zone] = append(byZone[s.Zone], s.ID)
	}

	zones := make([]string, 0, len(byZone))
	for zone := range byZone {
		zones = append(zones, zone)
	}
	slices.Sort(zones)

	t.Zones, t.Subnets, t.PrivateSubnets = nil, nil, nil
	for _, zone := range zones {
		t.Zones = append(t.Zones, zone)
		for _, id := range byZone[zone] {
			if public[id] {
				t.Subnets = append(t.Subnets, id)
			} else {
				t.PrivateSubnets = append(t.PrivateSubnets, id)
			}
		}
	}

	return nil
}

func (t *Topology) publicSubnets(ctx context.Context) (map[string]bool, error) {
	gw, err := t.Gateway(ctx)
	if err != nil {
		return nil, err
	}
	// Without an internet gateway every subnet is private.
	if gw == "" {
		logger := log.WithComponent("topology")
		logger.Debug().Str("vpc_id", t.VPCID).Msg("no internet gateway attached")
		return map[string]bool{}, nil
	}

	ids, err := t.describer.GatewaySubnets(ctx, t.VPCID, gw)
	if err != nil {
		return nil, err
	}

	public := make(map[string]bool, len(ids))
	for _, id := range ids {
		public[id] = true
	}
	return public, nil
}
