package handlers

import (
	"context"
	"slices"

	"github.com/imamik/stackplan/internal/errdefs"
	"github.com/imamik/stackplan/internal/topology"
)

// VPCOptions selects the network to describe and the output format.
type VPCOptions struct {
	Profile   string
	VPCID     string
	BastionID string
	Format    string
}

// VPC discovers a network and prints its zones and subnets.
func VPC(ctx context.Context, opts VPCOptions) error {
	if (opts.VPCID == "") == (opts.BastionID == "") {
		return errdefs.Configuration("exactly one of --vpc-id or --bastion-id is required")
	}
	if !slices.Contains(topology.Formats, opts.Format) {
		return errdefs.Configuration("unknown format %q: must be one of %v", opts.Format, topology.Formats)
	}
	if err := checkTools(); err != nil {
		return err
	}

	topo, err := topology.Discover(ctx, newDescriber(opts.Profile), topology.Options{
		VPCID:     opts.VPCID,
		BastionID: opts.BastionID,
	})
	if err != nil {
		return err
	}
	return topo.Render(stdout, opts.Format)
}
