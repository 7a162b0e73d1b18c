package generate

import (
	"fmt"
	"os"

	"github.com/imamik/stackplan/internal/config"
	"github.com/imamik/stackplan/internal/errdefs"
	"github.com/imamik/stackplan/internal/log"
	"github.com/imamik/stackplan/internal/planes"
	"github.com/imamik/stackplan/internal/platform/s3"
	"github.com/imamik/stackplan/internal/stack"
	"github.com/imamik/stackplan/internal/topology"
	"github.com/imamik/stackplan/internal/userdata"
)

// PrerequisitesPhase checks the client tools are installed.
type PrerequisitesPhase struct{}

func (PrerequisitesPhase) Name() string { return "prerequisites" }

func (PrerequisitesPhase) Run(ctx *Context) error {
	if ctx.Deps.CheckTools == nil {
		return nil
	}
	return ctx.Deps.CheckTools()
}

// TopologyPhase discovers the network and applies user overrides.
type TopologyPhase struct{}

func (TopologyPhase) Name() string { return "topology" }

func (TopologyPhase) Run(ctx *Context) error {
	if ctx.Deps.Describer == nil {
		return errdefs.Configuration("no network describer configured")
	}
	n := ctx.Config.Network
	topo, err := topology.Discover(ctx, ctx.Deps.Describer, topology.Options{
		VPCID:     n.VPCID,
		BastionID: n.BastionID,
	})
	if err != nil {
		return err
	}
	topo.ApplyOverrides(topology.Overrides{
		Zones:          n.Zones,
		Subnets:        n.Subnets,
		PrivateSubnets: n.PrivateSubnets,
	})
	ctx.State.Topology = topo
	return nil
}

// PlanesPhase partitions the planes into sized node groups.
type PlanesPhase struct{}

func (PlanesPhase) Name() string { return "planes" }

func (PlanesPhase) Run(ctx *Context) error {
	groups, err := ResolveGroups(ctx.Config)
	if err != nil {
		return err
	}
	ctx.State.Groups = groups
	return nil
}

// ResolveGroups resolves the isolation settings of cfg into sized node
// groups. It makes no external calls.
func ResolveGroups(cfg *config.Config) ([]*planes.NodeGroup, error) {
	reqs, err := cfg.Requests()
	if err != nil {
		return nil, errdefs.Configuration("%v", err)
	}
	groups, err := planes.Resolve(reqs)
	if err != nil {
		return nil, err
	}
	planes.ApplySizing(groups, cfg.Sizing())
	return groups, nil
}

// DiscoveryPhase obtains the etcd discovery URL. A configured URL is
// reused; an update run keeps whatever the base document carries.
type DiscoveryPhase struct{}

func (DiscoveryPhase) Name() string { return "discovery" }

func (DiscoveryPhase) Run(ctx *Context) error {
	logger := log.WithComponent("generate")
	d := ctx.Config.Discovery

	switch {
	case d.URL != "":
		ctx.State.DiscoveryURL = d.URL
		return nil
	case d.Updating:
		logger.Info().Msg("updating an existing stack, keeping the discovery URL")
		return nil
	}

	if ctx.Deps.Discovery == nil {
		return errdefs.Configuration("no discovery service configured")
	}
	coord := planes.CoordinationGroup(ctx.State.Groups)
	if coord == nil {
		return errdefs.Configuration("no node group hosts the etcd members")
	}

	url, err := ctx.Deps.Discovery.NewDiscoveryURL(ctx, coord.MinInstances)
	if err != nil {
		return err
	}
	logger.Info().Str("url", url).Int("size", coord.MinInstances).Msg("obtained discovery URL")
	ctx.State.DiscoveryURL = url
	return nil
}

// ImagesPhase downloads the CoreOS image catalog.
type ImagesPhase struct{}

func (ImagesPhase) Name() string { return "images" }

func (ImagesPhase) Run(ctx *Context) error {
	if ctx.Deps.Images == nil {
		return errdefs.Configuration("no image catalog configured")
	}
	c := ctx.Config.CoreOS
	images, err := ctx.Deps.Images.FetchAMIs(ctx, c.Channel, c.Version)
	if err != nil {
		return err
	}
	ctx.State.Images = images
	return nil
}

// SynthesizePhase builds the cluster template from the earlier results.
type SynthesizePhase struct{}

func (SynthesizePhase) Name() string { return "synthesize" }

func (SynthesizePhase) Run(ctx *Context) error {
	var base []byte
	if path := ctx.Config.Discovery.UserData; path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read user-data: %w", err)
		}
		base = data
	}

	dec, err := userdata.NewDecorator(base)
	if err != nil {
		return err
	}
	dec.SetDiscoveryURL(ctx.State.DiscoveryURL)

	tmpl, err := stack.ClusterTemplate()
	if err != nil {
		return err
	}

	doc, err := stack.Synthesize(tmpl, ctx.State.Groups, ctx.State.Topology, ctx.State.Images, stack.Config{
		UserData:    dec,
		ClusterName: ctx.Config.StackName,
	})
	if err != nil {
		return err
	}
	ctx.State.Document = doc
	return nil
}

// RenderPhase serializes the document in the configured format.
type RenderPhase struct{}

func (RenderPhase) Name() string { return "render" }

func (RenderPhase) Run(ctx *Context) error {
	format, err := stack.ParseFormat(ctx.Config.Output.Format)
	if err != nil {
		return err
	}
	out, err := ctx.State.Document.Encode(format, ctx.Config.Output.Compact)
	if err != nil {
		return err
	}
	ctx.State.Format = format
	ctx.State.Rendered = out
	return nil
}

// UploadPhase stores the rendered document in S3 when an upload location
// is configured.
type UploadPhase struct{}

func (UploadPhase) Name() string { return "upload" }

func (UploadPhase) Run(ctx *Context) error {
	o := ctx.Config.Output
	if o.Upload == "" {
		return nil
	}
	if ctx.Deps.Uploader == nil {
		return errdefs.Configuration("no uploader configured for %s", o.Upload)
	}

	loc, err := s3.ParseLocation(o.Upload)
	if err != nil {
		return err
	}
	url, err := ctx.Deps.Uploader.UploadTemplate(ctx, loc, s3.Upload{
		Stack:       ctx.Config.StackName,
		Extension:   ctx.State.Format.Extension(),
		ContentType: ctx.State.Format.ContentType(),
		Body:        ctx.State.Rendered,
	}, o.CreateBucket)
	if err != nil {
		return err
	}
	logger := log.WithComponent("generate")
	logger.Info().Str("url", url).Msg("uploaded template")
	ctx.State.TemplateURL = url
	return nil
}

// WritePhase writes the rendered document to the output path or writer.
type WritePhase struct{}

func (WritePhase) Name() string { return "write" }

func (WritePhase) Run(ctx *Context) error {
	if path := ctx.Config.Output.Path; path != "" {
		if err := os.WriteFile(path, ctx.State.Rendered, 0o644); err != nil { // #nosec G306 - templates hold no secrets
			return fmt.Errorf("failed to write template: %w", err)
		}
		return nil
	}
	if _, err := ctx.Output.Write(ctx.State.Rendered); err != nil {
		return fmt.Errorf("failed to write template: %w", err)
	}
	return nil
}
