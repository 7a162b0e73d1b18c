package generate

import (
	"context"
	"io"
	"os"

	"github.com/imamik/stackplan/internal/config"
	"github.com/imamik/stackplan/internal/planes"
	"github.com/imamik/stackplan/internal/platform/coreos"
	"github.com/imamik/stackplan/internal/platform/ec2"
	"github.com/imamik/stackplan/internal/platform/s3"
	"github.com/imamik/stackplan/internal/stack"
	"github.com/imamik/stackplan/internal/topology"
)

// ImageCatalog fetches the CoreOS images of a release.
// Implemented by internal/platform/coreos.Client.
type ImageCatalog interface {
	FetchAMIs(ctx context.Context, channel, version string) (coreos.Catalog, error)
}

// TokenIssuer requests a new etcd discovery token.
// Implemented by internal/platform/etcd.Client.
type TokenIssuer interface {
	NewDiscoveryURL(ctx context.Context, size int) (string, error)
}

// TemplateUploader stores a rendered template.
// Implemented by internal/platform/s3.Client.
type TemplateUploader interface {
	UploadTemplate(ctx context.Context, loc s3.Location, up s3.Upload, create bool) (string, error)
}

// Dependencies are the collaborators a run talks to. Uploader may be nil
// when no upload location is configured; CheckTools may be nil to skip the
// PATH check.
type Dependencies struct {
	Describer  ec2.NetworkDescriber
	Images     ImageCatalog
	Discovery  TokenIssuer
	Uploader   TemplateUploader
	CheckTools func() error
}

// State holds the results of the phases. It is populated as each phase
// completes.
type State struct {
	Topology     *topology.Topology
	Groups       []*planes.NodeGroup
	DiscoveryURL string
	Images       coreos.Catalog
	Document     *stack.Document
	Format       stack.Format
	Rendered     []byte
	TemplateURL  string
}

// Context wraps the configuration, the collaborators and the state of a run.
type Context struct {
	context.Context
	Config *config.Config
	Deps   Dependencies
	State  *State
	// Output receives the rendered document when no output path is set.
	Output io.Writer
}

// NewContext creates a run context writing to stdout.
func NewContext(ctx context.Context, cfg *config.Config, deps Dependencies) *Context {
	return &Context{
		Context: ctx,
		Config:  cfg,
		Deps:    deps,
		State:   &State{},
		Output:  os.Stdout,
	}
}
