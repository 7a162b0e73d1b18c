package handlers

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/imamik/stackplan/internal/generate"
	"github.com/imamik/stackplan/internal/platform/coreos"
	"github.com/imamik/stackplan/internal/platform/ec2"
	"github.com/imamik/stackplan/internal/platform/etcd"
	"github.com/imamik/stackplan/internal/platform/s3"
	"github.com/imamik/stackplan/internal/stack"
	"github.com/imamik/stackplan/internal/util/prerequisites"
)

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// newDescriber creates the network describer for an AWS CLI profile.
	newDescriber = func(profile string) ec2.NetworkDescriber {
		return ec2.NewClient(ec2.NewCLIRunner(profile))
	}

	// newImageCatalog creates the CoreOS release client.
	newImageCatalog = func() generate.ImageCatalog {
		return coreos.NewClient()
	}

	// newTokenIssuer creates the etcd discovery client.
	newTokenIssuer = func() generate.TokenIssuer {
		return etcd.NewClient()
	}

	// newUploader creates the S3 template uploader.
	newUploader = func(ctx context.Context, opts s3.Options) (generate.TemplateUploader, error) {
		client, err := s3.NewClient(ctx, opts)
		if err != nil {
			return nil, err
		}
		return client, nil
	}

	// checkTools verifies the aws CLI is installed.
	checkTools = func() error {
		return prerequisites.Check(prerequisites.DiscoveryTools()).Error()
	}

	// runPipeline runs the generate phases.
	runPipeline = func(ctx *generate.Context) error {
		return generate.DefaultPipeline().Run(ctx)
	}

	// stdout receives rendered documents.
	stdout io.Writer = os.Stdout

	// stderr receives messages that must not mix with the document.
	stderr io.Writer = os.Stderr
)

// Generate synthesizes the cluster template.
//
// The configuration is loaded from configPath (or stackplan.yaml, or the
// defaults), overridden by flags and validated before anything is queried.
// The document is written to the output path or stdout only after every
// phase, including the optional upload, succeeded.
func Generate(ctx context.Context, configPath string, override Override) error {
	cfg, err := loadConfig(configPath, override)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	sizes, err := stack.DefaultInstanceSizes()
	if err != nil {
		return err
	}
	if err := cfg.ValidateInstanceSizes(sizes); err != nil {
		return err
	}

	deps := generate.Dependencies{
		Describer:  newDescriber(cfg.Profile),
		Images:     newImageCatalog(),
		Discovery:  newTokenIssuer(),
		CheckTools: checkTools,
	}
	if cfg.Output.Upload != "" {
		uploader, err := newUploader(ctx, s3.Options{Profile: cfg.Profile, Region: cfg.Output.Region})
		if err != nil {
			return err
		}
		deps.Uploader = uploader
	}

	gctx := generate.NewContext(ctx, cfg, deps)
	gctx.Output = stdout
	if err := runPipeline(gctx); err != nil {
		return err
	}

	if url := gctx.State.TemplateURL; url != "" {
		fmt.Fprintf(stderr, "Template URL: %s\n", url)
	}
	return nil
}
