package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/imamik/stackplan/internal/config"
	"github.com/imamik/stackplan/internal/errdefs"
	"github.com/imamik/stackplan/internal/generate"
	"github.com/imamik/stackplan/internal/platform/coreos"
	"github.com/imamik/stackplan/internal/platform/ec2"
	"github.com/imamik/stackplan/internal/platform/s3"
	testutil "github.com/imamik/stackplan/internal/testing"
)

func stubCollaborators(t *testing.T) (*testutil.MockImageCatalog, *testutil.MockTokenIssuer) {
	t.Helper()
	images := &testutil.MockImageCatalog{}
	images.On("FetchAMIs", mock.Anything, "stable", "current").
		Return(coreos.Catalog{"us-east-1": {PV: "ami-pv", HVM: "ami-hvm"}}, nil)
	issuer := &testutil.MockTokenIssuer{}
	issuer.On("NewDiscoveryURL", mock.Anything, 3).Return("https://discovery.etcd.io/tok", nil)

	describer := testutil.NewNetworkFixture("vpc-123").
		Public("us-east-1a", "subnet-pub").
		Private("us-east-1a", "subnet-priv").
		Describer()

	newDescriber = func(string) ec2.NetworkDescriber { return describer }
	newImageCatalog = func() generate.ImageCatalog { return images }
	newTokenIssuer = func() generate.TokenIssuer { return issuer }
	return images, issuer
}

func TestGenerate_WritesTemplate(t *testing.T) {
	saveAndRestoreFactories(t)
	out, errOut := captureOutput(t)
	images, issuer := stubCollaborators(t)

	err := Generate(context.Background(), "", func(c *config.Config) {
		c.Network.VPCID = "vpc-123"
		c.Planes.Router.Isolate = true
	})
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	resources := doc["Resources"].(map[string]any)
	assert.Contains(t, resources, "RouterPlaneAutoScale")
	assert.Contains(t, resources, "OtherPlaneAutoScale")
	assert.Empty(t, errOut.String())

	images.AssertExpectations(t)
	issuer.AssertExpectations(t)
}

func TestGenerate_ProfilePassedToDescriber(t *testing.T) {
	saveAndRestoreFactories(t)
	captureOutput(t)
	stubCollaborators(t)

	var profile string
	inner := newDescriber
	newDescriber = func(p string) ec2.NetworkDescriber {
		profile = p
		return inner(p)
	}

	err := Generate(context.Background(), "", func(c *config.Config) {
		c.Profile = "deis"
		c.Network.VPCID = "vpc-123"
	})
	require.NoError(t, err)
	assert.Equal(t, "deis", profile)
}

func TestGenerate_ValidationFailsBeforeAnyCall(t *testing.T) {
	saveAndRestoreFactories(t)
	out, _ := captureOutput(t)
	runPipeline = func(*generate.Context) error {
		t.Fatal("pipeline must not run")
		return nil
	}

	tests := []struct {
		name     string
		override Override
	}{
		{name: "no network selector", override: func(*config.Config) {}},
		{name: "both selectors", override: func(c *config.Config) {
			c.Network.VPCID = "vpc-1"
			c.Network.BastionID = "i-1"
		}},
		{name: "unknown instance size", override: func(c *config.Config) {
			c.Network.VPCID = "vpc-1"
			c.Planes.Data.InstanceSize = "z9.huge"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Generate(context.Background(), "", tt.override)
			require.Error(t, err)
			assert.True(t, errdefs.IsConfiguration(err), "got %v", err)
		})
	}
	assert.Zero(t, out.Len())
}

func TestGenerate_PipelineErrorEmitsNothing(t *testing.T) {
	saveAndRestoreFactories(t)
	out, _ := captureOutput(t)
	stubCollaborators(t)
	checkTools = func() error { return errors.New("missing required tools: aws") }

	err := Generate(context.Background(), "", func(c *config.Config) { c.Network.VPCID = "vpc-123" })
	assert.ErrorContains(t, err, "missing required tools: aws")
	assert.Zero(t, out.Len())
}

func TestGenerate_Upload(t *testing.T) {
	saveAndRestoreFactories(t)
	_, errOut := captureOutput(t)
	stubCollaborators(t)

	uploader := &testutil.MockUploader{}
	uploader.On("UploadTemplate", mock.Anything, s3.Location{Bucket: "bucket", Prefix: "deis"}, mock.Anything, false).
		Return("https://bucket.s3.amazonaws.com/deis/deis-1.json", nil)

	var opts s3.Options
	newUploader = func(_ context.Context, o s3.Options) (generate.TemplateUploader, error) {
		opts = o
		return uploader, nil
	}

	err := Generate(context.Background(), "", func(c *config.Config) {
		c.Network.VPCID = "vpc-123"
		c.Output.Upload = "s3://bucket/deis"
		c.Output.Region = "eu-west-1"
	})
	require.NoError(t, err)

	assert.Equal(t, "eu-west-1", opts.Region)
	assert.Contains(t, errOut.String(), "Template URL: https://bucket.s3.amazonaws.com/deis/deis-1.json")
	uploader.AssertExpectations(t)
}

func TestGenerate_UploaderError(t *testing.T) {
	saveAndRestoreFactories(t)
	captureOutput(t)
	stubCollaborators(t)
	newUploader = func(context.Context, s3.Options) (generate.TemplateUploader, error) {
		return nil, errors.New("failed to load AWS config")
	}

	err := Generate(context.Background(), "", func(c *config.Config) {
		c.Network.VPCID = "vpc-123"
		c.Output.Upload = "s3://bucket"
	})
	assert.ErrorContains(t, err, "failed to load AWS config")
}
