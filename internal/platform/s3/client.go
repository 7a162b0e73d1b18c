package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"

	"github.com/imamik/stackplan/internal/errdefs"
	"github.com/imamik/stackplan/internal/util/naming"
)

// DefaultRegion is used when neither the options nor the shared
// configuration name a region.
const DefaultRegion = "us-east-1"

// Options configures the client. All fields are optional.
type Options struct {
	// Profile selects a shared configuration profile.
	Profile string
	Region  string
	// Endpoint overrides the service endpoint (path-style addressing).
	Endpoint string
	// AccessKey and SecretKey replace the credential chain when both are set.
	AccessKey string
	SecretKey string
}

// Client wraps the S3 client used for template uploads.
type Client struct {
	s3     *s3.Client
	region string
	newID  func() string
}

// NewClient creates a client from the shared AWS configuration.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	var loaders []func(*config.LoadOptions) error
	if opts.Profile != "" {
		loaders = append(loaders, config.WithSharedConfigProfile(opts.Profile))
	}
	if opts.Region != "" {
		loaders = append(loaders, config.WithRegion(opts.Region))
	}
	if opts.AccessKey != "" && opts.SecretKey != "" {
		loaders = append(loaders, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loaders...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	if cfg.Region == "" {
		cfg.Region = DefaultRegion
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &Client{s3: client, region: cfg.Region, newID: uuid.NewString}, nil
}

// Region returns the region requests are signed for.
func (c *Client) Region() string {
	return c.region
}

// Location is an s3://bucket/prefix destination.
type Location struct {
	Bucket string
	Prefix string
}

// String returns the s3:// form of the location.
func (l Location) String() string {
	if l.Prefix == "" {
		return "s3://" + l.Bucket
	}
	return "s3://" + l.Bucket + "/" + l.Prefix
}

// ParseLocation parses an s3://bucket[/prefix] URL.
func ParseLocation(raw string) (Location, error) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "s3" || u.Host == "" {
		return Location{}, errdefs.Configuration("upload location %q must look like s3://bucket/prefix", raw)
	}
	return Location{Bucket: u.Host, Prefix: strings.Trim(u.Path, "/")}, nil
}

// Upload describes a rendered template to store.
type Upload struct {
	Stack       string
	Extension   string
	ContentType string
	Body        []byte
}

// UploadTemplate stores a template under loc and returns its https URL.
// A missing bucket fails with a NotFoundError unless create is set, in
// which case the bucket is created first.
func (c *Client) UploadTemplate(ctx context.Context, loc Location, up Upload, create bool) (string, error) {
	exists, err := c.BucketExists(ctx, loc.Bucket)
	if err != nil {
		return "", err
	}
	if !exists {
		if !create {
			return "", errdefs.NotFound("bucket %s does not exist", loc.Bucket)
		}
		if err := c.CreateBucket(ctx, loc.Bucket); err != nil {
			return "", err
		}
	}

	key := naming.TemplateObject(loc.Prefix, up.Stack, c.newID(), up.Extension)
	if err := c.PutObject(ctx, loc.Bucket, key, up.ContentType, up.Body); err != nil {
		return "", err
	}
	return naming.TemplateURL(loc.Bucket, key), nil
}

// CreateBucket creates a new S3 bucket.
// Returns nil if the bucket already exists and is owned by us.
func (c *Client) CreateBucket(ctx context.Context, bucketName string) error {
	input := &s3.CreateBucketInput{Bucket: aws.String(bucketName)}
	if c.region != DefaultRegion {
		input.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(c.region),
		}
	}

	_, err := c.s3.CreateBucket(ctx, input)
	if err != nil {
		if isBucketAlreadyOwnedByYou(err) {
			return nil
		}
		return errdefs.ExternalCall(err, "failed to create bucket %s", bucketName)
	}
	return nil
}

// BucketExists checks if a bucket exists and is accessible.
func (c *Client) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	_, err := c.s3.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucketName),
	})
	if err != nil {
		if isNotFoundError(err) {
			return false, nil
		}
		return false, errdefs.ExternalCall(err, "failed to check bucket %s", bucketName)
	}
	return true, nil
}

// PutObject uploads an object to a bucket.
func (c *Client) PutObject(ctx context.Context, bucketName, key, contentType string, data []byte) error {
	input := &s3.PutObjectInput{
		Bucket:        aws.String(bucketName),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := c.s3.PutObject(ctx, input); err != nil {
		if isNotFoundError(err) {
			return errdefs.NotFound("bucket %s does not exist", bucketName)
		}
		return errdefs.ExternalCall(err, "failed to put object %s in bucket %s", key, bucketName)
	}
	return nil
}

// isBucketAlreadyOwnedByYou checks if the error indicates the bucket exists and is owned by us.
func isBucketAlreadyOwnedByYou(err error) bool {
	if err == nil {
		return false
	}

	var baoby *types.BucketAlreadyOwnedByYou
	if errors.As(err, &baoby) {
		return true
	}

	// Fall back to API error codes for responses the SDK does not model.
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "BucketAlreadyOwnedByYou"
	}

	return false
}

// isNotFoundError checks if the error is a not found error.
func isNotFoundError(err error) bool {
	if err == nil {
		return false
	}

	var nsb *types.NoSuchBucket
	if errors.As(err, &nsb) {
		return true
	}

	var nf *types.NotFound
	if errors.As(err, &nf) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		return code == "NotFound" || code == "NoSuchBucket" || code == "404"
	}

	return false
}
