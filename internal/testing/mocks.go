package testing

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/imamik/stackplan/internal/platform/coreos"
	"github.com/imamik/stackplan/internal/platform/ec2"
	"github.com/imamik/stackplan/internal/platform/s3"
)

// MockDescriber is a mock implementation of ec2.NetworkDescriber.
type MockDescriber struct {
	mock.Mock
}

// VPCExists mocks the VPC existence check.
func (m *MockDescriber) VPCExists(ctx context.Context, vpcID string) (bool, error) {
	args := m.Called(ctx, vpcID)
	return args.Bool(0), args.Error(1)
}

// DescribeBastion mocks the bastion lookup.
func (m *MockDescriber) DescribeBastion(ctx context.Context, instanceID string) (*ec2.Bastion, error) {
	args := m.Called(ctx, instanceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ec2.Bastion), args.Error(1)
}

// InternetGateway mocks the gateway lookup.
func (m *MockDescriber) InternetGateway(ctx context.Context, vpcID string) (string, error) {
	args := m.Called(ctx, vpcID)
	return args.String(0), args.Error(1)
}

// GatewaySubnets mocks the route table lookup.
func (m *MockDescriber) GatewaySubnets(ctx context.Context, vpcID, gatewayID string) ([]string, error) {
	args := m.Called(ctx, vpcID, gatewayID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// Subnets mocks the subnet listing.
func (m *MockDescriber) Subnets(ctx context.Context, vpcID string) ([]ec2.Subnet, error) {
	args := m.Called(ctx, vpcID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ec2.Subnet), args.Error(1)
}

// MockImageCatalog is a mock of the CoreOS image catalog.
type MockImageCatalog struct {
	mock.Mock
}

// FetchAMIs mocks the catalog download.
func (m *MockImageCatalog) FetchAMIs(ctx context.Context, channel, version string) (coreos.Catalog, error) {
	args := m.Called(ctx, channel, version)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(coreos.Catalog), args.Error(1)
}

// MockTokenIssuer is a mock of the etcd discovery service.
type MockTokenIssuer struct {
	mock.Mock
}

// NewDiscoveryURL mocks the token request.
func (m *MockTokenIssuer) NewDiscoveryURL(ctx context.Context, size int) (string, error) {
	args := m.Called(ctx, size)
	return args.String(0), args.Error(1)
}

// MockUploader is a mock of the template upload.
type MockUploader struct {
	mock.Mock
}

// UploadTemplate mocks storing a rendered template.
func (m *MockUploader) UploadTemplate(ctx context.Context, loc s3.Location, up s3.Upload, create bool) (string, error) {
	args := m.Called(ctx, loc, up, create)
	return args.String(0), args.Error(1)
}
