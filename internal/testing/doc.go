// Package testing provides test utilities, mocks and fixtures shared by
// unit tests across packages.
//
//   - MockDescriber: testify mock of ec2.NetworkDescriber
//   - MockImageCatalog, MockTokenIssuer, MockUploader: mocks of the HTTP
//     and S3 collaborators
//   - NetworkFixture: pre-configured describer for common VPC layouts
//   - ConfigBuilder: fluent builder for test configurations
//
// Usage:
//
//	d := testing.NewNetworkFixture("vpc-123").
//	    Public("us-east-1a", "subnet-a").
//	    Private("us-east-1b", "subnet-b").
//	    Describer()
package testing
