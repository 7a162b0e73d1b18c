package testing

import (
	"sort"

	"github.com/stretchr/testify/mock"

	"github.com/imamik/stackplan/internal/platform/ec2"
)

// NetworkFixture builds a MockDescriber answering for a single VPC.
type NetworkFixture struct {
	vpcID   string
	gateway string
	bastion *ec2.Bastion
	subnets []ec2.Subnet
	public  []string
}

// NewNetworkFixture creates a fixture for an existing VPC with gateway "igw-1".
func NewNetworkFixture(vpcID string) *NetworkFixture {
	return &NetworkFixture{vpcID: vpcID, gateway: "igw-1"}
}

// Public adds a public subnet.
func (f *NetworkFixture) Public(zone, id string) *NetworkFixture {
	f.subnets = append(f.subnets, ec2.Subnet{Zone: zone, ID: id})
	f.public = append(f.public, id)
	return f
}

// Private adds a private subnet.
func (f *NetworkFixture) Private(zone, id string) *NetworkFixture {
	f.subnets = append(f.subnets, ec2.Subnet{Zone: zone, ID: id})
	return f
}

// WithBastion registers a bastion instance living in the fixture's VPC.
func (f *NetworkFixture) WithBastion(host, securityGroup string) *NetworkFixture {
	f.bastion = &ec2.Bastion{Host: host, VPCID: f.vpcID, SecurityGroupID: securityGroup}
	return f
}

// Describer returns a mock answering every discovery query for the VPC.
// Subnets are returned sorted by zone, like the aws CLI query does.
func (f *NetworkFixture) Describer() *MockDescriber {
	subnets := append([]ec2.Subnet(nil), f.subnets...)
	sort.SliceStable(subnets, func(i, j int) bool { return subnets[i].Zone < subnets[j].Zone })

	m := &MockDescriber{}
	m.On("VPCExists", mock.Anything, f.vpcID).Return(true, nil)
	m.On("InternetGateway", mock.Anything, f.vpcID).Return(f.gateway, nil)
	m.On("GatewaySubnets", mock.Anything, f.vpcID, f.gateway).Return(append([]string{}, f.public...), nil)
	m.On("Subnets", mock.Anything, f.vpcID).Return(subnets, nil)
	if f.bastion != nil {
		m.On("DescribeBastion", mock.Anything, mock.Anything).Return(f.bastion, nil)
	}
	return m
}
