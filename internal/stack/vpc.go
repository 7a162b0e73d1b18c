package stack

import (
	"encoding/json"
	"fmt"
	"slices"
)

// privateNetwork lists, per section, the entries that only exist to
// support private subnets behind the NAT and bastion hosts.
var privateNetwork = []struct {
	section string
	keys    []string
}{
	{SectionParameters, []string{
		"KeyPair", "IamInstanceProfile", "SSHFrom", "NatInstanceType", "BastionInstanceType",
		"EC2VirtualizationType", "EC2EBSVolumeType", "AssociatePublicIP", "RootVolumeSize",
	}},
	{SectionMappings, []string{"NatAMIs", "BastionAMIs"}},
	{SectionConditions, []string{"UseIamInstanceProfile"}},
	{SectionResources, []string{
		"PrivateSubnet1", "PrivateSubnet2", "PrivateSubnet3",
		"PrivateRouteTable", "PrivateRoute",
		"PrivateSubnet1RouteTableAssociation", "PrivateSubnet2RouteTableAssociation", "PrivateSubnet3RouteTableAssociation",
		"NatSecurityGroup", "NatHost", "NatIpAddress",
		"BastionSecurityGroup", "BastionHost", "BastionIpAddress",
	}},
	{SectionOutputs, []string{
		"PrivateSubnet1Id", "PrivateSubnet2Id", "PrivateSubnet3Id",
		"BastionSecurityGroupId", "BastionElasticIp",
	}},
}

var privateSubnetConfig = []string{"PrivateSubnet1", "PrivateSubnet2", "PrivateSubnet3"}

// VPCTemplate returns the network template. With private subnets it
// carries the NAT and bastion AMI mappings; without, everything serving
// the private network is removed.
func VPCTemplate(includePrivateSubnets bool) (*Document, error) {
	d, err := loadAsset("vpc.template.json")
	if err != nil {
		return nil, err
	}

	if includePrivateSubnets {
		for mapping, file := range map[string]string{"NatAMIs": "nat-amis.json", "BastionAMIs": "bastion-amis.json"} {
			raw, err := readAsset(file)
			if err != nil {
				return nil, err
			}
			var amis map[string]any
			if err := json.Unmarshal(raw, &amis); err != nil {
				return nil, fmt.Errorf("failed to decode %s: %w", file, err)
			}
			d.Mappings()[mapping] = amis
		}
		return d, nil
	}

	for _, s := range privateNetwork {
		if err := d.Delete(s.section, s.keys...); err != nil {
			return nil, err
		}
	}
	subnets, err := d.Entry(SectionMappings, "SubnetConfig")
	if err != nil {
		return nil, err
	}
	for _, k := range privateSubnetConfig {
		delete(subnets, k)
	}
	return d, nil
}

// IncludePrivateSubnets interprets the INCLUDE_PRIVATE_SUBNETS setting.
// An empty value means true.
func IncludePrivateSubnets(v string) bool {
	if v == "" {
		return true
	}
	return slices.Contains([]string{"true", "TRUE", "True", "1", "yes"}, v)
}
