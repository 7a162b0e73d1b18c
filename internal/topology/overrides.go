package topology

// Overrides replaces discovered values with user-supplied ones. Empty
// fields keep the discovered value.
type Overrides struct {
	Zones          []string
	Subnets        []string
	PrivateSubnets []string
}

// ApplyOverrides replaces the discovered zones and subnets.
func (t *Topology) ApplyOverrides(o Overrides) {
	if len(o.Zones) > 0 {
		t.Zones = append([]string(nil), o.Zones...)
	}
	if len(o.Subnets) > 0 {
		t.Subnets = append([]string(nil), o.Subnets...)
	}
	if len(o.PrivateSubnets) > 0 {
		t.PrivateSubnets = append([]string(nil), o.PrivateSubnets...)
	}
}

// NodeSubnets returns the subnets node groups are placed in: private
// subnets when the VPC has any, public subnets otherwise.
func (t *Topology) NodeSubnets() []string {
	if len(t.PrivateSubnets) > 0 {
		return t.PrivateSubnets
	}
	return t.Subnets
}

// PublicNodePlacement reports whether nodes fall back to public subnets.
func (t *Topology) PublicNodePlacement() bool {
	return len(t.PrivateSubnets) == 0
}

// BastionSecurityGroup returns the bastion's security group, or "".
func (t *Topology) BastionSecurityGroup() string {
	if t.Bastion == nil {
		return ""
	}
	return t.Bastion.SecurityGroupID
}
