package stack

import (
	"fmt"
	"slices"

	"github.com/imamik/stackplan/internal/errdefs"
	"github.com/imamik/stackplan/internal/log"
	"github.com/imamik/stackplan/internal/planes"
	"github.com/imamik/stackplan/internal/platform/coreos"
	"github.com/imamik/stackplan/internal/topology"
	"github.com/imamik/stackplan/internal/userdata"
	"github.com/imamik/stackplan/internal/util/naming"
)

// Resource and parameter keys of the cluster template.
const (
	resourceSecurityGroup    = "CoreOSSecurityGroup"
	resourceELB              = "DeisWebELB"
	resourceELBSecurityGroup = "DeisWebELBSecurityGroup"

	paramSSHFrom           = "SSHFrom"
	paramBastionSG         = "BastionSecurityGroupID"
	paramAssociatePublicIP = "AssociatePublicIP"
	paramClusterName       = "ClusterName"

	mappingCoreOSAMIs = "CoreOSAMIs"
)

// UserDataSource renders the bootstrap document of a node group.
type UserDataSource interface {
	ForGroup(g *planes.NodeGroup) (string, error)
}

// Config carries the per-run inputs of a synthesis besides the groups,
// the topology and the image catalog.
type Config struct {
	UserData UserDataSource
	// ClusterName becomes the ClusterName parameter default when set.
	ClusterName string
}

// Synthesize merges one copy of the per-plane template per node group into
// base and binds the network, the images and the SSH ingress policy.
//
// base is modified in place and returned. Groups are updated with their
// zones, subnets and load balancer attachment.
func Synthesize(base *Document, groups []*planes.NodeGroup, topo *topology.Topology, images coreos.Catalog, cfg Config) (*Document, error) {
	if cfg.UserData == nil {
		return nil, errdefs.Configuration("no user-data source configured")
	}
	logger := log.WithComponent("stack")

	sizes, err := InstanceSizes(base)
	if err != nil {
		return nil, err
	}

	var lb LoadBalancerAllocator
	for _, g := range groups {
		g.Zones = slices.Clone(topo.Zones)
		g.Subnets = slices.Clone(topo.NodeSubnets())

		if err := addGroup(base, g, sizes, cfg.UserData, &lb); err != nil {
			return nil, fmt.Errorf("node group %s: %w", g.Name, err)
		}
		logger.Debug().
			Str("group", string(g.Name)).
			Str("role", string(g.Role)).
			Bool("load_balancer", g.LoadBalancer).
			Msg("added node group")
	}

	base.Mappings()[mappingCoreOSAMIs] = images.Mapping()

	for _, r := range []string{resourceELBSecurityGroup, resourceSecurityGroup} {
		props, err := base.Properties(r)
		if err != nil {
			return nil, err
		}
		props["VpcId"] = topo.VPCID
	}

	elb, err := base.Properties(resourceELB)
	if err != nil {
		return nil, err
	}
	elb["Subnets"] = slices.Clone(topo.Subnets)

	if topo.PublicNodePlacement() {
		p, err := base.Entry(SectionParameters, paramAssociatePublicIP)
		if err != nil {
			return nil, err
		}
		p["Default"] = "true"
	}

	if cfg.ClusterName != "" {
		if p, err := base.Entry(SectionParameters, paramClusterName); err == nil {
			p["Default"] = cfg.ClusterName
		}
	}

	if err := restrictSSHIngress(base, topo.Bastion != nil, topo.BastionSecurityGroup()); err != nil {
		return nil, err
	}

	return base, nil
}

func addGroup(d *Document, g *planes.NodeGroup, sizes []string, ud UserDataSource, lb *LoadBalancerAllocator) error {
	title := g.Title()
	resources, err := PlaneResources(title)
	if err != nil {
		return err
	}

	existing := d.Resources()
	for key := range resources {
		if _, ok := existing[key]; ok {
			return errdefs.Collision("resource %s already exists", key)
		}
	}

	sizeParam := naming.SizeParameter(title)
	if d.Has(SectionParameters, sizeParam) {
		return errdefs.Collision("parameter %s already exists", sizeParam)
	}

	plane := &Document{root: map[string]any{SectionResources: resources}}
	launch, err := plane.Properties(naming.LaunchConfig(title))
	if err != nil {
		return err
	}
	scale, err := plane.Properties(naming.AutoScale(title))
	if err != nil {
		return err
	}

	rendered, err := ud.ForGroup(g)
	if err != nil {
		return err
	}
	if err := setUserData(launch, rendered); err != nil {
		return err
	}

	if g.InstanceSize != "" {
		if !slices.Contains(sizes, g.InstanceSize) {
			return errdefs.Configuration("instance size %q is not allowed by the template", g.InstanceSize)
		}
		launch["InstanceType"] = g.InstanceSize
	}

	scale["MaxSize"] = g.MaxInstances
	scale["AvailabilityZones"] = g.Zones
	scale["VPCZoneIdentifier"] = g.Subnets

	if lb.Claim(g) {
		scale["LoadBalancerNames"] = []any{map[string]any{"Ref": resourceELB}}
	}

	for key, r := range resources {
		existing[key] = r
	}
	d.Parameters()[sizeParam] = map[string]any{
		"Default":     g.MinInstances,
		"MinValue":    g.MinInstances,
		"Description": fmt.Sprintf("Number of nodes in the cluster (%d-%d)", g.MinInstances, g.MaxInstances),
		"Type":        "Number",
	}
	return nil
}

func setUserData(launch map[string]any, rendered string) error {
	ud, ok := launch["UserData"].(map[string]any)
	if !ok {
		return errdefs.Configuration("launch configuration has no UserData")
	}
	b64, ok := ud["Fn::Base64"].(map[string]any)
	if !ok {
		return errdefs.Configuration("launch configuration UserData is not base64 encoded")
	}
	b64["Fn::Join"] = userdata.Payload(rendered)
	return nil
}

// restrictSSHIngress keeps exactly one of the two SSH ingress rules of the
// node security group: the bastion rule when a bastion is used, the
// SSHFrom CIDR rule otherwise. The parameter of the dropped rule goes too.
func restrictSSHIngress(d *Document, bastion bool, bastionSG string) error {
	props, err := d.Properties(resourceSecurityGroup)
	if err != nil {
		return err
	}
	rules, _ := props["SecurityGroupIngress"].([]any)

	keep, drop := paramSSHFrom, paramBastionSG
	if bastion {
		keep, drop = paramBastionSG, paramSSHFrom
	}

	var kept []any
	var found, dropped int
	for _, rule := range rules {
		switch ingressRef(rule) {
		case keep:
			found++
			kept = append(kept, rule)
		case drop:
			dropped++
		default:
			kept = append(kept, rule)
		}
	}
	if found != 1 || dropped != 1 {
		return errdefs.Configuration("%s must have exactly one %s and one %s ingress rule", resourceSecurityGroup, paramSSHFrom, paramBastionSG)
	}
	props["SecurityGroupIngress"] = kept

	if err := d.Delete(SectionParameters, drop); err != nil {
		return err
	}
	if bastion {
		p, err := d.Entry(SectionParameters, paramBastionSG)
		if err != nil {
			return err
		}
		p["Default"] = bastionSG
	}
	return nil
}

// ingressRef returns the parameter an ingress rule's source refers to.
func ingressRef(rule any) string {
	m, ok := rule.(map[string]any)
	if !ok {
		return ""
	}
	for _, field := range []string{"CidrIp", "SourceSecurityGroupId"} {
		if ref, ok := m[field].(map[string]any); ok {
			if name, ok := ref["Ref"].(string); ok {
				return name
			}
		}
	}
	return ""
}
