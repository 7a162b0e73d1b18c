package handlers

import (
	"github.com/imamik/stackplan/internal/errdefs"
	"github.com/imamik/stackplan/internal/stack"
)

// VPCTemplate prints the network template, with or without private
// subnets behind NAT and bastion hosts.
func VPCTemplate(includePrivateSubnets bool, format string, compact bool) error {
	f, err := stack.ParseFormat(format)
	if err != nil {
		return errdefs.Configuration("%v", err)
	}
	doc, err := stack.VPCTemplate(includePrivateSubnets)
	if err != nil {
		return err
	}
	return doc.Render(stdout, f, compact)
}
