package topology

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Output formats for Render.
const (
	FormatShell = "shell"
	FormatHuman = "human"
	FormatJSON  = "json"
)

// Formats lists the supported Render formats.
var Formats = []string{FormatShell, FormatHuman, FormatJSON}

type jsonTopology struct {
	ID             string   `json:"id"`
	Zones          []string `json:"zones"`
	Subnets        []string `json:"subnets"`
	PrivateSubnets []string `json:"private_subnets"`
}

// Render writes the topology in the given format.
func (t *Topology) Render(w io.Writer, format string) error {
	switch format {
	case FormatShell:
		_, err := fmt.Fprintf(w, "DEIS_VPC_ID=%q; DEIS_VPC_ZONES=%q; DEIS_VPC_SUBNETS=%q; DEIS_VPC_PRIVATE_SUBNETS=%q\n",
			t.VPCID,
			strings.Join(t.Zones, " "),
			strings.Join(t.Subnets, " "),
			strings.Join(t.PrivateSubnets, " "))
		return err
	case FormatHuman:
		_, err := fmt.Fprintf(w, "VPC ID: %s\nVPC Availability Zones: %s\nVPC Public Subnets: %s\nVPC Private Subnets: %s\n",
			t.VPCID,
			strings.Join(t.Zones, " "),
			strings.Join(t.Subnets, " "),
			strings.Join(t.PrivateSubnets, " "))
		return err
	case FormatJSON:
		return json.NewEncoder(w).Encode(jsonTopology{
			ID:             t.VPCID,
			Zones:          nonNil(t.Zones),
			Subnets:        nonNil(t.Subnets),
			PrivateSubnets: nonNil(t.PrivateSubnets),
		})
	default:
		return fmt.Errorf("unknown format %q: must be one of %v", format, Formats)
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
