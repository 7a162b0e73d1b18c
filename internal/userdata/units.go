package userdata

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed assets/units.yaml
var unitsYAML []byte

//go:embed assets/user-data.yaml
var baseUserData []byte

// DropIn is a systemd drop-in attached to a unit.
type DropIn struct {
	Name    string `yaml:"name"`
	Content string `yaml:"content"`
}

// Unit is a coreos-cloudinit unit descriptor.
type Unit struct {
	Name    string   `yaml:"name"`
	Command string   `yaml:"command,omitempty"`
	Content string   `yaml:"content,omitempty"`
	DropIns []DropIn `yaml:"drop-ins,omitempty"`
}

// Units returns the bootstrap units prepended to every node group, in
// execution order.
func Units() ([]Unit, error) {
	var units []Unit
	if err := yaml.Unmarshal(unitsYAML, &units); err != nil {
		return nil, fmt.Errorf("failed to parse bootstrap units: %w", err)
	}
	return units, nil
}

// BaseDocument returns the embedded base cloud-config.
func BaseDocument() []byte {
	return append([]byte(nil), baseUserData...)
}

// toMap converts a unit into the generic form stored in a Document.
func (u Unit) toMap() map[string]any {
	m := map[string]any{"name": u.Name}
	if u.Command != "" {
		m["command"] = u.Command
	}
	if u.Content != "" {
		m["content"] = u.Content
	}
	if len(u.DropIns) > 0 {
		dropIns := make([]any, len(u.DropIns))
		for i, d := range u.DropIns {
			dropIns[i] = map[string]any{"name": d.Name, "content": d.Content}
		}
		m["drop-ins"] = dropIns
	}
	return m
}
