package stack

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/imamik/stackplan/internal/errdefs"
)

// Template section names.
const (
	SectionParameters = "Parameters"
	SectionMappings   = "Mappings"
	SectionConditions = "Conditions"
	SectionResources  = "Resources"
	SectionOutputs    = "Outputs"
)

// Document is a CloudFormation template held as generic JSON values.
// Numbers decode as json.Number so they render back unchanged.
type Document struct {
	root map[string]any
}

// Decode parses a JSON template.
func Decode(raw []byte) (*Document, error) {
	root, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}
	return &Document{root: root}, nil
}

func decodeObject(raw []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var root map[string]any
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("failed to decode template: %w", err)
	}
	if root == nil {
		return nil, errdefs.Configuration("template is empty")
	}
	return root, nil
}

// Map returns the underlying structure.
func (d *Document) Map() map[string]any {
	return d.root
}

// Section returns a top-level section, creating it when missing.
func (d *Document) Section(name string) map[string]any {
	s, ok := d.root[name].(map[string]any)
	if !ok {
		s = map[string]any{}
		d.root[name] = s
	}
	return s
}

func (d *Document) Parameters() map[string]any { return d.Section(SectionParameters) }
func (d *Document) Mappings() map[string]any   { return d.Section(SectionMappings) }
func (d *Document) Conditions() map[string]any { return d.Section(SectionConditions) }
func (d *Document) Resources() map[string]any  { return d.Section(SectionResources) }
func (d *Document) Outputs() map[string]any    { return d.Section(SectionOutputs) }

// Entry returns a named entry of a section.
func (d *Document) Entry(section, key string) (map[string]any, error) {
	e, ok := d.Section(section)[key].(map[string]any)
	if !ok {
		return nil, errdefs.Configuration("template has no %s.%s", section, key)
	}
	return e, nil
}

// Properties returns the Properties block of a resource.
func (d *Document) Properties(resource string) (map[string]any, error) {
	r, err := d.Entry(SectionResources, resource)
	if err != nil {
		return nil, err
	}
	props, ok := r["Properties"].(map[string]any)
	if !ok {
		return nil, errdefs.Configuration("resource %s has no properties", resource)
	}
	return props, nil
}

// Has reports whether a section holds key.
func (d *Document) Has(section, key string) bool {
	_, ok := d.Section(section)[key]
	return ok
}

// Delete removes keys from a section. Missing keys fail so that edits
// against a drifted template are noticed.
func (d *Document) Delete(section string, keys ...string) error {
	s := d.Section(section)
	for _, k := range keys {
		if _, ok := s[k]; !ok {
			return errdefs.Configuration("cannot delete %s.%s: not present", section, k)
		}
		delete(s, k)
	}
	return nil
}
