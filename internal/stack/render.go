package stack

import (
	"encoding/json"
	"fmt"
	"io"

	"sigs.k8s.io/yaml"
)

// Format is an output serialization.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatJSON, FormatYAML}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatYAML:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown output format %q: must be one of %v", s, Formats)
	}
}

// Extension returns the file extension for the format.
func (f Format) Extension() string {
	return string(f)
}

// ContentType returns the MIME type used when uploading the format.
func (f Format) ContentType() string {
	if f == FormatYAML {
		return "application/x-yaml"
	}
	return "application/json"
}

// Encode serializes the document. JSON is indented unless compact is set.
func (d *Document) Encode(format Format, compact bool) ([]byte, error) {
	var (
		out []byte
		err error
	)
	if compact {
		out, err = json.Marshal(d.root)
	} else {
		out, err = json.MarshalIndent(d.root, "", "  ")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode template: %w", err)
	}

	switch format {
	case FormatJSON, "":
		return append(out, '\n'), nil
	case FormatYAML:
		y, err := yaml.JSONToYAML(out)
		if err != nil {
			return nil, fmt.Errorf("failed to convert template to YAML: %w", err)
		}
		return y, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// Render writes the encoded document to w.
func (d *Document) Render(w io.Writer, format Format, compact bool) error {
	out, err := d.Encode(format, compact)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
