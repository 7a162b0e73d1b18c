package naming

import (
	"fmt"
	"path"
	"strings"
)

// Generic tokens used by the per-plane template.
const (
	PlaneToken     = "Plane"
	NodeLabelToken = "deis-plane-node"
)

// Naming functions for stack resources.

func PlanePrefix(title string) string {
	return title + PlaneToken
}

func LaunchConfig(title string) string {
	return PlanePrefix(title) + "LaunchConfig"
}

func AutoScale(title string) string {
	return PlanePrefix(title) + "AutoScale"
}

func SizeParameter(title string) string {
	return PlanePrefix(title) + "Size"
}

func NodeLabel(group string) string {
	return fmt.Sprintf("deis-%s-plane-node", strings.ToLower(group))
}

// RenamePlaneTemplate rewrites the generic tokens of the per-plane template
// for the group with the given title.
func RenamePlaneTemplate(raw, title string) string {
	out := strings.ReplaceAll(raw, PlaneToken, PlanePrefix(title))
	return strings.ReplaceAll(out, NodeLabelToken, NodeLabel(title))
}

// TemplateObject returns the object key of an uploaded template.
func TemplateObject(prefix, stack, id, ext string) string {
	return path.Join(strings.Trim(prefix, "/"), fmt.Sprintf("%s-%s.%s", stack, id, ext))
}

// TemplateURL returns the virtual-hosted URL of an uploaded template.
func TemplateURL(bucket, key string) string {
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", bucket, key)
}
