package naming

import "testing"

func TestNamingFunctions(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "PlanePrefix",
			got:      PlanePrefix("Router"),
			expected: "RouterPlane",
		},
		{
			name:     "LaunchConfig",
			got:      LaunchConfig("Control"),
			expected: "ControlPlaneLaunchConfig",
		},
		{
			name:     "AutoScale",
			got:      AutoScale("Other"),
			expected: "OtherPlaneAutoScale",
		},
		{
			name:     "SizeParameter",
			got:      SizeParameter("Etcd"),
			expected: "EtcdPlaneSize",
		},
		{
			name:     "NodeLabel",
			got:      NodeLabel("Data"),
			expected: "deis-data-plane-node",
		},
		{
			name:     "RenamePlaneTemplate",
			got:      RenamePlaneTemplate(`{"PlaneAutoScale":{"Ref":"PlaneSize","Value":"deis-plane-node"}}`, "Router"),
			expected: `{"RouterPlaneAutoScale":{"Ref":"RouterPlaneSize","Value":"deis-router-plane-node"}}`,
		},
		{
			name:     "TemplateObject",
			got:      TemplateObject("/templates/", "deis", "abc", "json"),
			expected: "templates/deis-abc.json",
		},
		{
			name:     "TemplateObject without prefix",
			got:      TemplateObject("", "deis", "abc", "yaml"),
			expected: "deis-abc.yaml",
		},
		{
			name:     "TemplateURL",
			got:      TemplateURL("bucket", "templates/deis-abc.json"),
			expected: "https://bucket.s3.amazonaws.com/templates/deis-abc.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, tt.got)
			}
		})
	}
}
