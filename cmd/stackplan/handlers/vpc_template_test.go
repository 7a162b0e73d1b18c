package handlers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/stackplan/internal/errdefs"
)

func TestVPCTemplate(t *testing.T) {
	tests := []struct {
		name           string
		includePrivate bool
		wantBastion    bool
	}{
		{name: "with private subnets", includePrivate: true, wantBastion: true},
		{name: "public only", includePrivate: false, wantBastion: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saveAndRestoreFactories(t)
			out, _ := captureOutput(t)

			require.NoError(t, VPCTemplate(tt.includePrivate, "json", false))

			var doc map[string]any
			require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
			resources := doc["Resources"].(map[string]any)
			_, ok := resources["BastionHost"]
			assert.Equal(t, tt.wantBastion, ok)
		})
	}
}

func TestVPCTemplate_YAML(t *testing.T) {
	saveAndRestoreFactories(t)
	out, _ := captureOutput(t)

	require.NoError(t, VPCTemplate(false, "yaml", false))
	assert.Contains(t, out.String(), "AWSTemplateFormatVersion:")
}

func TestVPCTemplate_BadFormat(t *testing.T) {
	saveAndRestoreFactories(t)
	out, _ := captureOutput(t)

	err := VPCTemplate(true, "xml", false)
	assert.True(t, errdefs.IsConfiguration(err))
	assert.Zero(t, out.Len())
}
