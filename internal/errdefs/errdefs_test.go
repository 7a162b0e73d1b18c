package errdefs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKinds(t *testing.T) {
	cause := errors.New("exit status 255")

	tests := []struct {
		name  string
		err   error
		check func(error) bool
		msg   string
	}{
		{"configuration", Configuration("plane %q requested twice", "data"), IsConfiguration, `plane "data" requested twice`},
		{"not found", NotFound("vpc %s does not exist", "vpc-1"), IsNotFound, "vpc vpc-1 does not exist"},
		{"external call", ExternalCall(cause, "aws ec2 describe-vpcs"), IsExternalCall, "exit status 255"},
		{"external call without cause", ExternalCall(nil, "bad payload"), IsExternalCall, "bad payload"},
		{"collision", Collision("resource %s exists", "RouterPlaneAutoScale"), IsCollision, "RouterPlaneAutoScale"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
			assert.Contains(t, tt.err.Error(), tt.msg)
		})
	}
}

func TestKindsAreDistinct(t *testing.T) {
	err := NotFound("missing")
	assert.False(t, IsConfiguration(err))
	assert.False(t, IsExternalCall(err))
	assert.False(t, IsCollision(err))
}

func TestExternalCallKeepsCause(t *testing.T) {
	cause := errors.New("boom")
	err := ExternalCall(cause, "query")
	assert.ErrorIs(t, err, cause)
}
