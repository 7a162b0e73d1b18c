package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/stackplan/internal/planes"
)

func TestRequests(t *testing.T) {
	cfg := Default()
	cfg.Planes.Router.Isolate = true
	cfg.Planes.Router.Colocate = []string{"Data", "", "control"}
	cfg.Planes.Etcd.Isolate = true
	cfg.Planes.Control.Colocate = []string{"router"} // ignored while not isolated

	reqs, err := cfg.Requests()
	require.NoError(t, err)

	assert.Equal(t, planes.Requests{
		planes.Router: {Isolate: true, Colocate: []planes.Plane{planes.Data, planes.Control}},
		planes.Etcd:   {Isolate: true},
	}, reqs)
}

func TestSizing(t *testing.T) {
	cfg := Default()
	cfg.Planes.Other.Instances = 1
	cfg.Planes.Other.InstancesMax = 2
	cfg.Planes.Other.InstanceSize = "m3.large"

	sizing := cfg.Sizing()

	assert.Len(t, sizing, len(planes.All))
	assert.Equal(t, planes.Sizing{MinInstances: 1, MaxInstances: 2, InstanceSize: "m3.large"}, sizing[planes.Other])
	assert.Equal(t, planes.Sizing{MinInstances: DefaultInstances, MaxInstances: DefaultDataPlaneMax}, sizing[planes.Data])
}

func TestPlane(t *testing.T) {
	cfg := Default()
	for _, p := range planes.All {
		assert.NotNil(t, cfg.Plane(p), p)
	}
	assert.Nil(t, cfg.Plane(planes.Plane("storage")))

	cfg.Plane(planes.Etcd).Isolate = true
	assert.True(t, cfg.Planes.Etcd.Isolate)
}
