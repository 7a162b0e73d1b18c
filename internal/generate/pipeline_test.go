package generate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/stackplan/internal/errdefs"
)

type funcPhase struct {
	name string
	fn   func(*Context) error
}

func (p funcPhase) Name() string           { return p.name }
func (p funcPhase) Run(ctx *Context) error { return p.fn(ctx) }

func phaseFunc(name string, fn func(*Context) error) Phase {
	return funcPhase{name: name, fn: fn}
}

func TestNewPipeline(t *testing.T) {
	t.Parallel()

	p := NewPipeline(PlanesPhase{}, RenderPhase{})
	require.Len(t, p.Phases, 2)
	assert.Equal(t, "planes", p.Phases[0].Name())
	assert.Equal(t, "render", p.Phases[1].Name())

	assert.Empty(t, NewPipeline().Phases)
}

func TestDefaultPipeline_Order(t *testing.T) {
	t.Parallel()

	var names []string
	for _, p := range DefaultPipeline().Phases {
		names = append(names, p.Name())
	}
	assert.Equal(t, []string{
		"prerequisites", "topology", "planes", "discovery", "images",
		"synthesize", "render", "upload", "write",
	}, names)
}

func TestPipeline_Run_Order(t *testing.T) {
	t.Parallel()

	var executed []string
	record := func(name string) Phase {
		return phaseFunc(name, func(*Context) error {
			executed = append(executed, name)
			return nil
		})
	}

	ctx := &Context{Context: context.Background(), State: &State{}}
	require.NoError(t, NewPipeline(record("a"), record("b"), record("c")).Run(ctx))
	assert.Equal(t, []string{"a", "b", "c"}, executed)
}

func TestPipeline_Run_StopsAtFirstError(t *testing.T) {
	t.Parallel()

	var executed []string
	ctx := &Context{Context: context.Background(), State: &State{}}
	p := NewPipeline(
		phaseFunc("topology", func(*Context) error {
			executed = append(executed, "topology")
			return errdefs.NotFound("VPC ID vpc-1 does not exist in this AWS setup")
		}),
		phaseFunc("render", func(*Context) error {
			executed = append(executed, "render")
			return nil
		}),
	)

	err := p.Run(ctx)
	require.Error(t, err)
	assert.ErrorContains(t, err, "topology phase failed")
	assert.True(t, errdefs.IsNotFound(err))
	assert.Equal(t, []string{"topology"}, executed)
}

func TestPipeline_Run_Canceled(t *testing.T) {
	t.Parallel()

	cctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	ctx := &Context{Context: cctx, State: &State{}}
	err := NewPipeline(phaseFunc("a", func(*Context) error { ran = true; return nil })).Run(ctx)

	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, ran)
}
