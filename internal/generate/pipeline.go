package generate

import (
	"fmt"
	"time"

	"github.com/imamik/stackplan/internal/log"
)

// Phase is one step of a run.
type Phase interface {
	// Name returns the human-readable name of this phase.
	Name() string

	// Run executes the phase against ctx.
	Run(ctx *Context) error
}

// Pipeline runs phases in order.
type Pipeline struct {
	Phases []Phase
}

// NewPipeline creates a pipeline of the given phases.
func NewPipeline(phases ...Phase) *Pipeline {
	return &Pipeline{Phases: phases}
}

// DefaultPipeline returns the phases of a full generate run.
func DefaultPipeline() *Pipeline {
	return NewPipeline(
		PrerequisitesPhase{},
		TopologyPhase{},
		PlanesPhase{},
		DiscoveryPhase{},
		ImagesPhase{},
		SynthesizePhase{},
		RenderPhase{},
		UploadPhase{},
		WritePhase{},
	)
}

// Run executes all phases sequentially and stops at the first failure.
func (p *Pipeline) Run(ctx *Context) error {
	logger := log.WithComponent("generate")
	start := time.Now()

	for i, phase := range p.Phases {
		if err := ctx.Err(); err != nil {
			return err
		}

		phaseStart := time.Now()
		logger.Debug().
			Str("phase", phase.Name()).
			Int("step", i+1).
			Int("total", len(p.Phases)).
			Msg("starting phase")

		if err := phase.Run(ctx); err != nil {
			logger.Debug().Str("phase", phase.Name()).Err(err).Msg("phase failed")
			return fmt.Errorf("%s phase failed: %w", phase.Name(), err)
		}

		logger.Debug().
			Str("phase", phase.Name()).
			Dur("duration", time.Since(phaseStart).Round(time.Millisecond)).
			Msg("completed phase")
	}

	logger.Info().Dur("duration", time.Since(start).Round(time.Millisecond)).Msg("generation completed")
	return nil
}
