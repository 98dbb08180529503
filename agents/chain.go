package agents

import (
	"context"

	"github.com/google/uuid"

	"github.com/bububa/food-agents/components"
	"github.com/bububa/food-agents/schema"
)

// Chain runs the stages strictly in order over one conversation.
// A Chain holds configuration only and may serve concurrent runs; every
// run owns its conversation and result.
type Chain struct {
	cfg    Config
	agents []*Agent
}

// NewChain returns a Chain calling model, running DefaultStages unless
// WithStages is given
func NewChain(model components.Model, options ...Option) *Chain {
	options = append([]Option{WithModel(model)}, options...)
	ret := &Chain{cfg: newConfig(options...)}
	ret.agents = make([]*Agent, 0, len(ret.cfg.stages))
	for _, stage := range ret.cfg.stages {
		ret.agents = append(ret.agents, NewAgent(stage, &ret.cfg))
	}
	return ret
}

// Stages returns the stages in run order
func (c *Chain) Stages() []Stage {
	ret := make([]Stage, 0, len(c.agents))
	for _, a := range c.agents {
		ret = append(ret, a.Stage())
	}
	return ret
}

// Status returns the status text of the first stage, for callers that
// display something before the first progress report
func (c *Chain) Status() string {
	if len(c.agents) == 0 {
		return StatusCompleted
	}
	return c.agents[0].Stage().Status()
}

// Run analyses image for persona and returns the fully populated Result,
// or the *components.StageError of the first failing stage.
func (c *Chain) Run(ctx context.Context, image *components.Image, persona components.Persona) (*components.Result, error) {
	state, err := c.RunWithState(ctx, image, persona)
	if err != nil {
		return nil, err
	}
	return state.Result, nil
}

// RunWithState is Run returning the whole run state, including the
// conversation and the summed token usage
func (c *Chain) RunWithState(ctx context.Context, image *components.Image, persona components.Persona) (*State, error) {
	if image == nil {
		return nil, components.NewValidationError(components.FieldError{Field: "image", Message: components.MsgImageMissing})
	}
	state := NewState(uuid.NewString(), image, persona)
	state.SystemInstruction = c.cfg.systemInstruction
	state.Logger = c.cfg.logger.With().Str("run_id", state.RunID).Logger()
	state.Logger.Info().Str("persona", persona.Render()).Str("mime_type", image.MIMEType).Msg("analysis started")
	total := len(c.agents)
	for idx, agent := range c.agents {
		if err := agent.Run(ctx, state); err != nil {
			return state, err
		}
		stage := agent.Stage()
		if stage.ID() == schema.StageExtraction && len(state.Result.Ingredients) == 0 {
			state.Logger.Warn().Msg("no ingredients extracted, continuing with an empty list")
		}
		status := StatusCompleted
		if idx+1 < total {
			status = c.agents[idx+1].Stage().Status()
		}
		c.notify(Progress{
			RunID:   state.RunID,
			Stage:   stage.ID(),
			Name:    stage.Name(),
			Percent: percentOf(idx, total, stage.ID()),
			Status:  status,
		}, state.Result)
	}
	state.Logger.Info().
		Int64("input_tokens", state.Usage.InputTokens).
		Int64("output_tokens", state.Usage.OutputTokens).
		Msg("analysis completed")
	return state, nil
}

func (c *Chain) notify(p Progress, result *components.Result) {
	for _, fn := range c.cfg.progress {
		p.Result = result.Snapshot()
		fn(p)
	}
}
