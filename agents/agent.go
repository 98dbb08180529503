package agents

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/bububa/food-agents/components"
)

// Config represents the configuration shared by the stages of a Chain.
// It is read only once the Chain is built.
type Config struct {
	// model is the language model every stage calls
	model components.Model
	// logger receives one line per stage
	logger zerolog.Logger
	// systemInstruction is sent with every call
	systemInstruction string
	// maxTokens Maximum number of tokens allowed in the response
	maxTokens int
	// tokenCounter estimates the conversation size, optional
	tokenCounter components.TokenCounter
	// stages in run order
	stages []Stage
	// progress callbacks
	progress []ProgressFunc

	startHook func(context.Context, *Agent, *State, *components.Message)
	endHook   func(context.Context, *Agent, *State, *components.LLMResponse)
	errorHook func(context.Context, *Agent, *State, *components.StageError)
}

func newConfig(options ...Option) Config {
	ret := Config{
		logger:            zerolog.Nop(),
		systemInstruction: DefaultSystemInstruction,
	}
	for _, opt := range options {
		opt(&ret)
	}
	if len(ret.stages) == 0 {
		ret.stages = DefaultStages()
	}
	return ret
}

// Agent executes one Stage against the conversation of a run.
type Agent struct {
	*Config
	stage Stage
}

// NewAgent returns an Agent running stage with the given configuration
func NewAgent(stage Stage, cfg *Config) *Agent {
	return &Agent{
		Config: cfg,
		stage:  stage,
	}
}

// Name returns the stage name
func (a *Agent) Name() string {
	return a.stage.Name()
}

// Stage returns the executed stage
func (a *Agent) Stage() Stage {
	return a.stage
}

// GenerationConfig returns the per call configuration of the stage
func (a *Agent) GenerationConfig() *components.GenerationConfig {
	cfg := &components.GenerationConfig{
		Temperature:       a.stage.Temperature(),
		SystemInstruction: a.systemInstruction,
		MaxTokens:         a.maxTokens,
	}
	if s := a.stage.Schema(); s != nil {
		cfg.ResponseFormat = components.ResponseFormatStructured
		cfg.Schema = s
	}
	return cfg
}

// Run appends the stage prompt to the conversation, calls the model with
// the whole conversation, appends the raw answer and merges the parsed
// answer into the result. Failures are returned as *components.StageError.
func (a *Agent) Run(ctx context.Context, state *State) error {
	stage := a.stage
	turnID := state.Memory.NewTurn()
	logger := state.Logger.With().
		Int("stage", int(stage.ID())).
		Str("name", stage.Name()).
		Str("turn_id", turnID).
		Logger()
	msg := state.Memory.NewMessage(components.UserRole, stage.Prompt(state)...)
	if fn := a.startHook; fn != nil {
		fn(ctx, a, state, msg)
	}
	logger.Debug().Str("prompt", msg.Text()).Msg("stage started")
	start := time.Now()
	resp, err := a.model.Generate(ctx, state.Memory.History(), a.GenerationConfig())
	if err != nil {
		return a.fail(ctx, state, &logger, &components.StageError{
			Stage: stage.ID(),
			Name:  stage.Name(),
			Kind:  components.ErrModelInvocation,
			Err:   err,
		})
	}
	if resp == nil {
		return a.fail(ctx, state, &logger, &components.StageError{
			Stage: stage.ID(),
			Name:  stage.Name(),
			Kind:  components.ErrModelInvocation,
			Err:   errors.New("nil response"),
		})
	}
	state.Memory.NewMessage(components.ModelRole, components.TextPart(resp.Text))
	state.Usage.Merge(resp.Usage)
	logger.Debug().Str("response", resp.Text).Msg("model answered")
	if err := stage.Parse(resp.Text, state.Result); err != nil {
		return a.fail(ctx, state, &logger, &components.StageError{
			Stage: stage.ID(),
			Name:  stage.Name(),
			Raw:   resp.Text,
			Kind:  failureKind(err),
			Err:   err,
		})
	}
	event := logger.Info().
		Dur("duration", time.Since(start)).
		Int("messages", state.Memory.MessageCount())
	if usage := resp.Usage; usage != nil {
		event = event.Int64("input_tokens", usage.InputTokens).Int64("output_tokens", usage.OutputTokens)
	}
	if a.tokenCounter != nil {
		event = event.Int("context_tokens", state.Memory.TokenCount(a.tokenCounter))
	}
	event.Msg("stage completed")
	if fn := a.endHook; fn != nil {
		fn(ctx, a, state, resp)
	}
	return nil
}

func (a *Agent) fail(ctx context.Context, state *State, logger *zerolog.Logger, err *components.StageError) error {
	logger.Error().Err(err.Err).Str("kind", err.Kind.Error()).Str("raw", err.Raw).Msg("stage failed")
	if fn := a.errorHook; fn != nil {
		fn(ctx, a, state, err)
	}
	return err
}
