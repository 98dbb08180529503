package agents

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bububa/food-agents/components"
)

type Option func(c *Config)

// WithModel sets the model every stage calls
func WithModel(model components.Model) Option {
	return func(c *Config) {
		c.model = model
	}
}

// WithLogger sets the logger, zerolog.Nop by default
func WithLogger(l zerolog.Logger) Option {
	return func(c *Config) {
		c.logger = l
	}
}

// WithSystemInstruction replaces DefaultSystemInstruction
func WithSystemInstruction(instruction string) Option {
	return func(c *Config) {
		c.systemInstruction = instruction
	}
}

// WithMaxTokens caps every response
func WithMaxTokens(maxTokens int) Option {
	return func(c *Config) {
		c.maxTokens = maxTokens
	}
}

// WithTokenCounter logs the estimated conversation size after every stage
func WithTokenCounter(counter components.TokenCounter) Option {
	return func(c *Config) {
		c.tokenCounter = counter
	}
}

// WithStages replaces DefaultStages
func WithStages(stages ...Stage) Option {
	return func(c *Config) {
		c.stages = stages
	}
}

// WithProgress registers a callback invoked after every stage commits.
// It may be given more than once.
func WithProgress(fn ProgressFunc) Option {
	return func(c *Config) {
		c.progress = append(c.progress, fn)
	}
}

// WithStartHook runs fn before every model call
func WithStartHook(fn func(context.Context, *Agent, *State, *components.Message)) Option {
	return func(c *Config) {
		c.startHook = fn
	}
}

// WithEndHook runs fn after every successful stage
func WithEndHook(fn func(context.Context, *Agent, *State, *components.LLMResponse)) Option {
	return func(c *Config) {
		c.endHook = fn
	}
}

// WithErrorHook runs fn when a stage fails
func WithErrorHook(fn func(context.Context, *Agent, *State, *components.StageError)) Option {
	return func(c *Config) {
		c.errorHook = fn
	}
}
