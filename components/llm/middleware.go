package llm

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"github.com/bububa/food-agents/components"
)

// WithTimeout bounds every call of model by d.
// The pipeline imposes no timeout of its own.
func WithTimeout(model components.Model, d time.Duration) components.Model {
	if d <= 0 {
		return model
	}
	return components.ModelFunc(func(ctx context.Context, history []components.Message, cfg *components.GenerationConfig) (*components.LLMResponse, error) {
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()
		return model.Generate(ctx, history, cfg)
	})
}

// RetryPolicy configures WithRetry
type RetryPolicy struct {
	// MaxRetries is the number of retries after the first attempt
	MaxRetries uint64
	// InitialInterval before the first retry, backoff default when zero
	InitialInterval time.Duration
	// MaxInterval between retries, backoff default when zero
	MaxInterval time.Duration
	// Logger receives a warning per failed attempt
	Logger *zerolog.Logger
}

// WithRetry retries failed calls of model with exponential backoff.
// Only the call is retried: a response that later fails to parse is
// returned to the pipeline as is.
func WithRetry(model components.Model, policy RetryPolicy) components.Model {
	if policy.MaxRetries == 0 {
		return model
	}
	logger := policy.Logger
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return components.ModelFunc(func(ctx context.Context, history []components.Message, cfg *components.GenerationConfig) (*components.LLMResponse, error) {
		b := backoff.NewExponentialBackOff()
		if policy.InitialInterval > 0 {
			b.InitialInterval = policy.InitialInterval
		}
		if policy.MaxInterval > 0 {
			b.MaxInterval = policy.MaxInterval
		}
		var (
			resp    *components.LLMResponse
			attempt int
		)
		op := func() error {
			attempt++
			ret, err := model.Generate(ctx, history, cfg)
			if err != nil {
				if ctx.Err() != nil {
					return backoff.Permanent(err)
				}
				return err
			}
			resp = ret
			return nil
		}
		notify := func(err error, wait time.Duration) {
			logger.Warn().Err(err).Int("attempt", attempt).Dur("wait", wait).Msg("model call failed, retrying")
		}
		bo := backoff.WithContext(backoff.WithMaxRetries(b, policy.MaxRetries), ctx)
		if err := backoff.RetryNotify(op, bo, notify); err != nil {
			return nil, err
		}
		return resp, nil
	})
}
