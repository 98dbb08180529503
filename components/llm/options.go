package llm

import "github.com/rs/zerolog"

// Options holds the configuration shared by every provider adapter.
type Options struct {
	// provider specifies the model service
	provider Provider
	// model specifies the model name
	model string
	// maxTokens caps responses when the request does not set a limit
	maxTokens int
	// logger receives request and response traces at debug level
	logger zerolog.Logger
}

// Option is a function type for configuring Options.
type Option func(*Options)

// NewOptions applies opts on top of the defaults
func NewOptions(provider Provider, opts ...Option) Options {
	ret := Options{
		provider: provider,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&ret)
	}
	return ret
}

func WithProvider(provider Provider) Option {
	return func(o *Options) {
		o.provider = provider
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.model = model
	}
}

func WithMaxTokens(maxTokens int) Option {
	return func(o *Options) {
		o.maxTokens = maxTokens
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.logger = l
	}
}

func (o Options) Provider() Provider {
	return o.provider
}

func (o Options) Model() string {
	return o.model
}

func (o Options) MaxTokens() int {
	return o.maxTokens
}

func (o *Options) Logger() *zerolog.Logger {
	return &o.logger
}
