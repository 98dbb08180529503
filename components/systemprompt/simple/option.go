package simple

import "github.com/bububa/food-agents/components/systemprompt"

type Option = func(g *Generator)

// WithContextProviders registers context providers rendered after the instruction
func WithContextProviders(providers ...systemprompt.ContextProvider) Option {
	return func(g *Generator) {
		g.AddContextProviders(providers...)
	}
}
