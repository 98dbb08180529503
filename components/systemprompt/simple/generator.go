package simple

import (
	"strings"

	"github.com/bububa/food-agents/components/systemprompt"
)

// Generator joins a fixed instruction and the info of its context
// providers, separated by blank lines.
type Generator struct {
	systemprompt.BaseGenerator
	content string
}

var _ systemprompt.Generator = (*Generator)(nil)

// New returns a new system prompt Generator
func New(content string, options ...Option) *Generator {
	ret := &Generator{content: content}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// Content returns the fixed instruction
func (g *Generator) Content() string {
	return g.content
}

func (g *Generator) Generate() string {
	providers := g.ContextProviders()
	promptParts := make([]string, 0, len(providers)+1)
	if g.content != "" {
		promptParts = append(promptParts, g.content)
	}
	for _, provider := range providers {
		if info := provider.Info(); info != "" {
			promptParts = append(promptParts, info)
		}
	}
	return strings.TrimSpace(strings.Join(promptParts, "\n\n"))
}
