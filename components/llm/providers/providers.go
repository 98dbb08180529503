package providers

import (
	"github.com/bububa/food-agents/components/llm/providers/anthropic"
	"github.com/bububa/food-agents/components/llm/providers/gemini"
	"github.com/bububa/food-agents/components/llm/providers/openai"
)

var (
	FromGemini    = gemini.New
	FromOpenAI    = openai.New
	FromAnthropic = anthropic.New
)
