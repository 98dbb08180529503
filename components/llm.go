package components

import (
	"context"

	"github.com/bububa/food-agents/schema"
)

// MIMETypeJSON is the response MIME type requested for structured output
const MIMETypeJSON = "application/json"

// ResponseFormat selects free text or schema constrained output
type ResponseFormat string

const (
	ResponseFormatText       ResponseFormat = ""
	ResponseFormatStructured ResponseFormat = "structured"
)

// GenerationConfig is the per call configuration sent with a conversation
type GenerationConfig struct {
	// Temperature for response generation
	Temperature float32 `json:"temperature"`
	// SystemInstruction is sent as the provider's system prompt
	SystemInstruction string `json:"system_instruction,omitempty"`
	// ResponseFormat requests structured output when set with Schema
	ResponseFormat ResponseFormat `json:"response_format,omitempty"`
	// Schema the response must conform to
	Schema *schema.Schema `json:"schema,omitempty"`
	// MaxTokens caps the response length, 0 leaves the provider default
	MaxTokens int `json:"max_tokens,omitempty"`
}

// Structured reports whether a schema constrained JSON response is requested
func (c *GenerationConfig) Structured() bool {
	return c != nil && c.ResponseFormat == ResponseFormatStructured && c.Schema != nil
}

// Model is the hosted model capability: given the conversation so far and
// a generation config it returns the text of the next model turn. The last
// message of history is the pending user turn.
type Model interface {
	Generate(ctx context.Context, history []Message, cfg *GenerationConfig) (*LLMResponse, error)
}

// ModelFunc adapts a function to the Model interface
type ModelFunc func(ctx context.Context, history []Message, cfg *GenerationConfig) (*LLMResponse, error)

// Generate implements Model
func (f ModelFunc) Generate(ctx context.Context, history []Message, cfg *GenerationConfig) (*LLMResponse, error) {
	return f(ctx, history, cfg)
}

// LLMResponse provider chat response
type LLMResponse struct {
	ID        string      `json:"id,omitempty"`
	Role      MessageRole `json:"role,omitempty"`
	Model     string      `json:"model,omitempty"`
	Text      string      `json:"text"`
	Usage     *LLMUsage   `json:"usage,omitempty"`
	Timestamp int64       `json:"ts,omitempty"`
}

type LLMUsage struct {
	InputTokens  int64 `json:"input_tokens,omitempty"`
	OutputTokens int64 `json:"output_tokens,omitempty"`
}

func (u *LLMUsage) Merge(v *LLMUsage) {
	if v == nil {
		return
	}
	u.InputTokens += v.InputTokens
	u.OutputTokens += v.OutputTokens
}
