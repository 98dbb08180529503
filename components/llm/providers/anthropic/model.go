package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	anthropic "github.com/liushuangls/go-anthropic/v2"

	"github.com/bububa/food-agents/components"
	"github.com/bububa/food-agents/components/llm"
)

const defaultMaxTokens = 4096

type Model struct {
	*anthropic.Client

	llm.Options
}

var _ components.Model = (*Model)(nil)

func (p *Model) SetClient(clt *anthropic.Client) {
	p.Client = clt
}

func New(client *anthropic.Client, opts ...llm.Option) *Model {
	i := &Model{
		Client:  client,
		Options: llm.NewOptions(llm.ProviderAnthropic, opts...),
	}
	if i.Model() == "" {
		llm.WithModel(string(anthropic.ModelClaude3Dot5SonnetLatest))(&i.Options)
	}
	if i.MaxTokens() == 0 {
		llm.WithMaxTokens(defaultMaxTokens)(&i.Options)
	}
	return i
}

// Generate calls the messages API. Anthropic has no native response
// schema, so the schema is appended to the system prompt and a fenced
// answer is unwrapped.
func (p *Model) Generate(ctx context.Context, history []components.Message, cfg *components.GenerationConfig) (*components.LLMResponse, error) {
	if len(history) == 0 {
		return nil, components.InvocationError(errors.New("empty conversation"))
	}
	req := anthropic.MessagesRequest{
		Model:     anthropic.Model(p.Model()),
		MaxTokens: p.MaxTokens(),
		Messages:  make([]anthropic.Message, 0, len(history)),
	}
	var structured bool
	if cfg != nil {
		temperature := cfg.Temperature
		req.Temperature = &temperature
		if cfg.MaxTokens > 0 {
			req.MaxTokens = cfg.MaxTokens
		}
		system, err := SystemPrompt(cfg)
		if err != nil {
			return nil, err
		}
		req.System = system
		structured = cfg.Structured()
	}
	for _, msg := range history {
		v := new(anthropic.Message)
		ToMessage(msg, v)
		req.Messages = append(req.Messages, *v)
	}
	logger := p.Logger()
	logger.Debug().Str("provider", p.Provider()).Str("model", p.Model()).Int("messages", len(req.Messages)).Msg("generate")
	resp, err := p.CreateMessages(ctx, req)
	if err != nil {
		return nil, components.InvocationError(err)
	}
	var sb strings.Builder
	for _, c := range resp.Content {
		if c.Type == anthropic.MessagesContentTypeText {
			sb.WriteString(c.GetText())
		}
	}
	text := sb.String()
	if structured {
		text = llm.StripCodeFence(text)
	}
	logger.Debug().Str("provider", p.Provider()).Str("response", text).Msg("generated")
	return &components.LLMResponse{
		ID:    resp.ID,
		Role:  components.ModelRole,
		Model: string(resp.Model),
		Text:  text,
		Usage: &components.LLMUsage{
			InputTokens:  int64(resp.Usage.InputTokens),
			OutputTokens: int64(resp.Usage.OutputTokens),
		},
		Timestamp: time.Now().Unix(),
	}, nil
}

// SystemPrompt returns the system instruction, followed by the response
// schema when structured output is requested
func SystemPrompt(cfg *components.GenerationConfig) (string, error) {
	if !cfg.Structured() {
		return cfg.SystemInstruction, nil
	}
	bs, err := json.Marshal(cfg.Schema.JSONSchema())
	if err != nil {
		return "", err
	}
	parts := make([]string, 0, 2)
	if cfg.SystemInstruction != "" {
		parts = append(parts, cfg.SystemInstruction)
	}
	parts = append(parts, "Respond with JSON only, without any other text. The JSON must conform to this JSON schema:\n"+string(bs))
	return strings.Join(parts, "\n\n"), nil
}

// ToMessage converts a conversation message to anthropic Message.
// Images are sent as base64 sources.
func ToMessage(msg components.Message, dist *anthropic.Message) {
	dist.Role = anthropic.RoleUser
	if msg.Role() == components.ModelRole {
		dist.Role = anthropic.RoleAssistant
	}
	parts := msg.Parts()
	dist.Content = make([]anthropic.MessageContent, 0, len(parts))
	for _, part := range parts {
		if part.IsImage() {
			dist.Content = append(dist.Content, anthropic.NewImageMessageContent(anthropic.MessageContentSource{
				Type:      anthropic.MessagesContentSourceTypeBase64,
				MediaType: part.Image.MIMEType,
				Data:      part.Image.Base64(),
			}))
			continue
		}
		dist.Content = append(dist.Content, anthropic.NewTextMessageContent(part.Text))
	}
}
