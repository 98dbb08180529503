package gemini

import (
	"context"
	"errors"
	"strings"
	"time"

	gemini "github.com/google/generative-ai-go/genai"

	"github.com/bububa/food-agents/components"
	"github.com/bububa/food-agents/components/llm"
	"github.com/bububa/food-agents/schema"
)

type Model struct {
	*gemini.Client

	llm.Options
}

var _ components.Model = (*Model)(nil)

func (p *Model) SetClient(clt *gemini.Client) {
	p.Client = clt
}

func New(client *gemini.Client, opts ...llm.Option) *Model {
	i := &Model{
		Client:  client,
		Options: llm.NewOptions(llm.ProviderGemini, opts...),
	}
	if i.Model() == "" {
		llm.WithModel(llm.DefaultGeminiModel)(&i.Options)
	}
	return i
}

// Generate sends the last message of history through a chat session
// seeded with the preceding messages.
func (p *Model) Generate(ctx context.Context, history []components.Message, cfg *components.GenerationConfig) (*components.LLMResponse, error) {
	if len(history) == 0 {
		return nil, components.InvocationError(errors.New("empty conversation"))
	}
	model := p.GenerativeModel(p.Model())
	if cfg != nil {
		model.SetTemperature(cfg.Temperature)
		if cfg.SystemInstruction != "" {
			model.SystemInstruction = gemini.NewUserContent(gemini.Text(cfg.SystemInstruction))
		}
		maxTokens := cfg.MaxTokens
		if maxTokens == 0 {
			maxTokens = p.MaxTokens()
		}
		if maxTokens > 0 {
			model.SetMaxOutputTokens(int32(maxTokens))
		}
		if cfg.Structured() {
			model.ResponseMIMEType = components.MIMETypeJSON
			model.ResponseSchema = ToSchema(cfg.Schema)
		}
	}
	last := len(history) - 1
	cs := model.StartChat()
	cs.History = make([]*gemini.Content, 0, last)
	for _, msg := range history[:last] {
		cs.History = append(cs.History, ToContent(msg))
	}
	logger := p.Logger()
	logger.Debug().Str("provider", p.Provider()).Str("model", p.Model()).Int("history", last).Msg("generate")
	resp, err := cs.SendMessage(ctx, ToParts(history[last])...)
	if err != nil {
		return nil, components.InvocationError(err)
	}
	text, err := responseText(resp)
	if err != nil {
		return nil, components.InvocationError(err)
	}
	ret := &components.LLMResponse{
		Role:      components.ModelRole,
		Model:     p.Model(),
		Text:      text,
		Timestamp: time.Now().Unix(),
	}
	if usage := resp.UsageMetadata; usage != nil {
		ret.Usage = &components.LLMUsage{
			InputTokens:  int64(usage.PromptTokenCount),
			OutputTokens: int64(usage.CandidatesTokenCount),
		}
	}
	logger.Debug().Str("provider", p.Provider()).Str("response", text).Msg("generated")
	return ret, nil
}

func responseText(resp *gemini.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		if resp != nil && resp.PromptFeedback != nil {
			return "", errors.New("prompt blocked: " + resp.PromptFeedback.BlockReason.String())
		}
		return "", errors.New("no candidates in response")
	}
	content := resp.Candidates[0].Content
	if content == nil {
		return "", errors.New("empty candidate content")
	}
	var sb strings.Builder
	for _, part := range content.Parts {
		if txt, ok := part.(gemini.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return sb.String(), nil
}

// ToContent converts a conversation message
func ToContent(msg components.Message) *gemini.Content {
	return &gemini.Content{
		Role:  msg.Role(),
		Parts: ToParts(msg),
	}
}

// ToParts converts message parts, keeping their order
func ToParts(msg components.Message) []gemini.Part {
	parts := msg.Parts()
	ret := make([]gemini.Part, 0, len(parts))
	for _, part := range parts {
		if part.IsImage() {
			ret = append(ret, gemini.Blob{
				MIMEType: part.Image.MIMEType,
				Data:     part.Image.Data,
			})
			continue
		}
		ret = append(ret, gemini.Text(part.Text))
	}
	return ret
}

// ToSchema converts a response schema
func ToSchema(s *schema.Schema) *gemini.Schema {
	if s == nil {
		return nil
	}
	ret := &gemini.Schema{
		Type:        toType(s.Type),
		Description: s.Description,
		Enum:        s.Enum,
		Required:    s.Required,
		Items:       ToSchema(s.Items),
	}
	if len(s.Properties) > 0 {
		ret.Properties = make(map[string]*gemini.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			ret.Properties[name] = ToSchema(prop)
		}
	}
	return ret
}

func toType(t schema.Type) gemini.Type {
	switch t {
	case schema.TypeObject:
		return gemini.TypeObject
	case schema.TypeArray:
		return gemini.TypeArray
	case schema.TypeNumber:
		return gemini.TypeNumber
	case schema.TypeInteger:
		return gemini.TypeInteger
	case schema.TypeBoolean:
		return gemini.TypeBoolean
	}
	return gemini.TypeString
}
