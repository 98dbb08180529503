package openai

import (
	"context"
	"errors"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/tidwall/gjson"

	"github.com/bububa/food-agents/components"
	"github.com/bububa/food-agents/components/llm"
)

const schemaName = "stage_response"

type Model struct {
	*openai.Client

	llm.Options
}

var _ components.Model = (*Model)(nil)

func (p *Model) SetClient(clt *openai.Client) {
	p.Client = clt
}

func New(client *openai.Client, opts ...llm.Option) *Model {
	i := &Model{
		Client:  client,
		Options: llm.NewOptions(llm.ProviderOpenAI, opts...),
	}
	if i.Model() == "" {
		llm.WithModel(openai.GPT4o)(&i.Options)
	}
	return i
}

func (p *Model) Generate(ctx context.Context, history []components.Message, cfg *components.GenerationConfig) (*components.LLMResponse, error) {
	if len(history) == 0 {
		return nil, components.InvocationError(errors.New("empty conversation"))
	}
	req := openai.ChatCompletionRequest{
		Model:     p.Model(),
		MaxTokens: p.MaxTokens(),
		Messages:  make([]openai.ChatCompletionMessage, 0, len(history)+1),
	}
	var wrapped bool
	if cfg != nil {
		req.Temperature = cfg.Temperature
		if cfg.MaxTokens > 0 {
			req.MaxTokens = cfg.MaxTokens
		}
		if cfg.SystemInstruction != "" {
			req.Messages = append(req.Messages, openai.ChatCompletionMessage{
				Role:    openai.ChatMessageRoleSystem,
				Content: cfg.SystemInstruction,
			})
		}
		if cfg.Structured() {
			var doc llm.JSONSchema
			doc, wrapped = llm.WrapArray(cfg.Schema.JSONSchema())
			req.ResponseFormat = &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
				JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
					Name:   schemaName,
					Schema: doc,
				},
			}
		}
	}
	for _, msg := range history {
		v := new(openai.ChatCompletionMessage)
		ToMessage(msg, v)
		req.Messages = append(req.Messages, *v)
	}
	logger := p.Logger()
	logger.Debug().Str("provider", p.Provider()).Str("model", p.Model()).Int("messages", len(req.Messages)).Msg("generate")
	resp, err := p.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, components.InvocationError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, components.InvocationError(errors.New("no choices in response"))
	}
	text := resp.Choices[0].Message.Content
	if wrapped {
		if inner := gjson.Get(text, llm.WrapKey); inner.Exists() {
			text = inner.Raw
		}
	}
	logger.Debug().Str("provider", p.Provider()).Str("response", text).Msg("generated")
	return &components.LLMResponse{
		ID:    resp.ID,
		Role:  components.ModelRole,
		Model: resp.Model,
		Text:  text,
		Usage: &components.LLMUsage{
			InputTokens:  int64(resp.Usage.PromptTokens),
			OutputTokens: int64(resp.Usage.CompletionTokens),
		},
		Timestamp: time.Now().Unix(),
	}, nil
}

// ToMessage converts a conversation message to openai ChatCompletionMessage.
// Images are sent inline as data URIs.
func ToMessage(msg components.Message, dist *openai.ChatCompletionMessage) {
	dist.Role = openai.ChatMessageRoleUser
	if msg.Role() == components.ModelRole {
		dist.Role = openai.ChatMessageRoleAssistant
	}
	images := msg.Images()
	if len(images) == 0 {
		dist.Content = msg.Text()
		return
	}
	parts := msg.Parts()
	dist.MultiContent = make([]openai.ChatMessagePart, 0, len(parts))
	for _, part := range parts {
		if part.IsImage() {
			dist.MultiContent = append(dist.MultiContent, openai.ChatMessagePart{
				Type: openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{
					URL:    part.Image.DataURI(),
					Detail: openai.ImageURLDetailAuto,
				},
			})
			continue
		}
		dist.MultiContent = append(dist.MultiContent, openai.ChatMessagePart{
			Type: openai.ChatMessagePartTypeText,
			Text: part.Text,
		})
	}
}
