package openai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bububa/food-agents/components"
	"github.com/bububa/food-agents/components/llm"
	"github.com/bububa/food-agents/schema"
)

func TestToMessage(t *testing.T) {
	img := &components.Image{MIMEType: "image/png", Data: []byte("png")}
	msg := components.NewMessage(components.UserRole, components.TextPart("추출"), components.ImagePart(img))
	var v openai.ChatCompletionMessage
	ToMessage(*msg, &v)
	assert.Equal(t, openai.ChatMessageRoleUser, v.Role)
	require.Len(t, v.MultiContent, 2)
	assert.Equal(t, "추출", v.MultiContent[0].Text)
	assert.Equal(t, img.DataURI(), v.MultiContent[1].ImageURL.URL)

	var reply openai.ChatCompletionMessage
	ToMessage(*components.NewMessage(components.ModelRole, components.TextPart("당근")), &reply)
	assert.Equal(t, openai.ChatMessageRoleAssistant, reply.Role)
	assert.Equal(t, "당근", reply.Content)
}

func TestGenerateUnwrapsArray(t *testing.T) {
	var captured struct {
		Messages []struct {
			Role string `json:"role"`
		} `json:"messages"`
		ResponseFormat *struct {
			Type string `json:"type"`
		} `json:"response_format"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bs, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(bs, &captured)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			ID:    "chatcmpl-1",
			Model: "gpt-4o",
			Choices: []openai.ChatCompletionChoice{{
				Message: openai.ChatCompletionMessage{
					Role:    openai.ChatMessageRoleAssistant,
					Content: `{"items":[{"재료명":"당근","설명":"A"}]}`,
				},
			}},
			Usage: openai.Usage{PromptTokens: 10, CompletionTokens: 5},
		})
	}))
	defer srv.Close()

	cfg := openai.DefaultConfig("test")
	cfg.BaseURL = srv.URL + "/v1"
	model := New(openai.NewClientWithConfig(cfg), llm.WithModel("gpt-4o"))

	history := []components.Message{*components.NewMessage(components.UserRole, components.TextPart("설명해주세요"))}
	resp, err := model.Generate(context.Background(), history, &components.GenerationConfig{
		Temperature:       0.7,
		SystemInstruction: "영양사",
		ResponseFormat:    components.ResponseFormatStructured,
		Schema:            schema.For(schema.StageDescription),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"재료명":"당근","설명":"A"}]`, resp.Text)
	assert.Equal(t, int64(10), resp.Usage.InputTokens)

	require.Len(t, captured.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, captured.Messages[0].Role)
	require.NotNil(t, captured.ResponseFormat)
	assert.Equal(t, string(openai.ChatCompletionResponseFormatTypeJSONSchema), captured.ResponseFormat.Type)
}
