package anthropic

import (
	"testing"

	anthropic "github.com/liushuangls/go-anthropic/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bububa/food-agents/components"
	"github.com/bububa/food-agents/schema"
)

func TestToMessage(t *testing.T) {
	img := &components.Image{MIMEType: "image/png", Data: []byte("png")}
	msg := components.NewMessage(components.UserRole, components.TextPart("추출"), components.ImagePart(img))
	var v anthropic.Message
	ToMessage(*msg, &v)
	assert.Equal(t, anthropic.RoleUser, v.Role)
	require.Len(t, v.Content, 2)
	assert.Equal(t, "추출", v.Content[0].GetText())
	require.NotNil(t, v.Content[1].Source)
	assert.Equal(t, img.Base64(), v.Content[1].Source.Data)
}

func TestSystemPrompt(t *testing.T) {
	plain, err := SystemPrompt(&components.GenerationConfig{SystemInstruction: "영양사"})
	require.NoError(t, err)
	assert.Equal(t, "영양사", plain)

	structured, err := SystemPrompt(&components.GenerationConfig{
		SystemInstruction: "영양사",
		ResponseFormat:    components.ResponseFormatStructured,
		Schema:            schema.For(schema.StageHealthTips),
	})
	require.NoError(t, err)
	assert.Contains(t, structured, "영양사\n\n")
	assert.Contains(t, structured, schema.KeyHealthTip)
}
