package llm

import (
	"encoding/json"
	"strings"
)

const codeFence = "```"

// StripCodeFence returns the body of the first fenced block of text, or
// text itself when it is not fenced. Models without native structured
// output often wrap JSON in a ```json fence.
func StripCodeFence(text string) string {
	raw := strings.TrimSpace(text)
	start := strings.Index(raw, codeFence)
	if start == -1 {
		return raw
	}
	rest := raw[start+len(codeFence):]
	end := strings.Index(rest, codeFence)
	if end == -1 {
		return raw
	}
	block := strings.TrimLeft(rest[:end], "\r\n")
	if idx := strings.Index(block, "\n"); idx != -1 {
		if first := strings.TrimSpace(block[:idx]); first != "" && !strings.ContainsAny(first, "[{") {
			block = block[idx+1:]
		}
	}
	return strings.TrimSpace(block)
}

// JSONSchema is a JSON-Schema document usable where a json.Marshaler is expected
type JSONSchema map[string]any

// MarshalJSON implements json.Marshaler
func (s JSONSchema) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any(s))
}

// WrapKey is the member an array rooted schema is nested under for
// providers that only accept object rooted schemas
const WrapKey = "items"

// WrapArray nests a non object schema document under WrapKey.
// It reports whether wrapping took place.
func WrapArray(doc map[string]any) (JSONSchema, bool) {
	if t, _ := doc["type"].(string); t == "object" {
		return JSONSchema(doc), false
	}
	return JSONSchema{
		"type": "object",
		"properties": map[string]any{
			WrapKey: doc,
		},
		"required": []string{WrapKey},
	}, true
}
