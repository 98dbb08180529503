package llm

type Provider = string

const (
	ProviderGemini    Provider = "Gemini"
	ProviderOpenAI    Provider = "OpenAI"
	ProviderAnthropic Provider = "Anthropic"
)

// DefaultGeminiModel is the model the pipeline was tuned with
const DefaultGeminiModel = "gemini-2.0-flash"
