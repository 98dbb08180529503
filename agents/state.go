package agents

import (
	"github.com/rs/zerolog"

	"github.com/bububa/food-agents/components"
)

// State is everything one analysis run owns. It is never shared between runs.
type State struct {
	// RunID identifies the run in logs
	RunID string
	// Persona the prompts are personalized for
	Persona components.Persona
	// Image analysed by the extraction stage
	Image *components.Image
	// SystemInstruction heading the extraction prompt
	SystemInstruction string
	// Memory is the conversation so far
	Memory *components.Memory
	// Result collects the parsed stage outputs
	Result *components.Result
	// Usage sums the token usage reported by the model
	Usage components.LLMUsage
	// Logger is scoped to the run
	Logger zerolog.Logger
}

// NewState returns a fresh run state
func NewState(runID string, image *components.Image, persona components.Persona) *State {
	return &State{
		RunID:             runID,
		Persona:           persona,
		Image:             image,
		SystemInstruction: DefaultSystemInstruction,
		Memory:            components.NewMemory(),
		Result:            components.NewResult(),
		Logger:            zerolog.Nop(),
	}
}
