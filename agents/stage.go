package agents

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/bububa/food-agents/components"
	"github.com/bububa/food-agents/components/systemprompt/simple"
	"github.com/bububa/food-agents/schema"
)

// Stage is one step of the analysis. It turns the run state into a prompt
// and merges the model answer back into the result.
type Stage interface {
	ID() schema.StageID
	Name() string
	// Status describes the stage while it runs
	Status() string
	Temperature() float32
	// Schema constrains the answer, nil for free text
	Schema() *schema.Schema
	Prompt(state *State) []components.Part
	Parse(raw string, result *components.Result) error
}

// BaseStage implements the descriptive part of Stage
type BaseStage struct {
	id          schema.StageID
	name        string
	status      string
	temperature float32
}

func (s BaseStage) ID() schema.StageID {
	return s.id
}

func (s BaseStage) Name() string {
	return s.name
}

func (s BaseStage) Status() string {
	return s.status
}

func (s BaseStage) Temperature() float32 {
	return s.temperature
}

func (s BaseStage) Schema() *schema.Schema {
	return schema.For(s.id)
}

// DefaultStages returns the five stages in run order
func DefaultStages() []Stage {
	return []Stage{
		NewExtraction(),
		NewDescription(),
		NewHealthTips(),
		NewAssessment(),
		NewAlternatives(),
	}
}

// Extraction reads the ingredient list off the photo
type Extraction struct {
	BaseStage
}

func NewExtraction() *Extraction {
	return &Extraction{BaseStage{
		id:          schema.StageExtraction,
		name:        "ingredient_extraction",
		status:      StatusExtraction,
		temperature: ExtractionTemperature,
	}}
}

// Prompt heads the request with the system instruction and the persona and
// attaches the image
func (s *Extraction) Prompt(state *State) []components.Part {
	header := simple.New(state.SystemInstruction, simple.WithContextProviders(state.Persona)).Generate()
	parts := []components.Part{
		components.TextPart(header + "\n\n" + extractionPrompt),
	}
	if state.Image != nil {
		parts = append(parts, components.ImagePart(state.Image))
	}
	return parts
}

func (s *Extraction) Parse(raw string, result *components.Result) error {
	return result.SetIngredients(SplitIngredients(raw))
}

// SplitIngredients splits the extraction answer on IngredientSeparator.
// Segments are trimmed, blank segments dropped, duplicates kept.
func SplitIngredients(raw string) []string {
	segments := strings.Split(raw, IngredientSeparator)
	ret := make([]string, 0, len(segments))
	for _, v := range segments {
		if v = strings.TrimSpace(v); v != "" {
			ret = append(ret, v)
		}
	}
	return ret
}

// Description explains every ingredient
type Description struct {
	BaseStage
}

func NewDescription() *Description {
	return &Description{BaseStage{
		id:          schema.StageDescription,
		name:        "ingredient_description",
		status:      StatusDescription,
		temperature: GenerationTemperature,
	}}
}

func (s *Description) Prompt(state *State) []components.Part {
	return []components.Part{
		components.TextPart(fmt.Sprintf(descriptionPrompt, joinIngredients(state.Result))),
	}
}

func (s *Description) Parse(raw string, result *components.Result) error {
	items, err := parseNamed(s.Schema(), raw, schema.KeyDescription)
	if err != nil {
		return err
	}
	return result.SetDescriptions(mergeNamed(items))
}

// HealthTips gives personalized benefits and cautions per ingredient
type HealthTips struct {
	BaseStage
}

func NewHealthTips() *HealthTips {
	return &HealthTips{BaseStage{
		id:          schema.StageHealthTips,
		name:        "health_tips",
		status:      StatusHealthTips,
		temperature: GenerationTemperature,
	}}
}

func (s *HealthTips) Prompt(state *State) []components.Part {
	return []components.Part{
		components.TextPart(fmt.Sprintf(healthTipsPrompt, state.Persona.Render(), joinIngredients(state.Result))),
	}
}

func (s *HealthTips) Parse(raw string, result *components.Result) error {
	items, err := parseNamed(s.Schema(), raw, schema.KeyHealthTip)
	if err != nil {
		return err
	}
	return result.SetHealthTips(mergeNamed(items))
}

// Assessment rates the whole product for the persona
type Assessment struct {
	BaseStage
}

func NewAssessment() *Assessment {
	return &Assessment{BaseStage{
		id:          schema.StageAssessment,
		name:        "overall_assessment",
		status:      StatusAssessment,
		temperature: GenerationTemperature,
	}}
}

func (s *Assessment) Prompt(state *State) []components.Part {
	return []components.Part{
		components.TextPart(fmt.Sprintf(assessmentPrompt, state.Persona.Render(), joinIngredients(state.Result))),
	}
}

func (s *Assessment) Parse(raw string, result *components.Result) error {
	doc, err := parseDocument(s.Schema(), raw)
	if err != nil {
		return err
	}
	members := doc.Map()
	var advice []components.Advice
	for _, item := range members[schema.KeyAdvice].Array() {
		fields := item.Map()
		advice = append(advice, components.Advice{
			Category: fields[schema.KeyCategory].String(),
			Content:  fields[schema.KeyContent].String(),
		})
	}
	return result.SetAssessment(
		members[schema.KeyAssessment].String(),
		members[schema.KeySuitability].String(),
		advice,
	)
}

// Alternatives suggests healthier substitutes and cooking tips
type Alternatives struct {
	BaseStage
}

func NewAlternatives() *Alternatives {
	return &Alternatives{BaseStage{
		id:          schema.StageAlternatives,
		name:        "alternatives",
		status:      StatusAlternatives,
		temperature: GenerationTemperature,
	}}
}

func (s *Alternatives) Prompt(state *State) []components.Part {
	return []components.Part{
		components.TextPart(fmt.Sprintf(alternativesPrompt, state.Persona.Render(), joinIngredients(state.Result))),
	}
}

func (s *Alternatives) Parse(raw string, result *components.Result) error {
	doc, err := parseDocument(s.Schema(), raw)
	if err != nil {
		return err
	}
	members := doc.Map()
	var alternatives []components.Alternative
	for _, item := range members[schema.KeyAlternatives].Array() {
		fields := item.Map()
		alternatives = append(alternatives, components.Alternative{
			Original:   fields[schema.KeyOriginal].String(),
			Substitute: fields[schema.KeySubstitute].String(),
			Reason:     fields[schema.KeyReason].String(),
		})
	}
	return result.SetAlternatives(alternatives, members[schema.KeyCookingTips].String())
}

func joinIngredients(result *components.Result) string {
	return strings.Join(result.Ingredients, ", ")
}

// parseDocument re-validates raw against s before anything is merged
func parseDocument(s *schema.Schema, raw string) (gjson.Result, error) {
	raw = strings.TrimSpace(raw)
	if err := s.Check(raw); err != nil {
		return gjson.Result{}, fmt.Errorf("%w: %w", components.ErrSchemaViolation, err)
	}
	return gjson.Parse(raw), nil
}

type namedValue struct {
	name  string
	value string
}

// parseNamed reads an array of objects keyed by ingredient name.
// Missing members read as empty strings.
func parseNamed(s *schema.Schema, raw string, valueKey string) ([]namedValue, error) {
	doc, err := parseDocument(s, raw)
	if err != nil {
		return nil, err
	}
	items := doc.Array()
	ret := make([]namedValue, 0, len(items))
	for _, item := range items {
		fields := item.Map()
		ret = append(ret, namedValue{
			name:  fields[schema.KeyIngredientName].String(),
			value: fields[valueKey].String(),
		})
	}
	return ret, nil
}

// mergeNamed flattens items into a map; a repeated name keeps the last value
func mergeNamed(items []namedValue) map[string]string {
	ret := make(map[string]string, len(items))
	for _, item := range items {
		ret[item.name] = item.value
	}
	return ret
}

// failureKind classifies a parse or commit error
func failureKind(err error) error {
	for _, kind := range []error{
		components.ErrSchemaViolation,
		components.ErrFieldAlreadySet,
		components.ErrStageOutOfOrder,
	} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return components.ErrSchemaViolation
}
