package components

import (
	"fmt"
	"maps"
	"slices"

	"github.com/bububa/food-agents/schema"
)

// Advice is one categorized recommendation of the assessment stage
type Advice struct {
	Category string `json:"category" yaml:"category"`
	Content  string `json:"content" yaml:"content"`
}

// Alternative is a healthier substitute for an ingredient
type Alternative struct {
	Original   string `json:"original" yaml:"original"`
	Substitute string `json:"substitute" yaml:"substitute"`
	Reason     string `json:"reason" yaml:"reason"`
}

// Result is the progressively assembled analysis.
// A nil field has not been produced yet. Each field is owned by exactly
// one stage and written once through the Set* methods, in stage order.
type Result struct {
	// Ingredients extracted by stage 1, duplicates preserved
	Ingredients []string `json:"ingredients" yaml:"ingredients"`
	// Descriptions by ingredient name, stage 2
	Descriptions map[string]string `json:"descriptions" yaml:"descriptions"`
	// HealthTips by ingredient name, stage 3
	HealthTips map[string]string `json:"health_tips" yaml:"health_tips"`
	// OverallAssessment stage 4
	OverallAssessment *string `json:"overall_assessment" yaml:"overall_assessment"`
	// Suitability grade, stage 4
	Suitability *string `json:"suitability" yaml:"suitability"`
	// AdditionalAdvice stage 4
	AdditionalAdvice []Advice `json:"additional_advice" yaml:"additional_advice"`
	// Alternatives stage 5
	Alternatives []Alternative `json:"alternatives" yaml:"alternatives"`
	// CookingTips stage 5
	CookingTips *string `json:"cooking_tips" yaml:"cooking_tips"`

	completed schema.StageID
}

// NewResult returns an empty Result
func NewResult() *Result {
	return new(Result)
}

// Completed returns the last committed stage, 0 before stage 1
func (r *Result) Completed() schema.StageID {
	return r.completed
}

// Done reports whether every stage has committed
func (r *Result) Done() bool {
	return r.completed == schema.StageAlternatives
}

func (r *Result) commit(stage schema.StageID) error {
	if stage <= r.completed {
		return fmt.Errorf("%w: stage %d", ErrFieldAlreadySet, stage)
	}
	if stage != r.completed+1 {
		return fmt.Errorf("%w: stage %d after stage %d", ErrStageOutOfOrder, stage, r.completed)
	}
	r.completed = stage
	return nil
}

// SetIngredients commits stage 1
func (r *Result) SetIngredients(ingredients []string) error {
	if err := r.commit(schema.StageExtraction); err != nil {
		return err
	}
	if ingredients == nil {
		ingredients = []string{}
	}
	r.Ingredients = ingredients
	return nil
}

// SetDescriptions commits stage 2
func (r *Result) SetDescriptions(descriptions map[string]string) error {
	if err := r.commit(schema.StageDescription); err != nil {
		return err
	}
	if descriptions == nil {
		descriptions = map[string]string{}
	}
	r.Descriptions = descriptions
	return nil
}

// SetHealthTips commits stage 3
func (r *Result) SetHealthTips(tips map[string]string) error {
	if err := r.commit(schema.StageHealthTips); err != nil {
		return err
	}
	if tips == nil {
		tips = map[string]string{}
	}
	r.HealthTips = tips
	return nil
}

// SetAssessment commits stage 4
func (r *Result) SetAssessment(overall string, suitability string, advice []Advice) error {
	if err := r.commit(schema.StageAssessment); err != nil {
		return err
	}
	if advice == nil {
		advice = []Advice{}
	}
	r.OverallAssessment = &overall
	r.Suitability = &suitability
	r.AdditionalAdvice = advice
	return nil
}

// SetAlternatives commits stage 5
func (r *Result) SetAlternatives(alternatives []Alternative, cookingTips string) error {
	if err := r.commit(schema.StageAlternatives); err != nil {
		return err
	}
	if alternatives == nil {
		alternatives = []Alternative{}
	}
	r.Alternatives = alternatives
	r.CookingTips = &cookingTips
	return nil
}

// RequireIngredients returns ErrEmptyExtraction for callers that treat an
// empty extraction as a failure
func (r *Result) RequireIngredients() error {
	if r.completed >= schema.StageExtraction && len(r.Ingredients) == 0 {
		return ErrEmptyExtraction
	}
	return nil
}

// Snapshot returns a deep copy safe to hand to another goroutine
func (r *Result) Snapshot() *Result {
	ret := &Result{
		Ingredients:       slices.Clone(r.Ingredients),
		Descriptions:      maps.Clone(r.Descriptions),
		HealthTips:        maps.Clone(r.HealthTips),
		OverallAssessment: cloneString(r.OverallAssessment),
		Suitability:       cloneString(r.Suitability),
		AdditionalAdvice:  slices.Clone(r.AdditionalAdvice),
		Alternatives:      slices.Clone(r.Alternatives),
		CookingTips:       cloneString(r.CookingTips),
		completed:         r.completed,
	}
	return ret
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
