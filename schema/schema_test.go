package schema

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	assert.Nil(t, For(StageExtraction))
	for _, id := range []StageID{StageDescription, StageHealthTips, StageAssessment, StageAlternatives} {
		assert.NotNil(t, For(id), id.String())
	}
	assert.Equal(t, TypeArray, For(StageDescription).Type)
	assert.Equal(t, TypeArray, For(StageHealthTips).Type)
	assert.Equal(t, TypeObject, For(StageAssessment).Type)
	assert.Equal(t, TypeObject, For(StageAlternatives).Type)
	assert.Equal(t, []string{KeyAssessment, KeySuitability, KeyAdvice}, For(StageAssessment).Required)
}

func TestJSONSchema(t *testing.T) {
	doc := For(StageDescription).JSONSchema()
	bs, err := json.Marshal(doc)
	require.NoError(t, err)

	var decoded struct {
		Type  string `json:"type"`
		Items struct {
			Type       string                       `json:"type"`
			Properties map[string]map[string]string `json:"properties"`
			Required   []string                     `json:"required"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(bs, &decoded))
	assert.Equal(t, "array", decoded.Type)
	assert.Equal(t, "object", decoded.Items.Type)
	assert.Equal(t, []string{KeyIngredientName, KeyDescription}, decoded.Items.Required)
	assert.Equal(t, "string", decoded.Items.Properties[KeyDescription]["type"])
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name     string
		stage    StageID
		raw      string
		mismatch bool
		invalid  bool
	}{
		{name: "description ok", stage: StageDescription, raw: `[{"재료명":"당근","설명":"A"}]`},
		{name: "empty array", stage: StageDescription, raw: `[]`},
		{name: "object instead of array", stage: StageHealthTips, raw: `{"재료명":"당근"}`, mismatch: true},
		{name: "item not object", stage: StageHealthTips, raw: `["당근"]`, mismatch: true},
		{name: "null item", stage: StageDescription, raw: `[null]`, mismatch: true},
		{name: "null item after valid item", stage: StageHealthTips, raw: `[{"재료명":"당근","건강팁":"A"},null]`, mismatch: true},
		{name: "not json", stage: StageHealthTips, raw: `당근은 좋아요`, invalid: true},
		{name: "assessment missing advice", stage: StageAssessment, raw: `{"종합평가":"좋음","적합도":"상"}`},
		{name: "assessment advice wrong kind", stage: StageAssessment, raw: `{"추가조언":"더 드세요"}`, mismatch: true},
		{name: "assessment null advice item", stage: StageAssessment, raw: `{"추가조언":[null]}`, mismatch: true},
		{name: "alternatives null item", stage: StageAlternatives, raw: `{"alternatives":[null]}`, mismatch: true},
		{name: "assessment null advice", stage: StageAssessment, raw: `{"추가조언":null}`},
		{name: "alternatives ok", stage: StageAlternatives, raw: `{"alternatives":[{"원재료":"설탕","대체재료":"스테비아","대체이유":"혈당"}],"조리팁":"찌기"}`},
		{name: "root null", stage: StageAlternatives, raw: `null`, mismatch: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := For(tt.stage).Check(tt.raw)
			var mismatch *MismatchError
			switch {
			case tt.invalid:
				assert.True(t, errors.Is(err, ErrInvalidJSON))
			case tt.mismatch:
				assert.True(t, errors.As(err, &mismatch), "got %v", err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestObjectOrdering(t *testing.T) {
	s := Object("", Prop("b", String("")), Prop("a", String("")))
	assert.Equal(t, []string{"b", "a"}, s.OrderedProperties())
	assert.Equal(t, []string{"b", "a"}, s.Required)
}
