package agents

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bububa/food-agents/components"
	"github.com/bububa/food-agents/schema"
)

func TestSplitIngredients(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{raw: "사과^바나나^사과", want: []string{"사과", "바나나", "사과"}},
		{raw: " 당근 ^ 양파 ^\n", want: []string{"당근", "양파"}},
		{raw: "", want: []string{}},
		{raw: "^^", want: []string{}},
		{raw: "밀가루", want: []string{"밀가루"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SplitIngredients(tt.raw), tt.raw)
	}
}

// resultAt returns a result whose stages before id have committed
func resultAt(t *testing.T, id schema.StageID, ingredients ...string) *components.Result {
	t.Helper()
	r := components.NewResult()
	if id > schema.StageExtraction {
		require.NoError(t, r.SetIngredients(ingredients))
	}
	if id > schema.StageDescription {
		require.NoError(t, r.SetDescriptions(nil))
	}
	if id > schema.StageHealthTips {
		require.NoError(t, r.SetHealthTips(nil))
	}
	if id > schema.StageAssessment {
		require.NoError(t, r.SetAssessment("", "", nil))
	}
	return r
}

func TestDescriptionLastWriteWins(t *testing.T) {
	r := resultAt(t, schema.StageDescription, "당근", "당근")
	err := NewDescription().Parse(`[{"재료명":"당근","설명":"A"},{"재료명":"당근","설명":"B"}]`, r)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"당근": "B"}, r.Descriptions)
}

func TestMergeNamedIdempotent(t *testing.T) {
	items, err := parseNamed(schema.For(schema.StageDescription), `[{"재료명":"당근","설명":"A"},{"재료명":"양파","설명":"C"},{"재료명":"당근","설명":"B"}]`, schema.KeyDescription)
	require.NoError(t, err)
	first := mergeNamed(items)
	second := mergeNamed(items)
	assert.Equal(t, first, second)
	assert.Equal(t, map[string]string{"당근": "B", "양파": "C"}, first)
}

func TestHealthTipsMissingMembers(t *testing.T) {
	r := resultAt(t, schema.StageHealthTips, "당근")
	require.NoError(t, NewHealthTips().Parse(`[{"재료명":"당근"},{"건강팁":"이름 없음"}]`, r))
	assert.Equal(t, map[string]string{"당근": "", "": "이름 없음"}, r.HealthTips)
}

func TestHealthTipsMalformed(t *testing.T) {
	tests := []string{
		`당근은 눈에 좋습니다`,
		`{"재료명":"당근","건강팁":"A"}`,
		`[{"재료명":"당근","건강팁":"A"}`,
		`[null]`,
		`[{"재료명":"당근","건강팁":"A"},null]`,
	}
	for _, raw := range tests {
		r := resultAt(t, schema.StageHealthTips, "당근")
		err := NewHealthTips().Parse(raw, r)
		assert.True(t, errors.Is(err, components.ErrSchemaViolation), raw)
		assert.Nil(t, r.HealthTips)
		assert.Equal(t, schema.StageDescription, r.Completed())
	}
}

func TestAssessmentDefaults(t *testing.T) {
	r := resultAt(t, schema.StageAssessment, "당근")
	require.NoError(t, NewAssessment().Parse(`{"종합평가":"적합합니다","적합도":"상"}`, r))
	assert.Equal(t, []components.Advice{}, r.AdditionalAdvice)
	assert.Equal(t, "적합합니다", *r.OverallAssessment)

	r = resultAt(t, schema.StageAssessment, "당근")
	require.NoError(t, NewAssessment().Parse(`{}`, r))
	assert.Equal(t, "", *r.OverallAssessment)
	assert.Equal(t, "", *r.Suitability)
	assert.Equal(t, []components.Advice{}, r.AdditionalAdvice)
}

func TestNullElementsRejected(t *testing.T) {
	r := resultAt(t, schema.StageDescription, "당근")
	err := NewDescription().Parse(`[null]`, r)
	assert.True(t, errors.Is(err, components.ErrSchemaViolation))
	assert.Nil(t, r.Descriptions)

	r = resultAt(t, schema.StageAssessment, "당근")
	err = NewAssessment().Parse(`{"종합평가":"적합합니다","적합도":"상","추가조언":[null]}`, r)
	assert.True(t, errors.Is(err, components.ErrSchemaViolation))
	assert.Nil(t, r.AdditionalAdvice)
	assert.Equal(t, schema.StageHealthTips, r.Completed())

	r = resultAt(t, schema.StageAlternatives, "설탕")
	err = NewAlternatives().Parse(`{"alternatives":[null],"조리팁":"찌기"}`, r)
	assert.True(t, errors.Is(err, components.ErrSchemaViolation))
	assert.Nil(t, r.Alternatives)
}

func TestAlternativesDefaults(t *testing.T) {
	r := resultAt(t, schema.StageAlternatives, "설탕")
	require.NoError(t, NewAlternatives().Parse(`{"조리팁":"찌기"}`, r))
	assert.Equal(t, []components.Alternative{}, r.Alternatives)
	assert.Equal(t, "찌기", *r.CookingTips)

	r = resultAt(t, schema.StageAlternatives, "설탕")
	err := NewAlternatives().Parse(`{"alternatives":"없음"}`, r)
	assert.True(t, errors.Is(err, components.ErrSchemaViolation))
	assert.Nil(t, r.CookingTips)
}

func TestStageFailureKind(t *testing.T) {
	assert.Equal(t, components.ErrFieldAlreadySet, failureKind(components.ErrFieldAlreadySet))
	assert.Equal(t, components.ErrSchemaViolation, failureKind(errors.New("unexpected")))
}
