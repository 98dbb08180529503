package components

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bububa/food-agents/schema"
)

func TestResultCommitOrder(t *testing.T) {
	r := NewResult()
	assert.True(t, errors.Is(r.SetDescriptions(nil), ErrStageOutOfOrder))
	require.NoError(t, r.SetIngredients(nil))
	assert.Equal(t, []string{}, r.Ingredients)
	assert.True(t, errors.Is(r.SetIngredients([]string{"당근"}), ErrFieldAlreadySet))
	assert.Equal(t, schema.StageExtraction, r.Completed())
	assert.True(t, errors.Is(r.RequireIngredients(), ErrEmptyExtraction))
}

func TestResultSnapshot(t *testing.T) {
	r := NewResult()
	require.NoError(t, r.SetIngredients([]string{"당근"}))
	require.NoError(t, r.SetDescriptions(map[string]string{"당근": "뿌리채소"}))
	require.NoError(t, r.SetHealthTips(map[string]string{"당근": "베타카로틴"}))
	require.NoError(t, r.SetAssessment("좋음", "상", nil))
	require.NoError(t, r.SetAlternatives(nil, "찌기"))
	assert.True(t, r.Done())
	assert.Equal(t, []Advice{}, r.AdditionalAdvice)
	assert.Equal(t, []Alternative{}, r.Alternatives)

	snap := r.Snapshot()
	snap.Ingredients[0] = "changed"
	snap.Descriptions["당근"] = "changed"
	*snap.OverallAssessment = "changed"

	assert.Equal(t, "당근", r.Ingredients[0])
	assert.Equal(t, "뿌리채소", r.Descriptions["당근"])
	assert.Equal(t, "좋음", *r.OverallAssessment)
	assert.Equal(t, schema.StageAlternatives, snap.Completed())
}
