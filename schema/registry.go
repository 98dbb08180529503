package schema

// Field names shared by the model responses and the parsers.
const (
	KeyIngredientName = "재료명"
	KeyDescription    = "설명"
	KeyHealthTip      = "건강팁"
	KeyAssessment     = "종합평가"
	KeySuitability    = "적합도"
	KeyAdvice         = "추가조언"
	KeyCategory       = "카테고리"
	KeyContent        = "내용"
	KeyAlternatives   = "alternatives"
	KeyOriginal       = "원재료"
	KeySubstitute     = "대체재료"
	KeyReason         = "대체이유"
	KeyCookingTips    = "조리팁"
)

var (
	descriptionSchema = Array(Object("",
		Prop(KeyIngredientName, String("OCR을 통해 추출된 재료명")),
		Prop(KeyDescription, String("추출된 재료명에 대한 자세한 설명")),
	), "")

	healthTipsSchema = Array(Object("",
		Prop(KeyIngredientName, String("OCR을 통해 추출된 재료명")),
		Prop(KeyHealthTip, String("해당 재료의 건강상 이점과 주의사항")),
	), "")

	assessmentSchema = Object("",
		Prop(KeyAssessment, String("사용자 정보와 건강 이슈를 고려한 전체 식품 재료의 종합적인 평가")),
		Prop(KeySuitability, String("이 식품이 사용자에게 전반적으로 얼마나 적합한지에 대한 점수와 평가 (최상/상/중/하/최하)")),
		Prop(KeyAdvice, Array(Object("",
			Prop(KeyCategory, String("조언 카테고리 (예: 식단 구성, 조리팁, 영양소, 생활 습관, 자가 모니터링, 식품 선택 등)")),
			Prop(KeyContent, String("구체적인 조언 내용")),
		), "")),
	)

	alternativesSchema = Object("",
		Prop(KeyAlternatives, Array(Object("",
			Prop(KeyOriginal, String("OCR을 통해 추출된 원래 재료명")),
			Prop(KeySubstitute, String("건강에 더 좋은 대체 재료 제안")),
			Prop(KeyReason, String("이 대체 재료를 추천하는 건강상 이유")),
		), "")),
		Prop(KeyCookingTips, String("건강에 더 좋은 조리법 및 방법 제안")),
	)
)

// Registry maps a stage to the schema its response must satisfy.
// The extraction stage answers in free text and has no entry.
// Values are shared by every run and must not be modified.
var Registry = map[StageID]*Schema{
	StageDescription:  descriptionSchema,
	StageHealthTips:   healthTipsSchema,
	StageAssessment:   assessmentSchema,
	StageAlternatives: alternativesSchema,
}

// For returns the schema registered for a stage, or nil
func For(id StageID) *Schema {
	return Registry[id]
}
