package agents

// DefaultSystemInstruction is sent as the system instruction of every call
// and repeated at the top of the extraction prompt.
const DefaultSystemInstruction = "당신은 이미지 OCR 및 NER 전문가입니다. 동시에 친절한 영양사입니다."

// IngredientSeparator separates ingredients in the extraction answer
const IngredientSeparator = "^"

const (
	extractionPrompt   = "이미지에서 식품에 들어간 재료를 정확히 추출해서 '^'로 구분하여 나열해주세요. 단, 식재료 영역에 감지된 객체만 보여주세요. 다른 영역은 필요없습니다. 다른 답변도 필요하지마세요."
	descriptionPrompt  = "다음 식품 재료에 대해 설명해주세요: %s. 다른 답변은 필요없습니다."
	healthTipsPrompt   = "%s을 참고하여 다음 재료들(%s)의 건강상 이점과 주의사항에 대해 조언해주세요. 다른 답변은 필요없습니다."
	assessmentPrompt   = "%s을 고려해서, 지금까지 분석한 모든 재료(%s)를 종합적으로 평가해주세요. 이 식품이 사용자에게 전반적으로 얼마나 적합한지, 추가 조언도 해주세요."
	alternativesPrompt = "%s을 고려하여, 분석한 재료들(%s) 중 건강에 더 좋은 대체 재료와 조리법을 추천해주세요."
)

// Status texts reported while a run progresses.
const (
	StatusExtraction   = "이미지에서 재료를 추출하는 중..."
	StatusDescription  = "재료에 대한 설명을 생성하는 중..."
	StatusHealthTips   = "건강 팁을 생성하는 중..."
	StatusAssessment   = "종합 평가 및 추가 정보를 생성하는 중..."
	StatusAlternatives = "대체 재료 및 조리 팁을 생성하는 중..."
	StatusCompleted    = "분석이 완료되었습니다!"
)

const (
	// ExtractionTemperature keeps the extraction factual
	ExtractionTemperature float32 = 0.2
	// GenerationTemperature is used by every stage after extraction
	GenerationTemperature float32 = 0.7
)
