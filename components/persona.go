package components

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/bububa/food-agents/components/systemprompt"
)

// Gender of the end user
type Gender string

const (
	GenderUnspecified Gender = ""
	GenderFemale      Gender = "female"
	GenderMale        Gender = "male"
)

// ParseGender accepts english or korean names
func ParseGender(s string) Gender {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "female", "f", "여성", "여":
		return GenderFemale
	case "male", "m", "남성", "남":
		return GenderMale
	}
	return GenderUnspecified
}

// UnmarshalText implements encoding.TextUnmarshaler through ParseGender.
// Unknown names decode to GenderUnspecified and fail validation.
func (g *Gender) UnmarshalText(text []byte) error {
	*g = ParseGender(string(text))
	return nil
}

// Label returns the name used in prompts
func (g Gender) Label() string {
	switch g {
	case GenderFemale:
		return "여성"
	case GenderMale:
		return "남성"
	}
	return "선택해주세요"
}

// HealthIssueOptions are the health issues offered to the end user
var HealthIssueOptions = []string{
	"당뇨",
	"고혈압",
	"비만",
	"심장병",
	"뇌졸중",
	"간 질환",
	"신장 질환",
	"식품 알레르기",
	"유당 불내증",
	"글루텐 불내증",
	"통풍",
}

// PurposeOptions are the analysis purposes offered to the end user
var PurposeOptions = []string{
	"체중 관리",
	"영양 균형",
	"알레르기 확인",
	"건강 증진",
	"식단 다양화",
	"특정 영양소 섭취",
	"식품 첨가물 확인",
	"식이 제한 준수",
	"질병 관리",
	"운동 성능 향상",
}

// Persona describes the end user every prompt is personalized for.
// It is a value: a run works on its own copy.
type Persona struct {
	Gender       Gender   `json:"gender" yaml:"gender" mapstructure:"gender" validate:"oneof=female male"`
	Age          int      `json:"age" yaml:"age" mapstructure:"age" validate:"gt=0,lte=100"`
	HealthIssues []string `json:"health_issues" yaml:"health_issues" mapstructure:"health_issues" validate:"min=1,dive,required"`
	Purpose      []string `json:"purpose" yaml:"purpose" mapstructure:"purpose" validate:"min=1,dive,required"`
}

var _ systemprompt.ContextProvider = Persona{}

var personaMessages = map[string]string{
	"Gender":       MsgGenderRequired,
	"Age":          MsgAgeRequired,
	"HealthIssues": MsgHealthIssuesRequired,
	"Purpose":      MsgPurposeRequired,
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Render returns the summary embedded in every stage prompt
func (p Persona) Render() string {
	return fmt.Sprintf("사용자 정보: (%d세, %s), 건강 이슈: %s, 목적: %s",
		p.Age,
		p.Gender.Label(),
		strings.Join(p.HealthIssues, ", "),
		strings.Join(p.Purpose, ", "),
	)
}

// Title implements systemprompt.ContextProvider
func (p Persona) Title() string {
	return "사용자 정보"
}

// Info implements systemprompt.ContextProvider
func (p Persona) Info() string {
	return p.Render()
}

// Validate checks the persona before a run. The pipeline itself does not
// call it; the caller owns input validation.
func (p Persona) Validate() error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	ret := NewValidationError()
	seen := make(map[string]struct{}, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := fe.StructField()
		if idx := strings.IndexByte(field, '['); idx >= 0 {
			field = field[:idx]
		}
		if _, ok := seen[field]; ok {
			continue
		}
		seen[field] = struct{}{}
		msg := personaMessages[field]
		if field == "Age" && fe.Tag() == "lte" {
			msg = MsgAgeRange
		}
		ret.Fields = append(ret.Fields, FieldError{
			Field:   field,
			Message: msg,
		})
	}
	return ret
}
