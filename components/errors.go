package components

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bububa/food-agents/schema"
)

var (
	// ErrValidation marks invalid caller input (persona or image)
	ErrValidation = errors.New("validation failed")
	// ErrModelInvocation marks a failed model call (network, timeout, rate limit)
	ErrModelInvocation = errors.New("model invocation failed")
	// ErrSchemaViolation marks a response that is not valid JSON of the expected shape
	ErrSchemaViolation = errors.New("schema violation")
	// ErrEmptyExtraction marks an extraction that found no ingredients.
	// The pipeline continues in that case; see Result.RequireIngredients.
	ErrEmptyExtraction = errors.New("no ingredients extracted")
	// ErrFieldAlreadySet is returned when a stage commits into a result twice
	ErrFieldAlreadySet = errors.New("result field already set")
	// ErrStageOutOfOrder is returned when a stage commits before its predecessor
	ErrStageOutOfOrder = errors.New("stage committed out of order")
)

// Validation messages shown to the end user.
const (
	MsgGenderRequired       = "성별을 선택해주세요."
	MsgAgeRequired          = "나이를 입력해주세요."
	MsgAgeRange             = "나이는 1세에서 100세 사이로 입력해주세요."
	MsgHealthIssuesRequired = "건강 이슈를 하나 이상 선택해주세요."
	MsgPurposeRequired      = "목적을 입력해주세요."
	MsgImageMissing         = "이미지 파일이 존재하지 않습니다."
	MsgImageInvalid         = "이미지 파일 형식이 아닙니다."
)

// FieldError is one failed input check
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every failed input check
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

// NewValidationError returns a ValidationError
func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, " ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Merge appends the fields of another ValidationError
func (e *ValidationError) Merge(err error) {
	var other *ValidationError
	if errors.As(err, &other) {
		e.Fields = append(e.Fields, other.Fields...)
	}
}

// StageError reports the stage that halted a run
type StageError struct {
	// Stage is the failing stage
	Stage schema.StageID
	// Name is the stage name
	Name string
	// Raw is the model response, empty when the call itself failed
	Raw string
	// Kind is ErrModelInvocation or ErrSchemaViolation
	Kind error
	// Err is the underlying failure
	Err error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %d (%s): %v: %v", e.Stage, e.Name, e.Kind, e.Err)
}

// Unwrap exposes both the failure kind and the cause to errors.Is and errors.As
func (e *StageError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// InvocationError wraps a provider failure as ErrModelInvocation
func InvocationError(err error) error {
	if err == nil || errors.Is(err, ErrModelInvocation) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrModelInvocation, err)
}
