package components

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonaRender(t *testing.T) {
	p := Persona{
		Gender:       GenderFemale,
		Age:          60,
		HealthIssues: []string{"당뇨", "고혈압"},
		Purpose:      []string{"건강 증진"},
	}
	assert.Equal(t, "사용자 정보: (60세, 여성), 건강 이슈: 당뇨, 고혈압, 목적: 건강 증진", p.Render())
	assert.Equal(t, p.Render(), p.Info())
	assert.NoError(t, p.Validate())
}

func TestPersonaValidate(t *testing.T) {
	tests := []struct {
		name    string
		persona Persona
		fields  []string
	}{
		{
			name:    "empty",
			persona: Persona{},
			fields:  []string{"Gender", "Age", "HealthIssues", "Purpose"},
		},
		{
			name:    "zero age",
			persona: Persona{Gender: GenderMale, HealthIssues: []string{"통풍"}, Purpose: []string{"질병 관리"}},
			fields:  []string{"Age"},
		},
		{
			name:    "blank purpose",
			persona: Persona{Gender: GenderMale, Age: 40, HealthIssues: []string{"통풍"}, Purpose: []string{""}},
			fields:  []string{"Purpose"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.persona.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			got := make([]string, 0, len(verr.Fields))
			for _, f := range verr.Fields {
				got = append(got, f.Field)
				assert.NotEmpty(t, f.Message)
			}
			assert.Equal(t, tt.fields, got)
		})
	}
}

func TestPersonaAgeMessages(t *testing.T) {
	tests := []struct {
		age int
		msg string
	}{
		{age: 0, msg: MsgAgeRequired},
		{age: -3, msg: MsgAgeRequired},
		{age: 101, msg: MsgAgeRange},
	}
	for _, tt := range tests {
		p := Persona{Gender: GenderFemale, Age: tt.age, HealthIssues: []string{"비만"}, Purpose: []string{"체중 관리"}}
		var verr *ValidationError
		require.True(t, errors.As(p.Validate(), &verr), tt.age)
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "Age", verr.Fields[0].Field)
		assert.Equal(t, tt.msg, verr.Fields[0].Message, tt.age)
	}
	p := Persona{Gender: GenderFemale, Age: 100, HealthIssues: []string{"비만"}, Purpose: []string{"체중 관리"}}
	assert.NoError(t, p.Validate())
}

func TestParseGender(t *testing.T) {
	assert.Equal(t, GenderFemale, ParseGender("여성"))
	assert.Equal(t, GenderMale, ParseGender(" Male "))
	assert.Equal(t, GenderUnspecified, ParseGender("선택해주세요"))
}
