package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name string `validate:"notblank,max=10"`
	Date string `validate:"ymd"`
	Time string `validate:"hhmm"`
}

func TestNew_CustomRules(t *testing.T) {
	v := New()

	assert.NoError(t, v.Struct(sample{Name: "Acme", Date: "2024-09-20", Time: "09:00"}))

	err := v.Struct(sample{Name: "  ", Date: "20/09/2024", Time: "9h"})
	assert.Error(t, err)

	desc := Describe(err)
	assert.Contains(t, desc, "Name: notblank")
	assert.Contains(t, desc, "Date: ymd")
	assert.Contains(t, desc, "Time: hhmm")
}

func TestDescribe_Max(t *testing.T) {
	err := New().Struct(sample{Name: "a very long company", Date: "2024-09-20", Time: "09:00"})
	assert.Equal(t, "Name: max=10", Describe(err))
}
