package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/simulador-rtc/internal/domain/entity"
)

func TestOfficialRates_ClassificationCodes(t *testing.T) {
	rates := &entity.OfficialRates{Objects: []entity.OfficialObject{
		{Number: 1, CClassTrib: "200034"},
		{Number: 2, CClassTrib: "000001"},
		{Number: 3, CClassTrib: "200034"},
		{Number: 4},
	}}
	assert.Equal(t, []string{"000001", "200034"}, rates.ClassificationCodes(), "ordenados, sin repetir ni vacíos")

	empty := &entity.OfficialRates{}
	assert.Empty(t, empty.ClassificationCodes())
}

func TestOfficialRates_Object(t *testing.T) {
	rates := &entity.OfficialRates{Objects: []entity.OfficialObject{{Number: 2, CST: "000"}}}

	obj, ok := rates.Object(2)
	assert.True(t, ok)
	assert.Equal(t, "000", obj.CST)

	_, ok = rates.Object(1)
	assert.False(t, ok)
}
