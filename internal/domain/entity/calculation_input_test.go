package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/simulador-rtc/internal/domain/entity"
)

func TestFiscalItem_SelectiveBase(t *testing.T) {
	base := decimal.NewFromInt(1000)

	cases := []struct {
		name string
		item entity.FiscalItem
		want decimal.Decimal
	}{
		{"sin grupo IS usa el valor del ítem", entity.FiscalItem{BaseCalculo: base}, base},
		{"grupo sin base usa el valor del ítem",
			entity.FiscalItem{BaseCalculo: base, Selective: &entity.SelectiveTax{CST: "000"}}, base},
		{"grupo con base propia",
			entity.FiscalItem{BaseCalculo: base, Selective: &entity.SelectiveTax{BaseCalculo: decimal.NewFromInt(800)}},
			decimal.NewFromInt(800)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.item.SelectiveBase()
			assert.True(t, tc.want.Equal(got), "esperado %s, obtenido %s", tc.want, got)
		})
	}
}

func TestFiscalDocument_CloneNoCompartePunteros(t *testing.T) {
	doc := entity.FiscalDocument{Items: []entity.FiscalItem{{
		Regular:   &entity.RegularTaxation{CST: "000"},
		Selective: &entity.SelectiveTax{CST: "000"},
	}}}
	cp := doc.Clone()
	cp.Items[0].Selective.CST = "550"
	cp.Items[0].Regular.CST = "200"

	assert.Equal(t, "000", doc.Items[0].Selective.CST)
	assert.Equal(t, "000", doc.Items[0].Regular.CST)
}
