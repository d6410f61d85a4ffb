package pdf

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/simulador-rtc/internal/domain/entity"
	"github.com/jhoicas/simulador-rtc/pkg/rtc"
)

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":          "R$ 0,00",
		"12.5":       "R$ 12,50",
		"1234.567":   "R$ 1.234,57",
		"1234567.89": "R$ 1.234.567,89",
		"-950":       "-R$ 950,00",
		"-0.001":     "R$ 0,00",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(decimal.RequireFromString(in)), in)
	}
}

func TestGenerateProjectionPDF(t *testing.T) {
	input := &entity.CalculationInput{
		Document: entity.FiscalDocument{ID: "NFe-1", UF: "sp", Municipality: 3550308},
	}
	years := make([]entity.YearlyTaxResult, 0, 8)
	for y := 2026; y <= 2033; y++ {
		years = append(years, entity.YearlyTaxResult{
			Year:   y,
			Phase:  "Transição",
			Source: entity.YearSourceSimulated,
			Lines: entity.TaxLines{
				{Name: entity.TaxIBS, Amount: decimal.NewFromInt(10)},
				{Name: entity.TaxCBS, Amount: decimal.NewFromInt(90)},
				{Name: entity.TaxIS, Amount: decimal.Zero},
				{Name: entity.TaxICMS, Amount: decimal.NewFromInt(180)},
			},
			Items: []entity.ItemTaxResult{{
				Number: 1, NCM: "22030000", Description: "Cerveja",
				BaseCalculo: decimal.NewFromInt(1000), CBS: decimal.NewFromInt(90), IBS: decimal.NewFromInt(10),
				IS: decimal.NewFromInt(30), Selective: rtc.DetectSelective("22030000"),
			}},
			Reconciliation: entity.ReconcileOutcome{Applied: true, Residual: decimal.NewFromInt(20)},
		})
	}
	report := &entity.ProjectionReport{Method: entity.MethodInstant, Source: entity.SourceOnline, Years: years}

	out, err := NewMarotoReportGenerator().GenerateProjectionPDF(report, input)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "el resultado debe ser un PDF")
}

func TestGenerateProjectionPDF_Nulos(t *testing.T) {
	_, err := NewMarotoReportGenerator().GenerateProjectionPDF(nil, &entity.CalculationInput{})
	assert.Error(t, err)
}
