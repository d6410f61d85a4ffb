package projection

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/simulador-rtc/internal/domain"
	"github.com/jhoicas/simulador-rtc/internal/domain/entity"
	"github.com/jhoicas/simulador-rtc/internal/domain/transition"
	"github.com/jhoicas/simulador-rtc/pkg/rtc"
)

var hundred = decimal.NewFromInt(100)

// weightedLegacy pondera las líneas legadas ya conciliadas por la proporción
// complementaria del año. En 2026 se devuelven sin escalar.
func weightedLegacy(reconciled entity.TaxLines, year int) (entity.TaxLines, error) {
	scale, err := transition.LegacyScale(year)
	if err != nil {
		return nil, err
	}
	if year == transition.AnchorYear {
		return reconciled.Clone(), nil
	}
	return reconciled.Scale(scale), nil
}

// assembleYear arma el resultado anual a partir del desglose por ítem, las
// líneas legadas del año y los cClassTrib de la respuesta que lo originó. Los agregados salen de los mismos montos que las
// líneas, así que Σ(líneas) == Aggregate() sin redondeo.
func assembleYear(
	schedule transition.Schedule,
	source string,
	items []entity.ItemTaxResult,
	legacy entity.TaxLines,
	outcome entity.ReconcileOutcome,
	codes []string,
) entity.YearlyTaxResult {
	var base, cbs, ibs, is decimal.Decimal
	for i := range items {
		base = base.Add(items[i].BaseCalculo)
		cbs = cbs.Add(items[i].CBS)
		ibs = ibs.Add(items[i].IBS)
		is = is.Add(items[i].IS)
	}

	lines := make(entity.TaxLines, 0, len(entity.NewRegimeTaxOrder)+len(legacy))
	lines = append(lines,
		entity.TaxLine{Name: entity.TaxIBS, Amount: ibs},
		entity.TaxLine{Name: entity.TaxCBS, Amount: cbs},
		entity.TaxLine{Name: entity.TaxIS, Amount: is},
	)
	lines = append(lines, legacy...)

	res := entity.YearlyTaxResult{
		Year:             schedule.Year,
		Phase:            schedule.Phase,
		Description:      schedule.Description,
		Source:           source,
		SelectiveApplies: schedule.SelectiveApplies(),
		Lines:            lines,
		BaseCalculo:      base,
		Items:            items,
		NewRegimeTotal:   cbs.Add(ibs),
		SelectiveTotal:   is,
		LegacyTotal:      legacy.Sum(),
		Reconciliation:   outcome,

		ClassificationCodes: slices.Clone(codes),
	}
	if base.IsPositive() {
		res.CBSRate = cbs.Div(base).Mul(hundred)
		res.IBSRate = ibs.Div(base).Mul(hundred)
	}
	return res
}

// itemResult completa los datos descriptivos de un ítem y la categoría IS detectada.
func itemResult(number int, src entity.FiscalItem, base, cbs, ibs, is, cbsRate, ibsRate decimal.Decimal) entity.ItemTaxResult {
	r := entity.ItemTaxResult{
		Number:      number,
		NCM:         rtc.NormalizeNCM(src.NCM),
		Description: src.Description,
		BaseCalculo: base.Add(is),
		CBS:         cbs,
		IBS:         ibs,
		IS:          is,
		CBSRate:     cbsRate,
		IBSRate:     ibsRate,
	}
	if is.IsPositive() {
		r.Selective = rtc.DetectSelective(src.NCM)
	}
	return r
}

// objectFor busca el objeto del ítem en la respuesta; un ítem ausente es un error
// de contrato de la calculadora.
func objectFor(rates *entity.OfficialRates, number int) (entity.OfficialObject, error) {
	obj, ok := rates.Object(number)
	if !ok {
		return entity.OfficialObject{}, fmt.Errorf("%w: respuesta sin objeto para el ítem %d", domain.ErrRateServiceUnavailable, number)
	}
	return obj, nil
}
