package projection

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/simulador-rtc/internal/domain/entity"
	"github.com/jhoicas/simulador-rtc/internal/domain/reconcile"
	"github.com/jhoicas/simulador-rtc/internal/domain/transition"
)

// TransitionProjector estrategia "instantánea": una sola consulta a la calculadora
// (año ancla 2026) y extrapolación de 2027-2033 con las tablas de transición.
type TransitionProjector struct {
	gateway RateGateway
}

// NewTransitionProjector construye el proyector.
func NewTransitionProjector(gateway RateGateway) *TransitionProjector {
	return &TransitionProjector{gateway: gateway}
}

// Project devuelve los 8 años ordenados. Si la calculadora falla no hay reporte parcial.
func (p *TransitionProjector) Project(ctx context.Context, in *entity.CalculationInput) (*entity.ProjectionReport, error) {
	// ── 1. Consulta ancla (2026, sin IS) ─────────────────────────────────────
	payload := anchorPayload(in.Document)
	rates, err := p.gateway.FetchOfficialRates(ctx, transition.ReferenceDate(transition.AnchorYear), &payload)
	if err != nil {
		return nil, fmt.Errorf("proyección instantánea: %w", err)
	}

	anchor := make([]entity.OfficialObject, len(payload.Items))
	for i := range payload.Items {
		if anchor[i], err = objectFor(rates, i+1); err != nil {
			return nil, fmt.Errorf("proyección instantánea: %w", err)
		}
	}

	// Los años extrapolados heredan los cClassTrib de la consulta ancla.
	codes := rates.ClassificationCodes()

	// ── 2. Conciliación del legado 2026 con vTotTrib ─────────────────────────
	reconciled, outcome := reconcile.Reconcile(reconcile.LegacyLines(in.Legacy), in.VTotTrib)

	// ── 3. Extrapolación por año ─────────────────────────────────────────────
	years := make([]entity.YearlyTaxResult, 0, transition.YearCount)
	for _, year := range transition.Years() {
		res, err := extrapolateYear(year, in.Document.Items, anchor, reconciled, outcome, codes)
		if err != nil {
			return nil, fmt.Errorf("proyección instantánea %d: %w", year, err)
		}
		years = append(years, res)
	}

	return &entity.ProjectionReport{
		Method: entity.MethodInstant,
		Source: rates.Source,
		Years:  years,
	}, nil
}

// extrapolateYear aplica a cada ítem:
//
//	N_i(y)  = N_i(2026) × NewRegimeScale(y) × (base_i + IS_i(y)) / base_i
//	CBS_i   = N_i × CBSShare(y);  IBS_i = N_i − CBS_i
//	IS_i(y) = base IS_i × ISPhaseInFactor(y)   (base IS = valor del ítem si no hay grupo)
//
// En 2026 los montos de la calculadora se usan tal cual.
func extrapolateYear(
	year int,
	items []entity.FiscalItem,
	anchor []entity.OfficialObject,
	reconciled entity.TaxLines,
	outcome entity.ReconcileOutcome,
	codes []string,
) (entity.YearlyTaxResult, error) {
	schedule, err := transition.ScheduleFor(year)
	if err != nil {
		return entity.YearlyTaxResult{}, err
	}
	scale, err := transition.NewRegimeScale(year)
	if err != nil {
		return entity.YearlyTaxResult{}, err
	}
	share, err := transition.CBSShare(year)
	if err != nil {
		return entity.YearlyTaxResult{}, err
	}
	legacy, err := weightedLegacy(reconciled, year)
	if err != nil {
		return entity.YearlyTaxResult{}, err
	}

	source := entity.YearSourceSimulated
	if year == transition.AnchorYear {
		source = entity.YearSourceAPI
	}

	results := make([]entity.ItemTaxResult, len(items))
	for i, it := range items {
		obj := anchor[i]
		base := it.BaseCalculo
		is := it.SelectiveBase().Mul(schedule.SelectivePhaseIn)

		if year == transition.AnchorYear {
			results[i] = itemResult(i+1, it, base, obj.CBS, obj.IBS, is,
				obj.CBSRate, obj.IBSUFRate.Add(obj.IBSMunRate))
			continue
		}

		n := obj.CBS.Add(obj.IBS).Mul(scale)
		if base.IsPositive() && is.IsPositive() {
			n = n.Mul(base.Add(is)).Div(base)
		}
		cbs := n.Mul(share)
		ibs := n.Sub(cbs)
		results[i] = itemResult(i+1, it, base, cbs, ibs, is,
			simulatedRate(schedule.CBSRate), simulatedRate(schedule.IBSRate))
	}

	return assembleYear(schedule, source, results, legacy, outcome, codes), nil
}

// simulatedRate tasa estatutaria en % (para mostrar en años extrapolados).
func simulatedRate(rate decimal.Decimal) decimal.Decimal {
	return rate.Mul(hundred)
}
