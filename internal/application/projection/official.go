package projection

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/simulador-rtc/internal/domain/entity"
	"github.com/jhoicas/simulador-rtc/internal/domain/reconcile"
	"github.com/jhoicas/simulador-rtc/internal/domain/transition"
)

// YearOrchestrator estrategia "rtc": una consulta oficial por año (2026-2033) en paralelo.
//
// Usa un errgroup.Group sin contexto derivado: las consultas en vuelo no se cancelan
// cuando otra falla, pero Project siempre espera a todas antes de volver.
type YearOrchestrator struct {
	gateway RateGateway
}

// NewYearOrchestrator construye el orquestador.
func NewYearOrchestrator(gateway RateGateway) *YearOrchestrator {
	return &YearOrchestrator{gateway: gateway}
}

// Project consulta los 8 años y devuelve el reporte ordenado por año.
// Cualquier año con error hace fallar la operación completa con ese error.
//
// Latencia en el peor caso: Wait no vuelve hasta que terminan las 8 consultas, y
// cada una puede tardar hasta 2 × timeout (primaria agotada + respaldo local).
// Un año que falla rápido no acorta la espera de los demás; la cota la fija ctx.
func (o *YearOrchestrator) Project(ctx context.Context, in *entity.CalculationInput) (*entity.ProjectionReport, error) {
	years := transition.Years()
	results := make([]entity.YearlyTaxResult, len(years))
	sources := make([]string, len(years))

	reconciled, outcome := reconcile.Reconcile(reconcile.LegacyLines(in.Legacy), in.VTotTrib)

	var g errgroup.Group
	for i, year := range years {
		i, year := i, year
		g.Go(func() error {
			res, source, err := o.projectYear(ctx, in, year, reconciled, outcome)
			if err != nil {
				return fmt.Errorf("proyección rtc %d: %w", year, err)
			}
			// Cada goroutine escribe solo su índice.
			results[i] = res
			sources[i] = source
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &entity.ProjectionReport{
		Method: entity.MethodOfficial,
		Source: sources[0],
		Years:  results,
	}, nil
}

// projectYear arma el payload del año, consulta la calculadora y compone el resultado.
// CBS/IBS/IS salen de la respuesta oficial; si la API devuelve IS 0 para un ítem
// se usa el impostoInformado enviado en su grupo seletivo.
func (o *YearOrchestrator) projectYear(
	ctx context.Context,
	in *entity.CalculationInput,
	year int,
	reconciled entity.TaxLines,
	outcome entity.ReconcileOutcome,
) (entity.YearlyTaxResult, string, error) {
	schedule, err := transition.ScheduleFor(year)
	if err != nil {
		return entity.YearlyTaxResult{}, "", err
	}
	legacy, err := weightedLegacy(reconciled, year)
	if err != nil {
		return entity.YearlyTaxResult{}, "", err
	}

	payload := yearPayload(in.Document, schedule.SelectivePhaseIn)
	rates, err := o.gateway.FetchOfficialRates(ctx, transition.ReferenceDate(year), &payload)
	if err != nil {
		return entity.YearlyTaxResult{}, "", err
	}

	results := make([]entity.ItemTaxResult, len(payload.Items))
	for i, it := range payload.Items {
		obj, err := objectFor(rates, it.Number)
		if err != nil {
			return entity.YearlyTaxResult{}, "", err
		}
		is := obj.IS
		if is.IsZero() && it.Selective != nil {
			is = it.Selective.InformedTax
		}
		results[i] = itemResult(it.Number, in.Document.Items[i], it.BaseCalculo, obj.CBS, obj.IBS, is,
			obj.CBSRate, obj.IBSUFRate.Add(obj.IBSMunRate))
	}

	return assembleYear(schedule, entity.YearSourceAPIRTC, results, legacy, outcome, rates.ClassificationCodes()), rates.Source, nil
}
