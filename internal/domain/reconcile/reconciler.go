// Package reconcile concilia los tributos legados destacados en el documento con
// la carga tributaria total declarada (vTotTrib, Ley 12.741/2012).
//
// vTotTrib es la referencia de "carga actual": las líneas explícitas suelen
// subestimar los tributos de etapas anteriores (ST, tributos embutidos), así que
// la diferencia positiva se atribuye al bucket ST-IMPLICITO en vez de perderse.
// Nunca se reduce una línea declarada.
package reconcile

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/simulador-rtc/internal/domain/entity"
)

// Epsilon tolerancia (medio centavo) para ruido numérico: residuos menores no se atribuyen.
var Epsilon = decimal.RequireFromString("0.005")

// LegacyLines construye las líneas explícitas del régimen actual en orden canónico.
// Las líneas en cero también se incluyen para que el reporte tenga forma estable.
func LegacyLines(t entity.LegacyTaxes) entity.TaxLines {
	return entity.TaxLines{
		{Name: entity.TaxICMS, Amount: t.ICMS},
		{Name: entity.TaxICMSST, Amount: t.ST},
		{Name: entity.TaxISS, Amount: t.ISS},
		{Name: entity.TaxIPI, Amount: t.IPI},
		{Name: entity.TaxPIS, Amount: t.PIS},
		{Name: entity.TaxCOFINS, Amount: t.COFINS},
	}
}

// Reconcile calcula residual = vTotTrib - Σ(líneas legadas) y, si es positivo
// (mayor que Epsilon), lo suma al bucket ST-IMPLICITO (creándolo tras ICMS-ST si no existe)
// de modo que Σ(legado) == vTotTrib. Con residual <= Epsilon las líneas se devuelven
// sin cambios y el resultado indica Applied == false.
//
// Las líneas no legadas (IBS, CBS, IS) se conservan tal cual. explicit no se modifica.
func Reconcile(explicit entity.TaxLines, vTotTrib decimal.Decimal) (entity.TaxLines, entity.ReconcileOutcome) {
	out := explicit.Clone()
	residual := vTotTrib.Sub(explicit.LegacySum())

	if residual.LessThanOrEqual(Epsilon) {
		return out, entity.ReconcileOutcome{Residual: residual, Applied: false}
	}

	for i := range out {
		if out[i].Name == entity.TaxImplicit {
			out[i].Amount = out[i].Amount.Add(residual)
			return out, entity.ReconcileOutcome{Residual: residual, Applied: true}
		}
	}
	return insertImplicit(out, residual), entity.ReconcileOutcome{Residual: residual, Applied: true}
}

// insertImplicit coloca el bucket justo después de ICMS-ST (o al final si no hay ST).
func insertImplicit(lines entity.TaxLines, amount decimal.Decimal) entity.TaxLines {
	implicit := entity.TaxLine{Name: entity.TaxImplicit, Amount: amount}
	pos := len(lines)
	for i, l := range lines {
		if l.Name == entity.TaxICMSST {
			pos = i + 1
			break
		}
	}
	out := make(entity.TaxLines, 0, len(lines)+1)
	out = append(out, lines[:pos]...)
	out = append(out, implicit)
	out = append(out, lines[pos:]...)
	return out
}
