package projection

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/simulador-rtc/internal/domain/entity"
	"github.com/jhoicas/simulador-rtc/pkg/rtc"
)

// anchorPayload documento para la consulta ancla (2026): ítems numerados 1..n y
// sin grupo de Imposto Seletivo (el IS no existe en 2026).
func anchorPayload(doc entity.FiscalDocument) entity.FiscalDocument {
	return yearPayload(doc, decimal.Zero)
}

// yearPayload arma el documento de un año. Con phase == 0 se quita el grupo IS;
// con phase > 0 todo ítem lleva grupo IS (se crea con los códigos del ítem si no
// venía) y el impostoInformado queda pre-escalado: base IS × phase-in del año.
// Nunca modifica doc.
func yearPayload(doc entity.FiscalDocument, phase decimal.Decimal) entity.FiscalDocument {
	out := doc.Clone()
	out.UF = strings.ToUpper(strings.TrimSpace(out.UF))
	if out.Version == "" {
		out.Version = rtc.DefaultVersion
	}
	for i := range out.Items {
		it := &out.Items[i]
		it.Number = i + 1
		it.NCM = rtc.NormalizeNCM(it.NCM)

		if !phase.IsPositive() {
			it.Selective = nil
			continue
		}
		if it.Selective == nil {
			it.Selective = &entity.SelectiveTax{CST: it.CST, CClassTrib: it.CClassTrib}
		}
		base := doc.Items[i].SelectiveBase()
		it.Selective.BaseCalculo = base
		it.Selective.InformedTax = base.Mul(phase)
		if it.Selective.Unit == "" {
			it.Selective.Unit = it.Unit
		}
		if it.Selective.Quantity.IsZero() {
			it.Selective.Quantity = it.Quantity
		}
	}
	return out
}
