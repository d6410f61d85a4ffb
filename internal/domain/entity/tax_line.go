package entity

import "github.com/shopspring/decimal"

// Nombres de las líneas de tributo de un año proyectado.
const (
	TaxIBS      = "IBS"
	TaxCBS      = "CBS"
	TaxIS       = "IS"
	TaxICMS     = "ICMS"
	TaxICMSST   = "ICMS-ST"
	TaxISS      = "ISS"
	TaxIPI      = "IPI"
	TaxPIS      = "PIS"
	TaxCOFINS   = "COFINS"
	TaxImplicit = "ST-IMPLICITO" // bucket ICMS-ST/implícito: recibe el residuo de la conciliación con vTotTrib
)

// NewRegimeTaxOrder orden canónico de los tributos del régimen nuevo.
var NewRegimeTaxOrder = []string{TaxIBS, TaxCBS, TaxIS}

// TaxLine monto de un tributo. Se trata como inmutable una vez dentro de un resultado anual.
type TaxLine struct {
	Name   string
	Amount decimal.Decimal
}

// TaxLines lista ordenada de líneas de tributo.
type TaxLines []TaxLine

// IsLegacyTax indica si el tributo pertenece al régimen actual (ICMS, ISS, IPI, PIS/COFINS).
func IsLegacyTax(name string) bool {
	switch name {
	case TaxIBS, TaxCBS, TaxIS:
		return false
	}
	return true
}

// Amount devuelve el monto de la línea name (cero si no existe).
func (l TaxLines) Amount(name string) decimal.Decimal {
	for _, line := range l {
		if line.Name == name {
			return line.Amount
		}
	}
	return decimal.Zero
}

// Has indica si existe una línea con ese nombre.
func (l TaxLines) Has(name string) bool {
	for _, line := range l {
		if line.Name == name {
			return true
		}
	}
	return false
}

// Sum suma todas las líneas.
func (l TaxLines) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, line := range l {
		total = total.Add(line.Amount)
	}
	return total
}

// LegacySum suma solo las líneas del régimen actual.
func (l TaxLines) LegacySum() decimal.Decimal {
	total := decimal.Zero
	for _, line := range l {
		if IsLegacyTax(line.Name) {
			total = total.Add(line.Amount)
		}
	}
	return total
}

// NewRegimeSum suma IBS + CBS (sin IS).
func (l TaxLines) NewRegimeSum() decimal.Decimal {
	return l.Amount(TaxIBS).Add(l.Amount(TaxCBS))
}

// Clone copia la lista (los montos decimal son valores inmutables).
func (l TaxLines) Clone() TaxLines {
	out := make(TaxLines, len(l))
	copy(out, l)
	return out
}

// Scale multiplica cada línea por factor y devuelve una lista nueva.
func (l TaxLines) Scale(factor decimal.Decimal) TaxLines {
	out := make(TaxLines, len(l))
	for i, line := range l {
		out[i] = TaxLine{Name: line.Name, Amount: line.Amount.Mul(factor)}
	}
	return out
}

// ReconcileOutcome resultado de conciliar los tributos legados con vTotTrib.
// Applied == false corresponde a "ReconciliationSkipped": residuo <= 0, líneas sin cambios.
type ReconcileOutcome struct {
	Residual decimal.Decimal
	Applied  bool
}
