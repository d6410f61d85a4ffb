package entity

import "github.com/shopspring/decimal"

// CalculationInput datos de una simulación: documento fiscal, tributos actuales
// informados y la carga tributaria total declarada (vTotTrib).
// No se persiste; vive solo durante una petición.
type CalculationInput struct {
	Document FiscalDocument
	Legacy   LegacyTaxes
	VTotTrib decimal.Decimal // Ley 12.741/2012: carga total aproximada informada en el documento
}

// FiscalDocument nota fiscal en el formato que acepta la Calculadora RTC.
type FiscalDocument struct {
	ID           string
	Version      string
	Municipality int    // código IBGE del municipio
	UF           string // sigla de la UF
	Items        []FiscalItem
}

// FiscalItem ítem de la nota. BaseCalculo es el valor del producto u operación.
type FiscalItem struct {
	Number      int
	NCM         string
	NBS         string
	Quantity    decimal.Decimal
	Unit        string
	CST         string
	CClassTrib  string
	BaseCalculo decimal.Decimal
	Description string

	Regular   *RegularTaxation
	Selective *SelectiveTax
}

// RegularTaxation tributación regular alternativa (grupo gTribRegular).
type RegularTaxation struct {
	CST        string
	CClassTrib string
}

// SelectiveTax grupo del Imposto Seletivo del ítem.
// InformedTax es el valor de IS ya calculado que se envía a la calculadora (impostoInformado).
type SelectiveTax struct {
	CST         string
	CClassTrib  string
	BaseCalculo decimal.Decimal
	Unit        string
	Quantity    decimal.Decimal
	InformedTax decimal.Decimal
}

// SelectiveBase base sobre la que incide el IS: la del grupo seletivo si viene
// informada y positiva; en otro caso el valor del ítem. Un ítem sin grupo
// (p. ej. importado de una NF-e) también tiene base IS.
func (i FiscalItem) SelectiveBase() decimal.Decimal {
	if i.Selective != nil && i.Selective.BaseCalculo.IsPositive() {
		return i.Selective.BaseCalculo
	}
	return i.BaseCalculo
}

// LegacyTaxes tributos del régimen actual destacados en el documento.
type LegacyTaxes struct {
	ICMS   decimal.Decimal
	ST     decimal.Decimal // ICMS sustitución tributaria
	IPI    decimal.Decimal
	PIS    decimal.Decimal
	COFINS decimal.Decimal
	ISS    decimal.Decimal
}

// Clone devuelve una copia profunda del documento (ítems y grupos opcionales)
// para que cada año arme su payload sin compartir punteros.
func (d FiscalDocument) Clone() FiscalDocument {
	out := d
	out.Items = make([]FiscalItem, len(d.Items))
	for i, it := range d.Items {
		if it.Regular != nil {
			r := *it.Regular
			it.Regular = &r
		}
		if it.Selective != nil {
			s := *it.Selective
			it.Selective = &s
		}
		out.Items[i] = it
	}
	return out
}
