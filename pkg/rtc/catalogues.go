// Package rtc contiene catálogos y reglas de formato de la Reforma Tributaria
// del Consumo (LC 214/2025) usados por la Calculadora RTC.
package rtc

import "github.com/shopspring/decimal"

// =============================================================================
// Unidades Federativas (código de UF aceptado por la calculadora).
// =============================================================================

// ValidUFs siglas de UF válidas.
var ValidUFs = map[string]bool{
	"AC": true, "AL": true, "AP": true, "AM": true, "BA": true, "CE": true,
	"DF": true, "ES": true, "GO": true, "MA": true, "MT": true, "MS": true,
	"MG": true, "PA": true, "PB": true, "PR": true, "PE": true, "PI": true,
	"RJ": true, "RN": true, "RS": true, "RO": true, "RR": true, "SC": true,
	"SP": true, "SE": true, "TO": true,
}

// =============================================================================
// Clasificación por defecto para ítems sin grupo IBSCBS (NF-e 4.0 previa a la reforma).
// CST 000 = tributación integral; cClassTrib 000001 = situaciones tributadas integralmente.
// =============================================================================

const (
	DefaultCST        = "000"
	DefaultCClassTrib = "000001"
	DefaultVersion    = "1.0.0"
)

// =============================================================================
// Imposto Seletivo (IS) - categorías por prefijo NCM (4 dígitos).
// La tasa es la referencia por categoría; el phase-in anual lo aplica la tabla de transición.
// =============================================================================

// SelectiveCategory categoría de bienes sujetos al IS.
type SelectiveCategory struct {
	Prefixes    []string
	Rate        decimal.Decimal
	Description string
}

// SelectiveCategories catálogo de categorías IS.
var SelectiveCategories = []SelectiveCategory{
	{Prefixes: []string{"2401", "2402", "2403"}, Rate: decimal.RequireFromString("1.00"), Description: "Produtos fumígenos (tabaco/cigarro)"},
	{Prefixes: []string{"2203", "2204", "2205", "2206", "2207", "2208"}, Rate: decimal.RequireFromString("0.20"), Description: "Bebidas alcoólicas"},
	{Prefixes: []string{"2202"}, Rate: decimal.RequireFromString("0.20"), Description: "Bebidas açucaradas / energéticas"},
	{Prefixes: []string{"8701", "8702", "8703", "8704", "8705", "8706", "8707", "8708", "8711"}, Rate: decimal.RequireFromString("0.07"), Description: "Veículos automotores"},
	{Prefixes: []string{"8901", "8902", "8903", "8904", "8905", "8906", "8907", "8908"}, Rate: decimal.RequireFromString("0.03"), Description: "Embarcações"},
	{Prefixes: []string{"8801", "8802", "8803", "8804", "8805"}, Rate: decimal.RequireFromString("0.03"), Description: "Aeronaves"},
	{Prefixes: []string{"9301", "9302", "9303", "9304", "9305", "9306"}, Rate: decimal.RequireFromString("0.25"), Description: "Armas e munições"},
	{Prefixes: []string{"2709", "2710", "2711"}, Rate: decimal.RequireFromString("0.01"), Description: "Minerais / combustíveis fósseis"},
}

// DetectSelective devuelve la categoría IS del NCM, o nil si el bien no está sujeto al IS.
func DetectSelective(ncm string) *SelectiveCategory {
	prefix := NCMPrefix(ncm)
	if prefix == "" {
		return nil
	}
	for i := range SelectiveCategories {
		for _, p := range SelectiveCategories[i].Prefixes {
			if p == prefix {
				cat := SelectiveCategories[i]
				return &cat
			}
		}
	}
	return nil
}
