package entity

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/simulador-rtc/pkg/rtc"
)

// Métodos de proyección expuestos al caller.
const (
	MethodInstant  = "instantanea" // una llamada (2026) + extrapolación por factores
	MethodOfficial = "rtc"         // una llamada oficial por año, en paralelo
)

// Origen de las cifras de un año.
const (
	YearSourceAPI       = "api"      // respuesta oficial 2026 usada tal cual
	YearSourceSimulated = "simulado" // extrapolado con los factores de transición
	YearSourceAPIRTC    = "api-rtc"  // respuesta oficial del año consultado
)

// ItemTaxResult tributos del régimen nuevo para un ítem en un año.
type ItemTaxResult struct {
	Number      int
	NCM         string
	Description string
	BaseCalculo decimal.Decimal // valor del producto + IS
	CBS         decimal.Decimal
	IBS         decimal.Decimal
	IS          decimal.Decimal
	CBSRate     decimal.Decimal // % informado por la API o tasa estatutaria del año
	IBSRate     decimal.Decimal
	Selective   *rtc.SelectiveCategory // categoría IS detectada por NCM (solo si IS > 0)
}

// Total IBS + CBS + IS del ítem.
func (i ItemTaxResult) Total() decimal.Decimal {
	return i.CBS.Add(i.IBS).Add(i.IS)
}

// YearlyTaxResult composición tributaria de un año de la transición.
//
// NewRegimeTotal, SelectiveTotal y LegacyTotal son los agregados calculados antes
// de repartir en líneas; la suma de Lines siempre coincide con Aggregate().
type YearlyTaxResult struct {
	Year             int
	Phase            string
	Description      string
	Source           string
	SelectiveApplies bool

	Lines       TaxLines
	BaseCalculo decimal.Decimal // valor del producto + IS aplicable
	Items       []ItemTaxResult

	NewRegimeTotal decimal.Decimal // IBS + CBS
	SelectiveTotal decimal.Decimal // IS
	LegacyTotal    decimal.Decimal // tributos del régimen actual tras conciliación y ponderación

	CBSRate decimal.Decimal // alícuota efectiva en % sobre BaseCalculo
	IBSRate decimal.Decimal

	Reconciliation ReconcileOutcome

	ClassificationCodes []string // cClassTrib aplicables devueltos por la calculadora (ordenados, sin repetir)
}

// Aggregate suma de los agregados del año.
func (y *YearlyTaxResult) Aggregate() decimal.Decimal {
	return y.NewRegimeTotal.Add(y.SelectiveTotal).Add(y.LegacyTotal)
}

// Total suma de todas las líneas del año.
func (y *YearlyTaxResult) Total() decimal.Decimal {
	return y.Lines.Sum()
}

// ProjectionReport los 8 años 2026-2033 ordenados por año.
// Es determinista: misma entrada y mismas respuestas de la API producen el mismo reporte.
type ProjectionReport struct {
	Method string
	Source string // fuente de la calculadora en la llamada ancla (online/local)
	Years  []YearlyTaxResult
}

// Year devuelve el resultado del año indicado.
func (r *ProjectionReport) Year(year int) (*YearlyTaxResult, bool) {
	for i := range r.Years {
		if r.Years[i].Year == year {
			return &r.Years[i], true
		}
	}
	return nil, false
}
