// Package transition contiene las tablas de la transición IBS/CBS 2026-2033
// (LC 214/2025). Es la única fuente de verdad de los números estatutarios:
// cualquier cálculo dependiente del año pasa por aquí.
//
// Alícuotas del régimen nuevo:
//
//	2026       : CBS 0,9% + IBS 0,1% (piloto)
//	2027-2028  : CBS 8,8% + IBS 0,1/0,2%; IS vigente
//	2029-2032  : CBS 8,8% + IBS 10/20/30/40% de la alícuota plena (17,7%)
//	2033       : CBS 8,8% + IBS 17,7%
//
// Los tributos actuales (ICMS, ICMS-ST, ISS, IPI, PIS/COFINS) no tienen calendario
// propio por tributo: todas sus líneas se ponderan con el mismo factor complementario
// LegacyScale = (1 - tf(año)) / (1 - tf(2026)), que vale 1 en 2026 y 0 en 2033.
// Las descripciones del cronograma muestran ese factor en %.
package transition

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/simulador-rtc/internal/domain"
)

const (
	FirstYear  = 2026
	LastYear   = 2033
	AnchorYear = 2026 // año de referencia de la estrategia de una llamada
	YearCount  = LastYear - FirstYear + 1
)

var (
	decimalOne = decimal.NewFromInt(1)

	// Alícuotas de referencia plenas (2033).
	FullCBSRate = decimal.RequireFromString("0.088")
	FullIBSRate = decimal.RequireFromString("0.177")
)

// Schedule fila del cronograma de un año.
type Schedule struct {
	Year             int
	Phase            string
	Description      string
	CBSRate          decimal.Decimal // fracción
	IBSRate          decimal.Decimal // fracción (UF + municipio)
	SelectivePhaseIn decimal.Decimal // fracción del IS aplicable
}

// SelectiveApplies el IS no existe antes de 2027.
func (s Schedule) SelectiveApplies() bool {
	return s.SelectivePhaseIn.IsPositive()
}

var schedules = [YearCount]Schedule{
	{Year: 2026, Phase: "Fase Piloto", Description: "IVA piloto (CBS 0,9% + IBS 0,1%); tributos atuais a 100,0%",
		CBSRate: decimal.RequireFromString("0.009"), IBSRate: decimal.RequireFromString("0.001"), SelectivePhaseIn: decimal.Zero},
	{Year: 2027, Phase: "Transição Inicial", Description: "CBS cheia + IBS 0,1%; tributos atuais ponderados a 69,0% de 2026",
		CBSRate: decimal.RequireFromString("0.088"), IBSRate: decimal.RequireFromString("0.001"), SelectivePhaseIn: decimal.RequireFromString("0.03")},
	{Year: 2028, Phase: "Transição Inicial", Description: "CBS cheia + IBS 0,2%; tributos atuais ponderados a 68,6% de 2026",
		CBSRate: decimal.RequireFromString("0.088"), IBSRate: decimal.RequireFromString("0.002"), SelectivePhaseIn: decimal.RequireFromString("0.03")},
	{Year: 2029, Phase: "Substituição Gradual (10%)", Description: "IBS a 10% da alíquota cheia; tributos atuais ponderados a 62,5% de 2026",
		CBSRate: decimal.RequireFromString("0.088"), IBSRate: decimal.RequireFromString("0.0177"), SelectivePhaseIn: decimal.RequireFromString("0.05")},
	{Year: 2030, Phase: "Substituição Gradual (20%)", Description: "IBS a 20% da alíquota cheia; tributos atuais ponderados a 55,5% de 2026",
		CBSRate: decimal.RequireFromString("0.088"), IBSRate: decimal.RequireFromString("0.0354"), SelectivePhaseIn: decimal.RequireFromString("0.07")},
	{Year: 2031, Phase: "Substituição Gradual (30%)", Description: "IBS a 30% da alíquota cheia; tributos atuais ponderados a 48,6% de 2026",
		CBSRate: decimal.RequireFromString("0.088"), IBSRate: decimal.RequireFromString("0.0531"), SelectivePhaseIn: decimal.RequireFromString("0.09")},
	{Year: 2032, Phase: "Substituição Gradual (40%)", Description: "IBS a 40% da alíquota cheia; tributos atuais ponderados a 41,6% de 2026",
		CBSRate: decimal.RequireFromString("0.088"), IBSRate: decimal.RequireFromString("0.0708"), SelectivePhaseIn: decimal.RequireFromString("0.11")},
	{Year: 2033, Phase: "Alíquota Cheia", Description: "IVA Dual pleno (CBS 8,8% + IBS 17,7%); tributos atuais a 0,0%",
		CBSRate: decimal.RequireFromString("0.088"), IBSRate: decimal.RequireFromString("0.177"), SelectivePhaseIn: decimal.RequireFromString("0.20")},
}

// brt zona de Brasília (UTC-3, sin horario de verano desde 2019).
var brt = time.FixedZone("BRT", -3*60*60)

// Years devuelve los años de la transición en orden.
func Years() []int {
	years := make([]int, 0, YearCount)
	for y := FirstYear; y <= LastYear; y++ {
		years = append(years, y)
	}
	return years
}

// ValidYear indica si year está en [2026, 2033].
func ValidYear(year int) bool {
	return year >= FirstYear && year <= LastYear
}

// ScheduleFor devuelve la fila del cronograma del año.
func ScheduleFor(year int) (Schedule, error) {
	if !ValidYear(year) {
		return Schedule{}, fmt.Errorf("%w: %d", domain.ErrInvalidYear, year)
	}
	return schedules[year-FirstYear], nil
}

// TransitionFactor fracción de la alícuota plena IBS+CBS vigente en el año:
// (CBS + IBS) / (CBS pleno + IBS pleno). Vale 1 en 2033.
func TransitionFactor(year int) (decimal.Decimal, error) {
	s, err := ScheduleFor(year)
	if err != nil {
		return decimal.Zero, err
	}
	return s.CBSRate.Add(s.IBSRate).Div(FullCBSRate.Add(FullIBSRate)), nil
}

// ISPhaseInFactor fracción del Imposto Seletivo aplicable en el año (0 en 2026).
func ISPhaseInFactor(year int) (decimal.Decimal, error) {
	s, err := ScheduleFor(year)
	if err != nil {
		return decimal.Zero, err
	}
	return s.SelectivePhaseIn, nil
}

// NewRegimeScale factor que lleva los montos IBS/CBS del año ancla al año dado:
// transitionFactor(year) / transitionFactor(2026).
func NewRegimeScale(year int) (decimal.Decimal, error) {
	tf, err := TransitionFactor(year)
	if err != nil {
		return decimal.Zero, err
	}
	anchor, _ := TransitionFactor(AnchorYear)
	if year == AnchorYear {
		return decimalOne, nil
	}
	return tf.Div(anchor), nil
}

// LegacyScale proporción complementaria para los tributos legados:
// (1 - transitionFactor(year)) / (1 - transitionFactor(2026)). Vale 1 en 2026 y 0 en 2033.
func LegacyScale(year int) (decimal.Decimal, error) {
	tf, err := TransitionFactor(year)
	if err != nil {
		return decimal.Zero, err
	}
	if year == AnchorYear {
		return decimalOne, nil
	}
	anchor, _ := TransitionFactor(AnchorYear)
	return decimalOne.Sub(tf).Div(decimalOne.Sub(anchor)), nil
}

// CBSShare fracción de la CBS dentro de IBS+CBS en el año; reparte el agregado del régimen nuevo.
func CBSShare(year int) (decimal.Decimal, error) {
	s, err := ScheduleFor(year)
	if err != nil {
		return decimal.Zero, err
	}
	return s.CBSRate.Div(s.CBSRate.Add(s.IBSRate)), nil
}

// ReferenceDate fecha de referencia para consultar la calculadora: 1 de enero del año, 12:00 BRT.
func ReferenceDate(year int) time.Time {
	return time.Date(year, time.January, 1, 12, 0, 0, 0, brt)
}
