// Package pdf genera el informe en PDF de la proyección tributaria 2026-2033.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + método + fuente │ Nota / UF / Municipio    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Año | Fase | IBS | CBS | IS | Legado | Total       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  LEGADO: Año | ICMS | ICMS-ST | ST impl. | ISS | IPI | PIS…  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ÍTEMS 2033: NCM | Descripción | Base | IBS+CBS | IS         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: conciliación vTotTrib + leyenda                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/simulador-rtc/internal/application/projection"
	"github.com/jhoicas/simulador-rtc/internal/domain/entity"
)

// Verificar en tiempo de compilación que MarotoReportGenerator implementa el puerto.
var _ projection.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorLight   = &props.Color{Red: 230, Green: 236, Blue: 242}
)

var methodLabels = map[string]string{
	entity.MethodInstant:  "Instantânea (1 consulta + fatores de transição)",
	entity.MethodOfficial: "Calculadora RTC (1 consulta oficial por ano)",
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa projection.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateProjectionPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateProjectionPDF(
	report *entity.ProjectionReport,
	input *entity.CalculationInput,
) ([]byte, error) {
	if report == nil || input == nil {
		return nil, fmt.Errorf("pdf: reporte o entrada nulos")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Projeção da carga tributária 2026-2033", true).
		WithAuthor("simulador-rtc", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report, input))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	// Resumen por año
	m.AddRows(sectionTitle("RESUMO POR ANO"))
	m.AddRows(summaryHeaderRow())
	m.AddRows(summaryRows(report)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tributos legados
	m.AddRows(sectionTitle("TRIBUTOS DO REGIME ATUAL (PONDERADOS)"))
	m.AddRows(legacyHeaderRow())
	m.AddRows(legacyRows(report)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Ítems en el año de alícuota plena
	if last, ok := report.Year(2033); ok && len(last.Items) > 0 {
		m.AddRows(sectionTitle("ITENS EM 2033 (ALÍQUOTA CHEIA)"))
		m.AddRows(itemHeaderRow())
		m.AddRows(itemRows(last.Items)...)
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRows(report)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + método (izq) y datos de la nota (der).
func headerRow(report *entity.ProjectionReport, input *entity.CalculationInput) core.Row {
	doc := input.Document
	return row.New(20).Add(
		col.New(7).Add(
			text.New("PROJEÇÃO DA CARGA TRIBUTÁRIA 2026-2033", props.Text{
				Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1,
			}),
			text.New("Método: "+nonEmpty(methodLabels[report.Method], report.Method), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
			text.New("Fonte da calculadora: "+nonEmpty(report.Source, "—"), props.Text{
				Size: 8, Top: 14, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("LC 214/2025", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Nota: "+nonEmpty(doc.ID, "—"), props.Text{
				Size: 8, Align: align.Right, Top: 7,
			}),
			text.New(fmt.Sprintf("UF: %s   |   Município: %d", strings.ToUpper(doc.UF), doc.Municipality), props.Text{
				Size: 8, Align: align.Right, Top: 12, Color: colorGray,
			}),
		),
	)
}

func sectionTitle(label string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
	))
}

func headerCell(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 7, Align: a, Top: 1.5, Left: 1, Right: 1,
	}))
}

func cell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{
		Size: 7, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}

func summaryHeaderRow() core.Row {
	return row.New(6).Add(
		headerCell("Ano", 1, align.Center),
		headerCell("Fase", 3, align.Left),
		headerCell("IBS", 1, align.Right),
		headerCell("CBS", 2, align.Right),
		headerCell("IS", 1, align.Right),
		headerCell("Legado", 2, align.Right),
		headerCell("Total", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorLight})
}

func summaryRows(report *entity.ProjectionReport) []core.Row {
	rows := make([]core.Row, 0, len(report.Years))
	for i := range report.Years {
		y := &report.Years[i]
		rows = append(rows, row.New(5).Add(
			cell(fmt.Sprintf("%d", y.Year), 1, align.Center),
			cell(y.Phase+" ("+y.Source+")", 3, align.Left),
			cell(formatMoney(y.Lines.Amount(entity.TaxIBS)), 1, align.Right),
			cell(formatMoney(y.Lines.Amount(entity.TaxCBS)), 2, align.Right),
			cell(formatMoney(y.SelectiveTotal), 1, align.Right),
			cell(formatMoney(y.LegacyTotal), 2, align.Right),
			cell(formatMoney(y.Total()), 2, align.Right),
		))
	}
	return rows
}

var legacyColumns = []struct {
	name  string
	label string
}{
	{entity.TaxICMS, "ICMS"},
	{entity.TaxICMSST, "ICMS-ST"},
	{entity.TaxImplicit, "ST impl."},
	{entity.TaxISS, "ISS"},
	{entity.TaxIPI, "IPI"},
	{entity.TaxPIS, "PIS"},
	{entity.TaxCOFINS, "COFINS"},
}

func legacyHeaderRow() core.Row {
	cols := []core.Col{headerCell("Ano", 1, align.Center)}
	for _, c := range legacyColumns {
		cols = append(cols, headerCell(c.label, legacyWidth(c.name), align.Right))
	}
	return row.New(6).Add(cols...).WithStyle(&props.Cell{BackgroundColor: colorLight})
}

func legacyRows(report *entity.ProjectionReport) []core.Row {
	rows := make([]core.Row, 0, len(report.Years))
	for i := range report.Years {
		y := &report.Years[i]
		cols := []core.Col{cell(fmt.Sprintf("%d", y.Year), 1, align.Center)}
		for _, c := range legacyColumns {
			cols = append(cols, cell(formatMoney(y.Lines.Amount(c.name)), legacyWidth(c.name), align.Right))
		}
		rows = append(rows, row.New(5).Add(cols...))
	}
	return rows
}

// legacyWidth reparte 11 columnas de la grilla entre 7 tributos.
func legacyWidth(name string) int {
	switch name {
	case entity.TaxICMS, entity.TaxICMSST, entity.TaxImplicit, entity.TaxCOFINS:
		return 2
	}
	return 1
}

func itemHeaderRow() core.Row {
	return row.New(6).Add(
		headerCell("NCM", 2, align.Left),
		headerCell("Descrição", 4, align.Left),
		headerCell("Base", 2, align.Right),
		headerCell("IBS+CBS", 2, align.Right),
		headerCell("IS", 2, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorLight})
}

func itemRows(items []entity.ItemTaxResult) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		desc := nonEmpty(it.Description, fmt.Sprintf("Item %d", it.Number))
		if it.Selective != nil {
			desc += " [IS: " + it.Selective.Description + "]"
		}
		rows = append(rows, row.New(5).Add(
			cell(it.NCM, 2, align.Left),
			cell(desc, 4, align.Left),
			cell(formatMoney(it.BaseCalculo), 2, align.Right),
			cell(formatMoney(it.CBS.Add(it.IBS)), 2, align.Right),
			cell(formatMoney(it.IS), 2, align.Right),
		))
	}
	return rows
}

// footerRows: estado de la conciliación con vTotTrib + leyenda.
func footerRows(report *entity.ProjectionReport) []core.Row {
	note := "Carga declarada (vTotTrib) menor ou igual aos tributos destacados: sem ajuste."
	if len(report.Years) > 0 && report.Years[0].Reconciliation.Applied {
		note = "Diferença entre vTotTrib e tributos destacados atribuída a ST implícito: " +
			formatMoney(report.Years[0].Reconciliation.Residual) + "."
	}
	return []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New(note, props.Text{Size: 7, Color: colorGray, Top: 1}),
		)),
		row.New(8).Add(col.New(12).Add(
			text.New(
				"Simulação baseada na LC 214/2025. Valores de anos marcados como \"simulado\" são "+
					"extrapolados a partir da consulta de 2026; não substituem a apuração oficial.",
				props.Text{Size: 6.5, Color: colorGray, Top: 2},
			),
		)),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney formato brasileño con 2 decimales.
// Ej: 1234567.891 → "R$ 1.234.567,89"
func formatMoney(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	sign := ""
	if d.Round(2).IsNegative() {
		sign = "-"
	}
	return sign + "R$ " + string(buf) + "," + frac
}
