package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"

	"github.com/jhoicas/simulador-rtc/internal/application/dto"
	"github.com/jhoicas/simulador-rtc/internal/domain/entity"
	"github.com/jhoicas/simulador-rtc/internal/infrastructure/nfe"
)

// loadInput lee el archivo: XML de NF-e por extensión o por contenido; si no, JSON.
func loadInput(path string) (*entity.CalculationInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", path, err)
	}
	trimmed := bytes.TrimSpace(data)
	if strings.EqualFold(filepath.Ext(path), ".xml") || bytes.HasPrefix(trimmed, []byte("<")) {
		return nfe.NewParser().ParseBytes(data)
	}
	var req dto.CalculationRequest
	if err := json.Unmarshal(trimmed, &req); err != nil {
		return nil, fmt.Errorf("JSON inválido en %s: %w", path, err)
	}
	return req.ToInput(), nil
}

// printReport tabla año a año, montos a 2 decimales.
func printReport(w io.Writer, report *entity.ProjectionReport) error {
	fmt.Fprintf(w, "Método: %s   Fuente: %s\n\n", report.Method, report.Source)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Ano\tIBS\tCBS\tIS\tLegado\tTotal\tOrigem\t")
	for i := range report.Years {
		y := &report.Years[i]
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			y.Year,
			y.Lines.Amount(entity.TaxIBS).StringFixed(2),
			y.Lines.Amount(entity.TaxCBS).StringFixed(2),
			y.SelectiveTotal.StringFixed(2),
			y.LegacyTotal.StringFixed(2),
			y.Total().StringFixed(2),
			y.Source,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(report.Years) > 0 {
		if r := report.Years[0].Reconciliation; r.Applied {
			fmt.Fprintf(w, "\nST implícito (vTotTrib − tributos destacados): %s\n", r.Residual.StringFixed(2))
		}
	}
	return nil
}
