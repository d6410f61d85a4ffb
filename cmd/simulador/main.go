// Package main CLI offline del simulador: corre la proyección 2026-2033 sobre un
// archivo JSON (formato de /api/calcular) o el XML de una NF-e.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/simulador-rtc/internal/application/projection"
	"github.com/jhoicas/simulador-rtc/internal/domain/entity"
	rtcval "github.com/jhoicas/simulador-rtc/internal/domain/rtc"
	"github.com/jhoicas/simulador-rtc/internal/infrastructure/calculadora"
	infrapdf "github.com/jhoicas/simulador-rtc/internal/infrastructure/pdf"
	"github.com/jhoicas/simulador-rtc/pkg/config"
	"github.com/jhoicas/simulador-rtc/pkg/logger"
)

// options flags compartidos por los subcomandos.
type options struct {
	file     string
	url      string
	localURL string
	timeout  time.Duration
	pdfOut   string
	verbose  bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "simulador",
		Short: "Simulador de la transición tributaria 2026-2033 (LC 214/2025)",
		Long: `Proyecta IBS, CBS, IS y los tributos actuales (ICMS, ISS, IPI, PIS/COFINS)
de una nota fiscal para cada año de la transición, usando la Calculadora RTC.

La entrada puede ser el JSON de /api/calcular o el XML de una NF-e.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVarP(&opts.file, "arquivo", "a", "", "Archivo de entrada (.json o .xml de NF-e)")
	root.PersistentFlags().StringVar(&opts.url, "url", "", "URL de la calculadora (default: CALCULADORA_URL)")
	root.PersistentFlags().StringVar(&opts.localURL, "local-url", "", "URL de respaldo (default: CALCULADORA_LOCAL_URL)")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 0, "Timeout por consulta (default: CALCULADORA_TIMEOUT_SECONDS)")
	root.PersistentFlags().StringVar(&opts.pdfOut, "pdf", "", "Escribe además el informe en PDF en esta ruta")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Logs de depuración en stderr")
	_ = root.MarkPersistentFlagRequired("arquivo")

	root.AddCommand(
		&cobra.Command{
			Use:   entity.MethodInstant,
			Short: "Una consulta (2026) + extrapolación con factores de transición",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return run(cmd.Context(), opts, entity.MethodInstant, stdout, stderr)
			},
		},
		&cobra.Command{
			Use:   entity.MethodOfficial,
			Short: "Una consulta oficial por año (8 en paralelo)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return run(cmd.Context(), opts, entity.MethodOfficial, stdout, stderr)
			},
		},
	)
	return root
}

func run(ctx context.Context, opts *options, method string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	level := "warn"
	if opts.verbose {
		level = "debug"
	}
	log := logger.New(logger.Config{Env: "development", Level: level, Out: stderr})

	in, err := loadInput(opts.file)
	if err != nil {
		return err
	}
	if err := rtcval.ValidateCalculationInput(in); err != nil {
		return err
	}

	calcCfg := calculadora.Config{
		PrimaryEndpoint:  firstNonEmpty(opts.url, cfg.Calculadora.URL),
		FallbackEndpoint: firstNonEmpty(opts.localURL, cfg.Calculadora.LocalURL),
		Timeout:          cfg.Calculadora.Timeout(),
	}
	if opts.timeout > 0 {
		calcCfg.Timeout = opts.timeout
	}
	gatewayLog := log.Component("calculadora")
	calcCfg.Logger = &gatewayLog

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	svc := projection.NewService(calculadora.NewClient(calcCfg), pdfGenerator, log.Component("projection"))

	report, err := svc.Compute(ctx, method, in)
	if err != nil {
		return err
	}
	if err := printReport(stdout, report); err != nil {
		return err
	}

	if opts.pdfOut != "" {
		data, err := pdfGenerator.GenerateProjectionPDF(report, in)
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.pdfOut, data, 0o644); err != nil {
			return fmt.Errorf("escribir PDF: %w", err)
		}
		fmt.Fprintf(stdout, "\nPDF escrito en %s\n", opts.pdfOut)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
