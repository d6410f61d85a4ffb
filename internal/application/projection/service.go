// Package projection contiene los casos de uso de proyección de la carga tributaria
// 2026-2033: la estrategia instantánea (una consulta + extrapolación) y la oficial
// (una consulta por año en paralelo), más la exportación a PDF.
package projection

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/simulador-rtc/internal/domain"
	"github.com/jhoicas/simulador-rtc/internal/domain/entity"
)

// Service fachada que expone ambas estrategias al caller (HTTP, CLI).
type Service struct {
	instant  *TransitionProjector
	official *YearOrchestrator
	pdf      ReportPDFGenerator
	log      zerolog.Logger
}

// NewService construye el servicio. pdf puede ser nil si no se exporta a PDF.
func NewService(gateway RateGateway, pdf ReportPDFGenerator, log zerolog.Logger) *Service {
	return &Service{
		instant:  NewTransitionProjector(gateway),
		official: NewYearOrchestrator(gateway),
		pdf:      pdf,
		log:      log,
	}
}

// ComputeInstant proyección con una consulta ancla (2026) y extrapolación.
func (s *Service) ComputeInstant(ctx context.Context, in *entity.CalculationInput) (*entity.ProjectionReport, error) {
	return s.run(ctx, entity.MethodInstant, in, s.instant.Project)
}

// ComputeOfficial proyección con una consulta oficial por año.
func (s *Service) ComputeOfficial(ctx context.Context, in *entity.CalculationInput) (*entity.ProjectionReport, error) {
	return s.run(ctx, entity.MethodOfficial, in, s.official.Project)
}

// Compute despacha según el método ("instantanea" | "rtc").
func (s *Service) Compute(ctx context.Context, method string, in *entity.CalculationInput) (*entity.ProjectionReport, error) {
	switch method {
	case entity.MethodInstant, "":
		return s.ComputeInstant(ctx, in)
	case entity.MethodOfficial:
		return s.ComputeOfficial(ctx, in)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedMethod, method)
	}
}

// ExportPDF calcula la proyección con el método indicado y la renderiza en PDF.
// Retorna los bytes y un nombre de archivo sugerido.
func (s *Service) ExportPDF(ctx context.Context, in *entity.CalculationInput, method string) ([]byte, string, error) {
	if s.pdf == nil {
		return nil, "", fmt.Errorf("pdf: generador no configurado")
	}
	report, err := s.Compute(ctx, method, in)
	if err != nil {
		return nil, "", err
	}
	data, err := s.pdf.GenerateProjectionPDF(report, in)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar: %w", err)
	}
	return data, fmt.Sprintf("projecao-rtc-%s.pdf", report.Method), nil
}

func (s *Service) run(
	ctx context.Context,
	method string,
	in *entity.CalculationInput,
	project func(context.Context, *entity.CalculationInput) (*entity.ProjectionReport, error),
) (*entity.ProjectionReport, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: entrada nula", domain.ErrInvalidInput)
	}
	start := time.Now()
	s.log.Info().
		Str("metodo", method).
		Int("itens", len(in.Document.Items)).
		Msg("proyección iniciada")

	report, err := project(ctx, in)
	if err != nil {
		s.log.Error().Err(err).
			Str("metodo", method).
			Dur("duracion", time.Since(start)).
			Msg("proyección fallida")
		return nil, err
	}

	if first := report.Years[0]; !first.Reconciliation.Applied {
		s.log.Debug().
			Str("metodo", method).
			Str("residuo", first.Reconciliation.Residual.String()).
			Msg("conciliación con vTotTrib omitida: residuo <= 0")
	}
	s.log.Info().
		Str("metodo", method).
		Int("anos", len(report.Years)).
		Str("fuente", report.Source).
		Dur("duracion", time.Since(start)).
		Msg("proyección completada")
	return report, nil
}
