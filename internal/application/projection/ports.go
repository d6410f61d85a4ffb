package projection

import (
	"context"
	"time"

	"github.com/jhoicas/simulador-rtc/internal/domain/entity"
)

// RateGateway consulta la Calculadora RTC oficial para una fecha de referencia.
// Debe ser seguro para uso concurrente: el orquestador lo llama desde varias goroutines.
type RateGateway interface {
	FetchOfficialRates(ctx context.Context, referenceDate time.Time, doc *entity.FiscalDocument) (*entity.OfficialRates, error)
}

// ReportPDFGenerator genera la representación en PDF de una proyección.
// La implementación concreta vive en infrastructure/pdf (maroto).
type ReportPDFGenerator interface {
	GenerateProjectionPDF(report *entity.ProjectionReport, input *entity.CalculationInput) ([]byte, error)
}
