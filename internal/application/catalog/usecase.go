// Package catalog expone los catálogos abiertos de la Calculadora RTC:
// situaciones tributarias (CST) de IBS/CBS y clasificaciones (cClassTrib) por CST.
package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/simulador-rtc/internal/domain"
)

// CatalogGateway consulta los datos abiertos de la calculadora. Devuelve el JSON tal cual.
type CatalogGateway interface {
	TaxSituations(ctx context.Context, date time.Time) ([]byte, error)
	TaxClassifications(ctx context.Context, cstID int, date time.Time) ([]byte, error)
}

const dateLayout = "2006-01-02"

// brt fecha "de hoy" según Brasília (UTC-3).
var brt = time.FixedZone("BRT", -3*60*60)

// UseCase resuelve la fecha de vigencia y delega en el gateway.
type UseCase struct {
	gateway CatalogGateway
	now     func() time.Time
}

// NewUseCase construye el caso de uso con el reloj del sistema.
func NewUseCase(gateway CatalogGateway) *UseCase {
	return &UseCase{gateway: gateway, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// Situations lista los CST vigentes en date (YYYY-MM-DD); vacío = hoy en UTC-3.
func (uc *UseCase) Situations(ctx context.Context, date string) ([]byte, error) {
	d, err := uc.resolveDate(date)
	if err != nil {
		return nil, err
	}
	data, err := uc.gateway.TaxSituations(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("catálogo: situaciones tributarias: %w", err)
	}
	return data, nil
}

// Classifications lista los cClassTrib del CST vigentes en date.
func (uc *UseCase) Classifications(ctx context.Context, cstID int, date string) ([]byte, error) {
	if cstID < 0 || cstID > 999 {
		return nil, fmt.Errorf("%w: cst_id fuera de rango: %d", domain.ErrInvalidInput, cstID)
	}
	d, err := uc.resolveDate(date)
	if err != nil {
		return nil, err
	}
	data, err := uc.gateway.TaxClassifications(ctx, cstID, d)
	if err != nil {
		return nil, fmt.Errorf("catálogo: clasificaciones CST %03d: %w", cstID, err)
	}
	return data, nil
}

func (uc *UseCase) resolveDate(date string) (time.Time, error) {
	if date == "" {
		n := uc.now().In(brt)
		return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, brt), nil
	}
	d, err := time.ParseInLocation(dateLayout, date, brt)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: fecha %q debe tener formato YYYY-MM-DD", domain.ErrInvalidInput, date)
	}
	return d, nil
}
