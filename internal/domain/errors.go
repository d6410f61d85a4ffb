package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput           = errors.New("entrada inválida")
	ErrInvalidYear            = errors.New("año fuera del período de transición 2026-2033")
	ErrRateServiceUnavailable = errors.New("calculadora RTC no disponible")
	ErrUnsupportedMethod      = errors.New("método de proyección desconocido")
	ErrInvalidFiscalDocument  = errors.New("documento fiscal inválido")
)
