package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/simulador-rtc/internal/application/dto"
	"github.com/jhoicas/simulador-rtc/internal/domain"
	rtcval "github.com/jhoicas/simulador-rtc/internal/domain/rtc"
)

// writeError traduce errores de dominio a status HTTP + dto.ErrorResponse.
func writeError(c *fiber.Ctx, err error) error {
	var verr *rtcval.ValidationError
	if errors.As(err, &verr) {
		fields := make([]dto.FieldErrorEntry, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			fields = append(fields, dto.FieldErrorEntry{Field: f.Field, Message: f.Message})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION_ERROR", Message: "datos de la nota inválidos", Fields: fields,
		})
	}

	switch {
	case errors.Is(err, domain.ErrInvalidYear):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_YEAR", Message: err.Error()})
	case errors.Is(err, domain.ErrUnsupportedMethod):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_METHOD", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidFiscalDocument):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_NFE", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_REQUEST", Message: err.Error()})
	case errors.Is(err, domain.ErrRateServiceUnavailable):
		// Falla total: no se devuelven resultados parciales.
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Code: "CALCULATOR_UNAVAILABLE", Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code: "INVALID_BODY", Message: "cuerpo de la petición inválido",
	})
}
