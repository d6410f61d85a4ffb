package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/simulador-rtc/internal/application/dto"
	"github.com/jhoicas/simulador-rtc/internal/domain/entity"
	rtcval "github.com/jhoicas/simulador-rtc/internal/domain/rtc"
)

// ProjectionService operaciones de proyección que consume el handler.
type ProjectionService interface {
	ComputeInstant(ctx context.Context, in *entity.CalculationInput) (*entity.ProjectionReport, error)
	ComputeOfficial(ctx context.Context, in *entity.CalculationInput) (*entity.ProjectionReport, error)
	ExportPDF(ctx context.Context, in *entity.CalculationInput, method string) ([]byte, string, error)
}

// ProjectionHandler maneja los endpoints de simulación 2026-2033.
type ProjectionHandler struct {
	svc ProjectionService
	now func() time.Time
}

// NewProjectionHandler construye el handler.
func NewProjectionHandler(svc ProjectionService) *ProjectionHandler {
	return &ProjectionHandler{svc: svc, now: time.Now}
}

// Calculate godoc
// @Summary      Proyección instantánea 2026-2033
// @Description  Consulta la Calculadora RTC una sola vez (2026) y extrapola los años
//               siguientes con los factores de transición de la LC 214/2025.
// @Tags         projecao
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CalculationRequest  true  "Nota fiscal + tributos actuales + vTotTrib"
// @Success      200   {object}  dto.ProjectionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/calcular [post]
func (h *ProjectionHandler) Calculate(c *fiber.Ctx) error {
	return h.project(c, h.svc.ComputeInstant)
}

// CalculateOfficial godoc
// @Summary      Proyección oficial 2026-2033
// @Description  Consulta la Calculadora RTC una vez por año (8 consultas en paralelo).
//               Si cualquier año falla, la respuesta es 503 sin resultados parciales.
// @Tags         projecao
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CalculationRequest  true  "Nota fiscal + tributos actuales + vTotTrib"
// @Success      200   {object}  dto.ProjectionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/calcular-rtc [post]
func (h *ProjectionHandler) CalculateOfficial(c *fiber.Ctx) error {
	return h.project(c, h.svc.ComputeOfficial)
}

// ExportPDF godoc
// @Summary      Exportar la proyección en PDF
// @Tags         projecao
// @Accept       json
// @Produce      application/pdf
// @Param        metodo  query     string                  false  "instantanea (default) | rtc"
// @Param        body    body      dto.CalculationRequest  true   "Nota fiscal + tributos actuales + vTotTrib"
// @Success      200     {file}    binary
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      503     {object}  dto.ErrorResponse
// @Failure      500     {object}  dto.ErrorResponse
// @Router       /api/projecao/pdf [post]
func (h *ProjectionHandler) ExportPDF(c *fiber.Ctx) error {
	in, err := parseInput(c)
	if err != nil {
		return err
	}
	if in == nil {
		return nil // respuesta de error ya escrita
	}
	method := c.Query("metodo", entity.MethodInstant)
	data, filename, err := h.svc.ExportPDF(c.UserContext(), in, method)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

func (h *ProjectionHandler) project(
	c *fiber.Ctx,
	compute func(context.Context, *entity.CalculationInput) (*entity.ProjectionReport, error),
) error {
	in, err := parseInput(c)
	if err != nil {
		return err
	}
	if in == nil {
		return nil
	}
	report, err := compute(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewProjectionResponse(report, uuid.NewString(), h.now()))
}

// parseInput decodifica y valida el body. Si devuelve (nil, nil) la respuesta
// de error ya fue escrita.
func parseInput(c *fiber.Ctx) (*entity.CalculationInput, error) {
	var req dto.CalculationRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, invalidBody(c)
	}
	in := req.ToInput()
	if err := rtcval.ValidateCalculationInput(in); err != nil {
		return nil, writeError(c, err)
	}
	return in, nil
}
