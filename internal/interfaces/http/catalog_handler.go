package http

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/simulador-rtc/internal/application/dto"
)

// CatalogService consultas de datos abiertos de la calculadora.
type CatalogService interface {
	Situations(ctx context.Context, date string) ([]byte, error)
	Classifications(ctx context.Context, cstID int, date string) ([]byte, error)
}

// CatalogHandler expone las situaciones tributarias (CST) y las clasificaciones (cClassTrib).
type CatalogHandler struct {
	uc CatalogService
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc CatalogService) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Situations godoc
// @Summary      Situaciones tributarias CBS/IBS
// @Description  Reenvía el catálogo de CST de la Calculadora RTC. Sin ?data= usa la fecha de hoy (UTC−3).
// @Tags         catalogos
// @Produce      json
// @Param        data  query  string  false  "Fecha de referencia YYYY-MM-DD"
// @Success      200   {array}   object
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/situacoes-tributarias [get]
func (h *CatalogHandler) Situations(c *fiber.Ctx) error {
	body, err := h.uc.Situations(c.UserContext(), c.Query("data"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Send(body)
}

// Classifications godoc
// @Summary      Clasificaciones tributarias de un CST
// @Tags         catalogos
// @Produce      json
// @Param        cst_id  path   int     true   "Código CST (ej. 000)"
// @Param        data    query  string  false  "Fecha de referencia YYYY-MM-DD"
// @Success      200     {array}   object
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      503     {object}  dto.ErrorResponse
// @Router       /api/classificacoes-tributarias/{cst_id} [get]
func (h *CatalogHandler) Classifications(c *fiber.Ctx) error {
	cstID, err := strconv.Atoi(c.Params("cst_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "cst_id debe ser numérico",
		})
	}
	body, err := h.uc.Classifications(c.UserContext(), cstID, c.Query("data"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Send(body)
}
