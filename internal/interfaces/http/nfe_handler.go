package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/simulador-rtc/internal/application/dto"
	"github.com/jhoicas/simulador-rtc/internal/domain/entity"
)

// NFeParser convierte el XML de una NF-e en la entrada de la simulación.
type NFeParser interface {
	ParseBytes(data []byte) (*entity.CalculationInput, error)
}

// NFeHandler importa notas fiscales electrónicas.
type NFeHandler struct {
	parser NFeParser
}

// NewNFeHandler construye el handler.
func NewNFeHandler(parser NFeParser) *NFeHandler {
	return &NFeHandler{parser: parser}
}

// Import godoc
// @Summary      Importar NF-e
// @Description  Lee el XML de una NF-e 4.0 (con o sin nfeProc, UTF-8 o ISO-8859-1) y devuelve
//               el body listo para /api/calcular.
// @Tags         nfe
// @Accept       xml
// @Produce      json
// @Param        body  body      string  true  "XML de la NF-e"
// @Success      200   {object}  dto.CalculationRequest
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/nfe/importar [post]
func (h *NFeHandler) Import(c *fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 {
		return invalidBody(c)
	}
	in, err := h.parser.ParseBytes(body)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.FromInput(in))
}
