package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/simulador-rtc/internal/application/dto"
)

// SourceReporter informa qué endpoint de la calculadora respondió por última vez.
type SourceReporter interface {
	LastSource() string
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName       string
	CalculatorURL string
	Projection    ProjectionService
	Catalog       CatalogService
	NFe           NFeParser
	Sources       SourceReporter
}

// Router registra las rutas de la API. No hay autenticación: el simulador no guarda estado.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", health(deps))

	api := app.Group("/api")

	// Proyección
	projectionHandler := NewProjectionHandler(deps.Projection)
	api.Post("/calcular", projectionHandler.Calculate)
	api.Post("/calcular-rtc", projectionHandler.CalculateOfficial)
	api.Post("/projecao/pdf", projectionHandler.ExportPDF)

	// Importación de NF-e
	nfeHandler := NewNFeHandler(deps.NFe)
	api.Post("/nfe/importar", nfeHandler.Import)

	// Catálogos (dados abertos de la calculadora)
	catalogHandler := NewCatalogHandler(deps.Catalog)
	api.Get("/situacoes-tributarias", catalogHandler.Situations)
	api.Get("/classificacoes-tributarias/:cst_id", catalogHandler.Classifications)
}

// health godoc
// @Summary      Estado del servicio
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /health [get]
func health(deps RouterDeps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		resp := dto.HealthResponse{Status: "ok", App: deps.AppName, Calculator: deps.CalculatorURL}
		if deps.Sources != nil {
			resp.LastSource = deps.Sources.LastSource()
		}
		return c.JSON(resp)
	}
}
