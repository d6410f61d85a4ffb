package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/simulador-rtc/docs"
	"github.com/jhoicas/simulador-rtc/internal/application/catalog"
	"github.com/jhoicas/simulador-rtc/internal/application/projection"
	"github.com/jhoicas/simulador-rtc/internal/infrastructure/calculadora"
	"github.com/jhoicas/simulador-rtc/internal/infrastructure/nfe"
	infrapdf "github.com/jhoicas/simulador-rtc/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/simulador-rtc/internal/interfaces/http"
	"github.com/jhoicas/simulador-rtc/pkg/config"
	"github.com/jhoicas/simulador-rtc/pkg/logger"
)

// @title        Simulador RTC API
// @version      1.0
// @description  Proyección de la carga tributaria 2026-2033 (IBS/CBS/IS + tributos actuales) según la LC 214/2025.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("calculadora", cfg.Calculadora.URL).
		Str("calculadora_local", cfg.Calculadora.LocalURL).
		Msg("iniciando aplicación")

	gatewayLog := log.Component("calculadora")
	calculator := calculadora.NewClient(calculadora.Config{
		PrimaryEndpoint:  cfg.Calculadora.URL,
		FallbackEndpoint: cfg.Calculadora.LocalURL,
		Timeout:          cfg.Calculadora.Timeout(),
		Logger:           &gatewayLog,
	})

	// PDF: informe de la proyección 2026-2033
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	projectionSvc := projection.NewService(calculator, pdfGenerator, log.Component("projection"))
	catalogUC := catalog.NewUseCase(calculator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		BodyLimit:    nfe.MaxDocumentSize,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 90, // modo rtc: 8 consultas con respaldo
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORS.Origins}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Simulador RTC API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:       cfg.App.Name,
		CalculatorURL: cfg.Calculadora.URL,
		Projection:    projectionSvc,
		Catalog:       catalogUC,
		NFe:           nfe.NewParser(),
		Sources:       calculator,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
