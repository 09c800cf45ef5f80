package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/paktech/tender-docs/internal/application/documents"
	"github.com/paktech/tender-docs/internal/application/dto"
	"github.com/paktech/tender-docs/internal/domain/repository"
	"github.com/paktech/tender-docs/internal/infrastructure/cache"
	infrapdf "github.com/paktech/tender-docs/internal/infrastructure/pdf"
	"github.com/paktech/tender-docs/internal/infrastructure/postgres"
	"github.com/paktech/tender-docs/internal/infrastructure/storage"
	httpRouter "github.com/paktech/tender-docs/internal/interfaces/http"
	"github.com/paktech/tender-docs/pkg/config"
	"github.com/paktech/tender-docs/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET requerido")
	}

	ctx := context.Background()
	health := dto.HealthResponse{}

	// PostgreSQL: opcional, habilita la descarga por ID y los registros
	var repo repository.DocumentRepository
	if cfg.DB.Enabled() {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		repo = postgres.NewDocumentRepository(pool)
		health.Database = true
	} else {
		log.Warn().Msg("sin DB_HOST/DATABASE_URL: solo render desde el cuerpo")
	}

	// Redis: caché de PDFs; si no responde se sigue sin caché
	var pdfCache documents.Cache
	if cfg.Redis.Addr != "" {
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		rc, err := cache.NewRedisCache(pingCtx, cfg.Redis)
		cancel()
		if err != nil {
			log.Warn().Err(err).Msg("caché de PDFs desactivada")
		} else {
			defer rc.Close()
			pdfCache = rc
			health.Cache = true
		}
	}

	// GCS: archivo de cada PDF generado
	var archiver documents.Archiver
	if cfg.GCS.Bucket != "" {
		gcs, err := storage.NewGCSArchiver(ctx, cfg.GCS)
		if err != nil {
			log.Fatal().Err(err).Str("bucket", cfg.GCS.Bucket).Msg("archivo GCS")
		}
		defer gcs.Close()
		archiver = gcs
		health.Archive = true
	}

	opts := infrapdf.OptionsFromConfig(cfg)
	assets := infrapdf.NewAssetLoader(os.DirFS(cfg.PDF.AssetsDir))
	generator := infrapdf.NewGenerator(assets, opts, log)

	pdfUC := documents.NewPDFUseCase(repo, generator, pdfCache, archiver, renderSettings(cfg), log)
	var registerUC *documents.RegisterUseCase
	if repo != nil {
		registerUC = documents.NewRegisterUseCase(repo, infrapdf.NewRegisterRenderer(opts), log)
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    8 * 1024 * 1024,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Tender Docs API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		ServiceName: cfg.App.Name,
		PDF:         pdfUC,
		Register:    registerUC,
		JWTSecret:   cfg.JWT.Secret,
		Health:      health,
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

// renderSettings todo lo que cambia el PDF además del documento; invalida la caché al desplegar otra configuración.
func renderSettings(cfg *config.Config) string {
	return fmt.Sprintf("%s|%+v|%+v", cfg.PDF.Locale, cfg.PDF, cfg.Company)
}
