// Workout API
//
//	@title			Workout API
//	@version		1.0
//	@description	API de cadastro de categorias, centros de treinamento e atletas.
//	@BasePath		/
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/workout-api/internal/domain/ports"
	"github.com/rafabene/workout-api/internal/handlers/dto"
	httphandlers "github.com/rafabene/workout-api/internal/handlers/http"
	"github.com/rafabene/workout-api/internal/infrastructure/config"
	"github.com/rafabene/workout-api/internal/infrastructure/i18n"
	"github.com/rafabene/workout-api/internal/infrastructure/logging"
	"github.com/rafabene/workout-api/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/workout-api/internal/services"
)

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting workout api",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, cfg.Logging.Level, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}
	defer func() {
		if err := postgres.Close(db); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Inicializar i18n
	i18nService, err := newI18nService(cfg.I18n, logger)
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	if err := dto.RegisterValidators(); err != nil {
		logger.Error("failed to register validators", "error", err)
		log.Fatal(err)
	}

	// Inicializar repositories
	categoryRepo := postgres.NewCategoryRepository(db)
	centerRepo := postgres.NewTrainingCenterRepository(db)
	athleteRepo := postgres.NewAthleteRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Inicializar services
	categoryService := services.NewCategoryService(categoryRepo, uow, logger)
	centerService := services.NewTrainingCenterService(centerRepo, uow, logger)
	athleteService := services.NewAthleteService(athleteRepo, categoryRepo, centerRepo, uow, logger)

	// Inicializar handlers
	errorMapper := httphandlers.NewErrorMapper(httphandlers.ErrorOptions{
		DuplicateStatus:   cfg.API.DuplicateStatus,
		ExposeErrorCauses: !cfg.IsProduction(),
		Logger:            logger,
	})

	// Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := httphandlers.NewRouter(httphandlers.RouterConfig{
		Env:                cfg.Env,
		BaseURL:            cfg.Server.BaseURL,
		CORSAllowedOrigins: cfg.CORS.AllowedOrigins,
		I18n:               i18nService,
	}, httphandlers.Handlers{
		Category:       httphandlers.NewCategoryHandler(categoryService, errorMapper),
		TrainingCenter: httphandlers.NewTrainingCenterHandler(centerService, errorMapper),
		Athlete:        httphandlers.NewAthleteHandler(athleteService, errorMapper),
	})

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

// newI18nService usa LOCALES_DIR quando existe, senão as traduções embutidas
func newI18nService(cfg config.I18nConfig, logger ports.Logger) (*i18n.Service, error) {
	if cfg.LocalesDir != "" {
		if info, err := os.Stat(cfg.LocalesDir); err == nil && info.IsDir() {
			return i18n.NewService(cfg.LocalesDir, cfg.DefaultLanguage)
		}
		logger.Warn("locales dir not found, using embedded translations", "dir", cfg.LocalesDir)
	}
	return i18n.NewEmbeddedService(cfg.DefaultLanguage)
}
