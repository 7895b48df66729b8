package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rafabene/workout-api/docs"
	"github.com/rafabene/workout-api/internal/handlers/middleware"
	"github.com/rafabene/workout-api/internal/infrastructure/i18n"
)

// RouterConfig reúne o que o roteador precisa além dos handlers
type RouterConfig struct {
	Env                string
	BaseURL            string
	CORSAllowedOrigins string
	I18n               *i18n.Service
}

// Handlers agrupa os handlers de cada recurso
type Handlers struct {
	Category       *CategoryHandler
	TrainingCenter *TrainingCenterHandler
	Athlete        *AthleteHandler
}

// NewRouter monta o gin.Engine com middlewares globais e as rotas dos recursos
func NewRouter(cfg RouterConfig, h Handlers) *gin.Engine {
	router := gin.Default()

	// Base URL usada no campo "type" dos Problem Details
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.BaseURL)
		c.Next()
	})

	i18nMiddleware := middleware.NewI18nMiddleware(cfg.I18n)
	router.Use(i18nMiddleware.DetectLanguage())

	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	h.Category.RegisterRoutes(router.Group("/categoria"))
	h.TrainingCenter.RegisterRoutes(router.Group("/centro_treinamento"))
	h.Athlete.RegisterRoutes(router.Group("/atleta"))

	return router
}
