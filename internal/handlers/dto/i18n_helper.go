package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/workout-api/internal/handlers/middleware"
	"github.com/rafabene/workout-api/internal/infrastructure/i18n"
)

// T traduz key no idioma da requisição.
// Sem serviço i18n no contexto, a própria chave é devolvida.
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	service, ok := i18nService(c)
	if !ok {
		return key
	}

	return service.T(GetLanguage(c), key, params...)
}

// GetLanguage retorna o idioma da requisição ou o idioma padrão do serviço
func GetLanguage(c *gin.Context) string {
	if lang := c.GetString(middleware.LanguageContextKey); lang != "" {
		return lang
	}

	if service, ok := i18nService(c); ok {
		return service.GetDefaultLanguage()
	}

	return "pt-BR"
}

func i18nService(c *gin.Context) (*i18n.Service, bool) {
	value, exists := c.Get(middleware.I18nServiceContextKey)
	if !exists {
		return nil, false
	}

	service, ok := value.(*i18n.Service)
	return service, ok
}
