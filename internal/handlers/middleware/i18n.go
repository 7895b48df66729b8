package middleware

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/workout-api/internal/infrastructure/i18n"
)

const (
	// LanguageContextKey é a chave usada para armazenar o idioma no contexto do Gin
	LanguageContextKey = "language"
	// I18nServiceContextKey é a chave usada para armazenar o serviço i18n no contexto
	I18nServiceContextKey = "i18n_service"
	// ContentLanguageHeader informa ao cliente o idioma das mensagens de erro
	ContentLanguageHeader = "Content-Language"
)

// I18nMiddleware escolhe o idioma das mensagens de cada requisição
type I18nMiddleware struct {
	i18nService *i18n.Service
}

// NewI18nMiddleware cria um novo middleware de i18n
func NewI18nMiddleware(i18nService *i18n.Service) *I18nMiddleware {
	return &I18nMiddleware{
		i18nService: i18nService,
	}
}

// DetectLanguage define o idioma da requisição, nesta ordem:
// ?lang=, Accept-Language (respeitando q) e o idioma padrão do serviço.
func (m *I18nMiddleware) DetectLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := m.resolve(c.Query("lang"))

		if lang == "" {
			lang = m.parseAcceptLanguage(c.GetHeader("Accept-Language"))
		}

		if lang == "" {
			lang = m.i18nService.GetDefaultLanguage()
		}

		c.Set(LanguageContextKey, lang)
		c.Set(I18nServiceContextKey, m.i18nService)
		c.Header(ContentLanguageHeader, lang)

		c.Next()
	}
}

type weightedLanguage struct {
	tag    string
	weight float64
}

// parseAcceptLanguage retorna o idioma suportado de maior peso.
// Exemplo: "fr;q=0.9,es;q=0.95" -> "es"
func (m *I18nMiddleware) parseAcceptLanguage(acceptLang string) string {
	if strings.TrimSpace(acceptLang) == "" {
		return ""
	}

	var candidates []weightedLanguage
	for _, part := range strings.Split(acceptLang, ",") {
		tag, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		if tag == "" {
			continue
		}

		weight := 1.0
		if q, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
			parsed, err := strconv.ParseFloat(q, 64)
			if err != nil {
				continue
			}
			weight = parsed
		}
		if weight <= 0 {
			continue
		}

		candidates = append(candidates, weightedLanguage{tag: tag, weight: weight})
	}

	// Empates mantêm a ordem do header
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].weight > candidates[j].weight
	})

	for _, candidate := range candidates {
		if lang := m.resolve(candidate.tag); lang != "" {
			return lang
		}
	}

	return ""
}

// resolve casa tag com um idioma suportado: exato, sem região (es-AR -> es)
// ou com região (pt -> pt-BR).
func (m *I18nMiddleware) resolve(tag string) string {
	if tag == "" || tag == "*" {
		return ""
	}

	if m.i18nService.IsLanguageSupported(tag) {
		return tag
	}

	base, _, hasRegion := strings.Cut(tag, "-")
	if hasRegion && m.i18nService.IsLanguageSupported(base) {
		return base
	}

	prefix := strings.ToLower(base) + "-"
	for _, supported := range m.i18nService.GetSupportedLanguages() {
		if strings.HasPrefix(strings.ToLower(supported), prefix) {
			return supported
		}
	}

	return ""
}
