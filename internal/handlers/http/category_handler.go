package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/workout-api/internal/handlers/dto"
	"github.com/rafabene/workout-api/internal/pagination"
	"github.com/rafabene/workout-api/internal/services"
)

// CategoryHandler lida com requisições HTTP relacionadas a categorias
type CategoryHandler struct {
	categoryService *services.CategoryService
	errors          *ErrorMapper
}

// NewCategoryHandler cria um novo CategoryHandler
func NewCategoryHandler(categoryService *services.CategoryService, errorMapper *ErrorMapper) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		errors:          errorMapper,
	}
}

// RegisterRoutes registra as rotas de categoria em r
func (h *CategoryHandler) RegisterRoutes(r gin.IRouter) {
	r.POST("/", h.CreateCategory)
	r.GET("/", h.ListCategories)
	r.GET("/:id", h.GetCategory)
}

// CreateCategory cria uma nova categoria
//
//	@Summary		Criar uma nova categoria
//	@Tags			categorias
//	@Accept			json
//	@Produce		json
//	@Param			categoria	body		dto.CreateCategoryRequest	true	"Dados da categoria"
//	@Success		201			{object}	dto.CategoryResponse
//	@Failure		303			{object}	dto.ErrorResponse	"Categoria já existe"
//	@Failure		400			{object}	dto.ErrorResponse
//	@Failure		500			{object}	dto.ErrorResponse
//	@Router			/categoria/ [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errors.WriteValidation(c, err)
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), services.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.errors.Write(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// ListCategories lista categorias com paginação
//
//	@Summary		Listar categorias
//	@Tags			categorias
//	@Produce		json
//	@Param			limit	query		int	false	"Tamanho da página"	default(50)
//	@Param			offset	query		int	false	"Deslocamento"		default(0)
//	@Success		200		{object}	pagination.Page[dto.CategoryResponse]
//	@Failure		400		{object}	dto.ErrorResponse
//	@Router			/categoria/ [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	var params pagination.Params
	if err := c.ShouldBindQuery(&params); err != nil {
		h.errors.WriteValidation(c, err)
		return
	}

	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		h.errors.Write(c, err)
		return
	}

	page := pagination.Paginate(categories, params)
	c.JSON(http.StatusOK, pagination.Map(page, dto.ToCategoryResponse))
}

// GetCategory busca uma categoria por ID
//
//	@Summary		Consultar uma categoria pelo id
//	@Tags			categorias
//	@Produce		json
//	@Param			id	path		string	true	"ID da categoria (UUID)"
//	@Success		200	{object}	dto.CategoryResponse
//	@Failure		400	{object}	dto.ErrorResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/categoria/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.errors.WriteValidation(c, err)
		return
	}

	category, err := h.categoryService.GetCategory(c.Request.Context(), req.ID)
	if err != nil {
		h.errors.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}
