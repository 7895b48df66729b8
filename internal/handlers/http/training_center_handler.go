package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/workout-api/internal/handlers/dto"
	"github.com/rafabene/workout-api/internal/pagination"
	"github.com/rafabene/workout-api/internal/services"
)

// TrainingCenterHandler lida com requisições HTTP relacionadas a centros de treinamento
type TrainingCenterHandler struct {
	centerService *services.TrainingCenterService
	errors          *ErrorMapper
}

// NewTrainingCenterHandler cria um novo TrainingCenterHandler
func NewTrainingCenterHandler(centerService *services.TrainingCenterService, errorMapper *ErrorMapper) *TrainingCenterHandler {
	return &TrainingCenterHandler{
		centerService: centerService,
		errors:          errorMapper,
	}
}

// RegisterRoutes registra as rotas de centro de treinamento em r
func (h *TrainingCenterHandler) RegisterRoutes(r gin.IRouter) {
	r.POST("/", h.CreateTrainingCenter)
	r.GET("/", h.ListTrainingCenters)
	r.GET("/:id", h.GetTrainingCenter)
}

// CreateTrainingCenter cria um novo centro de treinamento
//
//	@Summary		Criar um novo centro de treinamento
//	@Tags			centros_treinamento
//	@Accept			json
//	@Produce		json
//	@Param			centro_treinamento	body		dto.CreateTrainingCenterRequest	true	"Dados do centro de treinamento"
//	@Success		201			{object}	dto.TrainingCenterResponse
//	@Failure		303			{object}	dto.ErrorResponse	"Centro de treinamento já existe"
//	@Failure		400			{object}	dto.ErrorResponse
//	@Failure		500			{object}	dto.ErrorResponse
//	@Router			/centro_treinamento/ [post]
func (h *TrainingCenterHandler) CreateTrainingCenter(c *gin.Context) {
	var req dto.CreateTrainingCenterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errors.WriteValidation(c, err)
		return
	}

	center, err := h.centerService.CreateTrainingCenter(c.Request.Context(), services.CreateTrainingCenterInput{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		h.errors.Write(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTrainingCenterResponse(center))
}

// ListTrainingCenters lista centros de treinamento com paginação
//
//	@Summary		Listar centros de treinamento
//	@Tags			centros_treinamento
//	@Produce		json
//	@Param			limit	query		int	false	"Tamanho da página"	default(50)
//	@Param			offset	query		int	false	"Deslocamento"		default(0)
//	@Success		200		{object}	pagination.Page[dto.TrainingCenterResponse]
//	@Failure		400		{object}	dto.ErrorResponse
//	@Router			/centro_treinamento/ [get]
func (h *TrainingCenterHandler) ListTrainingCenters(c *gin.Context) {
	var params pagination.Params
	if err := c.ShouldBindQuery(&params); err != nil {
		h.errors.WriteValidation(c, err)
		return
	}

	centers, err := h.centerService.ListTrainingCenters(c.Request.Context())
	if err != nil {
		h.errors.Write(c, err)
		return
	}

	page := pagination.Paginate(centers, params)
	c.JSON(http.StatusOK, pagination.Map(page, dto.ToTrainingCenterResponse))
}

// GetTrainingCenter busca um centro de treinamento por ID
//
//	@Summary		Consultar um centro de treinamento pelo id
//	@Tags			centros_treinamento
//	@Produce		json
//	@Param			id	path		string	true	"ID do centro de treinamento (UUID)"
//	@Success		200	{object}	dto.TrainingCenterResponse
//	@Failure		400	{object}	dto.ErrorResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/centro_treinamento/{id} [get]
func (h *TrainingCenterHandler) GetTrainingCenter(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.errors.WriteValidation(c, err)
		return
	}

	center, err := h.centerService.GetTrainingCenter(c.Request.Context(), req.ID)
	if err != nil {
		h.errors.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTrainingCenterResponse(center))
}
