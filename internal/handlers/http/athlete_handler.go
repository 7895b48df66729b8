package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/workout-api/internal/domain/repositories"
	"github.com/rafabene/workout-api/internal/handlers/dto"
	"github.com/rafabene/workout-api/internal/pagination"
	"github.com/rafabene/workout-api/internal/services"
)

// AthleteHandler lida com requisições HTTP relacionadas a atletas
type AthleteHandler struct {
	athleteService *services.AthleteService
	errors         *ErrorMapper
}

// NewAthleteHandler cria um novo AthleteHandler
func NewAthleteHandler(athleteService *services.AthleteService, errorMapper *ErrorMapper) *AthleteHandler {
	return &AthleteHandler{
		athleteService: athleteService,
		errors:         errorMapper,
	}
}

// RegisterRoutes registra as rotas de atleta em r
func (h *AthleteHandler) RegisterRoutes(r gin.IRouter) {
	r.POST("/", h.CreateAthlete)
	r.GET("/", h.ListAthletes)
	r.GET("/:id", h.GetAthlete)
	r.PATCH("/:id", h.UpdateAthlete)
	r.DELETE("/:id", h.DeleteAthlete)
}

// CreateAthlete cadastra um atleta
//
//	@Summary		Criar um novo atleta
//	@Description	Categoria e centro de treinamento são referenciados pelo nome e precisam existir.
//	@Tags			atletas
//	@Accept			json
//	@Produce		json
//	@Param			atleta	body		dto.CreateAthleteRequest	true	"Dados do atleta"
//	@Success		201		{object}	dto.AthleteResponse
//	@Failure		303		{object}	dto.ErrorResponse	"CPF já cadastrado"
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		500		{object}	dto.ErrorResponse
//	@Router			/atleta/ [post]
func (h *AthleteHandler) CreateAthlete(c *gin.Context) {
	var req dto.CreateAthleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errors.WriteValidation(c, err)
		return
	}

	athlete, err := h.athleteService.CreateAthlete(c.Request.Context(), services.CreateAthleteInput{
		Name:               req.Name,
		CPF:                req.CPF,
		Weight:             req.Weight,
		Height:             req.Height,
		Sex:                req.Sex,
		CategoryName:       req.Category.Name,
		TrainingCenterName: req.TrainingCenter.Name,
	})
	if err != nil {
		h.errors.Write(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAthleteResponse(athlete))
}

// ListAthletes lista atletas com filtros opcionais
//
//	@Summary		Listar atletas
//	@Description	Filtra por nome exato; sem nome, filtra por CPF.
//	@Tags			atletas
//	@Produce		json
//	@Param			nome	query		string	false	"Nome exato do atleta"
//	@Param			cpf		query		string	false	"CPF do atleta"
//	@Param			limit	query		int		false	"Tamanho da página"	default(50)
//	@Param			offset	query		int		false	"Deslocamento"		default(0)
//	@Success		200		{object}	pagination.Page[dto.AthleteSummaryResponse]
//	@Failure		400		{object}	dto.ErrorResponse
//	@Router			/atleta/ [get]
func (h *AthleteHandler) ListAthletes(c *gin.Context) {
	var params pagination.Params
	if err := c.ShouldBindQuery(&params); err != nil {
		h.errors.WriteValidation(c, err)
		return
	}

	var filters repositories.AthleteFilters
	if name, ok := c.GetQuery("nome"); ok && name != "" {
		filters.Name = &name
	}
	if cpf, ok := c.GetQuery("cpf"); ok && cpf != "" {
		filters.CPF = &cpf
	}

	athletes, err := h.athleteService.ListAthletes(c.Request.Context(), filters)
	if err != nil {
		h.errors.Write(c, err)
		return
	}

	page := pagination.Paginate(athletes, params)
	c.JSON(http.StatusOK, pagination.Map(page, dto.ToAthleteSummaryResponse))
}

// GetAthlete busca um atleta por ID
//
//	@Summary		Consultar um atleta pelo id
//	@Tags			atletas
//	@Produce		json
//	@Param			id	path		string	true	"ID do atleta (UUID)"
//	@Success		200	{object}	dto.AthleteResponse
//	@Failure		400	{object}	dto.ErrorResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/atleta/{id} [get]
func (h *AthleteHandler) GetAthlete(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.errors.WriteValidation(c, err)
		return
	}

	athlete, err := h.athleteService.GetAthlete(c.Request.Context(), req.ID)
	if err != nil {
		h.errors.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAthleteResponse(athlete))
}

// UpdateAthlete altera parcialmente um atleta
//
//	@Summary		Editar um atleta pelo id
//	@Description	Apenas os campos enviados são alterados. Corpo vazio não altera nada.
//	@Tags			atletas
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"ID do atleta (UUID)"
//	@Param			atleta	body		dto.UpdateAthleteRequest	false	"Campos a alterar"
//	@Success		200		{object}	dto.AthleteResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		404		{object}	dto.ErrorResponse
//	@Router			/atleta/{id} [patch]
func (h *AthleteHandler) UpdateAthlete(c *gin.Context) {
	var uri dto.IDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		h.errors.WriteValidation(c, err)
		return
	}

	var req dto.UpdateAthleteRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.errors.WriteValidation(c, err)
		return
	}

	athlete, err := h.athleteService.UpdateAthlete(c.Request.Context(), uri.ID, req.ToUpdate())
	if err != nil {
		h.errors.Write(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAthleteResponse(athlete))
}

// DeleteAthlete remove um atleta
//
//	@Summary		Deletar um atleta pelo id
//	@Tags			atletas
//	@Param			id	path	string	true	"ID do atleta (UUID)"
//	@Success		204
//	@Failure		400	{object}	dto.ErrorResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/atleta/{id} [delete]
func (h *AthleteHandler) DeleteAthlete(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.errors.WriteValidation(c, err)
		return
	}

	if err := h.athleteService.DeleteAthlete(c.Request.Context(), req.ID); err != nil {
		h.errors.Write(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
