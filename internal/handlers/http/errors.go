package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/rafabene/workout-api/internal/domain/errors"
	"github.com/rafabene/workout-api/internal/domain/ports"
	"github.com/rafabene/workout-api/internal/handlers/dto"
)

// ErrorOptions controla como erros de domínio viram respostas HTTP
type ErrorOptions struct {
	// DuplicateStatus é o status de recurso duplicado (303 ou 409)
	DuplicateStatus int
	// ExposeErrorCauses inclui a causa de falhas de persistência no detail
	ExposeErrorCauses bool
	Logger            ports.Logger
}

// ErrorMapper traduz erros de domínio em Problem Details (RFC 7807)
type ErrorMapper struct {
	duplicateStatus int
	exposeCauses    bool
	logger          ports.Logger
}

// NewErrorMapper cria um ErrorMapper
func NewErrorMapper(opts ErrorOptions) *ErrorMapper {
	status := opts.DuplicateStatus
	if status == 0 {
		status = http.StatusSeeOther
	}

	return &ErrorMapper{
		duplicateStatus: status,
		exposeCauses:    opts.ExposeErrorCauses,
		logger:          opts.Logger,
	}
}

var notFoundErrors = []error{
	domainerrors.ErrCategoryNotFound,
	domainerrors.ErrTrainingCenterNotFound,
	domainerrors.ErrAthleteNotFound,
}

var duplicateErrors = []error{
	domainerrors.ErrCategoryAlreadyExists,
	domainerrors.ErrTrainingCenterAlreadyExists,
	domainerrors.ErrCPFAlreadyExists,
}

var referenceErrors = []error{
	domainerrors.ErrCategoryReferenceNotFound,
	domainerrors.ErrTrainingCenterReferenceNotFound,
}

// Write escreve a resposta de erro correspondente a err e aborta a requisição
func (m *ErrorMapper) Write(c *gin.Context, err error) {
	params := domainerrors.ParamsOf(err)

	if kind := matchKind(err, notFoundErrors); kind != nil {
		dto.WriteError(c, dto.NotFoundErrorResponseI18n(c, kind.Error(), params))
		return
	}

	if kind := matchKind(err, referenceErrors); kind != nil {
		dto.WriteError(c, dto.BadRequestErrorResponseI18n(c, kind.Error(), params))
		return
	}

	if kind := matchKind(err, duplicateErrors); kind != nil {
		if id, ok := params["ID"].(string); ok && id != "" {
			c.Header("Location", resourceLocation(c, id))
		}
		dto.WriteError(c, dto.ConflictErrorResponseI18n(c, m.duplicateStatus, kind.Error(), params))
		return
	}

	if errors.Is(err, domainerrors.ErrInvalidInput) {
		detailKey := domainerrors.ErrInvalidInput.Error()
		switch {
		case errors.Is(err, domainerrors.ErrInvalidCPF):
			detailKey = domainerrors.ErrInvalidCPF.Error()
		case errors.Is(err, domainerrors.ErrInvalidSex):
			detailKey = domainerrors.ErrInvalidSex.Error()
		}
		dto.WriteError(c, dto.BadRequestErrorResponseI18n(c, detailKey, params))
		return
	}

	if m.logger != nil {
		m.logger.Error("request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err,
		)
	}

	cause := ""
	if m.exposeCauses {
		cause = unwrapCause(err)
	}
	dto.WriteError(c, dto.InternalErrorResponseI18n(c, cause))
}

// WriteValidation escreve um 400 com os erros de binding por campo
func (m *ErrorMapper) WriteValidation(c *gin.Context, err error) {
	dto.WriteError(c, dto.ValidationErrorResponseI18n(c, dto.ValidationErrors(c, err)))
}

func matchKind(err error, kinds []error) error {
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

// resourceLocation monta /<recurso>/<id> a partir da rota atual
func resourceLocation(c *gin.Context, id string) string {
	base := c.FullPath()
	if base == "" {
		base = c.Request.URL.Path
	}
	return fmt.Sprintf("%s/%s", strings.TrimSuffix(base, "/"), id)
}

// unwrapCause devolve a mensagem da causa original, sem o código do erro
func unwrapCause(err error) string {
	var de *domainerrors.DomainError
	if errors.As(err, &de) && de.Err != nil {
		return de.Err.Error()
	}
	return err.Error()
}
