package dto

import (
	"github.com/rafabene/workout-api/internal/domain/entities"
)

// CreateCategoryRequest representa a requisição para criar uma categoria
type CreateCategoryRequest struct {
	Name        string `json:"nome" binding:"required,max=10" example:"Scale"`
	Description string `json:"descricao" binding:"omitempty,max=255" example:"Treino adaptado"`
}

// CategoryResponse representa a resposta de uma categoria
type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"nome"`
	Description string `json:"descricao"`
}

// ToCategoryResponse converte uma entidade Category para CategoryResponse
func ToCategoryResponse(category *entities.Category) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
	}
}
