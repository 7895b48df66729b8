package dto

import (
	"github.com/rafabene/workout-api/internal/domain/entities"
)

// CreateTrainingCenterRequest representa a requisição para criar um centro de treinamento
type CreateTrainingCenterRequest struct {
	Name    string `json:"nome" binding:"required,max=20" example:"CT King"`
	Address string `json:"endereco" binding:"required,max=60" example:"Rua X, Q02"`
	Phone   string `json:"telefone" binding:"required,max=20" example:"11999990000"`
}

// TrainingCenterResponse representa a resposta de um centro de treinamento
type TrainingCenterResponse struct {
	ID      string `json:"id"`
	Name    string `json:"nome"`
	Address string `json:"endereco"`
	Phone   string `json:"telefone"`
}

// ToTrainingCenterResponse converte uma entidade TrainingCenter para TrainingCenterResponse
func ToTrainingCenterResponse(center *entities.TrainingCenter) TrainingCenterResponse {
	return TrainingCenterResponse{
		ID:      center.ID,
		Name:    center.Name,
		Address: center.Address,
		Phone:   center.Phone,
	}
}
