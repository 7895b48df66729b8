package dto

import (
	"time"

	"github.com/rafabene/workout-api/internal/domain/entities"
)

// CategoryRef referencia uma categoria existente pelo nome
type CategoryRef struct {
	Name string `json:"nome" binding:"required,max=10" example:"Scale"`
}

// TrainingCenterRef referencia um centro de treinamento existente pelo nome
type TrainingCenterRef struct {
	Name string `json:"nome" binding:"required,max=20" example:"CT King"`
}

// CreateAthleteRequest representa a requisição para criar um atleta
type CreateAthleteRequest struct {
	Name           string            `json:"nome" binding:"required,max=50" example:"Joao"`
	CPF            string            `json:"cpf" binding:"required,cpf" example:"12345678900"`
	Weight         float64           `json:"peso" binding:"required,gt=0" example:"75.5"`
	Height         float64           `json:"altura" binding:"required,gt=0" example:"1.70"`
	Sex            string            `json:"sexo" binding:"required,sexo" example:"M"`
	Category       CategoryRef       `json:"categoria"`
	TrainingCenter TrainingCenterRef `json:"centro_treinamento"`
}

// UpdateAthleteRequest representa uma atualização parcial; campos ausentes não mudam
type UpdateAthleteRequest struct {
	Name   *string  `json:"nome" binding:"omitempty,min=1,max=50"`
	Weight *float64 `json:"peso" binding:"omitempty,gt=0"`
	Height *float64 `json:"altura" binding:"omitempty,gt=0"`
	Sex    *string  `json:"sexo" binding:"omitempty,sexo"`
}

// ToUpdate converte a requisição para a atualização de domínio
func (r UpdateAthleteRequest) ToUpdate() entities.AthleteUpdate {
	update := entities.AthleteUpdate{
		Name:   r.Name,
		Weight: r.Weight,
		Height: r.Height,
	}
	if r.Sex != nil {
		sex := entities.Sex(*r.Sex)
		update.Sex = &sex
	}
	return update
}

// AthleteResponse representa a resposta completa de um atleta
type AthleteResponse struct {
	ID             string            `json:"id"`
	Name           string            `json:"nome"`
	CPF            string            `json:"cpf"`
	Weight         float64           `json:"peso"`
	Height         float64           `json:"altura"`
	Sex            string            `json:"sexo"`
	CreatedAt      time.Time         `json:"created_at"`
	Category       CategoryRef       `json:"categoria"`
	TrainingCenter TrainingCenterRef `json:"centro_treinamento"`
}

// AthleteSummaryResponse é a projeção reduzida usada na listagem
type AthleteSummaryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nome"`
	CPF       string    `json:"cpf"`
	Weight    float64   `json:"peso"`
	Height    float64   `json:"altura"`
	Sex       string    `json:"sexo"`
	CreatedAt time.Time `json:"created_at"`
}

// ToAthleteResponse converte uma entidade Athlete para AthleteResponse
func ToAthleteResponse(athlete *entities.Athlete) AthleteResponse {
	response := AthleteResponse{
		ID:        athlete.ID,
		Name:      athlete.Name,
		CPF:       athlete.CPF.String(),
		Weight:    athlete.Weight,
		Height:    athlete.Height,
		Sex:       string(athlete.Sex),
		CreatedAt: athlete.CreatedAt,
	}

	if athlete.Category != nil {
		response.Category = CategoryRef{Name: athlete.Category.Name}
	}
	if athlete.TrainingCenter != nil {
		response.TrainingCenter = TrainingCenterRef{Name: athlete.TrainingCenter.Name}
	}

	return response
}

// ToAthleteSummaryResponse converte uma entidade Athlete para a projeção reduzida
func ToAthleteSummaryResponse(athlete *entities.Athlete) AthleteSummaryResponse {
	return AthleteSummaryResponse{
		ID:        athlete.ID,
		Name:      athlete.Name,
		CPF:       athlete.CPF.String(),
		Weight:    athlete.Weight,
		Height:    athlete.Height,
		Sex:       string(athlete.Sex),
		CreatedAt: athlete.CreatedAt,
	}
}
