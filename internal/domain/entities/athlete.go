package entities

import (
	"errors"
	"time"

	domainerrors "github.com/rafabene/workout-api/internal/domain/errors"
	"github.com/rafabene/workout-api/internal/domain/valueobjects"
)

// Athlete representa um atleta vinculado a uma categoria e a um centro de treinamento
type Athlete struct {
	InternalID     uint
	ID             string
	Name           string
	CPF            valueobjects.CPF
	Weight         float64
	Height         float64
	Sex            Sex
	CreatedAt      time.Time
	Category       *Category
	TrainingCenter *TrainingCenter
}

// AthleteUpdate contém apenas os campos enviados numa atualização parcial.
// Campos nil permanecem inalterados.
type AthleteUpdate struct {
	Name   *string
	Weight *float64
	Height *float64
	Sex    *Sex
}

// IsEmpty indica que nenhum campo foi enviado
func (u AthleteUpdate) IsEmpty() bool {
	return u.Name == nil && u.Weight == nil && u.Height == nil && u.Sex == nil
}

// Apply aplica a atualização parcial e retorna true se algum campo mudou
func (a *Athlete) Apply(u AthleteUpdate) bool {
	changed := false

	if u.Name != nil && *u.Name != a.Name {
		a.Name = *u.Name
		changed = true
	}
	if u.Weight != nil && *u.Weight != a.Weight {
		a.Weight = *u.Weight
		changed = true
	}
	if u.Height != nil && *u.Height != a.Height {
		a.Height = *u.Height
		changed = true
	}
	if u.Sex != nil && *u.Sex != a.Sex {
		a.Sex = *u.Sex
		changed = true
	}

	return changed
}

// Validate valida regras de negócio da entidade Athlete
func (a *Athlete) Validate() error {
	if a.Name == "" {
		return errors.New("name is required")
	}

	if a.CPF.String() == "" {
		return domainerrors.ErrInvalidCPF
	}

	if a.Weight <= 0 {
		return errors.New("weight must be positive")
	}

	if a.Height <= 0 {
		return errors.New("height must be positive")
	}

	if !a.Sex.IsValid() {
		return domainerrors.ErrInvalidSex
	}

	return nil
}
