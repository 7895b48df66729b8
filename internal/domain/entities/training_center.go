package entities

import "errors"

// TrainingCenter representa um centro de treinamento
type TrainingCenter struct {
	InternalID uint
	ID         string
	Name       string
	Address    string
	Phone      string
}

// Validate valida regras de negócio da entidade TrainingCenter
func (t *TrainingCenter) Validate() error {
	if t.Name == "" {
		return errors.New("name is required")
	}
	if t.Address == "" {
		return errors.New("address is required")
	}
	return nil
}
