package entities

import "errors"

// Category representa uma categoria de atletas (ex.: Scale, RX)
type Category struct {
	InternalID  uint // chave usada nas junções, nunca exposta na API
	ID          string
	Name        string
	Description string
}

// Validate valida regras de negócio da entidade Category
func (c *Category) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	return nil
}
