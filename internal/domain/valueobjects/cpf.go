package valueobjects

import (
	"strings"

	domainerrors "github.com/rafabene/workout-api/internal/domain/errors"
)

// CPF é um value object que garante que o CPF tenha exatamente 11 dígitos
type CPF struct {
	value string
}

// NewCPF cria um novo CPF validado, aceitando pontuação (123.456.789-09)
func NewCPF(cpf string) (CPF, error) {
	normalized := normalizeCPF(cpf)

	if !isValidCPF(normalized) {
		return CPF{}, domainerrors.ErrInvalidCPF
	}

	return CPF{value: normalized}, nil
}

// IsValidCPF informa se o texto representa um CPF aceito por NewCPF
func IsValidCPF(cpf string) bool {
	return isValidCPF(normalizeCPF(cpf))
}

// String retorna apenas os dígitos do CPF
func (c CPF) String() string {
	return c.value
}

func normalizeCPF(cpf string) string {
	cpf = strings.TrimSpace(cpf)
	return strings.NewReplacer(".", "", "-", "").Replace(cpf)
}

// isValidCPF valida o formato do CPF. Dígitos verificadores não são
// conferidos: a base de atletas já contém CPFs cadastrados sem essa regra.
func isValidCPF(cpf string) bool {
	if len(cpf) != 11 {
		return false
	}

	for _, r := range cpf {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
