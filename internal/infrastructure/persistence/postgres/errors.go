package postgres

import (
	"errors"

	"gorm.io/gorm"

	domainerrors "github.com/rafabene/workout-api/internal/domain/errors"
)

// translateWriteError converte erros de escrita do GORM em erros de domínio
func translateWriteError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainerrors.ErrDuplicateKey
	}
	return err
}
