package repositories

import (
	"context"

	"github.com/rafabene/workout-api/internal/domain/entities"
)

// TrainingCenterRepository define a interface para persistência de centros de treinamento
type TrainingCenterRepository interface {
	Create(ctx context.Context, center *entities.TrainingCenter) error
	FindByID(ctx context.Context, id string) (*entities.TrainingCenter, error)
	FindByName(ctx context.Context, name string) (*entities.TrainingCenter, error)
	List(ctx context.Context) ([]*entities.TrainingCenter, error)
}
