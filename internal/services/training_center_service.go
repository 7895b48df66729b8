package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/rafabene/workout-api/internal/domain/entities"
	domainerrors "github.com/rafabene/workout-api/internal/domain/errors"
	"github.com/rafabene/workout-api/internal/domain/ports"
	"github.com/rafabene/workout-api/internal/domain/repositories"
)

// TrainingCenterService contém a lógica de negócio para centros de treinamento
type TrainingCenterService struct {
	centerRepo repositories.TrainingCenterRepository
	uow        ports.UnitOfWork
	logger     ports.Logger
}

// NewTrainingCenterService cria um novo TrainingCenterService
func NewTrainingCenterService(
	centerRepo repositories.TrainingCenterRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *TrainingCenterService {
	return &TrainingCenterService{
		centerRepo: centerRepo,
		uow:        uow,
		logger:     logger.With("resource", "centro_treinamento"),
	}
}

// CreateTrainingCenterInput representa os dados para criar um centro de treinamento
type CreateTrainingCenterInput struct {
	Name    string
	Address string
	Phone   string
}

// CreateTrainingCenter cria um novo centro de treinamento com nome único
func (s *TrainingCenterService) CreateTrainingCenter(ctx context.Context, input CreateTrainingCenterInput) (*entities.TrainingCenter, error) {
	center := &entities.TrainingCenter{
		ID:      uuid.NewString(),
		Name:    input.Name,
		Address: input.Address,
		Phone:   input.Phone,
	}
	if err := center.Validate(); err != nil {
		return nil, domainerrors.Wrap(domainerrors.ErrInvalidInput, err)
	}

	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.centerRepo.FindByName(ctx, input.Name)
		if err != nil {
			return domainerrors.Wrap(domainerrors.ErrPersistence, err)
		}
		if existing != nil {
			return domainerrors.New(domainerrors.ErrTrainingCenterAlreadyExists, map[string]interface{}{
				"Name": existing.Name,
				"ID":   existing.ID,
			})
		}

		if err := s.centerRepo.Create(ctx, center); err != nil {
			if errors.Is(err, domainerrors.ErrDuplicateKey) {
				return domainerrors.New(domainerrors.ErrTrainingCenterAlreadyExists, map[string]interface{}{"Name": input.Name})
			}
			return domainerrors.Wrap(domainerrors.ErrPersistence, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("training center created", "id", center.ID, "name", center.Name)
	return center, nil
}

// GetTrainingCenter busca um centro de treinamento pelo id externo
func (s *TrainingCenterService) GetTrainingCenter(ctx context.Context, id string) (*entities.TrainingCenter, error) {
	center, err := s.centerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, domainerrors.Wrap(domainerrors.ErrPersistence, err)
	}
	if center == nil {
		return nil, domainerrors.New(domainerrors.ErrTrainingCenterNotFound, map[string]interface{}{"ID": id})
	}
	return center, nil
}

// ListTrainingCenters lista todos os centros de treinamento
func (s *TrainingCenterService) ListTrainingCenters(ctx context.Context) ([]*entities.TrainingCenter, error) {
	centers, err := s.centerRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.Wrap(domainerrors.ErrPersistence, err)
	}
	return centers, nil
}
