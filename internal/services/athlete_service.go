package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/rafabene/workout-api/internal/domain/entities"
	domainerrors "github.com/rafabene/workout-api/internal/domain/errors"
	"github.com/rafabene/workout-api/internal/domain/ports"
	"github.com/rafabene/workout-api/internal/domain/repositories"
	"github.com/rafabene/workout-api/internal/domain/valueobjects"
)

// AthleteService contém a lógica de negócio para atletas
type AthleteService struct {
	athleteRepo  repositories.AthleteRepository
	categoryRepo repositories.CategoryRepository
	centerRepo   repositories.TrainingCenterRepository
	uow          ports.UnitOfWork
	logger       ports.Logger
	now          func() time.Time
}

// NewAthleteService cria um novo AthleteService
func NewAthleteService(
	athleteRepo repositories.AthleteRepository,
	categoryRepo repositories.CategoryRepository,
	centerRepo repositories.TrainingCenterRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *AthleteService {
	return &AthleteService{
		athleteRepo:  athleteRepo,
		categoryRepo: categoryRepo,
		centerRepo:   centerRepo,
		uow:          uow,
		logger:       logger.With("resource", "atleta"),
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// CreateAthleteInput representa os dados para criar um atleta.
// Categoria e centro de treinamento são referenciados pelo nome.
type CreateAthleteInput struct {
	Name               string
	CPF                string
	Weight             float64
	Height             float64
	Sex                string
	CategoryName       string
	TrainingCenterName string
}

// CreateAthlete resolve as referências, garante CPF único e insere o atleta
func (s *AthleteService) CreateAthlete(ctx context.Context, input CreateAthleteInput) (*entities.Athlete, error) {
	cpf, err := valueobjects.NewCPF(input.CPF)
	if err != nil {
		return nil, domainerrors.Wrap(domainerrors.ErrInvalidInput, err)
	}

	athlete := &entities.Athlete{
		ID:     uuid.NewString(),
		Name:   input.Name,
		CPF:    cpf,
		Weight: input.Weight,
		Height: input.Height,
		Sex:    entities.Sex(input.Sex),
	}
	if err := athlete.Validate(); err != nil {
		return nil, domainerrors.Wrap(domainerrors.ErrInvalidInput, err)
	}

	err = s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		category, err := s.categoryRepo.FindByName(ctx, input.CategoryName)
		if err != nil {
			return domainerrors.Wrap(domainerrors.ErrPersistence, err)
		}
		if category == nil {
			return domainerrors.New(domainerrors.ErrCategoryReferenceNotFound, map[string]interface{}{"Name": input.CategoryName})
		}

		center, err := s.centerRepo.FindByName(ctx, input.TrainingCenterName)
		if err != nil {
			return domainerrors.Wrap(domainerrors.ErrPersistence, err)
		}
		if center == nil {
			return domainerrors.New(domainerrors.ErrTrainingCenterReferenceNotFound, map[string]interface{}{"Name": input.TrainingCenterName})
		}

		existing, err := s.athleteRepo.FindByCPF(ctx, cpf.String())
		if err != nil {
			return domainerrors.Wrap(domainerrors.ErrPersistence, err)
		}
		if existing != nil {
			return domainerrors.New(domainerrors.ErrCPFAlreadyExists, map[string]interface{}{
				"CPF": cpf.String(),
				"ID":  existing.ID,
			})
		}

		athlete.CreatedAt = s.now()
		athlete.Category = category
		athlete.TrainingCenter = center

		if err := s.athleteRepo.Create(ctx, athlete); err != nil {
			if errors.Is(err, domainerrors.ErrDuplicateKey) {
				return domainerrors.New(domainerrors.ErrCPFAlreadyExists, map[string]interface{}{"CPF": cpf.String()})
			}
			return domainerrors.Wrap(domainerrors.ErrPersistence, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("athlete created", "id", athlete.ID, "category", input.CategoryName, "training_center", input.TrainingCenterName)
	return athlete, nil
}

// GetAthlete busca um atleta pelo id externo, com categoria e centro
func (s *AthleteService) GetAthlete(ctx context.Context, id string) (*entities.Athlete, error) {
	athlete, err := s.athleteRepo.FindByID(ctx, id)
	if err != nil {
		return nil, domainerrors.Wrap(domainerrors.ErrPersistence, err)
	}
	if athlete == nil {
		return nil, domainerrors.New(domainerrors.ErrAthleteNotFound, map[string]interface{}{"ID": id})
	}
	return athlete, nil
}

// ListAthletes lista atletas filtrando por nome exato ou, na falta dele, por CPF
func (s *AthleteService) ListAthletes(ctx context.Context, filters repositories.AthleteFilters) ([]*entities.Athlete, error) {
	if filters.CPF != nil {
		if cpf, err := valueobjects.NewCPF(*filters.CPF); err == nil {
			normalized := cpf.String()
			filters.CPF = &normalized
		}
	}

	athletes, err := s.athleteRepo.List(ctx, filters)
	if err != nil {
		return nil, domainerrors.Wrap(domainerrors.ErrPersistence, err)
	}
	return athletes, nil
}

// UpdateAthlete aplica apenas os campos enviados e devolve o atleta recarregado
func (s *AthleteService) UpdateAthlete(ctx context.Context, id string, update entities.AthleteUpdate) (*entities.Athlete, error) {
	if update.IsEmpty() {
		return s.GetAthlete(ctx, id)
	}

	var updated *entities.Athlete

	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		athlete, err := s.athleteRepo.FindByID(ctx, id)
		if err != nil {
			return domainerrors.Wrap(domainerrors.ErrPersistence, err)
		}
		if athlete == nil {
			return domainerrors.New(domainerrors.ErrAthleteNotFound, map[string]interface{}{"ID": id})
		}

		if !athlete.Apply(update) {
			updated = athlete
			return nil
		}

		if err := athlete.Validate(); err != nil {
			return domainerrors.Wrap(domainerrors.ErrInvalidInput, err)
		}

		if err := s.athleteRepo.Update(ctx, athlete); err != nil {
			return domainerrors.Wrap(domainerrors.ErrPersistence, err)
		}

		updated, err = s.athleteRepo.FindByID(ctx, id)
		if err != nil {
			return domainerrors.Wrap(domainerrors.ErrPersistence, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("athlete updated", "id", id)
	return updated, nil
}

// DeleteAthlete remove o atleta definitivamente
func (s *AthleteService) DeleteAthlete(ctx context.Context, id string) error {
	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		athlete, err := s.athleteRepo.FindByID(ctx, id)
		if err != nil {
			return domainerrors.Wrap(domainerrors.ErrPersistence, err)
		}
		if athlete == nil {
			return domainerrors.New(domainerrors.ErrAthleteNotFound, map[string]interface{}{"ID": id})
		}

		if err := s.athleteRepo.Delete(ctx, id); err != nil {
			return domainerrors.Wrap(domainerrors.ErrPersistence, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("athlete deleted", "id", id)
	return nil
}
