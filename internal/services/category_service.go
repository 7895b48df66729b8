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

// CategoryService contém a lógica de negócio para categorias
type CategoryService struct {
	categoryRepo repositories.CategoryRepository
	uow          ports.UnitOfWork
	logger       ports.Logger
}

// NewCategoryService cria um novo CategoryService
func NewCategoryService(
	categoryRepo repositories.CategoryRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		uow:          uow,
		logger:       logger.With("resource", "categoria"),
	}
}

// CreateCategoryInput representa os dados para criar uma categoria
type CreateCategoryInput struct {
	Name        string
	Description string
}

// CreateCategory cria uma nova categoria com nome único
func (s *CategoryService) CreateCategory(ctx context.Context, input CreateCategoryInput) (*entities.Category, error) {
	category := &entities.Category{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
	}
	if err := category.Validate(); err != nil {
		return nil, domainerrors.Wrap(domainerrors.ErrInvalidInput, err)
	}

	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.categoryRepo.FindByName(ctx, input.Name)
		if err != nil {
			return domainerrors.Wrap(domainerrors.ErrPersistence, err)
		}
		if existing != nil {
			return domainerrors.New(domainerrors.ErrCategoryAlreadyExists, map[string]interface{}{
				"Name": input.Name,
				"ID":   existing.ID,
			})
		}

		if err := s.categoryRepo.Create(ctx, category); err != nil {
			if errors.Is(err, domainerrors.ErrDuplicateKey) {
				return domainerrors.New(domainerrors.ErrCategoryAlreadyExists, map[string]interface{}{"Name": input.Name})
			}
			return domainerrors.Wrap(domainerrors.ErrPersistence, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("category created", "id", category.ID, "name", category.Name)
	return category, nil
}

// GetCategory busca uma categoria pelo id externo
func (s *CategoryService) GetCategory(ctx context.Context, id string) (*entities.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, domainerrors.Wrap(domainerrors.ErrPersistence, err)
	}
	if category == nil {
		return nil, domainerrors.New(domainerrors.ErrCategoryNotFound, map[string]interface{}{"ID": id})
	}
	return category, nil
}

// ListCategories lista todas as categorias
func (s *CategoryService) ListCategories(ctx context.Context) ([]*entities.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.Wrap(domainerrors.ErrPersistence, err)
	}
	return categories, nil
}
