package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafabene/workout-api/internal/domain/entities"
	"github.com/rafabene/workout-api/internal/domain/repositories"
	"github.com/rafabene/workout-api/internal/domain/valueobjects"
)

// AthleteRepository implementa repositories.AthleteRepository
type AthleteRepository struct {
	db *gorm.DB
}

// NewAthleteRepository cria um novo AthleteRepository
func NewAthleteRepository(db *gorm.DB) repositories.AthleteRepository {
	return &AthleteRepository{db: db}
}

// Create insere o atleta usando as chaves internas da categoria e do centro de treinamento
func (r *AthleteRepository) Create(ctx context.Context, athlete *entities.Athlete) error {
	if athlete.Category == nil || athlete.TrainingCenter == nil {
		return errors.New("athlete requires category and training center")
	}

	model := r.toModel(athlete)

	db := dbFromContext(ctx, r.db)
	// Categoria e centro já existem; nunca inserir associações junto
	if err := db.Omit(clause.Associations).Create(model).Error; err != nil {
		return translateWriteError(err)
	}

	athlete.InternalID = model.PKID
	return nil
}

func (r *AthleteRepository) FindByID(ctx context.Context, id string) (*entities.Athlete, error) {
	var model AthleteModel

	db := dbFromContext(ctx, r.db)
	err := db.Preload("Category").Preload("TrainingCenter").
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *AthleteRepository) FindByCPF(ctx context.Context, cpf string) (*entities.Athlete, error) {
	var model AthleteModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("cpf = ?", cpf).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

// Update grava apenas os campos editáveis do atleta
func (r *AthleteRepository) Update(ctx context.Context, athlete *entities.Athlete) error {
	db := dbFromContext(ctx, r.db)
	result := db.Model(&AthleteModel{}).
		Where("id = ?", athlete.ID).
		Updates(map[string]interface{}{
			"nome":   athlete.Name,
			"peso":   athlete.Weight,
			"altura": athlete.Height,
			"sexo":   string(athlete.Sex),
		})

	return translateWriteError(result.Error)
}

// Delete remove o atleta definitivamente (sem soft delete)
func (r *AthleteRepository) Delete(ctx context.Context, id string) error {
	db := dbFromContext(ctx, r.db)
	return db.Where("id = ?", id).Delete(&AthleteModel{}).Error
}

func (r *AthleteRepository) List(ctx context.Context, filters repositories.AthleteFilters) ([]*entities.Athlete, error) {
	var models []*AthleteModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&AthleteModel{})

	// Filtros exatos: nome tem precedência sobre cpf
	switch {
	case filters.Name != nil:
		query = query.Where("nome = ?", *filters.Name)
	case filters.CPF != nil:
		query = query.Where("cpf = ?", *filters.CPF)
	}

	if err := query.Order("pk_id").Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

// Conversores
func (r *AthleteRepository) toModel(athlete *entities.Athlete) *AthleteModel {
	return &AthleteModel{
		PKID:             athlete.InternalID,
		ID:               athlete.ID,
		Name:             athlete.Name,
		CPF:              athlete.CPF.String(),
		Weight:           athlete.Weight,
		Height:           athlete.Height,
		Sex:              string(athlete.Sex),
		CreatedAt:        athlete.CreatedAt,
		CategoryID:       athlete.Category.InternalID,
		TrainingCenterID: athlete.TrainingCenter.InternalID,
	}
}

func (r *AthleteRepository) toEntity(model *AthleteModel) (*entities.Athlete, error) {
	cpf, err := valueobjects.NewCPF(model.CPF)
	if err != nil {
		return nil, fmt.Errorf("athlete %s: %w", model.ID, err)
	}

	athlete := &entities.Athlete{
		InternalID: model.PKID,
		ID:         model.ID,
		Name:       model.Name,
		CPF:        cpf,
		Weight:     model.Weight,
		Height:     model.Height,
		Sex:        entities.Sex(model.Sex),
		CreatedAt:  model.CreatedAt,
	}

	if model.Category != nil {
		athlete.Category = &entities.Category{
			InternalID:  model.Category.PKID,
			ID:          model.Category.ID,
			Name:        model.Category.Name,
			Description: model.Category.Description,
		}
	}

	if model.TrainingCenter != nil {
		athlete.TrainingCenter = toTrainingCenterEntity(model.TrainingCenter)
	}

	return athlete, nil
}

func (r *AthleteRepository) toEntities(models []*AthleteModel) ([]*entities.Athlete, error) {
	athletes := make([]*entities.Athlete, 0, len(models))

	for _, model := range models {
		entity, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		athletes = append(athletes, entity)
	}

	return athletes, nil
}
