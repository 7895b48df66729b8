package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rafabene/workout-api/internal/domain/entities"
	"github.com/rafabene/workout-api/internal/domain/repositories"
)

// TrainingCenterRepository implementa repositories.TrainingCenterRepository
type TrainingCenterRepository struct {
	db *gorm.DB
}

// NewTrainingCenterRepository cria um novo TrainingCenterRepository
func NewTrainingCenterRepository(db *gorm.DB) repositories.TrainingCenterRepository {
	return &TrainingCenterRepository{db: db}
}

func (r *TrainingCenterRepository) Create(ctx context.Context, center *entities.TrainingCenter) error {
	model := toTrainingCenterModel(center)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return translateWriteError(err)
	}

	center.InternalID = model.PKID
	return nil
}

func (r *TrainingCenterRepository) FindByID(ctx context.Context, id string) (*entities.TrainingCenter, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *TrainingCenterRepository) FindByName(ctx context.Context, name string) (*entities.TrainingCenter, error) {
	return r.findOne(ctx, "nome = ?", name)
}

func (r *TrainingCenterRepository) List(ctx context.Context) ([]*entities.TrainingCenter, error) {
	var models []*TrainingCenterModel

	db := dbFromContext(ctx, r.db)
	if err := db.Order("pk_id").Find(&models).Error; err != nil {
		return nil, err
	}

	centers := make([]*entities.TrainingCenter, 0, len(models))
	for _, model := range models {
		centers = append(centers, toTrainingCenterEntity(model))
	}
	return centers, nil
}

func (r *TrainingCenterRepository) findOne(ctx context.Context, query string, arg any) (*entities.TrainingCenter, error) {
	var model TrainingCenterModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toTrainingCenterEntity(&model), nil
}

func toTrainingCenterModel(center *entities.TrainingCenter) *TrainingCenterModel {
	return &TrainingCenterModel{
		PKID:    center.InternalID,
		ID:      center.ID,
		Name:    center.Name,
		Address: center.Address,
		Phone:   center.Phone,
	}
}

func toTrainingCenterEntity(model *TrainingCenterModel) *entities.TrainingCenter {
	return &entities.TrainingCenter{
		InternalID: model.PKID,
		ID:         model.ID,
		Name:       model.Name,
		Address:    model.Address,
		Phone:      model.Phone,
	}
}
