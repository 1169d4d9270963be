package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"wingman/internal/models/db_models"
	"wingman/pkg/utils"
)

type CatalogRepository interface {
	ListScenarios(ctx context.Context) ([]db_models.Scenario, error)
	FindScenarioByID(ctx context.Context, id string) (*db_models.Scenario, error)
	ListPersonas(ctx context.Context) ([]db_models.Persona, error)
	FindPersonaByID(ctx context.Context, id string) (*db_models.Persona, error)
	SeedIfEmpty(ctx context.Context, scenarios []db_models.Scenario, personas []db_models.Persona) error
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) ListScenarios(ctx context.Context) ([]db_models.Scenario, error) {
	if r.db == nil {
		return nil, utils.ErrStoreUnavailable
	}
	var scenarios []db_models.Scenario
	if err := r.db.WithContext(ctx).Order("id").Find(&scenarios).Error; err != nil {
		return nil, err
	}
	return scenarios, nil
}

func (r *catalogRepository) FindScenarioByID(ctx context.Context, id string) (*db_models.Scenario, error) {
	if r.db == nil {
		return nil, utils.ErrStoreUnavailable
	}
	var scenario db_models.Scenario
	err := r.db.WithContext(ctx).First(&scenario, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &scenario, nil
}

func (r *catalogRepository) ListPersonas(ctx context.Context) ([]db_models.Persona, error) {
	if r.db == nil {
		return nil, utils.ErrStoreUnavailable
	}
	var personas []db_models.Persona
	if err := r.db.WithContext(ctx).Order("id").Find(&personas).Error; err != nil {
		return nil, err
	}
	return personas, nil
}

func (r *catalogRepository) FindPersonaByID(ctx context.Context, id string) (*db_models.Persona, error) {
	if r.db == nil {
		return nil, utils.ErrStoreUnavailable
	}
	var persona db_models.Persona
	err := r.db.WithContext(ctx).First(&persona, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &persona, nil
}

func (r *catalogRepository) SeedIfEmpty(ctx context.Context, scenarios []db_models.Scenario, personas []db_models.Persona) error {
	if r.db == nil {
		return utils.ErrStoreUnavailable
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&db_models.Scenario{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		if err := r.db.WithContext(ctx).Create(&scenarios).Error; err != nil {
			return err
		}
	}

	if err := r.db.WithContext(ctx).Model(&db_models.Persona{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		if err := r.db.WithContext(ctx).Create(&personas).Error; err != nil {
			return err
		}
	}

	return nil
}
