package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"frota_admin/internal/models"
)

type gormDriverRepository struct {
	db *gorm.DB
}

func NewDriverRepository(db *gorm.DB) DriverRepository {
	return &gormDriverRepository{db: db}
}

func (r *gormDriverRepository) Find(ctx context.Context, filter DriverFilter) ([]models.Driver, error) {
	query := r.db.WithContext(ctx).Preload("Vehicle").Order("id")
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}
	if filter.HasVehicle {
		query = query.Where("vehicle_id IS NOT NULL")
	}

	var drivers []models.Driver
	if err := query.Find(&drivers).Error; err != nil {
		return nil, err
	}
	return drivers, nil
}

func (r *gormDriverRepository) FindByID(ctx context.Context, id uint) (*models.Driver, error) {
	var driver models.Driver
	if err := r.db.WithContext(ctx).Preload("Vehicle").First(&driver, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &driver, nil
}

func (r *gormDriverRepository) Create(ctx context.Context, driver *models.Driver) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(driver).Error
}

func (r *gormDriverRepository) Save(ctx context.Context, driver *models.Driver) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(driver).Error
}
