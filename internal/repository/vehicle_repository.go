package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"frota_admin/internal/models"
)

type gormVehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository returns a VehicleRepository backed by the given
// gorm connection.
func NewVehicleRepository(db *gorm.DB) VehicleRepository {
	return &gormVehicleRepository{db: db}
}

func (r *gormVehicleRepository) Find(ctx context.Context) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := r.db.WithContext(ctx).Order("id").Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *gormVehicleRepository) FindByID(ctx context.Context, id uint) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := r.db.WithContext(ctx).First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vehicle, nil
}

func (r *gormVehicleRepository) Create(ctx context.Context, vehicle *models.Vehicle) error {
	return r.db.WithContext(ctx).Create(vehicle).Error
}

func (r *gormVehicleRepository) Save(ctx context.Context, vehicle *models.Vehicle) error {
	return r.db.WithContext(ctx).Save(vehicle).Error
}
