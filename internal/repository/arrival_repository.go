package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"frota_admin/internal/models"
)

type gormArrivalRepository struct {
	db *gorm.DB
}

func NewArrivalRepository(db *gorm.DB) ArrivalRepository {
	return &gormArrivalRepository{db: db}
}

func (r *gormArrivalRepository) Find(ctx context.Context, filter ArrivalFilter) ([]models.Arrival, error) {
	query := r.db.WithContext(ctx).
		Preload("Driver").
		Preload("Vehicle").
		Order("id")
	if filter.Filled != nil {
		query = query.Where("filled = ?", *filter.Filled)
	}
	if filter.DateStart != nil {
		query = query.Where("created_at >= ?", *filter.DateStart)
	}
	if filter.DateEnd != nil {
		query = query.Where("created_at <= ?", *filter.DateEnd)
	}

	var arrivals []models.Arrival
	if err := query.Find(&arrivals).Error; err != nil {
		return nil, err
	}
	return arrivals, nil
}

func (r *gormArrivalRepository) FindByID(ctx context.Context, id uint) (*models.Arrival, error) {
	var arrival models.Arrival
	if err := r.db.WithContext(ctx).
		Preload("Driver").
		Preload("Vehicle").
		First(&arrival, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &arrival, nil
}

// Writes omit associations: the expanded Driver/Vehicle on an arrival are
// read-side conveniences, never written back through this table.
func (r *gormArrivalRepository) Create(ctx context.Context, arrival *models.Arrival) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(arrival).Error
}

func (r *gormArrivalRepository) Save(ctx context.Context, arrival *models.Arrival) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(arrival).Error
}
