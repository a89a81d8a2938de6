package services

import (
	"context"

	"frota_admin/internal/models"
	"frota_admin/internal/repository"
)

type VehicleService struct {
	Vehicles repository.VehicleRepository
}

func NewVehicleService(vehicles repository.VehicleRepository) *VehicleService {
	return &VehicleService{Vehicles: vehicles}
}

type CreateVehicleParams struct {
	Model string
	Type  int
}

type UpdateVehicleParams struct {
	Model *string
	Type  *int
}

func (s *VehicleService) Create(ctx context.Context, params CreateVehicleParams) (*models.Vehicle, error) {
	vehicle := models.Vehicle{
		ModelName: params.Model,
		Type:      params.Type,
	}
	if err := s.Vehicles.Create(ctx, &vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (s *VehicleService) Update(ctx context.Context, id uint, params UpdateVehicleParams) (*models.Vehicle, error) {
	vehicle, err := s.Vehicles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, ErrVehicleNotFound
	}

	if params.Model != nil {
		vehicle.ModelName = *params.Model
	}
	if params.Type != nil {
		vehicle.Type = *params.Type
	}

	if err := s.Vehicles.Save(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

func (s *VehicleService) List(ctx context.Context) ([]models.Vehicle, error) {
	return s.Vehicles.Find(ctx)
}
