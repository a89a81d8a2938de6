package services

import (
	"context"

	"frota_admin/internal/models"
	"frota_admin/internal/repository"
)

type DriverService struct {
	Drivers  repository.DriverRepository
	Vehicles repository.VehicleRepository
}

func NewDriverService(drivers repository.DriverRepository, vehicles repository.VehicleRepository) *DriverService {
	return &DriverService{Drivers: drivers, Vehicles: vehicles}
}

type CreateDriverParams struct {
	CPF       string
	Name      string
	Phone     string
	Birthday  string
	Gender    string
	CNHNumber string
	CNHType   string
	VehicleID *uint
}

type UpdateDriverParams struct {
	CPF       *string
	Name      *string
	Phone     *string
	Birthday  *string
	Gender    *string
	CNHNumber *string
	CNHType   *string
	VehicleID *uint
	Active    *bool
}

// Create registers a driver. When a vehicle id is supplied it is resolved
// before the driver row is written, so a bad reference persists nothing.
func (s *DriverService) Create(ctx context.Context, params CreateDriverParams) (*models.Driver, error) {
	var vehicle *models.Vehicle
	if params.VehicleID != nil {
		var err error
		vehicle, err = s.Vehicles.FindByID(ctx, *params.VehicleID)
		if err != nil {
			return nil, err
		}
		if vehicle == nil {
			return nil, ErrVehicleNotFound
		}
	}

	driver := models.Driver{
		CPF:       params.CPF,
		Name:      params.Name,
		Phone:     params.Phone,
		Birthday:  params.Birthday,
		Gender:    params.Gender,
		CNHNumber: params.CNHNumber,
		CNHType:   params.CNHType,
		Active:    true,
	}
	if vehicle != nil {
		driver.VehicleID = &vehicle.ID
		driver.Vehicle = vehicle
	}

	if err := s.Drivers.Create(ctx, &driver); err != nil {
		return nil, err
	}
	return &driver, nil
}

// Update applies the supplied fields to an existing driver.
func (s *DriverService) Update(ctx context.Context, id uint, params UpdateDriverParams) (*models.Driver, error) {
	driver, err := s.Drivers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, ErrDriverNotFound
	}

	if params.VehicleID != nil {
		vehicle, err := s.Vehicles.FindByID(ctx, *params.VehicleID)
		if err != nil {
			return nil, err
		}
		if vehicle == nil {
			return nil, ErrVehicleNotFound
		}
		driver.VehicleID = &vehicle.ID
		driver.Vehicle = vehicle
	}

	if params.CPF != nil {
		driver.CPF = *params.CPF
	}
	if params.Name != nil {
		driver.Name = *params.Name
	}
	if params.Phone != nil {
		driver.Phone = *params.Phone
	}
	if params.Birthday != nil {
		driver.Birthday = *params.Birthday
	}
	if params.Gender != nil {
		driver.Gender = *params.Gender
	}
	if params.CNHNumber != nil {
		driver.CNHNumber = *params.CNHNumber
	}
	if params.CNHType != nil {
		driver.CNHType = *params.CNHType
	}
	if params.Active != nil {
		driver.Active = *params.Active
	}

	if err := s.Drivers.Save(ctx, driver); err != nil {
		return nil, err
	}
	return driver, nil
}

// Disable is the removal path: it flips Active to false and keeps the row.
func (s *DriverService) Disable(ctx context.Context, id uint) (*models.Driver, error) {
	inactive := false
	return s.Update(ctx, id, UpdateDriverParams{Active: &inactive})
}

func (s *DriverService) List(ctx context.Context, filter repository.DriverFilter) ([]models.Driver, error) {
	return s.Drivers.Find(ctx, filter)
}
