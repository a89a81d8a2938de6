package services

import (
	"context"

	"frota_admin/internal/models"
	"frota_admin/internal/repository"
)

// ArrivalService validates the driver/vehicle references of an arrival and
// persists it. Reference checks and the following write are two separate
// store calls; a concurrent removal of the referenced entity in between is
// not detected.
type ArrivalService struct {
	Arrivals repository.ArrivalRepository
	Drivers  repository.DriverRepository
	Vehicles repository.VehicleRepository
}

func NewArrivalService(arrivals repository.ArrivalRepository, drivers repository.DriverRepository, vehicles repository.VehicleRepository) *ArrivalService {
	return &ArrivalService{Arrivals: arrivals, Drivers: drivers, Vehicles: vehicles}
}

type CreateArrivalParams struct {
	DriverID    uint
	VehicleID   uint
	Filled      bool
	Origin      Coordinate
	Destination Coordinate
}

// UpdateArrivalParams carries a partial update: nil fields stay untouched.
type UpdateArrivalParams struct {
	DriverID    *uint
	VehicleID   *uint
	Filled      *bool
	Origin      *Coordinate
	Destination *Coordinate
}

// Create persists a new arrival. The vehicle reference is resolved before
// the driver reference, so when both ids are bad the vehicle error wins.
func (s *ArrivalService) Create(ctx context.Context, params CreateArrivalParams) (*models.Arrival, error) {
	vehicle, err := s.Vehicles.FindByID(ctx, params.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, ErrVehicleNotFound
	}

	driver, err := s.Drivers.FindByID(ctx, params.DriverID)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, ErrDriverNotFound
	}

	arrival := models.Arrival{
		Filled:      params.Filled,
		DriverID:    driver.ID,
		VehicleID:   vehicle.ID,
		Origin:      flatCoords(params.Origin),
		Destination: flatCoords(params.Destination),
	}
	if err := s.Arrivals.Create(ctx, &arrival); err != nil {
		return nil, err
	}

	arrival.Driver = driver
	arrival.Vehicle = vehicle
	return &arrival, nil
}

// Update applies the supplied fields to an existing arrival. CreatedAt is
// never touched.
func (s *ArrivalService) Update(ctx context.Context, id uint, params UpdateArrivalParams) (*models.Arrival, error) {
	arrival, err := s.Arrivals.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if arrival == nil {
		return nil, ErrArrivalNotFound
	}

	if params.VehicleID != nil {
		vehicle, err := s.Vehicles.FindByID(ctx, *params.VehicleID)
		if err != nil {
			return nil, err
		}
		if vehicle == nil {
			return nil, ErrVehicleNotFound
		}
		arrival.VehicleID = vehicle.ID
		arrival.Vehicle = vehicle
	}

	if params.DriverID != nil {
		driver, err := s.Drivers.FindByID(ctx, *params.DriverID)
		if err != nil {
			return nil, err
		}
		if driver == nil {
			return nil, ErrDriverNotFound
		}
		arrival.DriverID = driver.ID
		arrival.Driver = driver
	}

	if params.Origin != nil {
		arrival.Origin = flatCoords(*params.Origin)
	}
	if params.Destination != nil {
		arrival.Destination = flatCoords(*params.Destination)
	}
	if params.Filled != nil {
		arrival.Filled = *params.Filled
	}

	if err := s.Arrivals.Save(ctx, arrival); err != nil {
		return nil, err
	}
	return arrival, nil
}

// List returns arrivals matching the filter, driver and vehicle expanded.
func (s *ArrivalService) List(ctx context.Context, filter repository.ArrivalFilter) ([]models.Arrival, error) {
	return s.Arrivals.Find(ctx, filter)
}
