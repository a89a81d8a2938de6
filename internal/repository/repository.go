// Package repository defines the persistence boundaries for each entity.
// Services receive these interfaces instead of a database handle, so the
// gorm-backed implementations below can be swapped for in-memory fakes in
// tests.
package repository

import (
	"context"
	"time"

	"frota_admin/internal/models"
)

// Lookups return (nil, nil) when no row matches: a missing id is a normal
// outcome for the callers, not an error.

type VehicleRepository interface {
	Find(ctx context.Context) ([]models.Vehicle, error)
	FindByID(ctx context.Context, id uint) (*models.Vehicle, error)
	Create(ctx context.Context, vehicle *models.Vehicle) error
	Save(ctx context.Context, vehicle *models.Vehicle) error
}

// DriverFilter restricts Find results. Nil / false fields are ignored.
type DriverFilter struct {
	Active     *bool
	HasVehicle bool
}

type DriverRepository interface {
	Find(ctx context.Context, filter DriverFilter) ([]models.Driver, error)
	FindByID(ctx context.Context, id uint) (*models.Driver, error)
	Create(ctx context.Context, driver *models.Driver) error
	Save(ctx context.Context, driver *models.Driver) error
}

// ArrivalFilter restricts Find results. Both date bounds are inclusive.
type ArrivalFilter struct {
	Filled    *bool
	DateStart *time.Time
	DateEnd   *time.Time
}

// ArrivalRepository loads arrivals with their Driver and Vehicle references
// expanded. Find returns rows in insertion order.
type ArrivalRepository interface {
	Find(ctx context.Context, filter ArrivalFilter) ([]models.Arrival, error)
	FindByID(ctx context.Context, id uint) (*models.Arrival, error)
	Create(ctx context.Context, arrival *models.Arrival) error
	Save(ctx context.Context, arrival *models.Arrival) error
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}
