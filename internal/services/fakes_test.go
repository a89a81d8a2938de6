package services

import (
	"context"
	"time"

	"frota_admin/internal/models"
	"frota_admin/internal/repository"
)

// In-memory repositories backing the service tests.

type fakeVehicleRepo struct {
	nextID   uint
	vehicles map[uint]models.Vehicle
	order    []uint
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{vehicles: make(map[uint]models.Vehicle)}
}

func (r *fakeVehicleRepo) Find(ctx context.Context) ([]models.Vehicle, error) {
	out := make([]models.Vehicle, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.vehicles[id])
	}
	return out, nil
}

func (r *fakeVehicleRepo) FindByID(ctx context.Context, id uint) (*models.Vehicle, error) {
	v, ok := r.vehicles[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (r *fakeVehicleRepo) Create(ctx context.Context, vehicle *models.Vehicle) error {
	r.nextID++
	vehicle.ID = r.nextID
	vehicle.CreatedAt = time.Now()
	r.vehicles[vehicle.ID] = *vehicle
	r.order = append(r.order, vehicle.ID)
	return nil
}

func (r *fakeVehicleRepo) Save(ctx context.Context, vehicle *models.Vehicle) error {
	r.vehicles[vehicle.ID] = *vehicle
	return nil
}

type fakeDriverRepo struct {
	nextID  uint
	drivers map[uint]models.Driver
	order   []uint
}

func newFakeDriverRepo() *fakeDriverRepo {
	return &fakeDriverRepo{drivers: make(map[uint]models.Driver)}
}

func (r *fakeDriverRepo) Find(ctx context.Context, filter repository.DriverFilter) ([]models.Driver, error) {
	var out []models.Driver
	for _, id := range r.order {
		d := r.drivers[id]
		if filter.Active != nil && d.Active != *filter.Active {
			continue
		}
		if filter.HasVehicle && d.VehicleID == nil {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (r *fakeDriverRepo) FindByID(ctx context.Context, id uint) (*models.Driver, error) {
	d, ok := r.drivers[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (r *fakeDriverRepo) Create(ctx context.Context, driver *models.Driver) error {
	r.nextID++
	driver.ID = r.nextID
	driver.CreatedAt = time.Now()
	r.drivers[driver.ID] = *driver
	r.order = append(r.order, driver.ID)
	return nil
}

func (r *fakeDriverRepo) Save(ctx context.Context, driver *models.Driver) error {
	r.drivers[driver.ID] = *driver
	return nil
}

// fakeArrivalRepo expands Driver/Vehicle references from its sibling repos,
// like the gorm implementation's preloads. A reference that no longer
// resolves comes back nil.
type fakeArrivalRepo struct {
	nextID   uint
	arrivals map[uint]models.Arrival
	order    []uint
	drivers  *fakeDriverRepo
	vehicles *fakeVehicleRepo
}

func newFakeArrivalRepo(drivers *fakeDriverRepo, vehicles *fakeVehicleRepo) *fakeArrivalRepo {
	return &fakeArrivalRepo{
		arrivals: make(map[uint]models.Arrival),
		drivers:  drivers,
		vehicles: vehicles,
	}
}

func (r *fakeArrivalRepo) expand(a models.Arrival) models.Arrival {
	a.Driver, _ = r.drivers.FindByID(context.Background(), a.DriverID)
	a.Vehicle, _ = r.vehicles.FindByID(context.Background(), a.VehicleID)
	return a
}

func (r *fakeArrivalRepo) Find(ctx context.Context, filter repository.ArrivalFilter) ([]models.Arrival, error) {
	var out []models.Arrival
	for _, id := range r.order {
		a := r.arrivals[id]
		if filter.Filled != nil && a.Filled != *filter.Filled {
			continue
		}
		if filter.DateStart != nil && a.CreatedAt.Before(*filter.DateStart) {
			continue
		}
		if filter.DateEnd != nil && a.CreatedAt.After(*filter.DateEnd) {
			continue
		}
		out = append(out, r.expand(a))
	}
	return out, nil
}

func (r *fakeArrivalRepo) FindByID(ctx context.Context, id uint) (*models.Arrival, error) {
	a, ok := r.arrivals[id]
	if !ok {
		return nil, nil
	}
	expanded := r.expand(a)
	return &expanded, nil
}

func (r *fakeArrivalRepo) Create(ctx context.Context, arrival *models.Arrival) error {
	r.nextID++
	arrival.ID = r.nextID
	arrival.CreatedAt = time.Now()
	stored := *arrival
	stored.Driver = nil
	stored.Vehicle = nil
	r.arrivals[arrival.ID] = stored
	r.order = append(r.order, arrival.ID)
	return nil
}

func (r *fakeArrivalRepo) Save(ctx context.Context, arrival *models.Arrival) error {
	stored := *arrival
	stored.Driver = nil
	stored.Vehicle = nil
	r.arrivals[arrival.ID] = stored
	return nil
}

// newFixture wires the three fakes and the services under test.
type fixture struct {
	vehicles *fakeVehicleRepo
	drivers  *fakeDriverRepo
	arrivals *fakeArrivalRepo

	vehicleService *VehicleService
	driverService  *DriverService
	arrivalService *ArrivalService
	travelService  *TravelService
}

func newFixture() *fixture {
	vehicles := newFakeVehicleRepo()
	drivers := newFakeDriverRepo()
	arrivals := newFakeArrivalRepo(drivers, vehicles)
	return &fixture{
		vehicles:       vehicles,
		drivers:        drivers,
		arrivals:       arrivals,
		vehicleService: NewVehicleService(vehicles),
		driverService:  NewDriverService(drivers, vehicles),
		arrivalService: NewArrivalService(arrivals, drivers, vehicles),
		travelService:  NewTravelService(arrivals),
	}
}

func (f *fixture) addVehicle(t int) *models.Vehicle {
	v := &models.Vehicle{ModelName: "Scania R450", Type: t}
	_ = f.vehicles.Create(context.Background(), v)
	return v
}

func (f *fixture) addDriver(name string) *models.Driver {
	d := &models.Driver{
		CPF:       "12345678900",
		Name:      name,
		Phone:     "11999999999",
		Birthday:  "1990-04-12",
		Gender:    "M",
		CNHNumber: "987654321",
		CNHType:   "E",
		Active:    true,
	}
	_ = f.drivers.Create(context.Background(), d)
	return d
}
