package controllers

import (
	"context"
	"strconv"
	"time"

	"frota_admin/internal/models"
	"frota_admin/internal/repository"
	"frota_admin/internal/services"
)

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// Minimal in-memory repositories for handler tests.

type memVehicleRepo struct {
	nextID   uint
	vehicles map[uint]models.Vehicle
	order    []uint
}

func newMemVehicleRepo() *memVehicleRepo {
	return &memVehicleRepo{vehicles: make(map[uint]models.Vehicle)}
}

func (r *memVehicleRepo) Find(ctx context.Context) ([]models.Vehicle, error) {
	out := make([]models.Vehicle, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.vehicles[id])
	}
	return out, nil
}

func (r *memVehicleRepo) FindByID(ctx context.Context, id uint) (*models.Vehicle, error) {
	v, ok := r.vehicles[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (r *memVehicleRepo) Create(ctx context.Context, vehicle *models.Vehicle) error {
	r.nextID++
	vehicle.ID = r.nextID
	vehicle.CreatedAt = time.Now()
	r.vehicles[vehicle.ID] = *vehicle
	r.order = append(r.order, vehicle.ID)
	return nil
}

func (r *memVehicleRepo) Save(ctx context.Context, vehicle *models.Vehicle) error {
	r.vehicles[vehicle.ID] = *vehicle
	return nil
}

type memDriverRepo struct {
	nextID  uint
	drivers map[uint]models.Driver
	order   []uint
}

func newMemDriverRepo() *memDriverRepo {
	return &memDriverRepo{drivers: make(map[uint]models.Driver)}
}

func (r *memDriverRepo) Find(ctx context.Context, filter repository.DriverFilter) ([]models.Driver, error) {
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

func (r *memDriverRepo) FindByID(ctx context.Context, id uint) (*models.Driver, error) {
	d, ok := r.drivers[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (r *memDriverRepo) Create(ctx context.Context, driver *models.Driver) error {
	r.nextID++
	driver.ID = r.nextID
	driver.CreatedAt = time.Now()
	r.drivers[driver.ID] = *driver
	r.order = append(r.order, driver.ID)
	return nil
}

func (r *memDriverRepo) Save(ctx context.Context, driver *models.Driver) error {
	r.drivers[driver.ID] = *driver
	return nil
}

type memArrivalRepo struct {
	nextID   uint
	arrivals map[uint]models.Arrival
	order    []uint
	drivers  *memDriverRepo
	vehicles *memVehicleRepo
}

func newMemArrivalRepo(drivers *memDriverRepo, vehicles *memVehicleRepo) *memArrivalRepo {
	return &memArrivalRepo{
		arrivals: make(map[uint]models.Arrival),
		drivers:  drivers,
		vehicles: vehicles,
	}
}

func (r *memArrivalRepo) expand(a models.Arrival) models.Arrival {
	a.Driver, _ = r.drivers.FindByID(context.Background(), a.DriverID)
	a.Vehicle, _ = r.vehicles.FindByID(context.Background(), a.VehicleID)
	return a
}

func (r *memArrivalRepo) Find(ctx context.Context, filter repository.ArrivalFilter) ([]models.Arrival, error) {
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

func (r *memArrivalRepo) FindByID(ctx context.Context, id uint) (*models.Arrival, error) {
	a, ok := r.arrivals[id]
	if !ok {
		return nil, nil
	}
	expanded := r.expand(a)
	return &expanded, nil
}

func (r *memArrivalRepo) Create(ctx context.Context, arrival *models.Arrival) error {
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

func (r *memArrivalRepo) Save(ctx context.Context, arrival *models.Arrival) error {
	stored := *arrival
	stored.Driver = nil
	stored.Vehicle = nil
	r.arrivals[arrival.ID] = stored
	return nil
}

// testEnv wires fakes through the real services into the controllers.
type testEnv struct {
	vehicles *memVehicleRepo
	drivers  *memDriverRepo
	arrivals *memArrivalRepo

	vehicleCtl *VehicleController
	driverCtl  *DriverController
	arrivalCtl *ArrivalController
	travelCtl  *TravelController
}

func newTestEnv() *testEnv {
	vehicles := newMemVehicleRepo()
	drivers := newMemDriverRepo()
	arrivals := newMemArrivalRepo(drivers, vehicles)
	return &testEnv{
		vehicles:   vehicles,
		drivers:    drivers,
		arrivals:   arrivals,
		vehicleCtl: &VehicleController{Service: services.NewVehicleService(vehicles)},
		driverCtl:  &DriverController{Service: services.NewDriverService(drivers, vehicles)},
		arrivalCtl: &ArrivalController{Service: services.NewArrivalService(arrivals, drivers, vehicles)},
		travelCtl:  &TravelController{Service: services.NewTravelService(arrivals)},
	}
}

func (e *testEnv) seedVehicle(t int) models.Vehicle {
	v := models.Vehicle{ModelName: "Scania R450", Type: t}
	_ = e.vehicles.Create(context.Background(), &v)
	return v
}

func (e *testEnv) seedDriver(name string) models.Driver {
	d := models.Driver{
		CPF:       "12345678900",
		Name:      name,
		Phone:     "11999999999",
		Birthday:  "1990-04-12",
		Gender:    "M",
		CNHNumber: "987654321",
		CNHType:   "E",
		Active:    true,
	}
	_ = e.drivers.Create(context.Background(), &d)
	return d
}
