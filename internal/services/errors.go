package services

import "errors"

// Sentinel errors mapped to HTTP statuses by the controllers. A missing
// primary resource of an operation is distinct from a missing referenced
// entity; the controllers report the former as 404 and the latter as 400.
var (
	ErrVehicleNotFound = errors.New("Vehicle not found")
	ErrDriverNotFound  = errors.New("Driver not found")
	ErrArrivalNotFound = errors.New("Arrival not found")
)
