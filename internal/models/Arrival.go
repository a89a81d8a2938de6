// internal/models/arrival.go
package models

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Arrival records a driver/vehicle pair reaching the terminal, loaded or
// empty, with its origin and destination coordinates.
//
// Origin and Destination are stored as [longitude, latitude] pairs. The API
// accepts {latitude, longitude} objects and the write path swaps the axes;
// that storage order is a fixed convention and every consumer relies on it.
type Arrival struct {
	gorm.Model
	Filled      bool            `json:"filled" gorm:"default:false"`
	DriverID    uint            `json:"driver_id" gorm:"index"`
	VehicleID   uint            `json:"vehicle_id" gorm:"index"`
	Driver      *Driver         `json:"driver,omitempty" gorm:"foreignKey:DriverID"`
	Vehicle     *Vehicle        `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID"`
	Origin      pq.Float64Array `json:"origin" gorm:"type:float8[]"`
	Destination pq.Float64Array `json:"destination" gorm:"type:float8[]"`
}
