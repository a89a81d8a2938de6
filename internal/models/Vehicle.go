// internal/models/vehicle.go
package models

import (
	"encoding/json"

	"gorm.io/gorm"
)

// Vehicle type codes. The enumeration is closed: 1..5.
const (
	VehicleTypeThreeQuarterTruck = 1
	VehicleTypeTocoTruck         = 2
	VehicleTypeTruckTruck        = 3
	VehicleTypeSimpleTrailer     = 4
	VehicleTypeExtendedTrailer   = 5
)

var vehicleTypeTitles = map[int]string{
	VehicleTypeThreeQuarterTruck: "3/4 truck",
	VehicleTypeTocoTruck:         "toco truck",
	VehicleTypeTruckTruck:        "truck-truck",
	VehicleTypeSimpleTrailer:     "simple trailer",
	VehicleTypeExtendedTrailer:   "extended-axle trailer",
}

type Vehicle struct {
	gorm.Model
	ModelName string `json:"model" gorm:"column:model"`
	Type      int    `json:"type"`
}

// TypeLabel returns the display title for the vehicle's type code,
// or an empty string for a code outside the enumeration.
func (v Vehicle) TypeLabel() string {
	return vehicleTypeTitles[v.Type]
}

// MarshalJSON adds the computed type_label next to the stored fields.
func (v Vehicle) MarshalJSON() ([]byte, error) {
	type plain Vehicle
	return json.Marshal(struct {
		plain
		TypeLabel string `json:"type_label"`
	}{plain(v), v.TypeLabel()})
}
