// internal/models/driver.go
package models

import (
	"gorm.io/gorm"
)

// Driver is a registered driver. A driver owns at most one vehicle and is
// never physically deleted: the admin workflow flips Active to false instead.
type Driver struct {
	gorm.Model
	CPF       string   `json:"cpf"`
	Name      string   `json:"name"`
	Phone     string   `json:"phone"`
	Birthday  string   `json:"birthday"`
	Gender    string   `json:"gender"` // "F", "M" or "O"
	CNHNumber string   `json:"cnh_number"`
	CNHType   string   `json:"cnh_type"`
	VehicleID *uint    `json:"vehicle_id" gorm:"index"`
	Vehicle   *Vehicle `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID"`
	Active    bool     `json:"active" gorm:"default:true"`
}
