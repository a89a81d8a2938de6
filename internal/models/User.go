package models

import "gorm.io/gorm"

// User is an admin account able to authenticate against the API.
type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"unique"`
	Password string `json:"-"`
}
