package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"frota_admin/internal/repository"
	"frota_admin/internal/services"
)

type DriverController struct {
	Service *services.DriverService
}

// The optional vehicle reference arrives under the "vehicle" key, the shape
// the admin UI sends.
type createDriverInput struct {
	CPF       string `json:"cpf" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Birthday  string `json:"birthday" binding:"required"`
	Gender    string `json:"gender" binding:"required,oneof=F M O"`
	CNHNumber string `json:"cnh_number" binding:"required"`
	CNHType   string `json:"cnh_type" binding:"required"`
	Vehicle   *uint  `json:"vehicle"`
}

type updateDriverInput struct {
	CPF       *string `json:"cpf"`
	Name      *string `json:"name"`
	Phone     *string `json:"phone"`
	Birthday  *string `json:"birthday"`
	Gender    *string `json:"gender" binding:"omitempty,oneof=F M O"`
	CNHNumber *string `json:"cnh_number"`
	CNHType   *string `json:"cnh_type"`
	Vehicle   *uint   `json:"vehicle"`
	Active    *bool   `json:"active"`
}

// List returns drivers, optionally restricted by the `active` and `vehicle`
// query flags. Each flag only applies when its value is the literal "1".
func (ctl *DriverController) List(c *gin.Context) {
	filter := repository.DriverFilter{}
	if c.Query("active") == "1" {
		active := true
		filter.Active = &active
	}
	if c.Query("vehicle") == "1" {
		filter.HasVehicle = true
	}

	drivers, err := ctl.Service.List(c.Request.Context(), filter)
	if err != nil {
		logrus.WithError(err).Error("Error listing drivers")
		respondError(c, http.StatusInternalServerError, "Failed to list drivers", nil)
		return
	}
	c.JSON(http.StatusOK, drivers)
}

func (ctl *DriverController) Create(c *gin.Context) {
	var input createDriverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindingError(c, err)
		return
	}

	driver, err := ctl.Service.Create(c.Request.Context(), services.CreateDriverParams{
		CPF:       input.CPF,
		Name:      input.Name,
		Phone:     input.Phone,
		Birthday:  input.Birthday,
		Gender:    input.Gender,
		CNHNumber: input.CNHNumber,
		CNHType:   input.CNHType,
		VehicleID: input.Vehicle,
	})
	if err != nil {
		if errors.Is(err, services.ErrVehicleNotFound) {
			respondError(c, http.StatusBadRequest, services.ErrVehicleNotFound.Error(), nil)
			return
		}
		logrus.WithError(err).Error("Failed to create driver")
		respondError(c, http.StatusInternalServerError, "Failed to create driver", nil)
		return
	}
	c.JSON(http.StatusCreated, driver)
}

func (ctl *DriverController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input updateDriverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindingError(c, err)
		return
	}

	driver, err := ctl.Service.Update(c.Request.Context(), id, services.UpdateDriverParams{
		CPF:       input.CPF,
		Name:      input.Name,
		Phone:     input.Phone,
		Birthday:  input.Birthday,
		Gender:    input.Gender,
		CNHNumber: input.CNHNumber,
		CNHType:   input.CNHType,
		VehicleID: input.Vehicle,
		Active:    input.Active,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDriverNotFound):
			respondError(c, http.StatusNotFound, services.ErrDriverNotFound.Error(), nil)
		case errors.Is(err, services.ErrVehicleNotFound):
			// Referenced-entity miss: client input error, consistent with the
			// create path.
			respondError(c, http.StatusBadRequest, services.ErrVehicleNotFound.Error(), nil)
		default:
			logrus.WithError(err).Error("Failed to update driver")
			respondError(c, http.StatusInternalServerError, "Failed to update driver", nil)
		}
		return
	}
	c.JSON(http.StatusOK, driver)
}

// Disable soft-disables a driver; the row stays retrievable by id and in
// unfiltered lists.
func (ctl *DriverController) Disable(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	driver, err := ctl.Service.Disable(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrDriverNotFound) {
			respondError(c, http.StatusNotFound, services.ErrDriverNotFound.Error(), nil)
			return
		}
		logrus.WithError(err).Error("Failed to disable driver")
		respondError(c, http.StatusInternalServerError, "Failed to disable driver", nil)
		return
	}
	c.JSON(http.StatusOK, driver)
}
