package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"frota_admin/internal/services"
)

type VehicleController struct {
	Service *services.VehicleService
}

type createVehicleInput struct {
	Model string `json:"model" binding:"required"`
	Type  *int   `json:"type" binding:"required,min=1,max=5"`
}

type updateVehicleInput struct {
	Model *string `json:"model"`
	Type  *int    `json:"type" binding:"omitempty,min=1,max=5"`
}

func (ctl *VehicleController) List(c *gin.Context) {
	vehicles, err := ctl.Service.List(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("Error listing vehicles")
		respondError(c, http.StatusInternalServerError, "Failed to list vehicles", nil)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

func (ctl *VehicleController) Create(c *gin.Context) {
	var input createVehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindingError(c, err)
		return
	}

	vehicle, err := ctl.Service.Create(c.Request.Context(), services.CreateVehicleParams{
		Model: input.Model,
		Type:  *input.Type,
	})
	if err != nil {
		logrus.WithError(err).Error("Failed to create vehicle")
		respondError(c, http.StatusInternalServerError, "Failed to create vehicle", nil)
		return
	}
	c.JSON(http.StatusCreated, vehicle)
}

func (ctl *VehicleController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input updateVehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindingError(c, err)
		return
	}

	vehicle, err := ctl.Service.Update(c.Request.Context(), id, services.UpdateVehicleParams{
		Model: input.Model,
		Type:  input.Type,
	})
	if err != nil {
		if errors.Is(err, services.ErrVehicleNotFound) {
			respondError(c, http.StatusNotFound, services.ErrVehicleNotFound.Error(), nil)
			return
		}
		logrus.WithError(err).Error("Failed to update vehicle")
		respondError(c, http.StatusInternalServerError, "Failed to update vehicle", nil)
		return
	}
	c.JSON(http.StatusOK, vehicle)
}
