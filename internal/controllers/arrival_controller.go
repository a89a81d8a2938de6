package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"frota_admin/internal/repository"
	"frota_admin/internal/services"
)

type ArrivalController struct {
	Service *services.ArrivalService
}

type coordinateInput struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}

func (in coordinateInput) coordinate() services.Coordinate {
	return services.Coordinate{Latitude: *in.Latitude, Longitude: *in.Longitude}
}

type createArrivalInput struct {
	DriverID    *uint            `json:"driver_id" binding:"required"`
	VehicleID   *uint            `json:"vehicle_id" binding:"required"`
	Filled      bool             `json:"filled"`
	Origin      *coordinateInput `json:"origin" binding:"required"`
	Destination *coordinateInput `json:"destination" binding:"required"`
}

type updateArrivalInput struct {
	DriverID    *uint            `json:"driver_id"`
	VehicleID   *uint            `json:"vehicle_id"`
	Filled      *bool            `json:"filled"`
	Origin      *coordinateInput `json:"origin"`
	Destination *coordinateInput `json:"destination"`
}

const dateOnlyLayout = "2006-01-02"

// parseDateParam accepts an RFC3339 timestamp or a bare date. A bare date
// used as an upper bound is extended to the last instant of that day so the
// range stays inclusive on both ends.
func parseDateParam(value string, upperBound bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(dateOnlyLayout, value)
	if err != nil {
		return time.Time{}, err
	}
	if upperBound {
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return t, nil
}

// List returns arrivals with driver/vehicle expanded, optionally filtered by
// the `filled` 0/1 flag and an inclusive `date_start`/`date_end` range over
// the arrival timestamp.
func (ctl *ArrivalController) List(c *gin.Context) {
	filter := repository.ArrivalFilter{}

	switch c.Query("filled") {
	case "":
	case "0":
		filled := false
		filter.Filled = &filled
	case "1":
		filled := true
		filter.Filled = &filled
	default:
		respondError(c, http.StatusBadRequest, "Invalid filled flag, expected 0 or 1", nil)
		return
	}

	if value := c.Query("date_start"); value != "" {
		start, err := parseDateParam(value, false)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid date_start", nil)
			return
		}
		filter.DateStart = &start
	}
	if value := c.Query("date_end"); value != "" {
		end, err := parseDateParam(value, true)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid date_end", nil)
			return
		}
		filter.DateEnd = &end
	}

	arrivals, err := ctl.Service.List(c.Request.Context(), filter)
	if err != nil {
		logrus.WithError(err).Error("Error listing arrivals")
		respondError(c, http.StatusInternalServerError, "Failed to list arrivals", nil)
		return
	}
	c.JSON(http.StatusOK, arrivals)
}

func (ctl *ArrivalController) Create(c *gin.Context) {
	var input createArrivalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindingError(c, err)
		return
	}

	arrival, err := ctl.Service.Create(c.Request.Context(), services.CreateArrivalParams{
		DriverID:    *input.DriverID,
		VehicleID:   *input.VehicleID,
		Filled:      input.Filled,
		Origin:      input.Origin.coordinate(),
		Destination: input.Destination.coordinate(),
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrVehicleNotFound):
			respondError(c, http.StatusBadRequest, services.ErrVehicleNotFound.Error(), nil)
		case errors.Is(err, services.ErrDriverNotFound):
			respondError(c, http.StatusBadRequest, services.ErrDriverNotFound.Error(), nil)
		default:
			logrus.WithError(err).Error("Failed to create arrival")
			respondError(c, http.StatusInternalServerError, "Failed to create arrival", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, arrival)
}

func (ctl *ArrivalController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input updateArrivalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBindingError(c, err)
		return
	}

	params := services.UpdateArrivalParams{
		DriverID:  input.DriverID,
		VehicleID: input.VehicleID,
		Filled:    input.Filled,
	}
	if input.Origin != nil {
		origin := input.Origin.coordinate()
		params.Origin = &origin
	}
	if input.Destination != nil {
		destination := input.Destination.coordinate()
		params.Destination = &destination
	}

	arrival, err := ctl.Service.Update(c.Request.Context(), id, params)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrArrivalNotFound):
			respondError(c, http.StatusNotFound, services.ErrArrivalNotFound.Error(), nil)
		case errors.Is(err, services.ErrVehicleNotFound):
			respondError(c, http.StatusBadRequest, services.ErrVehicleNotFound.Error(), nil)
		case errors.Is(err, services.ErrDriverNotFound):
			respondError(c, http.StatusBadRequest, services.ErrDriverNotFound.Error(), nil)
		default:
			logrus.WithError(err).Error("Failed to update arrival")
			respondError(c, http.StatusInternalServerError, "Failed to update arrival", nil)
		}
		return
	}
	c.JSON(http.StatusOK, arrival)
}
