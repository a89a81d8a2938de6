package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	logrus "github.com/sirupsen/logrus"
	"github.com/twpayne/go-geom"
	gjson "github.com/twpayne/go-geom/encoding/geojson"

	"frota_admin/internal/services"
)

type TravelController struct {
	Service *services.TravelService
}

// travelGeoJSON mirrors services.Travel with the coordinate lists encoded as
// GeoJSON MultiPoint geometries.
type travelGeoJSON struct {
	Type         int             `json:"type"`
	Origins      json.RawMessage `json:"origins"`
	Destinations json.RawMessage `json:"destinations"`
}

// multiPointJSON packs stored [lng,lat] pairs into a GeoJSON MultiPoint.
// The storage order already matches GeoJSON position order.
func multiPointJSON(pairs []pq.Float64Array) (json.RawMessage, error) {
	multiPoint := geom.NewMultiPoint(geom.XY)
	for _, pair := range pairs {
		point := geom.NewPointFlat(geom.XY, []float64(pair))
		if err := multiPoint.Push(point); err != nil {
			return nil, err
		}
	}
	return gjson.Marshal(multiPoint)
}

func toTravelGeoJSON(travel services.Travel) (travelGeoJSON, error) {
	origins, err := multiPointJSON(travel.Origins)
	if err != nil {
		return travelGeoJSON{}, err
	}
	destinations, err := multiPointJSON(travel.Destinations)
	if err != nil {
		return travelGeoJSON{}, err
	}
	return travelGeoJSON{
		Type:         travel.Type,
		Origins:      origins,
		Destinations: destinations,
	}, nil
}

// List emits the travels report: arrivals grouped by vehicle type, ordered
// by type ascending. With ?format=geojson the coordinate lists come out as
// GeoJSON MultiPoints instead of raw pairs.
func (ctl *TravelController) List(c *gin.Context) {
	travels, err := ctl.Service.Aggregate(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("Error aggregating travels")
		respondError(c, http.StatusInternalServerError, "Failed to aggregate travels", nil)
		return
	}

	if c.Query("format") != "geojson" {
		c.JSON(http.StatusOK, travels)
		return
	}

	encoded := make([]travelGeoJSON, 0, len(travels))
	for _, travel := range travels {
		geo, err := toTravelGeoJSON(travel)
		if err != nil {
			logrus.WithError(err).Error("Error encoding travels as GeoJSON")
			respondError(c, http.StatusInternalServerError, "Failed to encode travels", nil)
			return
		}
		encoded = append(encoded, geo)
	}
	c.JSON(http.StatusOK, encoded)
}
