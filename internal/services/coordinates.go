package services

import (
	"github.com/lib/pq"
	"github.com/twpayne/go-geom"
)

// Coordinate is the request-side shape of a geographic position.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// flatCoords converts a Coordinate to its stored form. Storage uses the
// geometry library's native XY axis order, so the pair comes out as
// [longitude, latitude] regardless of the request shape.
func flatCoords(c Coordinate) pq.Float64Array {
	point := geom.NewPointFlat(geom.XY, []float64{c.Longitude, c.Latitude})
	return pq.Float64Array(point.FlatCoords())
}
