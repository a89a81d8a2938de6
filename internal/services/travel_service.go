package services

import (
	"context"
	"sort"

	"github.com/lib/pq"

	"frota_admin/internal/repository"
)

// Travel is one aggregation group: every arrival of vehicles sharing a type,
// with origins[i] and destinations[i] coming from the same arrival.
type Travel struct {
	Type         int               `json:"type"`
	Origins      []pq.Float64Array `json:"origins"`
	Destinations []pq.Float64Array `json:"destinations"`
}

// TravelService derives the travels report from arrivals. Pure read, no
// side effects.
type TravelService struct {
	Arrivals repository.ArrivalRepository
}

func NewTravelService(arrivals repository.ArrivalRepository) *TravelService {
	return &TravelService{Arrivals: arrivals}
}

// Aggregate joins each arrival to its vehicle, groups the coordinate pairs
// by vehicle type and returns the non-empty groups sorted by type ascending.
// Within a group the pairs keep arrival insertion order. Arrivals whose
// vehicle no longer resolves are dropped, not errored.
func (s *TravelService) Aggregate(ctx context.Context) ([]Travel, error) {
	arrivals, err := s.Arrivals.Find(ctx, repository.ArrivalFilter{})
	if err != nil {
		return nil, err
	}

	groups := make(map[int]*Travel)
	for _, arrival := range arrivals {
		if arrival.Vehicle == nil {
			continue
		}
		group, ok := groups[arrival.Vehicle.Type]
		if !ok {
			group = &Travel{Type: arrival.Vehicle.Type}
			groups[arrival.Vehicle.Type] = group
		}
		group.Origins = append(group.Origins, arrival.Origin)
		group.Destinations = append(group.Destinations, arrival.Destination)
	}

	types := make([]int, 0, len(groups))
	for vehicleType := range groups {
		types = append(types, vehicleType)
	}
	sort.Ints(types)

	travels := make([]Travel, 0, len(groups))
	for _, vehicleType := range types {
		travels = append(travels, *groups[vehicleType])
	}
	return travels, nil
}
