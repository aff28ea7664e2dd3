// Package geo ranks clinics by great-circle distance.
package geo

import (
	"math"
	"sort"

	"github.com/petcare-labs/pawsched/services/booking-service/internal/model"
)

const earthRadiusMiles = 3959.0

// DistanceMiles is the haversine great-circle distance between two points.
func DistanceMiles(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMiles * c
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Filter narrows proximity results by clinic capabilities.
type Filter struct {
	EmergencyOnly bool
	Open24hOnly   bool
}

func (f Filter) matches(c model.Clinic) bool {
	if f.EmergencyOnly && !c.IsEmergency {
		return false
	}
	if f.Open24hOnly && !c.Is24Hour {
		return false
	}
	return true
}

// Ranked pairs a clinic with its distance from the query point.
type Ranked struct {
	Clinic        model.Clinic
	DistanceMiles float64
}

// Nearest ranks clinics by distance from (lat, lon), ascending. Clinics
// without coordinates, beyond radiusMiles, or failing the capability filter
// are dropped. Ties keep input order. Pure; safe for concurrent use.
func Nearest(clinics []model.Clinic, lat, lon, radiusMiles float64, filter Filter) []Ranked {
	var ranked []Ranked
	for _, c := range clinics {
		if c.Latitude == nil || c.Longitude == nil {
			continue
		}
		if !filter.matches(c) {
			continue
		}
		d := DistanceMiles(lat, lon, *c.Latitude, *c.Longitude)
		if d > radiusMiles {
			continue
		}
		ranked = append(ranked, Ranked{Clinic: c, DistanceMiles: d})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceMiles < ranked[j].DistanceMiles
	})
	return ranked
}
