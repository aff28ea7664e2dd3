package geo

import (
	"math"
	"testing"

	"github.com/petcare-labs/pawsched/services/booking-service/internal/model"
)

func coord(v float64) *float64 { return &v }

func TestDistanceMiles(t *testing.T) {
	// Dadar to Thane, roughly 16 miles apart.
	d := DistanceMiles(19.0144, 72.8397, 19.2183, 72.9781)
	if d < 15 || d > 18 {
		t.Fatalf("distance = %.2f, expected roughly 16 miles", d)
	}
	if z := DistanceMiles(19.0144, 72.8397, 19.0144, 72.8397); math.Abs(z) > 1e-9 {
		t.Fatalf("distance to self = %f, want 0", z)
	}
}

func TestNearest_OrderRadiusAndMissingCoords(t *testing.T) {
	clinics := []model.Clinic{
		{ID: "far", Latitude: coord(19.2183), Longitude: coord(72.9781)},
		{ID: "near", Latitude: coord(19.0144), Longitude: coord(72.8397)},
		{ID: "nowhere"}, // no coordinates
		{ID: "remote", Latitude: coord(28.6139), Longitude: coord(77.2090)},
	}

	ranked := Nearest(clinics, 19.0596, 72.8295, 15, Filter{})
	if len(ranked) != 2 {
		t.Fatalf("expected 2 results, got %d", len(ranked))
	}
	if ranked[0].Clinic.ID != "near" || ranked[1].Clinic.ID != "far" {
		t.Fatalf("wrong order: %s, %s", ranked[0].Clinic.ID, ranked[1].Clinic.ID)
	}
	if ranked[0].DistanceMiles > ranked[1].DistanceMiles {
		t.Fatal("results must be sorted by non-decreasing distance")
	}
	for _, r := range ranked {
		if r.DistanceMiles > 15 {
			t.Fatalf("result %s exceeds radius: %.2f", r.Clinic.ID, r.DistanceMiles)
		}
	}
}

func TestNearest_CapabilityFilters(t *testing.T) {
	clinics := []model.Clinic{
		{ID: "er", IsEmergency: true, Latitude: coord(19.0144), Longitude: coord(72.8397)},
		{ID: "day", Latitude: coord(19.0150), Longitude: coord(72.8400)},
		{ID: "always", Is24Hour: true, Latitude: coord(19.0160), Longitude: coord(72.8410)},
	}

	onlyER := Nearest(clinics, 19.0596, 72.8295, 50, Filter{EmergencyOnly: true})
	if len(onlyER) != 1 || onlyER[0].Clinic.ID != "er" {
		t.Fatalf("emergency filter: got %v", onlyER)
	}

	only24 := Nearest(clinics, 19.0596, 72.8295, 50, Filter{Open24hOnly: true})
	if len(only24) != 1 || only24[0].Clinic.ID != "always" {
		t.Fatalf("24h filter: got %v", only24)
	}
}

func TestNearest_StableTies(t *testing.T) {
	clinics := []model.Clinic{
		{ID: "first", Latitude: coord(19.0144), Longitude: coord(72.8397)},
		{ID: "second", Latitude: coord(19.0144), Longitude: coord(72.8397)},
	}
	ranked := Nearest(clinics, 19.0596, 72.8295, 50, Filter{})
	if len(ranked) != 2 || ranked[0].Clinic.ID != "first" {
		t.Fatalf("ties must keep input order, got %v", ranked)
	}
}
