// Command seed-clinics loads a demo clinic directory into a running
// booking-service through its HTTP API.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
)

type seedClinic struct {
	Name        string            `json:"name"`
	Address     string            `json:"address"`
	Latitude    *float64          `json:"latitude,omitempty"`
	Longitude   *float64          `json:"longitude,omitempty"`
	IsEmergency bool              `json:"is_emergency"`
	Is24Hour    bool              `json:"is_24_hour"`
	Hours       map[string]string `json:"hours"`
}

func coord(v float64) *float64 { return &v }

var demoClinics = []seedClinic{
	{
		Name:        "Paws & Claws Veterinary Clinic",
		Address:     "12 Hill Road, Bandra West, Mumbai",
		Latitude:    coord(19.0596),
		Longitude:   coord(72.8295),
		IsEmergency: false,
		Is24Hour:    false,
		Hours: map[string]string{
			"monday":    "9:00 AM - 6:00 PM",
			"tuesday":   "9:00 AM - 6:00 PM",
			"wednesday": "9:00 AM - 6:00 PM",
			"thursday":  "9:00 AM - 6:00 PM",
			"friday":    "9:00 AM - 6:00 PM",
			"saturday":  "10:00 AM - 4:00 PM",
			"sunday":    "Closed",
		},
	},
	{
		Name:        "Dadar Animal Hospital",
		Address:     "45 Gokhale Road, Dadar, Mumbai",
		Latitude:    coord(19.0144),
		Longitude:   coord(72.8397),
		IsEmergency: true,
		Is24Hour:    true,
		Hours: map[string]string{
			"monday":    "24 hours",
			"tuesday":   "24 hours",
			"wednesday": "24 hours",
			"thursday":  "24 hours",
			"friday":    "24 hours",
			"saturday":  "24 hours",
			"sunday":    "24 hours",
		},
	},
	{
		Name:        "Thane Pet Care Centre",
		Address:     "8 Eastern Express Highway, Thane",
		Latitude:    coord(19.2183),
		Longitude:   coord(72.9781),
		IsEmergency: true,
		Is24Hour:    false,
		Hours: map[string]string{
			"monday":    "8:00 AM - 9:00 PM",
			"tuesday":   "8:00 AM - 9:00 PM",
			"wednesday": "8:00 AM - 9:00 PM",
			"thursday":  "8:00 AM - 9:00 PM",
			"friday":    "8:00 AM - 9:00 PM",
			"saturday":  "8:00 AM - 9:00 PM",
			"sunday":    "10:00 AM - 2:00 PM",
		},
	},
	{
		Name:    "Andheri Bird & Exotic Clinic",
		Address: "203 Veera Desai Road, Andheri West, Mumbai",
		// No coordinates on purpose; exercises the proximity-search skip path.
		Hours: map[string]string{
			"monday":    "11:00 AM - 7:00 PM",
			"wednesday": "11:00 AM - 7:00 PM",
			"friday":    "11:00 AM - 7:00 PM",
		},
	},
}

func main() {
	baseURL := flag.String("base-url", getenv("BASE_URL", "http://localhost:8083"), "booking-service base url")
	flag.Parse()

	endpoint := strings.TrimRight(*baseURL, "/") + "/api/v1/clinics"
	for _, c := range demoClinics {
		body, err := json.Marshal(c)
		if err != nil {
			fatal(err.Error())
		}
		resp, err := http.Post(endpoint, "application/json", bytes.NewReader(body))
		if err != nil {
			fatal(err.Error())
		}
		var created struct {
			ClinicID string `json:"id"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&created)
		resp.Body.Close()
		if resp.StatusCode != http.StatusCreated {
			fatal(fmt.Sprintf("seeding %q failed: status=%d", c.Name, resp.StatusCode))
		}
		fmt.Printf("seeded %q clinic_id=%s\n", c.Name, created.ClinicID)
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func fatal(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(2)
}
