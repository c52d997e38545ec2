package app_test

import (
	"testing"

	"travel_docs/internal/app"
)

func TestMapTravel_AliasFields(t *testing.T) {
	payload := map[string]any{
		"travelId":  "tc-8841",
		"tripName":  "Rondreis Andalusië",
		"countries": []any{"Spanje"},
		"aiSummary": "Acht dagen langs Sevilla, Córdoba en Granada.",
		"heroImage": "https://img/andalusia.jpg",
		"destinations": []any{
			map[string]any{"city": "Sevilla", "countryName": "Spanje"},
			map[string]any{"name": "Granada", "country": "Spanje"},
		},
		"hotels": []any{map[string]any{
			"hotelName":           "Hotel Alfonso XIII",
			"stars":               float64(5),
			"mealPlanDescription": "Half Board",
			"roomType":            "Deluxe kamer",
			"nights":              "4",
			"price":               "1899,50",
			"pricePerNight":       float64(474.88),
			"images":              []any{map[string]any{"url": "https://img/alfonso.jpg"}, "https://img/alfonso-2.jpg"},
			"facilities": map[string]any{
				"Wellness": []any{"Spa", map[string]any{"name": "Sauna"}, float64(7)},
				"Algemeen": []any{"WiFi"},
				"Leeg":     []any{float64(1)},
			},
		}},
		"flights": []any{map[string]any{
			"departureCity": "AMS",
			"arrivalCity":   "SVQ",
			"airline":       "Transavia",
			"flightNumber":  "HV6031",
			"departureDate": "2026-09-12",
			"departureTime": "07:15",
			"arrivalTime":   "10:05",
		}},
		"transfers": []any{map[string]any{
			"description": "Privétransfer luchthaven - hotel",
			"pickup":      "Sevilla Airport",
		}},
		"activities": []any{map[string]any{
			"title":        "Alhambra met gids",
			"description":  "Rondleiding door de paleizen.",
			"city":         "Granada",
			"duration":     "3",
			"durationType": "uur",
		}},
	}

	rec := app.MapTravel(payload)

	if rec.ID != "tc-8841" || rec.Title != "Rondreis Andalusië" {
		t.Fatalf("travel header: %+v", rec)
	}
	if rec.HeroImage != "https://img/andalusia.jpg" || rec.AISummary == "" {
		t.Fatalf("summary/hero: %+v", rec)
	}
	if len(rec.RawJSON) == 0 {
		t.Fatal("raw payload must be preserved")
	}

	if len(rec.Destinations) != 2 {
		t.Fatalf("destinations: %+v", rec.Destinations)
	}
	if rec.Destinations[0].Name != "Sevilla" || rec.Destinations[0].Country != "Spanje" {
		t.Fatalf("destination aliases: %+v", rec.Destinations[0])
	}

	if len(rec.Hotels) != 1 {
		t.Fatalf("hotels: %+v", rec.Hotels)
	}
	h := rec.Hotels[0]
	if h.Name != "Hotel Alfonso XIII" || h.Stars() != 5 {
		t.Fatalf("hotel name/stars: %+v", h)
	}
	if h.MealPlan != "Half Board" {
		t.Fatalf("mealPlanDescription fallback failed: %q", h.MealPlan)
	}
	if h.Nights != 4 {
		t.Fatalf("string nights not parsed: %d", h.Nights)
	}
	if h.Price != 1899.5 {
		t.Fatalf("comma-decimal price not parsed: %v", h.Price)
	}
	if len(h.Images) != 2 || h.Images[0] != "https://img/alfonso.jpg" {
		t.Fatalf("image objects not unwrapped: %v", h.Images)
	}
	if got := h.Facilities["Wellness"]; len(got) != 2 || got[0] != "Spa" || got[1] != "Sauna" {
		t.Fatalf("facility entries: %v", h.Facilities)
	}
	if _, ok := h.Facilities["Leeg"]; ok {
		t.Fatalf("group with no usable entries must be dropped: %v", h.Facilities)
	}

	if len(rec.Flights) != 1 {
		t.Fatalf("flights: %+v", rec.Flights)
	}
	f := rec.Flights[0]
	if f.Origin != "AMS" || f.Target != "SVQ" || f.Company != "Transavia" || f.TransportNumber != "HV6031" {
		t.Fatalf("flight aliases: %+v", f)
	}

	if len(rec.Transfers) != 1 || rec.Transfers[0].Origin != "Sevilla Airport" {
		t.Fatalf("transfers: %+v", rec.Transfers)
	}
	if len(rec.Activities) != 1 || rec.Activities[0].Name != "Alhambra met gids" {
		t.Fatalf("activities: %+v", rec.Activities)
	}
}

func TestMapTravel_NumericStarCategory(t *testing.T) {
	rec := app.MapTravel(map[string]any{
		"id": "t1",
		"hotels": []any{
			map[string]any{"name": "Hotel A", "stars": float64(4)},
			map[string]any{"name": "Hotel B", "category": "4 estrellas"},
			map[string]any{"name": "Hotel C", "category": "12"},
		},
	})
	if got := rec.Hotels[0].Stars(); got != 4 {
		t.Fatalf("numeric stars = %d, want 4", got)
	}
	if got := rec.Hotels[1].Stars(); got != 4 {
		t.Fatalf("textual stars = %d, want 4", got)
	}
	if got := rec.Hotels[2].Stars(); got != 5 {
		t.Fatalf("stars must clamp to 5, got %d", got)
	}
}

func TestMapTravel_SingleImageFallback(t *testing.T) {
	rec := app.MapTravel(map[string]any{
		"id": "t1",
		"hotels": []any{
			map[string]any{"name": "Hotel A", "imageUrl": "https://img/a.jpg"},
		},
	})
	if got := rec.Hotels[0].Images; len(got) != 1 || got[0] != "https://img/a.jpg" {
		t.Fatalf("single image field must seed the slice, got %v", got)
	}
}
