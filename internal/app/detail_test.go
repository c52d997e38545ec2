package app_test

import (
	"sort"
	"testing"

	"travel_docs/internal/app"
	"travel_docs/internal/domain"
)

func hotelResult() domain.SearchResult {
	return domain.SearchResult{
		Type:     domain.CategoryHotel,
		ID:       "t1:hotel:0",
		Name:     "Hotel Sacher",
		Stars:    5,
		Location: "Wenen",
		Subtitle: "Wenen, Oostenrijk",
		Images:   []string{"https://img/1.jpg", "https://img/2.jpg", "https://img/3.jpg"},
		Image:    "https://img/1.jpg",
		MealPlan: "BB",
		Nights:   3,
		Price:    1250,
		Facilities: map[string][]string{
			"Algemeen": {"WiFi", "Lift"},
			"Wellness": {"Spa", "WiFi"},
		},
	}
}

func TestProjectDetail_HotelOnly(t *testing.T) {
	if _, err := app.ProjectDetail(domain.SearchResult{Type: domain.CategoryFlight}); err == nil {
		t.Fatal("detail for a flight must fail")
	}

	dv, err := app.ProjectDetail(hotelResult())
	if err != nil {
		t.Fatalf("ProjectDetail: %v", err)
	}
	if len(dv.Photos) != 3 || dv.PhotoIndex != 0 {
		t.Fatalf("photo state: %+v", dv)
	}
}

func TestFlattenFacilities_DedupsAcrossGroups(t *testing.T) {
	got := app.FlattenFacilities(map[string][]string{
		"Algemeen": {"WiFi", "Lift"},
		"Wellness": {"Spa", "WiFi"},
		"Leeg":     {""},
	})
	sort.Strings(got)
	want := []string{"Lift", "Spa", "WiFi"}
	if len(got) != len(want) {
		t.Fatalf("flattened = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("flattened = %v, want %v", got, want)
		}
	}

	if app.FlattenFacilities(nil) != nil {
		t.Fatal("nil input must flatten to nil")
	}
}

func TestPhotoCursorWraps(t *testing.T) {
	dv, _ := app.ProjectDetail(hotelResult())

	dv = app.NextPhoto(app.NextPhoto(app.NextPhoto(dv)))
	if dv.PhotoIndex != 0 {
		t.Fatalf("next past the end must wrap to 0, got %d", dv.PhotoIndex)
	}
	dv = app.PrevPhoto(dv)
	if dv.PhotoIndex != 2 {
		t.Fatalf("prev before the start must wrap to last, got %d", dv.PhotoIndex)
	}

	empty := app.NextPhoto(domain.DetailView{})
	if empty.PhotoIndex != 0 {
		t.Fatalf("cursor on empty photo list moved to %d", empty.PhotoIndex)
	}
}

func TestFinalize_OverridesAndFallbacks(t *testing.T) {
	dv, _ := app.ProjectDetail(hotelResult())
	dv = app.NextPhoto(dv)

	li := app.Finalize(dv, domain.LineItemOverrides{Nights: 7, BoardType: "AI", Notes: "Suite met balkon"})
	if li.Type != domain.CategoryHotel || li.ID == "" {
		t.Fatalf("line item header: %+v", li)
	}
	if li.Nights != 7 || li.BoardType != "AI" || li.RoomType != "Suite met balkon" {
		t.Fatalf("overrides not applied: %+v", li)
	}
	if li.ImageURL != "https://img/2.jpg" {
		t.Fatalf("image must follow the photo cursor, got %q", li.ImageURL)
	}
	if li.HotelName != "Hotel Sacher" || li.StarRating != 5 || li.Price != 1250 {
		t.Fatalf("hotel fields: %+v", li)
	}

	// Zero overrides fall back to the result's own values.
	li = app.Finalize(dv, domain.LineItemOverrides{})
	if li.Nights != 3 || li.BoardType != "BB" {
		t.Fatalf("fallbacks not applied: %+v", li)
	}
}

func TestBuildLineItem_Flight(t *testing.T) {
	li := app.BuildLineItem(domain.SearchResult{
		Type:        domain.CategoryFlight,
		Name:        "AMS - VIE",
		Description: "Austrian OS372",
		Subtitle:    "2026-09-12 07:15",
		Duration:    "09:05",
		Image:       "https://img/hero.jpg",
	}, domain.LineItemOverrides{})

	if li.Type != domain.CategoryFlight {
		t.Fatalf("type = %q", li.Type)
	}
	if li.DepartureAirport != "AMS" || li.ArrivalAirport != "VIE" {
		t.Fatalf("leg endpoints not recovered: %+v", li)
	}
	if li.ArrivalTime != "09:05" || li.Airline != "Austrian OS372" {
		t.Fatalf("flight fields: %+v", li)
	}
	if li.HotelName != "" || li.PickupLocation != "" || li.ActivityDuration != "" {
		t.Fatalf("cross-category fields leaked: %+v", li)
	}
}

func TestBuildLineItem_TransferAndActivity(t *testing.T) {
	tr := app.BuildLineItem(domain.SearchResult{
		Type:     domain.CategoryTransfer,
		Name:     "Privétransfer",
		Location: "Wenen",
	}, domain.LineItemOverrides{})
	if tr.PickupLocation != "Wenen" || tr.Location != "Wenen" {
		t.Fatalf("transfer fields: %+v", tr)
	}
	if tr.HotelName != "" || tr.DepartureAirport != "" {
		t.Fatalf("cross-category fields leaked: %+v", tr)
	}

	act := app.BuildLineItem(domain.SearchResult{
		Type:         domain.CategoryActivity,
		Name:         "Alhambra met gids",
		Duration:     "3",
		DurationType: "uur",
	}, domain.LineItemOverrides{})
	if act.ActivityDuration != "3 uur" {
		t.Fatalf("activity duration = %q", act.ActivityDuration)
	}
}

func TestBuildLineItem_HotelUsesOverrides(t *testing.T) {
	li := app.BuildLineItem(hotelResult(), domain.LineItemOverrides{BoardType: "FB"})
	if li.BoardType != "FB" || li.HotelName != "Hotel Sacher" {
		t.Fatalf("hotel finalize via BuildLineItem: %+v", li)
	}
	if li.ImageURL != "https://img/1.jpg" {
		t.Fatalf("image without detail step must be the first photo, got %q", li.ImageURL)
	}
}
