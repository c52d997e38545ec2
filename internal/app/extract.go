package app

import (
	"fmt"
	"strings"

	"travel_docs/internal/domain"
)

// extractItems appends every not-yet-seen sub-entity of the requested
// category from rec, up to limit. Dedup is first-seen-wins on the
// lowercased name, so an item appearing in two trips is attributed to
// the higher-ranked one.
func extractItems(out []domain.SearchResult, seen map[string]struct{}, rec domain.TravelRecord, cat domain.ItemCategory, limit int) []domain.SearchResult {
	push := func(res domain.SearchResult) bool {
		key := strings.ToLower(res.Name)
		if key == "" {
			return len(out) < limit
		}
		if _, dup := seen[key]; dup {
			return true
		}
		seen[key] = struct{}{}
		out = append(out, res)
		return len(out) < limit
	}

	switch cat {
	case domain.CategoryHotel:
		for i, h := range rec.Hotels {
			if !push(projectHotel(rec, h, i)) {
				return out
			}
		}
	case domain.CategoryFlight:
		for i, f := range rec.Flights {
			if !push(projectFlight(rec, f, i)) {
				return out
			}
		}
	case domain.CategoryTransfer:
		for i, tr := range rec.Transfers {
			if !push(projectTransfer(rec, tr, i)) {
				return out
			}
		}
	case domain.CategoryActivity:
		for i, a := range rec.Activities {
			if !push(projectActivity(rec, a, i)) {
				return out
			}
		}
	}
	return out
}

func projectHotel(rec domain.TravelRecord, h domain.HotelItem, idx int) domain.SearchResult {
	location := h.Address
	if location == "" {
		location = joinDestinationNames(rec)
	}
	country := recordCountry(rec)
	images := h.Images
	if len(images) == 0 && rec.HeroImage != "" {
		images = []string{rec.HeroImage}
	}
	return domain.SearchResult{
		Type:             domain.CategoryHotel,
		ID:               itemID(rec.ID, domain.CategoryHotel, idx),
		Name:             h.Name,
		Stars:            h.Stars(),
		Location:         location,
		Country:          country,
		Description:      h.Description,
		ShortDescription: h.ShortDescription,
		Images:           images,
		Image:            first(images),
		Price:            h.Price,
		PricePerNight:    h.PricePerNight,
		Subtitle:         joinNonEmpty(", ", location, country),
		MealPlan:         h.MealPlan,
		Nights:           h.Nights,
		RoomType:         h.RoomType,
		Address:          h.Address,
		Highlights:       h.Highlights,
		Facilities:       h.Facilities,
		CheckInTime:      h.CheckInTime,
		CheckOutTime:     h.CheckOutTime,
		TravelTitle:      rec.Title,
	}
}

func projectFlight(rec domain.TravelRecord, f domain.FlightItem, idx int) domain.SearchResult {
	name := joinNonEmpty(" - ", f.Origin, f.Target)
	if name == "" {
		name = f.Company
	}
	return domain.SearchResult{
		Type:        domain.CategoryFlight,
		ID:          itemID(rec.ID, domain.CategoryFlight, idx),
		Name:        name,
		Description: joinNonEmpty(" ", f.Company, f.TransportNumber),
		Subtitle:    joinNonEmpty(" ", f.DepartureDate, f.DepartureTime),
		Duration:    f.ArrivalTime,
		Country:     recordCountry(rec),
		Image:       rec.HeroImage,
		TravelTitle: rec.Title,
	}
}

func projectTransfer(rec domain.TravelRecord, tr domain.TransferItem, idx int) domain.SearchResult {
	location := tr.Origin
	if location == "" {
		location = joinDestinationNames(rec)
	}
	country := recordCountry(rec)
	return domain.SearchResult{
		Type:        domain.CategoryTransfer,
		ID:          itemID(rec.ID, domain.CategoryTransfer, idx),
		Name:        tr.Name,
		Location:    location,
		Country:     country,
		Subtitle:    joinNonEmpty(", ", location, country),
		Image:       rec.HeroImage,
		TravelTitle: rec.Title,
	}
}

func projectActivity(rec domain.TravelRecord, a domain.ActivityItem, idx int) domain.SearchResult {
	location := a.Location
	if location == "" {
		location = joinDestinationNames(rec)
	}
	country := recordCountry(rec)
	return domain.SearchResult{
		Type:         domain.CategoryActivity,
		ID:           itemID(rec.ID, domain.CategoryActivity, idx),
		Name:         a.Name,
		Description:  a.Description,
		Location:     location,
		Country:      country,
		Subtitle:     joinNonEmpty(", ", location, country),
		Duration:     a.Duration,
		DurationType: a.DurationType,
		Image:        rec.HeroImage,
		TravelTitle:  rec.Title,
	}
}

func itemID(travelID string, cat domain.ItemCategory, idx int) string {
	return fmt.Sprintf("%s:%s:%d", travelID, cat, idx)
}

func joinDestinationNames(rec domain.TravelRecord) string {
	names := make([]string, 0, len(rec.Destinations))
	for _, d := range rec.Destinations {
		if t := strings.TrimSpace(d.Name); t != "" {
			names = append(names, t)
		}
	}
	return strings.Join(names, ", ")
}

// recordCountry prefers the first destination's own country, then the
// record-level country set.
func recordCountry(rec domain.TravelRecord) string {
	for _, d := range rec.Destinations {
		if d.Country != "" {
			return d.Country
		}
	}
	if len(rec.Countries) > 0 {
		return rec.Countries[0]
	}
	return ""
}

func joinNonEmpty(sep string, parts ...string) string {
	var out []string
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return strings.Join(out, sep)
}

func first(ss []string) string {
	if len(ss) == 0 {
		return ""
	}
	return ss[0]
}
