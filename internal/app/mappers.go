package app

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"travel_docs/internal/domain"
)

/********** alias registries (single source of truth) **********/

// Compositor exports are duck-typed: the same logical field shows up
// under several names depending on the import template. Each registry is
// the ordered resolution list for one sub-entity variant; first non-empty
// wins.

var travelAliases = map[string][]string{
	"id":      {"id", "travelId", "travel_id", "travel_compositor_id"},
	"title":   {"title", "name", "tripName"},
	"summary": {"ai_summary", "aiSummary", "summary", "description"},
	"hero":    {"hero_image", "heroImage", "hero_image_url", "imageUrl"},
}

var destinationAliases = map[string][]string{
	"name":    {"name", "city", "destination"},
	"country": {"country", "countryName", "country_name"},
}

var hotelAliases = map[string][]string{
	"name":              {"name", "hotelName", "hotel_name"},
	"category":          {"category", "stars", "starRating", "star_rating"},
	"description":       {"description", "longDescription", "hotelDescription"},
	"short_description": {"shortDescription", "short_description"},
	"meal_plan":         {"mealPlan", "mealPlanDescription", "board", "boardType"},
	"room_type":         {"roomType", "room_type", "room"},
	"address":           {"address", "location.address", "address.line"},
	"image":             {"imageUrl", "image", "mainImage"},
	"check_in":          {"checkInTime", "check_in", "checkin"},
	"check_out":         {"checkOutTime", "check_out", "checkout"},
}

var flightAliases = map[string][]string{
	"origin":         {"originCode", "departureCity", "origin", "from"},
	"target":         {"targetCode", "arrivalCity", "target", "destination", "to"},
	"company":        {"company", "airline", "carrier"},
	"number":         {"transportNumber", "flightNumber", "number"},
	"departure_date": {"departureDate", "date"},
	"departure_time": {"departureTime"},
	"arrival_time":   {"arrivalTime"},
}

var transferAliases = map[string][]string{
	"name":   {"name", "description"},
	"origin": {"origin", "pickup", "from"},
}

var activityAliases = map[string][]string{
	"name":          {"name", "title"},
	"description":   {"description", "shortDescription"},
	"location":      {"location", "city"},
	"duration":      {"duration"},
	"duration_type": {"durationType", "duration_type"},
}

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

// lookupStr returns the string at path or "". Bare numbers are accepted
// too; star categories arrive as both "4" and 4.
func lookupStr(m map[string]any, path string) string {
	switch v := lookupAny(m, path).(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

// aliasStr: first non-empty string for a named alias set.
func aliasStr(m map[string]any, aliases map[string][]string, key string) string {
	for _, p := range aliases[key] {
		if s := strings.TrimSpace(lookupStr(m, p)); s != "" {
			return s
		}
	}
	return ""
}

// floatFlexible: number from several paths (float64/int/string like "8,0").
func floatFlexible(m map[string]any, paths ...string) float64 {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case float64:
			return v
		case int:
			return float64(v)
		case string:
			s := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
			if s == "" {
				continue
			}
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return f
			}
		}
	}
	return 0
}

func intFlexible(m map[string]any, paths ...string) int {
	return int(floatFlexible(m, paths...))
}

// sliceStrings: accept []any with either strings or {url/src/name}.
func sliceStrings(m map[string]any, paths ...string) []string {
	for _, k := range paths {
		raw, ok := lookupAny(m, k).([]any)
		if !ok {
			continue
		}
		out := make([]string, 0, len(raw))
		for _, it := range raw {
			if s := entryString(it); s != "" {
				out = append(out, s)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

// entryString unwraps a plain string or a {url}/{src}/{name} object.
// Anything else is dropped.
func entryString(it any) string {
	switch t := it.(type) {
	case string:
		return t
	case map[string]any:
		for _, k := range []string{"url", "src", "name"} {
			if s, ok := t[k].(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

func subMaps(m map[string]any, path string) []map[string]any {
	raw, ok := lookupAny(m, path).([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(raw))
	for _, it := range raw {
		if obj, ok := it.(map[string]any); ok {
			out = append(out, obj)
		}
	}
	return out
}

/********** travel mapper **********/

// MapTravel normalizes one raw compositor document into the typed record
// the matcher operates on. All shape tolerance lives here; the matcher
// never re-checks field variants.
func MapTravel(p map[string]any) domain.TravelRecord {
	raw, err := json.Marshal(p)
	if err != nil {
		log.Error().Err(err).Str("context", "MapTravel").Msg("failed to marshal travel payload")
	}

	rec := domain.TravelRecord{
		ID:        aliasStr(p, travelAliases, "id"),
		Title:     aliasStr(p, travelAliases, "title"),
		Countries: sliceStrings(p, "countries"),
		AISummary: aliasStr(p, travelAliases, "summary"),
		HeroImage: aliasStr(p, travelAliases, "hero"),
		RawJSON:   raw,
	}

	for _, d := range subMaps(p, "destinations") {
		rec.Destinations = append(rec.Destinations, domain.Destination{
			Name:    aliasStr(d, destinationAliases, "name"),
			Country: aliasStr(d, destinationAliases, "country"),
			Images:  sliceStrings(d, "images", "photos"),
		})
	}
	for _, h := range subMaps(p, "hotels") {
		rec.Hotels = append(rec.Hotels, mapHotel(h))
	}
	for _, f := range subMaps(p, "flights") {
		rec.Flights = append(rec.Flights, domain.FlightItem{
			Origin:          aliasStr(f, flightAliases, "origin"),
			Target:          aliasStr(f, flightAliases, "target"),
			Company:         aliasStr(f, flightAliases, "company"),
			TransportNumber: aliasStr(f, flightAliases, "number"),
			DepartureDate:   aliasStr(f, flightAliases, "departure_date"),
			DepartureTime:   aliasStr(f, flightAliases, "departure_time"),
			ArrivalTime:     aliasStr(f, flightAliases, "arrival_time"),
		})
	}
	for _, t := range subMaps(p, "transfers") {
		rec.Transfers = append(rec.Transfers, domain.TransferItem{
			Name:   aliasStr(t, transferAliases, "name"),
			Origin: aliasStr(t, transferAliases, "origin"),
		})
	}
	for _, a := range subMaps(p, "activities") {
		rec.Activities = append(rec.Activities, domain.ActivityItem{
			Name:         aliasStr(a, activityAliases, "name"),
			Description:  aliasStr(a, activityAliases, "description"),
			Location:     aliasStr(a, activityAliases, "location"),
			Duration:     aliasStr(a, activityAliases, "duration"),
			DurationType: aliasStr(a, activityAliases, "duration_type"),
		})
	}
	return rec
}

func mapHotel(h map[string]any) domain.HotelItem {
	images := sliceStrings(h, "images", "photos")
	if len(images) == 0 {
		if s := aliasStr(h, hotelAliases, "image"); s != "" {
			images = []string{s}
		}
	}
	return domain.HotelItem{
		Name:             aliasStr(h, hotelAliases, "name"),
		Category:         aliasStr(h, hotelAliases, "category"),
		Description:      aliasStr(h, hotelAliases, "description"),
		ShortDescription: aliasStr(h, hotelAliases, "short_description"),
		MealPlan:         aliasStr(h, hotelAliases, "meal_plan"),
		RoomType:         aliasStr(h, hotelAliases, "room_type"),
		Address:          aliasStr(h, hotelAliases, "address"),
		Images:           images,
		Nights:           intFlexible(h, "nights", "numberOfNights"),
		Price:            floatFlexible(h, "price", "totalPrice"),
		PricePerNight:    floatFlexible(h, "pricePerNight", "price_per_night"),
		Highlights:       sliceStrings(h, "highlights"),
		Facilities:       mapFacilities(lookupAny(h, "facilities")),
		CheckInTime:      aliasStr(h, hotelAliases, "check_in"),
		CheckOutTime:     aliasStr(h, hotelAliases, "check_out"),
	}
}

// mapFacilities normalizes the category→entries mapping. Entries may be
// plain strings or {name} objects; anything else is discarded.
func mapFacilities(v any) map[string][]string {
	obj, ok := v.(map[string]any)
	if !ok || len(obj) == 0 {
		return nil
	}
	out := make(map[string][]string, len(obj))
	for group, raw := range obj {
		entries, ok := raw.([]any)
		if !ok {
			continue
		}
		var labels []string
		for _, e := range entries {
			if s := entryString(e); s != "" {
				labels = append(labels, s)
			}
		}
		if len(labels) > 0 {
			out[group] = labels
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
