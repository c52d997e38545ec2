package app

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"travel_docs/internal/domain"
)

// ProjectDetail builds the richer pre-confirmation view for a hotel
// result. Other categories are finalized directly and have no detail
// step.
func ProjectDetail(res domain.SearchResult) (domain.DetailView, error) {
	if res.Type != domain.CategoryHotel {
		return domain.DetailView{}, fmt.Errorf("detail view is hotel-only, got %q", res.Type)
	}
	return domain.DetailView{
		Result:     res,
		Photos:     res.Images,
		PhotoIndex: 0,
		Facilities: FlattenFacilities(res.Facilities),
	}, nil
}

// FlattenFacilities collapses the category→entries mapping into one
// deduplicated label list. Grouping order is not significant, but the
// output is deterministic for a given map iteration seed because dedup
// is order-independent; tests compare as sets.
func FlattenFacilities(facilities map[string][]string) []string {
	if len(facilities) == 0 {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	for _, entries := range facilities {
		for _, e := range entries {
			if e == "" {
				continue
			}
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			out = append(out, e)
		}
	}
	return out
}

// NextPhoto advances the photo cursor, wrapping past the last photo.
func NextPhoto(dv domain.DetailView) domain.DetailView {
	if n := len(dv.Photos); n > 0 {
		dv.PhotoIndex = (dv.PhotoIndex + 1) % n
	}
	return dv
}

// PrevPhoto moves the photo cursor back, wrapping before the first photo.
func PrevPhoto(dv domain.DetailView) domain.DetailView {
	if n := len(dv.Photos); n > 0 {
		dv.PhotoIndex = (dv.PhotoIndex - 1 + n) % n
	}
	return dv
}

// currentPhoto resolves the confirmed image: the photo under the cursor,
// else the first photo, else the flat image field.
func currentPhoto(dv domain.DetailView) string {
	if dv.PhotoIndex >= 0 && dv.PhotoIndex < len(dv.Photos) {
		return dv.Photos[dv.PhotoIndex]
	}
	if len(dv.Photos) > 0 {
		return dv.Photos[0]
	}
	return dv.Result.Image
}

// Finalize turns a confirmed hotel detail view plus user overrides into
// a line item.
func Finalize(dv domain.DetailView, ov domain.LineItemOverrides) domain.LineItem {
	res := dv.Result
	nights := ov.Nights
	if nights == 0 {
		nights = res.Nights
	}
	board := ov.BoardType
	if board == "" {
		board = res.MealPlan
	}
	return domain.LineItem{
		ID:          uuid.NewString(),
		Type:        domain.CategoryHotel,
		Title:       res.Name,
		Subtitle:    res.Subtitle,
		Description: res.Description,
		ImageURL:    currentPhoto(dv),
		Location:    res.Location,
		Nights:      nights,
		Price:       res.Price,
		HotelName:   res.Name,
		RoomType:    ov.Notes,
		BoardType:   board,
		StarRating:  res.Stars,
	}
}

// BuildLineItem constructs a line item straight from a search result,
// used by the categories without a detail step. Only fields belonging to
// the result's category are populated.
func BuildLineItem(res domain.SearchResult, ov domain.LineItemOverrides) domain.LineItem {
	switch res.Type {
	case domain.CategoryHotel:
		dv := domain.DetailView{Result: res, Photos: res.Images}
		return Finalize(dv, ov)
	case domain.CategoryFlight:
		li := domain.LineItem{
			ID:          uuid.NewString(),
			Type:        domain.CategoryFlight,
			Title:       res.Name,
			Subtitle:    res.Subtitle,
			Description: res.Description,
			ImageURL:    res.Image,
			Airline:     res.Description,
			ArrivalTime: res.Duration,
		}
		// Result names are "origin - target"; recover the leg endpoints.
		if parts := strings.SplitN(res.Name, " - ", 2); len(parts) == 2 {
			li.DepartureAirport = parts[0]
			li.ArrivalAirport = parts[1]
		}
		return li
	case domain.CategoryTransfer:
		return domain.LineItem{
			ID:             uuid.NewString(),
			Type:           domain.CategoryTransfer,
			Title:          res.Name,
			Subtitle:       res.Subtitle,
			ImageURL:       res.Image,
			Location:       res.Location,
			PickupLocation: res.Location,
		}
	case domain.CategoryActivity:
		return domain.LineItem{
			ID:               uuid.NewString(),
			Type:             domain.CategoryActivity,
			Title:            res.Name,
			Subtitle:         res.Subtitle,
			Description:      res.Description,
			ImageURL:         res.Image,
			Location:         res.Location,
			ActivityDuration: joinNonEmpty(" ", res.Duration, res.DurationType),
		}
	}
	return domain.LineItem{ID: uuid.NewString(), Type: res.Type, Title: res.Name}
}
