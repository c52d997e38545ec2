package domain

// ItemCategory tags the sub-entity kind a search targets and the kind a
// line item ends up as.
type ItemCategory string

const (
	CategoryHotel    ItemCategory = "hotel"
	CategoryFlight   ItemCategory = "flight"
	CategoryTransfer ItemCategory = "transfer"
	CategoryActivity ItemCategory = "activity"
)

func (c ItemCategory) Valid() bool {
	switch c {
	case CategoryHotel, CategoryFlight, CategoryTransfer, CategoryActivity:
		return true
	}
	return false
}

// TravelRecord is one imported trip package, normalized once at ingestion.
// The matcher treats it as an immutable snapshot.
type TravelRecord struct {
	ID           string
	Title        string
	Countries    []string
	Destinations []Destination
	Hotels       []HotelItem
	Flights      []FlightItem
	Transfers    []TransferItem
	Activities   []ActivityItem
	AISummary    string
	HeroImage    string
	RawJSON      []byte // full compositor payload
}

type Destination struct {
	Name    string
	Country string
	Images  []string
}

// HotelItem keeps Category as the source's free-form star string ("4",
// "4 estrellas"); Stars() parses it.
type HotelItem struct {
	Name             string
	Category         string
	Description      string
	ShortDescription string
	MealPlan         string
	RoomType         string
	Address          string
	Images           []string
	Nights           int
	Price            float64
	PricePerNight    float64
	Highlights       []string
	Facilities       map[string][]string
	CheckInTime      string
	CheckOutTime     string
}

type FlightItem struct {
	Origin          string
	Target          string
	Company         string
	TransportNumber string
	DepartureDate   string
	DepartureTime   string
	ArrivalTime     string
}

type TransferItem struct {
	Name   string
	Origin string
}

type ActivityItem struct {
	Name         string
	Description  string
	Location     string
	Duration     string
	DurationType string
}

// Stars parses the leading digits of the free-form category string.
func (h HotelItem) Stars() int {
	n := 0
	seen := false
	for _, r := range h.Category {
		if r >= '0' && r <= '9' {
			n = n*10 + int(r-'0')
			seen = true
			continue
		}
		if seen {
			break
		}
		if r != ' ' {
			break
		}
	}
	if !seen {
		return 0
	}
	if n > 5 {
		return 5
	}
	return n
}
