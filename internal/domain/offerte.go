package domain

// SearchResult is the ranked, deduplicated projection of one sub-entity,
// attributed to its parent travel via TravelTitle. Field names follow the
// quote editor's wire shape.
type SearchResult struct {
	Type             ItemCategory        `json:"type"`
	ID               string              `json:"id"`
	Name             string              `json:"name"`
	Stars            int                 `json:"stars,omitempty"`
	Location         string              `json:"location,omitempty"`
	Country          string              `json:"country,omitempty"`
	Description      string              `json:"description,omitempty"`
	ShortDescription string              `json:"shortDescription,omitempty"`
	Images           []string            `json:"images,omitempty"`
	Image            string              `json:"image,omitempty"`
	Price            float64             `json:"price,omitempty"`
	PricePerNight    float64             `json:"pricePerNight,omitempty"`
	Subtitle         string              `json:"subtitle,omitempty"`
	MealPlan         string              `json:"mealPlan,omitempty"`
	Nights           int                 `json:"nights,omitempty"`
	RoomType         string              `json:"roomType,omitempty"`
	Duration         string              `json:"duration,omitempty"`
	DurationType     string              `json:"durationType,omitempty"`
	Address          string              `json:"address,omitempty"`
	Highlights       []string            `json:"highlights,omitempty"`
	Facilities       map[string][]string `json:"facilities,omitempty"`
	CheckInTime      string              `json:"checkInTime,omitempty"`
	CheckOutTime     string              `json:"checkOutTime,omitempty"`
	TravelTitle      string              `json:"travelTitle,omitempty"`
}

// DetailView is the richer hotel view shown before a result is confirmed:
// flattened facilities plus a caller-driven photo cursor.
type DetailView struct {
	Result     SearchResult `json:"result"`
	Photos     []string     `json:"photos,omitempty"`
	PhotoIndex int          `json:"photoIndex"`
	Facilities []string     `json:"facilities,omitempty"`
}

// LineItemOverrides carries the user-edited fields applied at finalize
// time. Notes lands in the line item's free-text room_type field.
type LineItemOverrides struct {
	Nights    int    `json:"nights,omitempty"`
	BoardType string `json:"board_type,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// LineItem is the confirmed artifact added to an offerte. Only the field
// set of its own category may be populated.
type LineItem struct {
	ID          string       `json:"id"`
	Type        ItemCategory `json:"type"`
	Title       string       `json:"title"`
	Subtitle    string       `json:"subtitle,omitempty"`
	Description string       `json:"description,omitempty"`
	ImageURL    string       `json:"image_url,omitempty"`
	Location    string       `json:"location,omitempty"`
	Nights      int          `json:"nights,omitempty"`
	Price       float64      `json:"price,omitempty"`
	PricePerPerson float64   `json:"price_per_person,omitempty"`

	// Hotel
	HotelName  string `json:"hotel_name,omitempty"`
	RoomType   string `json:"room_type,omitempty"`
	BoardType  string `json:"board_type,omitempty"`
	StarRating int    `json:"star_rating,omitempty"`

	// Flight
	DepartureAirport string `json:"departure_airport,omitempty"`
	ArrivalAirport   string `json:"arrival_airport,omitempty"`
	DepartureTime    string `json:"departure_time,omitempty"`
	ArrivalTime      string `json:"arrival_time,omitempty"`
	Airline          string `json:"airline,omitempty"`
	FlightNumber     string `json:"flight_number,omitempty"`

	// Transfer
	PickupLocation  string `json:"pickup_location,omitempty"`
	DropoffLocation string `json:"dropoff_location,omitempty"`

	// Activity
	ActivityDuration string `json:"activity_duration,omitempty"`

	SortOrder int `json:"sort_order"`
}
