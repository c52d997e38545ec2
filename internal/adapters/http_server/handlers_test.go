package httpserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	server "travel_docs/internal/adapters/http_server"
	"travel_docs/internal/app"
	"travel_docs/internal/domain"
)

type stubRepo struct {
	records []domain.TravelRecord
}

func (s *stubRepo) UpsertTravel(ctx context.Context, t domain.TravelRecord) error { return nil }
func (s *stubRepo) LogMiss(ctx context.Context, id string, status int, reason string) error {
	return nil
}
func (s *stubRepo) FetchTravels(ctx context.Context, limit int) ([]domain.TravelRecord, error) {
	return s.records, nil
}
func (s *stubRepo) GetTravel(ctx context.Context, id string) (domain.TravelRecord, error) {
	return domain.TravelRecord{}, domain.ErrNotFound
}

func newTestServer(records ...domain.TravelRecord) *httptest.Server {
	search := app.NewSearchService(&stubRepo{records: records}, nil, app.SearchConfig{})
	srv := server.New()
	srv.MountHandlers(&server.Handlers{Search: search, Seq: &app.SearchSequence{}})
	return httptest.NewServer(srv.Mux())
}

func viennaRecord() domain.TravelRecord {
	return domain.TravelRecord{
		ID:           "t1",
		Title:        "Grand Tour Oostenrijk",
		Destinations: []domain.Destination{{Name: "Wenen", Country: "Oostenrijk"}},
		Hotels: []domain.HotelItem{{
			Name:     "Hotel Sacher",
			Category: "5",
			Images:   []string{"https://img/sacher.jpg"},
		}},
	}
}

func TestSearchEndpoint_OK(t *testing.T) {
	ts := newTestServer(viennaRecord())
	defer ts.Close()

	res, err := http.Get(ts.URL + "/v1/items/search?q=vienna&type=hotel")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
	if res.Header.Get("ETag") == "" {
		t.Fatal("missing ETag")
	}

	var body struct {
		Results []domain.SearchResult `json:"results"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Results) != 1 || body.Results[0].Name != "Hotel Sacher" {
		t.Fatalf("results: %+v", body.Results)
	}
}

func TestSearchEndpoint_ETagRoundTrip(t *testing.T) {
	ts := newTestServer(viennaRecord())
	defer ts.Close()

	res, err := http.Get(ts.URL + "/v1/items/search?q=vienna&type=hotel")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	res.Body.Close()
	etag := res.Header.Get("ETag")

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/v1/items/search?q=vienna&type=hotel", nil)
	req.Header.Set("If-None-Match", etag)
	res2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("conditional GET: %v", err)
	}
	res2.Body.Close()
	if res2.StatusCode != http.StatusNotModified {
		t.Fatalf("status %d, want 304", res2.StatusCode)
	}
}

func TestSearchEndpoint_InvalidType(t *testing.T) {
	ts := newTestServer(viennaRecord())
	defer ts.Close()

	res, err := http.Get(ts.URL + "/v1/items/search?q=vienna&type=cruise")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); ct != "application/problem+json" {
		t.Fatalf("content type %q", ct)
	}
}

func TestSearchEndpoint_NoDataAdvice(t *testing.T) {
	ts := newTestServer() // empty repository
	defer ts.Close()

	res, err := http.Get(ts.URL + "/v1/items/search?q=vienna&type=hotel")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}

	var body struct {
		Results []domain.SearchResult `json:"results"`
		Advice  string                `json:"advice"`
		Message string                `json:"message"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Advice != "no_data" || body.Message == "" {
		t.Fatalf("advice body: %+v", body)
	}
	if body.Results == nil || len(body.Results) != 0 {
		t.Fatalf("results must be an empty array, got %+v", body.Results)
	}
}

func TestSearchEndpoint_NoMatchesAdvice(t *testing.T) {
	ts := newTestServer(domain.TravelRecord{ID: "t1", Title: "Rondreis Japan"})
	defer ts.Close()

	res, err := http.Get(ts.URL + "/v1/items/search?q=vienna&type=hotel")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res.Body.Close()

	var body struct {
		Advice string `json:"advice"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Advice != "no_matches" {
		t.Fatalf("advice = %q, want no_matches", body.Advice)
	}
}

func TestDetailEndpoint_HotelOnly(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	hotel, _ := json.Marshal(domain.SearchResult{
		Type:       domain.CategoryHotel,
		Name:       "Hotel Sacher",
		Images:     []string{"https://img/1.jpg", "https://img/2.jpg"},
		Facilities: map[string][]string{"Algemeen": {"WiFi"}},
	})
	res, err := http.Post(ts.URL+"/v1/items/detail", "application/json", bytes.NewReader(hotel))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
	var dv domain.DetailView
	if err := json.NewDecoder(res.Body).Decode(&dv); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(dv.Photos) != 2 || len(dv.Facilities) != 1 {
		t.Fatalf("detail view: %+v", dv)
	}

	flight, _ := json.Marshal(domain.SearchResult{Type: domain.CategoryFlight, Name: "AMS - VIE"})
	res2, err := http.Post(ts.URL+"/v1/items/detail", "application/json", bytes.NewReader(flight))
	if err != nil {
		t.Fatalf("POST flight: %v", err)
	}
	res2.Body.Close()
	if res2.StatusCode != http.StatusBadRequest {
		t.Fatalf("flight detail status %d, want 400", res2.StatusCode)
	}
}

func TestFinalizeEndpoint(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	payload, _ := json.Marshal(map[string]any{
		"result": domain.SearchResult{
			Type:     domain.CategoryHotel,
			Name:     "Hotel Sacher",
			Nights:   3,
			MealPlan: "HB",
		},
		"overrides": domain.LineItemOverrides{BoardType: "AI", Notes: "Suite"},
	})
	res, err := http.Post(ts.URL+"/v1/items", "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("status %d, want 201", res.StatusCode)
	}
	var li domain.LineItem
	if err := json.NewDecoder(res.Body).Decode(&li); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if li.ID == "" || li.BoardType != "AI" || li.RoomType != "Suite" || li.Nights != 3 {
		t.Fatalf("line item: %+v", li)
	}
}
