package mysql

import (
	"context"
	"database/sql"
	"encoding/json"

	"travel_docs/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func marshalJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(b)
}

func rawOrEmpty(b []byte) string {
	if len(b) == 0 {
		return "{}"
	}
	return string(b)
}

func (r *Repo) UpsertTravel(ctx context.Context, t domain.TravelRecord) error {
	_, err := r.db.ExecContext(ctx, upsertTravelSQL,
		t.ID,
		t.Title,
		marshalJSON(t.Countries),
		marshalJSON(t.Destinations),
		marshalJSON(t.Hotels),
		marshalJSON(t.Flights),
		marshalJSON(t.Transfers),
		marshalJSON(t.Activities),
		t.AISummary,
		t.HeroImage,
		rawOrEmpty(t.RawJSON),
	)
	return err
}

func (r *Repo) LogMiss(ctx context.Context, id string, status int, reason string) error {
	_, err := r.db.ExecContext(ctx, insertMissSQL, id, status, reason)
	return err
}

func (r *Repo) FetchTravels(ctx context.Context, limit int) ([]domain.TravelRecord, error) {
	rows, err := r.db.QueryContext(ctx, fetchTravelsSQL, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.TravelRecord
	for rows.Next() {
		rec, err := scanTravel(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) GetTravel(ctx context.Context, id string) (domain.TravelRecord, error) {
	row := r.db.QueryRowContext(ctx, getTravelSQL, id)
	rec, err := scanTravel(row)
	if err == sql.ErrNoRows {
		return domain.TravelRecord{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.TravelRecord{}, err
	}
	return rec, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTravel(row rowScanner) (domain.TravelRecord, error) {
	var rec domain.TravelRecord
	var title, aiSummary, heroImage sql.NullString
	var countries, destinations, hotels, flights, transfers, activities, raw []byte

	if err := row.Scan(
		&rec.ID,
		&title,
		&countries,
		&destinations,
		&hotels,
		&flights,
		&transfers,
		&activities,
		&aiSummary,
		&heroImage,
		&raw,
	); err != nil {
		return domain.TravelRecord{}, err
	}

	rec.Title = title.String
	rec.AISummary = aiSummary.String
	rec.HeroImage = heroImage.String
	_ = json.Unmarshal(countries, &rec.Countries)
	_ = json.Unmarshal(destinations, &rec.Destinations)
	_ = json.Unmarshal(hotels, &rec.Hotels)
	_ = json.Unmarshal(flights, &rec.Flights)
	_ = json.Unmarshal(transfers, &rec.Transfers)
	_ = json.Unmarshal(activities, &rec.Activities)
	if len(raw) > 0 {
		rec.RawJSON = append([]byte(nil), raw...)
	}
	return rec, nil
}
