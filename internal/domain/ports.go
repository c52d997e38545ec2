package domain

import "context"

type TravelRepository interface {
	// Write paths (ingestor)
	UpsertTravel(ctx context.Context, t TravelRecord) error
	LogMiss(ctx context.Context, id string, status int, reason string) error

	// Read paths
	// FetchTravels returns up to limit records, newest import first.
	FetchTravels(ctx context.Context, limit int) ([]TravelRecord, error)
	GetTravel(ctx context.Context, id string) (TravelRecord, error)
}

// CompositorClient fetches imported trip documents from the remote
// content API. Payloads stay raw; normalization happens in the mappers.
type CompositorClient interface {
	ListTravelRefs(ctx context.Context, limit int) ([]string, error)
	GetTravel(ctx context.Context, id string) (map[string]any, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
