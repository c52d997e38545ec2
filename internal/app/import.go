package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"travel_docs/internal/domain"
)

// ImportService pulls travel documents from the compositor export API
// into local storage, where the search service reads them.
type ImportService struct {
	compositor domain.CompositorClient
	repo       domain.TravelRepository
	cache      domain.Cache
}

func NewImportService(c domain.CompositorClient, r domain.TravelRepository, cache domain.Cache) *ImportService {
	return &ImportService{compositor: c, repo: r, cache: cache}
}

// ImportTravel fetches one document, normalizes it, and upserts it.
// 404/401/403 are recorded as misses and end the import gracefully;
// anything else (network/5xx/JSON) bubbles up. A successful upsert
// evicts the cached search batch so the next search sees the new data.
func (s *ImportService) ImportTravel(ctx context.Context, id string) error {
	p, err := s.compositor.GetTravel(ctx, id)
	if err != nil {
		low := strings.ToLower(err.Error())

		if errors.Is(err, domain.ErrNotFound) || strings.Contains(low, "not found") {
			_ = s.repo.LogMiss(ctx, id, 404, "not found")
			s.invalidateBatch(ctx)
			return nil
		}
		if strings.Contains(low, "403") || strings.Contains(low, "forbidden") ||
			strings.Contains(low, "401") || strings.Contains(low, "unauthorized") {
			_ = s.repo.LogMiss(ctx, id, 403, "inactive")
			s.invalidateBatch(ctx)
			return nil
		}
		return err
	}

	rec := MapTravel(p)
	if rec.ID == "" {
		rec.ID = id
	}
	if err := s.repo.UpsertTravel(ctx, rec); err != nil {
		return fmt.Errorf("upsert travel %s: %w", id, err)
	}
	s.invalidateBatch(ctx)
	return nil
}

func (s *ImportService) invalidateBatch(ctx context.Context) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Del(ctx, fmt.Sprintf("travels:batch:%d", DefaultFetchLimit))
}
