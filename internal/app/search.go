package app

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"

	"travel_docs/internal/domain"
)

const (
	// MinQueryLen is the shortest query that triggers a search; anything
	// shorter returns an empty result set without touching the repository.
	MinQueryLen = 2

	// DefaultFetchLimit caps how many travel records one search pulls in.
	DefaultFetchLimit = 500

	// DefaultResultCap bounds the deduplicated result list.
	DefaultResultCap = 50
)

// SearchSequence issues monotonically increasing search tokens. The
// caller owns one sequence per input surface and calls Next on every
// keystroke; issuing a new token immediately invalidates all earlier
// in-flight searches.
type SearchSequence struct {
	v atomic.Uint64
}

func (s *SearchSequence) Next() SearchToken {
	return SearchToken{seq: s, v: s.v.Add(1)}
}

// SearchToken identifies one search invocation. Stale reports whether a
// newer token has been issued since; compare-on-completion keeps a slow
// early keystroke from overwriting a fast later one.
type SearchToken struct {
	seq *SearchSequence
	v   uint64
}

func (t SearchToken) Stale() bool {
	return t.seq != nil && t.seq.v.Load() != t.v
}

// SearchConfig bundles the tunables of the matcher. Zero values fall
// back to the defaults, so callers only set what they change.
type SearchConfig struct {
	Aliases     AliasTable
	Weights     Weights
	FetchLimit  int
	ResultCap   int
	CacheTTLSec int // 0 disables batch caching
}

// SearchService runs the fuzzy bilingual item search over imported
// travel records.
type SearchService struct {
	repo       domain.TravelRepository
	cache      domain.Cache
	aliases    AliasTable
	weights    Weights
	fetchLimit int
	resultCap  int
	cacheTTL   int
}

func NewSearchService(repo domain.TravelRepository, cache domain.Cache, cfg SearchConfig) *SearchService {
	if cfg.Aliases == nil {
		cfg.Aliases = DefaultAliasTable()
	}
	if cfg.Weights == (Weights{}) {
		cfg.Weights = DefaultWeights()
	}
	if cfg.FetchLimit <= 0 {
		cfg.FetchLimit = DefaultFetchLimit
	}
	if cfg.ResultCap <= 0 {
		cfg.ResultCap = DefaultResultCap
	}
	return &SearchService{
		repo:       repo,
		cache:      cache,
		aliases:    cfg.Aliases,
		weights:    cfg.Weights,
		fetchLimit: cfg.FetchLimit,
		resultCap:  cfg.ResultCap,
		cacheTTL:   cfg.CacheTTLSec,
	}
}

// Search expands the query, scores and ranks every record, and extracts
// up to the result cap of deduplicated category items. Returns
// domain.ErrNoData when the repository is empty, domain.ErrNoMatches
// when nothing scored, domain.ErrStaleSearch when tok was superseded
// while the fetch was in flight, and a domain.ErrFetchFailed wrap when
// the repository call itself errored.
func (s *SearchService) Search(ctx context.Context, tok SearchToken, query string, cat domain.ItemCategory) ([]domain.SearchResult, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if len([]rune(q)) < MinQueryLen {
		return nil, nil
	}

	records, err := s.fetchBatch(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	if tok.Stale() {
		return nil, domain.ErrStaleSearch
	}
	if len(records) == 0 {
		return nil, domain.ErrNoData
	}

	terms := s.aliases.Expand(q)

	type ranked struct {
		rec   domain.TravelRecord
		score int
	}
	scored := make([]ranked, 0, len(records))
	for _, rec := range records {
		if sc := scoreTravel(rec, terms, s.weights); sc > 0 {
			scored = append(scored, ranked{rec: rec, score: sc})
		}
	}
	// Stable: equal scores keep repository order.
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	var out []domain.SearchResult
	seen := make(map[string]struct{})
	for _, r := range scored {
		out = extractItems(out, seen, r.rec, cat, s.resultCap)
		if len(out) >= s.resultCap {
			break
		}
	}
	if len(out) == 0 {
		return nil, domain.ErrNoMatches
	}
	return out, nil
}

// fetchBatch reads the capped record batch, serving it from the cache
// when possible. The batch is shared by every concurrent search, so the
// TTL only needs to outlive a typing burst.
func (s *SearchService) fetchBatch(ctx context.Context) ([]domain.TravelRecord, error) {
	key := fmt.Sprintf("travels:batch:%d", s.fetchLimit)
	if s.cache != nil && s.cacheTTL > 0 {
		var cached []domain.TravelRecord
		if ok, _ := s.cache.Get(ctx, key, &cached); ok {
			return cached, nil
		}
	}
	records, err := s.repo.FetchTravels(ctx, s.fetchLimit)
	if err != nil {
		return nil, err
	}
	if s.cache != nil && s.cacheTTL > 0 {
		_ = s.cache.Set(ctx, key, records, s.cacheTTL)
	}
	return records, nil
}

// InvalidateBatch drops the cached record batch; the ingestor calls this
// after every import run.
func (s *SearchService) InvalidateBatch(ctx context.Context) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Del(ctx, fmt.Sprintf("travels:batch:%d", s.fetchLimit))
}
