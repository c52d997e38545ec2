package main

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"travel_docs/internal/adapters/compositor"
	"travel_docs/internal/adapters/observability"
	redisad "travel_docs/internal/adapters/redis"
	"travel_docs/internal/app"
	"travel_docs/internal/shared"
	mysqlrepo "travel_docs/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("base", cfg.CompositorBase).
		Int("workers", cfg.Workers).
		Int("limit", cfg.FetchLimit).
		Msg("ingestor starting")

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)

	client, err := compositor.New(cfg.CompositorBase, cfg.CompositorKey, 5)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize compositor client")
	}
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	imp := app.NewImportService(client, repo, cache)

	refs, err := client.ListTravelRefs(ctx, cfg.FetchLimit)
	if err != nil {
		log.Fatal().Err(err).Msg("list travel refs failed")
	}
	log.Info().Int("count", len(refs)).Msg("travel refs listed")

	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup

	for _, id := range refs {
		id := id

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(travelID string) {
			defer wg.Done()
			defer sem.Release(1)

			if err := imp.ImportTravel(ctx, travelID); err != nil {
				log.Warn().Str("id", travelID).Err(err).Msg("import failed")
				return
			}
			log.Info().Str("id", travelID).Msg("import ok")
		}(id)
	}

	wg.Wait()
	log.Info().Msg("import completed")
}
