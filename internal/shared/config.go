package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv         string
	HTTPAddr       string
	MetricsAddr    string
	MySQLDSN       string
	RedisAddr      string
	RedisDB        int
	RedisPass      string
	CompositorBase string
	CompositorKey  string
	Workers        int
	FetchLimit     int
	ResultCap      int
	CacheTTL       time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:         env("APP_ENV", "prod"),
		HTTPAddr:       env("HTTP_ADDR", ":8080"),
		MetricsAddr:    env("METRICS_ADDR", ":9100"),
		MySQLDSN:       env("MYSQL_DSN", "root:root@tcp(localhost:3306)/traveldocs?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:      env("REDIS_ADDR", "localhost:6379"),
		RedisDB:        atoi("REDIS_DB", 0),
		RedisPass:      env("REDIS_PASSWORD", ""),
		CompositorBase: env("COMPOSITOR_BASE_URL", "https://online.travelcompositor.com/resources"),
		CompositorKey:  env("COMPOSITOR_API_KEY", ""),
		Workers:        atoi("INGEST_WORKERS", 8),
		FetchLimit:     atoi("FETCH_LIMIT", 500),
		ResultCap:      atoi("RESULT_CAP", 50),
		CacheTTL:       time.Duration(atoi("CACHE_TTL_SECONDS", 120)) * time.Second,
	}
	if c.CompositorKey == "" {
		log.Warn().Msg("COMPOSITOR_API_KEY is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
