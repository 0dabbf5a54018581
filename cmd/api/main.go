// @title           Bible Verses API
// @version         1.0
// @description     Finds Bible references in free text and resolves them to verse texts
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.email  shuvoedward@gmail.com

// @host      localhost:4000
// @BasePath  /

package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"shuvoedward/bible_verses/internal/bibleapi"
	"shuvoedward/bible_verses/internal/cache"
	"shuvoedward/bible_verses/internal/data"
	"shuvoedward/bible_verses/internal/ratelimit"
	"shuvoedward/bible_verses/internal/reference"
	"shuvoedward/bible_verses/internal/service"
	"shuvoedward/bible_verses/internal/validator"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

var (
	version = "1.0.0"
)

type config struct {
	port int
	env  string

	// books is where the book dataset is read from: "embedded" or "postgres".
	books string

	db struct {
		dsn string
	}

	bible struct {
		url            string
		token          string
		defaultVersion string
		versions       string
		timeout        time.Duration
	}

	ratelimit struct {
		backend string
		limit   int
		window  time.Duration
	}

	redisConfig cache.RedisConfig
}

// limiter is satisfied by both the in-memory and the Redis rate limiter.
type limiter interface {
	Allow(key string) bool
	Close() error
}

type application struct {
	config        config
	logger        *slog.Logger
	dataset       *data.Dataset
	ipRateLimiter limiter
}

func envOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("failed to load .env file", "error", err)
	}

	var cfg config

	flag.IntVar(&cfg.port, "port", 4000, "API server port")
	flag.StringVar(&cfg.env, "env", "development", "Environment (development|staging|production)")

	flag.StringVar(&cfg.books, "books", "embedded", "Book dataset source (embedded|postgres)")
	flag.StringVar(&cfg.db.dsn, "db-dsn", os.Getenv("BIBLE_DB_DSN"), "PostgreSQL DSN")

	flag.StringVar(&cfg.bible.url, "bible-api-url", os.Getenv("BIBLE_API_URL"), "Bible API base URL")
	flag.StringVar(&cfg.bible.token, "bible-api-token", os.Getenv("BIBLE_API_TOKEN"), "Bible API bearer token")
	flag.StringVar(&cfg.bible.defaultVersion, "bible-default-version", envOr("BIBLE_DEFAULT_VERSION", "acf"), "Version used when none is requested")
	flag.StringVar(&cfg.bible.versions, "bible-versions", strings.Join(reference.DefaultConfig().SupportedVersions, ","), "Comma separated versions a reference may name")
	flag.DurationVar(&cfg.bible.timeout, "bible-api-timeout", 10*time.Second, "Bible API request timeout")

	flag.StringVar(&cfg.ratelimit.backend, "limiter", "memory", "Rate limiter backend (memory|redis)")
	flag.IntVar(&cfg.ratelimit.limit, "ip-rate-limit", 30, "Requests allowed per IP in each window")
	flag.DurationVar(&cfg.ratelimit.window, "ip-rate-window", time.Second, "IP rate limit window")

	flag.StringVar(&cfg.redisConfig.Host, "redis-host", "localhost", "Redis Host")
	flag.StringVar(&cfg.redisConfig.Port, "redis-port", "6379", "Redis Port")
	flag.StringVar(&cfg.redisConfig.Password, "redis-password", "", "Redis Password")
	flag.IntVar(&cfg.redisConfig.DB, "redis-db", 0, "Redis DB")
	flag.IntVar(&cfg.redisConfig.PoolSize, "redis-poolsize", 10, "Redis Pool Size")

	flag.Parse()

	v := validator.New()
	validateConfig(v, cfg)
	if !v.Valid() {
		for key, message := range v.Errors {
			logger.Error("invalid configuration", "flag", key, "error", message)
		}
		os.Exit(1)
	}

	dataset, err := loadDataset(cfg, logger)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
	logger.Info("book dataset loaded", "source", cfg.books, "books", dataset.Len())

	matcher, err := reference.NewMatcher(dataset, reference.Config{
		DefaultVersion:    cfg.bible.defaultVersion,
		SupportedVersions: splitVersions(cfg.bible.versions),
	})
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	fetcher, err := bibleapi.NewClient(bibleapi.Config{
		BaseURL: cfg.bible.url,
		Token:   cfg.bible.token,
		Timeout: cfg.bible.timeout,
	}, logger)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	ipRateLimiter, err := newLimiter(cfg)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
	defer ipRateLimiter.Close()
	logger.Info("rate limiter ready", "backend", cfg.ratelimit.backend)

	app := &application{
		config:        cfg,
		logger:        logger,
		dataset:       dataset,
		ipRateLimiter: ipRateLimiter,
	}

	services := service.NewServices(dataset, matcher, fetcher, logger)
	handlers := NewHandlers(app, services)

	err = app.serve(handlers)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func validateConfig(v *validator.Validator, cfg config) {
	v.Check(cfg.port > 0 && cfg.port < 65536, "port", "must be between 1 and 65535")
	v.Check(validator.PermittedValue(cfg.books, "embedded", "postgres"), "books", "must be embedded or postgres")
	v.Check(cfg.books != "postgres" || cfg.db.dsn != "", "db-dsn", "must be provided when books is postgres")

	v.Check(cfg.bible.url != "", "bible-api-url", "must be provided")
	v.Check(validator.Matches(cfg.bible.defaultVersion, validator.VersionRX), "bible-default-version", "must be a version code")
	v.Check(cfg.bible.timeout > 0, "bible-api-timeout", "must be positive")

	v.Check(validator.PermittedValue(cfg.ratelimit.backend, "memory", "redis"), "limiter", "must be memory or redis")
	v.Check(cfg.ratelimit.limit > 0, "ip-rate-limit", "must be positive")
	v.Check(cfg.ratelimit.window > 0, "ip-rate-window", "must be positive")

	for _, version := range splitVersions(cfg.bible.versions) {
		v.Check(validator.Matches(version, validator.VersionRX), "bible-versions", fmt.Sprintf("%q is not a version code", version))
	}
}

func splitVersions(s string) []string {
	var versions []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
			versions = append(versions, v)
		}
	}
	return versions
}

func loadDataset(cfg config, logger *slog.Logger) (*data.Dataset, error) {
	if cfg.books != "postgres" {
		return data.LoadDefaultDataset()
	}

	db, err := openDB(cfg)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	logger.Info("Successful connection to database")

	return data.LoadDatasetFromDB(data.NewModels(db).Books)
}

func newLimiter(cfg config) (limiter, error) {
	if cfg.ratelimit.backend == "redis" {
		r, err := cache.NewRedisClient(cfg.redisConfig, cfg.ratelimit.limit, cfg.ratelimit.window)
		if err != nil {
			return nil, err
		}
		return r, nil
	}
	return ratelimit.NewRateLimiter(cfg.ratelimit.limit, cfg.ratelimit.window), nil
}

func openDB(cfg config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.db.dsn)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
