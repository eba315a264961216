package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	"golang.org/x/sync/errgroup"

	_ "github.com/sbilibin2017/gw-forex-archive/docs"
	"github.com/sbilibin2017/gw-forex-archive/internal/display"
	"github.com/sbilibin2017/gw-forex-archive/internal/facades"
	"github.com/sbilibin2017/gw-forex-archive/internal/handlers"
	"github.com/sbilibin2017/gw-forex-archive/internal/logger"
	"github.com/sbilibin2017/gw-forex-archive/internal/metrics"
	"github.com/sbilibin2017/gw-forex-archive/internal/middlewares"
	"github.com/sbilibin2017/gw-forex-archive/internal/repositories"
	"github.com/sbilibin2017/gw-forex-archive/internal/services"
	"github.com/sbilibin2017/gw-forex-archive/internal/web"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Cache drivers.
const (
	cacheNone   = "none"
	cacheMemory = "memory"
	cacheRedis  = "redis"
)

const shutdownTimeout = 10 * time.Second

type config struct {
	AppHost  string
	AppPort  string
	LogLevel string
	Timezone string

	ForexAPIHost    string
	ForexAPITimeout time.Duration
	DateStrategy    string

	CacheDriver string
	CacheTTL    time.Duration
	CacheSizeMB int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	ProxyRateLimit string
	MetricsEnabled bool
}

// @title gw-forex-archive API
// @version 1.0.0
// @description Archive of the daily forex card rates published by SBI
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", buildVersion, buildDate, buildCommit)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, upstream, cache, Redis and proxy configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		n, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return n, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.Timezone = getEnv("APP_TIMEZONE", "Asia/Kolkata")

	// Upstream rate API config
	cfg.ForexAPIHost = getEnv("FOREX_API_HOST", "http://localhost:8000")
	timeout, err := getInt("FOREX_API_TIMEOUT_SECOND", "10")
	if err != nil {
		return cfg, err
	}
	cfg.ForexAPITimeout = time.Duration(timeout) * time.Second
	cfg.DateStrategy = getEnv("DATE_STRATEGY", string(services.StrategyStatic))

	// Cache config
	cfg.CacheDriver = getEnv("CACHE_DRIVER", cacheMemory)
	ttl, err := getInt("CACHE_TTL_SECOND", "3600")
	if err != nil {
		return cfg, err
	}
	cfg.CacheTTL = time.Duration(ttl) * time.Second
	if cfg.CacheSizeMB, err = getInt("CACHE_SIZE_MB", "64"); err != nil {
		return cfg, err
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return cfg, err
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return cfg, err
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return cfg, err
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return cfg, err
	}

	// Proxy and metrics config
	cfg.ProxyRateLimit = getEnv("PROXY_RATE_LIMIT", "60-M")
	if cfg.MetricsEnabled, err = strconv.ParseBool(getEnv("METRICS_ENABLED", "true")); err != nil {
		return cfg, fmt.Errorf("METRICS_ENABLED: %w", err)
	}

	return cfg, nil
}

// newRatesCache builds the response cache selected by CACHE_DRIVER. The
// returned func releases its resources.
func newRatesCache(ctx context.Context, cfg config) (services.RatesCache, func(), error) {
	switch cfg.CacheDriver {
	case cacheNone:
		return repositories.RatesNoopRepository{}, func() {}, nil
	case cacheMemory:
		return repositories.NewRatesMemoryRepository(cfg.CacheSizeMB, cfg.CacheTTL), func() {}, nil
	case cacheRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, fmt.Errorf("redis connection error: %w", err)
		}
		return repositories.NewRatesRedisRepository(rdb, cfg.CacheTTL), func() { _ = rdb.Close() }, nil
	}
	return nil, nil, fmt.Errorf("unknown cache driver %q", cfg.CacheDriver)
}

// run initializes the logger, the upstream client, the cache and the HTTP
// server. It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return fmt.Errorf("load timezone: %w", err)
	}
	strategy, err := services.ParseStrategy(cfg.DateStrategy)
	if err != nil {
		return err
	}

	// Metrics
	reg := prometheus.NewRegistry()
	if cfg.MetricsEnabled {
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	m := metrics.New(cfg.MetricsEnabled, reg)

	// Upstream
	forex, err := facades.NewForexHTTPFacade(cfg.ForexAPIHost, cfg.ForexAPITimeout, m)
	if err != nil {
		return err
	}
	target, err := url.Parse(cfg.ForexAPIHost)
	if err != nil {
		return fmt.Errorf("parse FOREX_API_HOST: %w", err)
	}

	cache, closeCache, err := newRatesCache(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeCache()
	logger.Log.Infow("rates cache ready", "driver", cfg.CacheDriver, "ttl", cfg.CacheTTL)

	// Services
	dateService := services.NewDateService(forex, strategy, loc, nil)
	rateService := services.NewRateService(forex, cache, m)
	newPresenter := func() handlers.Presenter {
		return display.NewOrchestrator(dateService, rateService)
	}

	tmpl, err := web.LoadTemplates()
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}

	rate, err := limiter.NewRateFromFormatted(cfg.ProxyRateLimit)
	if err != nil {
		return fmt.Errorf("parse PROXY_RATE_LIMIT: %w", err)
	}
	proxyLimiter := limiter.New(memory.NewStore(), rate)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.MetricsMiddleware(m))

	handlers.RegisterPageHandler(r, gzhttp.GzipHandler(handlers.NewPageHandler(tmpl, dateService, newPresenter)))
	handlers.RegisterViewHandler(r, handlers.NewViewHandler(dateService, newPresenter))
	handlers.RegisterForexProxyHandler(r,
		handlers.NewForexProxyHandler(target, handlers.ProxyPrefix),
		middlewares.RateLimitMiddleware(proxyLimiter),
	)
	handlers.RegisterHealthHandler(r, handlers.NewHealthHandler())

	if cfg.MetricsEnabled {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	g, gctx := errgroup.WithContext(ctxShutdown)
	g.Go(func() error {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Log.Errorw("HTTP server shutdown error", "error", err)
			return err
		}
		logger.Log.Info("HTTP server stopped gracefully")
		return nil
	})

	return g.Wait()
}
