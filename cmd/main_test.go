package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	expected := "config.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	expected := "myconfig.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	if !contains(output, "Build version: v1.0.0") ||
		!contains(output, "Build commit: abcd1234") ||
		!contains(output, "Build date: 2025-09-26") {
		t.Errorf("printBuildInfo output unexpected:\n%s", output)
	}
}

// Helper function to check substring
func contains(s, substr string) bool {
	return bytes.Contains([]byte(s), []byte(substr))
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	cfg, err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	if cfg.AppHost != "localhost" || cfg.AppPort != "8080" || cfg.LogLevel != "info" || cfg.Timezone != "Asia/Kolkata" {
		t.Errorf("unexpected app config: %+v", cfg)
	}
	if cfg.ForexAPIHost != "http://localhost:8000" || cfg.ForexAPITimeout != 10*time.Second || cfg.DateStrategy != "static" {
		t.Errorf("unexpected upstream config: %+v", cfg)
	}
	if cfg.CacheDriver != "memory" || cfg.CacheTTL != time.Hour || cfg.CacheSizeMB != 64 {
		t.Errorf("unexpected cache config: %+v", cfg)
	}
	if cfg.RedisHost != "localhost" || cfg.RedisPort != 6379 || cfg.RedisDB != 0 || cfg.RedisPassword != "" ||
		cfg.RedisPoolSize != 10 || cfg.RedisMinIdleConns != 2 {
		t.Errorf("unexpected redis config: %+v", cfg)
	}
	if cfg.ProxyRateLimit != "60-M" || !cfg.MetricsEnabled {
		t.Errorf("unexpected proxy config: %+v", cfg)
	}
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	os.Setenv("APP_HOST", "127.0.0.1")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("APP_LOG_LEVEL", "debug")
	os.Setenv("APP_TIMEZONE", "UTC")

	os.Setenv("FOREX_API_HOST", "https://forex.example.com/api")
	os.Setenv("FOREX_API_TIMEOUT_SECOND", "3")
	os.Setenv("DATE_STRATEGY", "dynamic")

	os.Setenv("CACHE_DRIVER", "redis")
	os.Setenv("CACHE_TTL_SECOND", "120")
	os.Setenv("CACHE_SIZE_MB", "8")

	os.Setenv("REDIS_HOST", "redis.example.com")
	os.Setenv("REDIS_PORT", "6380")
	os.Setenv("REDIS_DB", "2")
	os.Setenv("REDIS_PASSWORD", "redispass")
	os.Setenv("REDIS_POOL_SIZE", "15")
	os.Setenv("REDIS_MIN_IDLE_CONNS", "5")

	os.Setenv("PROXY_RATE_LIMIT", "10-S")
	os.Setenv("METRICS_ENABLED", "false")

	cfg, err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	if cfg.AppHost != "127.0.0.1" || cfg.AppPort != "9090" || cfg.LogLevel != "debug" || cfg.Timezone != "UTC" {
		t.Errorf("unexpected app config")
	}
	if cfg.ForexAPIHost != "https://forex.example.com/api" || cfg.ForexAPITimeout != 3*time.Second || cfg.DateStrategy != "dynamic" {
		t.Errorf("unexpected upstream config")
	}
	if cfg.CacheDriver != "redis" || cfg.CacheTTL != 2*time.Minute || cfg.CacheSizeMB != 8 {
		t.Errorf("unexpected cache config")
	}
	if cfg.RedisHost != "redis.example.com" || cfg.RedisPort != 6380 || cfg.RedisDB != 2 || cfg.RedisPassword != "redispass" ||
		cfg.RedisPoolSize != 15 || cfg.RedisMinIdleConns != 5 {
		t.Errorf("unexpected redis config")
	}
	if cfg.ProxyRateLimit != "10-S" || cfg.MetricsEnabled {
		t.Errorf("unexpected proxy config")
	}
}

func TestParseConfig_InvalidNumber(t *testing.T) {
	resetEnv()
	os.Setenv("REDIS_PORT", "not-a-port")

	_, err := parseConfig("nonexistent.env")
	if err == nil || !strings.Contains(err.Error(), "REDIS_PORT") {
		t.Errorf("expected REDIS_PORT error, got %v", err)
	}
}

func TestParseConfig_FromFile(t *testing.T) {
	resetEnv()
	path := t.TempDir() + "/config.env"
	if err := os.WriteFile(path, []byte("APP_PORT=7070\nCACHE_DRIVER=none\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := parseConfig(path)
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}
	if cfg.AppPort != "7070" || cfg.CacheDriver != "none" {
		t.Errorf("config file not applied: %+v", cfg)
	}
}

func testConfig(port string) config {
	return config{
		AppHost:         "127.0.0.1",
		AppPort:         port,
		LogLevel:        "error",
		Timezone:        "Asia/Kolkata",
		ForexAPIHost:    "http://127.0.0.1:1",
		ForexAPITimeout: time.Second,
		DateStrategy:    "static",
		CacheDriver:     "memory",
		CacheTTL:        time.Minute,
		CacheSizeMB:     8,
		ProxyRateLimit:  "60-M",
		MetricsEnabled:  true,
	}
}

func freePort(t *testing.T) string {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer lis.Close()
	return fmt.Sprint(lis.Addr().(*net.TCPAddr).Port)
}

func TestRun_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config)
	}{
		{name: "log_level", mutate: func(c *config) { c.LogLevel = "loud" }},
		{name: "timezone", mutate: func(c *config) { c.Timezone = "Mars/Olympus" }},
		{name: "strategy", mutate: func(c *config) { c.DateStrategy = "random" }},
		{name: "cache_driver", mutate: func(c *config) { c.CacheDriver = "disk" }},
		{name: "rate_limit", mutate: func(c *config) { c.ProxyRateLimit = "often" }},
		{name: "upstream_host", mutate: func(c *config) { c.ForexAPIHost = "not a url" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(freePort(t))
			tt.mutate(&cfg)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := run(ctx, cfg); err == nil {
				t.Errorf("expected run to fail for %s", tt.name)
			}
		})
	}
}

func TestRun_ServesAndStops(t *testing.T) {
	port := freePort(t)
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(ctx, testConfig(port))
	}()

	base := "http://127.0.0.1:" + port
	var (
		resp *http.Response
		err  error
	)
	for i := 0; i < 50; i++ {
		resp, err = http.Get(base + "/health")
		if err == nil {
			break
		}
		time.Sleep(100 * time.Millisecond)
	}
	if err != nil {
		cancel()
		t.Fatalf("server did not start: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || !contains(string(body), `"status":"ok"`) {
		t.Errorf("unexpected health response: %d %s", resp.StatusCode, body)
	}

	metricsResp, err := http.Get(base + "/metrics")
	if err != nil {
		t.Fatalf("metrics request failed: %v", err)
	}
	metricsBody, _ := io.ReadAll(metricsResp.Body)
	metricsResp.Body.Close()
	if !contains(string(metricsBody), "forex_http_requests_total") {
		t.Errorf("metrics output misses request counter")
	}

	cancel()
	select {
	case <-time.After(11 * time.Second):
		t.Fatal("run did not stop")
	case err := <-errCh:
		if err != nil {
			t.Fatalf("expected run to stop cleanly, got error: %v", err)
		}
	}
}
