package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures process-level configuration. Parsed once in main; feature
// packages receive only the values they need.
type Config struct {
	Addr string

	// SelfPackage is the package name this process runs as. The session
	// trust state is resolved from it at startup.
	SelfPackage string
	// ProcessKind distinguishes application processes from system ones;
	// trust evaluation only applies to application processes.
	ProcessKind string

	// SigningFingerprint overrides the expected publisher certificate in
	// the known identity table. Empty keeps the built-in fingerprint.
	SigningFingerprint string

	// RegistryBackend selects the package index store: "memory" or "postgres".
	RegistryBackend string
	PostgresDSN     string

	Redis    RedisConfig
	CacheTTL time.Duration

	KafkaBrokers []string

	JWTSigningKey string

	// RateLimit is the per-client request budget per RateLimitWindow.
	// Zero disables limiting.
	RateLimit       int
	RateLimitWindow time.Duration
}

// RedisConfig groups connection settings for the descriptor cache.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	cfg := Config{
		Addr:               envOr("APPTRUST_ADDR", ":8080"),
		SelfPackage:        os.Getenv("APPTRUST_SELF_PACKAGE"),
		ProcessKind:        envOr("APPTRUST_PROCESS_KIND", "application"),
		SigningFingerprint: os.Getenv("APPTRUST_SIGNING_FINGERPRINT"),
		RegistryBackend:    envOr("APPTRUST_REGISTRY_BACKEND", "memory"),
		PostgresDSN:        os.Getenv("APPTRUST_POSTGRES_DSN"),
		CacheTTL:           durationOr("APPTRUST_CACHE_TTL", 5*time.Minute),
		JWTSigningKey:      envOr("APPTRUST_JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		RateLimit:          intOr("APPTRUST_RATE_LIMIT", 120),
		RateLimitWindow:    durationOr("APPTRUST_RATE_LIMIT_WINDOW", time.Minute),
		Redis: RedisConfig{
			URL:          os.Getenv("APPTRUST_REDIS_URL"),
			PoolSize:     intOr("APPTRUST_REDIS_POOL_SIZE", 10),
			MinIdleConns: intOr("APPTRUST_REDIS_MIN_IDLE", 2),
			DialTimeout:  durationOr("APPTRUST_REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  durationOr("APPTRUST_REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: durationOr("APPTRUST_REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
	}

	if brokers := os.Getenv("APPTRUST_KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
