package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"apptrust/internal/jwttoken"
	"apptrust/internal/platform/config"
	"apptrust/internal/platform/httpserver"
	kafkaproducer "apptrust/internal/platform/kafka/producer"
	"apptrust/internal/platform/logger"
	"apptrust/internal/platform/middleware"
	"apptrust/internal/platform/ratelimit"
	platformredis "apptrust/internal/platform/redis"
	registryhandler "apptrust/internal/registry/handler"
	registryservice "apptrust/internal/registry/service"
	cachestore "apptrust/internal/registry/store/cache"
	memorystore "apptrust/internal/registry/store/memory"
	postgresstore "apptrust/internal/registry/store/postgres"
	httptransport "apptrust/internal/transport/http"
	"apptrust/internal/trust"
	"apptrust/internal/trust/adapters"
	trusthandler "apptrust/internal/trust/handler"
	trustmetrics "apptrust/internal/trust/metrics"
	"apptrust/pkg/platform/audit"
	auditpublisher "apptrust/pkg/platform/audit/publisher"
	auditkafka "apptrust/pkg/platform/audit/store/kafka"
	auditmemory "apptrust/pkg/platform/audit/store/memory"
	auditpostgres "apptrust/pkg/platform/audit/store/postgres"
	"apptrust/pkg/platform/circuit"
)

// main wires dependencies and owns the process lifecycle. Business logic
// lives in the internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	if err := run(cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Package index store: postgres when configured, in-memory otherwise.
	var store registryservice.Store
	var db *sql.DB
	switch cfg.RegistryBackend {
	case "postgres":
		var err error
		db, err = sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			return err
		}
		if _, err := db.ExecContext(ctx, postgresstore.Schema()); err != nil {
			return err
		}
		store = postgresstore.NewStore(db)
	default:
		store = memorystore.NewStore()
	}

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
		store = cachestore.NewStore(store, redisClient.Client, cfg.CacheTTL, log)
		log.Info("descriptor cache enabled", "ttl", cfg.CacheTTL)
	}

	registry := registryservice.New(store, log)

	// Audit pipeline: durable postgres log when the database is around,
	// in-memory window otherwise; events tee into Kafka when brokers are
	// configured.
	var auditStore audit.Store = auditmemory.NewInMemoryStore()
	if db != nil {
		if _, err := db.ExecContext(ctx, auditpostgres.Schema()); err != nil {
			return err
		}
		auditStore = auditpostgres.NewStore(db)
	}
	producer, err := kafkaproducer.New(cfg.KafkaBrokers, "apptrust-server")
	if err != nil {
		return err
	}
	if producer != nil {
		defer producer.Close()
		kafkaSink := audit.NewBreakerStore(
			auditkafka.NewStore(producer),
			circuit.New("kafka-audit", circuit.WithFailureThreshold(5)),
			log,
		)
		auditStore = audit.NewTeeStore(auditStore, kafkaSink)
		log.Info("kafka audit sink enabled", "brokers", cfg.KafkaBrokers)
	}
	auditPub := auditpublisher.NewPublisher(auditStore,
		auditpublisher.WithAsyncBuffer(256),
		auditpublisher.WithLogger(log),
	)
	defer auditPub.Close()

	// Trust engine. The session identity is resolved once, before the
	// server starts accepting requests; a process without a package name
	// is treated as a system process and never gains trust.
	processKind := cfg.ProcessKind
	if cfg.SelfPackage == "" && processKind == "application" {
		log.Warn("no self package configured, session trust stays disabled")
		processKind = "system"
	}

	table := trust.DefaultIdentityTable()
	if cfg.SigningFingerprint != "" {
		table = trust.IdentityTableWithFingerprint(cfg.SigningFingerprint)
	}
	m := trustmetrics.New()
	session := trust.NewSession()
	registryPort := adapters.NewRegistryAdapter(registry)
	process := adapters.NewStaticProcessIdentity(processKind)
	detector := trust.NewDetector(session, registryPort, process, table, log, m)
	permissions := adapters.NewPermissionAdapter(registry, cfg.SelfPackage)

	trustService := trust.NewService(session, detector, permissions, table,
		trust.PackageSecondary, log, m, auditPub)
	if err := trustService.Init(ctx, registryPort, process, cfg.SelfPackage); err != nil {
		return err
	}

	jwtService := jwttoken.NewJWTService(cfg.JWTSigningKey, "apptrust", "apptrust-admin")

	health := map[string]httptransport.HealthChecker{
		"registry": registry,
	}
	if redisClient != nil {
		health["cache"] = redisClient
	}

	deps := httptransport.Deps{
		Logger:    log,
		Trust:     trusthandler.New(trustService, log),
		Registry:  registryhandler.New(registry, log, auditPub),
		Validator: jwtService,
		Health:    health,
	}
	if cfg.RateLimit > 0 {
		deps.RateLimit = middleware.RateLimit(ratelimit.New(cfg.RateLimit, cfg.RateLimitWindow))
	}
	router := httptransport.NewRouter(deps)

	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting apptrust server", "addr", cfg.Addr, "backend", cfg.RegistryBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
