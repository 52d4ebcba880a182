// Package cache adds a Redis read-through layer in front of a package index
// store. Descriptor lookups dominate the workload; index mutations are rare,
// so mutations simply invalidate the cached entry.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"apptrust/internal/registry/models"
	"apptrust/internal/registry/service"
)

const keyPrefix = "apptrust:pkg:"

// Store decorates an inner store with Redis caching. Cache failures degrade
// to the inner store; they never fail a lookup.
type Store struct {
	inner  service.Store
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewStore(inner service.Store, client *redis.Client, ttl time.Duration, logger *slog.Logger) *Store {
	return &Store{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (s *Store) Get(ctx context.Context, packageName string) (*models.PackageRecord, error) {
	key := keyPrefix + packageName

	payload, err := s.client.Get(ctx, key).Bytes()
	if err == nil {
		var record models.PackageRecord
		if err := json.Unmarshal(payload, &record); err == nil {
			return &record, nil
		}
		// Corrupt entry; fall through to the inner store and rewrite it.
	} else if err != redis.Nil {
		s.logger.WarnContext(ctx, "package cache read failed",
			"package", packageName,
			"error", err,
		)
	}

	record, err := s.inner.Get(ctx, packageName)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(record); err == nil {
		if err := s.client.Set(ctx, key, payload, s.ttl).Err(); err != nil {
			s.logger.WarnContext(ctx, "package cache write failed",
				"package", packageName,
				"error", err,
			)
		}
	}

	return record, nil
}

func (s *Store) Put(ctx context.Context, record models.PackageRecord) error {
	if err := s.inner.Put(ctx, record); err != nil {
		return err
	}
	return s.invalidate(ctx, record.PackageName)
}

func (s *Store) Delete(ctx context.Context, packageName string) error {
	if err := s.inner.Delete(ctx, packageName); err != nil {
		return err
	}
	return s.invalidate(ctx, packageName)
}

func (s *Store) List(ctx context.Context) ([]models.PackageRecord, error) {
	return s.inner.List(ctx)
}

func (s *Store) Health(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("package cache: %w", err)
	}
	return s.inner.Health(ctx)
}

func (s *Store) invalidate(ctx context.Context, packageName string) error {
	if err := s.client.Del(ctx, keyPrefix+packageName).Err(); err != nil {
		// A stale entry self-heals when the TTL expires; surfacing the
		// error would fail an otherwise committed mutation.
		s.logger.WarnContext(ctx, "package cache invalidation failed",
			"package", packageName,
			"error", err,
		)
	}
	return nil
}
