//go:build integration

package cache_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"apptrust/internal/registry/models"
	"apptrust/internal/registry/store/cache"
	"apptrust/internal/registry/store/memory"
	"apptrust/pkg/platform/sentinel"
	"apptrust/pkg/testutil/containers"
)

type CacheSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	inner *memory.Store
	store *cache.Store
}

func TestCacheSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(CacheSuite))
}

func (s *CacheSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
}

func (s *CacheSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
	s.inner = memory.NewStore()
	s.store = cache.NewStore(s.inner, s.redis.Client, time.Minute, slog.New(slog.DiscardHandler))
}

func (s *CacheSuite) TestReadThrough() {
	ctx := context.Background()
	record := models.PackageRecord{PackageName: "com.example.app", Signatures: []string{"AAAA"}}
	s.Require().NoError(s.inner.Put(ctx, record))

	// First read populates the cache.
	got, err := s.store.Get(ctx, "com.example.app")
	s.Require().NoError(err)
	s.Equal("com.example.app", got.PackageName)

	// Remove from the inner store; the cached copy still serves until TTL.
	s.Require().NoError(s.inner.Delete(ctx, "com.example.app"))

	got, err = s.store.Get(ctx, "com.example.app")
	s.Require().NoError(err)
	s.Equal([]string{"AAAA"}, got.Signatures)
}

func (s *CacheSuite) TestMissPassesThrough() {
	_, err := s.store.Get(context.Background(), "com.example.missing")
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *CacheSuite) TestMutationsInvalidate() {
	ctx := context.Background()
	record := models.PackageRecord{PackageName: "com.example.app", Signatures: []string{"AAAA"}}
	s.Require().NoError(s.store.Put(ctx, record))

	_, err := s.store.Get(ctx, "com.example.app")
	s.Require().NoError(err)

	record.Signatures = []string{"CCCC"}
	s.Require().NoError(s.store.Put(ctx, record))

	got, err := s.store.Get(ctx, "com.example.app")
	s.Require().NoError(err)
	s.Equal([]string{"CCCC"}, got.Signatures)

	s.Require().NoError(s.store.Delete(ctx, "com.example.app"))
	_, err = s.store.Get(ctx, "com.example.app")
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}
