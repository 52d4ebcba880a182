package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"apptrust/internal/registry/models"
	"apptrust/pkg/platform/sentinel"
)

type StoreSuite struct {
	suite.Suite
	store *Store
	ctx   context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.store = NewStore()
	s.ctx = context.Background()
}

func (s *StoreSuite) TestGetPut() {
	s.Run("missing package returns not found", func() {
		_, err := s.store.Get(s.ctx, "com.example.missing")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("round trip preserves fields", func() {
		record := models.PackageRecord{
			PackageName:        "com.example.app",
			Signatures:         []string{"AAAA"},
			PastSignatures:     []string{"BBBB"},
			SharedUserID:       "com.example.uid",
			GrantedPermissions: []string{"android.permission.INTERNET"},
			InstalledAt:        time.Now(),
		}
		s.Require().NoError(s.store.Put(s.ctx, record))

		got, err := s.store.Get(s.ctx, "com.example.app")
		s.Require().NoError(err)
		s.Equal(record.Signatures, got.Signatures)
		s.Equal(record.PastSignatures, got.PastSignatures)
		s.Equal(record.SharedUserID, got.SharedUserID)
	})

	s.Run("returned record is a copy", func() {
		s.Require().NoError(s.store.Put(s.ctx, models.PackageRecord{
			PackageName: "com.example.copy",
			Signatures:  []string{"AAAA"},
		}))

		got, err := s.store.Get(s.ctx, "com.example.copy")
		s.Require().NoError(err)
		got.Signatures[0] = "TAMPERED"

		again, err := s.store.Get(s.ctx, "com.example.copy")
		s.Require().NoError(err)
		s.Equal("AAAA", again.Signatures[0])
	})
}

func (s *StoreSuite) TestDelete() {
	s.Run("delete missing returns not found", func() {
		s.Require().ErrorIs(s.store.Delete(s.ctx, "com.example.missing"), sentinel.ErrNotFound)
	})

	s.Run("delete removes the record", func() {
		s.Require().NoError(s.store.Put(s.ctx, models.PackageRecord{PackageName: "com.example.app"}))
		s.Require().NoError(s.store.Delete(s.ctx, "com.example.app"))

		_, err := s.store.Get(s.ctx, "com.example.app")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *StoreSuite) TestList() {
	s.Require().NoError(s.store.Put(s.ctx, models.PackageRecord{PackageName: "com.example.a"}))
	s.Require().NoError(s.store.Put(s.ctx, models.PackageRecord{PackageName: "com.example.b"}))

	records, err := s.store.List(s.ctx)
	s.Require().NoError(err)
	s.Len(records, 2)
}
