package memory

import (
	"context"
	"sync"

	"apptrust/internal/registry/models"
	"apptrust/pkg/platform/sentinel"
)

// Store is the in-memory package index. Default backend and the unit-test
// double for the postgres store.
type Store struct {
	mu       sync.RWMutex
	packages map[string]models.PackageRecord
}

func NewStore() *Store {
	return &Store{packages: make(map[string]models.PackageRecord)}
}

func (s *Store) Get(_ context.Context, packageName string) (*models.PackageRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.packages[packageName]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	// Copy slices so callers cannot mutate the stored record.
	record.Signatures = append([]string(nil), record.Signatures...)
	record.PastSignatures = append([]string(nil), record.PastSignatures...)
	record.GrantedPermissions = append([]string(nil), record.GrantedPermissions...)
	return &record, nil
}

func (s *Store) Put(_ context.Context, record models.PackageRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.packages[record.PackageName] = record
	return nil
}

func (s *Store) Delete(_ context.Context, packageName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.packages[packageName]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.packages, packageName)
	return nil
}

func (s *Store) List(_ context.Context) ([]models.PackageRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]models.PackageRecord, 0, len(s.packages))
	for _, record := range s.packages {
		records = append(records, record)
	}
	return records, nil
}

func (s *Store) Health(_ context.Context) error {
	return nil
}
