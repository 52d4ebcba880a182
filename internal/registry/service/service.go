// Package service implements the package registry collaborator: descriptor
// lookups for the trust feature and index mutations for the admin surface.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"apptrust/internal/registry/models"
	dErrors "apptrust/pkg/domain-errors"
	"apptrust/pkg/platform/sentinel"
	strutil "apptrust/pkg/platform/strings"
)

// Store is the package index contract. Implementations return
// sentinel.ErrNotFound for missing packages.
type Store interface {
	Get(ctx context.Context, packageName string) (*models.PackageRecord, error)
	Put(ctx context.Context, record models.PackageRecord) error
	Delete(ctx context.Context, packageName string) error
	List(ctx context.Context) ([]models.PackageRecord, error)
	Health(ctx context.Context) error
}

// Service mediates access to the package index.
type Service struct {
	store  Store
	logger *slog.Logger
}

func New(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Lookup fetches a fresh package record. Signing history is stripped unless
// requested, mirroring how the platform only hands out history on demand.
// Returns sentinel.ErrNotFound (wrapped) for missing packages so trust-side
// callers can distinguish the expected miss from infrastructure failures.
func (s *Service) Lookup(ctx context.Context, packageName string, includeSigningHistory bool) (*models.PackageRecord, error) {
	record, err := s.store.Get(ctx, packageName)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, fmt.Errorf("package %s: %w", packageName, sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("lookup package %s: %w", packageName, err)
	}

	if !includeSigningHistory {
		record.PastSignatures = nil
	}
	return record, nil
}

// Install validates and upserts a package record.
func (s *Service) Install(ctx context.Context, record models.PackageRecord) error {
	if record.PackageName == "" {
		return dErrors.New(dErrors.CodeBadRequest, "package name is required")
	}
	record.Signatures = strutil.DedupeAndTrimLower(record.Signatures)
	record.PastSignatures = strutil.DedupeAndTrimLower(record.PastSignatures)
	record.GrantedPermissions = strutil.DedupeAndTrim(record.GrantedPermissions)
	if len(record.Signatures) == 0 {
		return dErrors.New(dErrors.CodeBadRequest, "at least one signature is required")
	}
	if record.InstalledAt.IsZero() {
		record.InstalledAt = time.Now()
	}

	if err := s.store.Put(ctx, record); err != nil {
		return dErrors.Wrap(dErrors.CodeInternal, "failed to store package", err)
	}

	s.logger.InfoContext(ctx, "package installed",
		"package", record.PackageName,
		"privileged", record.Privileged,
		"shared_user_id", record.SharedUserID,
	)
	return nil
}

// Remove deletes a package from the index.
func (s *Service) Remove(ctx context.Context, packageName string) error {
	if err := s.store.Delete(ctx, packageName); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "package not installed")
		}
		return dErrors.Wrap(dErrors.CodeInternal, "failed to remove package", err)
	}

	s.logger.InfoContext(ctx, "package removed", "package", packageName)
	return nil
}

// Get returns a package record for the admin surface.
func (s *Service) Get(ctx context.Context, packageName string) (*models.PackageRecord, error) {
	record, err := s.store.Get(ctx, packageName)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "package not installed")
		}
		return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to load package", err)
	}
	return record, nil
}

// List returns all indexed packages.
func (s *Service) List(ctx context.Context) ([]models.PackageRecord, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to list packages", err)
	}
	return records, nil
}

// HasGrantedPermission answers a permission query for one package.
func (s *Service) HasGrantedPermission(ctx context.Context, packageName, permission string) (bool, error) {
	record, err := s.store.Get(ctx, packageName)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return false, fmt.Errorf("package %s: %w", packageName, sentinel.ErrNotFound)
		}
		return false, fmt.Errorf("permission query for %s: %w", packageName, err)
	}
	return record.HasPermission(permission), nil
}

// Health reports store (and cache) connectivity.
func (s *Service) Health(ctx context.Context) error {
	return s.store.Health(ctx)
}
