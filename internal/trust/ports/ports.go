// Package ports defines the external collaborator interfaces the trust
// feature consumes, so the decision logic stays free of transport and
// storage concerns.
package ports

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks PackageRegistry,ProcessIdentity,PermissionHost

import (
	"context"

	"apptrust/internal/trust/models"
)

// PackageRegistry resolves installed application descriptors.
// Implementations return sentinel.ErrNotFound (optionally wrapped) when the
// package is not installed; any other error is an infrastructure failure.
type PackageRegistry interface {
	// Lookup fetches a fresh descriptor. Signing history is only populated
	// when includeSigningHistory is set; the rotation fallback needs it.
	Lookup(ctx context.Context, packageName string, includeSigningHistory bool) (*models.AppDescriptor, error)
}

// ProcessIdentity classifies the current process. Trust evaluation applies
// only to application processes.
type ProcessIdentity interface {
	IsApplicationProcess() bool
}

// PermissionHost answers permission queries against the process's own
// application context.
type PermissionHost interface {
	HasGrantedPermission(ctx context.Context, name string) (bool, error)
}
