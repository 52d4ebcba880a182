package adapters

import (
	"context"

	registryservice "apptrust/internal/registry/service"
	"apptrust/internal/trust/models"
	"apptrust/internal/trust/ports"
)

// RegistryAdapter is an in-process adapter that implements
// ports.PackageRegistry by calling the registry service directly. It keeps
// the trust domain free of registry model types; if the registry ever moves
// out of process, this is the only seam to replace.
type RegistryAdapter struct {
	registry *registryservice.Service
}

func NewRegistryAdapter(registry *registryservice.Service) ports.PackageRegistry {
	return &RegistryAdapter{registry: registry}
}

func (a *RegistryAdapter) Lookup(ctx context.Context, packageName string, includeSigningHistory bool) (*models.AppDescriptor, error) {
	record, err := a.registry.Lookup(ctx, packageName, includeSigningHistory)
	if err != nil {
		return nil, err
	}

	return &models.AppDescriptor{
		PackageName:    record.PackageName,
		Signatures:     record.Signatures,
		PastSignatures: record.PastSignatures,
		Privileged:     record.Privileged,
		SharedUserID:   record.SharedUserID,
	}, nil
}
