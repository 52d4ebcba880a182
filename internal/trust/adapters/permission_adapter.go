package adapters

import (
	"context"

	registryservice "apptrust/internal/registry/service"
	"apptrust/internal/trust/ports"
)

// PermissionAdapter implements ports.PermissionHost against the registry's
// record of the process's own package.
type PermissionAdapter struct {
	registry    *registryservice.Service
	selfPackage string
}

func NewPermissionAdapter(registry *registryservice.Service, selfPackage string) ports.PermissionHost {
	return &PermissionAdapter{registry: registry, selfPackage: selfPackage}
}

func (a *PermissionAdapter) HasGrantedPermission(ctx context.Context, name string) (bool, error) {
	return a.registry.HasGrantedPermission(ctx, a.selfPackage, name)
}
