package handler

import (
	"time"

	"apptrust/internal/registry/models"
	dErrors "apptrust/pkg/domain-errors"
)

// InstallRequest upserts one package index entry.
type InstallRequest struct {
	PackageName        string   `json:"package_name"`
	Signatures         []string `json:"signatures"`
	PastSignatures     []string `json:"past_signatures,omitempty"`
	Privileged         bool     `json:"privileged"`
	SharedUserID       string   `json:"shared_user_id,omitempty"`
	GrantedPermissions []string `json:"granted_permissions,omitempty"`
}

func (r *InstallRequest) Validate() error {
	if r.PackageName == "" {
		return dErrors.New(dErrors.CodeBadRequest, "package_name is required")
	}
	if len(r.Signatures) == 0 {
		return dErrors.New(dErrors.CodeBadRequest, "signatures must not be empty")
	}
	return nil
}

// Record converts the request into the index record.
func (r *InstallRequest) Record() models.PackageRecord {
	return models.PackageRecord{
		PackageName:        r.PackageName,
		Signatures:         r.Signatures,
		PastSignatures:     r.PastSignatures,
		Privileged:         r.Privileged,
		SharedUserID:       r.SharedUserID,
		GrantedPermissions: r.GrantedPermissions,
		InstalledAt:        time.Now(),
	}
}

// PackageResponse is the wire form of a package index entry.
type PackageResponse struct {
	PackageName        string    `json:"package_name"`
	Signatures         []string  `json:"signatures"`
	PastSignatures     []string  `json:"past_signatures,omitempty"`
	Privileged         bool      `json:"privileged"`
	SharedUserID       string    `json:"shared_user_id,omitempty"`
	GrantedPermissions []string  `json:"granted_permissions,omitempty"`
	InstalledAt        time.Time `json:"installed_at"`
}

func FromRecord(record models.PackageRecord) PackageResponse {
	return PackageResponse{
		PackageName:        record.PackageName,
		Signatures:         record.Signatures,
		PastSignatures:     record.PastSignatures,
		Privileged:         record.Privileged,
		SharedUserID:       record.SharedUserID,
		GrantedPermissions: record.GrantedPermissions,
		InstalledAt:        record.InstalledAt,
	}
}
