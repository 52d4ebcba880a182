package handler

import (
	"apptrust/internal/trust/models"
	dErrors "apptrust/pkg/domain-errors"
)

// DependentCheckRequest asks whether this process depends on a known app.
// An empty counterpart falls back to the configured default.
type DependentCheckRequest struct {
	Counterpart string `json:"counterpart,omitempty"`
}

// EvaluateRequest carries a full descriptor for diagnostic evaluation.
type EvaluateRequest struct {
	PackageName    string   `json:"package_name"`
	Signatures     []string `json:"signatures"`
	PastSignatures []string `json:"past_signatures,omitempty"`
	Privileged     bool     `json:"privileged"`
	SharedUserID   string   `json:"shared_user_id,omitempty"`
}

func (r *EvaluateRequest) Validate() error {
	if r.PackageName == "" {
		return dErrors.New(dErrors.CodeBadRequest, "package_name is required")
	}
	return nil
}

// Descriptor converts the request into the domain descriptor.
func (r *EvaluateRequest) Descriptor() models.AppDescriptor {
	return models.AppDescriptor{
		PackageName:    r.PackageName,
		Signatures:     r.Signatures,
		PastSignatures: r.PastSignatures,
		Privileged:     r.Privileged,
		SharedUserID:   r.SharedUserID,
	}
}
