package handler

import "apptrust/internal/trust/models"

// SessionResponse is the wire form of the session trust snapshot.
type SessionResponse struct {
	Package  string `json:"package"`
	Enabled  bool   `json:"enabled"`
	Identity string `json:"identity"`
}

func FromSessionState(state models.SessionState) SessionResponse {
	return SessionResponse{
		Package:  state.Package,
		Enabled:  state.Enabled,
		Identity: state.Identity.String(),
	}
}

// DependentCheckResponse reports a dependent-app verdict.
type DependentCheckResponse struct {
	Counterpart string `json:"counterpart"`
	Dependent   bool   `json:"dependent"`
}

// EvaluateResponse reports a diagnostic identity verdict.
type EvaluateResponse struct {
	PackageName string `json:"package_name"`
	Verdict     string `json:"verdict"`
	Known       bool   `json:"known"`
}

// PermissionResponse reports a permission query result.
type PermissionResponse struct {
	Permission string `json:"permission"`
	Granted    bool   `json:"granted"`
}
