package audit

import (
	"context"
	"time"
)

// EventCategory classifies audit events by their primary purpose.
// This enables different retention policies, storage backends, and routing.
type EventCategory string

const (
	// CategorySecurity covers trust verdicts and identity evaluations.
	// These feed into SIEM systems and alerting pipelines.
	CategorySecurity EventCategory = "security"

	// CategoryOperations covers events useful for debugging and operational
	// visibility, such as package index mutations.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	EventID   string
	Category  EventCategory
	Timestamp time.Time
	// Package is the application package the event is about.
	Package string
	Action  string
	Verdict string
	Reason  string
	// RequestID is the correlation ID from the HTTP request context.
	RequestID string
	// Actor tracks the authenticated principal for admin operations.
	Actor string
}

type AuditEvent string

const (
	EventSessionInitialized AuditEvent = "session_initialized"
	EventIdentityEvaluated  AuditEvent = "identity_evaluated"
	EventDependentDetected  AuditEvent = "dependent_app_detected"
	EventPackageInstalled   AuditEvent = "package_installed"
	EventPackageRemoved     AuditEvent = "package_removed"
)

// Store is the sink contract for audit events. Implementations must be safe
// for concurrent Append.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByPackage(ctx context.Context, pkg string) ([]Event, error)
}
