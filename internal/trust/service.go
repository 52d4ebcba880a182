package trust

import (
	"context"
	"log/slog"

	"apptrust/internal/trust/metrics"
	"apptrust/internal/trust/models"
	"apptrust/internal/trust/ports"
	dErrors "apptrust/pkg/domain-errors"
	audit "apptrust/pkg/platform/audit"
	"apptrust/pkg/requestcontext"
)

// AuditPublisher is the audit surface the service needs.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service exposes the trust operations to transport layers and wires audit
// and metrics around the pure decision logic.
type Service struct {
	session     *Session
	detector    *Detector
	permissions ports.PermissionHost
	table       models.IdentityTable
	counterpart string

	logger  *slog.Logger
	metrics *metrics.Metrics
	audit   AuditPublisher
}

// NewService assembles the trust feature. The counterpart is the package a
// dependent-app check defaults to (the services core).
func NewService(session *Session, detector *Detector, permissions ports.PermissionHost, table models.IdentityTable, counterpart string, logger *slog.Logger, m *metrics.Metrics, auditPub AuditPublisher) *Service {
	return &Service{
		session:     session,
		detector:    detector,
		permissions: permissions,
		table:       table,
		counterpart: counterpart,
		logger:      logger,
		metrics:     m,
		audit:       auditPub,
	}
}

// Init runs the one-time session initialization and records the verdict.
// Must complete before the HTTP surface starts serving.
func (s *Service) Init(ctx context.Context, registry ports.PackageRegistry, process ports.ProcessIdentity, selfPackage string) error {
	if err := s.session.Initialize(ctx, registry, process, s.table, selfPackage); err != nil {
		return err
	}

	state := s.session.State()
	s.metrics.IncrementEvaluation(state.Identity.String())
	s.logger.InfoContext(ctx, "session trust state initialized",
		"package", state.Package,
		"enabled", state.Enabled,
		"identity", state.Identity.String(),
	)

	if err := s.audit.Emit(ctx, audit.Event{
		Category: audit.CategorySecurity,
		Package:  state.Package,
		Action:   string(audit.EventSessionInitialized),
		Verdict:  state.Identity.String(),
	}); err != nil {
		s.logger.WarnContext(ctx, "failed to emit session audit event", "error", err)
	}
	return nil
}

// SessionState returns the immutable session snapshot.
func (s *Service) SessionState() models.SessionState {
	return s.session.State()
}

// IsDependentOnKnownApp answers a dependent-app check. An empty counterpart
// defaults to the services core package.
func (s *Service) IsDependentOnKnownApp(ctx context.Context, counterpart string) bool {
	if counterpart == "" {
		counterpart = s.counterpart
	}

	dependent := s.detector.IsDependentOnKnownApp(ctx, counterpart)

	verdict := "not_dependent"
	if dependent {
		verdict = "dependent"
	}
	if err := s.audit.Emit(ctx, audit.Event{
		Category:  audit.CategorySecurity,
		Package:   counterpart,
		Action:    string(audit.EventDependentDetected),
		Verdict:   verdict,
		RequestID: requestcontext.RequestID(ctx),
	}); err != nil {
		s.logger.WarnContext(ctx, "failed to emit dependent audit event", "error", err)
	}

	return dependent
}

// Evaluate resolves a caller-supplied descriptor against the identity table.
// Diagnostic surface; the verdict is identical to what the session and
// detector paths would compute for the same descriptor.
func (s *Service) Evaluate(ctx context.Context, descriptor models.AppDescriptor) models.IdentityKind {
	kind := EvaluateIdentity(descriptor, s.table)
	s.metrics.IncrementEvaluation(kind.String())

	if err := s.audit.Emit(ctx, audit.Event{
		Category:  audit.CategorySecurity,
		Package:   descriptor.PackageName,
		Action:    string(audit.EventIdentityEvaluated),
		Verdict:   kind.String(),
		RequestID: requestcontext.RequestID(ctx),
		Actor:     requestcontext.Actor(ctx),
	}); err != nil {
		s.logger.WarnContext(ctx, "failed to emit evaluation audit event", "error", err)
	}

	return kind
}

// HasPermission answers a permission query against the process's own
// application context. Undefined before session initialization, so callers
// get an explicit error rather than a default.
func (s *Service) HasPermission(ctx context.Context, name string) (bool, error) {
	if s.session.State().Package == "" {
		return false, dErrors.New(dErrors.CodeInvalidState, "session trust state not initialized")
	}
	granted, err := s.permissions.HasGrantedPermission(ctx, name)
	if err != nil {
		return false, dErrors.Wrap(dErrors.CodeInternal, "permission query failed", err)
	}
	return granted, nil
}
