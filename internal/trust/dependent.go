package trust

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"apptrust/internal/trust/metrics"
	"apptrust/internal/trust/models"
	"apptrust/internal/trust/ports"
	"apptrust/pkg/platform/sentinel"
)

// Detector decides whether this untrusted process is a legitimate client of
// a known trusted application. Positive results are cached for the process
// lifetime; negatives are never cached, since the counterpart may be
// installed later.
type Detector struct {
	session  *Session
	registry ports.PackageRegistry
	process  ports.ProcessIdentity
	table    models.IdentityTable
	logger   *slog.Logger
	metrics  *metrics.Metrics

	// dependent is monotonic: false -> true, never back. Racing
	// recomputations converge on the same value, so a lost update only
	// costs a redundant lookup.
	dependent atomic.Bool
}

// NewDetector wires a detector against the session state and the package
// registry collaborator.
func NewDetector(session *Session, registry ports.PackageRegistry, process ports.ProcessIdentity, table models.IdentityTable, logger *slog.Logger, m *metrics.Metrics) *Detector {
	return &Detector{
		session:  session,
		registry: registry,
		process:  process,
		table:    table,
		logger:   logger,
		metrics:  m,
	}
}

// IsDependentOnKnownApp reports whether this process depends on the named
// known application. Safe for concurrent use. Fail-closed: any uncertainty
// resolves to false.
func (d *Detector) IsDependentOnKnownApp(ctx context.Context, counterpart string) bool {
	if d.dependent.Load() {
		d.metrics.IncrementDependentCheck("cached")
		return true
	}

	// A known identity is never considered dependent on itself, and
	// non-application processes are out of scope.
	if !d.process.IsApplicationProcess() || d.session.Enabled() {
		d.metrics.IncrementDependentCheck("not_applicable")
		return false
	}

	start := time.Now()
	descriptor, err := d.registry.Lookup(ctx, counterpart, true)
	d.metrics.ObserveLookupLatency(time.Since(start))

	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			// Normal - the counterpart is simply not installed.
			d.metrics.IncrementDependentCheck("not_installed")
			return false
		}
		d.logger.ErrorContext(ctx, "failed to fetch counterpart descriptor",
			"package", counterpart,
			"error", err,
		)
		d.metrics.IncrementDependentCheck("lookup_failed")
		return false
	}

	if EvaluateIdentity(*descriptor, d.table).Known() {
		d.dependent.Store(true)
		d.metrics.IncrementDependentCheck("hit")
		return true
	}

	d.metrics.IncrementDependentCheck("no")
	return false
}
