package trust

import (
	"context"
	"fmt"
	"sync"

	"apptrust/internal/trust/models"
	"apptrust/internal/trust/ports"
)

// Session holds the process-wide trust state. It is constructed empty,
// initialized exactly once during single-threaded startup, and read-only
// afterwards. Wiring order in main guarantees initialization completes
// before any reader runs; sync.Once only guards defensive re-entry of
// startup code.
type Session struct {
	once    sync.Once
	initErr error
	state   models.SessionState
}

func NewSession() *Session {
	return &Session{}
}

// Initialize resolves the process's own descriptor and evaluates it against
// the identity table. Failure to resolve the own descriptor is fatal and
// surfaced to the caller: the process cannot safely continue without knowing
// its own identity. Calls after the first are no-ops and return the first
// call's result.
func (s *Session) Initialize(ctx context.Context, registry ports.PackageRegistry, process ports.ProcessIdentity, table models.IdentityTable, selfPackage string) error {
	s.once.Do(func() {
		s.state = models.SessionState{Package: selfPackage}

		if !process.IsApplicationProcess() {
			return
		}

		descriptor, err := registry.Lookup(ctx, selfPackage, true)
		if err != nil {
			// Unlike counterpart lookups, this must not silently default
			// to untrusted; the caller aborts startup.
			s.initErr = fmt.Errorf("resolve own descriptor %q: %w", selfPackage, err)
			return
		}

		kind := EvaluateIdentity(*descriptor, table)
		if kind.Known() {
			s.state.Enabled = true
			s.state.Identity = kind
		}
	})
	return s.initErr
}

// Enabled reports whether this process matched a known identity.
func (s *Session) Enabled() bool {
	return s.state.Enabled
}

// Identity returns which known identity this process is.
func (s *Session) Identity() models.IdentityKind {
	return s.state.Identity
}

// IsPrimary reports whether this process is the store front-end.
func (s *Session) IsPrimary() bool {
	return s.state.Identity == models.IdentityPrimary
}

// IsSecondary reports whether this process is the services core.
func (s *Session) IsSecondary() bool {
	return s.state.Identity == models.IdentitySecondary
}

// State returns a copy of the session snapshot.
func (s *Session) State() models.SessionState {
	return s.state
}
