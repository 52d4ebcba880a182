//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	audit "apptrust/pkg/platform/audit"
	"apptrust/pkg/testutil/containers"
)

type PostgresAuditStoreSuite struct {
	suite.Suite
	pc    *containers.PostgresContainer
	store *Store
	ctx   context.Context
}

func TestPostgresAuditStoreSuite(t *testing.T) {
	suite.Run(t, new(PostgresAuditStoreSuite))
}

func (s *PostgresAuditStoreSuite) SetupSuite() {
	s.ctx = context.Background()
	s.pc = containers.NewPostgresContainer(s.T())
	_, err := s.pc.DB.ExecContext(s.ctx, Schema())
	s.Require().NoError(err)
	s.store = NewStore(s.pc.DB)
}

func (s *PostgresAuditStoreSuite) SetupTest() {
	s.Require().NoError(s.pc.TruncateTables(s.ctx, "audit_events"))
}

func (s *PostgresAuditStoreSuite) TestAppendAndList() {
	event := audit.Event{
		EventID:   "evt-1",
		Category:  audit.CategorySecurity,
		Timestamp: time.Now().UTC().Truncate(time.Microsecond),
		Package:   "com.example.app",
		Action:    string(audit.EventIdentityEvaluated),
		Verdict:   "secondary",
		RequestID: "req-1",
	}
	s.Require().NoError(s.store.Append(s.ctx, event))

	events, err := s.store.ListByPackage(s.ctx, "com.example.app")
	s.Require().NoError(err)
	s.Require().Len(events, 1)
	s.Equal(event, events[0])
}

func (s *PostgresAuditStoreSuite) TestAppendIsIdempotent() {
	event := audit.Event{
		EventID:   "evt-dup",
		Category:  audit.CategoryOperations,
		Timestamp: time.Now().UTC().Truncate(time.Microsecond),
		Package:   "com.example.app",
		Action:    string(audit.EventPackageInstalled),
	}
	s.Require().NoError(s.store.Append(s.ctx, event))
	s.Require().NoError(s.store.Append(s.ctx, event))

	events, err := s.store.ListByPackage(s.ctx, "com.example.app")
	s.Require().NoError(err)
	s.Len(events, 1)
}

func (s *PostgresAuditStoreSuite) TestListFiltersByPackage() {
	for i, pkg := range []string{"a.pkg", "b.pkg", "a.pkg"} {
		s.Require().NoError(s.store.Append(s.ctx, audit.Event{
			EventID:   string(rune('x' + i)),
			Category:  audit.CategoryOperations,
			Timestamp: time.Now().UTC(),
			Package:   pkg,
			Action:    string(audit.EventPackageInstalled),
		}))
	}

	events, err := s.store.ListByPackage(s.ctx, "a.pkg")
	s.Require().NoError(err)
	s.Len(events, 2)

	events, err = s.store.ListByPackage(s.ctx, "missing.pkg")
	s.Require().NoError(err)
	s.Empty(events)
}
