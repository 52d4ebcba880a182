package trust

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apptrust/internal/trust/models"
	"apptrust/pkg/platform/sentinel"
)

// fakeRegistry is a package registry stub for session and detector tests.
type fakeRegistry struct {
	mu          sync.Mutex
	descriptors map[string]models.AppDescriptor
	err         error
	lookups     int
}

func (f *fakeRegistry) Lookup(_ context.Context, packageName string, includeSigningHistory bool) (*models.AppDescriptor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lookups++
	if f.err != nil {
		return nil, f.err
	}
	descriptor, ok := f.descriptors[packageName]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if !includeSigningHistory {
		descriptor.PastSignatures = nil
	}
	return &descriptor, nil
}

type fakeProcess struct {
	application bool
}

func (f *fakeProcess) IsApplicationProcess() bool {
	return f.application
}

func TestSession_Initialize(t *testing.T) {
	ctx := context.Background()
	table := testTable()

	t.Run("matching process enables trust", func(t *testing.T) {
		registry := &fakeRegistry{descriptors: map[string]models.AppDescriptor{
			"core.pkg": {
				PackageName:  "core.pkg",
				Signatures:   []string{testFingerprint},
				SharedUserID: testSharedUserID,
			},
		}}

		session := NewSession()
		err := session.Initialize(ctx, registry, &fakeProcess{application: true}, table, "core.pkg")
		require.NoError(t, err)

		assert.True(t, session.Enabled())
		assert.Equal(t, models.IdentitySecondary, session.Identity())
		assert.True(t, session.IsSecondary())
		assert.False(t, session.IsPrimary())
	})

	t.Run("non-matching process stays disabled", func(t *testing.T) {
		registry := &fakeRegistry{descriptors: map[string]models.AppDescriptor{
			"com.example.app": {
				PackageName: "com.example.app",
				Signatures:  []string{"OTHER"},
			},
		}}

		session := NewSession()
		err := session.Initialize(ctx, registry, &fakeProcess{application: true}, table, "com.example.app")
		require.NoError(t, err)

		assert.False(t, session.Enabled())
		assert.Equal(t, models.IdentityUnknown, session.Identity())
	})

	t.Run("system process skips evaluation entirely", func(t *testing.T) {
		registry := &fakeRegistry{}

		session := NewSession()
		err := session.Initialize(ctx, registry, &fakeProcess{application: false}, table, "core.pkg")
		require.NoError(t, err)

		assert.False(t, session.Enabled())
		assert.Zero(t, registry.lookups)
	})

	t.Run("own descriptor lookup failure is fatal", func(t *testing.T) {
		registry := &fakeRegistry{err: errors.New("registry transport down")}

		session := NewSession()
		err := session.Initialize(ctx, registry, &fakeProcess{application: true}, table, "core.pkg")
		require.Error(t, err)
		assert.False(t, session.Enabled())
	})

	t.Run("re-entry is a no-op", func(t *testing.T) {
		registry := &fakeRegistry{descriptors: map[string]models.AppDescriptor{
			"store.pkg": {
				PackageName: "store.pkg",
				Signatures:  []string{testFingerprint},
			},
		}}

		session := NewSession()
		require.NoError(t, session.Initialize(ctx, registry, &fakeProcess{application: true}, table, "store.pkg"))
		require.NoError(t, session.Initialize(ctx, registry, &fakeProcess{application: true}, table, "store.pkg"))

		assert.Equal(t, 1, registry.lookups)
		assert.True(t, session.IsPrimary())
	})
}
