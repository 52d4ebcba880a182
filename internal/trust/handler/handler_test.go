package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apptrust/internal/trust/models"
	dErrors "apptrust/pkg/domain-errors"
)

type stubService struct {
	state       models.SessionState
	dependent   bool
	counterpart string
	verdict     models.IdentityKind
	granted     bool
	permErr     error
}

func (s *stubService) SessionState() models.SessionState { return s.state }

func (s *stubService) IsDependentOnKnownApp(_ context.Context, counterpart string) bool {
	s.counterpart = counterpart
	return s.dependent
}

func (s *stubService) Evaluate(_ context.Context, _ models.AppDescriptor) models.IdentityKind {
	return s.verdict
}

func (s *stubService) HasPermission(_ context.Context, _ string) (bool, error) {
	return s.granted, s.permErr
}

func newTestRouter(svc *stubService) chi.Router {
	h := New(svc, slog.New(slog.DiscardHandler))
	r := chi.NewRouter()
	h.Register(r)
	h.RegisterProtected(r)
	return r
}

func TestHandleSession(t *testing.T) {
	svc := &stubService{state: models.SessionState{
		Package:  "com.google.android.gms",
		Enabled:  true,
		Identity: models.IdentitySecondary,
	}}

	w := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/trust/session", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp SessionResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp.Enabled)
	assert.Equal(t, "secondary", resp.Identity)
	assert.Equal(t, "com.google.android.gms", resp.Package)
}

func TestHandleDependentCheck(t *testing.T) {
	t.Run("returns verdict and echoes counterpart", func(t *testing.T) {
		svc := &stubService{dependent: true}

		body, _ := json.Marshal(DependentCheckRequest{Counterpart: "com.google.android.gms"})
		w := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/trust/dependents/check", bytes.NewReader(body)))

		require.Equal(t, http.StatusOK, w.Code)

		var resp DependentCheckResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.True(t, resp.Dependent)
		assert.Equal(t, "com.google.android.gms", svc.counterpart)
	})

	t.Run("malformed body rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		newTestRouter(&stubService{}).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/trust/dependents/check", bytes.NewReader([]byte("{"))))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleEvaluate(t *testing.T) {
	t.Run("returns verdict", func(t *testing.T) {
		svc := &stubService{verdict: models.IdentityPrimary}

		body, _ := json.Marshal(EvaluateRequest{
			PackageName: "com.android.vending",
			Signatures:  []string{"ABCD"},
		})
		w := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/trust/evaluate", bytes.NewReader(body)))

		require.Equal(t, http.StatusOK, w.Code)

		var resp EvaluateResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "primary", resp.Verdict)
		assert.True(t, resp.Known)
	})

	t.Run("missing package name rejected", func(t *testing.T) {
		body, _ := json.Marshal(EvaluateRequest{Signatures: []string{"ABCD"}})
		w := httptest.NewRecorder()
		newTestRouter(&stubService{}).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/trust/evaluate", bytes.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandlePermission(t *testing.T) {
	t.Run("granted permission", func(t *testing.T) {
		svc := &stubService{granted: true}

		w := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/trust/permissions/android.permission.INTERNET", nil))

		require.Equal(t, http.StatusOK, w.Code)

		var resp PermissionResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.True(t, resp.Granted)
		assert.Equal(t, "android.permission.INTERNET", resp.Permission)
	})

	t.Run("uninitialized session maps to conflict", func(t *testing.T) {
		svc := &stubService{permErr: dErrors.New(dErrors.CodeInvalidState, "session trust state not initialized")}

		w := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/trust/permissions/android.permission.INTERNET", nil))

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
