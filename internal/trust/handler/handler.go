package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"apptrust/internal/trust/models"
	"apptrust/pkg/platform/httputil"
	"apptrust/pkg/requestcontext"
)

// Service defines the trust operations the handler exposes.
type Service interface {
	SessionState() models.SessionState
	IsDependentOnKnownApp(ctx context.Context, counterpart string) bool
	Evaluate(ctx context.Context, descriptor models.AppDescriptor) models.IdentityKind
	HasPermission(ctx context.Context, name string) (bool, error)
}

// Handler wires trust endpoints to the trust service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a trust handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts the public trust endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/trust/session", h.HandleSession)
	r.Post("/trust/dependents/check", h.HandleDependentCheck)
	r.Get("/trust/permissions/{name}", h.HandlePermission)
}

// RegisterProtected mounts diagnostic endpoints that require authentication.
func (h *Handler) RegisterProtected(r chi.Router) {
	r.Post("/trust/evaluate", h.HandleEvaluate)
}

// HandleSession handles GET /trust/session requests.
func (h *Handler) HandleSession(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, FromSessionState(h.service.SessionState()))
}

// HandleDependentCheck handles POST /trust/dependents/check requests.
func (h *Handler) HandleDependentCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[DependentCheckRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	dependent := h.service.IsDependentOnKnownApp(ctx, req.Counterpart)

	h.logger.InfoContext(ctx, "dependent-app check served",
		"request_id", requestID,
		"counterpart", req.Counterpart,
		"dependent", dependent,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, DependentCheckResponse{
		Counterpart: req.Counterpart,
		Dependent:   dependent,
	})
}

// HandleEvaluate handles POST /trust/evaluate requests.
func (h *Handler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[EvaluateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	kind := h.service.Evaluate(ctx, req.Descriptor())

	h.logger.InfoContext(ctx, "identity evaluated",
		"request_id", requestID,
		"package", req.PackageName,
		"verdict", kind.String(),
		"actor", requestcontext.Actor(ctx),
	)

	httputil.WriteJSON(w, http.StatusOK, EvaluateResponse{
		PackageName: req.PackageName,
		Verdict:     kind.String(),
		Known:       kind.Known(),
	})
}

// HandlePermission handles GET /trust/permissions/{name} requests.
func (h *Handler) HandlePermission(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "name")

	granted, err := h.service.HasPermission(ctx, name)
	if err != nil {
		h.logger.ErrorContext(ctx, "permission query failed",
			"request_id", requestcontext.RequestID(ctx),
			"permission", name,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, PermissionResponse{
		Permission: name,
		Granted:    granted,
	})
}
