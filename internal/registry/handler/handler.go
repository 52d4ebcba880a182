package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"apptrust/internal/registry/models"
	dErrors "apptrust/pkg/domain-errors"
	audit "apptrust/pkg/platform/audit"
	"apptrust/pkg/platform/httputil"
	"apptrust/pkg/requestcontext"
)

// Service defines the package index operations the admin surface exposes.
type Service interface {
	Install(ctx context.Context, record models.PackageRecord) error
	Remove(ctx context.Context, packageName string) error
	Get(ctx context.Context, packageName string) (*models.PackageRecord, error)
	List(ctx context.Context) ([]models.PackageRecord, error)
}

// AuditPublisher is the audit surface the handler needs.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Handler wires the package index admin endpoints to the registry service.
// All routes here are mounted behind authentication.
type Handler struct {
	service Service
	logger  *slog.Logger
	audit   AuditPublisher
}

func New(service Service, logger *slog.Logger, auditPub AuditPublisher) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		audit:   auditPub,
	}
}

// Register mounts the admin endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/packages", h.HandleList)
	r.Get("/packages/{package}", h.HandleGet)
	r.Put("/packages/{package}", h.HandleInstall)
	r.Delete("/packages/{package}", h.HandleRemove)
}

// HandleList handles GET /packages requests.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.List(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	resp := make([]PackageResponse, 0, len(records))
	for _, record := range records {
		resp = append(resp, FromRecord(record))
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// HandleGet handles GET /packages/{package} requests.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	record, err := h.service.Get(r.Context(), chi.URLParam(r, "package"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromRecord(*record))
}

// HandleInstall handles PUT /packages/{package} requests.
func (h *Handler) HandleInstall(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	packageName := chi.URLParam(r, "package")

	req, ok := httputil.DecodeAndPrepare[InstallRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	if req.PackageName != packageName {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "package_name does not match URL"))
		return
	}

	if err := h.service.Install(ctx, req.Record()); err != nil {
		h.logger.ErrorContext(ctx, "package install failed",
			"request_id", requestID,
			"package", packageName,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.emitAudit(ctx, packageName, audit.EventPackageInstalled)
	w.WriteHeader(http.StatusNoContent)
}

// HandleRemove handles DELETE /packages/{package} requests.
func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	packageName := chi.URLParam(r, "package")

	if err := h.service.Remove(ctx, packageName); err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.emitAudit(ctx, packageName, audit.EventPackageRemoved)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) emitAudit(ctx context.Context, packageName string, action audit.AuditEvent) {
	err := h.audit.Emit(ctx, audit.Event{
		Category:  audit.CategoryOperations,
		Package:   packageName,
		Action:    string(action),
		RequestID: requestcontext.RequestID(ctx),
		Actor:     requestcontext.Actor(ctx),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "failed to emit package audit event",
			"package", packageName,
			"action", action,
			"error", err,
		)
	}
}
