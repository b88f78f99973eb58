package personnelaction

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/frahmantamala/personnel-management/internal"
	"github.com/frahmantamala/personnel-management/internal/transport"
	"github.com/frahmantamala/personnel-management/pkg/logger"
	"github.com/go-chi/chi"
)

// actorContext tags the request context with the acting administrator's id.
// The surrounding application authenticates; this layer only records who asked.
func actorContext(r *http.Request) context.Context {
	return internal.ContextWithActorID(r.Context(), r.Header.Get("X-Actor-ID"))
}

type ServiceAPI interface {
	CreateAction(ctx context.Context, dto CreateActionDTO) (*PersonnelAction, error)
	GetAction(ctx context.Context, id string) (*PersonnelAction, error)
	GetActions(ctx context.Context, employeeID string, limit, offset int) ([]*PersonnelAction, error)
	ApproveAction(ctx context.Context, actionID string) (*PersonnelAction, error)
	RejectAction(ctx context.Context, actionID, reason string) (*PersonnelAction, error)
	DeleteAction(ctx context.Context, actionID string) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.Default()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

func (h *Handler) CreateAction(w http.ResponseWriter, r *http.Request) {
	var dto CreateActionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateAction: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	action, err := h.Service.CreateAction(actorContext(r), dto)
	if err != nil {
		h.Logger.Error("CreateAction: service error", "error", err, "employee_id", dto.EmployeeID)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("CreateAction: action created",
		"action_id", action.ID,
		"employee_id", action.EmployeeID,
		"type", action.Type)

	h.WriteJSON(w, http.StatusCreated, action)
}

func (h *Handler) GetAction(w http.ResponseWriter, r *http.Request) {
	actionID := chi.URLParam(r, "id")
	if actionID == "" {
		h.WriteError(w, http.StatusBadRequest, "invalid action ID")
		return
	}

	action, err := h.Service.GetAction(r.Context(), actionID)
	if err != nil {
		h.Logger.Error("GetAction: service error", "error", err, "action_id", actionID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, action)
}

func (h *Handler) GetActions(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")

	limit := 50
	offset := 0
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 && parsed <= 100 {
			limit = parsed
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if parsed, err := strconv.Atoi(o); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	actions, err := h.Service.GetActions(r.Context(), employeeID, limit, offset)
	if err != nil {
		h.Logger.Error("GetActions: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, actions)
}

func (h *Handler) ApproveAction(w http.ResponseWriter, r *http.Request) {
	actionID := chi.URLParam(r, "id")
	if actionID == "" {
		h.WriteError(w, http.StatusBadRequest, "invalid action ID")
		return
	}

	action, err := h.Service.ApproveAction(actorContext(r), actionID)
	if err != nil {
		h.Logger.Error("ApproveAction: service error", "error", err, "action_id", actionID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, action)
}

func (h *Handler) RejectAction(w http.ResponseWriter, r *http.Request) {
	actionID := chi.URLParam(r, "id")
	if actionID == "" {
		h.WriteError(w, http.StatusBadRequest, "invalid action ID")
		return
	}

	var dto RejectActionDTO
	if r.Body != nil {
		// reason is optional, a missing body is fine
		_ = json.NewDecoder(r.Body).Decode(&dto)
	}

	action, err := h.Service.RejectAction(actorContext(r), actionID, dto.Reason)
	if err != nil {
		h.Logger.Error("RejectAction: service error", "error", err, "action_id", actionID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, action)
}

func (h *Handler) DeleteAction(w http.ResponseWriter, r *http.Request) {
	actionID := chi.URLParam(r, "id")
	if actionID == "" {
		h.WriteError(w, http.StatusBadRequest, "invalid action ID")
		return
	}

	if err := h.Service.DeleteAction(actorContext(r), actionID); err != nil {
		h.Logger.Error("DeleteAction: service error", "error", err, "action_id", actionID)
		h.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
