package organization

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/personnel-management/internal/employee"
	"github.com/frahmantamala/personnel-management/internal/transport"
	"github.com/frahmantamala/personnel-management/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	GetTree(ctx context.Context, query string) ([]*Node, error)
	GetDepartmentHead(ctx context.Context, departmentID string) (*employee.Employee, error)
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

func (h *Handler) GetTree(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	roots, err := h.Service.GetTree(r.Context(), query)
	if err != nil {
		h.Logger.Error("GetTree: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, roots)
}

func (h *Handler) GetDepartmentHead(w http.ResponseWriter, r *http.Request) {
	departmentID := chi.URLParam(r, "id")
	if departmentID == "" {
		h.WriteError(w, http.StatusBadRequest, "invalid department ID")
		return
	}

	head, err := h.Service.GetDepartmentHead(r.Context(), departmentID)
	if err != nil {
		h.Logger.Error("GetDepartmentHead: service error", "error", err, "department_id", departmentID)
		h.HandleServiceError(w, err)
		return
	}

	if head == nil {
		h.WriteJSON(w, http.StatusOK, map[string]interface{}{"head": nil})
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{"head": head})
}
