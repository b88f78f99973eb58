package compensation

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/personnel-management/internal/transport"
	"github.com/frahmantamala/personnel-management/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	PreviewCompensation(ctx context.Context, employeeID string) (*Breakdown, error)
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

func (h *Handler) PreviewCompensation(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		h.WriteError(w, http.StatusBadRequest, "invalid employee ID")
		return
	}

	breakdown, err := h.Service.PreviewCompensation(r.Context(), employeeID)
	if err != nil {
		h.Logger.Error("PreviewCompensation: service error", "error", err, "employee_id", employeeID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, breakdown)
}
