package masterdata

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/personnel-management/internal/transport"
	"github.com/frahmantamala/personnel-management/pkg/logger"
)

type ServiceAPI interface {
	GetDepartments(ctx context.Context) ([]Department, error)
	GetJobTitles(ctx context.Context) ([]JobTitle, error)
	GetSalaryStructures(ctx context.Context) ([]SalaryStructure, error)
	GetAllowanceTypes(ctx context.Context) ([]AllowanceType, error)
	GetDepartmentTypes(ctx context.Context) ([]DepartmentType, error)
	GetJobGrades(ctx context.Context) ([]JobGrade, error)
	GetJobCategories(ctx context.Context) ([]JobCategory, error)
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

func (h *Handler) GetDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.Service.GetDepartments(r.Context())
	if err != nil {
		h.Logger.Error("GetDepartments: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, departments)
}

func (h *Handler) GetJobTitles(w http.ResponseWriter, r *http.Request) {
	titles, err := h.Service.GetJobTitles(r.Context())
	if err != nil {
		h.Logger.Error("GetJobTitles: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, titles)
}

func (h *Handler) GetSalaryStructures(w http.ResponseWriter, r *http.Request) {
	structures, err := h.Service.GetSalaryStructures(r.Context())
	if err != nil {
		h.Logger.Error("GetSalaryStructures: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, structures)
}

func (h *Handler) GetAllowanceTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.Service.GetAllowanceTypes(r.Context())
	if err != nil {
		h.Logger.Error("GetAllowanceTypes: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, types)
}

func (h *Handler) GetDepartmentTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.Service.GetDepartmentTypes(r.Context())
	if err != nil {
		h.Logger.Error("GetDepartmentTypes: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, types)
}

func (h *Handler) GetJobGrades(w http.ResponseWriter, r *http.Request) {
	grades, err := h.Service.GetJobGrades(r.Context())
	if err != nil {
		h.Logger.Error("GetJobGrades: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, grades)
}

func (h *Handler) GetJobCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Service.GetJobCategories(r.Context())
	if err != nil {
		h.Logger.Error("GetJobCategories: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, categories)
}
