package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/personnel-management/internal"
	"github.com/frahmantamala/personnel-management/internal/compensation"
	"github.com/frahmantamala/personnel-management/internal/employee"
	"github.com/frahmantamala/personnel-management/internal/masterdata"
	"github.com/frahmantamala/personnel-management/internal/organization"
	"github.com/frahmantamala/personnel-management/internal/personnelaction"
	"github.com/frahmantamala/personnel-management/internal/transport/metrics"
	"github.com/frahmantamala/personnel-management/internal/transport/middleware"
	"github.com/frahmantamala/personnel-management/internal/transport/swagger"
	"github.com/go-chi/chi"
)

type Handlers struct {
	Employee     *employee.Handler
	MasterData   *masterdata.Handler
	Compensation *compensation.Handler
	Action       *personnelaction.Handler
	Organization *organization.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, handlers Handlers, cfg *internal.Config, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	if cfg != nil && cfg.Observability.Metrics.Enabled {
		router.Use(metrics.Middleware)
		router.Handle(cfg.Observability.Metrics.Path, metrics.Handler())
	}

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	// Mount API under /api/v1
	router.Route("/api/v1", func(r chi.Router) {
		// Health check route
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Master data routes (read-mostly reference snapshots)
		if handlers.MasterData != nil {
			r.Route("/masterdata", func(mr chi.Router) {
				mr.Get("/departments", handlers.MasterData.GetDepartments)
				mr.Get("/job-titles", handlers.MasterData.GetJobTitles)
				mr.Get("/salary-structures", handlers.MasterData.GetSalaryStructures)
				mr.Get("/allowance-types", handlers.MasterData.GetAllowanceTypes)
				mr.Get("/department-types", handlers.MasterData.GetDepartmentTypes)
				mr.Get("/job-grades", handlers.MasterData.GetJobGrades)
				mr.Get("/job-categories", handlers.MasterData.GetJobCategories)
			})
		}

		// Employee routes
		if handlers.Employee != nil {
			r.Route("/employees", func(er chi.Router) {
				er.Get("/", handlers.Employee.GetEmployees)
				er.Get("/{id}", handlers.Employee.GetEmployee)
				if handlers.Compensation != nil {
					er.Get("/{id}/compensation", handlers.Compensation.PreviewCompensation)
				}
			})
		}

		// Personnel action routes
		if handlers.Action != nil {
			r.Route("/personnel-actions", func(ar chi.Router) {
				ar.Post("/", handlers.Action.CreateAction)
				ar.Get("/", handlers.Action.GetActions)
				ar.Get("/{id}", handlers.Action.GetAction)
				ar.Post("/{id}/approve", handlers.Action.ApproveAction)
				ar.Post("/{id}/reject", handlers.Action.RejectAction)
				ar.Delete("/{id}", handlers.Action.DeleteAction)
			})
		}

		// Organization routes
		if handlers.Organization != nil {
			r.Route("/organization", func(or chi.Router) {
				or.Get("/tree", handlers.Organization.GetTree)
				or.Get("/departments/{id}/head", handlers.Organization.GetDepartmentHead)
			})
		}
	})
}
