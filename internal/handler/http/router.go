package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hikvision-dashboard/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/handler/http/response"
	"github.com/cmlabs-hris/hikvision-dashboard/internal/pkg/metrics"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

// RouterOptions holds the cross-cutting settings of the router
type RouterOptions struct {
	Logger         *slog.Logger
	Metrics        *metrics.Metrics
	AllowedOrigins []string
}

func NewRouter(
	opts RouterOptions,
	periodHandler PeriodHandler,
	dashboardHandler DashboardHandler,
	employeeHandler EmployeeHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{"Location", middleware.RequestIDHeader},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))
	r.Use(middleware.RequestID)
	if opts.Metrics != nil {
		r.Use(metrics.Middleware(opts.Metrics))
	}

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.MethodNotAllowed(w)
	})

	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/periods/resolve", periodHandler.Resolve)

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/", dashboardHandler.GetOverview)
			r.Get("/top-late", dashboardHandler.GetTopLate)
		})

		r.Get("/employees", employeeHandler.List)

		r.Route("/reports", func(r chi.Router) {
			r.Get("/employees", reportHandler.ListEmployees)
			r.Get("/departments", reportHandler.ListDepartments)
			r.Get("/defaults", reportHandler.Defaults)
			r.Post("/export-link", reportHandler.CreateExportLink)
			r.Get("/export", reportHandler.Export)
		})
	})
	return r
}
