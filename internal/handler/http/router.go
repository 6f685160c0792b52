package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/workpay/workpay-backend-go/internal/handler/http/middleware"
	"github.com/workpay/workpay-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	payrollHandler PayrollHandler,
	accountingHandler AccountingHandler,
	frontendURL string,
	appEnv string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workpay-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", appEnv),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/token", authHandler.IssueToken)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)
				r.Get("/today/{employeeID}", attendanceHandler.TodayStatus)
				r.Get("/employee/{employeeID}", attendanceHandler.History)

				// Admin/HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireElevated)
					r.Post("/leave", attendanceHandler.MarkLeave)
					r.Get("/daily-summary", attendanceHandler.DailySummary)
					r.Get("/summary/{employeeID}", attendanceHandler.MonthlySummary)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/employee/{employeeID}", payrollHandler.EmployeeHistory)

				// Admin/HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireElevated)
					r.Post("/process", payrollHandler.Process)
					r.Post("/batch", payrollHandler.RunBatch)
					r.Post("/{id}/approve", payrollHandler.Approve)
					r.Get("/{id}", payrollHandler.Get)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/ytd/{employeeID}", accountingHandler.YtdSummary)

				// Admin/HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireElevated)
					r.Get("/monthly", accountingHandler.MonthlyReport)
					r.Get("/annual-tax", accountingHandler.AnnualTaxSummary)
					r.Get("/attendance", accountingHandler.MonthlyAttendanceReport)
				})
			})
		})
	})
	return r
}
