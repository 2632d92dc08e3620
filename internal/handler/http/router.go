package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shopstaff/staffpay-backend-go/internal/handler/http/middleware"
	"github.com/shopstaff/staffpay-backend-go/internal/pkg/jwt"
)

func NewRouter(
	logger *slog.Logger,
	jwtService jwt.Service,
	authHandler AuthHandler,
	staffHandler StaffHandler,
	attendanceHandler AttendanceHandler,
	advanceHandler AdvanceHandler,
	payrollHandler PayrollHandler,
	dashboardHandler DashboardHandler,
	masterHandler MasterHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
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
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/staff", func(r chi.Router) {
				r.Get("/", staffHandler.List)
				r.Get("/{id}", staffHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", staffHandler.Create)
					r.Put("/{id}", staffHandler.Update)
					r.Post("/{id}/archive", staffHandler.Archive)
				})
			})

			r.Route("/old-staff", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", staffHandler.ListOldRecords)
				r.Post("/{id}/rejoin", staffHandler.Rejoin)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", attendanceHandler.GetDay)
				r.Post("/", attendanceHandler.Mark)
				r.Post("/bulk", attendanceHandler.BulkMark)

				r.Route("/part-time", func(r chi.Router) {
					r.Post("/", attendanceHandler.AddPartTimeEntry)
					r.Put("/{id}/salary", attendanceHandler.UpdatePartTimeSalary)
					r.Delete("/{id}", attendanceHandler.DeletePartTimeEntry)
				})
			})

			r.Route("/advances", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", advanceHandler.ListMonth)
				r.Post("/open-month", advanceHandler.OpenMonth)
				r.Get("/{staffId}", advanceHandler.Get)
				r.Put("/{staffId}", advanceHandler.Upsert)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/settlements", payrollHandler.ListSettlements)
				r.Get("/settlements/{staffId}", payrollHandler.GetSettlement)
				r.Get("/part-time", payrollHandler.ListPartTimeSalaries)
				r.Get("/part-time/{staffName}", payrollHandler.GetPartTimeSalary)
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/summary", dashboardHandler.LocationSummary)
				r.Get("/summaries", dashboardHandler.AllLocationSummaries)
			})

			r.Route("/master", func(r chi.Router) {
				r.Get("/locations", masterHandler.ListLocations)
				r.Get("/salary-categories", masterHandler.ListSalaryCategories)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/locations", masterHandler.CreateLocation)
					r.Put("/locations/{id}", masterHandler.UpdateLocation)
					r.Delete("/locations/{id}", masterHandler.DeactivateLocation)
					r.Post("/salary-categories", masterHandler.CreateSalaryCategory)
					r.Put("/salary-categories/{id}", masterHandler.UpdateSalaryCategory)
					r.Delete("/salary-categories/{id}", masterHandler.DeactivateSalaryCategory)
				})
			})
		})
	})

	return r
}
