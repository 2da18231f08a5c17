/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

ROUTER: chi
  Chi was chosen for:
  - Lightweight and fast
  - Context-based
  - Middleware support
  - RESTful route patterns

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for frontend

ROUTE GROUPS:
  /api/shifts/*             Generation, saved shifts, actuals
  /api/employees/*          Roster management
  /api/shift-requests/*     Standing rest/work requests
  /api/company-holidays/*   Company closures
  /api/public-holidays      Computed national holidays
  /api/reports/*            Wage and hour reports

SECURITY NOTE:
  No authentication middleware. All endpoints are public.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Shift routes: generation, saved shifts, actuals
		r.Route("/shifts", func(r chi.Router) {
			r.Post("/generate-schedule", h.GenerateSchedule)
			r.Get("/", h.ListShifts)
			r.Post("/", h.SaveShifts)
			r.Post("/{id}/actual", h.RecordActual)
		})

		// Employee routes
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.ListEmployees)
			r.Post("/", h.CreateEmployee)
			r.Get("/{id}", h.GetEmployee)
			r.Put("/{id}", h.UpdateEmployee)
			r.Delete("/{id}", h.DeleteEmployee)
		})

		// Shift request routes
		r.Route("/shift-requests", func(r chi.Router) {
			r.Get("/", h.ListShiftRequests)
			r.Post("/", h.CreateShiftRequest)
			r.Delete("/{id}", h.DeleteShiftRequest)
		})

		// Holiday routes
		r.Route("/company-holidays", func(r chi.Router) {
			r.Get("/", h.ListCompanyHolidays)
			r.Post("/", h.SaveCompanyHoliday)
			r.Delete("/{date}", h.DeleteCompanyHoliday)
		})
		r.Get("/public-holidays", h.ListPublicHolidays)

		// Report routes
		r.Route("/reports", func(r chi.Router) {
			r.Get("/monthly", h.MonthlyReport)
			r.Get("/cross-period", h.CrossPeriodReport)
			r.Get("/annual-summary", h.AnnualSummary)
		})
	})

	return r
}
