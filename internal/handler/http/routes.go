package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/login", h.login)
	})

	// token-gated employee CRUD
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/employees", h.createEmployee)
		r.Get("/api/employees", h.listEmployees)
		r.Get("/api/employees/{id}", h.getEmployee)
		r.Put("/api/employees/{id}", h.updateEmployee)
		r.Delete("/api/employees/{id}", h.deleteEmployee)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
