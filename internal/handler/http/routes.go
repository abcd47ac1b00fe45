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
		r.Post("/users", h.signUp)
		r.Post("/users/login", h.login)
	})

	// routes guarded by the auth middleware
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/users/me", h.me)
		r.Delete("/users/me/token", h.logout)

		r.Post("/lists", h.createList)
		r.Get("/lists", h.getLists)
		r.Get("/lists/{id}", h.getList)
		r.Patch("/lists/{id}", h.updateList)
		r.Delete("/lists/{id}", h.deleteList)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
