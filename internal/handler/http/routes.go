package http

import (
	"github.com/MKhiriev/go-ask-box/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(middleware.Timeout(h.requestTimeout))

	router.Get("/api/version", h.getServerVersion)
	router.Get("/api/health", h.getHealth)
	router.Method("GET", "/metrics", h.metricsHandler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(withGZip)

		r.Route("/auth", func(r chi.Router) {
			r.With(h.withRateLimit).Post("/admin/login", h.adminLogin)
			r.With(h.withRateLimit).Post("/user/login", h.userLogin)
			r.With(h.authenticate(models.AdminOnly)).Get("/admin", h.adminMe)
			r.With(h.authenticate(models.UserOnly)).Get("/user", h.userMe)
		})

		r.Route("/admins", func(r chi.Router) {
			r.Use(h.authenticate(models.AdminOnly))
			r.Get("/", h.listAdmins)
			r.Post("/", h.createAdmin)
			r.Get("/{id}", h.getAdmin)
			r.Put("/{id}", h.updateAdmin)
			r.Delete("/{id}", h.deleteAdmin)
		})

		r.Route("/users", func(r chi.Router) {
			// routes without authorization
			r.With(h.withRateLimit).Post("/register", h.register)
			r.Post("/verify-email", h.verifyEmail)
			r.Get("/profile/{username}", h.getProfile)

			r.Group(func(r chi.Router) {
				r.Use(h.authenticate(models.AdminOnly))
				r.Get("/", h.listUsers)
				r.Post("/", h.createUser)
				r.Put("/{id}/ban", h.banUser)
			})

			r.Group(func(r chi.Router) {
				r.Use(h.authenticate(models.AdminOrUser))
				r.Get("/{id}", h.getUser)
				r.Put("/{id}", h.updateUser)
				r.Delete("/{id}", h.deleteUser)
			})
		})

		r.Route("/questions", func(r chi.Router) {
			r.With(h.withRateLimit, h.authenticate(models.UserOrGuest)).Post("/", h.askQuestion)
			r.With(h.authenticate(models.UserOnly)).Get("/me", h.myQuestions)
			r.Get("/user/{username}", h.profileQuestions)
			r.With(h.authenticate(models.AdminOrUser)).Get("/all/{userID}", h.userQuestions)
			r.With(h.authenticate(models.UserOrGuest)).Get("/{id}", h.getQuestion)
			r.With(h.authenticate(models.UserOnly)).Put("/{id}", h.updateQuestion)
			r.With(h.authenticate(models.AdminOrUser)).Delete("/{id}", h.deleteQuestion)
		})
	})

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(routeNotFound)

	return router
}
