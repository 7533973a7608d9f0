package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the full HTTP surface. Only project create/update/delete
// pass through the auth gate; reads, the contact form and token minting are
// open by design.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware, allowedOrigin string) {
	r.Get("/", handlers.systemHandler.liveness())
	r.Get("/debug/env", handlers.systemHandler.debugEnv())

	r.Route("/api", func(r chi.Router) {
		r.Use(apiCORS(allowedOrigin))

		// Public reads
		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())

		// Gated project writes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.authenticate)

			r.Post("/projects", handlers.projectHandler.createProject())
			r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())
		})

		// Tokens
		r.Get("/user-token", handlers.authHandler.mintToken())
		r.Get("/auth/is-valid/{token}", handlers.authHandler.isValid())

		// Schema
		r.Get("/init", handlers.systemHandler.initSchema())

		// Contact form
		r.Post("/contact-form", handlers.contactHandler.createEntry())
		r.Get("/contact-form", handlers.contactHandler.getAllEntries())
	})
}
