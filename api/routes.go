package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// setupRoutes wires every endpoint. Routes fall into three tiers: public,
// authenticated, and admin-only.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware, startupTime time.Time) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/health", healthHandler(startupTime))

		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())

		r.Get("/blog-posts", handlers.blogPostHandler.getAllBlogPosts())
		r.Get("/blog-posts/{blogPostID}", handlers.blogPostHandler.getBlogPost())

		r.Get("/testimonials", handlers.testimonialHandler.getAllTestimonials())
		r.Get("/testimonials/{testimonialID}", handlers.testimonialHandler.getTestimonial())

		r.Post("/contact-submissions", handlers.contactHandler.createContactSubmission())

		r.Get("/resumes/active", handlers.resumeHandler.getActiveResume())
		r.Get("/resumes/{resumeID}", handlers.resumeHandler.getResume())

		r.Get("/rss.xml", handlers.feedHandler.rss())
		r.Get("/sitemap.xml", handlers.feedHandler.sitemap())

		r.Post("/auth/login", handlers.authHandler.login())
		r.Post("/auth/register", handlers.authHandler.register())
		r.Get("/auth/google", handlers.authHandler.googleLogin())
		r.Get("/auth/google/callback", handlers.authHandler.googleCallback())
	})

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.authenticate)

		r.Get("/auth/me", handlers.authHandler.me())
		r.Post("/auth/revoke-sessions", handlers.authHandler.revokeSessions())

		// Admin routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.requireAdmin)

			r.Post("/projects", handlers.projectHandler.createProject())
			r.Put("/projects/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())

			r.Post("/blog-posts", handlers.blogPostHandler.createBlogPost())
			r.Put("/blog-posts/{blogPostID}", handlers.blogPostHandler.updateBlogPost())
			r.Delete("/blog-posts/{blogPostID}", handlers.blogPostHandler.deleteBlogPost())

			r.Post("/testimonials", handlers.testimonialHandler.createTestimonial())
			r.Put("/testimonials/{testimonialID}", handlers.testimonialHandler.updateTestimonial())
			r.Delete("/testimonials/{testimonialID}", handlers.testimonialHandler.deleteTestimonial())

			r.Get("/contact-submissions", handlers.contactHandler.getAllContactSubmissions())
			r.Get("/contact-submissions/{submissionID}", handlers.contactHandler.getContactSubmission())
			r.Delete("/contact-submissions/{submissionID}", handlers.contactHandler.deleteContactSubmission())

			r.Get("/resumes", handlers.resumeHandler.getAllResumes())
			r.Post("/resumes", handlers.resumeHandler.createResume())
			r.Put("/resumes/{resumeID}", handlers.resumeHandler.updateResume())
			r.Delete("/resumes/{resumeID}", handlers.resumeHandler.deleteResume())
			r.Post("/resumes/{resumeID}/set-active", handlers.resumeHandler.setActiveResume())

			r.Post("/upload/blog-image", handlers.uploadHandler.uploadBlogImage())
		})
	})
}

func healthHandler(startupTime time.Time) http.HandlerFunc {
	responder := NewResponder(log.With().Str("handlerName", "healthHandler").Logger())

	return func(w http.ResponseWriter, r *http.Request) {
		responder.WriteJSON(w, map[string]any{
			"status": "ok",
			"uptime": time.Since(startupTime).Round(time.Second).String(),
		})
	}
}
