package api

import (
	"github.com/go-playground/validator/v10"
	"github.com/ksalau/learnflow-backend/auth"
	"github.com/ksalau/learnflow-backend/database"
	"github.com/ksalau/learnflow-backend/uploads"
)

// handlerDeps carries everything the handlers need beyond repositories.
type handlerDeps struct {
	tokens      auth.TokenIssuer
	google      *auth.GoogleAuthenticator
	store       uploads.Store
	frontendURL string
	site        siteMeta
	validate    *validator.Validate
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, deps handlerDeps) *routeHandlers {
	return &routeHandlers{
		authHandler:        newAuthHandler(database.UserRepo(), deps.tokens, deps.google, deps.frontendURL, deps.validate),
		projectHandler:     newProjectHandler(database.ProjectRepo(), deps.validate),
		blogPostHandler:    newBlogPostHandler(database.BlogPostRepo(), deps.validate),
		testimonialHandler: newTestimonialHandler(database.TestimonialRepo(), deps.validate),
		contactHandler:     newContactHandler(database.ContactRepo(), deps.validate),
		resumeHandler:      newResumeHandler(database.ResumeRepo(), deps.store, deps.validate),
		uploadHandler:      newUploadHandler(deps.store),
		feedHandler:        newFeedHandler(database.BlogPostRepo(), deps.site),
	}
}
